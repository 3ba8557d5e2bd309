// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/jeranaias/parley/internal/ui/styles"
)

// =============================================================================
// ERROR BANNER
// =============================================================================

// ErrorBanner renders the surfaced session error above the input area.
// It stays visible until the next submit attempt or a reset clears it.
func ErrorBanner(theme *styles.Theme, width int, message string) string {
	if message == "" {
		return ""
	}

	inner := theme.ErrorTitle.Render("Error: ") + theme.ErrorMessage.Render(message)

	box := theme.ErrorBox
	if width > 4 {
		box = box.MaxWidth(width)
	}
	return box.Render(inner)
}
