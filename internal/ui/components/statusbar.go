// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/parley/internal/ui/styles"
	"github.com/jeranaias/parley/internal/util"
)

// =============================================================================
// STATUS BAR
// =============================================================================

// Shortcut is one key hint shown in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar renders the bottom status line: selected model on the left,
// key hints on the right, truncated to fit the width.
func StatusBar(theme *styles.Theme, width int, modelName string, sending bool, shortcuts []Shortcut) string {
	left := theme.StatusModel.Render(modelName)
	if sending {
		left += theme.StatusBar.Render("  sending...")
	}

	var hints []string
	for _, s := range shortcuts {
		hints = append(hints, theme.ShortcutKey.Render(s.Key)+" "+theme.ShortcutDesc.Render(s.Desc))
	}
	right := strings.Join(hints, "  ")

	gap := width - util.StringWidth(stripForWidth(left)) - util.StringWidth(stripForWidth(right))
	if gap < 1 {
		// Not enough room for hints; keep the model name.
		return theme.StatusBar.Render(util.TruncateWidth(stripForWidth(left), width))
	}

	return left + strings.Repeat(" ", gap) + right
}

// stripForWidth removes ANSI escape sequences for width measurement.
func stripForWidth(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
