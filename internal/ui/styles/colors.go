// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// COLOR PALETTE
// =============================================================================

// Base palette. Hex values degrade automatically on low-color terminals.
var (
	// Accent colors
	Cyan   = lipgloss.Color("#56b6c2")
	Purple = lipgloss.Color("#c678dd")
	Green  = lipgloss.Color("#98c379")
	Red    = lipgloss.Color("#e06c75")
	Yellow = lipgloss.Color("#e5c07b")
	Blue   = lipgloss.Color("#61afef")

	// Text colors
	Text      = lipgloss.Color("#abb2bf")
	TextMuted = lipgloss.Color("#5c6370")

	// Surface colors
	Surface    = lipgloss.Color("#282c34")
	SurfaceDim = lipgloss.Color("#21252b")
	Overlay    = lipgloss.Color("#3e4451")
)
