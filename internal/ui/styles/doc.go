// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the parley TUI.
//
// A Theme bundles the lipgloss styles used across the interface. Terminal
// color capability is detected through termenv so the same theme degrades
// gracefully on 256-color and basic terminals.
package styles
