// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the command-line surface of parley.
//
// Argument parsing is deliberately hand-rolled: the command set is tiny
// (tui, chat, version, help) and a flag framework would be heavier than the
// parser. The chat command is a plain line-mode REPL for terminals where
// the full-screen TUI is unwanted or unavailable; it drives the same
// session controller as the TUI.
package cli
