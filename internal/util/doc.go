// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small string utilities shared across parley.
//
// The helpers here are width-aware: terminal rendering deals in display
// columns, not bytes or runes, so truncation and padding must account for
// double-width (CJK) characters. All width math is delegated to
// github.com/mattn/go-runewidth.
package util
