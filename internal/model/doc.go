// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
//
// A Turn is one message in the exchange, tagged with the role of its sender.
// A Transcript is the ordered, append-only sequence of turns for the current
// session; it is the single source of truth for what gets rendered. Turns are
// immutable once created and are never removed individually, only the whole
// transcript can be cleared.
//
// The package also carries the static registry of selectable model
// identifiers and the display transform applied to them in the UI.
package model
