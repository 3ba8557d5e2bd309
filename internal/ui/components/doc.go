// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides reusable rendering pieces for the parley UI.
//
// Components are stateless: each takes a theme plus the data to show and
// returns a rendered string. State lives in the session controller and the
// chat model, never here.
package components
