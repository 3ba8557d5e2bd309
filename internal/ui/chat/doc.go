// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the Bubble Tea chat view for parley.
//
// The package follows the usual Model/Update/View split:
//   - model.go    — the Model struct and construction
//   - update.go   — message handling and state transitions
//   - view.go     — rendering
//   - messages.go — tea.Msg types
//   - commands.go — tea.Cmd constructors
//   - keys.go     — key bindings
//
// The chat model owns no session state. It reads controller snapshots,
// dispatches intents (submit, reset, select model, input edits), and
// re-renders. Appends to the transcript always come back through the
// controller, never directly from the view layer.
package chat
