// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session implements the session state controller.
//
// The Controller owns all mutable session state: the pending input, the
// selected model, the sending flag, the last surfaced error, and the
// transcript. Everything else in the program only reads snapshots and
// dispatches intents. The controller enforces the one invariant that
// matters: at most one request is in flight at a time, guarded by the
// sending flag in Submit.
//
// Completions are tagged with a generation number. Reset bumps the
// generation, so a response that arrives after a reset is discarded instead
// of resurrecting turns into the freshly cleared transcript.
package session
