// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript holds the ordered sequence of turns for the current session.
// It is strictly append-only: no turn is ever mutated or removed
// individually, only Clear replaces the whole sequence.
//
// Transcript is not safe for concurrent use; the session controller owns it
// and serializes all access.
type Transcript struct {
	turns []Turn
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{
		turns: make([]Turn, 0),
	}
}

// Append adds a turn to the end of the transcript.
func (tr *Transcript) Append(turn Turn) {
	tr.turns = append(tr.turns, turn)
}

// Clear replaces the transcript with the empty sequence.
func (tr *Transcript) Clear() {
	tr.turns = make([]Turn, 0)
}

// Len returns the number of turns.
func (tr *Transcript) Len() int {
	return len(tr.turns)
}

// Snapshot returns a read-only copy of the turns for rendering.
// The returned slice is owned by the caller; later appends to the
// transcript never show through it.
func (tr *Transcript) Snapshot() []Turn {
	out := make([]Turn, len(tr.turns))
	copy(out, tr.turns)
	return out
}

// Last returns the most recent turn and true, or a zero turn and false
// when the transcript is empty.
func (tr *Transcript) Last() (Turn, bool) {
	if len(tr.turns) == 0 {
		return Turn{}, false
	}
	return tr.turns[len(tr.turns)-1], true
}
