// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"testing"
)

// =============================================================================
// ROLE TESTS
// =============================================================================

func TestRole_DisplayName(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleUser, "You"},
		{RoleAssistant, "AI"},
		{Role("system"), "system"},
	}

	for _, tc := range tests {
		if got := tc.role.DisplayName(); got != tc.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tc.role, got, tc.want)
		}
	}
}

// =============================================================================
// TURN TESTS
// =============================================================================

func TestNewUserTurn(t *testing.T) {
	turn := NewUserTurn("hello")

	if turn.Role != RoleUser {
		t.Errorf("Role = %q, want 'user'", turn.Role)
	}
	if turn.Text != "hello" {
		t.Errorf("Text = %q, want 'hello'", turn.Text)
	}
	if turn.ID == "" {
		t.Error("Turn should have a generated ID")
	}
	if turn.Timestamp.IsZero() {
		t.Error("Turn should have a timestamp")
	}
}

func TestNewAssistantTurn(t *testing.T) {
	turn := NewAssistantTurn("hi there")

	if turn.Role != RoleAssistant {
		t.Errorf("Role = %q, want 'assistant'", turn.Role)
	}
	if turn.Text != "hi there" {
		t.Errorf("Text = %q, want 'hi there'", turn.Text)
	}
}

func TestTurn_Preview(t *testing.T) {
	turn := NewAssistantTurn("a long response that goes on and on")

	preview := turn.Preview(10)
	if preview != "a long ..." {
		t.Errorf("Preview(10) = %q", preview)
	}

	short := NewUserTurn("hi")
	if short.Preview(10) != "hi" {
		t.Errorf("Preview should not change short text, got %q", short.Preview(10))
	}
}

func TestTurn_IDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		turn := NewUserTurn("x")
		if seen[turn.ID] {
			t.Fatalf("Duplicate turn ID: %s", turn.ID)
		}
		seen[turn.ID] = true
	}
}

// =============================================================================
// TRANSCRIPT TESTS
// =============================================================================

func TestTranscript_AppendOrder(t *testing.T) {
	tr := NewTranscript()

	tr.Append(NewUserTurn("first"))
	tr.Append(NewAssistantTurn("second"))
	tr.Append(NewUserTurn("third"))

	snap := tr.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("Len = %d, want 3", len(snap))
	}

	want := []string{"first", "second", "third"}
	for i, text := range want {
		if snap[i].Text != text {
			t.Errorf("turn[%d].Text = %q, want %q", i, snap[i].Text, text)
		}
	}
}

func TestTranscript_Clear(t *testing.T) {
	tr := NewTranscript()
	tr.Append(NewUserTurn("hello"))
	tr.Append(NewAssistantTurn("hi"))

	tr.Clear()

	if tr.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", tr.Len())
	}
	if snap := tr.Snapshot(); len(snap) != 0 {
		t.Errorf("Snapshot after Clear has %d turns", len(snap))
	}
}

func TestTranscript_SnapshotIsolation(t *testing.T) {
	tr := NewTranscript()
	tr.Append(NewUserTurn("one"))

	snap := tr.Snapshot()
	tr.Append(NewAssistantTurn("two"))

	if len(snap) != 1 {
		t.Errorf("earlier snapshot grew to %d turns", len(snap))
	}

	// Mutating the snapshot must not reach the store.
	snap[0].Text = "mutated"
	fresh := tr.Snapshot()
	if fresh[0].Text != "one" {
		t.Errorf("store turn changed through snapshot: %q", fresh[0].Text)
	}
}

func TestTranscript_Last(t *testing.T) {
	tr := NewTranscript()

	if _, ok := tr.Last(); ok {
		t.Error("Last on empty transcript should return false")
	}

	tr.Append(NewUserTurn("a"))
	tr.Append(NewAssistantTurn("b"))

	last, ok := tr.Last()
	if !ok || last.Text != "b" {
		t.Errorf("Last = %q, %v; want 'b', true", last.Text, ok)
	}
}

// =============================================================================
// MODEL REGISTRY TESTS
// =============================================================================

func TestDefaultModels(t *testing.T) {
	if len(DefaultModels) == 0 {
		t.Fatal("DefaultModels should not be empty")
	}
	if !IsKnownModel(DefaultModel(), DefaultModels) {
		t.Error("DefaultModel should appear in DefaultModels")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"meta-llama/Llama-3.2-1B-Instruct", "meta llama Llama 3.2 1B"},
		{"meta-llama/Llama-3.2-3B-Instruct", "meta llama Llama 3.2 3B"},
		{"google/gemma-2-2b-it", "google gemma 2 2b it"},
		{"Qwen/Qwen2.5-1.5B-Instruct", "Qwen Qwen2.5 1.5B"},
		{"mistralai/Mistral-7B-Instruct-v0.3", "mistralai Mistral 7B v0.3"},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			if got := DisplayName(tc.id); got != tc.want {
				t.Errorf("DisplayName(%q) = %q, want %q", tc.id, got, tc.want)
			}
		})
	}
}

func TestDisplayName_NeverContainsInstruct(t *testing.T) {
	for _, id := range DefaultModels {
		if strings.Contains(DisplayName(id), "Instruct") {
			t.Errorf("DisplayName(%q) still contains 'Instruct'", id)
		}
	}
}

func TestIsKnownModel(t *testing.T) {
	list := []string{"a/b", "c/d"}
	if !IsKnownModel("a/b", list) {
		t.Error("IsKnownModel should find a/b")
	}
	if IsKnownModel("x/y", list) {
		t.Error("IsKnownModel should not find x/y")
	}
}
