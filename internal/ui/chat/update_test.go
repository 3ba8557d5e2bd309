// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/parley/internal/config"
	"github.com/jeranaias/parley/internal/session"
)

// =============================================================================
// TEST FIXTURES
// =============================================================================

// stubGateway returns a scripted outcome.
type stubGateway struct {
	reply    string
	err      error
	gotText  string
	gotModel string
}

func (s *stubGateway) Send(ctx context.Context, text, mdl string) (string, error) {
	s.gotText = text
	s.gotModel = mdl
	return s.reply, s.err
}

func newTestModel(gw session.Gateway) Model {
	cfg := config.Default()
	ctrl := session.New(gw, cfg.DefaultModel)
	m := New(ctrl, cfg)

	// Give the model a terminal before interacting with it.
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return sized.(Model)
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// drive runs one update and returns the typed model plus command.
func drive(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// =============================================================================
// SUBMIT TESTS
// =============================================================================

func TestUpdate_EnterSubmits(t *testing.T) {
	gw := &stubGateway{reply: "hi there"}
	m := newTestModel(gw)

	m.textarea.SetValue("hello")
	m, cmd := drive(t, m, keyMsg(tea.KeyEnter))

	if cmd == nil {
		t.Fatal("accepted submit should produce a command")
	}
	if !m.ctrl.Snapshot().Sending {
		t.Error("controller should be in sending state after accepted submit")
	}
}

func TestUpdate_EnterWithEmptyInputIsNoop(t *testing.T) {
	gw := &stubGateway{reply: "hi"}
	m := newTestModel(gw)

	m.textarea.SetValue("   ")
	m, cmd := drive(t, m, keyMsg(tea.KeyEnter))

	if cmd != nil {
		t.Error("whitespace-only submit should produce no command")
	}
	if m.ctrl.Snapshot().Sending {
		t.Error("guard-rejected submit must not enter sending state")
	}
}

func TestUpdate_EnterWhileSendingIsNoop(t *testing.T) {
	gw := &stubGateway{reply: "hi"}
	m := newTestModel(gw)

	m.textarea.SetValue("first")
	m, _ = drive(t, m, keyMsg(tea.KeyEnter))

	m.textarea.SetValue("second")
	m, cmd := drive(t, m, keyMsg(tea.KeyEnter))

	if cmd != nil {
		t.Error("submit while sending should produce no command")
	}
}

func TestSendCmd_SuccessRoundTrip(t *testing.T) {
	gw := &stubGateway{reply: "hi there"}
	m := newTestModel(gw)

	d, ok := m.ctrl.Submit("hello")
	if !ok {
		t.Fatal("Submit should accept")
	}

	msg := SendCmd(m.ctrl, d, 0)()
	finished, ok := msg.(SendFinishedMsg)
	if !ok {
		t.Fatalf("SendCmd returned %T, want SendFinishedMsg", msg)
	}
	if finished.DispatchID != d.ID {
		t.Error("SendFinishedMsg should carry the dispatch ID")
	}

	// Feeding the completion back syncs the input box with the cleared
	// pending input and re-renders the transcript.
	m.textarea.SetValue("hello")
	m, _ = drive(t, m, finished)

	snap := m.ctrl.Snapshot()
	if len(snap.Transcript) != 2 {
		t.Fatalf("transcript has %d turns, want 2", len(snap.Transcript))
	}
	if m.textarea.Value() != "" {
		t.Errorf("input should clear on success, has %q", m.textarea.Value())
	}
}

func TestSendCmd_FailureKeepsInput(t *testing.T) {
	gw := &stubGateway{err: errors.New("boom")}
	m := newTestModel(gw)
	m.textarea.SetValue("hello")
	m.ctrl.SetPendingInput("hello")

	d, _ := m.ctrl.Submit("hello")
	msg := SendCmd(m.ctrl, d, 0)()
	m, _ = drive(t, m, msg)

	snap := m.ctrl.Snapshot()
	if len(snap.Transcript) != 0 {
		t.Error("failed send must append nothing")
	}
	if snap.LastError != session.ErrMsgSendFailed {
		t.Errorf("LastError = %q", snap.LastError)
	}
	if m.textarea.Value() != "hello" {
		t.Errorf("typed text should survive a failure, has %q", m.textarea.Value())
	}
}

// =============================================================================
// RESET TESTS
// =============================================================================

func TestUpdate_ResetKey(t *testing.T) {
	gw := &stubGateway{reply: "ok"}
	m := newTestModel(gw)

	m.ctrl.Exchange(context.Background(), "hello")
	m.textarea.SetValue("draft")

	m, _ = drive(t, m, keyMsg(tea.KeyCtrlR))

	snap := m.ctrl.Snapshot()
	if len(snap.Transcript) != 0 {
		t.Error("reset should clear the transcript")
	}
	if m.textarea.Value() != "" {
		t.Error("reset should clear the input box")
	}
}

// =============================================================================
// MODEL PICKER TESTS
// =============================================================================

func TestUpdate_PickerSelectsModel(t *testing.T) {
	gw := &stubGateway{reply: "ok"}
	m := newTestModel(gw)

	m, _ = drive(t, m, keyMsg(tea.KeyCtrlP))
	if !m.showPicker {
		t.Fatal("ctrl+p should open the picker")
	}

	m, _ = drive(t, m, runeMsg('j'))
	m, _ = drive(t, m, keyMsg(tea.KeyEnter))

	if m.showPicker {
		t.Error("enter should close the picker")
	}
	if got := m.ctrl.Snapshot().SelectedModel; got != m.models[1] {
		t.Errorf("SelectedModel = %q, want %q", got, m.models[1])
	}
}

func TestUpdate_PickerEscCancels(t *testing.T) {
	gw := &stubGateway{reply: "ok"}
	m := newTestModel(gw)
	before := m.ctrl.Snapshot().SelectedModel

	m, _ = drive(t, m, keyMsg(tea.KeyCtrlP))
	m, _ = drive(t, m, runeMsg('j'))
	m, _ = drive(t, m, keyMsg(tea.KeyEsc))

	if m.showPicker {
		t.Error("esc should close the picker")
	}
	if m.ctrl.Snapshot().SelectedModel != before {
		t.Error("esc must not change the selection")
	}
}

// =============================================================================
// CONFIG RELOAD TESTS
// =============================================================================

func TestUpdate_ConfigReloaded(t *testing.T) {
	gw := &stubGateway{reply: "ok"}
	m := newTestModel(gw)

	m, _ = drive(t, m, ConfigReloadedMsg{Models: []string{"a/b", "c/d"}})

	if len(m.models) != 2 || m.models[0] != "a/b" {
		t.Errorf("models not reloaded: %v", m.models)
	}
}

// =============================================================================
// TYPING TESTS
// =============================================================================

func TestUpdate_TypingMirrorsPendingInput(t *testing.T) {
	gw := &stubGateway{reply: "ok"}
	m := newTestModel(gw)

	m, _ = drive(t, m, runeMsg('h'))
	m, _ = drive(t, m, runeMsg('i'))

	if got := m.ctrl.Snapshot().PendingInput; got != "hi" {
		t.Errorf("PendingInput = %q, want 'hi'", got)
	}
}
