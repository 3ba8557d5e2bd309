// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jeranaias/parley/internal/gateway"
	"github.com/jeranaias/parley/internal/model"
)

// =============================================================================
// USER-FACING ERROR MESSAGES
// =============================================================================

// The exact strings shown to the user when a send fails. Guard rejections
// (empty input, already sending) are silent and never reach these.
const (
	ErrMsgEmptyResponse = "No response from AI"
	ErrMsgSendFailed    = "Failed to send message. Please try again."
)

// =============================================================================
// GATEWAY BOUNDARY
// =============================================================================

// Gateway is the outbound boundary the controller sends through.
// *gateway.Client satisfies it; tests substitute fakes.
type Gateway interface {
	Send(ctx context.Context, text string, model string) (string, error)
}

// =============================================================================
// STATE SNAPSHOT
// =============================================================================

// State is a read-only snapshot of the session for rendering.
// The Transcript slice is a copy; holding one across controller calls is safe.
type State struct {
	SessionID     string
	PendingInput  string
	SelectedModel string
	Sending       bool
	LastError     string // empty when no error is surfaced
	Transcript    []model.Turn
}

// HasError reports whether an error message is currently surfaced.
func (s State) HasError() bool {
	return s.LastError != ""
}

// LastTurn returns the newest transcript turn, if any.
func (s State) LastTurn() (model.Turn, bool) {
	if len(s.Transcript) == 0 {
		return model.Turn{}, false
	}
	return s.Transcript[len(s.Transcript)-1], true
}

// =============================================================================
// DISPATCH
// =============================================================================

// Dispatch identifies one accepted submission. It captures the text and the
// model selected at dispatch time: switching models mid-flight never changes
// what an already-dispatched request was sent with.
type Dispatch struct {
	ID    string
	Gen   uint64
	Text  string
	Model string
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller orchestrates user intents against the transcript and the
// gateway. All methods are safe for concurrent use; internally a single
// mutex serializes every state transition.
type Controller struct {
	mu sync.Mutex

	sessionID string
	gw        Gateway

	pendingInput  string
	selectedModel string
	sending       bool
	lastError     string
	transcript    *model.Transcript

	// gen tags dispatches; Reset bumps it so stale completions are dropped.
	gen uint64
}

// New creates a controller with an empty transcript, no pending error,
// and the given model selected.
func New(gw Gateway, selectedModel string) *Controller {
	return &Controller{
		sessionID:     uuid.NewString(),
		gw:            gw,
		selectedModel: selectedModel,
		transcript:    model.NewTranscript(),
	}
}

// SessionID returns the identifier assigned at session start.
func (c *Controller) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Snapshot returns a copy of the current session state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		SessionID:     c.sessionID,
		PendingInput:  c.pendingInput,
		SelectedModel: c.selectedModel,
		Sending:       c.sending,
		LastError:     c.lastError,
		Transcript:    c.transcript.Snapshot(),
	}
}

// =============================================================================
// INTENTS
// =============================================================================

// SetPendingInput stores the in-progress input text. No validation happens
// here; Submit is where the guard lives.
func (c *Controller) SetPendingInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingInput = text
}

// SelectModel replaces the selected model unconditionally. A request already
// in flight keeps the model it was dispatched with.
func (c *Controller) SelectModel(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectedModel = id
}

// Submit attempts to start a send. Returns the dispatch and true when
// accepted. Empty or whitespace-only text, or a send already in flight,
// makes it a silent no-op: no state field changes and false is returned.
//
// On acceptance the sending flag is set and the last error is cleared.
// The caller is expected to perform the gateway call for the returned
// dispatch and hand the outcome to Resolve.
func (c *Controller) Submit(text string) (Dispatch, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if strings.TrimSpace(text) == "" || c.sending {
		return Dispatch{}, false
	}

	c.sending = true
	c.lastError = ""

	return Dispatch{
		ID:    uuid.NewString(),
		Gen:   c.gen,
		Text:  text,
		Model: c.selectedModel,
	}, true
}

// Resolve applies the completion of a dispatched send.
//
// Success with a non-empty reply appends the user turn then the assistant
// turn and clears the pending input. An empty reply or an error appends
// nothing and surfaces the matching message; the pending input is left
// untouched on failure, so whatever the user typed is still in the box.
// Every outcome returns the session to idle.
//
// A completion whose generation predates the last Reset is stale: it only
// releases the send guard and is otherwise discarded.
func (c *Controller) Resolve(d Dispatch, reply string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.sending {
		return
	}
	c.sending = false

	if d.Gen != c.gen {
		return
	}

	switch {
	case err != nil && gateway.IsEmptyResponse(err):
		c.lastError = ErrMsgEmptyResponse
	case err != nil:
		c.lastError = ErrMsgSendFailed
	case strings.TrimSpace(reply) == "":
		c.lastError = ErrMsgEmptyResponse
	default:
		c.transcript.Append(model.NewUserTurn(d.Text))
		c.transcript.Append(model.NewAssistantTurn(reply))
		c.pendingInput = ""
	}
}

// Perform runs the gateway call for a dispatch and resolves it.
// This is the blocking half of a send; the TUI runs it inside a command,
// the plain CLI calls it directly.
func (c *Controller) Perform(ctx context.Context, d Dispatch) {
	reply, err := c.gw.Send(ctx, d.Text, d.Model)
	c.Resolve(d, reply, err)
}

// Exchange is the synchronous convenience path: Submit, then Perform.
// Returns false when the submission was guard-rejected.
func (c *Controller) Exchange(ctx context.Context, text string) bool {
	d, ok := c.Submit(text)
	if !ok {
		return false
	}
	c.Perform(ctx, d)
	return true
}

// Reset reinitializes the session in place: empty transcript, no pending
// input, no surfaced error. It has no precondition and is callable while a
// send is in flight; the in-flight request is not cancelled, but bumping the
// generation guarantees its completion is discarded on arrival. Reset does
// not itself change the idle/sending state.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transcript.Clear()
	c.pendingInput = ""
	c.lastError = ""
	c.gen++
}
