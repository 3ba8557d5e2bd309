// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SendFinishedMsg:
		// The controller already applied the outcome; re-read it.
		snap := m.ctrl.Snapshot()
		m.textarea.SetValue(snap.PendingInput)
		m.refreshTranscript()
		return m, nil

	case ConfigReloadedMsg:
		if len(msg.Models) > 0 {
			m.models = msg.Models
			if m.pickerIndex >= len(m.models) {
				m.pickerIndex = len(m.models) - 1
			}
		}
		return m, nil

	case spinner.TickMsg:
		if !m.ctrl.Snapshot().Sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.forward(msg)
}

// =============================================================================
// KEY HANDLING
// =============================================================================

// handleKey routes key presses. The picker, when open, captures navigation
// keys before anything else sees them.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showPicker {
		return m.handlePickerKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Models):
		m.showPicker = true
		m.pickerIndex = m.selectedIndex()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		// Reset never cancels an in-flight send; a late completion is
		// discarded by the controller's generation check.
		m.ctrl.Reset()
		m.textarea.SetValue("")
		m.refreshTranscript()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m.forward(msg)
}

// submit runs the send guard and, when accepted, kicks off the gateway
// call. Guard rejections (empty input, send in flight) change nothing and
// surface nothing.
func (m Model) submit() (tea.Model, tea.Cmd) {
	d, ok := m.ctrl.Submit(m.textarea.Value())
	if !ok {
		return m, nil
	}

	return m, tea.Batch(
		m.spinner.Tick,
		SendCmd(m.ctrl, d, m.timeout),
	)
}

// handlePickerKey navigates the model picker.
func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.pickerIndex > 0 {
			m.pickerIndex--
		}
	case "down", "j":
		if m.pickerIndex < len(m.models)-1 {
			m.pickerIndex++
		}
	case "enter":
		if m.pickerIndex >= 0 && m.pickerIndex < len(m.models) {
			m.ctrl.SelectModel(m.models[m.pickerIndex])
		}
		m.showPicker = false
	case "esc", "ctrl+p":
		m.showPicker = false
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// =============================================================================
// HELPERS
// =============================================================================

// forward passes a message to the input widget and mirrors the edited text
// into the controller's pending input.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	m.ctrl.SetPendingInput(m.textarea.Value())
	return m, cmd
}

// selectedIndex returns the picker index of the currently selected model,
// or 0 when the selection is not in the list.
func (m Model) selectedIndex() int {
	selected := m.ctrl.Snapshot().SelectedModel
	for i, id := range m.models {
		if id == selected {
			return i
		}
	}
	return 0
}
