// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/parley/internal/model"
	"github.com/jeranaias/parley/internal/ui/components"
)

// View renders the full chat screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Starting parley..."
	}

	if m.showPicker {
		return m.viewPicker()
	}

	snap := m.ctrl.Snapshot()

	var b strings.Builder

	// Header
	title := m.theme.HeaderTitle.Render("parley")
	modelName := m.theme.HeaderModel.Render(model.DisplayName(snap.SelectedModel))
	b.WriteString(m.theme.Header.Render(title + "  " + modelName))
	b.WriteString("\n")

	// Transcript
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	// Error banner, visible until the next submit or reset clears it
	if snap.HasError() {
		b.WriteString(components.ErrorBanner(m.theme, m.width, snap.LastError))
		b.WriteString("\n")
	}

	// Thinking indicator
	if snap.Sending {
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.ThinkingText.Render(" waiting for " + model.DisplayName(snap.SelectedModel)))
		b.WriteString("\n")
	}

	// Input area
	b.WriteString(m.theme.InputContainer.Render(
		m.theme.InputPrompt.Render("> ") + m.textarea.View(),
	))
	b.WriteString("\n")

	// Status bar / help
	if m.showHelp {
		b.WriteString(m.help.View(m.keys))
	} else {
		b.WriteString(components.StatusBar(
			m.theme,
			m.width,
			model.DisplayName(snap.SelectedModel),
			snap.Sending,
			[]components.Shortcut{
				{Key: "Enter", Desc: "send"},
				{Key: "C-p", Desc: "models"},
				{Key: "C-r", Desc: "new chat"},
				{Key: "C-c", Desc: "quit"},
			},
		))
	}

	return b.String()
}

// =============================================================================
// TRANSCRIPT RENDERING
// =============================================================================

// renderTranscript builds the viewport content from the current snapshot.
func (m Model) renderTranscript() string {
	snap := m.ctrl.Snapshot()

	if len(snap.Transcript) == 0 {
		return m.renderWelcome()
	}

	var b strings.Builder
	for i, turn := range snap.Transcript {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderTurn(turn))
		b.WriteString("\n")
	}
	return b.String()
}

// renderTurn renders a single turn with its role label.
func (m Model) renderTurn(turn model.Turn) string {
	var label string
	switch turn.Role {
	case model.RoleUser:
		label = m.theme.UserLabel.Render(turn.Role.DisplayName())
	default:
		label = m.theme.AssistantLabel.Render(turn.Role.DisplayName())
	}

	body := turn.Text
	if turn.Role == model.RoleAssistant && m.renderer != nil {
		if rendered, err := m.renderer.Render(turn.Text); err == nil {
			body = strings.TrimRight(rendered, "\n")
		}
	}

	bubble := m.theme.AssistantBubble
	if turn.Role == model.RoleUser {
		bubble = m.theme.UserBubble
	}

	return label + "\n" + bubble.Render(body)
}

// renderWelcome fills the empty transcript with a hint.
func (m Model) renderWelcome() string {
	title := m.theme.WelcomeTitle.Render("Welcome to parley")
	hint := m.theme.WelcomeHint.Render(
		"Type a message and press Enter to talk to the selected model.\n" +
			"Ctrl+P switches models, Ctrl+R starts a new chat.",
	)
	return lipgloss.Place(
		m.viewport.Width, m.viewport.Height,
		lipgloss.Center, lipgloss.Center,
		title+"\n\n"+hint,
	)
}

// =============================================================================
// MODEL PICKER
// =============================================================================

// viewPicker renders the model selection overlay.
func (m Model) viewPicker() string {
	var b strings.Builder
	b.WriteString(m.theme.PickerTitle.Render("Select model"))
	b.WriteString("\n\n")

	for i, id := range m.models {
		line := model.DisplayName(id)
		if i == m.pickerIndex {
			line = m.theme.PickerItemSelected.Render("> " + line)
		} else {
			line = m.theme.PickerItem.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.WelcomeHint.Render("Enter selects, Esc cancels"))

	box := m.theme.PickerBox.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
