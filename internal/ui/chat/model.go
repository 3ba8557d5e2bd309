// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/parley/internal/config"
	"github.com/jeranaias/parley/internal/session"
	"github.com/jeranaias/parley/internal/ui/styles"
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// Session
	ctrl    *session.Controller
	timeout time.Duration

	// Model selection
	models      []string
	showPicker  bool
	pickerIndex int

	// Rendering
	theme    *styles.Theme
	keys     KeyMap
	markdown bool
	renderer *glamour.TermRenderer

	// Widgets
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model
	help     help.Model

	// Layout
	width  int
	height int
	ready  bool

	showHelp bool
	quitting bool
}

// New creates the chat model bound to a session controller.
func New(ctrl *session.Controller, cfg *config.Config) Model {
	theme := styles.NewTheme()

	ta := textarea.New()
	ta.Placeholder = "Type a message..."
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.SetHeight(1)
	ta.CharLimit = 0
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(theme.Spinner),
	)

	models := make([]string, len(cfg.Models))
	copy(models, cfg.Models)

	return Model{
		ctrl:     ctrl,
		timeout:  time.Duration(cfg.Endpoint.TimeoutSecs) * time.Second,
		models:   models,
		theme:    theme,
		keys:     DefaultKeyMap(),
		markdown: cfg.UI.Markdown,
		textarea: ta,
		spinner:  sp,
		help:     help.New(),
	}
}

// Controller exposes the session controller, mainly for tests and for the
// program wiring in main.
func (m Model) Controller() *session.Controller {
	return m.ctrl
}

// layout recomputes widget sizes after a resize.
func (m *Model) layout() {
	const chromeHeight = 6 // header, input box, status bar, spacing

	vpHeight := m.height - chromeHeight
	if vpHeight < 3 {
		vpHeight = 3
	}

	if !m.ready {
		m.viewport = viewport.New(m.width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = vpHeight
	}

	inputWidth := m.width - 4
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.textarea.SetWidth(inputWidth)
	m.help.Width = m.width

	// Word wrap tracks the viewport; rebuild the markdown renderer.
	if m.markdown {
		wrap := m.width - 6
		if wrap < 20 {
			wrap = 20
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
		if err == nil {
			m.renderer = renderer
		}
	}
}

// refreshTranscript re-renders the viewport from the current snapshot and
// scrolls to the latest turn. Called after every transcript mutation;
// scrolling is best-effort, post-layout.
func (m *Model) refreshTranscript() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}
