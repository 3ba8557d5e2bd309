// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/jeranaias/parley/internal/config"
	"github.com/jeranaias/parley/internal/gateway"
	"github.com/jeranaias/parley/internal/model"
	"github.com/jeranaias/parley/internal/session"
	"github.com/jeranaias/parley/internal/ui/components"
)

// historyFile is the liner history, kept next to the config.
const historyFile = "chat_history"

// HandleChat runs the plain line-mode chat loop. It drives the same session
// controller as the TUI: one request in flight, append-only transcript,
// failures surfaced without losing the typed line.
func HandleChat(args []string) error {
	opts := ParseOptions(args)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.Endpoint != "" {
		cfg.Endpoint.URL = opts.Endpoint
	}
	if opts.Model != "" {
		cfg.DefaultModel = opts.Model
		if !model.IsKnownModel(opts.Model, cfg.Models) {
			cfg.Models = append([]string{opts.Model}, cfg.Models...)
		}
	}

	client := gateway.NewClientWithConfig(&gateway.ClientConfig{
		BaseURL: cfg.Endpoint.URL,
		Timeout: time.Duration(cfg.Endpoint.TimeoutSecs) * time.Second,
	})
	ctrl := session.New(client, cfg.DefaultModel)

	return runChatLoop(ctrl, cfg)
}

// runChatLoop owns the prompt/response cycle until EOF or /quit.
func runChatLoop(ctrl *session.Controller, cfg *config.Config) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := loadHistory(line)
	defer saveHistory(line, histPath)

	renderer := newRenderer(cfg)

	fmt.Printf("parley chat - talking to %s\n", model.DisplayName(ctrl.Snapshot().SelectedModel))
	fmt.Println("Type /help for commands, /quit to exit.")
	fmt.Println()

	for {
		input, err := line.Prompt("> ")
		if err == liner.ErrPromptAborted {
			// Ctrl+C abandons the current line; Ctrl+D or /quit exits.
			continue
		}
		if err != nil {
			// io.EOF on Ctrl+D.
			fmt.Println()
			return nil
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.HasPrefix(trimmed, "/") {
			if quit := runSlashCommand(ctrl, cfg, trimmed); quit {
				return nil
			}
			continue
		}

		sendAndPrint(ctrl, cfg, renderer, input)
	}
}

// sendAndPrint runs one synchronous exchange and prints the outcome.
func sendAndPrint(ctrl *session.Controller, cfg *config.Config, renderer *glamour.TermRenderer, input string) {
	if !ctrl.Exchange(context.Background(), input) {
		return
	}

	snap := ctrl.Snapshot()
	if snap.HasError() {
		fmt.Fprintf(os.Stderr, "error: %s\n\n", snap.LastError)
		return
	}

	last, ok := snap.LastTurn()
	if !ok || last.Role != model.RoleAssistant {
		return
	}

	fmt.Println(formatReply(cfg, renderer, last.Text))
}

// formatReply renders assistant text for the terminal: glamour when markdown
// is enabled, otherwise plain text with fenced code blocks highlighted.
func formatReply(cfg *config.Config, renderer *glamour.TermRenderer, text string) string {
	if cfg.UI.Markdown && renderer != nil {
		if rendered, err := renderer.Render(text); err == nil {
			return strings.TrimRight(rendered, "\n") + "\n"
		}
	}
	return components.HighlightFences(text, cfg.UI.SyntaxTheme) + "\n"
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// runSlashCommand handles /model, /clear, /help and /quit.
// Returns true when the loop should exit.
func runSlashCommand(ctrl *session.Controller, cfg *config.Config, input string) bool {
	cmd, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "/quit", "/exit", "/q":
		return true

	case "/clear", "/new":
		ctrl.Reset()
		fmt.Println("Started a new chat.")

	case "/model", "/models":
		if arg == "" {
			printModels(ctrl, cfg)
			break
		}
		selectModel(ctrl, cfg, arg)

	case "/help":
		fmt.Print(`Commands:
  /model            List available models
  /model NAME       Switch model (name, number, or identifier)
  /clear            Start a new chat
  /quit             Exit
`)

	default:
		fmt.Printf("Unknown command %s. Type /help for commands.\n", cmd)
	}

	return false
}

// printModels lists the selectable models with the current one marked.
func printModels(ctrl *session.Controller, cfg *config.Config) {
	selected := ctrl.Snapshot().SelectedModel
	for i, id := range cfg.Models {
		marker := " "
		if id == selected {
			marker = "*"
		}
		fmt.Printf("%s %d. %s  (%s)\n", marker, i+1, model.DisplayName(id), id)
	}
}

// selectModel resolves arg as a list number, an exact identifier, or a
// case-insensitive display-name match.
func selectModel(ctrl *session.Controller, cfg *config.Config, arg string) {
	if n := parseIndex(arg); n >= 1 && n <= len(cfg.Models) {
		ctrl.SelectModel(cfg.Models[n-1])
		fmt.Printf("Switched to %s.\n", model.DisplayName(cfg.Models[n-1]))
		return
	}

	for _, id := range cfg.Models {
		if id == arg || strings.EqualFold(model.DisplayName(id), arg) {
			ctrl.SelectModel(id)
			fmt.Printf("Switched to %s.\n", model.DisplayName(id))
			return
		}
	}

	fmt.Printf("Unknown model %q. Use /model to list options.\n", arg)
}

// parseIndex returns arg as a positive integer, or 0.
func parseIndex(arg string) int {
	n := 0
	for _, r := range arg {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// =============================================================================
// TERMINAL HELPERS
// =============================================================================

// newRenderer builds the markdown renderer sized to the terminal, or nil
// when markdown is disabled or the renderer cannot be constructed.
func newRenderer(cfg *config.Config) *glamour.TermRenderer {
	if !cfg.UI.Markdown {
		return nil
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return renderer
}

// IsInteractive reports whether stdin and stdout are both terminals.
// The full-screen TUI refuses to start otherwise.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// loadHistory reads prompt history from the config dir, returning the path
// for saveHistory. Failures are ignored; history is a convenience.
func loadHistory(line *liner.State) string {
	dir, err := config.Dir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, historyFile)
	if f, err := os.Open(path); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	return path
}

// saveHistory writes prompt history back out.
func saveHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	if f, err := os.Create(path); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}
