// parley - a terminal front end for a remote inference endpoint.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/parley/internal/cli"
	"github.com/jeranaias/parley/internal/config"
	"github.com/jeranaias/parley/internal/gateway"
	"github.com/jeranaias/parley/internal/session"
	"github.com/jeranaias/parley/internal/ui/chat"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdChat:
		if err := cli.HandleChat(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	}
}

// runTUI starts the full-screen chat session.
func runTUI(args []string) {
	if cli.ParseOptions(args).Plain {
		if err := cli.HandleChat(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !cli.IsInteractive() {
		fmt.Fprintln(os.Stderr, "parley needs a terminal; use 'parley chat' for pipes and scripts")
		os.Exit(1)
	}

	opts := cli.ParseOptions(args)

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	client := gateway.NewClientWithConfig(&gateway.ClientConfig{
		BaseURL: cfg.Endpoint.URL,
		Timeout: time.Duration(cfg.Endpoint.TimeoutSecs) * time.Second,
	})
	ctrl := session.New(client, cfg.DefaultModel)

	program := tea.NewProgram(
		chat.New(ctrl, cfg),
		tea.WithAltScreen(),
	)

	// Live-reload the model list when the config file changes on disk.
	if watcher := startConfigWatcher(program); watcher != nil {
		defer watcher.Close()
	}

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the configuration, applies command-line overrides, and
// writes the default file on first run so users have something to edit.
func loadConfig(opts cli.Options) (*config.Config, error) {
	path, err := config.Path()
	if err == nil {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			// Best effort; a read-only home just skips the seed file.
			_ = config.Default().Save()
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if opts.Endpoint != "" {
		cfg.Endpoint.URL = opts.Endpoint
	}
	if opts.Model != "" {
		cfg.DefaultModel = opts.Model
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// startConfigWatcher feeds config file changes into the running program.
func startConfigWatcher(program *tea.Program) *config.Watcher {
	path, err := config.Path()
	if err != nil {
		return nil
	}

	watcher, err := config.NewWatcher(path, func(cfg *config.Config) {
		program.Send(chat.ConfigReloadedMsg{
			Models:       cfg.Models,
			DefaultModel: cfg.DefaultModel,
		})
	})
	if err != nil {
		return nil
	}
	if err := watcher.Watch(); err != nil {
		watcher.Close()
		return nil
	}
	return watcher
}
