// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
)

// =============================================================================
// COMMAND ROUTING
// =============================================================================

// Command identifies which subcommand was requested.
type Command int

const (
	CmdTUI Command = iota
	CmdChat
	CmdVersion
	CmdHelp
)

// Version information, synced from main at startup.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Parse inspects os.Args and returns the command plus its remaining
// arguments. No arguments means the TUI.
func Parse() (Command, []string) {
	args := os.Args[1:]
	if len(args) == 0 {
		return CmdTUI, nil
	}

	switch args[0] {
	case "tui":
		return CmdTUI, args[1:]
	case "chat":
		return CmdChat, args[1:]
	case "version", "--version", "-v":
		return CmdVersion, args[1:]
	case "help", "--help", "-h":
		return CmdHelp, args[1:]
	default:
		// Unknown token: treat leading flags as TUI flags.
		return CmdTUI, args
	}
}

// Options are the flags shared by the tui and chat commands.
type Options struct {
	Model    string
	Endpoint string
	Plain    bool // run the line-mode chat instead of the full-screen TUI
}

// ParseOptions extracts -m/--model, --endpoint and --plain from args.
// Unknown flags are reported and skipped.
func ParseOptions(args []string) Options {
	var opts Options

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-m", "--model":
			if i+1 < len(args) {
				opts.Model = args[i+1]
				i++
			}
		case "--endpoint":
			if i+1 < len(args) {
				opts.Endpoint = args[i+1]
				i++
			}
		case "--plain":
			opts.Plain = true
		default:
			fmt.Fprintf(os.Stderr, "warning: ignoring unknown argument %q\n", args[i])
		}
	}

	return opts
}

// HandleVersion prints version information.
func HandleVersion() {
	fmt.Printf("parley %s (%s, built %s)\n", Version, GitCommit, BuildDate)
}

// HandleHelp prints usage.
func HandleHelp() {
	fmt.Print(`parley - a terminal front end for a remote inference endpoint

Usage:
  parley [flags]            Start the full-screen TUI (default)
  parley chat [flags]       Start a plain line-mode chat
  parley version            Print version information
  parley help               Show this help

Flags:
  -m, --model NAME          Select the model to chat with
  --endpoint URL            Override the inference endpoint URL
  --plain                   Use the line-mode chat instead of the TUI

Configuration:
  ~/.parley/config.toml     Endpoint, model list and UI settings
  PARLEY_ENDPOINT           Environment override for the endpoint URL
  PARLEY_MODEL              Environment override for the default model
  PARLEY_TIMEOUT_SECS       Environment override for the request timeout
`)
}
