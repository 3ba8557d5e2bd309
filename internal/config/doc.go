// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for parley.
//
// Configuration is TOML, with sensible built-in defaults and environment
// variable overrides. Precedence, lowest to highest:
//   - built-in defaults
//   - ~/.parley/config.toml
//   - PARLEY_* environment variables
//
// The Watcher offers optional hot-reload: the TUI picks up edits to the
// config file (such as a changed model list) without a restart.
package config
