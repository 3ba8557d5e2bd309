// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

// =============================================================================
// SEND MESSAGES
// =============================================================================

// SendStartedMsg signals that a dispatch was accepted and the gateway call
// is underway.
type SendStartedMsg struct {
	DispatchID string
}

// SendFinishedMsg signals that the gateway call for a dispatch completed
// and the controller has applied the outcome. The view re-reads the
// snapshot; success or failure is not distinguished here.
type SendFinishedMsg struct {
	DispatchID string
}

// =============================================================================
// CONFIG MESSAGES
// =============================================================================

// ConfigReloadedMsg delivers a hot-reloaded model list from the config
// watcher.
type ConfigReloadedMsg struct {
	Models       []string
	DefaultModel string
}
