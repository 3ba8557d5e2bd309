// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/parley/internal/session"
)

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// SendCmd runs the gateway call for an accepted dispatch and reports back
// when the controller has resolved it. This is the only suspension point in
// the program: everything else is synchronous with its caller.
//
// A zero timeout means no operation-level deadline, matching the default
// endpoint contract.
func SendCmd(ctrl *session.Controller, d session.Dispatch, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		ctrl.Perform(ctx, d)

		return SendFinishedMsg{DispatchID: d.ID}
	}
}
