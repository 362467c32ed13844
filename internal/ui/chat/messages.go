// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/adam-tui/internal/config"
	"github.com/jeranaias/adam-tui/internal/history"
	"github.com/jeranaias/adam-tui/internal/model"
	"github.com/jeranaias/adam-tui/internal/session"
)

// =============================================================================
// MESSAGES
// =============================================================================

// GreetingMsg fires once, after the configured delay, to append the
// scripted greeting.
type GreetingMsg struct{}

// ReplyMsg carries the settled agent message back onto the UI thread.
type ReplyMsg struct {
	Reply *model.Message
}

// ConfigReloadedMsg is sent by the config watcher when the file changes
// on disk while the TUI is running.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// =============================================================================
// COMMANDS
// =============================================================================

// greetingCmd schedules the greeting append.
func greetingCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return GreetingMsg{}
	})
}

// settleCmd finishes the turn for question off the UI thread. Settle
// never fails, so this always produces a ReplyMsg. The history write
// happens here, after settlement, so archive problems cannot touch the
// conversation.
func settleCmd(ctrl *session.Controller, hist *history.Store, question string) tea.Cmd {
	return func() tea.Msg {
		reply := ctrl.Settle(context.Background(), question)

		if hist != nil {
			hist.Record(history.Turn{
				UserID:   ctrl.UserID(),
				Question: question,
				Reply:    reply.Text,
				Fallback: reply.Fallback,
			})
		}

		return ReplyMsg{Reply: reply}
	}
}
