// setup.go - Shared session construction for the CLI commands.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/adam-tui/internal/api"
	"github.com/jeranaias/adam-tui/internal/config"
	"github.com/jeranaias/adam-tui/internal/history"
	"github.com/jeranaias/adam-tui/internal/identity"
	"github.com/jeranaias/adam-tui/internal/model"
	"github.com/jeranaias/adam-tui/internal/offline"
	"github.com/jeranaias/adam-tui/internal/session"
)

// cliSession bundles everything a CLI command needs to run turns.
type cliSession struct {
	cfg        *config.Config
	controller *session.Controller
	hist       *history.Store // nil when the archive is disabled
}

// newCLISession loads config, resolves the user identity, applies
// offline mode, and builds a controller backed by the API client. The
// caller must Close it.
func newCLISession(args Args) (*cliSession, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if args.Offline || cfg.OfflineMode {
		offline.SetOfflineMode(true)
	}

	idStore, err := identity.NewStore()
	if err != nil {
		return nil, err
	}
	userID, err := idStore.EnsureUserID()
	if err != nil {
		return nil, err
	}

	client, err := api.NewClient(cfg.API.BaseURL, cfg.Timeout())
	if err != nil {
		return nil, err
	}

	ctrl := session.New(session.Config{
		UserID:         userID,
		Replier:        client,
		GreetingDelay:  cfg.GreetingDelay(),
		RequestTimeout: cfg.Timeout(),
	})

	s := &cliSession{cfg: cfg, controller: ctrl}

	if cfg.Chat.HistoryEnabled {
		path, err := cfg.HistoryPath()
		if err == nil {
			// A broken archive never blocks the conversation.
			if hist, err := history.Open(path); err == nil {
				s.hist = hist
			}
		}
	}

	return s, nil
}

// Close releases the history store, if any.
func (s *cliSession) Close() {
	if s.hist != nil {
		s.hist.Close()
	}
}

// record archives a settled turn. Errors are swallowed.
func (s *cliSession) record(question string, reply *model.Message) {
	if s.hist == nil || reply == nil {
		return
	}
	s.hist.Record(history.Turn{
		UserID:   s.controller.UserID(),
		Question: question,
		Reply:    reply.Text,
		Fallback: reply.Fallback,
	})
}

// styleReply renders an agent message for plain terminal output, with
// gesture spans italicized. The text itself is never interpreted.
func styleReply(msg *model.Message) string {
	var sb strings.Builder
	for _, seg := range model.SplitGestures(msg.Text) {
		if seg.Gesture {
			sb.WriteString(GestureStyle.Render(seg.Text))
		} else {
			sb.WriteString(AgentStyle.Render(seg.Text))
		}
	}
	if msg.Fallback {
		sb.WriteString(FaintStyle.Render("  (offline reply)"))
	}
	return sb.String()
}

// printError writes a styled error line to stderr.
func printError(err error) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
}
