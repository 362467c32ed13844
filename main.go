// adam TUI - a terminal companion for the Adam chat backend.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/adam-tui/internal/api"
	"github.com/jeranaias/adam-tui/internal/cli"
	"github.com/jeranaias/adam-tui/internal/config"
	"github.com/jeranaias/adam-tui/internal/history"
	"github.com/jeranaias/adam-tui/internal/identity"
	"github.com/jeranaias/adam-tui/internal/offline"
	"github.com/jeranaias/adam-tui/internal/session"
	"github.com/jeranaias/adam-tui/internal/ui/chat"
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
	case cli.CmdAsk:
		cli.HandleAsk(args)
	case cli.CmdChat:
		cli.HandleChat(args)
	case cli.CmdStatus:
		cli.HandleStatus(args)
	case cli.CmdConfig:
		cli.HandleConfig(args)
	case cli.CmdHistory:
		cli.HandleHistory(args)
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	default:
		cli.PrintUsage()
		os.Exit(1)
	}
}

// runTUI assembles the session and starts the bubbletea program.
func runTUI(args cli.Args) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if args.Offline || cfg.OfflineMode {
		offline.SetOfflineMode(true)
	}

	idStore, err := identity.NewStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	userID, err := idStore.EnsureUserID()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	client, err := api.NewClient(cfg.API.BaseURL, cfg.Timeout())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctrl := session.New(session.Config{
		UserID:         userID,
		Replier:        client,
		GreetingDelay:  cfg.GreetingDelay(),
		RequestTimeout: cfg.Timeout(),
	})

	// The archive is optional; a broken store never blocks the chat.
	var hist *history.Store
	if cfg.Chat.HistoryEnabled {
		if path, err := cfg.HistoryPath(); err == nil {
			if h, err := history.Open(path); err == nil {
				hist = h
				defer hist.Close()
			}
		}
	}

	p := tea.NewProgram(
		chat.New(cfg, ctrl, hist),
		tea.WithAltScreen(),
	)

	// Live-reload the config file while the TUI runs. Edits to
	// ~/.adam/config.toml land as ConfigReloadedMsg without a restart.
	if path, err := config.Path(); err == nil {
		if watcher, err := config.Watch(path, func(next *config.Config) {
			p.Send(chat.ConfigReloadedMsg{Config: next})
		}); err == nil {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
