// status.go - Status command implementation for adam.
//
// Command: status
// Short:   Display backend and configuration status
// Aliases: s
//
// Examples:
//   adam status               Show status
//   adam status --json        Status in JSON format
//
// Status sections:
//   Backend:  Base URL, reachability, round-trip time
//   Session:  User ID, offline mode
//   Config:   Config file path, theme, greeting delay
//   Archive:  History path and turn count
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jeranaias/adam-tui/internal/api"
	"github.com/jeranaias/adam-tui/internal/config"
	"github.com/jeranaias/adam-tui/internal/history"
	"github.com/jeranaias/adam-tui/internal/identity"
	"github.com/jeranaias/adam-tui/internal/offline"
)

// statusReport is the JSON shape for --json output.
type statusReport struct {
	Backend struct {
		BaseURL   string `json:"base_url"`
		Reachable bool   `json:"reachable"`
		LatencyMs int64  `json:"latency_ms,omitempty"`
		Error     string `json:"error,omitempty"`
	} `json:"backend"`
	Session struct {
		UserID  string `json:"user_id"`
		Offline bool   `json:"offline"`
	} `json:"session"`
	Config struct {
		Path           string `json:"path"`
		Theme          string `json:"theme"`
		GreetingDelay  string `json:"greeting_delay"`
		RequestTimeout string `json:"request_timeout"`
	} `json:"config"`
	Archive struct {
		Enabled bool   `json:"enabled"`
		Path    string `json:"path,omitempty"`
		Turns   int    `json:"turns"`
	} `json:"archive"`
}

// HandleStatus shows backend reachability and effective configuration.
func HandleStatus(args Args) {
	cfg, err := config.Load()
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if args.Offline || cfg.OfflineMode {
		offline.SetOfflineMode(true)
	}

	var report statusReport
	report.Backend.BaseURL = cfg.API.BaseURL
	report.Session.Offline = offline.IsOfflineMode()

	if idStore, err := identity.NewStore(); err == nil {
		if userID, err := idStore.EnsureUserID(); err == nil {
			report.Session.UserID = userID
		}
	}

	if path, err := config.Path(); err == nil {
		report.Config.Path = path
	}
	report.Config.Theme = cfg.UI.Theme
	report.Config.GreetingDelay = cfg.GreetingDelay().String()
	report.Config.RequestTimeout = cfg.Timeout().String()

	// Ping the backend unless offline mode blocks it.
	if !offline.IsOfflineMode() {
		if client, err := api.NewClient(cfg.API.BaseURL, cfg.Timeout()); err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			start := time.Now()
			pingErr := client.Ping(ctx)
			cancel()
			if pingErr == nil {
				report.Backend.Reachable = true
				report.Backend.LatencyMs = time.Since(start).Milliseconds()
			} else {
				report.Backend.Error = pingErr.Error()
			}
		}
	}

	report.Archive.Enabled = cfg.Chat.HistoryEnabled
	if cfg.Chat.HistoryEnabled {
		if path, err := cfg.HistoryPath(); err == nil {
			report.Archive.Path = path
			if hist, err := history.Open(path); err == nil {
				if n, err := hist.Count(); err == nil {
					report.Archive.Turns = n
				}
				hist.Close()
			}
		}
	}

	if args.JSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			printError(err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	printStatus(report)
}

func printStatus(r statusReport) {
	fmt.Println(TitleStyle.Render("adam status"))

	fmt.Println(SectionStyle.Render("Backend"))
	fmt.Println(LabelStyle.Render("URL:") + ValueStyle.Render(r.Backend.BaseURL))
	switch {
	case r.Session.Offline:
		fmt.Println(LabelStyle.Render("Reachable:") + WarningStyle.Render("skipped (offline mode)"))
	case r.Backend.Reachable:
		fmt.Println(LabelStyle.Render("Reachable:") + SuccessStyle.Render("yes") +
			FaintStyle.Render(fmt.Sprintf("  (%dms)", r.Backend.LatencyMs)))
	default:
		fmt.Println(LabelStyle.Render("Reachable:") + ErrorStyle.Render("no"))
		if r.Backend.Error != "" {
			fmt.Println(LabelStyle.Render("") + FaintStyle.Render(r.Backend.Error))
		}
	}

	fmt.Println(SectionStyle.Render("Session"))
	fmt.Println(LabelStyle.Render("User ID:") + ValueStyle.Render(r.Session.UserID))
	if r.Session.Offline {
		fmt.Println(LabelStyle.Render("Mode:") + WarningStyle.Render("offline"))
	} else {
		fmt.Println(LabelStyle.Render("Mode:") + ValueStyle.Render("online"))
	}

	fmt.Println(SectionStyle.Render("Config"))
	fmt.Println(LabelStyle.Render("File:") + ValueStyle.Render(r.Config.Path))
	fmt.Println(LabelStyle.Render("Theme:") + ValueStyle.Render(r.Config.Theme))
	fmt.Println(LabelStyle.Render("Greeting:") + ValueStyle.Render(r.Config.GreetingDelay))
	fmt.Println(LabelStyle.Render("Timeout:") + ValueStyle.Render(r.Config.RequestTimeout))

	fmt.Println(SectionStyle.Render("Archive"))
	if r.Archive.Enabled {
		fmt.Println(LabelStyle.Render("Path:") + ValueStyle.Render(r.Archive.Path))
		fmt.Println(LabelStyle.Render("Turns:") + ValueStyle.Render(fmt.Sprintf("%d", r.Archive.Turns)))
	} else {
		fmt.Println(LabelStyle.Render("Enabled:") + FaintStyle.Render("no"))
	}
}
