// config_cmd.go - Configuration command handlers for adam.
//
// Command: config [show|set|path]
// Short:   Inspect and update the config file
//
// Examples:
//   adam config show
//   adam config set api.base_url http://localhost:5000
//   adam config set ui.theme mono
//   adam config path
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/adam-tui/internal/config"
)

// HandleConfig dispatches the config subcommands.
func HandleConfig(args Args) {
	switch args.Subcommand {
	case "", "show":
		configShow()
	case "set":
		configSet(args.ConfigKey, args.ConfigVal)
	case "path":
		path, err := config.Path()
		if err != nil {
			printError(err)
			os.Exit(1)
		}
		fmt.Println(path)
	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", args.Subcommand)
		fmt.Fprintln(os.Stderr, "Usage: adam config [show|set KEY VALUE|path]")
		os.Exit(1)
	}
}

func configShow() {
	cfg, err := config.Load()
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	fmt.Println(TitleStyle.Render("adam config"))
	fmt.Println(LabelStyle.Render("api.base_url:") + ValueStyle.Render(cfg.API.BaseURL))
	fmt.Println(LabelStyle.Render("api.timeout_secs:") + ValueStyle.Render(fmt.Sprintf("%d", cfg.API.TimeoutSecs)))
	fmt.Println(LabelStyle.Render("chat.greeting_delay_ms:") + ValueStyle.Render(fmt.Sprintf("%d", cfg.Chat.GreetingDelayMs)))
	fmt.Println(LabelStyle.Render("chat.history_enabled:") + ValueStyle.Render(fmt.Sprintf("%t", cfg.Chat.HistoryEnabled)))
	if cfg.Chat.HistoryPath != "" {
		fmt.Println(LabelStyle.Render("chat.history_path:") + ValueStyle.Render(cfg.Chat.HistoryPath))
	}
	fmt.Println(LabelStyle.Render("ui.theme:") + ValueStyle.Render(cfg.UI.Theme))
	fmt.Println(LabelStyle.Render("offline_mode:") + ValueStyle.Render(fmt.Sprintf("%t", cfg.OfflineMode)))
}

func configSet(key, value string) {
	if key == "" || value == "" {
		fmt.Fprintln(os.Stderr, "Usage: adam config set KEY VALUE")
		fmt.Fprintln(os.Stderr, "Keys: "+strings.Join(config.Keys(), ", "))
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if err := cfg.Set(key, value); err != nil {
		printError(err)
		fmt.Fprintln(os.Stderr, "Keys: "+strings.Join(config.Keys(), ", "))
		os.Exit(1)
	}

	if err := cfg.Save(); err != nil {
		printError(err)
		os.Exit(1)
	}

	fmt.Println(SuccessStyle.Render("Saved ") + ValueStyle.Render(key+" = "+value))
}
