// history_cmd.go - Conversation archive command handlers for adam.
//
// Command: history [show|search|export|clear]
// Short:   Inspect the conversation archive
//
// Examples:
//   adam history show --limit 10
//   adam history search eden
//   adam history export --format json > turns.json
//   adam history clear --confirm
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/adam-tui/internal/config"
	"github.com/jeranaias/adam-tui/internal/history"
)

const defaultHistoryLimit = 20

// openHistory opens the archive at the configured path.
func openHistory() (*history.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if !cfg.Chat.HistoryEnabled {
		return nil, fmt.Errorf("history archive is disabled (chat.history_enabled = false)")
	}
	path, err := cfg.HistoryPath()
	if err != nil {
		return nil, err
	}
	return history.Open(path)
}

// HandleHistory dispatches the history subcommands.
func HandleHistory(args Args) {
	parser := NewArgParser(args.Raw)

	hist, err := openHistory()
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	defer hist.Close()

	switch parser.Subcommand() {
	case "", "show":
		historyShow(hist, parser, args)
	case "search":
		historySearch(hist, parser, args)
	case "export":
		historyExport(hist, parser)
	case "clear":
		historyClear(hist, parser)
	default:
		fmt.Fprintf(os.Stderr, "Unknown history subcommand: %s\n", parser.Subcommand())
		fmt.Fprintln(os.Stderr, "Usage: adam history [show|search TEXT|export|clear --confirm]")
		os.Exit(1)
	}
}

func historyShow(hist *history.Store, parser *ArgParser, args Args) {
	limit := parser.FlagIntOrDefault("limit", defaultHistoryLimit)
	turns, err := hist.Recent(limit)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	printTurns(turns, args.JSON)
}

func historySearch(hist *history.Store, parser *ArgParser, args Args) {
	query := strings.Join(parser.PositionalFrom(1), " ")
	if query == "" {
		fmt.Fprintln(os.Stderr, "Usage: adam history search TEXT")
		os.Exit(1)
	}

	limit := parser.FlagIntOrDefault("limit", defaultHistoryLimit)
	turns, err := hist.Search(query, limit)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	printTurns(turns, args.JSON)
}

func historyExport(hist *history.Store, parser *ArgParser) {
	// Export everything, oldest first once formatted.
	turns, err := hist.All()
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	switch format := parser.FlagOrDefault("format", "md"); format {
	case "md", "markdown":
		fmt.Print(history.ExportMarkdown(turns))
	case "json":
		out, err := history.ExportJSON(turns)
		if err != nil {
			printError(err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	default:
		fmt.Fprintf(os.Stderr, "Unknown export format: %s (want md or json)\n", format)
		os.Exit(1)
	}
}

func historyClear(hist *history.Store, parser *ArgParser) {
	if !parser.BoolFlag("confirm") {
		fmt.Fprintln(os.Stderr, "This deletes every archived turn. Re-run with --confirm.")
		os.Exit(1)
	}
	if err := hist.Clear(); err != nil {
		printError(err)
		os.Exit(1)
	}
	fmt.Println(SuccessStyle.Render("Archive cleared."))
}

func printTurns(turns []history.Turn, asJSON bool) {
	if asJSON {
		out, err := history.ExportJSON(turns)
		if err != nil {
			printError(err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	if len(turns) == 0 {
		fmt.Println(FaintStyle.Render("No archived turns."))
		return
	}

	for _, t := range turns {
		stamp := t.AskedAt.Format("2006-01-02 15:04")
		fmt.Println(FaintStyle.Render(stamp))
		fmt.Println(LabelStyle.Render("You:") + ValueStyle.Render(t.Question))
		line := LabelStyle.Render("Adam:") + AgentStyle.Render(t.Reply)
		if t.Fallback {
			line += FaintStyle.Render("  (offline reply)")
		}
		fmt.Println(line)
		fmt.Println()
	}
}
