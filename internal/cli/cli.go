// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for adam.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdStatus
	CmdConfig
	CmdHistory
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	JSON    bool
	Offline bool // Skip the backend and answer from the canned table

	// Command-specific
	Query      string
	Subcommand string
	ConfigKey  string
	ConfigVal  string

	// Raw args remaining after command extraction
	Raw []string
}

const usageText = `adam - terminal companion for the Adam chat backend

Adam is the first man, shaped from clay, answering questions in his
own voice. This client talks to the Adam web backend and falls back
to scripted replies when the backend is unreachable.

Usage:
  adam                       Start TUI (default)
  adam ask "question"        Ask a single question
  adam chat                  Interactive chat (REPL)
  adam status, s             Show backend and config status
  adam config [show|set|path]  Configuration
  adam history [subcommand]  Conversation archive
  adam version               Show version
  adam help                  Show this help

Global flags:
  --offline                  Answer from the scripted table, no network
  --json                     Output in JSON format (status, history)
  -q, --quiet                Minimal output
  -v, --verbose              Verbose output

Config commands:
  adam config show           Show current configuration
  adam config set KEY VALUE  Set a config value
  adam config path           Print the config file path

History commands:
  adam history show          Show recent turns
    --limit N                Limit to N turns (default: 20)
  adam history search TEXT   Search archived turns
  adam history export        Export the archive
    --format md|json         Export format (default: md)
  adam history clear         Delete all archived turns
    --confirm                Required confirmation flag

Environment:
  ADAM_API_URL               Backend base URL
  ADAM_API_TIMEOUT_SECS      Request timeout in seconds
  ADAM_OFFLINE               Set to 1 to force offline mode
  ADAM_HISTORY               Set to 0 to disable the archive

Config file: ~/.adam/config.toml
Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("adam version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return parseArgv(os.Args[1:])
}

// parseArgv is Parse with injectable argv, for tests.
func parseArgv(argv []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(argv)

	// No remaining args: default to the TUI.
	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs

	case "ask":
		parseAskArgs(&parsedArgs, remaining)
		return CmdAsk, parsedArgs

	case "chat":
		return CmdChat, parsedArgs

	case "status", "s":
		return CmdStatus, parsedArgs

	case "config":
		parseConfigArgs(&parsedArgs, remaining)
		return CmdConfig, parsedArgs

	case "history":
		if len(remaining) > 0 {
			parsedArgs.Subcommand = remaining[0]
		}
		return CmdHistory, parsedArgs

	case "version", "--version", "-V":
		return CmdVersion, parsedArgs

	case "help", "--help", "-h":
		return CmdHelp, parsedArgs

	default:
		// Unknown first argument: treat the whole line as an ask query,
		// so "adam who made you" works without quoting gymnastics.
		parsedArgs.Query = strings.Join(append([]string{cmd}, remaining...), " ")
		return CmdAsk, parsedArgs
	}
}

// parseGlobalFlags extracts global flags and returns the remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	for _, arg := range args {
		switch arg {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "-v", "--verbose":
			parsedArgs.Verbose = true
		case "--json":
			parsedArgs.JSON = true
		case "--offline":
			parsedArgs.Offline = true
		default:
			remaining = append(remaining, arg)
		}
	}

	return remaining, parsedArgs
}

// parseAskArgs joins everything after "ask" into the query.
func parseAskArgs(args *Args, remaining []string) {
	args.Query = strings.TrimSpace(strings.Join(remaining, " "))
}

// parseConfigArgs extracts the config subcommand and key/value.
func parseConfigArgs(args *Args, remaining []string) {
	if len(remaining) == 0 {
		args.Subcommand = "show"
		return
	}
	args.Subcommand = remaining[0]
	if len(remaining) > 1 {
		args.ConfigKey = remaining[1]
	}
	if len(remaining) > 2 {
		args.ConfigVal = strings.Join(remaining[2:], " ")
	}
}
