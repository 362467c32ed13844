// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"
	"testing"
)

// =============================================================================
// ARG PARSER TESTS (args.go)
// =============================================================================

func TestArgParser_BasicParsing(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantSub  string
		validate func(*testing.T, *ArgParser)
	}{
		{
			name:    "simple subcommand",
			args:    []string{"show"},
			wantSub: "show",
		},
		{
			name:    "subcommand with flag",
			args:    []string{"show", "--limit", "50"},
			wantSub: "show",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("limit") != "50" {
					t.Errorf("Flag(limit) = %q, want %q", p.Flag("limit"), "50")
				}
			},
		},
		{
			name:    "flag with equals",
			args:    []string{"export", "--format=json"},
			wantSub: "export",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("format") != "json" {
					t.Errorf("Flag(format) = %q, want %q", p.Flag("format"), "json")
				}
			},
		},
		{
			name:    "boolean flag",
			args:    []string{"clear", "--confirm"},
			wantSub: "clear",
			validate: func(t *testing.T, p *ArgParser) {
				if !p.BoolFlag("confirm") {
					t.Error("BoolFlag(confirm) should be true")
				}
			},
		},
		{
			name:    "explicit boolean value",
			args:    []string{"show", "--json=false"},
			wantSub: "show",
			validate: func(t *testing.T, p *ArgParser) {
				if p.BoolFlag("json") {
					t.Error("BoolFlag(json) should be false")
				}
			},
		},
		{
			name:    "multiple positional args",
			args:    []string{"search", "garden", "of", "eden"},
			wantSub: "search",
			validate: func(t *testing.T, p *ArgParser) {
				if p.PositionalCount() != 4 {
					t.Errorf("PositionalCount() = %d, want 4", p.PositionalCount())
				}
				joined := strings.Join(p.PositionalFrom(1), " ")
				if joined != "garden of eden" {
					t.Errorf("PositionalFrom(1) joined = %q, want %q", joined, "garden of eden")
				}
			},
		},
		{
			name:    "no arguments",
			args:    []string{},
			wantSub: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewArgParser(tt.args)
			if p.Subcommand() != tt.wantSub {
				t.Errorf("Subcommand() = %q, want %q", p.Subcommand(), tt.wantSub)
			}
			if tt.validate != nil {
				tt.validate(t, p)
			}
		})
	}
}

func TestArgParser_Defaults(t *testing.T) {
	p := NewArgParser([]string{"show"})

	if got := p.FlagOrDefault("format", "md"); got != "md" {
		t.Errorf("FlagOrDefault = %q, want md", got)
	}
	if got := p.FlagIntOrDefault("limit", 20); got != 20 {
		t.Errorf("FlagIntOrDefault with missing flag = %d, want 20", got)
	}

	p = NewArgParser([]string{"show", "--limit", "abc"})
	if got := p.FlagIntOrDefault("limit", 20); got != 20 {
		t.Errorf("FlagIntOrDefault with bad int = %d, want 20", got)
	}
}

// =============================================================================
// COMMAND PARSING TESTS (cli.go)
// =============================================================================

func TestParse_Commands(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		wantCmd Command
	}{
		{"no args defaults to TUI", []string{}, CmdTUI},
		{"explicit tui", []string{"tui"}, CmdTUI},
		{"ask", []string{"ask", "hello"}, CmdAsk},
		{"chat", []string{"chat"}, CmdChat},
		{"status", []string{"status"}, CmdStatus},
		{"status alias", []string{"s"}, CmdStatus},
		{"config", []string{"config", "show"}, CmdConfig},
		{"history", []string{"history", "show"}, CmdHistory},
		{"version", []string{"version"}, CmdVersion},
		{"help", []string{"help"}, CmdHelp},
		{"bare words become ask", []string{"who", "made", "you"}, CmdAsk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := parseArgv(tt.argv)
			if cmd != tt.wantCmd {
				t.Errorf("parseArgv(%v) = %v, want %v", tt.argv, cmd, tt.wantCmd)
			}
		})
	}
}

func TestParse_GlobalFlags(t *testing.T) {
	cmd, args := parseArgv([]string{"--offline", "--json", "-q", "status"})
	if cmd != CmdStatus {
		t.Fatalf("cmd = %v, want CmdStatus", cmd)
	}
	if !args.Offline {
		t.Error("Offline should be true")
	}
	if !args.JSON {
		t.Error("JSON should be true")
	}
	if !args.Quiet {
		t.Error("Quiet should be true")
	}
}

func TestParse_AskQuery(t *testing.T) {
	_, args := parseArgv([]string{"ask", "who", "made", "you"})
	if args.Query != "who made you" {
		t.Errorf("Query = %q, want %q", args.Query, "who made you")
	}

	// Bare words reach ask with the full line intact.
	_, args = parseArgv([]string{"tell", "me", "of", "eden"})
	if args.Query != "tell me of eden" {
		t.Errorf("Query = %q, want %q", args.Query, "tell me of eden")
	}
}

func TestParse_ConfigArgs(t *testing.T) {
	_, args := parseArgv([]string{"config", "set", "ui.theme", "mono"})
	if args.Subcommand != "set" {
		t.Errorf("Subcommand = %q, want set", args.Subcommand)
	}
	if args.ConfigKey != "ui.theme" {
		t.Errorf("ConfigKey = %q, want ui.theme", args.ConfigKey)
	}
	if args.ConfigVal != "mono" {
		t.Errorf("ConfigVal = %q, want mono", args.ConfigVal)
	}

	_, args = parseArgv([]string{"config"})
	if args.Subcommand != "show" {
		t.Errorf("bare config Subcommand = %q, want show", args.Subcommand)
	}
}
