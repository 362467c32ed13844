// ask.go - Single question command handler for adam CLI.
//
// USABILITY: Markdown rendering and history for better CLI experience
//
// Command: ask [question]
// Short:   Ask Adam a single question
//
// Examples:
//   adam ask "Who made you?"
//   adam ask --offline "Tell me of Eden"
//   adam who made you            (bare words also reach ask)
//
// Flags:
//   --offline           Answer from the scripted table, no network
//   -q, --quiet         Reply text only, no styling
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// markdownRenderer is the global glamour renderer for markdown output.
// USABILITY: Renders *gesture* spans as emphasis in terminal output.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(DefaultTerminalWidth),
	)
	if err != nil {
		// Fall back to plain text if renderer initialization fails.
		markdownRenderer = nil
	}
}

// renderMarkdown renders markdown content for terminal display. Returns
// the original content if rendering fails or the renderer is
// unavailable.
func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}
	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// =============================================================================
// ASK COMMAND
// =============================================================================

// HandleAsk runs one full turn and prints the reply.
func HandleAsk(args Args) {
	if args.Query == "" {
		fmt.Fprintln(os.Stderr, "Usage: adam ask \"question\"")
		os.Exit(1)
	}

	s, err := newCLISession(args)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	defer s.Close()

	reply := s.controller.Submit(context.Background(), args.Query)
	if reply == nil {
		// Blank after normalization.
		fmt.Fprintln(os.Stderr, "Usage: adam ask \"question\"")
		os.Exit(1)
	}
	s.record(args.Query, reply)

	switch {
	case args.Quiet:
		fmt.Println(reply.Text)
	case IsStdoutTTY():
		// Adam's replies carry *gesture* markdown; glamour renders the
		// emphasis. Piped output stays plain.
		fmt.Print(renderMarkdown(reply.Text))
		if reply.Fallback {
			fmt.Println(FaintStyle.Render("(offline reply)"))
		}
	default:
		fmt.Println(reply.Text)
	}
}
