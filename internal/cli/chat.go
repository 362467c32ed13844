// chat.go - Interactive chat command handler for adam CLI.
//
// USABILITY: Markdown rendering and history for better CLI experience
//
// Command: chat
// Short:   Converse with Adam in a line-based REPL
//
// Examples:
//   adam chat                 Start interactive chat
//   adam chat --offline       Scripted replies only, no network
//
// Interactive commands (during chat):
//   /help, /h           Show available commands
//   /clear, /c          Clear the transcript
//   /history            Show the transcript so far
//   /status             Show session statistics
//   /quit, /q           Exit chat
//   exit, quit          Also exit, with Adam's farewell
//   Ctrl+C, Ctrl+D      Exit chat
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/jeranaias/adam-tui/internal/config"
	"github.com/jeranaias/adam-tui/internal/model"
	"github.com/jeranaias/adam-tui/internal/offline"
	"github.com/jeranaias/adam-tui/internal/session"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
// USABILITY: Supports arrow keys for history navigation and line editing.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a new ChatCLI with input history support.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	dataDir, err := config.DataDir()
	if err != nil {
		dataDir = os.TempDir()
	}

	cli := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(dataDir, "chat_history"),
	}
	cli.LoadHistory()
	return cli
}

// LoadHistory loads input history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists input history with owner-only permissions.
func (c *ChatCLI) SaveHistory() {
	if err := os.MkdirAll(filepath.Dir(c.historyFile), 0700); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// CHAT COMMAND
// =============================================================================

// exitWords end the session the way the web widget's farewell keyword
// does, with Adam's scripted goodbye.
var exitWords = map[string]bool{
	"exit": true,
	"quit": true,
	"bye":  true,
}

// HandleChat runs the interactive REPL.
func HandleChat(args Args) {
	s, err := newCLISession(args)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	defer s.Close()

	input := NewChatCLI()
	defer input.Close()

	start := time.Now()

	if !args.Quiet {
		fmt.Println(TitleStyle.Render("Adam") + FaintStyle.Render("  keeper of Eden's garden"))
		if offline.IsOfflineMode() {
			fmt.Println(WarningStyle.Render(offline.StatusBadge()) + FaintStyle.Render("  scripted replies only"))
		}
		fmt.Println(FaintStyle.Render("Type /help for commands, /quit to leave."))
		fmt.Println()
	}

	// The widget greets after a short pause; the REPL greets immediately.
	greeting := s.controller.AppendGreeting()
	if greeting != nil {
		fmt.Println(styleReply(greeting))
		fmt.Println()
	}

	for {
		text, err := input.ReadInput("you> ")
		if err != nil {
			// liner.ErrPromptAborted on Ctrl+C, io.EOF on Ctrl+D.
			break
		}

		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "/") {
			if handleChatCommand(s, trimmed, start) {
				return
			}
			continue
		}

		if exitWords[strings.ToLower(trimmed)] {
			fmt.Println(styleReply(model.NewAgentMessage(session.FarewellText)))
			return
		}

		reply := s.controller.Submit(context.Background(), text)
		if reply == nil {
			continue
		}
		s.record(trimmed, reply)

		fmt.Println(styleReply(reply))
		fmt.Println()
	}
}

// handleChatCommand executes a slash command. Returns true when the
// session should end.
func handleChatCommand(s *cliSession, cmd string, start time.Time) bool {
	switch strings.ToLower(cmd) {
	case "/help", "/h":
		fmt.Println(FaintStyle.Render("  /clear     clear the transcript"))
		fmt.Println(FaintStyle.Render("  /history   show the transcript so far"))
		fmt.Println(FaintStyle.Render("  /status    show session statistics"))
		fmt.Println(FaintStyle.Render("  /quit      leave"))

	case "/clear", "/c":
		s.controller.Reset()
		fmt.Println(FaintStyle.Render("Transcript cleared."))

	case "/history":
		for _, msg := range s.controller.Transcript() {
			label := msg.Role.DisplayName()
			fmt.Printf("%s %s\n", LabelStyle.Render(label+":"), msg.Text)
		}

	case "/status":
		fmt.Println(LabelStyle.Render("Messages:") + fmt.Sprintf("%d", s.controller.Len()))
		fmt.Println(LabelStyle.Render("Elapsed:") + time.Since(start).Round(time.Second).String())
		fmt.Println(LabelStyle.Render("User ID:") + s.controller.UserID())
		if offline.IsOfflineMode() {
			fmt.Println(LabelStyle.Render("Mode:") + WarningStyle.Render("offline"))
		}

	case "/quit", "/q":
		fmt.Println(styleReply(model.NewAgentMessage(session.FarewellText)))
		return true

	default:
		fmt.Println(WarningStyle.Render("Unknown command: ") + cmd)
	}
	return false
}
