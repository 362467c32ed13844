// terminal.go - Terminal detection for adam CLI output.
//
// USABILITY: TTY detection for proper terminal handling
//
// Colors are disabled for non-TTY output (piped, redirected), NO_COLOR
// is respected (https://no-color.org/), and FORCE_COLOR overrides
// detection.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTTY returns true if stdin is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY returns true if stdout is a terminal. Markdown rendering
// and colors are skipped when it is not, so piped output stays clean.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

const (
	// DefaultTerminalWidth is the fallback width when detection fails.
	DefaultTerminalWidth = 80

	// MinTerminalWidth is the minimum width used for wrapping.
	MinTerminalWidth = 40
)

// GetTerminalWidth returns the current terminal width, or
// DefaultTerminalWidth when it cannot be determined.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	return width
}

// GetColorProfile returns the color profile for CLI output.
func GetColorProfile() termenv.Profile {
	if os.Getenv("FORCE_COLOR") != "" {
		return termenv.ANSI256
	}
	if os.Getenv("NO_COLOR") != "" || !IsStdoutTTY() {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
