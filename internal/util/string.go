// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// UNICODE: Rune-aware helpers prevent mid-character truncation that would
// corrupt UTF-8 strings. Display-width functions account for double-width
// (CJK) characters via go-runewidth.

// TruncateRunes truncates a string to a maximum number of runes.
// If the string is truncated, "..." is appended.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}

// TruncateWidth truncates a string to a maximum display width, appending
// "..." when something was cut.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// StringWidth returns the display width of a string in terminal columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// WrapText wraps text to the given display width, breaking on spaces.
// Words wider than the limit are emitted on their own line unbroken.
// Existing newlines are preserved.
func WrapText(s string, width int) string {
	if width <= 0 {
		return s
	}

	var out []string
	for _, line := range strings.Split(s, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			if runewidth.StringWidth(current)+1+runewidth.StringWidth(word) <= width {
				current += " " + word
			} else {
				out = append(out, current)
				current = word
			}
		}
		out = append(out, current)
	}
	return strings.Join(out, "\n")
}

// NormalizeInput prepares user-typed text for transmission: trims
// surrounding whitespace and applies Unicode NFC normalization so the
// same visible text always produces the same bytes on the wire.
func NormalizeInput(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// RuneLen returns the number of runes in a string. Safer than len() for
// UTF-8 strings.
func RuneLen(s string) int {
	return len([]rune(s))
}
