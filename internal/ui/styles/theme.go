// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// COLOR PALETTE
// =============================================================================

// Clay palette: terracotta for Adam, river-blue for the user, sand for
// chrome.
var (
	colorTerracotta = lipgloss.AdaptiveColor{Light: "#9C4722", Dark: "#C8704B"}
	colorRiverBlue  = lipgloss.AdaptiveColor{Light: "#2B5F75", Dark: "#6FA8C2"}
	colorSand       = lipgloss.AdaptiveColor{Light: "#8A7B5C", Dark: "#D9C5A0"}
	colorOlive      = lipgloss.AdaptiveColor{Light: "#5A6339", Dark: "#8A9A5B"}
	colorFaint      = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"}
	colorWarn       = lipgloss.AdaptiveColor{Light: "#B3261E", Dark: "#E06C60"}
)

// =============================================================================
// THEME
// =============================================================================

// Theme holds the styled components of the chat view.
type Theme struct {
	Name    string
	Profile termenv.Profile

	Header    lipgloss.Style
	HeaderSub lipgloss.Style

	UserLabel  lipgloss.Style
	UserText   lipgloss.Style
	AgentLabel lipgloss.Style
	AgentText  lipgloss.Style

	// Gesture renders the *...* stage directions with emphasis.
	Gesture lipgloss.Style

	// FallbackNote marks replies that came from the canned table.
	FallbackNote lipgloss.Style

	InputPrompt lipgloss.Style
	Spinner     lipgloss.Style
	Thinking    lipgloss.Style

	StatusBar    lipgloss.Style
	StatusBadge  lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
}

// NewTheme builds the named theme ("clay" or "mono"; anything else gets
// clay).
func NewTheme(name string) *Theme {
	if name == "mono" {
		return monoTheme()
	}
	return clayTheme()
}

func clayTheme() *Theme {
	return &Theme{
		Name:    "clay",
		Profile: termenv.ColorProfile(),

		Header:    lipgloss.NewStyle().Bold(true).Foreground(colorTerracotta),
		HeaderSub: lipgloss.NewStyle().Foreground(colorSand),

		UserLabel:  lipgloss.NewStyle().Bold(true).Foreground(colorRiverBlue),
		UserText:   lipgloss.NewStyle(),
		AgentLabel: lipgloss.NewStyle().Bold(true).Foreground(colorTerracotta),
		AgentText:  lipgloss.NewStyle(),

		Gesture:      lipgloss.NewStyle().Italic(true).Foreground(colorOlive),
		FallbackNote: lipgloss.NewStyle().Faint(true).Foreground(colorFaint),

		InputPrompt: lipgloss.NewStyle().Bold(true).Foreground(colorSand),
		Spinner:     lipgloss.NewStyle().Foreground(colorTerracotta),
		Thinking:    lipgloss.NewStyle().Faint(true).Foreground(colorSand),

		StatusBar:    lipgloss.NewStyle().Faint(true),
		StatusBadge:  lipgloss.NewStyle().Bold(true).Foreground(colorWarn),
		ShortcutKey:  lipgloss.NewStyle().Bold(true).Foreground(colorSand),
		ShortcutDesc: lipgloss.NewStyle().Faint(true),
	}
}

func monoTheme() *Theme {
	plain := lipgloss.NewStyle()
	bold := lipgloss.NewStyle().Bold(true)
	faint := lipgloss.NewStyle().Faint(true)

	return &Theme{
		Name:    "mono",
		Profile: termenv.Ascii,

		Header:    bold,
		HeaderSub: faint,

		UserLabel:  bold,
		UserText:   plain,
		AgentLabel: bold,
		AgentText:  plain,

		Gesture:      lipgloss.NewStyle().Italic(true),
		FallbackNote: faint,

		InputPrompt: bold,
		Spinner:     plain,
		Thinking:    faint,

		StatusBar:    faint,
		StatusBadge:  bold,
		ShortcutKey:  bold,
		ShortcutDesc: faint,
	}
}
