// styles.go - Centralized styling for all CLI commands in adam.
//
// USABILITY: TTY detection for proper terminal handling
//
// All CLI commands use these shared styles instead of defining their
// own.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"github.com/charmbracelet/lipgloss"
)

func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

// =============================================================================
// SHARED STYLES
// =============================================================================

var (
	// TitleStyle is used for command titles and headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("173")). // Terracotta
			MarginBottom(1)

	// SectionStyle is used for section headers within commands.
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			MarginTop(1)

	// LabelStyle is used for field labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(16)

	// ValueStyle is used for regular values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// SuccessStyle is used for success messages and OK statuses.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	// ErrorStyle is used for error messages and failures.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	// WarningStyle is used for warnings, including the offline badge.
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	// AgentStyle is used for Adam's replies in plain CLI output.
	AgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("74")) // River blue

	// GestureStyle renders *gesture* spans in CLI output.
	GestureStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("137")) // Sand

	// FaintStyle is used for secondary annotations.
	FaintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)
