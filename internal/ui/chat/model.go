// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/adam-tui/internal/config"
	"github.com/jeranaias/adam-tui/internal/history"
	"github.com/jeranaias/adam-tui/internal/session"
	"github.com/jeranaias/adam-tui/internal/ui/styles"
)

// Layout constants.
const (
	headerHeight = 2
	footerHeight = 4
	inputLimit   = 2000
)

// Model is the bubbletea model for the chat view.
type Model struct {
	controller *session.Controller
	history    *history.Store
	theme      *styles.Theme

	input    textinput.Model
	viewport viewport.Model
	spin     spinner.Model

	width  int
	height int
	ready  bool

	baseURL string
}

// New builds the chat view around an initialized controller. hist may be
// nil when history is disabled.
func New(cfg *config.Config, ctrl *session.Controller, hist *history.Store) Model {
	theme := styles.NewTheme(cfg.UI.Theme)

	input := textinput.New()
	input.Placeholder = "Speak to Adam..."
	input.Prompt = "> "
	input.PromptStyle = theme.InputPrompt
	input.CharLimit = inputLimit
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = theme.Spinner

	return Model{
		controller: ctrl,
		history:    hist,
		theme:      theme,
		input:      input,
		spin:       spin,
		baseURL:    cfg.API.BaseURL,
	}
}

// Init schedules the greeting and starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		greetingCmd(m.controller.GreetingDelay()),
	)
}
