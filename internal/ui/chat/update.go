// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/adam-tui/internal/offline"
	"github.com/jeranaias/adam-tui/internal/ui/styles"
)

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4

		vpHeight := msg.Height - headerHeight - footerHeight
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.refreshTranscript()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyCtrlO:
			offline.Toggle()
			m.refreshTranscript()

		case tea.KeyEnter:
			if cmd := m.submit(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

	case GreetingMsg:
		m.controller.AppendGreeting()
		m.refreshTranscript()

	case ReplyMsg:
		// The controller already appended the message; just re-render.
		m.refreshTranscript()

	case ConfigReloadedMsg:
		m.theme = styles.NewTheme(msg.Config.UI.Theme)
		m.baseURL = msg.Config.API.BaseURL
		offline.SetOfflineMode(msg.Config.OfflineMode)
		m.refreshTranscript()

	case spinner.TickMsg:
		// Only animate while a turn is pending; the tick chain dies
		// down on its own once the reply lands.
		if m.controller.Pending() {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Let the text input see every message (cursor blink, typing).
	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	var vpCmd tea.Cmd
	if m.ready {
		m.viewport, vpCmd = m.viewport.Update(msg)
		cmds = append(cmds, vpCmd)
	}

	return m, tea.Batch(cmds...)
}

// submit hands the typed text to the controller. The controller decides
// whether the turn starts: blank input and an in-flight turn are both
// no-ops, in which case the typed text stays in the input box.
func (m *Model) submit() tea.Cmd {
	user, ok := m.controller.Begin(m.input.Value())
	if !ok {
		return nil
	}

	m.input.Reset()
	m.refreshTranscript()

	return tea.Batch(
		settleCmd(m.controller, m.history, user.Text),
		m.spin.Tick,
	)
}

// refreshTranscript re-renders the viewport content and pins it to the
// bottom.
func (m *Model) refreshTranscript() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}
