// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/adam-tui/internal/model"
	"github.com/jeranaias/adam-tui/internal/offline"
	"github.com/jeranaias/adam-tui/internal/session"
	"github.com/jeranaias/adam-tui/internal/util"
)

// View renders the full chat screen.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(m.renderFooter())
	return sb.String()
}

// =============================================================================
// SECTIONS
// =============================================================================

func (m Model) renderHeader() string {
	title := m.theme.Header.Render("Adam")
	sub := m.theme.HeaderSub.Render("keeper of Eden's garden")
	return title + "  " + sub
}

func (m Model) renderFooter() string {
	var sb strings.Builder

	if m.controller.Pending() {
		sb.WriteString(m.spin.View())
		sb.WriteString(m.theme.Thinking.Render(" Adam shapes a reply..."))
	}
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(m.renderStatusBar())

	return sb.String()
}

func (m Model) renderStatusBar() string {
	parts := []string{m.theme.StatusBar.Render(util.TruncateWidth(m.baseURL, 40))}

	if badge := offline.StatusBadge(); badge != "" {
		parts = append(parts, m.theme.StatusBadge.Render(badge))
	}

	parts = append(parts,
		m.theme.ShortcutKey.Render("enter")+m.theme.ShortcutDesc.Render(" send"),
		m.theme.ShortcutKey.Render("ctrl+o")+m.theme.ShortcutDesc.Render(" offline"),
		m.theme.ShortcutKey.Render("esc")+m.theme.ShortcutDesc.Render(" quit"),
	)

	return strings.Join(parts, "  ")
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// renderTranscript renders the controller's projection. Gesture spans
// get the italic style; the text itself is never interpreted.
func (m Model) renderTranscript() string {
	width := m.viewport.Width - 2
	if width < 20 {
		width = 20
	}

	var sb strings.Builder
	for i, rm := range m.controller.Rendered() {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(m.renderMessage(rm, width))
	}
	return sb.String()
}

func (m Model) renderMessage(rm session.RenderedMessage, width int) string {
	var label, body string

	switch rm.Sender {
	case model.RoleUser:
		label = m.theme.UserLabel.Render("You")
		body = m.styleSegments(rm.Segments, m.theme.UserText)
	default:
		label = m.theme.AgentLabel.Render("Adam")
		body = m.styleSegments(rm.Segments, m.theme.AgentText)
		if rm.Fallback {
			label += " " + m.theme.FallbackNote.Render("(offline reply)")
		}
	}

	// lipgloss wrapping is ANSI-aware, so styled gesture runs keep
	// their width.
	return label + "\n" + lipgloss.NewStyle().Width(width).Render(body)
}

// styleSegments styles plain runs with base and gesture runs with the
// gesture style.
func (m Model) styleSegments(segs []model.Segment, base interface{ Render(...string) string }) string {
	var sb strings.Builder
	for _, seg := range segs {
		if seg.Gesture {
			sb.WriteString(m.theme.Gesture.Render(seg.Text))
		} else {
			sb.WriteString(base.Render(seg.Text))
		}
	}
	return sb.String()
}
