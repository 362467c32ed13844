// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/adam-tui/internal/config"
	"github.com/jeranaias/adam-tui/internal/session"
)

// echoReplier answers every message with a fixed string.
type echoReplier struct{ reply string }

func (e echoReplier) Reply(ctx context.Context, userID, message string) (string, error) {
	return e.reply, nil
}

func newTestModel(t *testing.T, r session.Replier) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.UI.Theme = "mono"
	ctrl := session.New(session.Config{UserID: "user_test", Replier: r})
	m := New(cfg, ctrl, nil)

	// Simulate the first window size message so the viewport exists.
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

func TestEnterSubmitsThroughController(t *testing.T) {
	m := newTestModel(t, echoReplier{reply: "Peace."})
	m = typeText(m, "hello")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	// Begin ran synchronously: user entry placed, pending raised,
	// input cleared, settle command issued.
	if m.controller.Len() != 1 {
		t.Errorf("transcript len = %d, want 1", m.controller.Len())
	}
	if !m.controller.Pending() {
		t.Error("pending should be true after enter")
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared: %q", m.input.Value())
	}
	if cmd == nil {
		t.Fatal("enter should produce a settle command")
	}
}

func TestEnterOnBlankInputIsNoOp(t *testing.T) {
	m := newTestModel(t, echoReplier{reply: "x"})
	m = typeText(m, "   ")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.controller.Len() != 0 {
		t.Errorf("transcript len = %d, want 0", m.controller.Len())
	}
	if m.controller.Pending() {
		t.Error("pending should stay false for blank input")
	}
}

func TestEnterWhilePendingKeepsTypedText(t *testing.T) {
	m := newTestModel(t, echoReplier{reply: "x"})
	m = typeText(m, "first")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	// Second submission while the first is pending: rejected, and the
	// typed text stays in the box.
	m = typeText(m, "second")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.controller.Len() != 1 {
		t.Errorf("transcript len = %d, want 1", m.controller.Len())
	}
	if m.input.Value() != "second" {
		t.Errorf("input = %q, want preserved text", m.input.Value())
	}
}

func TestGreetingMsgAppendsOnce(t *testing.T) {
	m := newTestModel(t, nil)

	updated, _ := m.Update(GreetingMsg{})
	m = updated.(Model)
	updated, _ = m.Update(GreetingMsg{})
	m = updated.(Model)

	if m.controller.Len() != 1 {
		t.Errorf("transcript len = %d, want 1 greeting", m.controller.Len())
	}
}

func TestViewShowsTranscriptAndStatus(t *testing.T) {
	m := newTestModel(t, nil)
	updated, _ := m.Update(GreetingMsg{})
	m = updated.(Model)

	view := m.View()
	if !strings.Contains(view, "Speak, and I will answer.") {
		t.Error("view missing greeting text")
	}
	if !strings.Contains(view, "Adam") {
		t.Error("view missing agent label")
	}
	if !strings.Contains(view, "enter") {
		t.Error("view missing shortcut help")
	}
}

func TestConfigReloadSwitchesTheme(t *testing.T) {
	m := newTestModel(t, nil)

	cfg := config.DefaultConfig()
	cfg.UI.Theme = "clay"
	updated, _ := m.Update(ConfigReloadedMsg{Config: cfg})
	m = updated.(Model)

	if m.theme.Name != "clay" {
		t.Errorf("theme = %q, want clay", m.theme.Name)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("ctrl+c produced %v, want quit", msg)
	}
}
