// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"testing"
)

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewUserMessage(t *testing.T) {
	msg := NewUserMessage("hello")

	if msg.Role != RoleUser {
		t.Errorf("role = %v, want %v", msg.Role, RoleUser)
	}
	if msg.Text != "hello" {
		t.Errorf("text = %q, want %q", msg.Text, "hello")
	}
	if msg.Status != StatusSent {
		t.Errorf("status = %v, want %v", msg.Status, StatusSent)
	}
	if msg.ID == "" {
		t.Error("ID should not be empty")
	}
	if msg.Timestamp.IsZero() {
		t.Error("timestamp should be set")
	}
}

func TestNewAgentMessage(t *testing.T) {
	msg := NewAgentMessage("*nods* Peace.")

	if msg.Role != RoleAgent {
		t.Errorf("role = %v, want %v", msg.Role, RoleAgent)
	}
	if msg.Status != StatusNone {
		t.Errorf("agent message should have no status, got %v", msg.Status)
	}
	if msg.Fallback {
		t.Error("plain agent message should not be marked fallback")
	}
}

func TestNewFallbackMessage(t *testing.T) {
	msg := NewFallbackMessage("*crumbles clay* ...")
	if !msg.Fallback {
		t.Error("fallback message should be marked fallback")
	}
	if msg.Role != RoleAgent {
		t.Errorf("role = %v, want %v", msg.Role, RoleAgent)
	}
}

func TestMessageIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		msg := NewUserMessage("x")
		if seen[msg.ID] {
			t.Fatalf("duplicate message ID: %s", msg.ID)
		}
		seen[msg.ID] = true
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{"short", "hi", 10, "hi"},
		{"truncated", "hello world out there", 10, "hello w..."},
		{"newlines flattened", "a\nb", 10, "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := NewUserMessage(tt.text)
			if got := msg.Preview(tt.maxLen); got != tt.want {
				t.Errorf("Preview(%d) = %q, want %q", tt.maxLen, got, tt.want)
			}
		})
	}
}

// =============================================================================
// GESTURE SPAN TESTS
// =============================================================================

func TestSplitGestures(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Segment
	}{
		{
			"no markers",
			"plain words",
			[]Segment{{Text: "plain words"}},
		},
		{
			"leading gesture",
			"*kneads clay* Speak again",
			[]Segment{{Text: "kneads clay", Gesture: true}, {Text: " Speak again"}},
		},
		{
			"gesture in middle",
			"before *nods* after",
			[]Segment{{Text: "before "}, {Text: "nods", Gesture: true}, {Text: " after"}},
		},
		{
			"unterminated marker is literal",
			"2 * 3 is six",
			[]Segment{{Text: "2 * 3 is six"}},
		},
		{
			"empty span dropped",
			"a**b",
			[]Segment{{Text: "a"}, {Text: "b"}},
		},
		{
			"two gestures",
			"*bows* then *smiles*",
			[]Segment{{Text: "bows", Gesture: true}, {Text: " then "}, {Text: "smiles", Gesture: true}},
		},
		{
			"empty input",
			"",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitGestures(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d segments %v, want %d %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("segment %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitGesturesOpaque(t *testing.T) {
	// Content inside a span is not interpreted, only delimited.
	segs := SplitGestures("*touches *empty tablets*")
	// First pair of asterisks closes at the second one.
	if len(segs) == 0 || !segs[0].Gesture || segs[0].Text != "touches " {
		t.Errorf("unexpected segments: %+v", segs)
	}
}

func TestStripGestures(t *testing.T) {
	got := StripGestures("*brushes clay from hands* Speak, and I will answer.")
	want := "brushes clay from hands Speak, and I will answer."
	if got != want {
		t.Errorf("StripGestures = %q, want %q", got, want)
	}
}

// =============================================================================
// EXPORT TESTS
// =============================================================================

func TestExportMarkdown(t *testing.T) {
	msgs := []*Message{
		NewUserMessage("How was man created?"),
		NewAgentMessage("*kneads clay* From dust."),
	}

	md := ExportMarkdown(msgs)

	if !strings.Contains(md, "**You**") {
		t.Error("markdown should contain the user label")
	}
	if !strings.Contains(md, "**Adam**") {
		t.Error("markdown should contain the agent label")
	}
	if !strings.Contains(md, "How was man created?") {
		t.Error("markdown should contain the question text")
	}
}

func TestExportJSON(t *testing.T) {
	msgs := []*Message{NewUserMessage("hi")}
	data, err := ExportJSON(msgs)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if !strings.Contains(string(data), `"text": "hi"`) {
		t.Errorf("JSON missing message text: %s", data)
	}
}
