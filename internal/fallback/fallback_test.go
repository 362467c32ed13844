// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package fallback

import (
	"strings"
	"testing"
)

func TestMatchTopics(t *testing.T) {
	table := Default()

	tests := []struct {
		name      string
		input     string
		wantTopic string
	}{
		{"creation question", "How was man created?", "creation"},
		{"creation uppercase", "TELL ME ABOUT CREATION", "creation"},
		{"mercy", "does god forgive?", "mercy"},
		{"companion", "tell me about Eve", "companion"},
		{"identity", "who are you?", "identity"},
		{"guidance", "can you help me", "guidance"},
		{"farewell", "goodbye adam", "farewell"},
		{"no match", "what is the weather", ""},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, topic := table.MatchTopic(tt.input)
			if topic != tt.wantTopic {
				t.Errorf("topic = %q, want %q", topic, tt.wantTopic)
			}
			if reply == "" {
				t.Error("reply must never be empty")
			}
		})
	}
}

func TestMatchDeterministic(t *testing.T) {
	table := Default()
	input := "how was man created?"

	first := table.Match(input)
	for i := 0; i < 10; i++ {
		if got := table.Match(input); got != first {
			t.Fatalf("reply changed between calls: %q vs %q", first, got)
		}
	}
}

func TestMatchPriorityOrder(t *testing.T) {
	// Text matching two topics resolves to the earlier one.
	table := Default()
	_, topic := table.MatchTopic("was eve created too?")
	if topic != "creation" {
		t.Errorf("topic = %q, want creation (priority order)", topic)
	}
}

func TestDefaultReplyUsed(t *testing.T) {
	table := Default()
	reply, topic := table.MatchTopic("zzz unrelated zzz")
	if topic != "" {
		t.Errorf("expected default, got topic %q", topic)
	}
	if reply != DefaultReply {
		t.Errorf("reply = %q, want default", reply)
	}
}

func TestNewTableEmptyDefault(t *testing.T) {
	table := NewTable(nil, "")
	if got := table.Match("anything"); got != DefaultReply {
		t.Errorf("empty default not backfilled: %q", got)
	}
}

func TestCustomTable(t *testing.T) {
	table := NewTable([]Topic{
		{Name: "greet", Keywords: []string{"hello"}, Reply: "hi there"},
	}, "dunno")

	if got := table.Match("well hello friend"); got != "hi there" {
		t.Errorf("got %q, want custom reply", got)
	}
	if got := table.Match("hmm"); got != "dunno" {
		t.Errorf("got %q, want custom default", got)
	}
}

func TestRepliesKeepGestureConvention(t *testing.T) {
	// At least the creation and default replies carry gesture markers;
	// the view relies on the *...* convention.
	table := Default()
	reply := table.Match("how was man created")
	if !strings.Contains(reply, "*") {
		t.Errorf("creation reply lost its gesture marker: %q", reply)
	}
}
