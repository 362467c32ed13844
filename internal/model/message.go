// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAgent:
		return "Adam"
	default:
		return string(r)
	}
}

// =============================================================================
// STATUS TYPE
// =============================================================================

// Status tracks the delivery state of a user message. A user message is
// appended to the transcript before any network activity, so the only
// state it can be in is "sent".
type Status string

const (
	StatusNone Status = ""
	StatusSent Status = "sent"
)

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single entry in a transcript. ID and Timestamp are set once
// at creation and never change.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`

	// Status applies to user messages only.
	Status Status `json:"status,omitempty"`

	// Fallback is true when the text came from the local canned-reply
	// table rather than the backend.
	Fallback bool `json:"fallback,omitempty"`
}

// NewUserMessage creates a user message marked sent.
func NewUserMessage(text string) *Message {
	return &Message{
		ID:        generateID(),
		Role:      RoleUser,
		Text:      text,
		Timestamp: time.Now(),
		Status:    StatusSent,
	}
}

// NewAgentMessage creates an agent message.
func NewAgentMessage(text string) *Message {
	return &Message{
		ID:        generateID(),
		Role:      RoleAgent,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// NewFallbackMessage creates an agent message sourced from the canned-reply
// table.
func NewFallbackMessage(text string) *Message {
	msg := NewAgentMessage(text)
	msg.Fallback = true
	return msg
}

// Preview returns a truncated single-line preview of the message text.
// Uses rune-based truncation to handle Unicode correctly.
func (m *Message) Preview(maxLen int) string {
	text := strings.ReplaceAll(m.Text, "\n", " ")
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// IsEmpty returns true if the message has no text.
func (m *Message) IsEmpty() bool {
	return len(m.Text) == 0
}

// =============================================================================
// TRANSCRIPT EXPORT
// =============================================================================

// ExportMarkdown renders a transcript as a Markdown document with role
// labels and timestamps.
func ExportMarkdown(msgs []*Message) string {
	var sb strings.Builder
	sb.WriteString("# Conversation with Adam\n\n")

	for _, msg := range msgs {
		sb.WriteString("**" + msg.Role.DisplayName() + "** (" + msg.Timestamp.Format("15:04") + "):\n\n")
		sb.WriteString(msg.Text)
		sb.WriteString("\n\n---\n\n")
	}

	return sb.String()
}

// ExportJSON renders a transcript as pretty-printed JSON.
func ExportJSON(msgs []*Message) ([]byte, error) {
	return json.MarshalIndent(msgs, "", "  ")
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateID creates a unique message ID from a time component and a
// random component.
func generateID() string {
	bytes := make([]byte, 6)
	rand.Read(bytes)
	return "msg_" + strconv.FormatInt(time.Now().UnixMilli(), 36) + "_" + hex.EncodeToString(bytes)
}
