// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package fallback

import "strings"

// =============================================================================
// TOPIC TABLE
// =============================================================================

// Topic is one entry in the canned-reply table: if any keyword occurs in
// the user's text, Reply is used.
type Topic struct {
	Name     string
	Keywords []string
	Reply    string
}

// Table is an ordered list of topics plus a default reply. Order is
// priority: the first topic with a matching keyword wins.
type Table struct {
	topics       []Topic
	defaultReply string
}

// NewTable builds a table from topics in priority order. defaultReply is
// used when no topic matches; it must be non-empty so the "always one
// reply" guarantee holds.
func NewTable(topics []Topic, defaultReply string) Table {
	if defaultReply == "" {
		defaultReply = DefaultReply
	}
	return Table{topics: topics, defaultReply: defaultReply}
}

// Match returns the canned reply for the given user text. It never
// returns an empty string.
func (t Table) Match(text string) string {
	reply, _ := t.MatchTopic(text)
	return reply
}

// MatchTopic returns the canned reply and the name of the topic that
// produced it. The topic name is empty for the default reply.
func (t Table) MatchTopic(text string) (reply, topic string) {
	lower := strings.ToLower(text)
	for _, tp := range t.topics {
		for _, kw := range tp.Keywords {
			if strings.Contains(lower, kw) {
				return tp.Reply, tp.Name
			}
		}
	}
	return t.defaultReply, ""
}

// IsZero reports whether the table is the zero value (no topics, no
// default reply), as opposed to a deliberately topic-less table.
func (t Table) IsZero() bool {
	return t.topics == nil && t.defaultReply == ""
}

// Topics returns the table's topics in priority order.
func (t Table) Topics() []Topic {
	out := make([]Topic, len(t.topics))
	copy(out, t.topics)
	return out
}

// =============================================================================
// DEFAULT TABLE
// =============================================================================

// DefaultReply answers anything the table has no topic for.
const DefaultReply = "*crumbles clay* My connection to sacred knowledge falters... Speak again, that I may understand."

// Default returns the built-in Adam reply table. Replies keep the
// gesture-marker convention ("*kneads clay*") that the view renders with
// emphasis.
func Default() Table {
	return NewTable([]Topic{
		{
			Name:     "creation",
			Keywords: []string{"created", "creation", "made you", "origin", "first man", "first human", "dust"},
			Reply:    "*kneads clay* From dust was I shaped, and to dust shall I return.",
		},
		{
			Name:     "mercy",
			Keywords: []string{"mercy", "merciful", "forgive", "compassion"},
			Reply:    "The Lord is Most Merciful - seek repentance as I did after my lapse.",
		},
		{
			Name:     "companion",
			Keywords: []string{"eve", "wife", "partner", "companion"},
			Reply:    "*touches side* She was made from my very being, a companion for my soul.",
		},
		{
			Name:     "identity",
			Keywords: []string{"who are you", "your name"},
			Reply:    "*brushes clay* I am Adam, the first human fashioned by the Hand Divine.",
		},
		{
			Name:     "guidance",
			Keywords: []string{"help", "guide", "assist"},
			Reply:    "Ask me of: creation, Eden, the prophets, or divine mercy.",
		},
		{
			Name:     "farewell",
			Keywords: []string{"goodbye", "farewell", "bye"},
			Reply:    "*nods* Peace be upon you until we meet again.",
		},
	}, DefaultReply)
}
