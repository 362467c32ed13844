// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "strings"

// =============================================================================
// GESTURE SPANS
// =============================================================================

// Segment is a run of display text. Gesture segments came wrapped in
// asterisks ("*kneads clay*") and are rendered with emphasis; the marker
// characters themselves are stripped.
type Segment struct {
	Text    string
	Gesture bool
}

// SplitGestures splits text into plain and gesture segments. The content
// is treated as opaque: nothing inside a gesture span is interpreted. An
// unterminated asterisk is literal text, and empty spans ("**") produce
// no segment.
func SplitGestures(text string) []Segment {
	var segs []Segment
	for len(text) > 0 {
		open := strings.IndexByte(text, '*')
		if open < 0 {
			segs = append(segs, Segment{Text: text})
			break
		}

		closing := strings.IndexByte(text[open+1:], '*')
		if closing < 0 {
			// No closing marker: the rest is literal.
			segs = append(segs, Segment{Text: text})
			break
		}
		closing += open + 1

		if open > 0 {
			segs = append(segs, Segment{Text: text[:open]})
		}
		if inner := text[open+1 : closing]; inner != "" {
			segs = append(segs, Segment{Text: inner, Gesture: true})
		}
		text = text[closing+1:]
	}
	return segs
}

// StripGestures returns the text with gesture markers removed but the
// gesture words kept, for plain-text surfaces that cannot render emphasis.
func StripGestures(text string) string {
	var sb strings.Builder
	for _, seg := range SplitGestures(text) {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}
