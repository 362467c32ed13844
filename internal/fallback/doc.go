// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package fallback provides the canned-reply table used when the Adam
// backend cannot supply an answer.
//
// The contract is "every submitted message yields a visible reply": when
// the network call fails, times out, or returns an unusable payload, the
// session controller answers from this table instead. Matching is a
// case-insensitive substring check against an ordered topic list; the
// first matching topic wins and a fixed default applies when none match.
// The same input always produces the same reply.
package fallback
