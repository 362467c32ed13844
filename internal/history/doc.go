// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history archives completed chat turns in a local SQLite
// database.
//
// The live transcript is session-local and discarded when the view
// closes; the archive is an optional record of question/reply pairs for
// later browsing ("adam history"). It is written after a turn settles
// and is never read on the chat path, so a broken or missing database
// cannot affect the conversation.
package history
