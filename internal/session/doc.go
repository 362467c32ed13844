// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the chat-session state machine.
//
// A Controller holds the transcript, the pending flag, and the persistent
// user ID, and drives every turn through the same lifecycle:
//
//	idle -> user message appended -> pending -> request settles -> agent
//	message appended -> idle
//
// Guarantees, regardless of backend behavior:
//   - blank input and input submitted while a turn is pending are ignored
//   - an accepted submission grows the transcript by exactly two messages
//   - the agent message comes from the backend when it supplies a usable
//     reply, and from the fallback table otherwise; no turn is ever left
//     unanswered and no error escapes to the caller
//   - pending is cleared unconditionally when the turn settles
//
// Views (the bubbletea model, the REPL, one-shot ask) render transcript
// state and call Begin/Settle or Submit; they hold no turn logic of their
// own.
package session
