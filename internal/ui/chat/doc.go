// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the bubbletea chat view.
//
// The view is deliberately thin: it renders the session controller's
// transcript and pending flag and forwards submitted text. All turn
// logic — validation, the single outbound request, fallback selection,
// the pending gate — lives in internal/session. The view's only jobs
// are layout, the spinner while a turn is pending, italic rendering of
// gesture spans, and scrolling.
package chat
