// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the HTTP client for the Adam chat backend.
//
// The backend exposes a single chat endpoint:
//
//	POST <base>/api/chat
//	request:  {"user_id": "...", "message": "..."}
//	response: {"status": "success", "response": "..."}
//
// Any non-2xx status, undecodable body, status other than "success", or
// empty response string is reported as an error; the session controller
// maps every one of them to the canned-reply table. The client never
// retries: the controller's contract is exactly one outbound request per
// submitted message.
package api
