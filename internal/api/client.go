// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jeranaias/adam-tui/internal/offline"
)

// Configuration constants for the Adam backend API.
const (
	// DefaultTimeout bounds the whole request. Expiry is treated as a
	// failure so the "always one reply" guarantee holds.
	DefaultTimeout = 15 * time.Second

	// MaxResponseSize caps the response body read. A reply is a short
	// text string; anything near this limit is malformed.
	MaxResponseSize = 1 * 1024 * 1024 // 1MB
)

// PERFORMANCE: Connection pooling reduces TCP handshake overhead.
// Shared HTTP client for all backend requests.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
	Timeout: DefaultTimeout,
}

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrUnusableReply indicates a 2xx response whose payload carried no
	// usable reply (wrong status value or empty response string).
	ErrUnusableReply = errors.New("backend response carried no usable reply")

	// ErrMalformedPayload indicates a 2xx response whose body could not
	// be decoded.
	ErrMalformedPayload = errors.New("backend response could not be decoded")
)

// StatusError represents a non-2xx HTTP response from the backend.
type StatusError struct {
	Code int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned HTTP %d", e.Code)
}

// Is allows errors.Is comparison against another StatusError regardless
// of code.
func (e *StatusError) Is(target error) bool {
	_, ok := target.(*StatusError)
	return ok
}

// =============================================================================
// WIRE TYPES
// =============================================================================

// chatRequest is the body of POST /api/chat.
type chatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// chatResponse is the success body of POST /api/chat.
type chatResponse struct {
	Status   string `json:"status"`
	Response string `json:"response"`
}

// statusResponse is the body of GET /api/status.
type statusResponse struct {
	Status        string `json:"status"`
	Knowledge     string `json:"knowledge,omitempty"`
	Conversations int    `json:"conversations,omitempty"`
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to one Adam backend.
type Client struct {
	baseURL    string
	httpClient *http.Client

	// Politeness limiter: a fixed-interval brake on outbound chat calls.
	// Wait runs under the request context, so the bounded-wait guarantee
	// is unaffected.
	limiter *rate.Limiter
}

// NewClient creates a client for the given base URL. The URL is validated
// up front (http/https only); timeout zero means DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if err := offline.ValidateBackendURL(baseURL); err != nil {
		return nil, err
	}

	httpClient := sharedHTTPClient
	if timeout > 0 && timeout != DefaultTimeout {
		clone := *sharedHTTPClient
		clone.Timeout = timeout
		httpClient = &clone
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Every(200*time.Millisecond), 1),
	}, nil
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Reply sends one chat message and returns the backend's reply text.
// Exactly one HTTP request is issued per call; there are no retries.
// Offline mode, transport errors, non-2xx statuses, undecodable bodies,
// and unusable payloads all surface as errors for the caller to map to
// the fallback table.
func (c *Client) Reply(ctx context.Context, userID, message string) (string, error) {
	if err := offline.CheckChatAllowed(); err != nil {
		return "", err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := json.Marshal(chatRequest{UserID: userID, Message: message})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", &StatusError{Code: resp.StatusCode}
	}

	var parsed chatResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, MaxResponseSize)).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	if parsed.Status != "success" || parsed.Response == "" {
		return "", ErrUnusableReply
	}

	return parsed.Response, nil
}

// Ping checks backend health via GET /api/status. Used by the status
// command and doctor checks; the chat path never depends on it.
func (c *Client) Ping(ctx context.Context) error {
	if err := offline.CheckChatAllowed(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/status", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("status request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode}
	}

	var parsed statusResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, MaxResponseSize)).Decode(&parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if parsed.Status != "operational" && parsed.Status != "success" {
		return fmt.Errorf("backend reports status %q", parsed.Status)
	}

	return nil
}
