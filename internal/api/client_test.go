// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jeranaias/adam-tui/internal/offline"
)

// newTestClient builds a client pointed at a httptest server.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, server
}

// =============================================================================
// REPLY TESTS
// =============================================================================

func TestReplySuccess(t *testing.T) {
	var gotBody map[string]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/chat" {
			t.Errorf("path = %s, want /api/chat", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{
			"status":   "success",
			"response": "Peace.",
		})
	})

	reply, err := client.Reply(context.Background(), "user_1", "hello")
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if reply != "Peace." {
		t.Errorf("reply = %q, want %q", reply, "Peace.")
	}
	if gotBody["user_id"] != "user_1" || gotBody["message"] != "hello" {
		t.Errorf("request body = %v", gotBody)
	}
}

func TestReplyNon2xx(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.Reply(context.Background(), "u", "m")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusInternalServerError {
		t.Errorf("code = %d, want 500", statusErr.Code)
	}
}

func TestReplyErrorStatusValue(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "error"})
	})

	_, err := client.Reply(context.Background(), "u", "m")
	if !errors.Is(err, ErrUnusableReply) {
		t.Errorf("expected ErrUnusableReply, got %v", err)
	}
}

func TestReplyMissingResponseField(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "success"})
	})

	_, err := client.Reply(context.Background(), "u", "m")
	if !errors.Is(err, ErrUnusableReply) {
		t.Errorf("expected ErrUnusableReply, got %v", err)
	}
}

func TestReplyMalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	})

	_, err := client.Reply(context.Background(), "u", "m")
	if !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestReplyUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close() // nothing is listening now

	client, err := NewClient(url, 2*time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if _, err := client.Reply(context.Background(), "u", "m"); err == nil {
		t.Error("expected transport error against closed server")
	}
}

func TestReplyOfflineMode(t *testing.T) {
	t.Cleanup(func() { offline.SetOfflineMode(false) })

	requests := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	offline.SetOfflineMode(true)
	_, err := client.Reply(context.Background(), "u", "m")
	if !errors.Is(err, offline.ErrNetworkBlocked) {
		t.Fatalf("expected ErrNetworkBlocked, got %v", err)
	}
	if requests != 0 {
		t.Errorf("offline mode placed %d requests", requests)
	}
}

func TestReplyContextCancelled(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := client.Reply(ctx, "u", "m"); err == nil {
		t.Error("expected error on expired context")
	}
}

// =============================================================================
// CONSTRUCTION TESTS
// =============================================================================

func TestNewClientRejectsBadURL(t *testing.T) {
	if _, err := NewClient("file:///etc/passwd", 0); err == nil {
		t.Error("file scheme should be rejected")
	}
	if _, err := NewClient("", 0); err == nil {
		t.Error("empty URL should be rejected")
	}
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	client, err := NewClient("http://localhost:5000/", 0)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if client.BaseURL() != "http://localhost:5000" {
		t.Errorf("base = %q", client.BaseURL())
	}
}

// =============================================================================
// PING TESTS
// =============================================================================

func TestPing(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/status" {
			t.Errorf("path = %s, want /api/status", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"status": "operational", "knowledge": "active"})
	})

	if err := client.Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}
}

func TestPingDegraded(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "degraded"})
	})

	if err := client.Ping(context.Background()); err == nil {
		t.Error("degraded status should be an error")
	}
}
