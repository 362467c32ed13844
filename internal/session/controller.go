// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jeranaias/adam-tui/internal/fallback"
	"github.com/jeranaias/adam-tui/internal/model"
	"github.com/jeranaias/adam-tui/internal/util"
)

// Scripted lines. The greeting is local: it is appended after a short
// fixed delay on session start, never fetched from the backend.
const (
	GreetingText = "*brushes clay from hands* Speak, and I will answer."
	FarewellText = "*nods* Peace be upon thee."
)

// DefaultGreetingDelay is how long after session start the greeting
// appears.
const DefaultGreetingDelay = 600 * time.Millisecond

// defaultRequestTimeout bounds a turn when the config does not say
// otherwise.
const defaultRequestTimeout = 15 * time.Second

// =============================================================================
// REPLIER
// =============================================================================

// Replier produces the agent's reply for one user message. *api.Client
// implements it; tests substitute stubs. A nil Replier means every turn
// settles through the fallback table.
type Replier interface {
	Reply(ctx context.Context, userID, message string) (string, error)
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Config configures a Controller.
type Config struct {
	// UserID is the persistent per-installation identifier, already
	// loaded or generated by the identity store.
	UserID string

	// Replier places the outbound request. May be nil (fallback only).
	Replier Replier

	// Fallback is the canned-reply table. Zero value falls back to the
	// built-in table.
	Fallback fallback.Table

	// GreetingDelay overrides DefaultGreetingDelay when positive.
	GreetingDelay time.Duration

	// RequestTimeout bounds each outbound request when positive.
	RequestTimeout time.Duration
}

// Controller owns one chat session. All state transitions go through it;
// the mutex is needed because Settle runs on a tea.Cmd goroutine while
// the UI thread reads the transcript.
type Controller struct {
	mu         sync.Mutex
	transcript []*model.Message
	pending    bool
	greeted    bool

	userID         string
	replier        Replier
	fallback       fallback.Table
	greetingDelay  time.Duration
	requestTimeout time.Duration
}

// New creates a Controller. The transcript starts empty; the greeting is
// appended by the surface once GreetingDelay has elapsed.
func New(cfg Config) *Controller {
	table := cfg.Fallback
	if table.IsZero() {
		table = fallback.Default()
	}

	delay := cfg.GreetingDelay
	if delay <= 0 {
		delay = DefaultGreetingDelay
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &Controller{
		userID:         cfg.UserID,
		replier:        cfg.Replier,
		fallback:       table,
		greetingDelay:  delay,
		requestTimeout: timeout,
	}
}

// =============================================================================
// STATE ACCESS
// =============================================================================

// UserID returns the session's persistent user identifier.
func (c *Controller) UserID() string {
	return c.userID
}

// Pending reports whether a request is in flight.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Transcript returns a snapshot of the transcript in display order.
func (c *Controller) Transcript() []*model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*model.Message, len(c.transcript))
	copy(out, c.transcript)
	return out
}

// Len returns the current transcript length.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.transcript)
}

// GreetingDelay returns the configured greeting delay.
func (c *Controller) GreetingDelay() time.Duration {
	return c.greetingDelay
}

// Reset clears the transcript. An in-flight turn keeps its pending flag
// and will still append its reply when it settles. The greeting is not
// replayed.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transcript = nil
}

// =============================================================================
// GREETING
// =============================================================================

// AppendGreeting appends the scripted greeting message. Only the first
// call has an effect; it returns nil afterwards.
func (c *Controller) AppendGreeting() *model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.greeted {
		return nil
	}
	c.greeted = true
	msg := model.NewAgentMessage(GreetingText)
	c.transcript = append(c.transcript, msg)
	return msg
}

// =============================================================================
// SUBMIT CYCLE
// =============================================================================

// Begin starts a turn: it validates the input, appends the user message
// synchronously, and raises the pending flag. It returns false (and
// changes nothing) for blank input or when a turn is already pending.
func (c *Controller) Begin(text string) (*model.Message, bool) {
	text = util.NormalizeInput(text)
	if text == "" {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending {
		return nil, false
	}

	msg := model.NewUserMessage(text)
	c.transcript = append(c.transcript, msg)
	c.pending = true
	return msg, true
}

// Settle finishes the turn begun for text: it issues the single outbound
// request, appends exactly one agent message (the backend's reply, or a
// canned one when the backend cannot supply it), and clears pending.
// Settle never returns an error; the pending flag is cleared on every
// path.
func (c *Controller) Settle(ctx context.Context, text string) *model.Message {
	var msg *model.Message

	defer func() {
		c.mu.Lock()
		c.pending = false
		c.mu.Unlock()
	}()

	reply, err := c.requestReply(ctx, text)
	if err != nil {
		msg = model.NewFallbackMessage(c.fallback.Match(text))
	} else {
		msg = model.NewAgentMessage(reply)
	}

	c.mu.Lock()
	c.transcript = append(c.transcript, msg)
	c.mu.Unlock()

	return msg
}

// errNoReplier settles fallback-only sessions through the same path as a
// transport failure.
var errNoReplier = errors.New("no backend configured")

// requestReply places the outbound call under the configured timeout.
func (c *Controller) requestReply(ctx context.Context, text string) (string, error) {
	if c.replier == nil {
		return "", errNoReplier
	}

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	return c.replier.Reply(ctx, c.userID, text)
}

// Submit runs a full turn synchronously: Begin then Settle. It returns
// the agent message, or nil when the input was skipped. Blocking
// surfaces (REPL, one-shot ask) use this; the TUI splits the two steps
// across the event loop.
func (c *Controller) Submit(ctx context.Context, text string) *model.Message {
	user, ok := c.Begin(text)
	if !ok {
		return nil
	}
	return c.Settle(ctx, user.Text)
}

// =============================================================================
// RENDER PROJECTION
// =============================================================================

// RenderedMessage is one transcript entry prepared for display: the
// sender plus the text split into plain and gesture segments.
type RenderedMessage struct {
	Sender   model.Role
	Segments []model.Segment
	Fallback bool
}

// Rendered projects the transcript for a view. Pure: no state changes.
func (c *Controller) Rendered() []RenderedMessage {
	msgs := c.Transcript()
	out := make([]RenderedMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, RenderedMessage{
			Sender:   m.Role,
			Segments: model.SplitGestures(m.Text),
			Fallback: m.Fallback,
		})
	}
	return out
}
