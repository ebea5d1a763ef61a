// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

// Package dispatch orchestrates outgoing messages: placeholder
// resolution, channel classification, channel delivery, and outcome
// logging.
package dispatch

import (
	"context"
	"log/slog"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/glyphmc/glyph/internal/logging"
	"github.com/glyphmc/glyph/internal/observability"
	"github.com/glyphmc/glyph/pkg/channel"
	"github.com/glyphmc/glyph/pkg/errutil"
	"github.com/glyphmc/glyph/pkg/host"
)

var tracer = otel.Tracer("glyph/dispatch")

// Result aggregates delivery outcomes across recipients and messages.
type Result struct {
	// SentToAny is true when at least one send reached at least one
	// recipient (or was accepted as an asynchronous handoff).
	SentToAny bool
}

// Coordinator routes messages through the channel registry. It owns no
// background work: every dispatch runs synchronously on the caller.
type Coordinator struct {
	channels *channel.Registry
	pc       *channel.Context
	logger   *slog.Logger
	verbose  bool
}

// Option configures a Coordinator during construction.
type Option func(*Coordinator)

// WithVerboseLogging makes every undelivered message log at warning
// level with the NOT_SENT marker instead of debug.
func WithVerboseLogging(verbose bool) Option {
	return func(c *Coordinator) {
		c.verbose = verbose
	}
}

// New creates a coordinator over the given channel registry and
// parser context. Returns an error if either is nil.
func New(channels *channel.Registry, pc *channel.Context, opts ...Option) (*Coordinator, error) {
	if channels == nil {
		return nil, oops.Code("NIL_REGISTRY").Errorf("channel registry is required")
	}
	if pc == nil {
		return nil, oops.Code("NIL_CONTEXT").Errorf("parser context is required")
	}
	c := &Coordinator{
		channels: channels,
		pc:       pc,
		logger:   pc.Logger,
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Dispatch sends one annotated message to the recipients. The
// recipient-independent placeholder pass runs before classification;
// channels finish per-recipient resolution during delivery.
func (c *Coordinator) Dispatch(ctx context.Context, recipients []host.Recipient, message string) Result {
	id := ulid.Make().String()
	ctx = logging.WithMessageID(ctx, id)

	ctx, span := tracer.Start(ctx, "message.dispatch",
		trace.WithAttributes(
			attribute.String("message.id", id),
			attribute.Int("message.recipients", len(recipients)),
		),
	)
	defer span.End()

	resolved := c.resolve(message)
	ch := c.channels.Identify(c.pc, resolved)
	span.SetAttributes(attribute.String("message.channel", ch.Name()))

	sent := ch.Send(ctx, recipients, c.pc, resolved)

	status := observability.StatusSent
	if !sent {
		status = observability.StatusNotSent
	}
	observability.RecordDispatch(ch.Name(), status)

	switch {
	case sent:
		c.logger.InfoContext(ctx, "message dispatched",
			"channel", ch.Name(),
			"recipients", len(recipients),
		)
		span.SetStatus(codes.Ok, "")
	case c.verbose:
		errutil.LogNotSent(ctx, c.logger, ch.Name(), "recipients", len(recipients))
		span.SetStatus(codes.Error, "not sent")
	default:
		c.logger.DebugContext(ctx, "message not delivered",
			"channel", ch.Name(),
			"recipients", len(recipients),
		)
		span.SetStatus(codes.Error, "not sent")
	}

	return Result{SentToAny: sent}
}

// DispatchAll sends a batch of messages in order, aggregating the
// per-message results.
func (c *Coordinator) DispatchAll(ctx context.Context, recipients []host.Recipient, messages ...string) Result {
	var res Result
	for _, msg := range messages {
		if c.Dispatch(ctx, recipients, msg).SentToAny {
			res.SentToAny = true
		}
	}
	return res
}

// resolve runs the recipient-independent placeholder pass.
func (c *Coordinator) resolve(message string) string {
	if c.pc.Placeholders == nil {
		return message
	}
	return c.pc.Placeholders.Replace(nil, message)
}

// Format resolves and channel-formats a message for one recipient
// without sending, for previews and inspection tooling.
func (c *Coordinator) Format(rec host.Recipient, message string) string {
	resolved := c.resolve(message)
	ch := c.channels.Identify(c.pc, resolved)
	if m, ok := ch.Match(c.pc, resolved); ok {
		resolved = m.Rest
	}
	return ch.Format(rec, c.pc, resolved)
}
