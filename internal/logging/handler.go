// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

// Package logging provides structured logging with OpenTelemetry trace
// context and per-dispatch message correlation.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/trace"
)

type messageIDKey struct{}

// WithMessageID attaches a dispatch message id to the context so every
// log line produced while handling that message carries it.
func WithMessageID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, messageIDKey{}, id)
}

// dispatchHandler wraps a slog.Handler to add library identity, trace
// context, and the current dispatch message id.
type dispatchHandler struct {
	handler slog.Handler
	library string
	version string
}

// Handle adds correlation attributes to the log record.
func (h *dispatchHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(
		slog.String("library", h.library),
		slog.String("version", h.version),
	)

	if id, ok := ctx.Value(messageIDKey{}).(string); ok && id != "" {
		r.AddAttrs(slog.String("message_id", id))
	}

	spanCtx := trace.SpanContextFromContext(ctx)
	if spanCtx.HasTraceID() {
		r.AddAttrs(slog.String("trace_id", spanCtx.TraceID().String()))
	}
	if spanCtx.HasSpanID() {
		r.AddAttrs(slog.String("span_id", spanCtx.SpanID().String()))
	}

	//nolint:wrapcheck // Handler interface requires unwrapped error passthrough
	return h.handler.Handle(ctx, r)
}

// Enabled returns true if the level is enabled.
func (h *dispatchHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// WithAttrs returns a new handler with the given attributes.
func (h *dispatchHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &dispatchHandler{
		handler: h.handler.WithAttrs(attrs),
		library: h.library,
		version: h.version,
	}
}

// WithGroup returns a new handler with the given group.
func (h *dispatchHandler) WithGroup(name string) slog.Handler {
	return &dispatchHandler{
		handler: h.handler.WithGroup(name),
		library: h.library,
		version: h.version,
	}
}

// Setup creates a configured slog.Logger.
// format: "json" or "text" (defaults to "json" if empty)
// If w is nil, writes to os.Stderr.
func Setup(library, version, format string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	var baseHandler slog.Handler
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}

	if format == "text" {
		baseHandler = slog.NewTextHandler(w, opts)
	} else {
		baseHandler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(&dispatchHandler{
		handler: baseHandler,
		library: library,
		version: version,
	})
}

// SetDefault sets up and installs the default logger.
func SetDefault(library, version, format string) {
	slog.SetDefault(Setup(library, version, format, nil))
}
