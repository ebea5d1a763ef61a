// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

// Package errutil provides error logging and test helpers shared
// across the library.
package errutil

import (
	"context"
	"log/slog"

	"github.com/samber/oops"
)

// NotSentPrefix is the visible marker on every log line recording a
// delivery that reached no recipient. Operators grep for it.
const NotSentPrefix = "[NOT_SENT]"

// LogError logs an error with structured context if it's an oops error.
// For oops errors, it extracts and logs the message, code, and context.
// For standard errors, it logs the error string.
func LogError(logger *slog.Logger, msg string, err error) {
	if oopsErr, ok := oops.AsOops(err); ok {
		attrs := []any{
			"error", oopsErr.Error(),
		}
		if code := oopsErr.Code(); code != nil {
			attrs = append(attrs, "code", code)
		}
		if ctx := oopsErr.Context(); len(ctx) > 0 {
			attrs = append(attrs, "context", ctx)
		}
		logger.Error(msg, attrs...)
	} else {
		logger.Error(msg, "error", err)
	}
}

// LogNotSent records a failed delivery with the NOT_SENT convention.
// Attributes name the channel and whatever detail the sender has.
func LogNotSent(ctx context.Context, logger *slog.Logger, channel string, attrs ...any) {
	all := append([]any{"channel", channel}, attrs...)
	logger.WarnContext(ctx, NotSentPrefix+" message not delivered", all...)
}
