// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

// Package channel routes annotated messages to presentation surfaces.
// A message selects its channel with a leading bracket tag such as
// [title:5] or [bossbar:10:RED]; untagged messages go to chat. Each
// channel strips its own tag, formats the remaining text, and performs
// the surface-specific delivery.
package channel

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/glyphmc/glyph/internal/config"
	"github.com/glyphmc/glyph/pkg/host"
	"github.com/glyphmc/glyph/pkg/placeholder"
)

// Match is the result of recognizing a channel tag: the colon-split
// arguments embedded in the tag and the message with the tag removed.
type Match struct {
	Args []string
	Rest string
}

// Channel is one named presentation surface.
//
// Send performs the channel-specific delivery and reports whether at
// least one recipient received the message (or, for surfaces that hand
// off to asynchronous work, whether the handoff was accepted). Send
// never returns an error: delivery problems degrade to false and a
// structured log line.
type Channel interface {
	Name() string

	// Match reports whether message carries this channel's tag
	// anywhere, returning the tag arguments and the stripped message.
	Match(pc *Context, message string) (Match, bool)

	// Format applies placeholder resolution and the channel's text
	// shaping for one recipient without sending.
	Format(rec host.Recipient, pc *Context, text string) string

	Send(ctx context.Context, recipients []host.Recipient, pc *Context, message string) bool
}

// Context carries the collaborators a channel needs to format and
// deliver. It is passed explicitly into every call; channels hold no
// state of their own.
type Context struct {
	Placeholders *placeholder.Registry
	Config       *config.Config
	Scheduler    host.Scheduler
	BossBars     host.BossBarFactory
	HTTPClient   *http.Client
	Logger       *slog.Logger
}

func (pc *Context) config() *config.Config {
	if pc != nil && pc.Config != nil {
		return pc.Config
	}
	return config.Default()
}

func (pc *Context) logger() *slog.Logger {
	if pc != nil && pc.Logger != nil {
		return pc.Logger
	}
	return slog.Default()
}

// replace runs the placeholder pipeline, tolerating a missing
// registry and a nil recipient.
func (pc *Context) replace(rec host.Recipient, text string) string {
	if pc == nil || pc.Placeholders == nil {
		return text
	}
	return pc.Placeholders.Replace(rec, text)
}
