// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package channel

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/glyphmc/glyph/pkg/host"
	"github.com/glyphmc/glyph/pkg/markup"
)

// TitleName is the large on-screen title channel name.
const TitleName = "title"

type titleChannel struct{}

// Title returns the on-screen title channel, selected with [title] or
// [title:seconds]. A newline in the text separates title from
// subtitle.
func Title() Channel { return titleChannel{} }

func (titleChannel) Name() string { return TitleName }

func (titleChannel) Match(pc *Context, message string) (Match, bool) {
	d := pc.config().Delimiters
	return matchTag(message, d.Start, d.End, TitleName)
}

func (titleChannel) Format(rec host.Recipient, pc *Context, text string) string {
	return markup.Flatten(pc.replace(rec, text))
}

func (c titleChannel) Send(ctx context.Context, recipients []host.Recipient, pc *Context, message string) bool {
	if len(recipients) == 0 {
		return false
	}
	cfg := pc.config().Title

	text := message
	seconds := cfg.Seconds
	if m, ok := c.Match(pc, message); ok {
		text = m.Rest
		// A malformed seconds argument is treated as absent.
		if len(m.Args) > 0 {
			if n, err := strconv.Atoi(m.Args[0]); err == nil && n > 0 {
				seconds = n
			}
		}
	}

	fade := time.Duration(cfg.FadeMillis) * time.Millisecond
	stay := time.Duration(seconds) * time.Second

	sent := false
	for _, rec := range recipients {
		title, subtitle := splitTitle(c.Format(rec, pc, text))
		if err := rec.SendTitle(title, subtitle, fade, stay, fade); err != nil {
			pc.logger().DebugContext(ctx, "title send failed",
				"recipient", rec.Name(),
				"error", err,
			)
			continue
		}
		sent = true
	}
	return sent
}

// splitTitle separates the title line from an optional subtitle.
func splitTitle(text string) (title, subtitle string) {
	title, subtitle, _ = strings.Cut(text, "\n")
	return title, subtitle
}
