// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package channel

import (
	"context"

	"github.com/glyphmc/glyph/pkg/host"
	"github.com/glyphmc/glyph/pkg/markup"
)

// ActionBarName is the overlay-text channel name.
const ActionBarName = "action_bar"

type actionBarChannel struct{}

// ActionBar returns the transient overlay-text channel, selected with
// [action_bar] (or the compact [actionbar]).
func ActionBar() Channel { return actionBarChannel{} }

func (actionBarChannel) Name() string { return ActionBarName }

func (actionBarChannel) Match(pc *Context, message string) (Match, bool) {
	d := pc.config().Delimiters
	return matchTag(message, d.Start, d.End, ActionBarName, "actionbar")
}

// Format flattens the text to its styled plain form: the overlay
// surface has no click or hover support.
func (actionBarChannel) Format(rec host.Recipient, pc *Context, text string) string {
	return markup.Flatten(pc.replace(rec, text))
}

func (c actionBarChannel) Send(ctx context.Context, recipients []host.Recipient, pc *Context, message string) bool {
	if len(recipients) == 0 {
		return false
	}
	text := message
	if m, ok := c.Match(pc, message); ok {
		text = m.Rest
	}

	sent := false
	for _, rec := range recipients {
		if err := rec.SendActionBar(c.Format(rec, pc, text)); err != nil {
			pc.logger().DebugContext(ctx, "action bar send failed",
				"recipient", rec.Name(),
				"error", err,
			)
			continue
		}
		sent = true
	}
	return sent
}
