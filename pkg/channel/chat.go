// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package channel

import (
	"context"
	"time"

	"github.com/glyphmc/glyph/internal/observability"
	"github.com/glyphmc/glyph/pkg/host"
	"github.com/glyphmc/glyph/pkg/markup"
)

// ChatName is the name of the default channel.
const ChatName = "chat"

type chatChannel struct{}

// Chat returns the chat channel: the untagged default surface that
// compiles markup into interactive components.
func Chat() Channel { return chatChannel{} }

func (chatChannel) Name() string { return ChatName }

// Match never matches: chat carries no tag and is selected only as the
// registry fallback or by exact name.
func (chatChannel) Match(*Context, string) (Match, bool) {
	return Match{}, false
}

func (chatChannel) Format(rec host.Recipient, pc *Context, text string) string {
	return pc.replace(rec, text)
}

func (c chatChannel) Send(ctx context.Context, recipients []host.Recipient, pc *Context, message string) bool {
	if len(recipients) == 0 {
		return false
	}

	start := time.Now()
	res := markup.CompileWithOptions(message, markup.Options{
		ChatWidth: pc.config().Chat.Width,
	})
	comps := markup.Assemble(res.Segments)
	observability.RecordCompileDuration(time.Since(start))

	sent := false
	for _, rec := range recipients {
		resolved := make([]markup.Component, len(comps))
		for i, comp := range comps {
			resolved[i] = resolveComponent(pc, rec, comp)
		}
		if err := rec.SendMessage(resolved); err != nil {
			pc.logger().DebugContext(ctx, "chat send failed",
				"recipient", rec.Name(),
				"error", err,
			)
			continue
		}
		sent = true
		for n := 0; n < res.BlankLines; n++ {
			_ = rec.SendMessage([]markup.Component{{Text: ""}})
		}
	}
	return sent
}

// resolveComponent runs the lazy per-recipient placeholder pass over a
// component: its text, its click argument, and its hover lines may all
// still carry keys after compilation.
func resolveComponent(pc *Context, rec host.Recipient, comp markup.Component) markup.Component {
	comp.Text = pc.replace(rec, comp.Text)
	if !comp.Click.Empty() {
		comp.Click.Argument = pc.replace(rec, comp.Click.Argument)
	}
	if !comp.Hover.Empty() {
		lines := make([]string, len(comp.Hover.Lines))
		for i, line := range comp.Hover.Lines {
			lines[i] = pc.replace(rec, line)
		}
		comp.Hover = markup.HoverTooltip{Lines: lines}
	}
	return comp
}
