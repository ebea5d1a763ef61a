// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package channel

import (
	"context"
	"strconv"
	"time"

	"github.com/glyphmc/glyph/pkg/errutil"
	"github.com/glyphmc/glyph/pkg/host"
	"github.com/glyphmc/glyph/pkg/markup"
)

// BossBarName is the persistent progress-bar channel name.
const BossBarName = "bossbar"

// barTick is the animation step interval.
const barTick = 100 * time.Millisecond

type bossBarChannel struct{}

// BossBar returns the progress-bar channel, selected with
// [bossbar[:duration][:color][:style]]. The bar drains linearly over
// the duration and removes itself; the send returns as soon as the
// animation handoff is accepted.
func BossBar() Channel { return bossBarChannel{} }

func (bossBarChannel) Name() string { return BossBarName }

func (bossBarChannel) Match(pc *Context, message string) (Match, bool) {
	d := pc.config().Delimiters
	return matchTag(message, d.Start, d.End, BossBarName, "boss_bar")
}

func (bossBarChannel) Format(rec host.Recipient, pc *Context, text string) string {
	return markup.Flatten(pc.replace(rec, text))
}

func (c bossBarChannel) Send(ctx context.Context, recipients []host.Recipient, pc *Context, message string) bool {
	if len(recipients) == 0 {
		return false
	}
	if pc.BossBars == nil || pc.Scheduler == nil {
		errutil.LogNotSent(ctx, pc.logger(), BossBarName, "reason", "host provides no boss bar support")
		return false
	}

	cfg := pc.config().BossBar
	seconds, color, style := cfg.Seconds, cfg.Color, cfg.Style

	text := message
	if m, ok := c.Match(pc, message); ok {
		text = m.Rest
		// Tag arguments: duration, color, style, each optional. A
		// malformed duration falls back to the configured default.
		if len(m.Args) > 0 {
			if n, err := strconv.Atoi(m.Args[0]); err == nil && n > 0 {
				seconds = n
			}
		}
		if len(m.Args) > 1 && m.Args[1] != "" {
			color = m.Args[1]
		}
		if len(m.Args) > 2 && m.Args[2] != "" {
			style = m.Args[2]
		}
	}

	bar := pc.BossBars.CreateBossBar(c.Format(recipients[0], pc, text), color, style)
	for _, rec := range recipients {
		bar.AddViewer(rec)
	}

	total := time.Duration(seconds) * time.Second
	if total < barTick {
		total = barTick
	}
	var elapsed time.Duration
	step := func() bool {
		elapsed += barTick
		remaining := total - elapsed
		if remaining <= 0 {
			bar.Remove()
			return false
		}
		bar.SetProgress(float64(remaining) / float64(total))
		return true
	}

	if _, err := pc.Scheduler.Repeat(barTick, step); err != nil {
		bar.Remove()
		errutil.LogNotSent(ctx, pc.logger(), BossBarName, "reason", "scheduler refused animation", "error", err)
		return false
	}
	return true
}
