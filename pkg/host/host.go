// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

// Package host declares the narrow interfaces through which the
// library talks to its game-server host environment. The host is an
// opaque collaborator: it exposes recipients to send to, a repeating
// scheduler for bar animations, and a boss bar factory; everything
// else (persistence, permissions, command registration) stays on the
// host's side of the boundary.
package host

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/glyphmc/glyph/pkg/markup"
)

// Recipient is the addressee of a message: a connected user or session
// in the host environment. Identity and position accessors feed the
// default placeholders; the Send methods are the per-surface delivery
// primitives the built-in channels use.
type Recipient interface {
	Name() string
	DisplayName() string
	ID() uuid.UUID
	World() string
	GameMode() string
	Position() (x, y, z float64)
	Heading() (yaw, pitch float64)

	// SendMessage delivers an ordered rich-text component list to the
	// recipient's main chat log.
	SendMessage(comps []markup.Component) error

	// SendActionBar shows transient overlay text.
	SendActionBar(text string) error

	// SendTitle shows a large on-screen title with optional subtitle.
	SendTitle(title, subtitle string, fadeIn, stay, fadeOut time.Duration) error

	// SendRaw delivers an already-structured wire payload verbatim.
	SendRaw(payload json.RawMessage) error
}

// Scheduler hands repeating work to the host's tick loop. Repeat calls
// fn every interval until fn returns false or the returned stop
// function is called. The handoff is fire-and-forget: an error means
// the host refused the schedule, not that any tick ran.
type Scheduler interface {
	Repeat(interval time.Duration, fn func() bool) (stop func(), err error)
}

// BossBar is a persistent progress-bar widget owned by the host.
type BossBar interface {
	AddViewer(r Recipient)
	SetProgress(fraction float64)
	SetTitle(text string)
	Remove()
}

// BossBarFactory constructs host boss bars. Color and style names are
// passed through as written in the channel tag; the host maps unknown
// values to its defaults.
type BossBarFactory interface {
	CreateBossBar(title, color, style string) BossBar
}
