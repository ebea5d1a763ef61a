// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package host

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/glyphmc/glyph/pkg/markup"
)

// FakeRecipient is an in-memory Recipient recording every send. It is
// exported so host integrations and channel tests share one double.
type FakeRecipient struct {
	mu sync.Mutex

	PlayerName string
	Display    string
	PlayerID   uuid.UUID
	WorldName  string
	Mode       string
	X, Y, Z    float64
	Yaw, Pitch float64
	FailSends  bool // when set, every Send method reports an error

	Messages   [][]markup.Component
	ActionBars []string
	Titles     []SentTitle
	RawSends   []json.RawMessage
}

// SentTitle records one SendTitle call.
type SentTitle struct {
	Title, Subtitle       string
	FadeIn, Stay, FadeOut time.Duration
}

// NewFakeRecipient returns a fake with the given name and a random id.
func NewFakeRecipient(name string) *FakeRecipient {
	return &FakeRecipient{
		PlayerName: name,
		Display:    name,
		PlayerID:   uuid.New(),
		WorldName:  "world",
		Mode:       "survival",
	}
}

func (f *FakeRecipient) Name() string                  { return f.PlayerName }
func (f *FakeRecipient) DisplayName() string           { return f.Display }
func (f *FakeRecipient) ID() uuid.UUID                 { return f.PlayerID }
func (f *FakeRecipient) World() string                 { return f.WorldName }
func (f *FakeRecipient) GameMode() string              { return f.Mode }
func (f *FakeRecipient) Position() (x, y, z float64)   { return f.X, f.Y, f.Z }
func (f *FakeRecipient) Heading() (yaw, pitch float64) { return f.Yaw, f.Pitch }

func (f *FakeRecipient) SendMessage(comps []markup.Component) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailSends {
		return errSendRefused
	}
	f.Messages = append(f.Messages, comps)
	return nil
}

func (f *FakeRecipient) SendActionBar(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailSends {
		return errSendRefused
	}
	f.ActionBars = append(f.ActionBars, text)
	return nil
}

func (f *FakeRecipient) SendTitle(title, subtitle string, fadeIn, stay, fadeOut time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailSends {
		return errSendRefused
	}
	f.Titles = append(f.Titles, SentTitle{title, subtitle, fadeIn, stay, fadeOut})
	return nil
}

func (f *FakeRecipient) SendRaw(payload json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailSends {
		return errSendRefused
	}
	f.RawSends = append(f.RawSends, payload)
	return nil
}

var errSendRefused = &sendError{}

type sendError struct{}

func (*sendError) Error() string { return "send refused" }

// FakeScheduler runs scheduled functions synchronously for a bounded
// number of ticks instead of on a real timer, so tests stay
// deterministic and leak-free.
type FakeScheduler struct {
	mu sync.Mutex

	// MaxTicks bounds the synchronous tick loop (default 256).
	MaxTicks int
	// Refuse makes Repeat return an error without running anything.
	Refuse bool

	Scheduled int
	Ticks     int
}

func (s *FakeScheduler) Repeat(_ time.Duration, fn func() bool) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Refuse {
		return nil, errSendRefused
	}
	s.Scheduled++
	limit := s.MaxTicks
	if limit <= 0 {
		limit = 256
	}
	for i := 0; i < limit; i++ {
		s.Ticks++
		if !fn() {
			break
		}
	}
	return func() {}, nil
}

// FakeBossBar records boss bar mutations.
type FakeBossBar struct {
	mu sync.Mutex

	Title    string
	Color    string
	Style    string
	Progress []float64
	Viewers  []Recipient
	Removed  bool
}

func (b *FakeBossBar) AddViewer(r Recipient) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Viewers = append(b.Viewers, r)
}

func (b *FakeBossBar) SetProgress(fraction float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Progress = append(b.Progress, fraction)
}

func (b *FakeBossBar) SetTitle(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Title = text
}

func (b *FakeBossBar) Remove() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Removed = true
}

// FakeBossBarFactory hands out FakeBossBars and remembers them.
type FakeBossBarFactory struct {
	mu   sync.Mutex
	Bars []*FakeBossBar
}

func (f *FakeBossBarFactory) CreateBossBar(title, color, style string) BossBar {
	f.mu.Lock()
	defer f.mu.Unlock()
	bar := &FakeBossBar{Title: title, Color: color, Style: style}
	f.Bars = append(f.Bars, bar)
	return bar
}
