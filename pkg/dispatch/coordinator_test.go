// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package dispatch

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/glyphmc/glyph/internal/config"
	"github.com/glyphmc/glyph/pkg/channel"
	"github.com/glyphmc/glyph/pkg/host"
	"github.com/glyphmc/glyph/pkg/placeholder"
)

func newCoordinator(t *testing.T) (*Coordinator, *channel.Context) {
	t.Helper()
	pc := &channel.Context{
		Placeholders: placeholder.NewRegistry(),
		Config:       config.Default(),
		Scheduler:    &host.FakeScheduler{},
		BossBars:     &host.FakeBossBarFactory{},
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	c, err := New(channel.NewRegistry(), pc)
	require.NoError(t, err)
	return c, pc
}

func TestNew_Validation(t *testing.T) {
	pc := &channel.Context{}
	_, err := New(nil, pc)
	assert.Error(t, err)

	_, err = New(channel.NewRegistry(), nil)
	assert.Error(t, err)
}

func TestDispatch_Chat(t *testing.T) {
	c, _ := newCoordinator(t)
	rec := host.NewFakeRecipient("Steve")

	res := c.Dispatch(context.Background(), []host.Recipient{rec}, "hello {player}")
	assert.True(t, res.SentToAny)
	require.Len(t, rec.Messages, 1)
	assert.Equal(t, "hello Steve", rec.Messages[0][0].Text)
}

func TestDispatch_RoutesByTag(t *testing.T) {
	c, _ := newCoordinator(t)
	rec := host.NewFakeRecipient("Steve")

	res := c.Dispatch(context.Background(), []host.Recipient{rec}, "[title:3]Welcome")
	assert.True(t, res.SentToAny)
	assert.Empty(t, rec.Messages)
	require.Len(t, rec.Titles, 1)
	assert.Equal(t, "Welcome", rec.Titles[0].Title)
}

func TestDispatch_ActionBar(t *testing.T) {
	c, _ := newCoordinator(t)
	rec := host.NewFakeRecipient("Steve")

	res := c.Dispatch(context.Background(), []host.Recipient{rec}, "[action_bar]low health")
	assert.True(t, res.SentToAny)
	assert.Equal(t, []string{"low health"}, rec.ActionBars)
}

func TestDispatch_NoRecipients(t *testing.T) {
	c, _ := newCoordinator(t)

	res := c.Dispatch(context.Background(), nil, "hello")
	assert.False(t, res.SentToAny)
}

func TestDispatch_PrefixResolvedBeforeClassification(t *testing.T) {
	c, pc := newCoordinator(t)
	pc.Placeholders.SetPrefix("[title:2]")
	rec := host.NewFakeRecipient("Steve")

	res := c.Dispatch(context.Background(), []host.Recipient{rec}, "{prefix}Welcome")
	assert.True(t, res.SentToAny)
	require.Len(t, rec.Titles, 1)
	assert.Equal(t, "Welcome", rec.Titles[0].Title)
}

func TestDispatch_RuntimeRuleBeforeClassification(t *testing.T) {
	c, pc := newCoordinator(t)
	pc.Placeholders.Load("{route}", func(host.Recipient) string { return "[action_bar]" })
	rec := host.NewFakeRecipient("Steve")

	res := c.Dispatch(context.Background(), []host.Recipient{rec}, "{route}ding")
	assert.True(t, res.SentToAny)
	assert.Equal(t, []string{"ding"}, rec.ActionBars)
}

func TestDispatchAll(t *testing.T) {
	c, _ := newCoordinator(t)
	rec := host.NewFakeRecipient("Steve")

	res := c.DispatchAll(context.Background(), []host.Recipient{rec},
		"first", "[action_bar]second", "[title]third")
	assert.True(t, res.SentToAny)
	assert.Len(t, rec.Messages, 1)
	assert.Len(t, rec.ActionBars, 1)
	assert.Len(t, rec.Titles, 1)
}

func TestDispatchAll_AggregateFalse(t *testing.T) {
	c, _ := newCoordinator(t)
	res := c.DispatchAll(context.Background(), nil, "a", "b")
	assert.False(t, res.SentToAny)
}

func TestFormat(t *testing.T) {
	c, _ := newCoordinator(t)
	rec := host.NewFakeRecipient("Steve")

	assert.Equal(t, "hi Steve", c.Format(rec, "hi {player}"))
	assert.Equal(t, "Welcome", c.Format(rec, "[title]Welcome"))
	assert.Equal(t, "go here", c.Format(rec, `[action_bar]go <run:"/x">here</text>`))
}

func TestDispatch_NoBackgroundWork(t *testing.T) {
	defer goleak.VerifyNone(t)

	c, _ := newCoordinator(t)
	rec := host.NewFakeRecipient("Steve")

	c.Dispatch(context.Background(), []host.Recipient{rec}, "hello")
	c.Dispatch(context.Background(), []host.Recipient{rec}, "[bossbar:1]draining")
}

func TestDispatch_VerboseLogging(t *testing.T) {
	pc := &channel.Context{
		Placeholders: placeholder.NewRegistry(),
		Config:       config.Default(),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	c, err := New(channel.NewRegistry(), pc, WithVerboseLogging(true))
	require.NoError(t, err)

	res := c.Dispatch(context.Background(), nil, "undeliverable")
	assert.False(t, res.SentToAny)
}
