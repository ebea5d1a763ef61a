// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package channel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glyphmc/glyph/pkg/host"
)

func bossBarContext() (*Context, *host.FakeBossBarFactory, *host.FakeScheduler) {
	pc := testContext()
	factory := &host.FakeBossBarFactory{}
	sched := &host.FakeScheduler{}
	pc.BossBars = factory
	pc.Scheduler = sched
	return pc, factory, sched
}

func TestBossBar_SendDefaults(t *testing.T) {
	pc, factory, sched := bossBarContext()
	rec := host.NewFakeRecipient("Steve")

	ok := BossBar().Send(context.Background(), []host.Recipient{rec}, pc, "[bossbar]Event starting")
	require.True(t, ok)
	require.Len(t, factory.Bars, 1)

	bar := factory.Bars[0]
	assert.Equal(t, "Event starting", bar.Title)
	assert.Equal(t, "PURPLE", bar.Color)
	assert.Equal(t, "SOLID", bar.Style)
	assert.Equal(t, []host.Recipient{rec}, bar.Viewers)
	assert.Equal(t, 1, sched.Scheduled)
}

func TestBossBar_TagArguments(t *testing.T) {
	pc, factory, _ := bossBarContext()
	rec := host.NewFakeRecipient("Steve")

	ok := BossBar().Send(context.Background(), []host.Recipient{rec}, pc, "[bossbar:20:RED:SEGMENTED_10]Hi")
	require.True(t, ok)
	require.Len(t, factory.Bars, 1)
	assert.Equal(t, "RED", factory.Bars[0].Color)
	assert.Equal(t, "SEGMENTED_10", factory.Bars[0].Style)
}

func TestBossBar_DrainsAndRemoves(t *testing.T) {
	pc, factory, sched := bossBarContext()
	rec := host.NewFakeRecipient("Steve")

	// 1 second at the 100ms tick: nine progress updates then removal.
	ok := BossBar().Send(context.Background(), []host.Recipient{rec}, pc, "[bossbar:1]Hi")
	require.True(t, ok)

	bar := factory.Bars[0]
	assert.True(t, bar.Removed)
	require.Len(t, bar.Progress, 9)
	assert.InDelta(t, 0.9, bar.Progress[0], 1e-9)
	assert.InDelta(t, 0.1, bar.Progress[8], 1e-9)
	for i := 1; i < len(bar.Progress); i++ {
		assert.Less(t, bar.Progress[i], bar.Progress[i-1])
	}
	assert.Equal(t, 10, sched.Ticks)
}

func TestBossBar_MalformedDurationUsesDefault(t *testing.T) {
	pc, factory, sched := bossBarContext()
	rec := host.NewFakeRecipient("Steve")

	ok := BossBar().Send(context.Background(), []host.Recipient{rec}, pc, "[bossbar:soon]Hi")
	require.True(t, ok)
	require.Len(t, factory.Bars, 1)
	// Default 10 seconds: 100 ticks.
	assert.Equal(t, 100, sched.Ticks)
}

func TestBossBar_TitleResolvedOnce(t *testing.T) {
	pc, factory, _ := bossBarContext()
	alice := host.NewFakeRecipient("Alice")
	bob := host.NewFakeRecipient("Bob")

	ok := BossBar().Send(context.Background(), []host.Recipient{alice, bob}, pc, "[bossbar]Hi {player}")
	require.True(t, ok)
	// The shared bar takes the first recipient's resolution.
	assert.Equal(t, "Hi Alice", factory.Bars[0].Title)
	assert.Len(t, factory.Bars[0].Viewers, 2)
}

func TestBossBar_NoHostSupport(t *testing.T) {
	pc := testContext()
	rec := host.NewFakeRecipient("Steve")

	assert.False(t, BossBar().Send(context.Background(), []host.Recipient{rec}, pc, "[bossbar]Hi"))
}

func TestBossBar_SchedulerRefused(t *testing.T) {
	pc, factory, sched := bossBarContext()
	sched.Refuse = true
	rec := host.NewFakeRecipient("Steve")

	ok := BossBar().Send(context.Background(), []host.Recipient{rec}, pc, "[bossbar]Hi")
	assert.False(t, ok)
	require.Len(t, factory.Bars, 1)
	assert.True(t, factory.Bars[0].Removed)
}

func TestBossBar_NoRecipients(t *testing.T) {
	pc, _, _ := bossBarContext()
	assert.False(t, BossBar().Send(context.Background(), nil, pc, "[bossbar]Hi"))
}
