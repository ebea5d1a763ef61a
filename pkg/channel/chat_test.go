// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package channel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glyphmc/glyph/pkg/host"
	"github.com/glyphmc/glyph/pkg/markup"
)

func TestChat_Send(t *testing.T) {
	pc := testContext()
	rec := host.NewFakeRecipient("Steve")

	ok := Chat().Send(context.Background(), []host.Recipient{rec}, pc, "hello {player}")
	require.True(t, ok)
	require.Len(t, rec.Messages, 1)
	require.Len(t, rec.Messages[0], 1)
	assert.Equal(t, "hello Steve", rec.Messages[0][0].Text)
}

func TestChat_SendInteractive(t *testing.T) {
	pc := testContext()
	rec := host.NewFakeRecipient("Steve")

	ok := Chat().Send(context.Background(), []host.Recipient{rec}, pc,
		`&aHi <hover:"tip"|run:"/tp {player}">click</text>`)
	require.True(t, ok)
	require.Len(t, rec.Messages, 1)

	comps := rec.Messages[0]
	require.Len(t, comps, 2)
	assert.Equal(t, "&aHi ", comps[0].Text)
	assert.Equal(t, "&aclick", comps[1].Text)
	assert.Equal(t, markup.ClickRunCommand, comps[1].Click.Kind)
	assert.Equal(t, "/tp Steve", comps[1].Click.Argument)
	assert.Equal(t, []string{"tip"}, comps[1].Hover.Lines)
}

func TestChat_PerRecipientResolution(t *testing.T) {
	pc := testContext()
	alice := host.NewFakeRecipient("Alice")
	bob := host.NewFakeRecipient("Bob")

	ok := Chat().Send(context.Background(), []host.Recipient{alice, bob}, pc, "hi {player}")
	require.True(t, ok)
	assert.Equal(t, "hi Alice", alice.Messages[0][0].Text)
	assert.Equal(t, "hi Bob", bob.Messages[0][0].Text)
}

func TestChat_BlankLines(t *testing.T) {
	pc := testContext()
	rec := host.NewFakeRecipient("Steve")

	ok := Chat().Send(context.Background(), []host.Recipient{rec}, pc, "line<add_space:2>")
	require.True(t, ok)
	require.Len(t, rec.Messages, 3)
	assert.Equal(t, "line", rec.Messages[0][0].Text)
	assert.Equal(t, "", rec.Messages[1][0].Text)
	assert.Equal(t, "", rec.Messages[2][0].Text)
}

func TestChat_NoRecipients(t *testing.T) {
	pc := testContext()
	assert.False(t, Chat().Send(context.Background(), nil, pc, "hello"))
}

func TestChat_PartialFailureStillSent(t *testing.T) {
	pc := testContext()
	good := host.NewFakeRecipient("Good")
	bad := host.NewFakeRecipient("Bad")
	bad.FailSends = true

	ok := Chat().Send(context.Background(), []host.Recipient{bad, good}, pc, "hi")
	assert.True(t, ok)
	assert.Len(t, good.Messages, 1)
	assert.Empty(t, bad.Messages)
}

func TestChat_AllFail(t *testing.T) {
	pc := testContext()
	bad := host.NewFakeRecipient("Bad")
	bad.FailSends = true

	assert.False(t, Chat().Send(context.Background(), []host.Recipient{bad}, pc, "hi"))
}

func TestChat_NeverMatches(t *testing.T) {
	_, ok := Chat().Match(testContext(), "[chat]hello")
	assert.False(t, ok)
}

func TestChat_Format(t *testing.T) {
	pc := testContext()
	rec := host.NewFakeRecipient("Steve")
	assert.Equal(t, "hi Steve", Chat().Format(rec, pc, "hi {player}"))
}
