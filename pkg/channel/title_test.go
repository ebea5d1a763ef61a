// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package channel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glyphmc/glyph/pkg/host"
)

func TestTitle_SendDefaults(t *testing.T) {
	pc := testContext()
	rec := host.NewFakeRecipient("Steve")

	ok := Title().Send(context.Background(), []host.Recipient{rec}, pc, "[title]Welcome")
	require.True(t, ok)
	require.Len(t, rec.Titles, 1)

	got := rec.Titles[0]
	assert.Equal(t, "Welcome", got.Title)
	assert.Empty(t, got.Subtitle)
	assert.Equal(t, 5*time.Second, got.Stay)
	assert.Equal(t, 500*time.Millisecond, got.FadeIn)
	assert.Equal(t, 500*time.Millisecond, got.FadeOut)
}

func TestTitle_SendWithSeconds(t *testing.T) {
	pc := testContext()
	rec := host.NewFakeRecipient("Steve")

	ok := Title().Send(context.Background(), []host.Recipient{rec}, pc, "[title:8]Welcome")
	require.True(t, ok)
	require.Len(t, rec.Titles, 1)
	assert.Equal(t, 8*time.Second, rec.Titles[0].Stay)
}

func TestTitle_MalformedSecondsUsesDefault(t *testing.T) {
	pc := testContext()
	rec := host.NewFakeRecipient("Steve")

	for _, msg := range []string{"[title:abc]Hi", "[title:-2]Hi", "[title:]Hi"} {
		rec.Titles = nil
		ok := Title().Send(context.Background(), []host.Recipient{rec}, pc, msg)
		require.True(t, ok, msg)
		require.Len(t, rec.Titles, 1)
		assert.Equal(t, 5*time.Second, rec.Titles[0].Stay, msg)
	}
}

func TestTitle_Subtitle(t *testing.T) {
	pc := testContext()
	rec := host.NewFakeRecipient("Steve")

	ok := Title().Send(context.Background(), []host.Recipient{rec}, pc, "[title]Big\nsmall")
	require.True(t, ok)
	require.Len(t, rec.Titles, 1)
	assert.Equal(t, "Big", rec.Titles[0].Title)
	assert.Equal(t, "small", rec.Titles[0].Subtitle)
}

func TestTitle_Placeholders(t *testing.T) {
	pc := testContext()
	rec := host.NewFakeRecipient("Steve")

	ok := Title().Send(context.Background(), []host.Recipient{rec}, pc, "[title]Hi {player}")
	require.True(t, ok)
	assert.Equal(t, "Hi Steve", rec.Titles[0].Title)
}

func TestTitle_NoRecipients(t *testing.T) {
	assert.False(t, Title().Send(context.Background(), nil, testContext(), "[title]Hi"))
}
