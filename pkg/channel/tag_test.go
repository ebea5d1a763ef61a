// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchTag(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		names    []string
		wantArgs []string
		wantRest string
		wantOK   bool
	}{
		{
			name:     "leading tag",
			message:  "[title]Hello",
			names:    []string{"title"},
			wantArgs: []string{},
			wantRest: "Hello",
			wantOK:   true,
		},
		{
			name:     "tag with one arg",
			message:  "[title:5]Hello",
			names:    []string{"title"},
			wantArgs: []string{"5"},
			wantRest: "Hello",
			wantOK:   true,
		},
		{
			name:     "tag with several args",
			message:  "[bossbar:10:RED:SOLID]Hi",
			names:    []string{"bossbar"},
			wantArgs: []string{"10", "RED", "SOLID"},
			wantRest: "Hi",
			wantOK:   true,
		},
		{
			name:     "tag mid-message",
			message:  "Hello [title]world",
			names:    []string{"title"},
			wantArgs: []string{},
			wantRest: "Hello world",
			wantOK:   true,
		},
		{
			name:     "case-insensitive",
			message:  "[TITLE:3]Hi",
			names:    []string{"title"},
			wantArgs: []string{"3"},
			wantRest: "Hi",
			wantOK:   true,
		},
		{
			name:     "alias matches",
			message:  "[actionbar]Hi",
			names:    []string{"action_bar", "actionbar"},
			wantArgs: []string{},
			wantRest: "Hi",
			wantOK:   true,
		},
		{
			name:    "wrong name",
			message: "[bossbar]Hi",
			names:   []string{"title"},
			wantOK:  false,
		},
		{
			name:     "first matching tag wins",
			message:  "[other] [title:1]Hi",
			names:    []string{"title"},
			wantArgs: []string{"1"},
			wantRest: "[other] Hi",
			wantOK:   true,
		},
		{
			name:    "unterminated tag",
			message: "[title Hello",
			names:   []string{"title"},
			wantOK:  false,
		},
		{
			name:    "no tag at all",
			message: "plain text",
			names:   []string{"title"},
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := matchTag(tt.message, "[", "]", tt.names...)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantArgs, m.Args)
			assert.Equal(t, tt.wantRest, m.Rest)
		})
	}
}

func TestMatchTag_CustomDelimiters(t *testing.T) {
	m, ok := matchTag("<<title:2>>Hi", "<<", ">>", "title")
	require.True(t, ok)
	assert.Equal(t, []string{"2"}, m.Args)
	assert.Equal(t, "Hi", m.Rest)
}

func TestMatchTag_EmptyDelimiters(t *testing.T) {
	_, ok := matchTag("[title]Hi", "", "]", "title")
	assert.False(t, ok)
}
