// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package channel

import (
	"log/slog"
	"strings"
	"sync"
)

// Registry holds the named channels in registration order. It is safe
// for concurrent use. The six built-ins are installed at construction;
// Reset discards everything added since.
type Registry struct {
	mu     sync.RWMutex
	order  []Channel
	byName map[string]Channel
}

// NewRegistry creates a registry with the built-in channels: chat,
// action_bar, title, bossbar, json, webhook.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Channel)}
	r.installDefaults()
	return r
}

func (r *Registry) installDefaults() {
	for _, ch := range []Channel{
		Chat(),
		ActionBar(),
		Title(),
		BossBar(),
		JSONRaw(),
		Webhook(),
	} {
		r.order = append(r.order, ch)
		r.byName[ch.Name()] = ch
	}
}

// Register adds a channel. A channel with the same name is replaced in
// place with a warning, keeping its recognition priority.
func (r *Registry) Register(ch Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[ch.Name()]; exists {
		slog.Warn("channel conflict: replacing existing channel", "channel", ch.Name())
		for i, existing := range r.order {
			if existing.Name() == ch.Name() {
				r.order[i] = ch
				break
			}
		}
	} else {
		r.order = append(r.order, ch)
	}
	r.byName[ch.Name()] = ch
}

// Get retrieves a channel by name.
func (r *Registry) Get(name string) (Channel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ch, ok := r.byName[name]
	return ch, ok
}

// All returns the channels in registration order. The slice is a copy.
func (r *Registry) All() []Channel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Channel, len(r.order))
	copy(out, r.order)
	return out
}

// Reset discards every runtime-added channel and restores exactly the
// built-in set.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = r.order[:0]
	r.byName = make(map[string]Channel)
	r.installDefaults()
}

// Identify classifies a message. Classification is total: a blank
// message and a message with no recognized tag both resolve to chat.
// A message exactly equal to a channel's name selects that channel
// directly, bypassing tag matching. Otherwise the first registered
// channel whose tag matches anywhere in the message wins. Tag
// matching is uniformly case-insensitive.
func (r *Registry) Identify(pc *Context, message string) Channel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chat := r.byName[ChatName]

	if strings.TrimSpace(message) == "" {
		return chat
	}
	if ch, ok := r.byName[message]; ok {
		return ch
	}
	for _, ch := range r.order {
		if _, ok := ch.Match(pc, message); ok {
			return ch
		}
	}
	return chat
}
