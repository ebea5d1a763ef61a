// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

// Package placeholder resolves named substitutions against a recipient
// before markup compilation. The registry is ordered: rules apply in
// registration order, so overlapping keys resolve deterministically
// (and iteration-order-dependently, by design).
package placeholder

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/glyphmc/glyph/pkg/host"
	"github.com/glyphmc/glyph/pkg/markup"
)

// Resolver computes a rule's value for one recipient. The recipient
// may be nil when a rule is recipient-independent.
type Resolver func(r host.Recipient) string

// Rule is one named substitution. Keys are unique within a registry.
type Rule struct {
	Key           string
	Resolve       Resolver
	CaseSensitive bool

	// builtin marks rules seeded by SetDefaults, which survive a
	// reset while every runtime-added rule is discarded.
	builtin bool
}

// TextFunc is a free-form text transformation applied after all rules.
type TextFunc func(r host.Recipient, text string) string

// Registry holds the placeholder rules and free-form text functions.
// It is safe for concurrent use: the host may resolve on its main loop
// while an admin command edits rules.
type Registry struct {
	mu     sync.RWMutex
	prefix string
	rules  []Rule
	index  map[string]int
	funcs  []TextFunc
}

// PrefixKey is the language-prefix placeholder, always substituted
// before any other rule.
const PrefixKey = "{prefix}"

// NewRegistry creates a registry seeded with the built-in rules.
func NewRegistry() *Registry {
	r := &Registry{index: make(map[string]int)}
	r.seedLocked()
	return r
}

// SetPrefix sets the value substituted for the language-prefix key.
func (r *Registry) SetPrefix(prefix string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prefix = prefix
}

// Load adds a case-insensitive rule. Returns false without modifying
// the registry when the key is already present.
func (r *Registry) Load(key string, resolve Resolver) bool {
	return r.LoadRule(Rule{Key: key, Resolve: resolve})
}

// LoadRule adds a rule with full control over case sensitivity.
// Duplicate keys are rejected, not overwritten.
func (r *Registry) LoadRule(rule Rule) bool {
	if rule.Key == "" || rule.Resolve == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.index[strings.ToLower(rule.Key)]; exists {
		slog.Debug("placeholder load rejected: duplicate key", "key", rule.Key)
		return false
	}
	r.index[strings.ToLower(rule.Key)] = len(r.rules)
	r.rules = append(r.rules, rule)
	return true
}

// Remove deletes a rule by key. Returns false when no such key exists.
func (r *Registry) Remove(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[strings.ToLower(key)]
	if !ok {
		return false
	}
	r.rules = append(r.rules[:i], r.rules[i+1:]...)
	r.reindex()
	return true
}

// Edit renames a rule, keeping its position, resolver, and case
// policy. Returns false when the old key is missing or the new key
// already exists.
func (r *Registry) Edit(oldKey, newKey string) bool {
	if newKey == "" {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[strings.ToLower(oldKey)]
	if !ok {
		return false
	}
	if _, clash := r.index[strings.ToLower(newKey)]; clash && !strings.EqualFold(oldKey, newKey) {
		return false
	}
	delete(r.index, strings.ToLower(oldKey))
	r.rules[i].Key = newKey
	r.index[strings.ToLower(newKey)] = i
	return true
}

// AddFunc registers a free-form text function. Functions run after
// every rule, in registration order, and survive SetDefaults only if
// re-registered: a reset discards them with the runtime rules.
func (r *Registry) AddFunc(fn TextFunc) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs = append(r.funcs, fn)
}

// SetDefaults discards every runtime-added rule and text function and
// restores exactly the built-in rule set.
func (r *Registry) SetDefaults() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = r.rules[:0]
	r.funcs = nil
	r.index = make(map[string]int)
	r.seedLocked()
}

// Keys returns the registered keys in application order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, len(r.rules))
	for i, rule := range r.rules {
		keys[i] = rule.Key
	}
	return keys
}

// Replace resolves text against the recipient: the language prefix
// first, then each rule in registration order, then text functions,
// then unicode escapes. With a nil recipient, recipient-dependent
// rules are skipped and their keys pass through unchanged.
func (r *Registry) Replace(rec host.Recipient, text string) string {
	r.mu.RLock()
	rules := make([]Rule, len(r.rules))
	copy(rules, r.rules)
	funcs := make([]TextFunc, len(r.funcs))
	copy(funcs, r.funcs)
	prefix := r.prefix
	r.mu.RUnlock()

	text = replaceFold(text, PrefixKey, prefix)

	for _, rule := range rules {
		// Built-in rules all read recipient state; runtime rules own
		// their nil handling.
		if rec == nil && rule.builtin {
			continue
		}
		value := rule.Resolve(rec)
		if rule.CaseSensitive {
			text = strings.ReplaceAll(text, rule.Key, value)
		} else {
			text = replaceFold(text, rule.Key, value)
		}
	}

	for _, fn := range funcs {
		text = fn(rec, text)
	}

	return markup.ExpandUnicode(text)
}

// reindex rebuilds the key index after a removal.
func (r *Registry) reindex() {
	r.index = make(map[string]int, len(r.rules))
	for i, rule := range r.rules {
		r.index[strings.ToLower(rule.Key)] = i
	}
}

// replaceFold replaces every case-insensitive occurrence of old in s.
func replaceFold(s, old, new string) string {
	if old == "" {
		return s
	}
	lower := strings.ToLower(s)
	oldLower := strings.ToLower(old)

	var b strings.Builder
	b.Grow(len(s))
	for {
		i := strings.Index(lower, oldLower)
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		b.WriteString(new)
		s = s[i+len(old):]
		lower = lower[i+len(old):]
	}
}
