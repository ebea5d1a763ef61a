// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

// Package config loads and validates the library configuration:
// channel tag delimiters, surface defaults, and webhook endpoints.
// The core never touches disk for message content; this file covers
// library tuning only.
package config

import (
	"os"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Config is the root library configuration.
type Config struct {
	Delimiters DelimiterConfig `koanf:"delimiters" json:"delimiters,omitempty"`
	Chat       ChatConfig      `koanf:"chat" json:"chat,omitempty"`
	Title      TitleConfig     `koanf:"title" json:"title,omitempty"`
	BossBar    BossBarConfig   `koanf:"bossbar" json:"bossbar,omitempty"`
	Webhook    WebhookConfig   `koanf:"webhook" json:"webhook,omitempty"`
	Logging    LoggingConfig   `koanf:"logging" json:"logging,omitempty"`
}

// DelimiterConfig sets the channel-tag bracket strings.
type DelimiterConfig struct {
	Start string `koanf:"start" json:"start,omitempty"`
	End   string `koanf:"end" json:"end,omitempty"`
}

// ChatConfig tunes the chat channel.
type ChatConfig struct {
	// Width is the visible column count used by <center> lines.
	Width int `koanf:"width" json:"width,omitempty"`
}

// TitleConfig sets title display defaults.
type TitleConfig struct {
	// Seconds the title stays on screen when the tag gives none.
	Seconds int `koanf:"seconds" json:"seconds,omitempty"`
	// FadeMillis is the fade-in and fade-out duration.
	FadeMillis int `koanf:"fade_millis" json:"fade_millis,omitempty"`
}

// BossBarConfig sets progress-bar defaults for tags that omit them.
type BossBarConfig struct {
	Seconds int    `koanf:"seconds" json:"seconds,omitempty"`
	Color   string `koanf:"color" json:"color,omitempty"`
	Style   string `koanf:"style" json:"style,omitempty"`
}

// WebhookConfig configures the outbound notification webhook.
type WebhookConfig struct {
	// Endpoints maps tag paths to destination URLs. The "default"
	// entry serves the bare [webhook] tag.
	Endpoints map[string]string `koanf:"endpoints" json:"endpoints,omitempty"`
	// AllowedPaths are glob patterns a tag path must match; empty
	// means every configured endpoint is reachable.
	AllowedPaths []string `koanf:"allowed_paths" json:"allowed_paths,omitempty"`
	// TimeoutMillis bounds one POST attempt.
	TimeoutMillis int `koanf:"timeout_millis" json:"timeout_millis,omitempty"`
	// MaxRetries bounds delivery retries after the first attempt.
	MaxRetries int `koanf:"max_retries" json:"max_retries,omitempty"`
}

// Timeout returns the POST timeout as a duration.
func (w WebhookConfig) Timeout() time.Duration {
	return time.Duration(w.TimeoutMillis) * time.Millisecond
}

// LoggingConfig selects the slog handler format.
type LoggingConfig struct {
	Format string `koanf:"format" json:"format,omitempty"` // "json" or "text"
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Delimiters: DelimiterConfig{Start: "[", End: "]"},
		Chat:       ChatConfig{Width: 53},
		Title:      TitleConfig{Seconds: 5, FadeMillis: 500},
		BossBar:    BossBarConfig{Seconds: 10, Color: "PURPLE", Style: "SOLID"},
		Webhook: WebhookConfig{
			Endpoints:     map[string]string{},
			TimeoutMillis: 5000,
			MaxRetries:    2,
		},
		Logging: LoggingConfig{Format: "json"},
	}
}

// Load reads configuration from an optional YAML file and optional
// flag set, layered over the defaults. The file is schema-validated
// before it is applied, so a typo'd key fails loudly at startup
// instead of silently falling back.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if path != "" {
		raw, err := os.ReadFile(path) //nolint:gosec // operator-supplied path
		if err != nil {
			return nil, oops.Code("CONFIG_READ").With("path", path).Wrapf(err, "reading config file")
		}
		if err := ValidateYAML(raw); err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, oops.Code("CONFIG_PARSE").With("path", path).Wrapf(err, "parsing config file")
		}
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, oops.Code("CONFIG_FLAGS").Wrapf(err, "applying flag overrides")
		}
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, oops.Code("CONFIG_DECODE").Wrapf(err, "decoding config")
	}
	return cfg, nil
}
