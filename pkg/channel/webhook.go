// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gobwas/glob"
	"github.com/samber/oops"
	"github.com/sethvargo/go-retry"

	"github.com/glyphmc/glyph/internal/observability"
	"github.com/glyphmc/glyph/pkg/errutil"
	"github.com/glyphmc/glyph/pkg/host"
	"github.com/glyphmc/glyph/pkg/markup"
)

// WebhookName is the outbound notification channel name.
const WebhookName = "webhook"

// DefaultWebhookPath is used by the bare [webhook] tag.
const DefaultWebhookPath = "default"

// webhookPayload is the serialized notification body.
type webhookPayload struct {
	Content string `json:"content"`
	Embeds  []any  `json:"embeds"`
}

type webhookChannel struct{}

// Webhook returns the outbound notification channel, selected with
// [webhook] or [webhook:path]. The path names a configured endpoint
// and must pass the configured glob allow-list. Delivery needs no
// recipients; transport failures degrade to a NOT_SENT log line.
func Webhook() Channel { return webhookChannel{} }

func (webhookChannel) Name() string { return WebhookName }

func (webhookChannel) Match(pc *Context, message string) (Match, bool) {
	d := pc.config().Delimiters
	return matchTag(message, d.Start, d.End, WebhookName)
}

// Format reduces the text to its bare visible form: remote
// notification surfaces understand neither style codes nor markup.
func (webhookChannel) Format(rec host.Recipient, pc *Context, text string) string {
	return markup.Strip(pc.replace(rec, text))
}

func (c webhookChannel) Send(ctx context.Context, recipients []host.Recipient, pc *Context, message string) bool {
	cfg := pc.config().Webhook

	text := message
	path := DefaultWebhookPath
	if m, ok := c.Match(pc, message); ok {
		text = m.Rest
		if len(m.Args) > 0 && m.Args[0] != "" {
			path = m.Args[0]
		}
	}

	if !pathAllowed(path, cfg.AllowedPaths) {
		errutil.LogNotSent(ctx, pc.logger(), WebhookName, "path", path, "reason", "path not allowed")
		return false
	}
	url, ok := cfg.Endpoints[path]
	if !ok {
		errutil.LogNotSent(ctx, pc.logger(), WebhookName, "path", path, "reason", "no endpoint configured")
		return false
	}

	var rec host.Recipient
	if len(recipients) > 0 {
		rec = recipients[0]
	}
	body, err := json.Marshal(webhookPayload{
		Content: c.Format(rec, pc, text),
		Embeds:  []any{},
	})
	if err != nil {
		errutil.LogNotSent(ctx, pc.logger(), WebhookName, "path", path, "error", err)
		return false
	}

	if err := c.post(ctx, pc, url, body, cfg.MaxRetries); err != nil {
		observability.RecordWebhookFailure(path)
		errutil.LogNotSent(ctx, pc.logger(), WebhookName, "path", path, "error", err)
		return false
	}
	return true
}

// pathAllowed checks the tag path against the configured glob
// patterns. An empty allow-list admits every configured endpoint. A
// pattern that fails to compile is skipped.
func pathAllowed(path string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			continue
		}
		if g.Match(path) {
			return true
		}
	}
	return false
}

// post performs the HTTP delivery with bounded exponential retry.
// Server-side failures retry; client-side rejections do not.
func (webhookChannel) post(ctx context.Context, pc *Context, url string, body []byte, maxRetries int) error {
	client := pc.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: pc.config().Webhook.Timeout()}
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	backoff := retry.WithMaxRetries(uint64(maxRetries), retry.NewExponential(200*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return oops.Code("WEBHOOK_REQUEST").Wrapf(err, "building webhook request")
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}()

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return nil
		case resp.StatusCode >= 500:
			return retry.RetryableError(
				oops.Code("WEBHOOK_STATUS").With("status", resp.StatusCode).Errorf("webhook returned %d", resp.StatusCode))
		default:
			return oops.Code("WEBHOOK_STATUS").With("status", resp.StatusCode).Errorf("webhook returned %d", resp.StatusCode)
		}
	})
}
