// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

// Package observability provides Prometheus metrics for the dispatch
// pipeline. The host decides where (or whether) to expose them; the
// library only records.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Status constants for dispatch metrics.
const (
	StatusSent    = "sent"
	StatusNotSent = "not_sent"
)

// MessagesDispatched counts dispatched messages by channel and status.
// Use RegisterMetrics to register this with a Prometheus registry.
var MessagesDispatched = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "glyph_messages_dispatched_total",
		Help: "Total number of dispatched messages",
	},
	[]string{"channel", "status"},
)

// CompileDuration observes markup compilation latency.
var CompileDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "glyph_compile_duration_seconds",
		Help:    "Markup compilation duration in seconds",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
	},
)

// WebhookFailures counts failed webhook deliveries by path.
var WebhookFailures = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "glyph_webhook_failures_total",
		Help: "Total number of failed webhook deliveries",
	},
	[]string{"path"},
)

// RegisterMetrics registers the library metrics with the given
// Prometheus registry. Panics if registration fails (prometheus
// convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(MessagesDispatched)
	reg.MustRegister(CompileDuration)
	reg.MustRegister(WebhookFailures)
}

// RecordDispatch increments the dispatch counter.
func RecordDispatch(channel, status string) {
	MessagesDispatched.WithLabelValues(channel, status).Inc()
}

// RecordCompileDuration records one compilation pass.
func RecordCompileDuration(d time.Duration) {
	CompileDuration.Observe(d.Seconds())
}

// RecordWebhookFailure increments the webhook failure counter.
func RecordWebhookFailure(path string) {
	WebhookFailures.WithLabelValues(path).Inc()
}
