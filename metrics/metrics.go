// Package metrics exposes prometheus counters for the engine's own
// behavior: how many events were dispatched, suppressed, rate limited,
// or lost to appender failures. The counters are registered on the
// default registry; serving them is the embedding application's job.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Suppression reasons used with EventsSuppressed.
const (
	ReasonLevel      = "level"
	ReasonNamespace  = "namespace"
	ReasonMiddleware = "middleware"
	ReasonNoAppender = "no_appender"
)

var (
	EventsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "logforge_events_dispatched_total",
		Help: "The total number of log events delivered to the fan-out",
	}, []string{"level"})

	EventsSuppressed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "logforge_events_suppressed_total",
		Help: "The total number of log events suppressed before delivery",
	}, []string{"reason"})

	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "logforge_rate_limited_total",
		Help: "The total number of deliveries suppressed by per-appender rate limiting",
	}, []string{"appender"})

	AppenderErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "logforge_appender_errors_total",
		Help: "The total number of appender delivery failures (errors and recovered panics)",
	}, []string{"appender"})
)

// Pre-resolved counters for the dispatch hot path, so suppressing an
// event costs an atomic increment rather than a label lookup.
var (
	SuppressedByLevel      = EventsSuppressed.WithLabelValues(ReasonLevel)
	SuppressedByNamespace  = EventsSuppressed.WithLabelValues(ReasonNamespace)
	SuppressedByMiddleware = EventsSuppressed.WithLabelValues(ReasonMiddleware)
	SuppressedNoAppender   = EventsSuppressed.WithLabelValues(ReasonNoAppender)
)
