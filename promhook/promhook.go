package promhook

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/byte4ever/w8r"
)

// Metrics holds the poll counters registered with a prometheus
// registerer. One Metrics instance serves any number of concurrent
// waits; counters are goroutine-safe.
type Metrics struct {
	attempts    prometheus.Counter
	successes   prometheus.Counter
	exhaustions *prometheus.CounterVec
}

// New registers the poll counters with reg and returns the Metrics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		attempts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "w8r",
			Name:      "probe_attempts_total",
			Help:      "Failed probe evaluations across all waits.",
		}),
		successes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "w8r",
			Name:      "probe_successes_total",
			Help:      "Waits that ended with the probe satisfied.",
		}),
		exhaustions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "w8r",
			Name:      "probe_exhaustions_total",
			Help:      "Waits that gave up, by limit kind.",
		}, []string{"limit"}),
	}
}

// Hooks returns poll lifecycle hooks that feed the counters.
func (m *Metrics) Hooks() *w8r.Hooks {
	return &w8r.Hooks{
		OnAttempt: func(_ int, _ error) {
			m.attempts.Inc()
		},
		OnSuccess: func(_ int) {
			m.successes.Inc()
		},
		OnExhausted: func(kind error, _ int) {
			m.exhaustions.WithLabelValues(limitLabel(kind)).Inc()
		},
	}
}

func limitLabel(kind error) string {
	switch {
	case errors.Is(kind, w8r.ErrHardLimitExceeded):
		return "hard"
	case errors.Is(kind, w8r.ErrSoftLimitExceeded):
		return "soft"
	default:
		return "unknown"
	}
}
