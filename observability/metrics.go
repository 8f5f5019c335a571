package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the functions.
// Every method is nil-safe so handlers can run without metrics in tests.
type Metrics struct {
	EmailsTotal        *prometheus.CounterVec
	ModerationTotal    *prometheus.CounterVec
	InvocationDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers the metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EmailsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ink_functions_emails_total",
			Help: "Outbound notification emails by kind and outcome",
		}, []string{"kind", "outcome"}), // outcome: "sent", "failed"

		ModerationTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ink_functions_moderation_calls_total",
			Help: "Moderation calls by outcome",
		}, []string{"outcome"}), // outcome: "ok", "validation", "not_found", "transport", "internal"

		InvocationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ink_functions_invocation_duration_seconds",
			Help:    "Duration of function invocations by name and status code",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"function", "code"}),
	}
}

func (m *Metrics) IncrementEmail(kind, outcome string) {
	if m != nil {
		m.EmailsTotal.WithLabelValues(kind, outcome).Inc()
	}
}

func (m *Metrics) IncrementModeration(outcome string) {
	if m != nil {
		m.ModerationTotal.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) ObserveInvocation(function, code string, d time.Duration) {
	if m != nil {
		m.InvocationDuration.WithLabelValues(function, code).Observe(d.Seconds())
	}
}
