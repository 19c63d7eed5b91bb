package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts limiter decisions.
type Metrics struct {
	Rejections prometheus.Counter
	Errors     prometheus.Counter
}

// New creates the rate limit metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Rejections: f.NewCounter(prometheus.CounterOpts{
			Name: "curpcheck_ratelimit_rejections_total",
			Help: "Requests rejected by the per-IP rate limiter",
		}),
		Errors: f.NewCounter(prometheus.CounterOpts{
			Name: "curpcheck_ratelimit_store_errors_total",
			Help: "Rate limit store failures; requests are let through when the store fails",
		}),
	}
}

func (m *Metrics) IncrementRejections() {
	if m != nil {
		m.Rejections.Inc()
	}
}

func (m *Metrics) IncrementErrors() {
	if m != nil {
		m.Errors.Inc()
	}
}
