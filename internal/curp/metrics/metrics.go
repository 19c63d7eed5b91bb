package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for CURP analysis.
type Metrics struct {
	// Analyses by verdict status and reason
	Analyses *prometheus.CounterVec

	AnalyzeLatency prometheus.Histogram

	// Items per batch request
	BatchSize prometheus.Histogram
}

// New creates the CURP metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Analyses: f.NewCounterVec(prometheus.CounterOpts{
			Name: "curpcheck_analyses_total",
			Help: "CURP analyses by verdict status and reason",
		}, []string{"status", "reason"}),

		AnalyzeLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "curpcheck_analyze_duration_seconds",
			Help:    "Duration of a single CURP analysis",
			Buckets: []float64{0.000001, 0.0000025, 0.000005, 0.00001, 0.000025, 0.00005, 0.0001, 0.001},
		}),

		BatchSize: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "curpcheck_batch_size",
			Help:    "Number of CURPs per batch analysis request",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250},
		}),
	}
}

// IncrementAnalysis records one verdict. The valid verdict has no reason
// and is labelled "none".
func (m *Metrics) IncrementAnalysis(status, reason string) {
	if m == nil {
		return
	}
	if reason == "" {
		reason = "none"
	}
	m.Analyses.WithLabelValues(status, reason).Inc()
}

// ObserveAnalyzeLatency records the duration of one analysis.
func (m *Metrics) ObserveAnalyzeLatency(d time.Duration) {
	if m != nil {
		m.AnalyzeLatency.Observe(d.Seconds())
	}
}

// ObserveBatchSize records the size of a batch request.
func (m *Metrics) ObserveBatchSize(n int) {
	if m != nil {
		m.BatchSize.Observe(float64(n))
	}
}
