package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DisbursementPrometheusMetrics counts transfer outcomes per status and
// tracks how often durable persistence fell back to the in-memory log.
type DisbursementPrometheusMetrics struct {
	transferTotal       *prometheus.CounterVec
	persistFallbackHits prometheus.Counter
}

func newDisbursementPrometheusMetrics(reg prometheus.Registerer) *DisbursementPrometheusMetrics {
	transferTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payroll_transfer_total",
			Help: "Number of processed transfer instructions per final status.",
		},
		[]string{"status", "mode"},
	)

	persistFallbackHits := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payroll_persist_fallback_total",
			Help: "Number of payroll records written to the in-memory fallback log.",
		},
	)

	reg.MustRegister(transferTotal, persistFallbackHits)

	return &DisbursementPrometheusMetrics{
		transferTotal:       transferTotal,
		persistFallbackHits: persistFallbackHits,
	}
}

func (m *DisbursementPrometheusMetrics) RecordTransfer(status, mode string) {
	if m == nil {
		return
	}

	m.transferTotal.WithLabelValues(status, mode).Inc()
}

func (m *DisbursementPrometheusMetrics) RecordPersistFallback() {
	if m == nil {
		return
	}

	m.persistFallbackHits.Inc()
}
