// Package metrics provides observability for the verifier module.
package metrics

import (
	pkgmetrics "idmatch/pkg/metrics"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the verifier module. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	// Verification outcomes by result bucket
	Outcomes *prometheus.CounterVec

	// Identities whose identifier resolved to no reference record
	ResolverMisses prometheus.Counter

	// Per-identity verification latency
	VerifyLatency prometheus.Histogram
}

// New creates a new Metrics instance with all verifier metrics registered.
func New() *Metrics {
	return &Metrics{
		Outcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "idmatch_verifier_outcomes_total",
			Help: "Total verification outcomes by result bucket",
		}, []string{"result"}), // result: "full", "partial", "no_match"

		ResolverMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "idmatch_verifier_resolver_misses_total",
			Help: "Total identities whose identifier resolved to no reference record",
		}),

		VerifyLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "idmatch_verifier_verify_duration_seconds",
			Help:    "Duration of single identity verification",
			Buckets: pkgmetrics.DefaultBuckets,
		}),
	}
}

// ObserveVerification records one verification outcome and its duration.
func (m *Metrics) ObserveVerification(bucket string, resolverHit bool, d time.Duration) {
	if m != nil {
		m.Outcomes.WithLabelValues(bucket).Inc()
		if !resolverHit {
			m.ResolverMisses.Inc()
		}
		m.VerifyLatency.Observe(d.Seconds())
	}
}
