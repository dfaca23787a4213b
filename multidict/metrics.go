package multidict

import "github.com/prometheus/client_golang/prometheus"

// Metrics is the optional Prometheus surface for a Dict's rehash/scan
// bookkeeping, registered against a caller-supplied registry.
type Metrics struct {
	RehashStarted   prometheus.Counter
	RehashCompleted prometheus.Counter
	ScanWraps       prometheus.Counter
}

// NewMetrics registers and returns a Metrics bound to reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RehashStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "datakit",
			Subsystem: "multidict",
			Name:      "rehash_started_total",
			Help:      "Number of times a dict transitioned from STEADY to REHASHING.",
		}),
		RehashCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "datakit",
			Subsystem: "multidict",
			Name:      "rehash_completed_total",
			Help:      "Number of times a dict finished migrating back to STEADY.",
		}),
		ScanWraps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "datakit",
			Subsystem: "multidict",
			Name:      "scan_cursor_wraps_total",
			Help:      "Number of times Scan's cursor returned to 0 (a full pass completed).",
		}),
	}
	reg.MustRegister(m.RehashStarted, m.RehashCompleted, m.ScanWraps)
	return m
}
