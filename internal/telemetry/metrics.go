package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ash_intersect"

// Metrics exposes the same events as Counters to prometheus.
// Each Intersector owns its registry so several instances can live in one process.
type Metrics struct {
	registry   *prometheus.Registry
	admissions *prometheus.CounterVec
	invalid    prometheus.Counter
	faults     prometheus.Counter
	compute    *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		admissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "admissions_total",
			Help:      "Admission decisions by outcome (admitted, rejected_switch, rejected_shrink).",
		}, []string{"outcome"}),
		invalid: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_requests_total",
			Help:      "Requests rejected before admission because of malformed input.",
		}),
		faults: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "faults_total",
			Help:      "Intersections aborted by a computation fault.",
		}),
		compute: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "compute_seconds",
			Help:      "Wall-clock time of the intersection pass, population excluded.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"mode"}),
	}
	m.registry.MustRegister(m.admissions, m.invalid, m.faults, m.compute)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Admitted() {
	m.admissions.WithLabelValues("admitted").Inc()
}

func (m *Metrics) Rejected(alternativeFits bool) {
	if alternativeFits {
		m.admissions.WithLabelValues("rejected_switch").Inc()
	} else {
		m.admissions.WithLabelValues("rejected_shrink").Inc()
	}
}

func (m *Metrics) InvalidRequest() { m.invalid.Inc() }
func (m *Metrics) Fault()          { m.faults.Inc() }

func (m *Metrics) Computed(mode string, seconds float64) {
	m.compute.WithLabelValues(mode).Observe(seconds)
}
