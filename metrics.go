package tombmap

import "github.com/prometheus/client_golang/prometheus"

// rebuildCause labels why the controller rebuilt the slot array, used both
// for metrics.go's counters and for the debug log line in controller.go.
type rebuildCause string

const (
	causeGrow             rebuildCause = "grow"
	causeTombstoneCleanup rebuildCause = "tombstone_saturation"
	causeShrink           rebuildCause = "shrink"
	causeEnsureCapacity   rebuildCause = "ensure_capacity"
)

// metricsSink abstracts the concrete metrics backend so Controller only
// ever talks to this interface. Grounded on
// Voskan/arena-cache/pkg/metrics.go's metricsSink, relabeled from
// cache-shard events to table-rebuild events.
type metricsSink interface {
	incRebuild(cause rebuildCause)
	setCapacity(length uint64)
}

// noopMetrics is the default sink: metrics have zero cost unless a caller
// opts in via WithMetrics.
type noopMetrics struct{}

func (noopMetrics) incRebuild(rebuildCause) {}
func (noopMetrics) setCapacity(uint64)      {}

// promMetrics is the Prometheus-backed sink.
type promMetrics struct {
	rebuilds *prometheus.CounterVec
	capacity prometheus.Gauge
}

func newPromMetrics(reg *prometheus.Registry, namespace string) *promMetrics {
	m := &promMetrics{
		rebuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rebuilds_total",
			Help:      "Number of slot array rebuilds, labeled by cause.",
		}, []string{"cause"}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "capacity",
			Help:      "Current slot array length.",
		}),
	}

	reg.MustRegister(m.rebuilds, m.capacity)

	return m
}

func (m *promMetrics) incRebuild(cause rebuildCause) {
	m.rebuilds.WithLabelValues(string(cause)).Inc()
}

func (m *promMetrics) setCapacity(length uint64) {
	m.capacity.Set(float64(length))
}
