package tombmap

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures a Map at construction time. Grounded on teacher's
// Option[K, V] (homier/stablemap/table.go), extended with logging and
// metrics hooks in the style of Voskan/arena-cache/pkg/config.go.
type Option[K comparable, V any] func(*Map[K, V])

// WithHashFunc overrides the default hasher. The hash function is an
// external collaborator per spec §1: any deterministic-per-process 64-bit
// function is acceptable.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(m *Map[K, V]) {
		m.hashFunc = f
	}
}

// WithLogger attaches a zap logger; the table logs at Debug level on
// rebuilds (grow, tombstone saturation, explicit shrink, ensure-capacity),
// never on the read/update hot path. A nil logger (the default) disables
// logging entirely.
func WithLogger[K comparable, V any](logger *zap.Logger) Option[K, V] {
	return func(m *Map[K, V]) {
		m.logger = logger
	}
}

// WithMetrics registers rebuild counters and a capacity gauge on reg,
// under the given metric namespace. Grounded on
// Voskan/arena-cache/pkg/config.go's WithMetrics-equivalent registry option.
func WithMetrics[K comparable, V any](reg *prometheus.Registry, namespace string) Option[K, V] {
	return func(m *Map[K, V]) {
		m.metrics = newPromMetrics(reg, namespace)
	}
}

// WithAllocator overrides the slot array allocator. The default backs
// storage with the Go runtime allocator; a pooling or arena-backed
// Allocator can be supplied instead (see allocator.go).
func WithAllocator[K comparable, V any](alloc Allocator[K, V]) Option[K, V] {
	return func(m *Map[K, V]) {
		m.alloc = alloc
	}
}
