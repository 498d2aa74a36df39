package store

import (
	"fmt"
	"io"

	"github.com/VictoriaMetrics/metrics"
)

// storeMetrics tracks operation counters in a per-store metrics set, so
// two stores in one process don't share counters.
type storeMetrics struct {
	set *metrics.Set

	created  [numKinds]*metrics.Counter
	deleted  [numKinds]*metrics.Counter
	cascades *metrics.Counter
}

func newStoreMetrics() *storeMetrics {
	set := metrics.NewSet()
	m := &storeMetrics{set: set}
	for kind := Kind(0); kind < numKinds; kind++ {
		m.created[kind] = set.NewCounter(fmt.Sprintf(`arbor_entities_created_total{kind=%q}`, kind))
		m.deleted[kind] = set.NewCounter(fmt.Sprintf(`arbor_entities_deleted_total{kind=%q}`, kind))
	}
	m.cascades = set.NewCounter(`arbor_cascade_deletes_total`)
	return m
}

// WritePrometheus writes the store's operation counters in Prometheus
// text exposition format.
func (s *Store) WritePrometheus(w io.Writer) {
	s.metrics.set.WritePrometheus(w)
}
