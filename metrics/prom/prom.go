package prom

import (
	"strconv"

	"github.com/louisXW/pagmo/archipelago"
	"github.com/prometheus/client_golang/prometheus"
)

// Adapter implements archipelago.Metrics and exports Prometheus
// counters/gauges. Safe for concurrent use; all Prometheus metric types
// are goroutine-safe.
type Adapter struct {
	epochs      *prometheus.CounterVec
	published   prometheus.Counter
	integrated  prometheus.Counter
	busyIslands prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		epochs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "epochs_total",
				Help:        "Evolution epochs completed, by island",
				ConstLabels: constLabels,
			},
			[]string{"island"},
		),
		published: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "migrations_published_total",
			Help:        "Individuals placed in the migration store",
			ConstLabels: constLabels,
		}),
		integrated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "migrations_integrated_total",
			Help:        "Individuals integrated by a replacement policy",
			ConstLabels: constLabels,
		}),
		busyIslands: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "busy_islands",
			Help:        "Number of islands still running in the current evolve",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.epochs, a.published, a.integrated, a.busyIslands)
	return a
}

// EpochCompleted increments the per-island epoch counter.
func (a *Adapter) EpochCompleted(islandIdx int) {
	a.epochs.WithLabelValues(strconv.Itoa(islandIdx)).Inc()
}

// MigrationPublished increments the published-individuals counter.
func (a *Adapter) MigrationPublished(count int) {
	a.published.Add(float64(count))
}

// MigrationIntegrated increments the integrated-individuals counter.
func (a *Adapter) MigrationIntegrated(count int) {
	a.integrated.Add(float64(count))
}

// BusyIslands sets the busy-islands gauge.
func (a *Adapter) BusyIslands(n int) {
	a.busyIslands.Set(float64(n))
}

// Compile-time check: ensure Adapter implements archipelago.Metrics.
var _ archipelago.Metrics = (*Adapter)(nil)
