package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initLayoutMetrics() {
	r.LayoutTicksTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "topo_layout_ticks_total",
			Help: "Total number of simulation ticks stepped",
		},
	)

	r.LayoutTickDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "topo_layout_tick_duration_seconds",
			Help:    "Simulation tick duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	r.LayoutAlpha = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "topo_layout_alpha",
			Help: "Current simulation cooling coefficient",
		},
	)

	r.LayoutSettled = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "topo_layout_settled",
			Help: "Whether the simulation has settled (1) or is running (0)",
		},
	)

	r.LayoutReheatsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "topo_layout_reheats_total",
			Help: "Total number of simulation reheats",
		},
		[]string{"cause"},
	)

	r.LayoutNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "topo_layout_nodes_total",
			Help: "Number of nodes in the active layout",
		},
	)

	r.LayoutEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "topo_layout_edges_total",
			Help: "Number of edges in the active layout",
		},
	)
}
