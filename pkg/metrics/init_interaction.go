package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initInteractionMetrics() {
	r.InteractionEventsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "topo_interaction_events_total",
			Help: "Total number of pointer events processed",
		},
		[]string{"kind"},
	)

	r.InteractionDragsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "topo_interaction_drags_total",
			Help: "Total number of completed node drags",
		},
	)

	r.InteractionClicksTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "topo_interaction_clicks_total",
			Help: "Total number of node selections",
		},
	)
}
