package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initRenderMetrics() {
	r.RenderFramesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "topo_render_frames_total",
			Help: "Total number of frames rendered",
		},
	)

	r.RenderFrameDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "topo_render_frame_duration_seconds",
			Help:    "Frame build and draw duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.033, 0.066, 0.1},
		},
	)

	r.RenderSceneNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "topo_render_scene_nodes",
			Help: "Number of node drawables in the last scene",
		},
	)

	r.RenderSceneEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "topo_render_scene_edges",
			Help: "Number of edge drawables in the last scene",
		},
	)
}
