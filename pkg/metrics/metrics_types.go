package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the viewer
type Registry struct {
	// Layout Metrics
	LayoutTicksTotal      prometheus.Counter
	LayoutTickDuration    prometheus.Histogram
	LayoutAlpha           prometheus.Gauge
	LayoutSettled         prometheus.Gauge
	LayoutReheatsTotal    *prometheus.CounterVec
	LayoutNodesTotal      prometheus.Gauge
	LayoutEdgesTotal      prometheus.Gauge

	// Render Metrics
	RenderFramesTotal   prometheus.Counter
	RenderFrameDuration prometheus.Histogram
	RenderSceneNodes    prometheus.Gauge
	RenderSceneEdges    prometheus.Gauge

	// Interaction Metrics
	InteractionEventsTotal *prometheus.CounterVec
	InteractionDragsTotal  prometheus.Counter
	InteractionClicksTotal prometheus.Counter

	// Feed Metrics
	FeedSnapshotsTotal     *prometheus.CounterVec
	FeedSnapshotBytes      prometheus.Histogram
	FeedDroppedEdgesTotal  prometheus.Counter
	FeedDecodeErrorsTotal  prometheus.Counter
	FeedLastSnapshotUnixTs prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initLayoutMetrics()
	r.initRenderMetrics()
	r.initInteractionMetrics()
	r.initFeedMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
