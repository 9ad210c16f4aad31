package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initFeedMetrics() {
	r.FeedSnapshotsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "topo_feed_snapshots_total",
			Help: "Total number of topology snapshots received",
		},
		[]string{"source", "status"},
	)

	r.FeedSnapshotBytes = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "topo_feed_snapshot_bytes",
			Help:    "Decoded snapshot payload size in bytes",
			Buckets: prometheus.ExponentialBuckets(256, 4, 8),
		},
	)

	r.FeedDroppedEdgesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "topo_feed_dropped_edges_total",
			Help: "Total number of edges dropped for referencing unknown nodes",
		},
	)

	r.FeedDecodeErrorsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "topo_feed_decode_errors_total",
			Help: "Total number of snapshot payloads that failed to decode",
		},
	)

	r.FeedLastSnapshotUnixTs = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "topo_feed_last_snapshot_timestamp_seconds",
			Help: "Unix timestamp of the last accepted snapshot",
		},
	)
}
