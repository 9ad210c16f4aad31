package metrics

import (
	"time"
)

// RecordTick records one simulation step with its duration and the
// post-step cooling state.
func (r *Registry) RecordTick(duration time.Duration, alpha float64, settled bool) {
	r.LayoutTicksTotal.Inc()
	r.LayoutTickDuration.Observe(duration.Seconds())
	r.LayoutAlpha.Set(alpha)
	if settled {
		r.LayoutSettled.Set(1)
	} else {
		r.LayoutSettled.Set(0)
	}
}

// RecordReheat records a simulation reheat by cause ("drag", "release",
// "snapshot", "resize").
func (r *Registry) RecordReheat(cause string) {
	r.LayoutReheatsTotal.WithLabelValues(cause).Inc()
}

// SetGraphSize updates the layout node and edge gauges.
func (r *Registry) SetGraphSize(nodes, edges int) {
	r.LayoutNodesTotal.Set(float64(nodes))
	r.LayoutEdgesTotal.Set(float64(edges))
}

// RecordFrame records one rendered frame with its scene size.
func (r *Registry) RecordFrame(duration time.Duration, nodes, edges int) {
	r.RenderFramesTotal.Inc()
	r.RenderFrameDuration.Observe(duration.Seconds())
	r.RenderSceneNodes.Set(float64(nodes))
	r.RenderSceneEdges.Set(float64(edges))
}

// RecordInteraction records a pointer event by kind ("down", "move",
// "up", "wheel").
func (r *Registry) RecordInteraction(kind string) {
	r.InteractionEventsTotal.WithLabelValues(kind).Inc()
}

// RecordDrag records a completed node drag.
func (r *Registry) RecordDrag() {
	r.InteractionDragsTotal.Inc()
}

// RecordClick records a node selection.
func (r *Registry) RecordClick() {
	r.InteractionClicksTotal.Inc()
}

// RecordSnapshot records a topology snapshot arrival by source and
// status ("ok", "error").
func (r *Registry) RecordSnapshot(source, status string, bytes int) {
	r.FeedSnapshotsTotal.WithLabelValues(source, status).Inc()
	if status == "ok" {
		r.FeedSnapshotBytes.Observe(float64(bytes))
		r.FeedLastSnapshotUnixTs.Set(float64(time.Now().Unix()))
	}
}

// RecordDroppedEdges adds to the dropped-edge counter after sanitizing
// a snapshot.
func (r *Registry) RecordDroppedEdges(n int) {
	if n > 0 {
		r.FeedDroppedEdgesTotal.Add(float64(n))
	}
}

// RecordDecodeError records a snapshot payload that failed to decode.
func (r *Registry) RecordDecodeError() {
	r.FeedDecodeErrorsTotal.Inc()
}
