package metrics

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
)

func gatherValue(t *testing.T, r *Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := r.GetPrometheusRegistry().Gather()
	if err != nil {
		t.Fatal(err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metric:
		for _, m := range mf.GetMetric() {
			for k, v := range labels {
				found := false
				for _, lp := range m.GetLabel() {
					if lp.GetName() == k && lp.GetValue() == v {
						found = true
					}
				}
				if !found {
					continue metric
				}
			}
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				return m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				return m.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				return float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	t.Fatalf("metric %s%v not found", name, labels)
	return 0
}

func TestRecordTick(t *testing.T) {
	r := NewRegistry()
	r.RecordTick(2*time.Millisecond, 0.5, false)
	r.RecordTick(2*time.Millisecond, 0.0005, true)

	if got := gatherValue(t, r, "topo_layout_ticks_total", nil); got != 2 {
		t.Errorf("ticks = %f", got)
	}
	if got := gatherValue(t, r, "topo_layout_alpha", nil); got != 0.0005 {
		t.Errorf("alpha = %f", got)
	}
	if got := gatherValue(t, r, "topo_layout_settled", nil); got != 1 {
		t.Errorf("settled = %f", got)
	}
}

func TestRecordReheatByCause(t *testing.T) {
	r := NewRegistry()
	r.RecordReheat("drag")
	r.RecordReheat("drag")
	r.RecordReheat("snapshot")

	if got := gatherValue(t, r, "topo_layout_reheats_total", map[string]string{"cause": "drag"}); got != 2 {
		t.Errorf("drag reheats = %f", got)
	}
	if got := gatherValue(t, r, "topo_layout_reheats_total", map[string]string{"cause": "snapshot"}); got != 1 {
		t.Errorf("snapshot reheats = %f", got)
	}
}

func TestRecordFrameAndGraphSize(t *testing.T) {
	r := NewRegistry()
	r.SetGraphSize(12, 18)
	r.RecordFrame(5*time.Millisecond, 12, 18)

	if got := gatherValue(t, r, "topo_layout_nodes_total", nil); got != 12 {
		t.Errorf("nodes gauge = %f", got)
	}
	if got := gatherValue(t, r, "topo_render_frames_total", nil); got != 1 {
		t.Errorf("frames = %f", got)
	}
	if got := gatherValue(t, r, "topo_render_scene_edges", nil); got != 18 {
		t.Errorf("scene edges = %f", got)
	}
}

func TestRecordSnapshotStatuses(t *testing.T) {
	r := NewRegistry()
	r.RecordSnapshot("file", "ok", 2048)
	r.RecordSnapshot("file", "error", 0)
	r.RecordDecodeError()
	r.RecordDroppedEdges(3)
	r.RecordDroppedEdges(0)

	if got := gatherValue(t, r, "topo_feed_snapshots_total", map[string]string{"source": "file", "status": "ok"}); got != 1 {
		t.Errorf("ok snapshots = %f", got)
	}
	if got := gatherValue(t, r, "topo_feed_decode_errors_total", nil); got != 1 {
		t.Errorf("decode errors = %f", got)
	}
	if got := gatherValue(t, r, "topo_feed_dropped_edges_total", nil); got != 3 {
		t.Errorf("dropped edges = %f", got)
	}
	// Error snapshots must not advance the last-accepted timestamp.
	if got := gatherValue(t, r, "topo_feed_snapshot_bytes", nil); got != 1 {
		t.Errorf("snapshot size samples = %f", got)
	}
}

func TestDefaultRegistrySingleton(t *testing.T) {
	if DefaultRegistry() != DefaultRegistry() {
		t.Error("DefaultRegistry returned distinct instances")
	}
}
