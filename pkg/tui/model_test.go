package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/config"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/metrics"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/snapshot"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/topology"
)

// stubSource satisfies snapshot.Source without goroutines.
type stubSource struct {
	ch chan snapshot.Update
}

func newStubSource() *stubSource {
	return &stubSource{ch: make(chan snapshot.Update, 4)}
}

func (s *stubSource) Updates() <-chan snapshot.Update { return s.ch }
func (s *stubSource) Close() error                    { return nil }

func snapshotOf(t *testing.T, nodes []topology.Node, edges []topology.Edge) snapshotMsg {
	t.Helper()
	g, report := topology.NewGraph(nodes, edges)
	return snapshotMsg(snapshot.Update{Graph: g, Report: snapshot.DecodeReport{Sanitize: report}, Origin: "test"})
}

func applyMsg(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func testModel() Model {
	return New(config.Default(), newStubSource(), metrics.NewRegistry())
}

func TestViewBeforeFirstSnapshot(t *testing.T) {
	m := testModel()
	if !strings.Contains(m.View(), "waiting for first topology snapshot") {
		t.Error("missing waiting state")
	}
}

func TestSnapshotBuildsSimulation(t *testing.T) {
	m := testModel()
	m = applyMsg(t, m, snapshotOf(t,
		[]topology.Node{
			{ID: "gw", Label: "Gateway", Type: topology.NodeGateway, Size: 10},
			{ID: "dev", Label: "Printer", Type: topology.NodeDevice, Size: 8},
		},
		[]topology.Edge{{Source: "gw", Target: "dev", Type: topology.EdgeSwitch}},
	))

	if m.sim == nil || m.view == nil || m.inter == nil {
		t.Fatal("snapshot did not wire the engine")
	}
	out := m.View()
	if !strings.Contains(out, "settling") {
		t.Error("fresh simulation not reported as settling")
	}
	if !strings.Contains(out, "nodes") {
		t.Error("stats strip missing")
	}
}

func TestFrameTicksUntilSettled(t *testing.T) {
	m := testModel()
	m = applyMsg(t, m, snapshotOf(t,
		[]topology.Node{{ID: "solo", Label: "Solo", Type: topology.NodeDevice, Size: 8}},
		nil,
	))

	// A single unlinked node settles immediately, so the first frame
	// parks the loop.
	m = applyMsg(t, m, frameMsg{generation: m.generation, at: time.Now()})
	if !m.idle {
		t.Error("loop still running after settle")
	}
	if !strings.Contains(m.View(), "settled") {
		t.Error("status does not report settled")
	}
}

func TestStaleFrameDiscarded(t *testing.T) {
	m := testModel()
	m = applyMsg(t, m, snapshotOf(t,
		[]topology.Node{
			{ID: "a", Type: topology.NodeDevice, Size: 8},
			{ID: "b", Type: topology.NodeDevice, Size: 8},
		},
		[]topology.Edge{{Source: "a", Target: "b", Type: topology.EdgeOther}},
	))

	before := m.sim.Ticks()
	m = applyMsg(t, m, frameMsg{generation: m.generation - 1, at: time.Now()})
	if m.sim.Ticks() != before {
		t.Error("stale frame stepped the simulation")
	}
}

func TestClickSelectsNode(t *testing.T) {
	m := testModel()
	m = applyMsg(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	// One unlinked node sits exactly at the canvas center and never
	// moves.
	m = applyMsg(t, m, snapshotOf(t,
		[]topology.Node{{ID: "solo", Label: "Solo", Type: topology.NodeDevice, Size: 8}},
		nil,
	))

	w, h := m.canvasSize()
	cx, cy := w/2, h/2
	m = applyMsg(t, m, tea.MouseMsg{X: cx, Y: cy, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = applyMsg(t, m, tea.MouseMsg{X: cx, Y: cy, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if m.sel.node == nil || m.sel.node.ID != "solo" {
		t.Fatalf("selection = %+v", m.sel.node)
	}
	if !strings.Contains(m.View(), "Solo") {
		t.Error("detail panel missing from view")
	}

	m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.sel.node != nil {
		t.Error("escape did not clear selection")
	}
}

func TestSnapshotPreservesSurvivingPositions(t *testing.T) {
	m := testModel()
	m = applyMsg(t, m, snapshotOf(t,
		[]topology.Node{{ID: "keep", Type: topology.NodeDevice, Size: 8}},
		nil,
	))
	before, _ := m.sim.Position("keep")

	m = applyMsg(t, m, snapshotOf(t,
		[]topology.Node{
			{ID: "keep", Type: topology.NodeDevice, Size: 8},
			{ID: "new", Type: topology.NodeDevice, Size: 8},
		},
		[]topology.Edge{{Source: "keep", Target: "new", Type: topology.EdgeOther}},
	))
	after, ok := m.sim.Position("keep")
	if !ok {
		t.Fatal("kept node missing")
	}
	if after != before {
		t.Errorf("kept node moved from %+v to %+v on snapshot", before, after)
	}
	if m.sim.Pinned("keep") {
		t.Error("position seeding left node pinned")
	}
}

func TestZoomAndResetKeys(t *testing.T) {
	m := testModel()
	m = applyMsg(t, m, snapshotOf(t,
		[]topology.Node{{ID: "solo", Type: topology.NodeDevice, Size: 8}},
		nil,
	))

	m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	if m.view.Transform().Scale <= 1 {
		t.Errorf("zoom in left scale at %f", m.view.Transform().Scale)
	}

	m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if !m.view.Animating() {
		t.Error("reset did not start the ease animation")
	}
	m.view.Update(time.Now().Add(time.Second))
	tr := m.view.Transform()
	if tr.Scale != 1 || tr.TX != 0 || tr.TY != 0 {
		t.Errorf("reset landed on %+v", tr)
	}
}

func TestQuitClosesInteraction(t *testing.T) {
	m := testModel()
	m = applyMsg(t, m, snapshotOf(t,
		[]topology.Node{{ID: "solo", Type: topology.NodeDevice, Size: 8}},
		nil,
	))
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(Model)
	if !m.quitting {
		t.Error("quit flag not set")
	}
	if cmd == nil {
		t.Error("quit returned no command")
	}
	if m.View() != "" {
		t.Error("view not blank while quitting")
	}
}

func TestLegendToggle(t *testing.T) {
	m := testModel()
	m = applyMsg(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = applyMsg(t, m, snapshotOf(t,
		[]topology.Node{{ID: "solo", Type: topology.NodeDevice, Size: 8}},
		nil,
	))

	plain := m.View()
	m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'L'}})
	withLegend := m.View()
	if plain == withLegend {
		t.Error("legend toggle changed nothing")
	}
	if !strings.Contains(withLegend, "gateway") {
		t.Error("legend content missing")
	}
}
