package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/interaction"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/layout"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/logging"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/topology"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/viewport"
)

// keyboardPanStep is the pan distance per arrow key press, in cells.
const keyboardPanStep = 4

// keyboardZoomFactor is the zoom step for +/-.
const keyboardZoomFactor = 1.2

// wheelDelta is the synthetic wheel amount for one scroll notch.
const wheelDelta = 120

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.sim != nil {
			w, h := m.canvasSize()
			m.sim.SetExtent(float64(w), float64(h))
		}
		return m, m.wake()

	case spinner.TickMsg:
		if m.graph != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case snapshotMsg:
		m.applySnapshot(msg)
		return m, tea.Batch(waitSnapshot(m.source), m.wake())

	case feedClosedMsg:
		m.log.Info("snapshot feed closed")
		return m, nil

	case frameMsg:
		return m.onFrame(msg)

	case tea.MouseMsg:
		return m.onMouse(msg)

	case tea.KeyMsg:
		return m.onKey(msg)
	}

	return m, nil
}

func (m *Model) onFrame(msg frameMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.generation || m.quitting {
		return *m, nil
	}
	if m.sim == nil {
		m.idle = true
		return *m, nil
	}

	if !m.sim.Settled() {
		start := time.Now()
		m.sim.Step()
		m.metrics.RecordTick(time.Since(start), m.sim.Alpha(), m.sim.Settled())
	}
	m.view.Update(msg.at)

	if m.sim.Settled() && !m.view.Animating() {
		m.idle = true
		return *m, nil
	}
	return *m, frameCmd(m.generation)
}

func (m *Model) onMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.inter == nil {
		return *m, nil
	}
	x, y := float64(msg.X), float64(msg.Y)
	m.pointerX, m.pointerY = x, y

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.inter.Wheel(-wheelDelta, x, y)
		m.metrics.RecordInteraction("wheel")
		return *m, m.wake()
	case tea.MouseButtonWheelDown:
		m.inter.Wheel(wheelDelta, x, y)
		m.metrics.RecordInteraction("wheel")
		return *m, m.wake()
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.inter.PointerDown(x, y)
			m.metrics.RecordInteraction("down")
		}
	case tea.MouseActionMotion:
		wasDragging := m.inter.Dragging()
		m.inter.PointerMove(x, y)
		if !wasDragging && m.inter.Dragging() {
			m.metrics.RecordDrag()
		}
		m.metrics.RecordInteraction("move")
	case tea.MouseActionRelease:
		if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone {
			m.inter.PointerUp(x, y)
			m.metrics.RecordInteraction("up")
		}
	}
	return *m, m.wake()
}

func (m *Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.inter != nil {
			m.inter.Close()
		}
		m.source.Close()
		return *m, tea.Quit

	case key.Matches(msg, m.keys.Reset):
		if m.view != nil {
			m.view.Reset(time.Now())
		}
	case key.Matches(msg, m.keys.Fit):
		m.fit()
	case key.Matches(msg, m.keys.ZoomIn):
		m.zoomCenter(keyboardZoomFactor)
	case key.Matches(msg, m.keys.ZoomOut):
		m.zoomCenter(1 / keyboardZoomFactor)
	case key.Matches(msg, m.keys.Up):
		m.pan(0, keyboardPanStep)
	case key.Matches(msg, m.keys.Down):
		m.pan(0, -keyboardPanStep)
	case key.Matches(msg, m.keys.Left):
		m.pan(keyboardPanStep, 0)
	case key.Matches(msg, m.keys.Right):
		m.pan(-keyboardPanStep, 0)
	case key.Matches(msg, m.keys.Legend):
		m.showLegend = !m.showLegend
	case key.Matches(msg, m.keys.Stats):
		m.showStats = !m.showStats
	case key.Matches(msg, m.keys.ClearSel):
		m.sel.node = nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return *m, m.wake()
}

// wake restarts the frame loop after input or a snapshot. Bumping the
// generation invalidates any tick already in flight from the old loop.
func (m *Model) wake() tea.Cmd {
	if !m.idle {
		return nil
	}
	m.idle = false
	m.generation++
	return frameCmd(m.generation)
}

func (m *Model) canvasSize() (int, int) {
	w, h := m.width, m.height-statusRows
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 22
	}
	return w, h
}

func (m *Model) applySnapshot(u snapshotMsg) {
	var previous map[string]layout.Position
	if m.sim != nil {
		previous = m.sim.Positions()
		m.metrics.RecordReheat("snapshot")
	}

	w, h := m.canvasSize()
	m.graph = u.Graph
	m.sim = layout.New(m.graph, float64(w), float64(h), m.cfg.LayoutOptions())

	// Nodes that survive the snapshot keep their place; only newcomers
	// start on the placement spiral.
	for id, pos := range previous {
		if m.graph.Has(id) {
			m.sim.Pin(id, pos.X, pos.Y)
			m.sim.Unpin(id)
		}
	}

	if m.view == nil {
		m.view = viewport.NewController(
			m.cfg.Viewport.MinScale,
			m.cfg.Viewport.MaxScale,
			m.cfg.Viewport.ResetDuration.Std(),
		)
	}

	if m.inter != nil {
		m.inter.Close()
	}
	sel := m.sel
	mreg := m.metrics
	m.inter = interaction.NewController(m.graph, m.sim, m.view, interaction.Options{
		DragThreshold: m.cfg.Interaction.DragThreshold,
		ReheatAlpha:   m.cfg.Interaction.ReheatAlpha,
	}, interaction.Callbacks{
		NodeSelected: func(n topology.Node) {
			sel.node = &n
			mreg.RecordClick()
		},
	})
	m.metrics.SetGraphSize(len(m.graph.Nodes), len(m.graph.Edges))

	// Drop a selection whose node left the topology.
	if m.sel.node != nil {
		if n, ok := m.graph.Node(m.sel.node.ID); ok {
			m.sel.node = &n
		} else {
			m.sel.node = nil
		}
	}

	m.log.Info("snapshot applied",
		logging.Source(u.Origin),
		logging.NodeCount(len(m.graph.Nodes)),
		logging.EdgeCount(len(m.graph.Edges)))
}

func (m *Model) fit() {
	if m.sim == nil || m.view == nil {
		return
	}
	minX, minY, maxX, maxY, ok := m.sim.Bounds()
	if !ok {
		return
	}
	w, h := m.canvasSize()
	m.view.Fit(minX, minY, maxX, maxY, float64(w), float64(h), 2)
}

func (m *Model) zoomCenter(factor float64) {
	if m.view == nil {
		return
	}
	w, h := m.canvasSize()
	m.view.ZoomAt(factor, float64(w)/2, float64(h)/2)
}

func (m *Model) pan(dx, dy float64) {
	if m.view == nil {
		return
	}
	m.view.Pan(dx, dy)
}
