package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/render"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.graph == nil {
		return waitingStyle.Render(m.spinner.View() + " waiting for first topology snapshot...")
	}

	start := time.Now()
	w, h := m.canvasSize()
	canvas := render.NewCanvas(w, h, m.cfg.Render.Palette.Background)

	scene := m.builder.Build(
		m.graph,
		m.sim.Positions(),
		m.view.Transform(),
		m.inter.HoverID(),
		float64(w), float64(h),
	)
	m.surface.Draw(scene, canvas)

	if m.showLegend {
		render.DrawLegend(canvas, 1, 1, m.cfg.Render.Palette)
	}
	if m.sel.node != nil {
		m.drawSelection(canvas)
	}
	if id := m.inter.HoverID(); id != "" && !m.inter.Dragging() {
		if n, ok := m.graph.Node(id); ok {
			render.DrawTooltip(canvas,
				n,
				int(math.Round(m.pointerX)),
				int(math.Round(m.pointerY)),
				m.cfg.Render.Palette)
		}
	}

	m.metrics.RecordFrame(time.Since(start), len(scene.Nodes), len(scene.Edges))

	var b strings.Builder
	b.WriteString(canvas.String())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// drawSelection pins the detail panel for the clicked node to the
// top-right corner, where it stays until cleared.
func (m Model) drawSelection(canvas *render.Canvas) {
	lines := render.TooltipLines(*m.sel.node)
	width := 0
	for _, l := range lines {
		if len([]rune(l)) > width {
			width = len([]rune(l))
		}
	}
	x := canvas.Width() - width - 6
	if x < 0 {
		x = 0
	}
	canvas.Box(x, 0, width+2, len(lines), m.cfg.Render.Palette.Label)
	for i, l := range lines {
		canvas.WriteString(x+2, 1+i, l, m.cfg.Render.Palette.Label)
	}
}

func (m Model) statusLine() string {
	parts := make([]string, 0, 4)

	if m.sim.Settled() && !m.view.Animating() {
		parts = append(parts, statusBarStyle.Render("settled"))
	} else {
		parts = append(parts, modeStyle.Render("settling"))
	}
	parts = append(parts, statusBarStyle.Render(fmt.Sprintf("zoom %.1fx", m.view.Transform().Scale)))

	if m.showStats {
		parts = append(parts, render.StatsStrip(m.graph.Stats()))
	}
	if id := m.inter.HoverID(); id != "" {
		if n, ok := m.graph.Node(id); ok {
			parts = append(parts, hoverStyle.Render(n.Label))
		}
	}
	return strings.Join(parts, "  ")
}
