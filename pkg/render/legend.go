package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/topology"
)

var (
	legendBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d4852")).
			Padding(0, 1)

	legendTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#c8d0da"))

	statsLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7f8c8d"))

	statsValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#c8d0da"))
)

// Legend renders the shape/color key for entity types. Stateless: the
// mapping is fixed by the shape function, so there is nothing to feed
// it but a title.
func Legend() string {
	rows := []struct {
		glyph rune
		color string
		name  string
	}{
		{shapeGlyph(topology.NodeGateway.Shape()), "#e67e22", "gateway"},
		{shapeGlyph(topology.NodeSwitch.Shape()), "#3498db", "switch"},
		{shapeGlyph(topology.NodeSubnet.Shape()), "#9b59b6", "subnet"},
		{shapeGlyph(topology.NodeDevice.Shape()), "#2ecc71", "device"},
	}

	var b strings.Builder
	b.WriteString(legendTitleStyle.Render("Legend"))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(r.color)).Render(string(r.glyph)))
		b.WriteString(" ")
		b.WriteString(r.name)
	}
	return legendBoxStyle.Render(b.String())
}

// DrawLegend paints the legend into canvas cells at (x, y), for hosts
// that compose frames from cells instead of styled strings.
func DrawLegend(canvas *Canvas, x, y int, palette Palette) {
	rows := []struct {
		glyph rune
		color string
		name  string
	}{
		{shapeGlyph(topology.NodeGateway.Shape()), "#e67e22", "gateway"},
		{shapeGlyph(topology.NodeSwitch.Shape()), "#3498db", "switch"},
		{shapeGlyph(topology.NodeSubnet.Shape()), "#9b59b6", "subnet"},
		{shapeGlyph(topology.NodeDevice.Shape()), "#2ecc71", "device"},
	}

	width := 0
	for _, r := range rows {
		if w := len(r.name) + 2; w > width {
			width = w
		}
	}
	canvas.Box(x, y, width+2, len(rows), palette.Label)
	for i, r := range rows {
		canvas.Set(x+2, y+1+i, r.glyph, r.color)
		canvas.WriteString(x+4, y+1+i, r.name, palette.Label)
	}
}

// StatsStrip renders the totals and per-type counts for the current
// graph on a single line.
func StatsStrip(s topology.Stats) string {
	parts := []string{
		fmt.Sprintf("%s %s", statsLabelStyle.Render("nodes"), statsValueStyle.Render(fmt.Sprintf("%d", s.Nodes))),
		fmt.Sprintf("%s %s", statsLabelStyle.Render("edges"), statsValueStyle.Render(fmt.Sprintf("%d", s.Edges))),
	}
	for _, t := range []topology.NodeType{topology.NodeGateway, topology.NodeSwitch, topology.NodeSubnet, topology.NodeDevice} {
		if n := s.NodesByType[t]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %s", statsLabelStyle.Render(string(t)), statsValueStyle.Render(fmt.Sprintf("%d", n))))
		}
	}
	return strings.Join(parts, "  ")
}
