package render

import (
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/layout"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/topology"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/viewport"
)

// Scene is one frame's worth of drawing, already projected to screen
// space with highlight opacities resolved. Surfaces consume it without
// knowing anything about graphs, simulations, or transforms.
type Scene struct {
	Width, Height float64
	Background    string
	Edges         []EdgeDraw
	Nodes         []NodeDraw
}

// EdgeDraw is one projected edge line.
type EdgeDraw struct {
	X1, Y1, X2, Y2 float64
	Color          string
	Dashed         bool
	Opacity        float64
	Label          string
	LabelOpacity   float64
}

// NodeDraw is one projected node with its silhouette and label.
type NodeDraw struct {
	ID      string
	X, Y    float64
	Radius  float64
	Shape   topology.Shape
	Color   string
	Opacity float64
	Label   string
}

// Builder turns a graph plus simulation positions into Scenes.
type Builder struct {
	palette Palette
	opacity Opacity
}

// NewBuilder creates a scene builder with the given styling. Zero-value
// palette or opacity fields are not defaulted here; pass the Default*
// helpers unless the configuration overrides them.
func NewBuilder(palette Palette, opacity Opacity) *Builder {
	return &Builder{palette: palette, opacity: opacity}
}

// Build projects the graph through the viewport transform and resolves
// the hover highlight. Edges come first so surfaces draw them under the
// nodes, then nodes, then labels at the surface's discretion.
//
// Highlighting is a full-graph pass on purpose: topology graphs are
// small enough that diffing opacities would cost more than it saves.
func (b *Builder) Build(g *topology.Graph, positions map[string]layout.Position, tr viewport.Transform, hoverID string, width, height float64) *Scene {
	scene := &Scene{
		Width:      width,
		Height:     height,
		Background: b.palette.Background,
		Edges:      make([]EdgeDraw, 0, len(g.Edges)),
		Nodes:      make([]NodeDraw, 0, len(g.Nodes)),
	}

	var highlight map[string]bool
	if hoverID != "" {
		highlight = g.HighlightSet(hoverID)
	}

	for i := range g.Edges {
		e := &g.Edges[i]
		src, sok := positions[e.Source]
		dst, dok := positions[e.Target]
		if !sok || !dok {
			continue
		}
		x1, y1 := tr.ToScreen(src.X, src.Y)
		x2, y2 := tr.ToScreen(dst.X, dst.Y)

		edgeOp := b.opacity.Edge
		labelOp := b.opacity.EdgeLabel
		if highlight != nil && !e.Touches(hoverID) {
			edgeOp = b.opacity.DimEdge
			labelOp = b.opacity.DimEdge
		}
		scene.Edges = append(scene.Edges, EdgeDraw{
			X1: x1, Y1: y1, X2: x2, Y2: y2,
			Color:        b.edgeColor(e.Type),
			Dashed:       e.Type == topology.EdgeSubnet,
			Opacity:      edgeOp,
			Label:        e.Label,
			LabelOpacity: labelOp,
		})
	}

	for i := range g.Nodes {
		n := &g.Nodes[i]
		pos, ok := positions[n.ID]
		if !ok {
			continue
		}
		x, y := tr.ToScreen(pos.X, pos.Y)

		nodeOp := b.opacity.Node
		if highlight != nil && !highlight[n.ID] {
			nodeOp = b.opacity.DimNode
		}
		scene.Nodes = append(scene.Nodes, NodeDraw{
			ID:      n.ID,
			X:       x,
			Y:       y,
			Radius:  n.Radius() * tr.Scale,
			Shape:   n.Shape(),
			Color:   n.Color,
			Opacity: nodeOp,
			Label:   n.Label,
		})
	}

	return scene
}

func (b *Builder) edgeColor(t topology.EdgeType) string {
	switch t {
	case topology.EdgeGateway:
		return b.palette.EdgeGateway
	case topology.EdgeSwitch:
		return b.palette.EdgeSwitch
	default:
		return b.palette.EdgeDefault
	}
}
