package render

import (
	"fmt"
	"strings"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/topology"
)

// SVGSurface renders scenes to standalone SVG documents for headless
// export. It consumes the same Scene as the terminal surface, which is
// what keeps the render layer honest about being surface-agnostic.
type SVGSurface struct {
	palette Palette
}

// NewSVGSurface creates the SVG drawing surface.
func NewSVGSurface(palette Palette) *SVGSurface {
	return &SVGSurface{palette: palette}
}

// Render produces a complete SVG document for the scene.
func (s *SVGSurface) Render(scene *Scene) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		scene.Width, scene.Height, scene.Width, scene.Height)
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", scene.Background)

	for i := range scene.Edges {
		s.renderEdge(&b, &scene.Edges[i])
	}
	for i := range scene.Nodes {
		s.renderNode(&b, &scene.Nodes[i])
	}
	for i := range scene.Nodes {
		s.renderLabel(&b, &scene.Nodes[i])
	}

	b.WriteString("</svg>\n")
	return []byte(b.String())
}

func (s *SVGSurface) renderEdge(b *strings.Builder, e *EdgeDraw) {
	dash := ""
	if e.Dashed {
		dash = ` stroke-dasharray="6 4"`
	}
	fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1.5" stroke-opacity="%.2f"%s/>`+"\n",
		e.X1, e.Y1, e.X2, e.Y2, e.Color, e.Opacity, dash)
	if e.Label != "" {
		fmt.Fprintf(b, `<text x="%.1f" y="%.1f" fill="%s" fill-opacity="%.2f" font-size="10" text-anchor="middle">%s</text>`+"\n",
			(e.X1+e.X2)/2, (e.Y1+e.Y2)/2, s.palette.Label, e.LabelOpacity, escapeXML(e.Label))
	}
}

func (s *SVGSurface) renderNode(b *strings.Builder, n *NodeDraw) {
	fill := fmt.Sprintf(`fill="%s" fill-opacity="%.2f" stroke="%s" stroke-opacity="%.2f" stroke-width="2"`,
		n.Color, FillOpacity*n.Opacity, n.Color, n.Opacity)

	switch n.Shape {
	case topology.ShapeDiamond:
		fmt.Fprintf(b, `<polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f %.1f,%.1f" %s/>`+"\n",
			n.X, n.Y-n.Radius,
			n.X+n.Radius, n.Y,
			n.X, n.Y+n.Radius,
			n.X-n.Radius, n.Y,
			fill)
	case topology.ShapeSquare:
		side := 0.8 * n.Radius
		fmt.Fprintf(b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="2" %s/>`+"\n",
			n.X-side/2, n.Y-side/2, side, side, fill)
	default:
		fmt.Fprintf(b, `<circle cx="%.1f" cy="%.1f" r="%.1f" %s/>`+"\n", n.X, n.Y, n.Radius, fill)
	}
}

func (s *SVGSurface) renderLabel(b *strings.Builder, n *NodeDraw) {
	if n.Label == "" {
		return
	}
	fmt.Fprintf(b, `<text x="%.1f" y="%.1f" fill="%s" fill-opacity="%.2f" font-size="11">%s</text>`+"\n",
		n.X+n.Radius+4, n.Y+4, s.palette.Label, n.Opacity, escapeXML(n.Label))
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
