package render

import (
	"math"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/topology"
)

// CellSurface draws scenes onto a rune-cell canvas for terminal hosts.
type CellSurface struct {
	palette Palette
}

// NewCellSurface creates the terminal drawing surface.
func NewCellSurface(palette Palette) *CellSurface {
	return &CellSurface{palette: palette}
}

// Draw renders the scene: edges under nodes under labels. The canvas
// clips everything, so off-screen geometry costs nothing but the loop.
func (s *CellSurface) Draw(scene *Scene, canvas *Canvas) {
	for i := range scene.Edges {
		s.drawEdge(canvas, &scene.Edges[i], scene.Background)
	}
	for i := range scene.Nodes {
		s.drawNode(canvas, &scene.Nodes[i], scene.Background)
	}
	for i := range scene.Nodes {
		s.drawLabel(canvas, &scene.Nodes[i], scene.Background)
	}
}

func (s *CellSurface) drawEdge(canvas *Canvas, e *EdgeDraw, background string) {
	color := Blend(e.Color, background, e.Opacity)
	x1, y1 := int(math.Round(e.X1)), int(math.Round(e.Y1))
	x2, y2 := int(math.Round(e.X2)), int(math.Round(e.Y2))

	step := 0
	plotLine(x1, y1, x2, y2, func(x, y int) {
		// Dashed edges draw two cells on, two off.
		if !e.Dashed || step%4 < 2 {
			canvas.Set(x, y, '·', color)
		}
		step++
	})

	if e.Label != "" {
		labelColor := Blend(s.palette.Label, background, e.LabelOpacity)
		mx := (x1 + x2) / 2
		my := (y1 + y2) / 2
		canvas.WriteString(mx-len([]rune(e.Label))/2, my, e.Label, labelColor)
	}
}

func (s *CellSurface) drawNode(canvas *Canvas, n *NodeDraw, background string) {
	stroke := Blend(n.Color, background, n.Opacity)
	fill := Blend(n.Color, background, n.Opacity*FillOpacity)
	cx, cy := int(math.Round(n.X)), int(math.Round(n.Y))

	// Below two cells of radius the silhouette degenerates to a glyph.
	if n.Radius < 2 {
		canvas.Set(cx, cy, shapeGlyph(n.Shape), stroke)
		return
	}

	r := int(math.Round(n.Radius))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if !insideShape(n.Shape, float64(dx), float64(dy), n.Radius) {
				continue
			}
			if onShapeBoundary(n.Shape, dx, dy, n.Radius) {
				canvas.Set(cx+dx, cy+dy, '█', stroke)
			} else {
				canvas.Set(cx+dx, cy+dy, '█', fill)
			}
		}
	}
}

func (s *CellSurface) drawLabel(canvas *Canvas, n *NodeDraw, background string) {
	if n.Label == "" {
		return
	}
	color := Blend(s.palette.Label, background, n.Opacity)
	offset := int(math.Round(n.Radius)) + 2
	if n.Radius < 2 {
		offset = 2
	}
	canvas.WriteString(int(math.Round(n.X))+offset, int(math.Round(n.Y)), n.Label, color)
}

func shapeGlyph(shape topology.Shape) rune {
	switch shape {
	case topology.ShapeDiamond:
		return '◆'
	case topology.ShapeSquare:
		return '■'
	default:
		return '●'
	}
}

// insideShape tests cell offsets against the node silhouette, matching
// the hit-test geometry: diamond by L1 distance, square by the 0.8×size
// side, circle by radius.
func insideShape(shape topology.Shape, dx, dy, size float64) bool {
	switch shape {
	case topology.ShapeDiamond:
		return math.Abs(dx)+math.Abs(dy) <= size
	case topology.ShapeSquare:
		half := 0.4 * size
		return math.Abs(dx) <= half && math.Abs(dy) <= half
	default:
		return dx*dx+dy*dy <= size*size
	}
}

// onShapeBoundary marks cells whose neighbor falls outside the shape,
// approximating the full-strength outline around the quarter-strength
// fill.
func onShapeBoundary(shape topology.Shape, dx, dy int, size float64) bool {
	for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		if !insideShape(shape, float64(dx+d[0]), float64(dy+d[1]), size) {
			return true
		}
	}
	return false
}

// plotLine walks the Bresenham line between two cells.
func plotLine(x1, y1, x2, y2 int, plot func(x, y int)) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	x, y := x1, y1
	for {
		plot(x, y)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
