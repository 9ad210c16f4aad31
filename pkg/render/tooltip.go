package render

import (
	"fmt"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/topology"
)

// TooltipOffset is the gap between the pointer and the tooltip's
// top-left corner, in cells.
const (
	TooltipOffsetX = 2
	TooltipOffsetY = 1
)

// TooltipLines formats the hovered node's identity fields. Empty
// optional fields render as "-" so the panel keeps a stable shape.
func TooltipLines(n topology.Node) []string {
	return []string{
		n.Label,
		fmt.Sprintf("Type: %s", n.Type),
		fmt.Sprintf("IP: %s", orDash(n.IP)),
		fmt.Sprintf("Hostname: %s", orDash(n.Hostname)),
		fmt.Sprintf("Vendor: %s", orDash(n.Vendor)),
		fmt.Sprintf("Category: %s", orDash(n.Category)),
		fmt.Sprintf("Confidence: %.0f%%", n.Confidence*100),
		fmt.Sprintf("Ports: %s", n.PortList()),
	}
}

// DrawTooltip paints the floating panel near the pointer, clamped so it
// never leaves the canvas. The tooltip lives in screen space: it does
// not move with pan or zoom, only with the pointer.
func DrawTooltip(canvas *Canvas, n topology.Node, pointerX, pointerY int, palette Palette) {
	lines := TooltipLines(n)
	innerWidth := 0
	for _, l := range lines {
		if w := len([]rune(l)); w > innerWidth {
			innerWidth = w
		}
	}
	innerWidth += 2 // one cell of padding each side
	innerHeight := len(lines)

	x := pointerX + TooltipOffsetX
	y := pointerY + TooltipOffsetY
	if x+innerWidth+2 > canvas.Width() {
		x = canvas.Width() - innerWidth - 2
	}
	if y+innerHeight+2 > canvas.Height() {
		y = canvas.Height() - innerHeight - 2
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	canvas.Box(x, y, innerWidth, innerHeight, palette.Label)
	for i, l := range lines {
		canvas.WriteString(x+2, y+1+i, l, palette.Label)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
