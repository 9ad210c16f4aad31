package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Cell is one terminal cell: a rune plus its foreground color.
type Cell struct {
	Rune rune
	FG   string
}

// Canvas is a bounded grid of cells. All writes are clipped to the
// grid, so callers can draw through any transform without bounds
// checks of their own.
type Canvas struct {
	width, height int
	background    string
	cells         []Cell
}

// NewCanvas creates a cleared canvas of the given size in cells.
func NewCanvas(width, height int, background string) *Canvas {
	c := &Canvas{
		width:      width,
		height:     height,
		background: background,
		cells:      make([]Cell, width*height),
	}
	c.Clear()
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// Clear resets every cell to blank.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', FG: c.background}
	}
}

// Set writes one cell. Writes outside the canvas are dropped.
func (c *Canvas) Set(x, y int, r rune, fg string) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = Cell{Rune: r, FG: fg}
}

// Get reads one cell; out-of-bounds reads return a blank cell.
func (c *Canvas) Get(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{Rune: ' ', FG: c.background}
	}
	return c.cells[y*c.width+x]
}

// WriteString writes a horizontal run of text starting at (x, y),
// clipped at the canvas edge.
func (c *Canvas) WriteString(x, y int, s string, fg string) {
	for i, r := range []rune(s) {
		c.Set(x+i, y, r, fg)
	}
}

// Box draws a rounded border box with the given interior size, clearing
// the interior. Used for the floating tooltip panel.
func (c *Canvas) Box(x, y, innerWidth, innerHeight int, fg string) {
	c.Set(x, y, '╭', fg)
	c.Set(x+innerWidth+1, y, '╮', fg)
	c.Set(x, y+innerHeight+1, '╰', fg)
	c.Set(x+innerWidth+1, y+innerHeight+1, '╯', fg)
	for i := 1; i <= innerWidth; i++ {
		c.Set(x+i, y, '─', fg)
		c.Set(x+i, y+innerHeight+1, '─', fg)
	}
	for j := 1; j <= innerHeight; j++ {
		c.Set(x, y+j, '│', fg)
		c.Set(x+innerWidth+1, y+j, '│', fg)
		for i := 1; i <= innerWidth; i++ {
			c.Set(x+i, y+j, ' ', c.background)
		}
	}
}

// String renders the canvas as styled terminal output, one line per
// row. Runs of cells sharing a color collapse into one styled segment
// to keep the escape-code volume down.
func (c *Canvas) String() string {
	var out strings.Builder
	bgStyle := lipgloss.NewStyle().Background(lipgloss.Color(c.background))
	for y := 0; y < c.height; y++ {
		var run strings.Builder
		runFG := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			out.WriteString(bgStyle.Foreground(lipgloss.Color(runFG)).Render(run.String()))
			run.Reset()
		}
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			if cell.FG != runFG {
				flush()
				runFG = cell.FG
			}
			run.WriteRune(cell.Rune)
		}
		flush()
		if y < c.height-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
