package interaction

import (
	"math"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/layout"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/logging"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/topology"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/viewport"
)

// DefaultDragThreshold is the cumulative screen displacement, in pixels,
// below which a press/release pair counts as a click.
const DefaultDragThreshold = 3.0

// Options tunes the interaction controller.
type Options struct {
	// DragThreshold separates clicks from drags, in screen pixels.
	DragThreshold float64
	// ReheatAlpha is the simulation target while a drag is active.
	ReheatAlpha float64
}

// DefaultOptions returns the shipped interaction tuning.
func DefaultOptions() Options {
	return Options{
		DragThreshold: DefaultDragThreshold,
		ReheatAlpha:   layout.DragAlpha,
	}
}

// Callbacks are the controller's outputs. Nil callbacks are skipped.
// NodeSelected fires once per completed click, never during a drag.
type Callbacks struct {
	NodeSelected func(topology.Node)
	HoverEnter   func(node topology.Node, screenX, screenY float64)
	HoverMove    func(node topology.Node, screenX, screenY float64)
	HoverLeave   func(node topology.Node)
}

// Controller classifies raw pointer events into drags, hovers, clicks,
// and pan/zoom gestures. It is surface-agnostic: the host feeds it
// screen coordinates from whatever event system it has, so the whole
// state machine is testable with synthetic sequences.
type Controller struct {
	graph *topology.Graph
	sim   *layout.Simulation
	view  *viewport.Controller
	opts  Options
	cb    Callbacks
	log   logging.Logger

	pressed bool
	moved   bool
	panning bool
	dragID  string
	hoverID string

	pressX, pressY float64
	lastX, lastY   float64

	closed bool
}

// NewController wires the controller to one graph snapshot and its
// simulation and viewport. A fresh graph means a fresh controller.
func NewController(g *topology.Graph, sim *layout.Simulation, view *viewport.Controller, opts Options, cb Callbacks) *Controller {
	if opts.DragThreshold <= 0 {
		opts.DragThreshold = DefaultDragThreshold
	}
	if opts.ReheatAlpha <= 0 {
		opts.ReheatAlpha = layout.DragAlpha
	}
	return &Controller{
		graph: g,
		sim:   sim,
		view:  view,
		opts:  opts,
		cb:    cb,
		log:   logging.DefaultLogger().With(logging.Component("interaction")),
	}
}

// HoverID returns the id of the node currently hovered, or "".
func (c *Controller) HoverID() string {
	return c.hoverID
}

// Dragging reports whether a node drag is in progress.
func (c *Controller) Dragging() bool {
	return c.dragID != "" && c.moved
}

// Close detaches the controller. Events arriving after teardown are
// ignored rather than acting on a dead simulation.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	if c.dragID != "" {
		c.sim.Unpin(c.dragID)
	}
	c.leaveHover()
	c.closed = true
}

// PointerDown begins a gesture. Over a node it arms a potential drag or
// click: the node is pinned where it stands and the simulation reheats.
// Over empty space it starts a pan.
func (c *Controller) PointerDown(x, y float64) {
	if c.closed {
		return
	}
	c.pressed = true
	c.moved = false
	c.pressX, c.pressY = x, y
	c.lastX, c.lastY = x, y
	c.leaveHover()

	id, ok := c.hitTest(x, y)
	if !ok {
		c.panning = true
		return
	}
	c.dragID = id
	if pos, ok := c.sim.Position(id); ok {
		c.sim.Pin(id, pos.X, pos.Y)
	}
	c.sim.Reheat(c.opts.ReheatAlpha)
}

// PointerMove advances whichever gesture is active, or updates hover
// state when no button is down.
func (c *Controller) PointerMove(x, y float64) {
	if c.closed {
		return
	}
	dx, dy := x-c.lastX, y-c.lastY
	c.lastX, c.lastY = x, y

	if !c.pressed {
		c.updateHover(x, y)
		return
	}

	if !c.moved {
		tx, ty := x-c.pressX, y-c.pressY
		if math.Hypot(tx, ty) > c.opts.DragThreshold {
			c.moved = true
		}
	}

	switch {
	case c.dragID != "":
		// The pin starts tracking the pointer only once the gesture is
		// committed as a drag; below the threshold the node must not move.
		if c.moved {
			simX, simY := c.view.Transform().ToSim(x, y)
			c.sim.Pin(c.dragID, simX, simY)
		}
	case c.panning:
		c.view.Pan(dx, dy)
	}
}

// PointerUp completes the gesture. A press/release pair that never
// crossed the drag threshold is a click and emits exactly one selection.
func (c *Controller) PointerUp(x, y float64) {
	if c.closed {
		return
	}
	if c.dragID != "" {
		if !c.moved {
			if n, ok := c.graph.Node(c.dragID); ok && c.cb.NodeSelected != nil {
				c.cb.NodeSelected(n)
			}
		}
		c.sim.Unpin(c.dragID)
		c.sim.Reheat(0)
	}
	c.pressed = false
	c.moved = false
	c.panning = false
	c.dragID = ""
	c.updateHover(x, y)
}

// Wheel zooms at the pointer position.
func (c *Controller) Wheel(delta, x, y float64) {
	if c.closed {
		return
	}
	c.view.ZoomAt(viewport.WheelFactor(delta), x, y)
}

func (c *Controller) updateHover(x, y float64) {
	id, ok := c.hitTest(x, y)
	if !ok {
		c.leaveHover()
		return
	}
	if id == c.hoverID {
		if n, found := c.graph.Node(id); found && c.cb.HoverMove != nil {
			c.cb.HoverMove(n, x, y)
		}
		return
	}
	c.leaveHover()
	c.hoverID = id
	if n, found := c.graph.Node(id); found && c.cb.HoverEnter != nil {
		c.cb.HoverEnter(n, x, y)
	}
}

func (c *Controller) leaveHover() {
	if c.hoverID == "" {
		return
	}
	if n, ok := c.graph.Node(c.hoverID); ok && c.cb.HoverLeave != nil {
		c.cb.HoverLeave(n)
	}
	c.hoverID = ""
}
