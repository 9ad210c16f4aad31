package layout

import (
	"math"
	"math/rand"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/logging"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/topology"
)

// DragAlpha is the reheat target used while a node is being dragged.
const DragAlpha = 0.3

// body is the engine-owned simulation state for one node. Display fields
// stay in topology.Node; only positions, velocities, and the pin live here.
type body struct {
	x, y   float64
	vx, vy float64
	fx, fy *float64 // non-nil while pinned
	radius float64
}

type spring struct {
	source, target int
	// bias splits the spring's correction between the two endpoints,
	// weighted by degree so hubs move less than leaves.
	bias float64
}

// Simulation converges a force-directed layout for one graph snapshot.
// It is single-threaded by design: the host drives Step from its frame
// callback and reads positions between steps.
type Simulation struct {
	opts          Options
	width, height float64

	ids    []string
	lookup map[string]int
	bodies []body
	links  []spring
	degree []int

	alpha       float64
	alphaTarget float64
	ticks       int

	// scratch force accumulators reused across ticks
	fx, fy []float64

	rng *rand.Rand
	log logging.Logger
}

// New initializes a simulation for the given graph and canvas extent.
// Initial placement is a deterministic spiral around the canvas center
// so the first node of a one-node graph lands exactly at the center.
func New(g *topology.Graph, width, height float64, opts Options) *Simulation {
	opts = opts.withDefaults()
	s := &Simulation{
		opts:   opts,
		width:  width,
		height: height,
		ids:    make([]string, len(g.Nodes)),
		lookup: make(map[string]int, len(g.Nodes)),
		bodies: make([]body, len(g.Nodes)),
		degree: make([]int, len(g.Nodes)),
		fx:     make([]float64, len(g.Nodes)),
		fy:     make([]float64, len(g.Nodes)),
		alpha:  1.0,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		log:    logging.DefaultLogger().With(logging.Component("layout")),
	}

	cx, cy := width/2, height/2
	goldenAngle := math.Pi * (3 - math.Sqrt(5))
	initialRadius := opts.LinkDistance / 8
	for i := range g.Nodes {
		n := &g.Nodes[i]
		s.ids[i] = n.ID
		s.lookup[n.ID] = i
		r := initialRadius * math.Sqrt(float64(i))
		a := float64(i) * goldenAngle
		s.bodies[i] = body{
			x:      cx + r*math.Cos(a),
			y:      cy + r*math.Sin(a),
			radius: n.Radius(),
		}
	}

	for _, e := range g.Edges {
		si, sok := s.lookup[e.Source]
		ti, tok := s.lookup[e.Target]
		if !sok || !tok {
			continue // sanitize already dropped these; belt and braces
		}
		s.degree[si]++
		s.degree[ti]++
		s.links = append(s.links, spring{source: si, target: ti})
	}
	for i := range s.links {
		l := &s.links[i]
		l.bias = float64(s.degree[l.source]) / float64(s.degree[l.source]+s.degree[l.target])
	}

	// Nothing to converge: a lone unlinked node is already at the
	// canvas center, and an empty graph has no bodies at all.
	if len(s.bodies) == 0 || (len(s.bodies) == 1 && len(s.links) == 0) {
		s.alpha = 0
	}

	s.log.Debug("simulation initialized",
		logging.NodeCount(len(s.ids)),
		logging.EdgeCount(len(s.links)),
	)
	return s
}

// Settled reports whether the cooling schedule has reached rest.
func (s *Simulation) Settled() bool {
	return s.alpha < s.opts.AlphaMin
}

// Alpha returns the current cooling term.
func (s *Simulation) Alpha() float64 {
	return s.alpha
}

// Ticks returns the number of committed ticks so far.
func (s *Simulation) Ticks() int {
	return s.ticks
}

// Reheat raises alpha to at least target and keeps target as the floor
// alpha relaxes toward. Drag passes DragAlpha; releasing passes 0 so the
// system cools back to rest.
func (s *Simulation) Reheat(target float64) {
	s.alphaTarget = target
	if s.alpha < target {
		s.alpha = target
	}
}

// Pin fixes a node at (x, y). While pinned the node ignores every force;
// its committed position is exactly the pin on every tick.
func (s *Simulation) Pin(id string, x, y float64) {
	i, ok := s.lookup[id]
	if !ok {
		return
	}
	b := &s.bodies[i]
	px, py := x, y
	b.fx, b.fy = &px, &py
	b.x, b.y = x, y
	b.vx, b.vy = 0, 0
}

// Unpin releases a pinned node back to the forces.
func (s *Simulation) Unpin(id string) {
	i, ok := s.lookup[id]
	if !ok {
		return
	}
	s.bodies[i].fx = nil
	s.bodies[i].fy = nil
}

// Pinned reports whether the node is currently pinned.
func (s *Simulation) Pinned(id string) bool {
	i, ok := s.lookup[id]
	return ok && s.bodies[i].fx != nil
}

// Position returns the committed position of a node.
func (s *Simulation) Position(id string) (Position, bool) {
	i, ok := s.lookup[id]
	if !ok {
		return Position{}, false
	}
	return Position{X: s.bodies[i].x, Y: s.bodies[i].y}, true
}

// Positions returns a read-only snapshot of all committed positions.
func (s *Simulation) Positions() map[string]Position {
	out := make(map[string]Position, len(s.ids))
	for i, id := range s.ids {
		out[id] = Position{X: s.bodies[i].x, Y: s.bodies[i].y}
	}
	return out
}

// KineticEnergy returns the sum of squared velocities across all bodies.
func (s *Simulation) KineticEnergy() float64 {
	var e float64
	for i := range s.bodies {
		e += s.bodies[i].vx*s.bodies[i].vx + s.bodies[i].vy*s.bodies[i].vy
	}
	return e
}

// Bounds returns the axis-aligned extent of all node positions including
// their radii. ok is false for an empty simulation.
func (s *Simulation) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	if len(s.bodies) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for i := range s.bodies {
		b := &s.bodies[i]
		minX = math.Min(minX, b.x-b.radius)
		minY = math.Min(minY, b.y-b.radius)
		maxX = math.Max(maxX, b.x+b.radius)
		maxY = math.Max(maxY, b.y+b.radius)
	}
	return minX, minY, maxX, maxY, true
}

// SetExtent re-centers the system for a resized canvas.
func (s *Simulation) SetExtent(width, height float64) {
	dx := (width - s.width) / 2
	dy := (height - s.height) / 2
	s.width, s.height = width, height
	for i := range s.bodies {
		b := &s.bodies[i]
		if b.fx != nil {
			continue
		}
		b.x += dx
		b.y += dy
	}
}

// Run ticks until the simulation settles or maxTicks is reached, and
// returns the number of ticks executed. Headless callers use this; the
// interactive host drives Step itself.
func (s *Simulation) Run(maxTicks int) int {
	timer := logging.StartTimer(s.log, "layout converged", logging.NodeCount(len(s.ids)))
	n := 0
	for n < maxTicks {
		if s.Step() {
			break
		}
		n++
	}
	timer.End()
	return n
}
