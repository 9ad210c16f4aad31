package topology

import (
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/logging"
)

// Graph holds one sanitized topology snapshot. Nodes and edges are
// immutable once the graph is built; simulation state lives elsewhere,
// keyed by node id.
type Graph struct {
	Nodes []Node
	Edges []Edge

	index     map[string]int
	adjacency map[string][]string
}

// SanitizeReport records what NewGraph had to repair. Everything in here
// is fail-soft: a non-zero report means degraded input, not an error.
type SanitizeReport struct {
	DroppedEdges   int // edges whose source or target id did not resolve
	DuplicateNodes int // nodes sharing an id with an earlier node (first wins)
	ClampedNodes   int // nodes whose size was below the minimum radius
}

// Dirty reports whether anything was repaired.
func (r SanitizeReport) Dirty() bool {
	return r.DroppedEdges > 0 || r.DuplicateNodes > 0 || r.ClampedNodes > 0
}

// NewGraph builds a sanitized graph from raw node and edge lists.
// Input order is preserved so hit-testing on exact overlaps stays
// deterministic. Malformed edges are dropped, duplicate node ids are
// collapsed to the first occurrence, and degenerate sizes are clamped.
func NewGraph(nodes []Node, edges []Edge) (*Graph, SanitizeReport) {
	g := &Graph{
		Nodes:     make([]Node, 0, len(nodes)),
		Edges:     make([]Edge, 0, len(edges)),
		index:     make(map[string]int, len(nodes)),
		adjacency: make(map[string][]string),
	}
	var report SanitizeReport

	for _, n := range nodes {
		if _, dup := g.index[n.ID]; dup {
			report.DuplicateNodes++
			continue
		}
		if n.Size < MinNodeSize {
			n.Size = MinNodeSize
			report.ClampedNodes++
		}
		g.index[n.ID] = len(g.Nodes)
		g.Nodes = append(g.Nodes, n)
	}

	for _, e := range edges {
		_, srcOK := g.index[e.Source]
		_, dstOK := g.index[e.Target]
		if !srcOK || !dstOK {
			report.DroppedEdges++
			continue
		}
		g.Edges = append(g.Edges, e)
		g.adjacency[e.Source] = append(g.adjacency[e.Source], e.Target)
		g.adjacency[e.Target] = append(g.adjacency[e.Target], e.Source)
	}

	if report.Dirty() {
		logging.Debug("graph sanitized",
			logging.Component("topology"),
			logging.DroppedEdges(report.DroppedEdges),
			logging.Int("duplicate_nodes", report.DuplicateNodes),
			logging.Int("clamped_nodes", report.ClampedNodes),
		)
	}
	return g, report
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.Nodes[i], true
}

// Has reports whether a node id exists in the graph.
func (g *Graph) Has(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Neighbors returns the ids directly connected to id via any edge,
// in either direction. May contain repeats if parallel edges exist.
func (g *Graph) Neighbors(id string) []string {
	return g.adjacency[id]
}

// HighlightSet returns {id} plus every id adjacent to it. Hovering a
// node keeps exactly this set at full opacity and dims the rest.
func (g *Graph) HighlightSet(id string) map[string]bool {
	if !g.Has(id) {
		return nil
	}
	set := map[string]bool{id: true}
	for _, nb := range g.adjacency[id] {
		set[nb] = true
	}
	return set
}

// Empty reports whether the graph holds no nodes.
func (g *Graph) Empty() bool {
	return len(g.Nodes) == 0
}
