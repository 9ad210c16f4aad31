package topology

// Stats summarizes a graph for the statistics strip: total counts plus
// per-type breakdowns. Pure data; the renderer formats it.
type Stats struct {
	Nodes       int
	Edges       int
	NodesByType map[NodeType]int
	EdgesByType map[EdgeType]int
}

// Stats computes the summary for the current graph.
func (g *Graph) Stats() Stats {
	s := Stats{
		Nodes:       len(g.Nodes),
		Edges:       len(g.Edges),
		NodesByType: make(map[NodeType]int),
		EdgesByType: make(map[EdgeType]int),
	}
	for i := range g.Nodes {
		s.NodesByType[g.Nodes[i].Type]++
	}
	for i := range g.Edges {
		s.EdgesByType[g.Edges[i].Type]++
	}
	return s
}
