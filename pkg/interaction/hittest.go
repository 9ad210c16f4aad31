package interaction

import (
	"math"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/topology"
)

// hitTest finds the node under a screen point, testing each node's true
// silhouette in simulation space. Nodes are checked in input order, so
// exact overlaps resolve deterministically to the earlier node.
func (c *Controller) hitTest(screenX, screenY float64) (string, bool) {
	simX, simY := c.view.Transform().ToSim(screenX, screenY)
	for i := range c.graph.Nodes {
		n := &c.graph.Nodes[i]
		pos, ok := c.sim.Position(n.ID)
		if !ok {
			continue
		}
		if hitShape(n, simX-pos.X, simY-pos.Y) {
			return n.ID, true
		}
	}
	return "", false
}

// hitShape tests a point offset from the node center against the node's
// silhouette, not its bounding box: a click in a diamond's empty corner
// must miss.
func hitShape(n *topology.Node, dx, dy float64) bool {
	size := n.Radius()
	switch n.Shape() {
	case topology.ShapeDiamond:
		return math.Abs(dx)+math.Abs(dy) <= size
	case topology.ShapeSquare:
		// Squares render with side 0.8×size, centered.
		half := 0.4 * size
		return math.Abs(dx) <= half && math.Abs(dy) <= half
	default:
		return dx*dx+dy*dy <= size*size
	}
}
