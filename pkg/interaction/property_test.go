package interaction

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/layout"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/topology"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/viewport"
)

// TestClickDragDisambiguation drives the state machine with arbitrary
// pointer paths and checks the click/drag contract: cumulative movement
// under the threshold is exactly one selection and no node motion; over
// the threshold is zero selections.
func TestClickDragDisambiguation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	run := func(path [][2]float64) (selections int, moved bool) {
		g, _ := topology.NewGraph(
			[]topology.Node{{ID: "n", Type: topology.NodeDevice, Size: 10}},
			nil,
		)
		sim := layout.New(g, 800, 600, layout.Options{})
		sim.Pin("n", 400, 300)
		view := viewport.NewController(0, 0, 0)
		ctrl := NewController(g, sim, view, DefaultOptions(), Callbacks{
			NodeSelected: func(topology.Node) { selections++ },
		})

		before, _ := sim.Position("n")
		ctrl.PointerDown(400, 300)
		x, y := 400.0, 300.0
		for _, step := range path {
			x, y = step[0], step[1]
			ctrl.PointerMove(x, y)
		}
		ctrl.PointerUp(x, y)
		after, _ := sim.Position("n")
		return selections, before != after
	}

	properties.Property("sub-threshold path clicks once, moves nothing", prop.ForAll(
		func(jitters []float64) bool {
			// Build a path that never strays past 2px from the press point.
			path := make([][2]float64, 0, len(jitters))
			for _, j := range jitters {
				path = append(path, [2]float64{400 + j, 300 - j/2})
			}
			selections, moved := run(path)
			return selections == 1 && !moved
		},
		gen.SliceOf(gen.Float64Range(-1.4, 1.4)),
	))

	properties.Property("over-threshold path never selects", prop.ForAll(
		func(dx, dy float64) bool {
			if math.Hypot(dx, dy) <= DefaultDragThreshold {
				return true // not a drag, out of scope here
			}
			selections, _ := run([][2]float64{{400 + dx, 300 + dy}})
			return selections == 0
		},
		gen.Float64Range(-100, 100),
		gen.Float64Range(-100, 100),
	))

	properties.TestingRun(t)
}
