package viewport

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestViewportInvariants checks the transform properties that must hold
// for arbitrary gesture sequences.
func TestViewportInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	// Property 1: ToSim is the exact inverse of ToScreen for any
	// transform reachable through gestures.
	properties.Property("screen/sim round trip", prop.ForAll(
		func(factor, fx, fy, px, py float64) bool {
			c := NewController(0, 0, 0)
			c.ZoomAt(factor, fx, fy)
			c.Pan(fx/2, fy/2)
			tr := c.Transform()
			simX, simY := tr.ToSim(px, py)
			backX, backY := tr.ToScreen(simX, simY)
			return math.Abs(backX-px) < 1e-6 && math.Abs(backY-py) < 1e-6
		},
		gen.Float64Range(0.2, 5),
		gen.Float64Range(-1000, 1000),
		gen.Float64Range(-1000, 1000),
		gen.Float64Range(-1000, 1000),
		gen.Float64Range(-1000, 1000),
	))

	// Property 2: no gesture sequence escapes the zoom bounds.
	properties.Property("scale stays within bounds", prop.ForAll(
		func(factors []float64) bool {
			c := NewController(0, 0, 0)
			for _, f := range factors {
				c.ZoomAt(f, 100, 100)
			}
			s := c.Transform().Scale
			return s >= DefaultMinScale && s <= DefaultMaxScale
		},
		gen.SliceOf(gen.Float64Range(0.1, 10)),
	))

	// Property 3: wheel factors are always positive and bounded.
	properties.Property("wheel factor bounded", prop.ForAll(
		func(delta float64) bool {
			f := WheelFactor(delta)
			return f >= 0.5 && f <= 1.5
		},
		gen.Float64Range(-1e6, 1e6),
	))

	properties.TestingRun(t)
}
