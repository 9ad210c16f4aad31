package layout

import "math"

// Options configures the force simulation. Zero values are replaced by
// the defaults below, so callers can set only what they care about.
type Options struct {
	// LinkDistance is the rest length of the spring between two
	// connected nodes, in simulation units.
	LinkDistance float64
	// LinkStrength scales how hard springs pull toward rest length.
	LinkStrength float64
	// ChargeStrength scales pairwise repulsion between all nodes.
	ChargeStrength float64
	// CenterStrength is the fraction of the centroid-to-center offset
	// corrected each tick. Keeps the system from drifting off screen.
	CenterStrength float64
	// CollideMargin is added to each node's radius when resolving
	// overlaps, so shapes keep a visible gap.
	CollideMargin float64
	// VelocityDecay is the per-tick velocity damping factor in (0, 1).
	VelocityDecay float64
	// AlphaMin is the rest threshold: the simulation reports settled
	// once alpha falls below it.
	AlphaMin float64
	// AlphaDecay is the per-tick relaxation of alpha toward its target.
	AlphaDecay float64
	// Seed drives initial placement jitter. Fixed seeds give
	// reproducible layouts for tests and headless export.
	Seed int64
}

// DefaultOptions returns the tuning the interactive viewer ships with.
func DefaultOptions() Options {
	return Options{
		LinkDistance:   120,
		LinkStrength:   0.1,
		ChargeStrength: 3000,
		CenterStrength: 0.05,
		CollideMargin:  10,
		VelocityDecay:  0.4,
		AlphaMin:       0.001,
		// Relaxes alpha from 1 to AlphaMin over roughly 300 ticks.
		AlphaDecay: 1 - math.Pow(0.001, 1.0/300),
		Seed:       1,
	}
}

// withDefaults fills unset fields.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.LinkDistance == 0 {
		o.LinkDistance = d.LinkDistance
	}
	if o.LinkStrength == 0 {
		o.LinkStrength = d.LinkStrength
	}
	if o.ChargeStrength == 0 {
		o.ChargeStrength = d.ChargeStrength
	}
	if o.CenterStrength == 0 {
		o.CenterStrength = d.CenterStrength
	}
	if o.CollideMargin == 0 {
		o.CollideMargin = d.CollideMargin
	}
	if o.VelocityDecay == 0 {
		o.VelocityDecay = d.VelocityDecay
	}
	if o.AlphaMin == 0 {
		o.AlphaMin = d.AlphaMin
	}
	if o.AlphaDecay == 0 {
		o.AlphaDecay = d.AlphaDecay
	}
	if o.Seed == 0 {
		o.Seed = d.Seed
	}
	return o
}

// Position is a committed 2D simulation coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
