package viewport

// Transform is the affine pan/zoom mapping between simulation space and
// screen space: screen = sim*Scale + T.
type Transform struct {
	Scale float64
	TX    float64
	TY    float64
}

// Identity is the untransformed viewport.
func Identity() Transform {
	return Transform{Scale: 1}
}

// ToScreen projects a simulation-space point to screen space.
func (t Transform) ToScreen(x, y float64) (float64, float64) {
	return x*t.Scale + t.TX, y*t.Scale + t.TY
}

// ToSim maps a screen-space point back to simulation space. Exact
// inverse of ToScreen for any non-zero scale.
func (t Transform) ToSim(x, y float64) (float64, float64) {
	return (x - t.TX) / t.Scale, (y - t.TY) / t.Scale
}
