package layout

import "math"

// Step advances the simulation by one tick and reports whether the
// system has settled. All force accumulation reads the positions
// committed by the previous tick; nothing is written until the commit
// pass at the end, so evaluation order inside a tick cannot leak.
func (s *Simulation) Step() bool {
	if len(s.bodies) == 0 {
		return true
	}
	if s.Settled() && s.alphaTarget < s.opts.AlphaMin {
		return true
	}

	s.alpha += (s.alphaTarget - s.alpha) * s.opts.AlphaDecay

	for i := range s.fx {
		s.fx[i] = 0
		s.fy[i] = 0
	}

	s.accumulateLinks()
	s.accumulateCharge()
	s.accumulateCollisions()

	s.commit()
	s.applyCentering()
	s.ticks++

	return s.Settled() && s.alphaTarget < s.opts.AlphaMin
}

// accumulateLinks pulls each edge's endpoints toward the rest distance,
// splitting the correction by degree bias so hubs stay put.
func (s *Simulation) accumulateLinks() {
	for _, l := range s.links {
		src := &s.bodies[l.source]
		dst := &s.bodies[l.target]
		dx := dst.x - src.x
		dy := dst.y - src.y
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			dx, dy = s.jiggle(), s.jiggle()
			dist = math.Hypot(dx, dy)
		}
		f := (dist - s.opts.LinkDistance) / dist * s.opts.LinkStrength * s.alpha
		fx := dx * f
		fy := dy * f
		s.fx[l.target] -= fx * l.bias
		s.fy[l.target] -= fy * l.bias
		s.fx[l.source] += fx * (1 - l.bias)
		s.fy[l.source] += fy * (1 - l.bias)
	}
}

// accumulateCharge applies pairwise inverse-square repulsion. The naive
// O(n²) pass is deliberate: topology graphs are tens to low hundreds of
// nodes, where a quadtree buys nothing.
func (s *Simulation) accumulateCharge() {
	n := len(s.bodies)
	for i := 0; i < n; i++ {
		bi := &s.bodies[i]
		for j := i + 1; j < n; j++ {
			bj := &s.bodies[j]
			dx := bj.x - bi.x
			dy := bj.y - bi.y
			dist2 := dx*dx + dy*dy
			if dist2 < 1e-6 {
				dx = s.jiggle()
				dy = s.jiggle()
				dist2 = dx*dx + dy*dy + 1e-6
			}
			f := s.opts.ChargeStrength * s.alpha / dist2
			inv := 1 / math.Sqrt(dist2)
			fx := dx * inv * f
			fy := dy * inv * f
			s.fx[i] -= fx
			s.fy[i] -= fy
			s.fx[j] += fx
			s.fy[j] += fy
		}
	}
}

// accumulateCollisions pushes overlapping pairs apart based on render
// radius plus the configured margin.
func (s *Simulation) accumulateCollisions() {
	n := len(s.bodies)
	for i := 0; i < n; i++ {
		bi := &s.bodies[i]
		for j := i + 1; j < n; j++ {
			bj := &s.bodies[j]
			minDist := bi.radius + bj.radius + s.opts.CollideMargin
			dx := bj.x - bi.x
			dy := bj.y - bi.y
			dist := math.Hypot(dx, dy)
			if dist >= minDist {
				continue
			}
			if dist == 0 {
				dx, dy = s.jiggle(), s.jiggle()
				dist = math.Hypot(dx, dy)
			}
			overlap := (minDist - dist) / dist * 0.5 * s.alpha
			fx := dx * overlap
			fy := dy * overlap
			s.fx[i] -= fx
			s.fy[i] -= fy
			s.fx[j] += fx
			s.fy[j] += fy
		}
	}
}

// commit integrates velocities and positions. Pinned bodies are exempt:
// their committed position is exactly the pin, whatever the forces said.
func (s *Simulation) commit() {
	decay := 1 - s.opts.VelocityDecay
	for i := range s.bodies {
		b := &s.bodies[i]
		if b.fx != nil {
			b.x, b.y = *b.fx, *b.fy
			b.vx, b.vy = 0, 0
			continue
		}
		b.vx = (b.vx + s.fx[i]) * decay
		b.vy = (b.vy + s.fy[i]) * decay
		b.x += b.vx
		b.y += b.vy
	}
}

// applyCentering nudges the whole system's centroid toward the canvas
// center. Positional, not a force, so it cannot add kinetic energy.
func (s *Simulation) applyCentering() {
	var cx, cy float64
	free := 0
	for i := range s.bodies {
		if s.bodies[i].fx != nil {
			continue
		}
		cx += s.bodies[i].x
		cy += s.bodies[i].y
		free++
	}
	if free == 0 {
		return
	}
	cx = cx/float64(free) - s.width/2
	cy = cy/float64(free) - s.height/2
	dx := cx * s.opts.CenterStrength
	dy := cy * s.opts.CenterStrength
	for i := range s.bodies {
		if s.bodies[i].fx != nil {
			continue
		}
		s.bodies[i].x -= dx
		s.bodies[i].y -= dy
	}
}

// jiggle breaks exact-overlap ties with a tiny deterministic offset.
func (s *Simulation) jiggle() float64 {
	return (s.rng.Float64() - 0.5) * 1e-3
}
