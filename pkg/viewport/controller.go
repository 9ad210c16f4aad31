package viewport

import (
	"math"
	"time"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/logging"
)

// Default zoom bounds and reset animation length.
const (
	DefaultMinScale      = 0.1
	DefaultMaxScale      = 4.0
	DefaultResetDuration = 500 * time.Millisecond
)

// Controller owns the single viewport transform for a visible canvas.
// Interaction writes it, render reads it; everything runs on the host's
// cooperative thread so there is no locking.
type Controller struct {
	t             Transform
	minScale      float64
	maxScale      float64
	resetDuration time.Duration

	anim *resetAnimation
	log  logging.Logger
}

type resetAnimation struct {
	from  Transform
	start time.Time
}

// NewController creates a controller at the identity transform with the
// given zoom bounds. Non-positive bounds fall back to the defaults.
func NewController(minScale, maxScale float64, resetDuration time.Duration) *Controller {
	if minScale <= 0 {
		minScale = DefaultMinScale
	}
	if maxScale <= 0 {
		maxScale = DefaultMaxScale
	}
	if resetDuration <= 0 {
		resetDuration = DefaultResetDuration
	}
	return &Controller{
		t:             Identity(),
		minScale:      minScale,
		maxScale:      maxScale,
		resetDuration: resetDuration,
		log:           logging.DefaultLogger().With(logging.Component("viewport")),
	}
}

// Transform returns the current transform.
func (c *Controller) Transform() Transform {
	return c.t
}

// ZoomAt multiplies the scale by factor anchored at the given screen
// point: the simulation coordinate under the pointer stays under the
// pointer. Scale is clamped to the configured bounds, and repeated
// gestures accumulate into the one transform.
func (c *Controller) ZoomAt(factor, screenX, screenY float64) {
	c.anim = nil
	newScale := c.t.Scale * factor
	if newScale < c.minScale {
		newScale = c.minScale
	}
	if newScale > c.maxScale {
		newScale = c.maxScale
	}
	simX, simY := c.t.ToSim(screenX, screenY)
	c.t.Scale = newScale
	c.t.TX = screenX - simX*newScale
	c.t.TY = screenY - simY*newScale
}

// WheelFactor converts a wheel delta into an exponential zoom factor,
// clamped so one violent scroll cannot jump the whole range.
func WheelFactor(delta float64) float64 {
	return 1 - math.Max(-0.5, math.Min(0.5, delta/500))
}

// Pan shifts the viewport by a screen-space delta.
func (c *Controller) Pan(dx, dy float64) {
	c.anim = nil
	c.t.TX += dx
	c.t.TY += dy
}

// Reset starts an eased animation back to the identity transform. The
// glide is deliberate: snapping instantly loses the user's sense of
// where they were.
func (c *Controller) Reset(now time.Time) {
	if c.t == Identity() {
		c.anim = nil
		return
	}
	c.anim = &resetAnimation{from: c.t, start: now}
	c.log.Debug("viewport reset", logging.Float64("from_scale", c.t.Scale))
}

// SetInstant replaces the transform immediately, cancelling any
// animation. A wholly new graph uses this rather than Reset.
func (c *Controller) SetInstant(t Transform) {
	c.anim = nil
	c.t = t
}

// Animating reports whether a reset glide is in progress.
func (c *Controller) Animating() bool {
	return c.anim != nil
}

// Update advances the reset animation to the given time. Call once per
// frame while Animating; reaching the deadline lands on exact identity.
func (c *Controller) Update(now time.Time) {
	if c.anim == nil {
		return
	}
	elapsed := now.Sub(c.anim.start)
	if elapsed >= c.resetDuration {
		c.t = Identity()
		c.anim = nil
		return
	}
	p := easeInOutCubic(float64(elapsed) / float64(c.resetDuration))
	id := Identity()
	c.t = Transform{
		Scale: lerp(c.anim.from.Scale, id.Scale, p),
		TX:    lerp(c.anim.from.TX, id.TX, p),
		TY:    lerp(c.anim.from.TY, id.TY, p),
	}
}

// Fit frames the given simulation-space bounds inside a screen extent
// with the requested margin, clamped to the zoom bounds.
func (c *Controller) Fit(minX, minY, maxX, maxY, width, height, margin float64) {
	c.anim = nil
	gw := maxX - minX
	gh := maxY - minY
	if gw <= 0 {
		gw = 1
	}
	if gh <= 0 {
		gh = 1
	}
	sx := (width - 2*margin) / gw
	sy := (height - 2*margin) / gh
	s := math.Min(sx, sy)
	if s <= 0 {
		s = 1
	}
	if s < c.minScale {
		s = c.minScale
	}
	if s > c.maxScale {
		s = c.maxScale
	}
	c.t = Transform{
		Scale: s,
		TX:    width/2 - (minX+gw/2)*s,
		TY:    height/2 - (minY+gh/2)*s,
	}
}

func easeInOutCubic(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	q := -2*p + 2
	return 1 - q*q*q/2
}

func lerp(a, b, p float64) float64 {
	return a + (b-a)*p
}
