package viewport

import (
	"math"
	"testing"
	"time"
)

func TestZoomAnchorsFocalPoint(t *testing.T) {
	c := NewController(0, 0, 0)
	c.Pan(50, 30)

	focalX, focalY := 200.0, 150.0
	simX, simY := c.Transform().ToSim(focalX, focalY)

	c.ZoomAt(1.5, focalX, focalY)

	gotX, gotY := c.Transform().ToScreen(simX, simY)
	if math.Abs(gotX-focalX) > 1e-9 || math.Abs(gotY-focalY) > 1e-9 {
		t.Errorf("focal point drifted to (%f, %f)", gotX, gotY)
	}
}

func TestZoomClampUpper(t *testing.T) {
	c := NewController(0, 0, 0)
	for i := 0; i < 100; i++ {
		c.ZoomAt(1.5, 100, 100)
	}
	if s := c.Transform().Scale; s > DefaultMaxScale {
		t.Errorf("scale %f exceeds maximum %f", s, DefaultMaxScale)
	}
}

func TestZoomClampLower(t *testing.T) {
	c := NewController(0, 0, 0)
	for i := 0; i < 100; i++ {
		c.ZoomAt(0.5, 100, 100)
	}
	if s := c.Transform().Scale; s < DefaultMinScale {
		t.Errorf("scale %f below minimum %f", s, DefaultMinScale)
	}
}

func TestPanAccumulates(t *testing.T) {
	c := NewController(0, 0, 0)
	c.Pan(10, 5)
	c.Pan(-3, 7)
	tr := c.Transform()
	if tr.TX != 7 || tr.TY != 12 {
		t.Errorf("accumulated pan = (%f, %f), want (7, 12)", tr.TX, tr.TY)
	}
}

func TestZoomPanCompose(t *testing.T) {
	// Zoom then pan then zoom must stay one consistent transform:
	// round-tripping any point through it is still exact.
	c := NewController(0, 0, 0)
	c.ZoomAt(2.0, 100, 100)
	c.Pan(40, -25)
	c.ZoomAt(0.7, 10, 300)

	sx, sy := 123.0, 456.0
	simX, simY := c.Transform().ToSim(sx, sy)
	backX, backY := c.Transform().ToScreen(simX, simY)
	if math.Abs(backX-sx) > 1e-9 || math.Abs(backY-sy) > 1e-9 {
		t.Errorf("round trip drifted: (%f, %f)", backX, backY)
	}
}

func TestResetAnimatesToIdentity(t *testing.T) {
	c := NewController(0, 0, 500*time.Millisecond)
	c.ZoomAt(3.0, 50, 50)
	c.Pan(100, 100)

	start := time.Now()
	c.Reset(start)
	if !c.Animating() {
		t.Fatal("Reset did not start an animation")
	}

	// Mid-animation the transform is strictly between start and identity.
	c.Update(start.Add(250 * time.Millisecond))
	mid := c.Transform()
	if mid == Identity() {
		t.Error("reset jumped instantly to identity")
	}
	if !c.Animating() {
		t.Error("animation ended early")
	}

	// At the deadline we land on exact identity, not approximately.
	c.Update(start.Add(500 * time.Millisecond))
	if c.Transform() != Identity() {
		t.Errorf("reset ended at %+v, want identity", c.Transform())
	}
	if c.Animating() {
		t.Error("animation still reported in progress after deadline")
	}
}

func TestResetFromIdentityIsNoop(t *testing.T) {
	c := NewController(0, 0, 0)
	c.Reset(time.Now())
	if c.Animating() {
		t.Error("reset from identity should not animate")
	}
}

func TestGestureCancelsReset(t *testing.T) {
	c := NewController(0, 0, 0)
	c.ZoomAt(2.0, 0, 0)
	c.Reset(time.Now())
	c.Pan(5, 5)
	if c.Animating() {
		t.Error("pan during reset did not cancel the animation")
	}
}

func TestFitFramesBounds(t *testing.T) {
	c := NewController(0, 0, 0)
	c.Fit(0, 0, 400, 300, 800, 600, 40)

	tr := c.Transform()
	// All four corners of the bounds must land inside the screen extent.
	corners := [][2]float64{{0, 0}, {400, 0}, {0, 300}, {400, 300}}
	for _, corner := range corners {
		sx, sy := tr.ToScreen(corner[0], corner[1])
		if sx < 0 || sx > 800 || sy < 0 || sy > 600 {
			t.Errorf("corner (%f, %f) projected off screen to (%f, %f)", corner[0], corner[1], sx, sy)
		}
	}
}

func TestFitDegenerateBounds(t *testing.T) {
	c := NewController(0, 0, 0)
	c.Fit(100, 100, 100, 100, 800, 600, 40)
	if s := c.Transform().Scale; s < DefaultMinScale || s > DefaultMaxScale {
		t.Errorf("degenerate fit produced out-of-bounds scale %f", s)
	}
}

func TestWheelFactorClamped(t *testing.T) {
	if f := WheelFactor(1e9); f < 0.5 {
		t.Errorf("huge wheel delta gave factor %f", f)
	}
	if f := WheelFactor(-1e9); f > 1.5 {
		t.Errorf("huge negative wheel delta gave factor %f", f)
	}
	if f := WheelFactor(0); f != 1 {
		t.Errorf("zero delta gave factor %f, want 1", f)
	}
}
