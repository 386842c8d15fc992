package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func activeLocks(c *Controller) []string {
	var active []string
	for code, on := range c.Locks() {
		if on {
			active = append(active, code)
		}
	}
	return active
}

func TestLockMutualExclusion(t *testing.T) {
	c := NewController(30)

	c.ToggleLock("EARTH", 1.5)
	c.ToggleLock("MARS", 1.1)
	c.ToggleLock("JUPITER", 4.5)

	active := activeLocks(c)
	if len(active) != 1 || active[0] != "JUPITER" {
		t.Errorf("active locks = %v, want exactly [JUPITER]", active)
	}

	code, ok := c.Locked()
	if !ok || code != "JUPITER" {
		t.Errorf("Locked() = %q, %v", code, ok)
	}
}

func TestToggleLockReleases(t *testing.T) {
	c := NewController(30)

	if !c.ToggleLock("EARTH", 1.5) {
		t.Fatal("first toggle should enable the lock")
	}
	if c.ToggleLock("EARTH", 1.5) {
		t.Fatal("second toggle should release the lock")
	}

	if active := activeLocks(c); len(active) != 0 {
		t.Errorf("active locks after release = %v, want none", active)
	}
	if _, ok := c.Locked(); ok {
		t.Error("Locked() should report no lock")
	}
}

func TestReleaseLock(t *testing.T) {
	c := NewController(30)
	c.ToggleLock("VENUS", 1.4)
	c.ReleaseLock()

	if active := activeLocks(c); len(active) != 0 {
		t.Errorf("active locks after ReleaseLock = %v, want none", active)
	}
}

func TestLockMinZoomDistance(t *testing.T) {
	c := NewController(30)
	c.ToggleLock("SUN", 10)

	// Try to zoom far inside the body.
	for i := 0; i < 100; i++ {
		c.Zoom(-5)
	}
	for i := 0; i < 300; i++ {
		c.Update(mgl64.Vec3{}, true)
	}

	min := 10 * minDistanceFactor
	if c.Distance() < min-0.5 {
		t.Errorf("distance %v fell below min %v", c.Distance(), min)
	}
}

func TestRotationSmoothingConverges(t *testing.T) {
	c := NewController(30)
	startYaw := c.yaw

	c.StartDrag(10, 10)
	c.DragTo(40, 10)
	c.EndDrag()

	if c.targetYaw == startYaw {
		t.Fatal("drag should have moved the yaw target")
	}

	prevErr := math.Abs(c.targetYaw - c.yaw)
	for i := 0; i < 200; i++ {
		c.Update(mgl64.Vec3{}, false)
		err := math.Abs(c.targetYaw - c.yaw)
		if err > prevErr+1e-12 {
			t.Fatalf("frame %d: error grew from %v to %v", i, prevErr, err)
		}
		prevErr = err
	}

	if prevErr > 1e-3 {
		t.Errorf("yaw did not converge: residual %v", prevErr)
	}
}

func TestPitchClamp(t *testing.T) {
	c := NewController(30)

	c.StartDrag(0, 0)
	c.DragTo(0, 100000)
	if c.targetPitch > pitchLimit {
		t.Errorf("pitch %v above limit %v", c.targetPitch, pitchLimit)
	}

	c.DragTo(0, -200000)
	if c.targetPitch < -pitchLimit {
		t.Errorf("pitch %v below limit %v", c.targetPitch, -pitchLimit)
	}
}

func TestDragRequiresPress(t *testing.T) {
	c := NewController(30)
	before := c.targetYaw

	c.DragTo(500, 500)
	if c.targetYaw != before {
		t.Error("DragTo without StartDrag should be ignored")
	}
}

func TestMoveIgnoredWhileLocked(t *testing.T) {
	c := NewController(30)
	c.ToggleLock("EARTH", 1.5)

	before := c.Position()
	c.Move(1, 1, 1)
	if c.Position() != before {
		t.Error("Move should be ignored while a lock is active")
	}

	c.ReleaseLock()
	c.Move(1, 0, 0)
	if c.Position() == before {
		t.Error("Move should translate the free camera")
	}
}

func TestLockedCameraApproachesOrbitShell(t *testing.T) {
	c := NewController(30)
	c.ToggleLock("EARTH", 1.5)

	lockPos := mgl64.Vec3{38, 0, 0}
	for i := 0; i < 500; i++ {
		c.Update(lockPos, true)
	}

	got := c.Position().Sub(lockPos).Len()
	if math.Abs(got-c.Distance()) > 0.5 {
		t.Errorf("camera at %v from target, want orbit distance %v", got, c.Distance())
	}

	if c.LookTarget() != lockPos {
		t.Errorf("look target = %v, want %v", c.LookTarget(), lockPos)
	}
}

func TestFreeModeZoomDolliesCamera(t *testing.T) {
	c := NewController(30)
	c.Update(mgl64.Vec3{}, false)

	start := c.Position()
	forward := c.LookTarget().Sub(start).Normalize()

	for i := 0; i < 20; i++ {
		c.Zoom(-3)
	}
	for i := 0; i < 300; i++ {
		c.Update(mgl64.Vec3{}, false)
	}

	moved := c.Position().Sub(start)
	if moved.Len() < 1 {
		t.Fatalf("wheel zoom left the free camera at %v", c.Position())
	}
	if moved.Normalize().Dot(forward) < 0.99 {
		t.Errorf("zoom-in moved the camera off the view axis: %v", moved)
	}

	// Zooming back out reverses the dolly.
	mid := c.Position()
	for i := 0; i < 20; i++ {
		c.Zoom(3)
	}
	for i := 0; i < 300; i++ {
		c.Update(mgl64.Vec3{}, false)
	}
	if c.Position().Sub(mid).Normalize().Dot(forward) > -0.99 {
		t.Error("zoom-out should dolly the camera backward")
	}
}

func TestZoomClampedToMax(t *testing.T) {
	c := NewController(30)
	for i := 0; i < 200; i++ {
		c.Zoom(10)
	}
	if c.targetDistance > maxDistance {
		t.Errorf("target distance %v above max %v", c.targetDistance, maxDistance)
	}
}

func TestViewMatrixFinite(t *testing.T) {
	c := NewController(30)
	c.Update(mgl64.Vec3{}, false)

	view := c.View()
	for i := 0; i < 16; i++ {
		if math.IsNaN(view[i]) || math.IsInf(view[i], 0) {
			t.Fatalf("view matrix element %d is not finite: %v", i, view[i])
		}
	}
}
