package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vertical field of view of the scene camera.
const FOVY = 55 * math.Pi / 180

const (
	nearPlane = 0.1
	farPlane  = 10000.0

	// A terminal cell is roughly twice as tall as it is wide.
	cellAspect = 0.5
)

// Tracker half-size clamp in cells. Keeps marker boxes readable on distant
// bodies without swallowing the canvas on close ones.
const (
	MinTrackerSize = 1.0
	MaxTrackerSize = 9.0
)

// Projector maps world positions into cell coordinates for one frame.
// Build a fresh one per frame from the current camera pose and canvas size.
type Projector struct {
	view   mgl64.Mat4
	proj   mgl64.Mat4
	camPos mgl64.Vec3
	width  int
	height int
}

// NewProjector builds the view-projection for the given canvas size.
func NewProjector(c *Controller, width, height int) Projector {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	aspect := float64(width) * cellAspect / float64(height)
	return Projector{
		view:   c.View(),
		proj:   mgl64.Perspective(FOVY, aspect, nearPlane, farPlane),
		camPos: c.Position(),
		width:  width,
		height: height,
	}
}

// Project maps a world position to cell coordinates with the origin at the
// top-left. ok is false for points behind the camera or with a non-finite
// projection; coordinates outside the canvas are still returned so callers
// can clip polylines against an extended margin.
func (p Projector) Project(world mgl64.Vec3) (x, y int, ok bool) {
	viewPos := p.view.Mul4x1(world.Vec4(1))
	if viewPos.Z() >= -nearPlane {
		return 0, 0, false
	}

	win := mgl64.Project(world, p.view, p.proj, 0, 0, p.width, p.height)
	if !isFinite(win.X()) || !isFinite(win.Y()) {
		return 0, 0, false
	}

	// Window coordinates grow upward; the canvas grows downward.
	return int(math.Round(win.X())), p.height - 1 - int(math.Round(win.Y())), true
}

// ApparentSize returns the on-screen half-size in cells of a sphere with
// the given radius at the given world position. The result shrinks
// monotonically with camera distance and is clamped to
// [MinTrackerSize, MaxTrackerSize].
func (p Projector) ApparentSize(world mgl64.Vec3, radius float64) float64 {
	dist := world.Sub(p.camPos).Len()
	if dist <= 0 {
		return MaxTrackerSize
	}

	size := radius / (dist * math.Tan(FOVY/2)) * float64(p.height) / 2
	if size < MinTrackerSize {
		return MinTrackerSize
	}
	if size > MaxTrackerSize {
		return MaxTrackerSize
	}
	return size
}

// CameraDistance returns the distance from the camera to a world position.
func (p Projector) CameraDistance(world mgl64.Vec3) float64 {
	return world.Sub(p.camPos).Len()
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
