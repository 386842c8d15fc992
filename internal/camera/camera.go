// Package camera implements the orbit/fly camera controller: smoothed
// drag rotation, per-body lock with mutual exclusion, spring-damped zoom,
// and free-flight translation.
package camera

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// Exponential smoothing factor applied to rotation each frame.
	rotSmoothing = 0.05

	// Lerp factor pulling the camera toward its ideal locked position.
	lockLerp = 0.1

	// Pitch stays strictly inside ±π/2 so the view basis never degenerates.
	pitchLimit = math.Pi/2 - 0.01

	dragSensitivity = 0.02
	zoomStepFactor  = 1.15
	moveStep        = 4.0

	// Minimum orbit distance as a multiple of the locked body's radius.
	minDistanceFactor = 2.5

	defaultDistance    = 160.0
	defaultMinDistance = 1.0
	maxDistance        = 2000.0

	// Spring tuning for zoom: critically damped, settles in well under a second.
	zoomSpringFrequency = 6.0
	zoomSpringDamping   = 1.0
)

// Controller holds all camera state. It is not safe for concurrent use;
// the UI event loop is its only caller.
type Controller struct {
	pos        mgl64.Vec3
	lookTarget mgl64.Vec3

	yaw, pitch             float64 // smoothed
	targetYaw, targetPitch float64

	distance       float64 // smoothed orbit distance
	targetDistance float64
	distVelocity   float64
	minDistance    float64
	spring         harmonica.Spring

	locks      map[string]bool
	lockedCode string

	dragging     bool
	dragX, dragY int
}

// NewController creates a camera looking at the origin from above the
// ecliptic plane.
func NewController(fps int) *Controller {
	if fps <= 0 {
		fps = 30
	}
	c := &Controller{
		pos:            mgl64.Vec3{0, 60, 150},
		distance:       defaultDistance,
		targetDistance: defaultDistance,
		minDistance:    defaultMinDistance,
		spring:         harmonica.NewSpring(harmonica.FPS(fps), zoomSpringFrequency, zoomSpringDamping),
		locks:          make(map[string]bool),
	}
	// Initial orientation points at the origin.
	dir := mgl64.Vec3{0, 0, 0}.Sub(c.pos).Normalize()
	c.yaw = math.Atan2(dir.Z(), dir.X())
	c.pitch = math.Asin(dir.Y())
	c.targetYaw = c.yaw
	c.targetPitch = c.pitch
	return c
}

// StartDrag begins a pointer drag at the given cell coordinates.
func (c *Controller) StartDrag(x, y int) {
	c.dragging = true
	c.dragX = x
	c.dragY = y
}

// DragTo accumulates rotation from pointer motion while dragging.
func (c *Controller) DragTo(x, y int) {
	if !c.dragging {
		return
	}
	dx := x - c.dragX
	dy := y - c.dragY
	c.dragX = x
	c.dragY = y

	c.targetYaw += float64(dx) * dragSensitivity
	// Terminal cells are about twice as tall as wide, so vertical motion
	// counts double.
	c.targetPitch += float64(dy) * dragSensitivity * 2
	c.targetPitch = clamp(c.targetPitch, -pitchLimit, pitchLimit)
}

// EndDrag finishes a pointer drag.
func (c *Controller) EndDrag() {
	c.dragging = false
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// Zoom moves the target orbit distance by a number of wheel steps.
// Negative steps zoom in. The smoothed distance follows via the spring.
func (c *Controller) Zoom(steps int) {
	factor := math.Pow(zoomStepFactor, float64(steps))
	c.targetDistance = clamp(c.targetDistance*factor, c.minDistance, maxDistance)
}

// ToggleLock enables the lock on the body with the given code, clearing
// every other lock, or releases it if it was already active. The minimum
// zoom distance is recomputed from the body's display radius. Returns true
// if the lock is active after the call.
func (c *Controller) ToggleLock(code string, bodyRadius float64) bool {
	if c.locks[code] {
		c.locks[code] = false
		c.lockedCode = ""
		c.minDistance = defaultMinDistance
		return false
	}

	for k := range c.locks {
		c.locks[k] = false
	}
	c.locks[code] = true
	c.lockedCode = code

	c.minDistance = bodyRadius * minDistanceFactor
	if c.minDistance < defaultMinDistance {
		c.minDistance = defaultMinDistance
	}
	if c.targetDistance < c.minDistance {
		c.targetDistance = c.minDistance
	}
	// Start the approach from a comfortable framing distance.
	if c.targetDistance > c.minDistance*8 {
		c.targetDistance = c.minDistance * 8
	}
	return true
}

// ReleaseLock clears any active lock.
func (c *Controller) ReleaseLock() {
	for k := range c.locks {
		c.locks[k] = false
	}
	c.lockedCode = ""
	c.minDistance = defaultMinDistance
}

// Locked returns the active lock target code, if any.
func (c *Controller) Locked() (string, bool) {
	return c.lockedCode, c.lockedCode != ""
}

// Locks returns a copy of the lock map.
func (c *Controller) Locks() map[string]bool {
	out := make(map[string]bool, len(c.locks))
	for k, v := range c.locks {
		out[k] = v
	}
	return out
}

// Move translates the free camera: forward/strafe along the view heading,
// vertical along world Y. Ignored while a lock is active.
func (c *Controller) Move(forward, strafe, vertical float64) {
	if c.lockedCode != "" {
		return
	}

	heading := mgl64.Vec3{math.Cos(c.yaw), 0, math.Sin(c.yaw)}
	right := mgl64.Vec3{-math.Sin(c.yaw), 0, math.Cos(c.yaw)}

	delta := heading.Mul(forward * moveStep).
		Add(right.Mul(strafe * moveStep)).
		Add(mgl64.Vec3{0, vertical * moveStep, 0})
	c.pos = c.pos.Add(delta)
}

// Update advances the smoothed rotation and distance one frame and
// recomputes the camera position. lockPos is the live position of the
// locked body and is ignored when hasLock is false.
func (c *Controller) Update(lockPos mgl64.Vec3, hasLock bool) {
	c.yaw += (c.targetYaw - c.yaw) * rotSmoothing
	c.pitch += (c.targetPitch - c.pitch) * rotSmoothing

	prevDistance := c.distance
	c.distance, c.distVelocity = c.spring.Update(c.distance, c.distVelocity, c.targetDistance)
	if c.distance < c.minDistance {
		c.distance = c.minDistance
	}

	if hasLock && c.lockedCode != "" {
		ideal := lockPos.Add(sphericalOffset(c.yaw, c.pitch, c.distance))
		c.pos = c.pos.Add(ideal.Sub(c.pos).Mul(lockLerp))
		c.lookTarget = lockPos
		return
	}

	forward := mgl64.Vec3{
		math.Cos(c.pitch) * math.Cos(c.yaw),
		math.Sin(c.pitch),
		math.Cos(c.pitch) * math.Sin(c.yaw),
	}
	// In free flight the wheel dollies the camera: each frame's smoothed
	// distance delta becomes translation along the view direction.
	c.pos = c.pos.Add(forward.Mul(prevDistance - c.distance))
	c.lookTarget = c.pos.Add(forward)
}

// Position returns the current camera position.
func (c *Controller) Position() mgl64.Vec3 {
	return c.pos
}

// LookTarget returns the current look-at point.
func (c *Controller) LookTarget() mgl64.Vec3 {
	return c.lookTarget
}

// Distance returns the smoothed orbit distance.
func (c *Controller) Distance() float64 {
	return c.distance
}

// View returns the view matrix for the current pose.
func (c *Controller) View() mgl64.Mat4 {
	up := mgl64.Vec3{0, 1, 0}
	target := c.lookTarget
	if target.Sub(c.pos).Len() < 1e-9 {
		target = c.pos.Add(mgl64.Vec3{0, 0, -1})
	}
	return mgl64.LookAtV(c.pos, target, up)
}

// sphericalOffset converts yaw/pitch/distance to a camera offset from the
// orbit center.
func sphericalOffset(yaw, pitch, d float64) mgl64.Vec3 {
	return mgl64.Vec3{
		d * math.Cos(pitch) * math.Cos(yaw),
		d * math.Sin(pitch),
		d * math.Cos(pitch) * math.Sin(yaw),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
