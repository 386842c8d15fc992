// Package body defines the celestial bodies of the scene and their motion.
package body

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind classifies a body for rendering.
type Kind int

const (
	KindStar Kind = iota
	KindRocky
	KindGiant
)

func (k Kind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindRocky:
		return "rocky"
	case KindGiant:
		return "giant"
	default:
		return "unknown"
	}
}

// Orbit describes a fixed-radius circular orbit in the ecliptic (XZ) plane.
// A zero-radius orbit pins the body to its center.
type Orbit struct {
	Center mgl64.Vec3
	Radius float64
	Speed  float64 // angular speed in radians per simulation second
	Epoch  float64 // angle at t=0
}

// AngleAt returns the orbital angle at simulation time t, normalized to [0, 2π).
func (o Orbit) AngleAt(t float64) float64 {
	a := math.Mod(o.Epoch+o.Speed*t, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// PositionAt returns the position on the orbit circle at simulation time t.
func (o Orbit) PositionAt(t float64) mgl64.Vec3 {
	if o.Radius == 0 {
		return o.Center
	}
	a := o.Epoch + o.Speed*t
	return mgl64.Vec3{
		o.Center.X() + o.Radius*math.Cos(a),
		o.Center.Y(),
		o.Center.Z() + o.Radius*math.Sin(a),
	}
}

// Body is a celestial body with fixed orbital and display parameters.
type Body struct {
	Name      string
	Code      string
	Kind      Kind
	Radius    float64 // display radius in scene units
	Orbit     Orbit
	SpinSpeed float64 // self-rotation in radians per simulation second
	HasRings  bool
	Color     string // hex color used by the renderer
}

// PositionAt returns the body's world position at simulation time t.
func (b Body) PositionAt(t float64) mgl64.Vec3 {
	return b.Orbit.PositionAt(t)
}

// SpinAt returns the self-rotation angle at simulation time t, in [0, 2π).
func (b Body) SpinAt(t float64) float64 {
	a := math.Mod(b.SpinSpeed*t, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// State is a body's pose at a single instant.
type State struct {
	Body Body
	Pos  mgl64.Vec3
	Spin float64
}

// System is an ordered collection of bodies.
type System struct {
	Bodies []Body
}

// StateAt computes the pose of every body at simulation time t.
func (s System) StateAt(t float64) []State {
	states := make([]State, len(s.Bodies))
	for i, b := range s.Bodies {
		states[i] = State{
			Body: b,
			Pos:  b.PositionAt(t),
			Spin: b.SpinAt(t),
		}
	}
	return states
}

// ByCode looks up a body by its short code.
func (s System) ByCode(code string) (Body, bool) {
	for _, b := range s.Bodies {
		if b.Code == code {
			return b, true
		}
	}
	return Body{}, false
}
