package body

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Orbital speeds fall off with distance so the inner system visibly laps the
// outer one, but they are not Keplerian. Display radii and orbit radii are
// scene units tuned for legibility, not to scale.
var solarBodies = []Body{
	{
		Name:      "Sun",
		Code:      "SUN",
		Kind:      KindStar,
		Radius:    10,
		SpinSpeed: 0.04,
		Color:     hcl(75, 0.9, 0.95),
	},
	{
		Name:      "Mercury",
		Code:      "MERCURY",
		Kind:      KindRocky,
		Radius:    0.8,
		Orbit:     Orbit{Radius: 20, Speed: 0.48, Epoch: epochAngle(1)},
		SpinSpeed: 0.02,
		Color:     hcl(60, 0.05, 0.62),
	},
	{
		Name:      "Venus",
		Code:      "VENUS",
		Kind:      KindRocky,
		Radius:    1.4,
		Orbit:     Orbit{Radius: 28, Speed: 0.35, Epoch: epochAngle(2)},
		SpinSpeed: 0.01,
		Color:     hcl(85, 0.35, 0.82),
	},
	{
		Name:      "Earth",
		Code:      "EARTH",
		Kind:      KindRocky,
		Radius:    1.5,
		Orbit:     Orbit{Radius: 38, Speed: 0.30, Epoch: epochAngle(3)},
		SpinSpeed: 0.6,
		Color:     hcl(250, 0.55, 0.55),
	},
	{
		Name:      "Mars",
		Code:      "MARS",
		Kind:      KindRocky,
		Radius:    1.1,
		Orbit:     Orbit{Radius: 48, Speed: 0.24, Epoch: epochAngle(4)},
		SpinSpeed: 0.58,
		Color:     hcl(35, 0.7, 0.55),
	},
	{
		Name:      "Jupiter",
		Code:      "JUPITER",
		Kind:      KindGiant,
		Radius:    4.5,
		Orbit:     Orbit{Radius: 70, Speed: 0.13, Epoch: epochAngle(5)},
		SpinSpeed: 1.4,
		Color:     hcl(55, 0.45, 0.72),
	},
	{
		Name:      "Saturn",
		Code:      "SATURN",
		Kind:      KindGiant,
		Radius:    4.0,
		Orbit:     Orbit{Radius: 90, Speed: 0.10, Epoch: epochAngle(6)},
		SpinSpeed: 1.3,
		HasRings:  true,
		Color:     hcl(70, 0.4, 0.78),
	},
	{
		Name:      "Uranus",
		Code:      "URANUS",
		Kind:      KindGiant,
		Radius:    2.8,
		Orbit:     Orbit{Radius: 110, Speed: 0.07, Epoch: epochAngle(7)},
		SpinSpeed: 0.9,
		Color:     hcl(200, 0.45, 0.72),
	},
	{
		Name:      "Neptune",
		Code:      "NEPTUNE",
		Kind:      KindGiant,
		Radius:    2.7,
		Orbit:     Orbit{Radius: 128, Speed: 0.054, Epoch: epochAngle(8)},
		SpinSpeed: 0.95,
		Color:     hcl(240, 0.5, 0.5),
	},
}

// Solar returns the nine-body solar system catalog.
func Solar() System {
	bodies := make([]Body, len(solarBodies))
	copy(bodies, solarBodies)
	return System{Bodies: bodies}
}

// epochAngle spreads starting angles by the golden angle so bodies never
// begin lined up.
func epochAngle(i int) float64 {
	return math.Mod(float64(i)*2.39996, 2*math.Pi)
}

// hcl renders an HCL color to a hex string for lipgloss.
func hcl(h, c, l float64) string {
	return colorful.Hcl(h, c, l).Clamped().Hex()
}
