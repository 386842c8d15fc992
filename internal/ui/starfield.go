package ui

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Star is a cataloged background star.
type Star struct {
	Name   string
	RAdeg  float64 // right ascension, degrees (J2000)
	DecDeg float64 // declination, degrees (J2000)
	Mag    float64 // apparent visual magnitude, lower is brighter
}

// Direction returns the star's unit direction in scene coordinates, with
// RA sweeping the ecliptic (XZ) plane and Dec lifting toward +Y.
func (s Star) Direction() mgl64.Vec3 {
	ra := s.RAdeg * math.Pi / 180
	dec := s.DecDeg * math.Pi / 180
	return mgl64.Vec3{
		math.Cos(dec) * math.Cos(ra),
		math.Sin(dec),
		math.Cos(dec) * math.Sin(ra),
	}
}

// starShellRadius is the distance at which background stars are pinned.
// Far enough that camera translation never visibly parallaxes them.
const starShellRadius = 5000.0

// brightStars is a subset of the Yale Bright Star Catalog covering both
// hemispheres, ordered roughly by magnitude.
var brightStars = []Star{
	{"Sirius", 101.287, -16.716, -1.46},
	{"Canopus", 95.988, -52.696, -0.74},
	{"Arcturus", 213.915, 19.182, -0.05},
	{"Vega", 279.235, 38.784, 0.03},
	{"Capella", 79.172, 45.998, 0.08},
	{"Rigel", 78.634, -8.202, 0.13},
	{"Procyon", 114.826, 5.225, 0.34},
	{"Achernar", 24.429, -57.237, 0.46},
	{"Betelgeuse", 88.793, 7.407, 0.50},
	{"Hadar", 210.956, -60.373, 0.61},
	{"Altair", 297.696, 8.868, 0.76},
	{"Acrux", 186.650, -63.099, 0.76},
	{"Aldebaran", 68.980, 16.509, 0.85},
	{"Antares", 247.352, -26.432, 0.96},
	{"Spica", 201.298, -11.161, 0.97},
	{"Pollux", 116.329, 28.026, 1.14},
	{"Fomalhaut", 344.413, -29.622, 1.16},
	{"Deneb", 310.358, 45.280, 1.25},
	{"Mimosa", 191.930, -59.689, 1.25},
	{"Regulus", 152.093, 11.967, 1.35},
	{"Adhara", 104.656, -28.972, 1.50},
	{"Castor", 113.650, 31.889, 1.58},
	{"Gacrux", 187.791, -57.113, 1.63},
	{"Shaula", 263.402, -37.104, 1.63},
	{"Bellatrix", 81.283, 6.350, 1.64},
	{"Elnath", 81.573, 28.608, 1.65},
	{"Miaplacidus", 138.300, -69.717, 1.68},
	{"Alnilam", 84.053, -1.202, 1.69},
	{"Alnair", 332.058, -46.961, 1.74},
	{"Alnitak", 85.190, -1.943, 1.77},
	{"Alioth", 193.507, 55.960, 1.77},
	{"Dubhe", 165.932, 61.751, 1.79},
	{"Mirfak", 51.081, 49.861, 1.79},
	{"Wezen", 107.098, -26.393, 1.84},
	{"Kaus Australis", 276.043, -34.384, 1.85},
	{"Avior", 125.629, -59.509, 1.86},
	{"Alkaid", 206.885, 49.313, 1.86},
	{"Menkalinan", 89.882, 44.948, 1.90},
	{"Atria", 252.166, -69.028, 1.92},
	{"Alhena", 99.428, 16.399, 1.93},
	{"Peacock", 306.412, -56.735, 1.94},
	{"Mirzam", 95.675, -17.956, 1.98},
	{"Alphard", 141.897, -8.659, 2.00},
	{"Polaris", 37.954, 89.264, 2.02},
	{"Hamal", 31.793, 23.462, 2.00},
	{"Diphda", 10.897, -17.987, 2.02},
	{"Nunki", 283.816, -26.297, 2.05},
	{"Menkent", 211.671, -36.370, 2.06},
	{"Alpheratz", 2.097, 29.090, 2.06},
	{"Mirach", 17.433, 35.621, 2.05},
	{"Rasalhague", 263.734, 12.560, 2.07},
	{"Kochab", 222.676, 74.156, 2.08},
	{"Saiph", 86.939, -9.670, 2.09},
	{"Denebola", 177.265, 14.572, 2.11},
	{"Algol", 47.042, 40.956, 2.12},
	{"Tiaki", 340.667, -46.885, 2.11},
	{"Muhlifain", 190.379, -48.960, 2.17},
	{"Aspidiske", 139.273, -59.275, 2.21},
	{"Suhail", 136.999, -43.433, 2.21},
	{"Alphecca", 233.672, 26.715, 2.23},
	{"Mintaka", 83.002, -0.299, 2.23},
	{"Sadr", 305.557, 40.257, 2.23},
	{"Eltanin", 269.152, 51.489, 2.23},
	{"Schedar", 10.127, 56.537, 2.24},
	{"Naos", 120.896, -40.003, 2.25},
	{"Almach", 30.975, 42.330, 2.26},
	{"Caph", 2.295, 59.150, 2.27},
}

// starGlyph maps magnitude to a background glyph; very dim stars are
// skipped to keep the canvas readable.
func starGlyph(mag float64) rune {
	switch {
	case mag <= 1.0:
		return '✦'
	case mag <= 2.0:
		return '·'
	default:
		return '˙'
	}
}
