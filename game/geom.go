package game

import "math"

// Vec2 is a 2D point or displacement in playfield coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Normalize returns the unit vector pointing from (0,0) toward v.
// The zero vector normalizes to (0,0); there is no division by zero.
func Normalize(v Vec2) Vec2 {
	mag := math.Hypot(v.X, v.Y)
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{v.X / mag, v.Y / mag}
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampToBounds keeps p inside the w×h playfield.
func clampToBounds(p Vec2, w, h float64) Vec2 {
	return Vec2{Clamp(p.X, 0, w), Clamp(p.Y, 0, h)}
}
