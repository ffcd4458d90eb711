// Package gamemath holds the engine-free math shared by the movement,
// camera and depth systems.
package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Length returns the euclidean length of v.
func Length(v dmath.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func Normalize(v dmath.Vec2) dmath.Vec2 {
	l := Length(v)
	if l == 0 {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: v.X / l, Y: v.Y / l}
}

// ClampLength shortens v to max if it is longer.
func ClampLength(v dmath.Vec2, max float64) dmath.Vec2 {
	l := Length(v)
	if l <= max || l == 0 {
		return v
	}
	return dmath.Vec2{X: v.X / l * max, Y: v.Y / l * max}
}

// Scale multiplies both components of v by s.
func Scale(v dmath.Vec2, s float64) dmath.Vec2 {
	return dmath.Vec2{X: v.X * s, Y: v.Y * s}
}

// IsZero reports whether both components are exactly zero.
func IsZero(v dmath.Vec2) bool {
	return v.X == 0 && v.Y == 0
}
