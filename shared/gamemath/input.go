package gamemath

import (
	"math"

	"github.com/automoto/homestead/assets/animations"
	dmath "github.com/yohamta/donburi/features/math"
)

// DirectionKeys is the held state of the four movement directions.
type DirectionKeys struct {
	Left, Right, Up, Down bool
}

// Axis resolves a pair of opposing keys. Only one held key counts;
// both or neither give 0.
func Axis(negative, positive bool) float64 {
	if negative == positive {
		return 0
	}
	if positive {
		return 1
	}
	return -1
}

// KeyboardDirection returns the unit direction for the held keys, or zero.
// Up is +Y.
func KeyboardDirection(k DirectionKeys) dmath.Vec2 {
	return Normalize(dmath.Vec2{
		X: Axis(k.Left, k.Right),
		Y: Axis(k.Down, k.Up),
	})
}

// WindowDiagonal returns the diagonal length of a w by h window.
func WindowDiagonal(w, h float64) float64 {
	return math.Hypot(w, h)
}

// PointerDirection turns a drag from anchor to cursor (window pixels, y down)
// into a world direction of length at most 1. The drag is divided by the
// window diagonal so the same hand movement means the same thing at any
// resolution. A zero-sized window gives zero.
func PointerDirection(anchor, cursor dmath.Vec2, w, h, sensitivity float64) dmath.Vec2 {
	diag := WindowDiagonal(w, h)
	if diag == 0 {
		return dmath.Vec2{}
	}
	d := dmath.Vec2{
		X: (cursor.X - anchor.X) / diag * sensitivity,
		Y: -(cursor.Y - anchor.Y) / diag * sensitivity,
	}
	return ClampLength(d, 1)
}

// FacingFor picks the sprite row for a direction. The dominant axis wins and
// a tie goes to the vertical axis. A zero direction keeps current.
func FacingFor(v dmath.Vec2, current animations.Facing) animations.Facing {
	ax, ay := math.Abs(v.X), math.Abs(v.Y)
	if ax == 0 && ay == 0 {
		return current
	}
	if ax > ay {
		if v.X < 0 {
			return animations.FacingLeft
		}
		return animations.FacingRight
	}
	if v.Y > 0 {
		return animations.FacingUp
	}
	return animations.FacingDown
}
