package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Rect is an axis-aligned rectangle in world units.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Center returns the midpoint of r.
func (r Rect) Center() dmath.Vec2 {
	return dmath.Vec2{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p dmath.Vec2) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// SnapScale maps a raw zoom onto the fixed zoom tiers: integers above 2,
// then 1.5 and 1. Anything at or below 1 is left alone.
func SnapScale(s float64) float64 {
	switch {
	case s > 2:
		return math.Floor(s)
	case s > 1.5:
		return 1.5
	case s > 1:
		return 1
	}
	return s
}

// CameraScale returns the snapped zoom for a window. It is 0 for a
// zero-sized window or a non-positive reference diagonal.
func CameraScale(w, h, diagonalReference float64) float64 {
	if diagonalReference <= 0 {
		return 0
	}
	return SnapScale(WindowDiagonal(w, h) / diagonalReference)
}

// ViewHalfExtents returns half the visible world area for a window at scale.
func ViewHalfExtents(w, h, scale float64) (halfW, halfH float64) {
	if scale <= 0 {
		return 0, 0
	}
	return w / 2 / scale, h / 2 / scale
}

// DeadZone returns the half sizes, in world units, of the box around the
// camera centre that the target can move in without panning. The sprite
// plus padding must stay on screen, so the box shrinks by that amount on
// each side. It never goes negative.
func DeadZone(w, h, spriteW, spriteH, padding, scale float64) (halfW, halfH float64) {
	if scale <= 0 {
		return 0, 0
	}
	halfW = (w/2 - (spriteW/2+padding)*scale) / scale
	halfH = (h/2 - (spriteH/2+padding)*scale) / scale
	return math.Max(halfW, 0), math.Max(halfH, 0)
}

// FollowDeadZone moves the camera just enough to put target back on the
// dead zone edge when it has left the zone.
func FollowDeadZone(camera, target dmath.Vec2, halfW, halfH float64) dmath.Vec2 {
	if target.X > camera.X+halfW {
		camera.X = target.X - halfW
	} else if target.X < camera.X-halfW {
		camera.X = target.X + halfW
	}
	if target.Y > camera.Y+halfH {
		camera.Y = target.Y - halfH
	} else if target.Y < camera.Y-halfH {
		camera.Y = target.Y + halfH
	}
	return camera
}

// ClampToBounds keeps the view of half size (halfW, halfH) around camera
// inside bounds. On an axis where the view is larger than the bounds the
// camera is centred on the bounds instead.
func ClampToBounds(camera dmath.Vec2, bounds Rect, halfW, halfH float64) dmath.Vec2 {
	centre := bounds.Center()
	if bounds.Width() <= 2*halfW {
		camera.X = centre.X
	} else {
		camera.X = Clamp(camera.X, bounds.MinX+halfW, bounds.MaxX-halfW)
	}
	if bounds.Height() <= 2*halfH {
		camera.Y = centre.Y
	} else {
		camera.Y = Clamp(camera.Y, bounds.MinY+halfH, bounds.MaxY-halfH)
	}
	return camera
}
