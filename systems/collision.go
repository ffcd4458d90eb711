package systems

import (
	"math"

	"github.com/automoto/homestead/components"
	"github.com/automoto/homestead/shared/gamemath"
	"github.com/automoto/homestead/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateMovement integrates velocity over the frame time, one axis at a
// time so the player slides along prop footprints, then keeps the anchor
// inside the map.
func UpdateMovement(w donburi.World) {
	t, ok := first(w, components.Time)
	if !ok {
		return
	}
	level, hasLevel := first(w, components.Level)

	tags.Player.Each(w, func(e *donburi.Entry) {
		vel := components.Velocity.Get(e)
		obj := components.Object.Get(e)

		resolveHorizontal(obj.Object, vel.X*t.Delta)
		resolveVertical(obj.Object, vel.Y*t.Delta)

		anchor := obj.Anchor()
		if hasLevel {
			anchor.X = gamemath.Clamp(anchor.X, level.Bounds.MinX, level.Bounds.MaxX)
			anchor.Y = gamemath.Clamp(anchor.Y, level.Bounds.MinY, level.Bounds.MaxY)
		}
		obj.MoveAnchorTo(anchor)
	})
}

// resolveHorizontal moves object by dx, stopping flush against the nearest
// solid ahead of it. Solids it already overlaps do not block, so an entity
// placed inside one can walk out.
func resolveHorizontal(object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}
	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if object.Y+object.H <= solid.Y || object.Y >= solid.Y+solid.H {
				continue // no vertical overlap
			}
			if dx > 0 && solid.X >= object.X+object.W {
				dx = math.Min(dx, solid.X-(object.X+object.W))
			} else if dx < 0 && solid.X+solid.W <= object.X {
				dx = math.Max(dx, solid.X+solid.W-object.X)
			}
		}
	}
	object.X += dx
	object.Update()
}

// resolveVertical is resolveHorizontal for the Y axis.
func resolveVertical(object *resolv.Object, dy float64) {
	if dy == 0 {
		return
	}
	if check := object.Check(0, dy, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if object.X+object.W <= solid.X || object.X >= solid.X+solid.W {
				continue // no horizontal overlap
			}
			if dy > 0 && solid.Y >= object.Y+object.H {
				dy = math.Min(dy, solid.Y-(object.Y+object.H))
			} else if dy < 0 && solid.Y+solid.H <= object.Y {
				dy = math.Max(dy, solid.Y+solid.H-object.Y)
			}
		}
	}
	object.Y += dy
	object.Update()
}

// overlaps reports whether two colliders share any area. Touching edges do
// not count.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}
