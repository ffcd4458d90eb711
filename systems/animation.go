package systems

import (
	"github.com/automoto/homestead/assets/animations"
	"github.com/automoto/homestead/components"
	"github.com/automoto/homestead/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// UpdateAnimation steps every walk cycle by the frame time and writes the
// resulting sheet index into the sprite. Entities with a Velocity animate
// from it; entities moved from outside animate from how far they moved
// since the last tick.
func UpdateAnimation(w donburi.World) {
	t, ok := first(w, components.Time)
	if !ok {
		return
	}

	components.Animation.Each(w, func(e *donburi.Entry) {
		cycle := components.Animation.Get(e).Cycle
		if cycle == nil || !e.HasComponent(components.Sprite) {
			return
		}
		sprite := components.Sprite.Get(e)

		switch {
		case e.HasComponent(components.Velocity):
			vel := components.Velocity.Get(e)
			cycle.Update(t.Delta, !gamemath.IsZero(vel.Vec2))
		case e.HasComponent(components.PreviousPosition):
			if !stepFromMotion(e, cycle, t.Delta) {
				sprite.Index = 0
				return
			}
		default:
			cycle.Stop()
		}

		sprite.Index = cycle.Index()
	})
}

// stepFromMotion animates an entity from its position delta and records
// the position for the next tick. It reports false on the first tick,
// when there is nothing to compare against yet. Facing only turns when a
// step is taken so a villager pausing mid-leg keeps its row.
func stepFromMotion(e *donburi.Entry, cycle *animations.WalkCycle, dt float64) bool {
	prev := components.PreviousPosition.Get(e)
	pos := components.WorldPosition(e)
	if !prev.Valid {
		prev.Position = pos
		prev.Valid = true
		cycle.Stop()
		return false
	}

	delta := math.Vec2{X: pos.X - prev.Position.X, Y: pos.Y - prev.Position.Y}
	prev.Position = pos

	moving := !gamemath.IsZero(delta)
	if cycle.Update(dt, moving) && moving {
		cycle.Facing = gamemath.FacingFor(delta, cycle.Facing)
	}
	return true
}
