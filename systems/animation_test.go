package systems

import (
	"testing"

	"github.com/automoto/homestead/assets/animations"
	"github.com/automoto/homestead/components"
	"github.com/automoto/homestead/systems/factory"
	"github.com/yohamta/donburi/features/math"
)

func TestUpdateAnimationFromVelocity(t *testing.T) {
	tw := newTestWorld(t, emptyLayout(8))
	tw.setDelta(0.2)
	cycle := components.Animation.Get(tw.player).Cycle
	sprite := components.Sprite.Get(tw.player)

	components.Velocity.Get(tw.player).X = 75
	cycle.Facing = animations.FacingRight

	for i, want := range []int{1, 2, 3, 0} {
		UpdateAnimation(tw.w)
		if sprite.Index != 8+want {
			t.Fatalf("tick %d: index = %d, want %d", i, sprite.Index, 8+want)
		}
	}

	UpdateAnimation(tw.w)
	components.Velocity.Get(tw.player).X = 0
	tw.setDelta(0.01)
	UpdateAnimation(tw.w)
	if sprite.Index != 8 {
		t.Fatalf("index = %d after stopping, want idle frame 8", sprite.Index)
	}
}

func TestUpdateAnimationFromMotion(t *testing.T) {
	tw := newTestWorld(t, emptyLayout(8))
	villager := factory.CreateVillager(tw.w, math.Vec2{X: 10, Y: 10}, math.Vec2{X: 100, Y: 10})
	sprite := components.Sprite.Get(villager)
	cycle := components.Animation.Get(villager).Cycle
	cycle.Facing = animations.FacingUp
	sprite.Index = 13

	tw.setDelta(0.2)
	UpdateAnimation(tw.w)
	if sprite.Index != 0 {
		t.Fatalf("first tick index = %d, want 0", sprite.Index)
	}
	if !components.PreviousPosition.Get(villager).Valid {
		t.Fatalf("first tick did not record a position")
	}

	components.Transform.Get(villager).Local.X = 20
	UpdateAnimation(tw.w)
	if cycle.Facing != animations.FacingRight || cycle.Step != 1 {
		t.Fatalf("facing = %v step = %d, want right step 1", cycle.Facing, cycle.Step)
	}
	if sprite.Index != 9 {
		t.Fatalf("index = %d, want 9", sprite.Index)
	}

	// Standing still resets to the idle frame of the same row.
	UpdateAnimation(tw.w)
	if sprite.Index != 8 {
		t.Fatalf("index = %d when still, want 8", sprite.Index)
	}
}

func TestUpdateAnimationWithoutTime(t *testing.T) {
	tw := newTestWorld(t, emptyLayout(8))
	tw.w.Remove(tw.frame.Entity())
	sprite := components.Sprite.Get(tw.player)
	sprite.Index = 5
	UpdateAnimation(tw.w)
	if sprite.Index != 5 {
		t.Fatalf("index changed to %d without a frame time", sprite.Index)
	}
}
