package systems

import (
	"testing"

	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/automoto/homestead/systems/factory"
	"github.com/yohamta/donburi/features/math"
)

func TestUpdateVillagersPatrolsBackAndForth(t *testing.T) {
	tw := newTestWorld(t, emptyLayout(16))
	cfg.Villager.PatrolDuration = 1
	villager := factory.CreateVillager(tw.w, math.Vec2{X: 10, Y: 50}, math.Vec2{X: 110, Y: 50})
	tr := components.Transform.Get(villager)
	v := components.Villager.Get(villager)

	tw.setDelta(0.5)
	UpdateVillagers(tw.w)
	if tr.Local.X <= 10 || tr.Local.X >= 110 || tr.Local.Y != 50 {
		t.Fatalf("mid-leg position = %+v", tr.Local)
	}

	tw.setDelta(0.6)
	UpdateVillagers(tw.w)
	if tr.Local.X != 110 {
		t.Fatalf("end of leg x = %v, want 110", tr.Local.X)
	}
	if v.Outbound {
		t.Fatalf("villager did not turn around")
	}

	tw.setDelta(1.5)
	UpdateVillagers(tw.w)
	if tr.Local.X != 10 || !v.Outbound {
		t.Fatalf("after return leg x = %v outbound = %v, want 10 and outbound", tr.Local.X, v.Outbound)
	}
}
