package render

import (
	"testing"

	"github.com/automoto/homestead/components"
	"github.com/automoto/homestead/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func TestViewToScreenFlipsY(t *testing.T) {
	v := View{Camera: math.Vec2{X: 100, Y: 100}, Scale: 2, Width: 800, Height: 600}

	tests := []struct {
		name   string
		world  math.Vec2
		sx, sy float64
	}{
		{"camera centre", math.Vec2{X: 100, Y: 100}, 400, 300},
		{"right of camera", math.Vec2{X: 110, Y: 100}, 420, 300},
		{"above camera", math.Vec2{X: 100, Y: 110}, 400, 280},
		{"below camera", math.Vec2{X: 100, Y: 90}, 400, 320},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := v.ToScreen(tt.world)
			if x != tt.sx || y != tt.sy {
				t.Fatalf("ToScreen(%v) = (%v, %v), want (%v, %v)", tt.world, x, y, tt.sx, tt.sy)
			}
		})
	}
}

func TestViewVisible(t *testing.T) {
	v := View{Camera: math.Vec2{X: 0, Y: 0}, Scale: 1, Width: 100, Height: 100}
	if !v.Visible(math.Vec2{X: 0, Y: 0}, 10, 10) {
		t.Fatalf("centre box should be visible")
	}
	if !v.Visible(math.Vec2{X: 54, Y: 0}, 10, 10) {
		t.Fatalf("box straddling the right edge should be visible")
	}
	if v.Visible(math.Vec2{X: 200, Y: 0}, 10, 10) {
		t.Fatalf("far box should be culled")
	}
}

func TestViewForNeedsScaledCamera(t *testing.T) {
	w := donburi.NewWorld()
	if _, ok := ViewFor(w, 800, 600); ok {
		t.Fatalf("view without a camera")
	}
	cam := factory.CreateCamera(w, math.Vec2{X: 5, Y: 6})
	components.Camera.Get(cam).Scale = 0
	if _, ok := ViewFor(w, 800, 600); ok {
		t.Fatalf("view with an unscaled camera")
	}
	components.Camera.Get(cam).Scale = 3
	v, ok := ViewFor(w, 800, 600)
	if !ok || v.Scale != 3 || v.Camera.X != 5 || v.Width != 800 {
		t.Fatalf("ViewFor = %+v, %v", v, ok)
	}
}

func TestDrawOrderBackToFront(t *testing.T) {
	w := donburi.NewWorld()
	spawn := func(depth float64) *donburi.Entry {
		e := w.Entry(w.Create(components.Transform, components.Sprite, components.ZSync))
		components.ZSync.Get(e).Depth = depth
		return e
	}
	front := spawn(9.9)
	back := spawn(9.5)
	tieA := spawn(9.7)
	tieB := spawn(9.7)
	// no sprite, never drawn
	w.Entry(w.Create(components.Transform, components.ZSync))

	got := DrawOrder(w)
	want := []*donburi.Entry{back, tieA, tieB, front}
	if len(got) != len(want) {
		t.Fatalf("draw order has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Entity() != want[i].Entity() {
			t.Fatalf("draw order[%d] = %v, want %v", i, got[i].Entity(), want[i].Entity())
		}
	}
}
