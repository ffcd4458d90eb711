package systems

import (
	"reflect"
	"testing"

	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/automoto/homestead/shared/leveldata"
)

func doorLayout() *leveldata.Layout {
	l := emptyLayout(16)
	l.Doors = []leveldata.Door{
		{ID: 3, Prop: -1, X: 100, Y: 100, Width: 12, Height: 8},
		{ID: 5, Prop: -1, X: 110, Y: 100, Width: 12, Height: 8},
		{ID: 9, Prop: -1, X: 400, Y: 400, Width: 12, Height: 8},
	}
	return l
}

func (tw *testWorld) doorEvents() []components.DoorEvent {
	return components.DoorEvents.Get(tw.frame).Events
}

func (tw *testWorld) doorsInRange() []int {
	return components.DoorsInRange.Get(tw.frame).Sorted()
}

// standOn puts the player's feet on (x, y).
func (tw *testWorld) standOn(x, y float64) {
	tw.movePlayer(x, y+cfg.Player.FeetOffset)
}

func TestUpdateDoorsEmitsTransitionsOnce(t *testing.T) {
	tw := newTestWorld(t, doorLayout())
	entered := func(id int) components.DoorEvent {
		return components.DoorEvent{Kind: components.EnteredDoorRange, DoorID: id}
	}
	left := func(id int) components.DoorEvent {
		return components.DoorEvent{Kind: components.LeftDoorRange, DoorID: id}
	}

	steps := []struct {
		name    string
		x, y    float64
		events  []components.DoorEvent
		inRange []int
	}{
		{"far_away", 250, 250, nil, []int{}},
		{"enter_first", 96, 98, []components.DoorEvent{entered(3)}, []int{3}},
		{"stay", 97, 98, nil, []int{3}},
		{"overlap_both", 105, 98, []components.DoorEvent{entered(5)}, []int{3, 5}},
		{"leave_first", 114, 98, []components.DoorEvent{left(3)}, []int{5}},
		{"leave_all", 250, 250, []components.DoorEvent{left(5)}, []int{}},
		{"still_away", 250, 251, nil, []int{}},
		{"jump_to_other", 400, 398, []components.DoorEvent{entered(9)}, []int{9}},
	}
	for _, s := range steps {
		tw.standOn(s.x, s.y)
		UpdateDoors(tw.w)

		got := tw.doorEvents()
		if len(got) != len(s.events) || (len(got) > 0 && !reflect.DeepEqual(got, s.events)) {
			t.Fatalf("%s: events = %+v, want %+v", s.name, got, s.events)
		}
		if ids := tw.doorsInRange(); !reflect.DeepEqual(ids, s.inRange) {
			t.Fatalf("%s: in range = %v, want %v", s.name, ids, s.inRange)
		}
	}
}

func TestUpdateDoorsTouchingEdgeIsOutOfRange(t *testing.T) {
	tw := newTestWorld(t, doorLayout())
	// Collider right edge exactly on the door's left edge.
	tw.standOn(94-cfg.Player.CollisionWidth/2, 98)
	UpdateDoors(tw.w)
	if len(tw.doorEvents()) != 0 {
		t.Fatalf("events = %+v for a touching collider", tw.doorEvents())
	}
}

func TestUpdateDoorsWithoutDoorsOrPlayer(t *testing.T) {
	tw := newTestWorld(t, emptyLayout(16))
	inRange := components.DoorsInRange.Get(tw.frame)
	inRange.IDs[42] = struct{}{}

	UpdateDoors(tw.w)
	if len(tw.doorEvents()) != 0 || !inRange.Has(42) {
		t.Fatalf("no doors: events = %+v, in range = %v", tw.doorEvents(), tw.doorsInRange())
	}

	tw = newTestWorld(t, doorLayout())
	tw.standOn(100, 98)
	UpdateDoors(tw.w)
	tw.w.Remove(tw.player.Entity())
	UpdateDoors(tw.w)
	if len(tw.doorEvents()) != 0 {
		t.Fatalf("no player: events = %+v", tw.doorEvents())
	}
	if ids := tw.doorsInRange(); !reflect.DeepEqual(ids, []int{3}) {
		t.Fatalf("no player: in range = %v, want [3] kept", ids)
	}
}
