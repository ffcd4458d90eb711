package systems

import (
	"sort"

	"github.com/automoto/homestead/components"
	"github.com/automoto/homestead/logging"
	"github.com/automoto/homestead/tags"
	"github.com/yohamta/donburi"
)

// UpdateDoors rebuilds the set of doors the player overlaps and queues an
// event for every door whose state changed since the last pass.
func UpdateDoors(w donburi.World) {
	inRange, ok := first(w, components.DoorsInRange)
	if !ok {
		return
	}
	queue, ok := first(w, components.DoorEvents)
	if !ok {
		return
	}
	queue.Events = queue.Events[:0]

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	if _, ok := tags.Door.First(w); !ok {
		return
	}

	playerObj := components.Object.Get(playerEntry)
	current := make(map[int]struct{})

	if check := playerObj.Check(0, 0, tags.ResolvDoor); check != nil {
		for _, doorObj := range check.ObjectsByTags(tags.ResolvDoor) {
			doorEntry, ok := doorObj.Data.(*donburi.Entry)
			if !ok || doorEntry == nil || !doorEntry.Valid() {
				continue
			}
			// Check is a cell broadphase; confirm the boxes really overlap.
			if !overlaps(playerObj.Object, doorObj) {
				continue
			}
			current[components.Door.Get(doorEntry).ID] = struct{}{}
		}
	}

	for _, id := range sortedIDs(current) {
		if !inRange.Has(id) {
			queue.Events = append(queue.Events, components.DoorEvent{Kind: components.EnteredDoorRange, DoorID: id})
		}
	}
	for _, id := range inRange.Sorted() {
		if _, still := current[id]; !still {
			queue.Events = append(queue.Events, components.DoorEvent{Kind: components.LeftDoorRange, DoorID: id})
		}
	}

	inRange.IDs = current
}

// LogDoorEvents reports this frame's door transitions. It stands in for
// the prompt that would offer to enter the building.
func LogDoorEvents(w donburi.World) {
	queue, ok := first(w, components.DoorEvents)
	if !ok {
		return
	}
	for _, ev := range queue.Events {
		logging.L().Infow("door range", "event", ev.Kind.String(), "door", ev.DoorID)
	}
}

func sortedIDs(set map[int]struct{}) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
