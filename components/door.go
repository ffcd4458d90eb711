package components

import (
	"sort"

	"github.com/yohamta/donburi"
)

type DoorData struct {
	ID int
}

var Door = donburi.NewComponentType[DoorData]()

// DoorsInRangeData holds the ids of the doors the player overlapped on the
// last tracker pass.
type DoorsInRangeData struct {
	IDs map[int]struct{}
}

// Has reports whether id is in range.
func (d *DoorsInRangeData) Has(id int) bool {
	_, ok := d.IDs[id]
	return ok
}

// Sorted returns the ids in ascending order.
func (d *DoorsInRangeData) Sorted() []int {
	ids := make([]int, 0, len(d.IDs))
	for id := range d.IDs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

var DoorsInRange = donburi.NewComponentType[DoorsInRangeData]()

type DoorEventKind int

const (
	EnteredDoorRange DoorEventKind = iota
	LeftDoorRange
)

func (k DoorEventKind) String() string {
	if k == EnteredDoorRange {
		return "entered"
	}
	return "left"
}

type DoorEvent struct {
	Kind   DoorEventKind
	DoorID int
}

// DoorEventsData queues the transitions seen this frame. The tracker
// clears it at the start of each pass.
type DoorEventsData struct {
	Events []DoorEvent
}

var DoorEvents = donburi.NewComponentType[DoorEventsData]()
