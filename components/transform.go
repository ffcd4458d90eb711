package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData positions an entity relative to its parent, or to the
// world when Parent is nil.
type TransformData struct {
	Local  math.Vec2
	Parent *donburi.Entry
}

var Transform = donburi.NewComponentType[TransformData]()

// WorldPosition walks the parent chain and returns the entity's effective
// world position. Parents that are gone or have no transform end the walk.
func WorldPosition(entry *donburi.Entry) math.Vec2 {
	var p math.Vec2
	for entry != nil && entry.Valid() && entry.HasComponent(Transform) {
		t := Transform.Get(entry)
		p.X += t.Local.X
		p.Y += t.Local.Y
		entry = t.Parent
	}
	return p
}
