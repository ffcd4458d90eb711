package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObjectData is an entity's collider. The entity's position is its anchor
// (sprite centre); the collider's corner sits at anchor + Offset, so a
// small box can ride at the feet of a tall sprite.
type ObjectData struct {
	*resolv.Object
	Offset math.Vec2
}

// Anchor returns the entity position the collider belongs to.
func (o *ObjectData) Anchor() math.Vec2 {
	return math.Vec2{X: o.X - o.Offset.X, Y: o.Y - o.Offset.Y}
}

// MoveAnchorTo places the collider so its anchor is at p.
func (o *ObjectData) MoveAnchorTo(p math.Vec2) {
	o.X = p.X + o.Offset.X
	o.Y = p.Y + o.Offset.Y
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
