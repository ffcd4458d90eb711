package components

import (
	"github.com/automoto/homestead/assets/animations"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type AnimationData struct {
	Cycle *animations.WalkCycle
}

var Animation = donburi.NewComponentType[AnimationData]()

// PreviousPositionData remembers where an externally moved entity was on
// the last animation tick. Valid is false until the first tick records it.
type PreviousPositionData struct {
	Position math.Vec2
	Valid    bool
}

var PreviousPosition = donburi.NewComponentType[PreviousPositionData]()
