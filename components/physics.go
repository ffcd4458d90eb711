package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// VelocityData is the linear velocity in world units per second.
type VelocityData struct {
	math.Vec2
}

var Velocity = donburi.NewComponentType[VelocityData]()
