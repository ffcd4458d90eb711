package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Scale    float64 // derived from the window size each frame
}

var Camera = donburi.NewComponentType[CameraData]()
