package factory

import (
	"github.com/automoto/homestead/archetypes"
	"github.com/automoto/homestead/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(w donburi.World, position math.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{Position: position, Scale: 1})
	return camera
}
