package systems

import (
	"github.com/automoto/homestead/components"
	"github.com/yohamta/donburi"
)

// SyncTransforms mirrors collider anchors into the transforms of root
// entities, so rendering and depth sorting see the resolved positions.
// Children keep their local offsets.
func SyncTransforms(w donburi.World) {
	components.Object.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Transform) {
			return
		}
		tr := components.Transform.Get(e)
		if tr.Parent != nil {
			return
		}
		tr.Local = components.Object.Get(e).Anchor()
	})
}
