package systems

import (
	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/automoto/homestead/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateDepth recomputes every sprite's draw depth from its world Y.
// Must run after everything that moves entities and before rendering.
func UpdateDepth(w donburi.World) {
	components.ZSync.Each(w, func(e *donburi.Entry) {
		z := components.ZSync.Get(e)
		pos := components.WorldPosition(e)
		z.Depth = gamemath.Depth(pos.Y, z.Offset, cfg.Depth.Scale, cfg.Depth.Base)
	})
}
