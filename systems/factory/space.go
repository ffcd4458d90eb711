package factory

import (
	"github.com/automoto/homestead/archetypes"
	"github.com/automoto/homestead/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace adds the collision space. Objects must be added through
// components.Space.Get on the returned entry, not the value passed to Set.
func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}
