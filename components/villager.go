package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// VillagerData walks an entity back and forth between From and To.
type VillagerData struct {
	From, To math.Vec2
	Tween    *gween.Tween // 0 → 1 along the current leg
	Outbound bool         // true while heading from From to To
}

var Villager = donburi.NewComponentType[VillagerData]()
