package factory

import (
	"github.com/automoto/homestead/archetypes"
	"github.com/automoto/homestead/assets/animations"
	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateVillager spawns a villager that walks from one end of its patrol
// to the other and back, forever. It has no velocity; the animation is
// derived from how far it moved.
func CreateVillager(w donburi.World, from, to math.Vec2) *donburi.Entry {
	villager := archetypes.Villager.Spawn(w)

	components.Villager.SetValue(villager, components.VillagerData{
		From:     from,
		To:       to,
		Tween:    gween.New(0, 1, float32(cfg.Villager.PatrolDuration), ease.InOutSine),
		Outbound: true,
	})
	components.Transform.SetValue(villager, components.TransformData{Local: from})
	components.Animation.SetValue(villager, components.AnimationData{
		Cycle: animations.NewWalkCycle(cfg.Player.Steps, cfg.Player.StepDuration),
	})
	components.Sprite.SetValue(villager, components.SpriteData{
		Sheet:  SheetVillager,
		Width:  cfg.Player.SpriteWidth,
		Height: cfg.Player.SpriteHeight,
	})
	components.ZSync.SetValue(villager, components.ZSyncData{Offset: cfg.Player.FeetOffset})

	return villager
}
