package factory

import (
	"github.com/automoto/homestead/archetypes"
	"github.com/automoto/homestead/assets/animations"
	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/automoto/homestead/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Sheet names the renderer knows besides the prop kinds.
const (
	SheetPlayer   = "player"
	SheetVillager = "villager"
)

// CreatePlayer spawns the player with its sprite centred on (x, y) and a
// small collider at its feet.
func CreatePlayer(w donburi.World, space *resolv.Space, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	offset := math.Vec2{X: -cfg.Player.CollisionWidth / 2, Y: -cfg.Player.FeetOffset}
	obj := resolv.NewObject(x+offset.X, y+offset.Y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	obj.AddTags(tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight))
	obj.Data = player
	space.Add(obj)
	components.Object.SetValue(player, components.ObjectData{Object: obj, Offset: offset})

	components.Transform.SetValue(player, components.TransformData{Local: math.Vec2{X: x, Y: y}})
	components.Control.SetValue(player, components.ControlData{Mode: components.ControlNone})
	components.Animation.SetValue(player, components.AnimationData{
		Cycle: animations.NewWalkCycle(cfg.Player.Steps, cfg.Player.StepDuration),
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Sheet:  SheetPlayer,
		Width:  cfg.Player.SpriteWidth,
		Height: cfg.Player.SpriteHeight,
	})
	components.ZSync.SetValue(player, components.ZSyncData{Offset: cfg.Player.FeetOffset})

	return player
}
