package archetypes

import (
	"github.com/automoto/homestead/components"
	"github.com/automoto/homestead/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Transform,
		components.Object,
		components.Velocity,
		components.Control,
		components.Animation,
		components.Sprite,
		components.ZSync,
	)
	Villager = newArchetype(
		tags.Villager,
		components.Villager,
		components.Transform,
		components.Animation,
		components.PreviousPosition,
		components.Sprite,
		components.ZSync,
	)
	Prop = newArchetype(
		tags.Prop,
		components.Transform,
		components.Sprite,
		components.ZSync,
	)
	Door = newArchetype(
		tags.Door,
		components.Door,
		components.Transform,
		components.Object,
	)
	Tile = newArchetype(
		components.Tile,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	// Frame carries the per-frame singletons the systems read and write.
	Frame = newArchetype(
		components.Input,
		components.Window,
		components.Time,
		components.Debug,
		components.DoorsInRange,
		components.DoorEvents,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
