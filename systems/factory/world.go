package factory

import (
	"math/rand"

	"github.com/automoto/homestead/archetypes"
	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/automoto/homestead/shared/gamemath"
	"github.com/automoto/homestead/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateFrame spawns the per-frame singletons: input, window size, frame
// time, debug state and the door tracker's set and event queue.
func CreateFrame(w donburi.World) *donburi.Entry {
	frame := archetypes.Frame.Spawn(w)
	components.Window.SetValue(frame, components.WindowData{
		Width:  float64(cfg.C.Width),
		Height: float64(cfg.C.Height),
	})
	components.Debug.SetValue(frame, components.DebugData{Overlay: cfg.Debug.Overlay})
	components.DoorsInRange.SetValue(frame, components.DoorsInRangeData{IDs: make(map[int]struct{})})
	return frame
}

// Populate fills the world from a layout: frame singletons, collision
// space, tiles, props, doors, villagers, the player at the map centre and
// a camera on the player. It returns the player entry.
func Populate(w donburi.World, layout *leveldata.Layout, rng *rand.Rand) *donburi.Entry {
	CreateFrame(w)
	CreateLevel(w, layout)

	cell := cfg.Map.CellSize
	if cell <= 0 {
		cell = int(layout.TileSize)
	}
	spaceEntry := CreateSpace(w, int(layout.Width()), int(layout.Height()), cell, cell)
	space := components.Space.Get(spaceEntry)

	CreateTiles(w, layout)

	props := make([]*donburi.Entry, len(layout.Props))
	for i, p := range layout.Props {
		props[i] = CreateProp(w, space, p)
	}
	for _, d := range layout.Doors {
		var parent *donburi.Entry
		if d.Prop >= 0 && d.Prop < len(props) {
			parent = props[d.Prop]
		}
		CreateDoor(w, space, d, parent)
	}

	cx, cy := layout.Center()
	bounds := gamemath.Rect{MaxX: layout.Width(), MaxY: layout.Height()}
	for i := 0; i < cfg.Villager.Count; i++ {
		from, to := patrol(bounds, rng, i%2 == 0)
		CreateVillager(w, from, to)
	}

	player := CreatePlayer(w, space, cx, cy)
	CreateCamera(w, math.Vec2{X: cx, Y: cy})

	return player
}

// patrol picks a random straight walk of PatrolDistance inside bounds,
// horizontal or vertical.
func patrol(bounds gamemath.Rect, rng *rand.Rand, horizontal bool) (from, to math.Vec2) {
	margin := cfg.Player.SpriteHeight
	dist := cfg.Villager.PatrolDistance

	from = math.Vec2{
		X: gamemath.Clamp(bounds.MinX+margin+rng.Float64()*(bounds.Width()-2*margin), bounds.MinX, bounds.MaxX),
		Y: gamemath.Clamp(bounds.MinY+margin+rng.Float64()*(bounds.Height()-2*margin), bounds.MinY, bounds.MaxY),
	}
	to = from
	if horizontal {
		to.X = gamemath.Clamp(from.X+dist, bounds.MinX+margin, bounds.MaxX-margin)
	} else {
		to.Y = gamemath.Clamp(from.Y+dist, bounds.MinY+margin, bounds.MaxY-margin)
	}
	return from, to
}
