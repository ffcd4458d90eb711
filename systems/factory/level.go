package factory

import (
	"github.com/automoto/homestead/archetypes"
	"github.com/automoto/homestead/components"
	"github.com/automoto/homestead/shared/gamemath"
	"github.com/automoto/homestead/shared/leveldata"
	"github.com/automoto/homestead/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreateLevel(w donburi.World, layout *leveldata.Layout) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{
		Layout: layout,
		Bounds: gamemath.Rect{MaxX: layout.Width(), MaxY: layout.Height()},
	})
	return level
}

// CreateTiles spawns one entity per ground tile.
func CreateTiles(w donburi.World, layout *leveldata.Layout) {
	for _, t := range layout.Tiles {
		tile := archetypes.Tile.Spawn(w)
		components.Tile.SetValue(tile, components.TileData{
			X:    float64(t.Col) * layout.TileSize,
			Y:    float64(t.Row) * layout.TileSize,
			Size: layout.TileSize,
			Kind: t.Kind,
		})
	}
}

// CreateProp spawns a scenery sprite. Props with a footprint also get a
// solid collider covering the bottom of the sprite.
func CreateProp(w donburi.World, space *resolv.Space, p leveldata.Prop) *donburi.Entry {
	var prop *donburi.Entry
	if p.FootprintHeight > 0 {
		prop = archetypes.Prop.Spawn(w, components.Object)

		offset := math.Vec2{X: -p.Width / 2, Y: -p.Height / 2}
		obj := resolv.NewObject(p.X+offset.X, p.Y+offset.Y, p.Width, p.FootprintHeight, tags.ResolvSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, p.Width, p.FootprintHeight))
		obj.Data = prop
		space.Add(obj)
		components.Object.SetValue(prop, components.ObjectData{Object: obj, Offset: offset})
	} else {
		prop = archetypes.Prop.Spawn(w)
	}

	components.Transform.SetValue(prop, components.TransformData{Local: math.Vec2{X: p.X, Y: p.Y}})
	components.Sprite.SetValue(prop, components.SpriteData{Sheet: p.Kind, Width: p.Width, Height: p.Height})
	components.ZSync.SetValue(prop, components.ZSyncData{Offset: p.Height / 2})

	return prop
}

// CreateDoor spawns a door sensor. With a parent prop the door's transform
// is relative to it.
func CreateDoor(w donburi.World, space *resolv.Space, d leveldata.Door, parent *donburi.Entry) *donburi.Entry {
	door := archetypes.Door.Spawn(w)

	offset := math.Vec2{X: -d.Width / 2, Y: -d.Height / 2}
	obj := resolv.NewObject(d.X+offset.X, d.Y+offset.Y, d.Width, d.Height, tags.ResolvDoor)
	obj.SetShape(resolv.NewRectangle(0, 0, d.Width, d.Height))
	obj.Data = door
	space.Add(obj)
	components.Object.SetValue(door, components.ObjectData{Object: obj, Offset: offset})
	components.Door.SetValue(door, components.DoorData{ID: d.ID})

	tr := components.TransformData{Local: math.Vec2{X: d.X, Y: d.Y}}
	if parent != nil {
		origin := components.WorldPosition(parent)
		tr.Local = math.Vec2{X: d.X - origin.X, Y: d.Y - origin.Y}
		tr.Parent = parent
	}
	components.Transform.SetValue(door, tr)

	return door
}
