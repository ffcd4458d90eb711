// Package leveldata describes a map layout: ground tiles, scenery props and
// doors. It is plain data with no engine, ECS or collision imports.
//
// Coordinates are world units with y up; the map spans [0, Width] x [0, Height].
package leveldata

type TileKind int

const (
	TileGrass TileKind = iota
	TileTuft
)

func (k TileKind) String() string {
	if k == TileTuft {
		return "tuft"
	}
	return "grass"
}

// Tile is one ground cell. Tufts are drawn over a grass tile at the same cell.
type Tile struct {
	Col, Row int
	Kind     TileKind
}

// Prop is a static scenery sprite. X, Y is the sprite centre.
type Prop struct {
	Kind            string
	X, Y            float64
	Width, Height   float64
	FootprintHeight float64 // solid band at the bottom of the sprite, 0 = walk-through
}

// Bottom returns the world Y of the prop's base.
func (p Prop) Bottom() float64 {
	return p.Y - p.Height/2
}

// Door is a sensor rectangle centred on X, Y. Prop is the index of the prop
// it belongs to, or -1 for a free-standing door.
type Door struct {
	ID            int
	Prop          int
	X, Y          float64
	Width, Height float64
}

// Layout is everything needed to populate a world.
type Layout struct {
	TilesWide, TilesHigh int
	TileSize             float64
	Tiles                []Tile
	Props                []Prop
	Doors                []Door
}

func (l *Layout) Width() float64  { return float64(l.TilesWide) * l.TileSize }
func (l *Layout) Height() float64 { return float64(l.TilesHigh) * l.TileSize }

// Center returns the middle of the map, where the player spawns.
func (l *Layout) Center() (x, y float64) {
	return l.Width() / 2, l.Height() / 2
}
