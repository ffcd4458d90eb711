package components

import (
	"github.com/automoto/homestead/shared/gamemath"
	"github.com/automoto/homestead/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Layout *leveldata.Layout
	Bounds gamemath.Rect
}

var Level = donburi.NewComponentType[LevelData]()

// TileData is one ground tile, drawn beneath every sprite.
type TileData struct {
	X, Y float64 // bottom-left corner
	Size float64
	Kind leveldata.TileKind
}

var Tile = donburi.NewComponentType[TileData]()
