package leveldata

import (
	"math/rand"

	"github.com/automoto/homestead/config"
)

// spawnClearance is the half size of the square around the map centre kept
// free of prop footprints so the player never spawns inside one.
const spawnClearance = 24

// maxPlacementTries bounds the retries for one prop before it is dropped.
const maxPlacementTries = 32

// Generate lays out a map from cfg: grass everywhere with random tufts, and
// each configured prop kind scattered Count times. Props that carry a door
// get one straddling the middle of their base, numbered in placement order.
func Generate(cfg config.MapConfig, rng *rand.Rand) *Layout {
	l := &Layout{
		TilesWide: cfg.TilesWide,
		TilesHigh: cfg.TilesHigh,
		TileSize:  cfg.TileSize,
	}

	for col := 0; col < cfg.TilesWide; col++ {
		for row := 0; row < cfg.TilesHigh; row++ {
			l.Tiles = append(l.Tiles, Tile{Col: col, Row: row, Kind: TileGrass})
			if cfg.TuftChance > 0 && rng.Intn(cfg.TuftChance) == 0 {
				l.Tiles = append(l.Tiles, Tile{Col: col, Row: row, Kind: TileTuft})
			}
		}
	}

	cx, cy := l.Center()
	for _, pc := range cfg.Props {
		for i := 0; i < pc.Count; i++ {
			p, ok := placeProp(pc, l.Width(), l.Height(), cx, cy, rng)
			if !ok {
				continue
			}
			l.Props = append(l.Props, p)
			if pc.HasDoor {
				l.Doors = append(l.Doors, Door{
					ID:     len(l.Doors),
					Prop:   len(l.Props) - 1,
					X:      p.X,
					Y:      p.Bottom(),
					Width:  cfg.DoorWidth,
					Height: cfg.DoorHeight,
				})
			}
		}
	}

	return l
}

func placeProp(pc config.PropConfig, mapW, mapH, cx, cy float64, rng *rand.Rand) (Prop, bool) {
	p := Prop{
		Kind:            pc.Kind,
		Width:           pc.Width,
		Height:          pc.Height,
		FootprintHeight: pc.FootprintHeight,
	}
	for try := 0; try < maxPlacementTries; try++ {
		p.X = pc.Width/2 + rng.Float64()*max(mapW-pc.Width, 0)
		p.Y = pc.Height/2 + rng.Float64()*max(mapH-pc.Height, 0)
		if p.FootprintHeight == 0 || !footprintCovers(p, cx, cy) {
			return p, true
		}
	}
	return p, false
}

func footprintCovers(p Prop, cx, cy float64) bool {
	minX, maxX := p.X-p.Width/2, p.X+p.Width/2
	minY, maxY := p.Bottom(), p.Bottom()+p.FootprintHeight
	return maxX > cx-spawnClearance && minX < cx+spawnClearance &&
		maxY > cy-spawnClearance && minY < cy+spawnClearance
}
