package leveldata

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX maps.
const (
	PropsGroup = "Props"
	DoorsGroup = "Doors"
)

// LoadTMX reads a Tiled map. The map header gives the size; the "Props"
// object group gives props (kind from the object class) and the "Doors"
// group gives doors, numbered by their door_id property or by order.
// Tiled measures y downwards, so every object is flipped into the y-up
// world. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: tiles must be square, got %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	l := &Layout{
		TilesWide: levelMap.Width,
		TilesHigh: levelMap.Height,
		TileSize:  float64(levelMap.TileWidth),
	}
	for col := 0; col < l.TilesWide; col++ {
		for row := 0; row < l.TilesHigh; row++ {
			l.Tiles = append(l.Tiles, Tile{Col: col, Row: row, Kind: TileGrass})
		}
	}

	mapH := l.Height()
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PropsGroup:
			for _, o := range og.Objects {
				kind := o.Class
				if kind == "" {
					kind = o.Type //nolint:staticcheck // older TMX uses type= attribute
				}
				l.Props = append(l.Props, Prop{
					Kind:            strings.ToLower(kind),
					X:               o.X + o.Width/2,
					Y:               mapH - (o.Y + o.Height/2),
					Width:           o.Width,
					Height:          o.Height,
					FootprintHeight: o.Properties.GetFloat("footprint_height"),
				})
			}
		case DoorsGroup:
			for i, o := range og.Objects {
				id := i
				if o.Properties.GetString("door_id") != "" {
					id = o.Properties.GetInt("door_id")
				}
				l.Doors = append(l.Doors, Door{
					ID:     id,
					Prop:   -1,
					X:      o.X + o.Width/2,
					Y:      mapH - (o.Y + o.Height/2),
					Width:  o.Width,
					Height: o.Height,
				})
			}
		}
	}

	sort.SliceStable(l.Doors, func(i, j int) bool {
		return l.Doors[i].ID < l.Doors[j].ID
	})
	for i := 1; i < len(l.Doors); i++ {
		if l.Doors[i].ID == l.Doors[i-1].ID {
			return nil, fmt.Errorf("load TMX %s: duplicate door_id %d", tmxPath, l.Doors[i].ID)
		}
	}
	attachDoors(l)

	return l, nil
}

// attachDoors links each free-standing door to the prop whose base it sits
// on, so the door follows the prop's transform.
func attachDoors(l *Layout) {
	for i := range l.Doors {
		d := &l.Doors[i]
		for pi, p := range l.Props {
			if d.X >= p.X-p.Width/2 && d.X <= p.X+p.Width/2 &&
				d.Y >= p.Bottom() && d.Y <= p.Bottom()+p.Height {
				d.Prop = pi
				break
			}
		}
	}
}
