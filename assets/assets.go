package assets

import (
	"embed"
	"image"
	"image/color"

	cfg "github.com/automoto/homestead/config"
	"github.com/automoto/homestead/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

var (
	//go:embed all:maps
	mapFS embed.FS
)

// Maps holds the bundled TMX maps under "maps/".
func Maps() embed.FS {
	return mapFS
}

// Sheet is a grid of equally sized frames.
type Sheet struct {
	Image          *ebiten.Image
	FrameW, FrameH int
	Cols           int
	frames         map[int]*ebiten.Image // Pre-calculated subimages keyed by sheet index
}

// Frame returns the sub-image for a sheet index, counting left to right,
// top to bottom.
func (s *Sheet) Frame(index int) *ebiten.Image {
	if img, ok := s.frames[index]; ok {
		return img
	}
	col, row := index%s.Cols, index/s.Cols
	rect := image.Rect(col*s.FrameW, row*s.FrameH, (col+1)*s.FrameW, (row+1)*s.FrameH)
	img := s.Image.SubImage(rect).(*ebiten.Image)
	s.frames[index] = img
	return img
}

func newSheet(img *ebiten.Image, frameW, frameH int) *Sheet {
	return &Sheet{
		Image:  img,
		FrameW: frameW,
		FrameH: frameH,
		Cols:   max(img.Bounds().Dx()/frameW, 1),
		frames: make(map[int]*ebiten.Image),
	}
}

var (
	sheets = map[string]*Sheet{}
	tiles  = map[leveldata.TileKind]*ebiten.Image{}
)

// Load draws the placeholder art: one walker sheet registered under each
// of the walker names, one sheet per configured prop kind and the ground tiles.
func Load(walkers ...string) {
	walker := walkerSheet(int(cfg.Player.SpriteWidth), int(cfg.Player.SpriteHeight), cfg.Player.Steps)
	for _, name := range walkers {
		sheets[name] = walker
	}
	for _, p := range cfg.Map.Props {
		sheets[p.Kind] = propSheet(p.Kind, int(p.Width), int(p.Height))
	}
	size := int(cfg.Map.TileSize)
	tiles[leveldata.TileGrass] = grassTile(size)
	tiles[leveldata.TileTuft] = tuftTile(size)
}

// GetSheet returns the named sheet. Unknown names (props from a TMX map
// with an unconfigured kind) get a plain box the first time they are asked for.
func GetSheet(name string, w, h int) *Sheet {
	if s, ok := sheets[name]; ok {
		return s
	}
	s := propSheet(name, max(w, 1), max(h, 1))
	sheets[name] = s
	return s
}

// Tile returns the image for a tile kind.
func Tile(kind leveldata.TileKind) *ebiten.Image {
	return tiles[kind]
}

// walkerSheet lays out four facing rows (down, left, right, up) of steps
// frames each. Frames carry a 1px border, so a sprite of w x h sits in a
// (w+2) x (h+2) cell. The body is white so it can be tinted.
func walkerSheet(w, h, steps int) *Sheet {
	fw, fh := w+2, h+2
	img := ebiten.NewImage(fw*steps, fh*4)
	for row := 0; row < 4; row++ {
		for step := 0; step < steps; step++ {
			ox, oy := float32(step*fw+1), float32(row*fh+1)
			drawWalker(img, ox, oy, float32(w), float32(h), row, step)
		}
	}
	return newSheet(img, fw, fh)
}

func drawWalker(img *ebiten.Image, x, y, w, h float32, row, step int) {
	head := h * 0.36
	legs := h * 0.2
	body := h - head - legs

	// legs alternate on odd steps
	stride := float32(0)
	if step%2 == 1 {
		stride = 1
	}
	vector.FillRect(img, x+w*0.2, y+head+body, w*0.25, legs-stride, colornames.Dimgray, false)
	vector.FillRect(img, x+w*0.55, y+head+body, w*0.25, legs-(1-stride), colornames.Dimgray, false)
	vector.FillRect(img, x+w*0.1, y+head, w*0.8, body, colornames.White, false)
	vector.FillRect(img, x+w*0.2, y, w*0.6, head, colornames.Peachpuff, false)

	// eyes show the facing: row 0 down, 1 left, 2 right, 3 up
	eye := colornames.Black
	ey := y + head*0.45
	switch row {
	case 0:
		vector.FillRect(img, x+w*0.3, ey, 1, 1, eye, false)
		vector.FillRect(img, x+w*0.6, ey, 1, 1, eye, false)
	case 1:
		vector.FillRect(img, x+w*0.25, ey, 1, 1, eye, false)
	case 2:
		vector.FillRect(img, x+w*0.7, ey, 1, 1, eye, false)
	case 3:
		vector.FillRect(img, x+w*0.2, y, w*0.6, head*0.5, colornames.Saddlebrown, false)
	}
}

func propSheet(kind string, w, h int) *Sheet {
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)
	switch kind {
	case "house":
		vector.FillRect(img, 0, fh*0.45, fw, fh*0.55, colornames.Burlywood, false)
		for i := float32(0); i < 6; i++ {
			inset := fw * 0.08 * i
			vector.FillRect(img, inset, fh*0.45-(i+1)*fh*0.075, fw-2*inset, fh*0.075, colornames.Firebrick, false)
		}
		vector.FillRect(img, fw*0.4, fh*0.72, fw*0.2, fh*0.28, colornames.Saddlebrown, false)
	case "teepee":
		drawTeepee(img, 0, fw, fh, colornames.Tan)
	case "double_teepee":
		drawTeepee(img, 0, fw*0.55, fh, colornames.Tan)
		drawTeepee(img, fw*0.45, fw*0.55, fh, colornames.Wheat)
	case "oak_tree":
		vector.FillRect(img, fw*0.4, fh*0.6, fw*0.2, fh*0.4, colornames.Saddlebrown, false)
		vector.FillCircle(img, fw/2, fh*0.35, fw/2, colornames.Forestgreen, true)
		vector.FillCircle(img, fw*0.35, fh*0.45, fw*0.3, colornames.Darkgreen, true)
	default:
		vector.FillRect(img, 0, 0, fw, fh, colornames.Magenta, false)
	}
	return newSheet(img, w, h)
}

func drawTeepee(img *ebiten.Image, x, w, h float32, c color.RGBA) {
	const bands = 8
	for i := float32(0); i < bands; i++ {
		bw := w * (i + 1) / bands
		vector.FillRect(img, x+(w-bw)/2, h*i/bands, bw, h/bands, c, false)
	}
	vector.FillRect(img, x+w*0.42, h*0.7, w*0.16, h*0.3, colornames.Sienna, false)
}

func grassTile(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.Fill(colornames.Mediumseagreen)
	return img
}

func tuftTile(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	s := float32(size)
	for i, x := range []float32{0.3, 0.45, 0.6} {
		vector.FillRect(img, s*x, s*(0.4+float32(i%2)*0.1), 2, s*0.3, colornames.Darkgreen, false)
	}
	return img
}
