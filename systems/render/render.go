// Package render draws the world: ground tiles first, then every sprite in
// depth order, then the optional debug overlay.
package render

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/automoto/homestead/assets"
	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/automoto/homestead/fonts"
	"github.com/automoto/homestead/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"golang.org/x/image/colornames"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
	ordered  []*donburi.Entry
)

// Villager tints, picked by entity id.
var villagerTints = [][]float32{
	{0.55, 0.75, 1, 1},
	{1, 0.6, 0.6, 1},
	{0.7, 1, 0.6, 1},
	{1, 0.85, 0.45, 1},
}

// View maps y-up world coordinates to y-down screen pixels around the camera.
type View struct {
	Camera        math.Vec2
	Scale         float64
	Width, Height float64
}

// ViewFor builds the view for the current camera and a screen size.
func ViewFor(w donburi.World, screenW, screenH int) (View, bool) {
	e, ok := components.Camera.First(w)
	if !ok {
		return View{}, false
	}
	camera := components.Camera.Get(e)
	if camera.Scale <= 0 {
		return View{}, false
	}
	return View{
		Camera: camera.Position,
		Scale:  camera.Scale,
		Width:  float64(screenW),
		Height: float64(screenH),
	}, true
}

// ToScreen converts a world point to screen pixels.
func (v View) ToScreen(p math.Vec2) (x, y float64) {
	return (p.X-v.Camera.X)*v.Scale + v.Width/2, v.Height/2 - (p.Y-v.Camera.Y)*v.Scale
}

// Visible reports whether a world box centred on c overlaps the screen.
func (v View) Visible(c math.Vec2, w, h float64) bool {
	x, y := v.ToScreen(c)
	hw, hh := w*v.Scale/2, h*v.Scale/2
	return x+hw >= 0 && x-hw <= v.Width && y+hh >= 0 && y-hh <= v.Height
}

// DrawOrder returns the sprites back to front: ascending depth, then
// entity id so equal depths keep a stable order.
func DrawOrder(w donburi.World) []*donburi.Entry {
	ordered = ordered[:0]
	components.ZSync.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Sprite) && e.HasComponent(components.Transform) {
			ordered = append(ordered, e)
		}
	})
	sort.SliceStable(ordered, func(i, j int) bool {
		di, dj := components.ZSync.Get(ordered[i]).Depth, components.ZSync.Get(ordered[j]).Depth
		if di != dj {
			return di < dj
		}
		return ordered[i].Entity().Id() < ordered[j].Entity().Id()
	})
	return ordered
}

// DrawTiles renders the ground under everything else.
func DrawTiles(w donburi.World, screen *ebiten.Image) {
	screen.Fill(colornames.Darkolivegreen)
	view, ok := ViewFor(w, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}
	components.Tile.Each(w, func(e *donburi.Entry) {
		t := components.Tile.Get(e)
		centre := math.Vec2{X: t.X + t.Size/2, Y: t.Y + t.Size/2}
		if !view.Visible(centre, t.Size, t.Size) {
			return
		}
		img := assets.Tile(t.Kind)
		if img == nil {
			return
		}
		// tiles are anchored at their top-left corner on screen
		x, y := view.ToScreen(math.Vec2{X: t.X, Y: t.Y + t.Size})
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(t.Size*view.Scale/float64(img.Bounds().Dx()), t.Size*view.Scale/float64(img.Bounds().Dy()))
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(img, drawOp)
	})
}

// DrawSprites renders every depth-synced sprite centred on its world position.
func DrawSprites(w donburi.World, screen *ebiten.Image) {
	view, ok := ViewFor(w, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}
	for _, e := range DrawOrder(w) {
		sprite := components.Sprite.Get(e)
		pos := components.WorldPosition(e)
		if !view.Visible(pos, sprite.Width+2, sprite.Height+2) {
			continue
		}
		sheet := assets.GetSheet(sprite.Sheet, int(sprite.Width), int(sprite.Height))
		img := sheet.Frame(sprite.Index)
		x, y := view.ToScreen(pos)

		if e.HasComponent(tags.Villager) && assets.TintShader != nil {
			drawTinted(screen, img, view.Scale, x, y, villagerTints[int(e.Entity().Id())%len(villagerTints)])
			continue
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(sheet.FrameW)/2, -float64(sheet.FrameH)/2)
		drawOp.GeoM.Scale(view.Scale, view.Scale)
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(img, drawOp)
	}
}

func drawTinted(screen, img *ebiten.Image, scale, x, y float64, tint []float32) {
	b := img.Bounds()
	shaderOp.GeoM.Reset()
	shaderOp.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	shaderOp.GeoM.Scale(scale, scale)
	shaderOp.GeoM.Translate(x, y)
	shaderOp.Images[0] = img
	shaderOp.Uniforms = map[string]any{"Tint": tint}
	screen.DrawRectShader(b.Dx(), b.Dy(), assets.TintShader, shaderOp)
}

// DrawDebug outlines every collider and prints the frame state when the
// overlay is on.
func DrawDebug(w donburi.World, screen *ebiten.Image) {
	debugEntry, ok := components.Debug.First(w)
	if !ok || !components.Debug.Get(debugEntry).Overlay {
		return
	}
	view, ok := ViewFor(w, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}

	if spaceEntry, ok := components.Space.First(w); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			// collider corner is bottom-left in the world
			x, y := view.ToScreen(math.Vec2{X: obj.X, Y: obj.Y + obj.H})
			vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W*view.Scale), float32(obj.H*view.Scale), 1, colliderColor(obj), false)
		}
	}

	lines := []string{
		fmt.Sprintf("TPS %.0f", ebiten.ActualTPS()),
		fmt.Sprintf("camera %.1f,%.1f x%.2g", view.Camera.X, view.Camera.Y, view.Scale),
	}
	if player, ok := tags.Player.First(w); ok {
		pos := components.WorldPosition(player)
		control := components.Control.Get(player)
		anim := components.Animation.Get(player)
		lines = append(lines,
			fmt.Sprintf("player %.1f,%.1f depth %.4f", pos.X, pos.Y, components.ZSync.Get(player).Depth),
			fmt.Sprintf("control %s facing %s", control.Mode, anim.Cycle.Facing),
		)
	}
	if e, ok := components.DoorsInRange.First(w); ok {
		lines = append(lines, fmt.Sprintf("doors %v", components.DoorsInRange.Get(e).Sorted()))
	}

	vector.FillRect(screen, 4, 4, 260, float32(len(lines))*16+8, cfg.BlackOverlay, false)
	face := fonts.Debug.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, 10, 22+i*16, cfg.White)
	}
}

func colliderColor(obj *resolv.Object) color.Color {
	switch {
	case obj.HasTags(tags.ResolvPlayer):
		return cfg.Cyan
	case obj.HasTags(tags.ResolvDoor):
		return cfg.Yellow
	case obj.HasTags(tags.ResolvSolid):
		return colornames.Red
	}
	return cfg.Grey
}
