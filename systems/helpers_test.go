package systems

import (
	"testing"

	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/automoto/homestead/shared/leveldata"
	"github.com/automoto/homestead/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// testWorld is a bare world with the frame singletons, a level, a space
// and a player, built without the game loop.
type testWorld struct {
	w      donburi.World
	frame  *donburi.Entry
	space  *resolv.Space
	player *donburi.Entry
}

func newTestWorld(t *testing.T, layout *leveldata.Layout) *testWorld {
	t.Helper()
	t.Cleanup(cfg.Reset)
	cfg.Reset()

	w := donburi.NewWorld()
	tw := &testWorld{w: w}
	tw.frame = factory.CreateFrame(w)
	factory.CreateLevel(w, layout)
	spaceEntry := factory.CreateSpace(w, int(layout.Width()), int(layout.Height()), 32, 32)
	tw.space = components.Space.Get(spaceEntry)

	props := make([]*donburi.Entry, len(layout.Props))
	for i, p := range layout.Props {
		props[i] = factory.CreateProp(w, tw.space, p)
	}
	for _, d := range layout.Doors {
		var parent *donburi.Entry
		if d.Prop >= 0 {
			parent = props[d.Prop]
		}
		factory.CreateDoor(w, tw.space, d, parent)
	}

	cx, cy := layout.Center()
	tw.player = factory.CreatePlayer(w, tw.space, cx, cy)
	factory.CreateCamera(w, math.Vec2{X: cx, Y: cy})
	return tw
}

func emptyLayout(tiles int) *leveldata.Layout {
	return &leveldata.Layout{TilesWide: tiles, TilesHigh: tiles, TileSize: 32}
}

func (tw *testWorld) input() *components.InputData {
	return components.Input.Get(tw.frame)
}

func (tw *testWorld) setWindow(width, height float64) {
	components.Window.SetValue(tw.frame, components.WindowData{Width: width, Height: height})
}

func (tw *testWorld) setDelta(dt float64) {
	components.Time.Get(tw.frame).Delta = dt
}

// press starts a new input frame with only the given actions held.
func (tw *testWorld) press(actions ...cfg.ActionID) {
	in := tw.input()
	pointer, known, pos := in.PointerPressed, in.PointerKnown, in.Pointer
	in.Advance()
	in.PointerPressed, in.PointerKnown, in.Pointer = pointer, known, pos
	for _, a := range actions {
		in.Current[a] = true
	}
}

// pointer starts a new input frame with the pointer in the given state and
// no keys held.
func (tw *testWorld) pointer(pressed bool, x, y float64) {
	in := tw.input()
	in.Advance()
	in.PointerPressed = pressed
	in.PointerKnown = true
	in.Pointer = math.Vec2{X: x, Y: y}
}

func (tw *testWorld) position() math.Vec2 {
	return components.Object.Get(tw.player).Anchor()
}

func (tw *testWorld) movePlayer(x, y float64) {
	components.Object.Get(tw.player).MoveAnchorTo(math.Vec2{X: x, Y: y})
	SyncTransforms(tw.w)
}
