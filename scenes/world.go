package scenes

import (
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/homestead/assets"
	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/automoto/homestead/logging"
	"github.com/automoto/homestead/shared/leveldata"
	"github.com/automoto/homestead/systems"
	"github.com/automoto/homestead/systems/factory"
	"github.com/automoto/homestead/systems/hostinput"
	"github.com/automoto/homestead/systems/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	layerWorld ecs.LayerID = iota
	layerDebug
)

// Frames longer than this are treated as a stall, so a dragged window
// does not teleport the player.
const maxFrameDelta = 0.1

type WorldScene struct {
	ecs     *ecs.ECS
	layout  *leveldata.Layout
	rng     *rand.Rand
	watcher *cfg.Watcher
	once    sync.Once

	lastFrame     time.Time
	width, height int
}

// NewWorldScene builds the scene for a layout. The watcher is optional; when
// set, config file changes are applied between frames.
func NewWorldScene(layout *leveldata.Layout, rng *rand.Rand, watcher *cfg.Watcher) *WorldScene {
	return &WorldScene{layout: layout, rng: rng, watcher: watcher}
}

// SetWindowSize records the host window size reported by Layout.
func (ws *WorldScene) SetWindowSize(width, height int) {
	ws.width, ws.height = width, height
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.reloadConfig()

	frame, ok := components.Window.First(ws.ecs.World)
	if ok {
		components.Window.SetValue(frame, components.WindowData{Width: float64(ws.width), Height: float64(ws.height)})
		now := time.Now()
		components.Time.Get(frame).Delta = frameDelta(ws.lastFrame, now)
		ws.lastFrame = now
	}

	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	assets.Load(factory.SheetPlayer, factory.SheetVillager)
	if err := assets.LoadShaders(); err != nil {
		// villagers fall back to untinted sprites
		logging.L().Warnw("shaders unavailable", "error", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Device polling first, then control, movement and everything derived
	// from the new positions.
	ecs.AddSystem(system(hostinput.Poll))
	ecs.AddSystem(system(systems.UpdateDebug))
	ecs.AddSystem(system(systems.UpdateControl))
	ecs.AddSystem(system(systems.UpdateMovement))
	ecs.AddSystem(system(systems.UpdateVillagers))
	ecs.AddSystem(system(systems.SyncTransforms))
	ecs.AddSystem(system(systems.UpdateAnimation))
	ecs.AddSystem(system(systems.UpdateCamera))
	ecs.AddSystem(system(systems.UpdateDepth))
	ecs.AddSystem(system(systems.UpdateDoors))
	ecs.AddSystem(system(systems.LogDoorEvents))

	ecs.AddRenderer(layerWorld, renderer(render.DrawTiles))
	ecs.AddRenderer(layerWorld, renderer(render.DrawSprites))
	ecs.AddRenderer(layerDebug, renderer(render.DrawDebug))

	ws.ecs = ecs

	player := factory.Populate(ecs.World, ws.layout, ws.rng)
	pos := components.WorldPosition(player)
	logging.L().Infow("world ready",
		"width", ws.layout.Width(),
		"height", ws.layout.Height(),
		"props", len(ws.layout.Props),
		"doors", len(ws.layout.Doors),
		"player_x", pos.X,
		"player_y", pos.Y,
	)
}

// reloadConfig applies pending config file changes without blocking.
func (ws *WorldScene) reloadConfig() {
	if ws.watcher == nil {
		return
	}
	select {
	case path := <-ws.watcher.Events:
		if err := cfg.LoadFile(path); err != nil {
			logging.L().Errorw("config reload failed", "path", path, "error", err)
			return
		}
		systems.ApplyTuning(ws.ecs.World)
		logging.L().Infow("config reloaded", "path", path)
	case err := <-ws.watcher.Errors:
		logging.L().Warnw("config watcher", "error", err)
	default:
	}
}

func frameDelta(last, now time.Time) float64 {
	if last.IsZero() {
		return 1.0 / float64(ebiten.TPS())
	}
	dt := now.Sub(last).Seconds()
	if dt < 0 {
		return 0
	}
	return min(dt, maxFrameDelta)
}

func system(fn func(donburi.World)) ecs.System {
	return func(e *ecs.ECS) {
		fn(e.World)
	}
}

func renderer(fn func(donburi.World, *ebiten.Image)) ecs.Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		fn(e.World, screen)
	}
}
