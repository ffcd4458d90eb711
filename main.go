package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/automoto/homestead/assets"
	"github.com/automoto/homestead/config"
	"github.com/automoto/homestead/fonts"
	"github.com/automoto/homestead/logging"
	"github.com/automoto/homestead/scenes"
	"github.com/automoto/homestead/shared/leveldata"
	"github.com/automoto/homestead/systems/hostinput"
	"github.com/hajimehoshi/ebiten/v2"
)

// bundledPrefix selects a map embedded in the binary, e.g. "bundled:village".
const bundledPrefix = "bundled:"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	SetWindowSize(width, height int)
}

type Game struct {
	scene Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout renders at the window's own size so the camera can rescale as it
// is resized.
func (g *Game) Layout(width, height int) (int, int) {
	g.scene.SetWindowSize(width, height)
	return width, height
}

func main() {
	configPath := flag.String("config", "", "YAML config file overriding the defaults")
	mapPath := flag.String("map", "", "TMX map file, or bundled:<name>; empty generates a map")
	debug := flag.Bool("debug", false, "start with the debug overlay and debug logging")
	logPath := flag.String("log", "", "also write JSON logs to this file")
	watch := flag.Bool("watch", false, "reload -config when the file changes")
	seed := flag.Int64("seed", 0, "map generation seed, 0 picks one from the clock")
	flag.Parse()

	if err := logging.Init(logging.Options{FilePath: *logPath, Debug: *debug}); err != nil {
		fmt.Fprintf(os.Stderr, "init logging: %v\n", err)
		os.Exit(1)
	}

	err := run(*configPath, *mapPath, *debug, *watch, *seed)
	if err != nil {
		logging.L().Errorw("exiting", "error", err)
	}
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// run returns instead of exiting so the deferred watcher close always runs
// and main can flush the log.
func run(configPath, mapPath string, debug, watch bool, seed int64) error {
	log := logging.L()

	if configPath != "" {
		if err := config.LoadFile(configPath); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	if debug {
		config.Debug.Overlay = true
	}
	if unknown := hostinput.UnknownKeys(); len(unknown) > 0 {
		log.Warnw("ignoring unknown key bindings", "keys", unknown)
	}

	var watcher *config.Watcher
	if watch && configPath != "" {
		w, err := config.NewWatcher(configPath)
		if err != nil {
			log.Warnw("config watch disabled", "error", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	layout, err := loadLayout(mapPath, rng)
	if err != nil {
		return fmt.Errorf("load map %q: %w", mapPath, err)
	}
	log.Infow("map loaded", "map", mapPath, "seed", seed, "tiles_wide", layout.TilesWide, "tiles_high", layout.TilesHigh)

	if err := fonts.LoadDefaults(); err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(scenes.NewWorldScene(layout, rng, watcher))); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

// loadLayout picks the map source: a bundled map, a TMX file on disk, or
// a generated village.
func loadLayout(mapPath string, rng *rand.Rand) (*leveldata.Layout, error) {
	switch {
	case mapPath == "":
		return leveldata.Generate(config.Map, rng), nil
	case strings.HasPrefix(mapPath, bundledPrefix):
		name := strings.TrimPrefix(mapPath, bundledPrefix)
		return leveldata.LoadTMX(assets.Maps(), "maps/"+name+".tmx")
	default:
		abs, err := filepath.Abs(mapPath)
		if err != nil {
			return nil, err
		}
		return leveldata.LoadTMX(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
	}
}
