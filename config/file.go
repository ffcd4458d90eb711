package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the global configuration blocks for YAML overlays.
// Keys missing from the file keep their current value.
type fileConfig struct {
	Window   *Config         `yaml:"window"`
	Player   *PlayerConfig   `yaml:"player"`
	Camera   *CameraConfig   `yaml:"camera"`
	Depth    *DepthConfig    `yaml:"depth"`
	Map      *MapConfig      `yaml:"map"`
	Villager *VillagerConfig `yaml:"villager"`
	Debug    *DebugConfig    `yaml:"debug"`
}

// LoadFile overlays the YAML file at path on the current configuration.
// Nothing is applied unless the whole file parses and validates.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// Apply overlays raw YAML on the current configuration.
func Apply(data []byte) error {
	window := *C
	player := Player
	camera := Camera
	depth := Depth
	mapCfg := Map
	mapCfg.Props = append([]PropConfig(nil), Map.Props...)
	villager := Villager
	debug := Debug

	fc := fileConfig{
		Window:   &window,
		Player:   &player,
		Camera:   &camera,
		Depth:    &depth,
		Map:      &mapCfg,
		Villager: &villager,
		Debug:    &debug,
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := validate(&fc); err != nil {
		return err
	}

	C = &window
	Player = player
	Camera = camera
	Depth = depth
	Map = mapCfg
	Villager = villager
	Debug = debug
	return nil
}

var (
	ErrInvalidPlayer = errors.New("invalid player config")
	ErrInvalidCamera = errors.New("invalid camera config")
	ErrInvalidDepth  = errors.New("invalid depth config")
	ErrInvalidMap    = errors.New("invalid map config")
)

func validate(fc *fileConfig) error {
	p := fc.Player
	switch {
	case p.WalkingSpeed < 0:
		return fmt.Errorf("%w: walking_speed %v < 0", ErrInvalidPlayer, p.WalkingSpeed)
	case p.MouseSensitivity <= 0:
		return fmt.Errorf("%w: mouse_sensitivity %v <= 0", ErrInvalidPlayer, p.MouseSensitivity)
	case p.StepDuration <= 0:
		return fmt.Errorf("%w: step_duration %v <= 0", ErrInvalidPlayer, p.StepDuration)
	case p.Steps <= 0:
		return fmt.Errorf("%w: steps %d <= 0", ErrInvalidPlayer, p.Steps)
	}

	if fc.Camera.DiagonalReference <= 0 {
		return fmt.Errorf("%w: diagonal_reference %v <= 0", ErrInvalidCamera, fc.Camera.DiagonalReference)
	}
	if fc.Camera.Padding < 0 {
		return fmt.Errorf("%w: padding %v < 0", ErrInvalidCamera, fc.Camera.Padding)
	}

	if fc.Depth.Scale <= 0 {
		return fmt.Errorf("%w: scale %v <= 0", ErrInvalidDepth, fc.Depth.Scale)
	}

	m := fc.Map
	switch {
	case m.TilesWide <= 0 || m.TilesHigh <= 0:
		return fmt.Errorf("%w: map is %dx%d tiles", ErrInvalidMap, m.TilesWide, m.TilesHigh)
	case m.TileSize <= 0:
		return fmt.Errorf("%w: tile_size %v <= 0", ErrInvalidMap, m.TileSize)
	case m.CellSize <= 0:
		return fmt.Errorf("%w: cell_size %d <= 0", ErrInvalidMap, m.CellSize)
	case m.TuftChance < 0:
		return fmt.Errorf("%w: tuft_chance %d < 0", ErrInvalidMap, m.TuftChance)
	}
	for _, prop := range m.Props {
		if prop.Count < 0 || prop.Width <= 0 || prop.Height <= 0 {
			return fmt.Errorf("%w: prop %q has count %d and size %vx%v", ErrInvalidMap, prop.Kind, prop.Count, prop.Width, prop.Height)
		}
	}
	return nil
}
