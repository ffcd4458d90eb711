package config

import "image/color"

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	WalkingSpeed     float64 `yaml:"walking_speed"`     // world units per second
	MouseSensitivity float64 `yaml:"mouse_sensitivity"` // multiplier applied to the diagonal-normalised drag

	// Animation
	StepDuration float64 `yaml:"step_duration"` // seconds between walk-cycle frames
	Steps        int     `yaml:"steps"`         // frames per walk-cycle row

	// Dimensions
	SpriteWidth     float64 `yaml:"sprite_width"`
	SpriteHeight    float64 `yaml:"sprite_height"`
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`

	// Distance from the sprite centre down to the feet, used for depth sorting.
	// Accounts for 1px of sheet padding around the sprite and an extra pixel under the feet.
	FeetOffset float64 `yaml:"feet_offset"`
}

// CameraConfig contains camera framing configuration
type CameraConfig struct {
	DiagonalReference float64 `yaml:"diagonal_reference"` // window diagonal (px) that maps to scale 1.0
	Padding           float64 `yaml:"padding"`            // world units kept between the player and the view edge
}

// DepthConfig contains depth sorting configuration
type DepthConfig struct {
	Scale float64 `yaml:"scale"` // divisor keeping per-pixel depth deltas small
	Base  float64 `yaml:"base"`  // band reserved for dynamic sprites above the tiles
}

// PropConfig describes one kind of scenery prop placed on the map.
type PropConfig struct {
	Kind            string  `yaml:"kind"`
	Count           int     `yaml:"count"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	FootprintHeight float64 `yaml:"footprint_height"` // solid band at the base of the sprite, 0 = walk-through
	HasDoor         bool    `yaml:"has_door"`
}

// MapConfig contains procedural map configuration
type MapConfig struct {
	TilesWide  int          `yaml:"tiles_wide"`
	TilesHigh  int          `yaml:"tiles_high"`
	TileSize   float64      `yaml:"tile_size"`
	TuftChance int          `yaml:"tuft_chance"` // one tile in TuftChance gets a tuft
	CellSize   int          `yaml:"cell_size"`   // collision space cell size
	DoorWidth  float64      `yaml:"door_width"`
	DoorHeight float64      `yaml:"door_height"`
	Props      []PropConfig `yaml:"props"`
}

// VillagerConfig contains configuration for the wandering villagers
type VillagerConfig struct {
	Count          int     `yaml:"count"`
	PatrolDistance float64 `yaml:"patrol_distance"` // world units between patrol end points
	PatrolDuration float64 `yaml:"patrol_duration"` // seconds for one leg
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool `yaml:"overlay"` // collider outlines and camera readout
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Camera CameraConfig
var Depth DepthConfig
var Map MapConfig
var Villager VillagerConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Reset()
}

// Reset restores every configuration value to its default.
func Reset() {
	C = &Config{
		Width:  1280,
		Height: 800,
		Title:  "Homestead",
	}

	Player = PlayerConfig{
		WalkingSpeed:     75.0,
		MouseSensitivity: 15.0,

		StepDuration: 0.15,
		Steps:        4,

		SpriteWidth:     14,
		SpriteHeight:    25,
		CollisionWidth:  10,
		CollisionHeight: 6,

		FeetOffset: (25 - 4) / 2.0,
	}

	Camera = CameraConfig{
		DiagonalReference: 400,
		Padding:           32,
	}

	Depth = DepthConfig{
		Scale: 1000,
		Base:  10,
	}

	Map = MapConfig{
		TilesWide:  32,
		TilesHigh:  32,
		TileSize:   32,
		TuftChance: 5,
		CellSize:   32,
		DoorWidth:  12,
		DoorHeight: 8,
		Props: []PropConfig{
			{Kind: "house", Count: 10, Width: 48, Height: 55, FootprintHeight: 20, HasDoor: true},
			{Kind: "teepee", Count: 7, Width: 40, Height: 61, FootprintHeight: 14},
			{Kind: "double_teepee", Count: 1, Width: 72, Height: 61, FootprintHeight: 14},
			{Kind: "oak_tree", Count: 20, Width: 64, Height: 111, FootprintHeight: 10},
		},
	}

	Villager = VillagerConfig{
		Count:          3,
		PatrolDistance: 96,
		PatrolDuration: 2.5,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay: false,
	}
}

// MapWidth returns the map width in world units.
func (m MapConfig) MapWidth() float64 {
	return float64(m.TilesWide) * m.TileSize
}

// MapHeight returns the map height in world units.
func (m MapConfig) MapHeight() float64 {
	return float64(m.TilesHigh) * m.TileSize
}
