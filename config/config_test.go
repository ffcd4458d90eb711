package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestApplyOverlaysOnlyGivenKeys(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	err := Apply([]byte(`
player:
  walking_speed: 150
camera:
  padding: 8
`))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if Player.WalkingSpeed != 150 {
		t.Errorf("walking speed = %v, want 150", Player.WalkingSpeed)
	}
	if Player.MouseSensitivity != 15 {
		t.Errorf("mouse sensitivity changed to %v, want default 15", Player.MouseSensitivity)
	}
	if Camera.Padding != 8 {
		t.Errorf("padding = %v, want 8", Camera.Padding)
	}
	if Camera.DiagonalReference != 400 {
		t.Errorf("diagonal reference changed to %v", Camera.DiagonalReference)
	}
	if len(Map.Props) != 4 {
		t.Errorf("props = %d, want the 4 defaults", len(Map.Props))
	}
}

func TestApplyRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{"negative_speed", "player: {walking_speed: -1}", ErrInvalidPlayer},
		{"zero_step", "player: {step_duration: 0}", ErrInvalidPlayer},
		{"zero_diagonal", "camera: {diagonal_reference: 0}", ErrInvalidCamera},
		{"zero_depth_scale", "depth: {scale: 0}", ErrInvalidDepth},
		{"empty_map", "map: {tiles_wide: 0}", ErrInvalidMap},
		{"bad_prop", "map: {props: [{kind: rock, count: 1, width: 0, height: 4}]}", ErrInvalidMap},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Cleanup(Reset)
			Reset()

			err := Apply([]byte(c.yaml))
			if !errors.Is(err, c.want) {
				t.Fatalf("Apply error = %v, want %v", err, c.want)
			}
			if Player.WalkingSpeed != 75 || Camera.DiagonalReference != 400 || Depth.Scale != 1000 || Map.TilesWide != 32 {
				t.Fatalf("invalid overlay was partially applied")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	path := filepath.Join(t.TempDir(), "homestead.yaml")
	if err := os.WriteFile(path, []byte("villager:\n  count: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if Villager.Count != 0 {
		t.Errorf("villager count = %d, want 0", Villager.Count)
	}

	if err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestMapDimensions(t *testing.T) {
	m := MapConfig{TilesWide: 32, TilesHigh: 16, TileSize: 32}
	if m.MapWidth() != 1024 || m.MapHeight() != 512 {
		t.Fatalf("map = %vx%v, want 1024x512", m.MapWidth(), m.MapHeight())
	}
}
