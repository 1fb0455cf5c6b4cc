package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultCrossingConfig()) {
		t.Errorf("embedded YAML and DefaultCrossingConfig differ:\n%+v\n%+v", cfg, DefaultCrossingConfig())
	}
}

func TestLoadCrossingUsesUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".crossing", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("world:\n  winning_y: 250\n")
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCrossing("")
	if err != nil {
		t.Fatalf("LoadCrossing failed: %v", err)
	}
	if cfg.World.WinningY != 250 {
		t.Errorf("WinningY = %d, expected 250 from user config", cfg.World.WinningY)
	}
	// Unset keys keep their defaults
	if cfg.World.Width != 1920 || len(cfg.Difficulties) != 4 {
		t.Errorf("partial config should overlay defaults, got %+v", cfg.World)
	}
}

func TestLoadCrossingFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadCrossing("")
	if err != nil {
		t.Fatalf("LoadCrossing failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultCrossingConfig()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadCrossingCustomPathErrors(t *testing.T) {
	if _, err := LoadCrossing(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("actor:\n  size: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadCrossing(bad)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid custom config error = %v, expected ErrInvalidConfig", err)
	}
}

func TestParseCustomDifficulties(t *testing.T) {
	data := []byte(`
difficulties:
  - label: Snail
    actor_speed: 1
    obstacle_speed: 1
    max_per_lane: 1
    spawn_interval: {min: 200, max: 300}
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(cfg.Difficulties) != 1 || cfg.Difficulties[0].Label != "Snail" {
		t.Errorf("difficulties should be replaced, got %+v", cfg.Difficulties)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CrossingConfig)
	}{
		{"zero width", func(c *CrossingConfig) { c.World.Width = 0 }},
		{"zero tick rate", func(c *CrossingConfig) { c.World.TickRate = 0 }},
		{"actor larger than world", func(c *CrossingConfig) { c.Actor.Size = 5000 }},
		{"zero car height", func(c *CrossingConfig) { c.Obstacles.Height = 0 }},
		{"bad direction", func(c *CrossingConfig) { c.Lanes.Direction = "diagonal" }},
		{"no difficulties", func(c *CrossingConfig) { c.Difficulties = nil }},
		{"inverted spawn interval", func(c *CrossingConfig) {
			c.Difficulties[0].SpawnInterval = SpawnInterval{Min: 10, Max: 5}
		}},
		{"zero spawn interval", func(c *CrossingConfig) {
			c.Difficulties[1].SpawnInterval = SpawnInterval{Min: 0, Max: 5}
		}},
	}

	if err := DefaultCrossingConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCrossingConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLaneLayout(t *testing.T) {
	l := DefaultCrossingConfig().Lanes

	wantY := []int{90, 240, 390, 540, 690, 840}
	wantDir := []int{-1, -1, -1, 1, 1, 1}
	for i, idx := range l.Indices() {
		if got := l.LaneY(idx); got != wantY[i] {
			t.Errorf("LaneY(%d) = %d, expected %d", idx, got, wantY[i])
		}
		if got := l.DirectionOf(idx); got != wantDir[i] {
			t.Errorf("DirectionOf(%d) = %d, expected %d", idx, got, wantDir[i])
		}
	}

	l.Direction = DirectionAlternate
	if l.DirectionOf(-3) == l.DirectionOf(-2) {
		t.Error("alternate layout should flip direction between neighbouring lanes")
	}
}
