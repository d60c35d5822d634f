package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/mazegen/internal/maze"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Chdir(tmp)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, expected %+v", cfg, Default())
	}
	if len(defaultYAML) == 0 {
		t.Error("embedded default YAML should not be empty")
	}
}

func TestLoadCustomPathMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("grid:\n  width: 12\ncell:\n  width: 4\n  height: 3\nseed: 42\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Grid.Width != 12 || cfg.Grid.Height != 75 {
		t.Errorf("Grid = %+v, expected width 12 and default height 75", cfg.Grid)
	}
	if cfg.Cell.Width != 4 || cfg.Cell.Height != 3 {
		t.Errorf("Cell = %+v, expected 4x3", cfg.Cell)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, expected 42", cfg.Seed)
	}
	if cfg.Output != "maze.png" {
		t.Errorf("Output = %q, expected default maze.png", cfg.Output)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".mazegen")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("grid:\n  height: 9\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Height != 9 {
		t.Errorf("Grid.Height = %d, expected 9 from user config", cfg.Grid.Height)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("grid: [not, a, map"), 0o600)
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		bad    string
	}{
		{"zero width", func(c *Config) { c.Grid.Width = 0 }, "width"},
		{"negative height", func(c *Config) { c.Grid.Height = -2 }, "height"},
		{"zero cell width", func(c *Config) { c.Cell.Width = 0 }, "cellw"},
		{"zero wall height", func(c *Config) { c.Wall.Height = 0 }, "wallh"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, maze.ErrInvalidDimension) {
				t.Fatalf("Validate() = %v, expected ErrInvalidDimension", err)
			}
			var dimErr *maze.DimensionError
			if errors.As(err, &dimErr) && dimErr.Name != tc.bad {
				t.Errorf("rejected %q, expected %q", dimErr.Name, tc.bad)
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestPalette(t *testing.T) {
	cfg := Default()
	cfg.Colors = ColorConfig{Wall: "#ff8000", Open: ""}

	pal, err := cfg.Palette()
	if err != nil {
		t.Fatalf("Palette() failed: %v", err)
	}
	if pal.Wall != (color.RGBA{R: 255, G: 128, B: 0, A: 255}) {
		t.Errorf("Wall = %v, expected orange", pal.Wall)
	}
	if pal.Open != (color.RGBA{A: 255}) {
		t.Errorf("Open = %v, expected default black", pal.Open)
	}

	cfg.Colors.Open = "not-a-color"
	if _, err := cfg.Palette(); err == nil {
		t.Error("Palette() should reject a malformed color")
	}
}
