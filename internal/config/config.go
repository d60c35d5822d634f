// Package config provides YAML-based configuration loading for mazegen.
package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/mazegen/internal/maze"
	"github.com/vovakirdan/mazegen/internal/render"
)

// Config contains everything needed to generate and save one maze.
type Config struct {
	Grid    SizeConfig  `yaml:"grid"`
	Cell    SizeConfig  `yaml:"cell"`
	Wall    SizeConfig  `yaml:"wall"`
	Colors  ColorConfig `yaml:"colors"`
	Output  string      `yaml:"output"`  // PNG path
	Seed    int64       `yaml:"seed"`    // 0 = time based
	DBPath  string      `yaml:"db"`      // History database path
	History bool        `yaml:"history"` // Record runs in the history database
}

// SizeConfig is a width/height pair.
type SizeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ColorConfig holds hex colors ("#rrggbb").
type ColorConfig struct {
	Wall string `yaml:"wall"`
	Open string `yaml:"open"`
}

// Validate returns a *maze.DimensionError for the first size below 1.
func (c Config) Validate() error {
	if err := maze.CheckDimension("width", c.Grid.Width, 1); err != nil {
		return err
	}
	if err := maze.CheckDimension("height", c.Grid.Height, 1); err != nil {
		return err
	}
	return c.Geometry().Validate()
}

// Geometry returns the renderer geometry described by the config.
func (c Config) Geometry() render.Geometry {
	return render.Geometry{
		CellWidth:  c.Cell.Width,
		CellHeight: c.Cell.Height,
		WallWidth:  c.Wall.Width,
		WallHeight: c.Wall.Height,
	}
}

// Palette parses the configured colors. Empty values fall back to the
// default white-on-black palette.
func (c Config) Palette() (render.Palette, error) {
	pal := render.DefaultPalette()

	if c.Colors.Wall != "" {
		wall, err := parseHex(c.Colors.Wall)
		if err != nil {
			return pal, fmt.Errorf("config: wall color: %w", err)
		}
		pal.Wall = wall
	}
	if c.Colors.Open != "" {
		open, err := parseHex(c.Colors.Open)
		if err != nil {
			return pal, fmt.Errorf("config: open color: %w", err)
		}
		pal.Open = open
	}
	return pal, nil
}

func parseHex(s string) (color.RGBA, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
