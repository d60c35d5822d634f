package config

import (
	_ "embed"
)

//go:embed defaults/mazegen.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid:    SizeConfig{Width: 100, Height: 75},
		Cell:    SizeConfig{Width: 1, Height: 1},
		Wall:    SizeConfig{Width: 1, Height: 1},
		Colors:  ColorConfig{Wall: "#ffffff", Open: "#000000"},
		Output:  "maze.png",
		Seed:    0,
		DBPath:  "~/.mazegen/history.db",
		History: true,
	}
}
