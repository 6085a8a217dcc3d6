package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hardcoded default configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Cols: 32,
			Rows: 20,
		},
		TickMS: 250,
		Colors: ColorConfig{
			Head: "bright-green",
			Body: "green",
			Food: "bright-red",
		},
	}
}
