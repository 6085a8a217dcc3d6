// Package config provides YAML-based game configuration loading for
// termsnake.
package config

import "github.com/vovakirdan/termsnake/internal/core"

// SnakeConfig contains all tunable parameters for the game.
type SnakeConfig struct {
	Board  BoardConfig `yaml:"board"`
	TickMS int         `yaml:"tick_ms"`
	Colors ColorConfig `yaml:"colors"`
}

// BoardConfig defines the play field dimensions in cells.
type BoardConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// ColorConfig names the colors for the three block kinds.
type ColorConfig struct {
	Head string `yaml:"head"`
	Body string `yaml:"body"`
	Food string `yaml:"food"`
}

// colorNames maps YAML color names to core colors.
var colorNames = map[string]core.Color{
	"red":            core.ColorRed,
	"green":          core.ColorGreen,
	"yellow":         core.ColorYellow,
	"blue":           core.ColorBlue,
	"magenta":        core.ColorMagenta,
	"cyan":           core.ColorCyan,
	"white":          core.ColorWhite,
	"bright-red":     core.ColorBrightRed,
	"bright-green":   core.ColorBrightGreen,
	"bright-yellow":  core.ColorBrightYellow,
	"bright-blue":    core.ColorBrightBlue,
	"bright-magenta": core.ColorBrightMagenta,
	"bright-cyan":    core.ColorBrightCyan,
	"bright-white":   core.ColorBrightWhite,
	"orange":         core.ColorOrange,
	"gray":           core.ColorGray,
}

// ParseColor resolves a color name from the config file. Unknown names
// fall back to the given default rather than failing the load.
func ParseColor(name string, fallback core.Color) core.Color {
	if c, ok := colorNames[name]; ok {
		return c
	}
	return fallback
}

// Normalize clamps out-of-range values back to defaults so a partial or
// sloppy config file still yields a playable game.
func (c *SnakeConfig) Normalize() {
	def := DefaultSnakeConfig()
	if c.Board.Cols < 8 {
		c.Board.Cols = def.Board.Cols
	}
	if c.Board.Rows < 8 {
		c.Board.Rows = def.Board.Rows
	}
	if c.TickMS <= 0 {
		c.TickMS = def.TickMS
	}
	if c.Colors.Head == "" {
		c.Colors.Head = def.Colors.Head
	}
	if c.Colors.Body == "" {
		c.Colors.Body = def.Colors.Body
	}
	if c.Colors.Food == "" {
		c.Colors.Food = def.Colors.Food
	}
}
