// Package snake implements the snake game core: board geometry, the
// snake controller, food placement, the per-run session state and the
// fixed-tick game loop. It contains pure logic with no UI dependencies;
// presentation is supplied from outside through the Presenter interface.
package snake

import "github.com/vovakirdan/termsnake/internal/core"

// Cell is a board coordinate: 0 <= X < Grid.Cols, 0 <= Y < Grid.Rows.
type Cell struct {
	X, Y int
}

// Step returns the cell one unit away in the given direction.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Block is a single colored cell, the atomic unit for both snake
// segments and food.
type Block struct {
	Cell
	Color core.Color
}

// Axis classifies a direction as vertical or horizontal. Opposite
// directions share an axis, which is what the reversal guard checks.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// Direction is one of the four movement directions. The numeric values
// are chosen so that opposite directions differ only in the lowest bit:
// the axis is the value shifted right by one.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Axis returns the axis this direction moves along.
func (d Direction) Axis() Axis {
	return Axis(d >> 1)
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return d ^ 1
}

// Delta returns the unit step for this direction. The Y axis grows
// downward, matching screen coordinates.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Grid is the fixed-size board the game is played on.
type Grid struct {
	Cols, Rows int
}

// Contains reports whether the cell lies within the board bounds.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// Area returns the total number of cells on the board.
func (g Grid) Area() int {
	return g.Cols * g.Rows
}
