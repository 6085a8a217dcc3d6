package snake

import "github.com/vovakirdan/termsnake/internal/core"

// selfCollisionSkip is the number of near-head segments exempt from the
// self-collision check. The snake cannot turn sharply enough to hit a
// segment this close to the head: the reversal guard rules out the cell
// just vacated, and anything nearer than four segments is unreachable
// within one tick.
const selfCollisionSkip = 4

// Snake is the player-controlled segmented entity. The body is stored
// head first. Two directions are tracked: the pending direction, set by
// input and applied on the next move, and the committed direction, the
// one the snake last actually moved in. The reversal guard checks
// against the committed direction so that two quick key presses within
// a single tick cannot fold the snake back onto itself.
type Snake struct {
	grid      Grid
	body      []Block // head at index 0, length >= 2 at all times
	pending   Direction
	committed Direction
	headColor core.Color
	bodyColor core.Color
}

// NewSnake creates a two-segment snake with its head at the given cell,
// facing dir. The tail trails one step behind the head, opposite the
// initial direction.
func NewSnake(head Cell, dir Direction, grid Grid, headColor, bodyColor core.Color) *Snake {
	return &Snake{
		grid: grid,
		body: []Block{
			{Cell: head, Color: headColor},
			{Cell: head.Step(dir.Opposite()), Color: bodyColor},
		},
		pending:   dir,
		committed: dir,
		headColor: headColor,
		bodyColor: bodyColor,
	}
}

// Head returns the head block.
func (s *Snake) Head() Block {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []Block {
	out := make([]Block, len(s.body))
	copy(out, s.body)
	return out
}

// Direction returns the direction the snake last moved in.
func (s *Snake) Direction() Direction {
	return s.committed
}

// PeekNext returns the cell the head would occupy on the next move.
// Pure: no state is mutated.
func (s *Snake) PeekNext() Cell {
	return s.body[0].Cell.Step(s.pending)
}

// CanAdvance reports whether the next move is legal: the target cell
// must be on the board and must not collide with a body segment beyond
// the exempt near-head range. A false return is the game-over signal;
// nothing here panics or errors.
func (s *Snake) CanAdvance() bool {
	next := s.PeekNext()
	if !s.grid.Contains(next) {
		return false
	}
	for i := selfCollisionSkip; i < len(s.body); i++ {
		if s.body[i].Cell == next {
			return false
		}
	}
	return true
}

// WillEat reports whether the next move lands on the given food cell.
func (s *Snake) WillEat(food Cell) bool {
	return s.PeekNext() == food
}

// Grow inserts a new head at PeekNext and recolors the previous head as
// body. The pending direction becomes committed. The caller must have
// validated the move (CanAdvance or WillEat); Grow performs no checks.
func (s *Snake) Grow() {
	newHead := Block{Cell: s.PeekNext(), Color: s.headColor}
	s.body[0].Color = s.bodyColor
	s.body = append([]Block{newHead}, s.body...)
	s.committed = s.pending
}

// Advance moves the snake one step without growing: Grow followed by
// dropping the tail segment.
func (s *Snake) Advance() {
	s.Grow()
	s.body = s.body[:len(s.body)-1]
}

// SetDirection requests a direction change for the next tick. A request
// on the same axis as the committed direction would reverse the snake
// into the segment it just vacated, so it is silently ignored.
func (s *Snake) SetDirection(d Direction) {
	if d.Axis() == s.committed.Axis() {
		return
	}
	s.pending = d
}

// OccupiedCells returns the set of cells covered by the body.
func (s *Snake) OccupiedCells() map[Cell]bool {
	cells := make(map[Cell]bool, len(s.body))
	for _, b := range s.body {
		cells[b.Cell] = true
	}
	return cells
}
