package snake

import (
	"math/rand"

	"github.com/vovakirdan/termsnake/internal/core"
)

// Status is the lifecycle state of a game session. Transitions are
// driven exclusively by loop commands and by the collision outcome of a
// tick; a command issued in the wrong status is a no-op.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Options configures a new session.
type Options struct {
	Grid      Grid
	Seed      int64
	HeadColor core.Color
	BodyColor core.Color
	FoodColor core.Color
}

// Session holds all mutable game state for one player: the snake, the
// food, the scores and the status. It replaces ad hoc globals with a
// single object passed to the loop and the command handlers; every
// mutation goes through a defined operation.
//
// The run score resets on StartRun. The high score lives as long as the
// session object and never decreases.
type Session struct {
	rng  *rand.Rand
	grid Grid

	headColor core.Color
	bodyColor core.Color
	foodColor core.Color

	snake     *Snake
	food      Block
	score     int
	highScore int
	status    Status
}

// NewSession creates an idle session on the given grid. The snake and
// food are not created until the first StartRun.
func NewSession(opts Options) *Session {
	if opts.Grid.Cols < 8 {
		opts.Grid.Cols = 8
	}
	if opts.Grid.Rows < 8 {
		opts.Grid.Rows = 8
	}
	if opts.HeadColor == core.ColorDefault {
		opts.HeadColor = core.ColorBrightGreen
	}
	if opts.BodyColor == core.ColorDefault {
		opts.BodyColor = core.ColorGreen
	}
	if opts.FoodColor == core.ColorDefault {
		opts.FoodColor = core.ColorBrightRed
	}

	return &Session{
		rng:       rand.New(rand.NewSource(opts.Seed)),
		grid:      opts.Grid,
		headColor: opts.HeadColor,
		bodyColor: opts.BodyColor,
		foodColor: opts.FoodColor,
		status:    StatusIdle,
	}
}

// StartRun resets the run: score to zero, a fresh two-segment snake at
// the board center facing right, and a new piece of food. The high
// score is left untouched.
func (s *Session) StartRun() {
	s.score = 0
	head := Cell{X: s.grid.Cols / 2, Y: s.grid.Rows / 2}
	s.snake = NewSnake(head, DirRight, s.grid, s.headColor, s.bodyColor)
	s.placeFood(Cell{X: -1, Y: -1})
}

// placeFood relocates the food, avoiding the snake and the given cell.
func (s *Session) placeFood(avoid Cell) {
	c, ok := PlaceFood(s.rng, s.grid, s.snake.Body(), avoid)
	if !ok {
		// Board completely covered by the snake. Park the food off
		// the board; the next tick ends the run on self collision.
		c = Cell{X: -1, Y: -1}
	}
	s.food = Block{Cell: c, Color: s.foodColor}
}

// ConsumeFood applies the food-eaten rule for one tick: score up, high
// score raised if beaten, snake grown onto the food cell, food
// relocated to a free cell. Caller has already checked WillEat.
func (s *Session) ConsumeFood() {
	s.score++
	if s.score > s.highScore {
		s.highScore = s.score
	}
	old := s.food.Cell
	s.snake.Grow()
	s.placeFood(old)
}

// Snake returns the current snake controller. Nil before the first run.
func (s *Session) Snake() *Snake {
	return s.snake
}

// Food returns the current food block.
func (s *Session) Food() Block {
	return s.food
}

// Grid returns the board.
func (s *Session) Grid() Grid {
	return s.grid
}

// Score returns the current run score.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score seen by this session.
func (s *Session) HighScore() int {
	return s.highScore
}

// Status returns the current lifecycle status.
func (s *Session) Status() Status {
	return s.status
}

// Blocks returns everything to draw: the snake body head first,
// followed by the food as the final block. Empty before the first run.
func (s *Session) Blocks() []Block {
	if s.snake == nil {
		return nil
	}
	blocks := s.snake.Body()
	if s.grid.Contains(s.food.Cell) {
		blocks = append(blocks, s.food)
	}
	return blocks
}
