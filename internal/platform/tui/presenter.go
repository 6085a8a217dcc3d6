package tui

import (
	"github.com/vovakirdan/termsnake/internal/snake"
)

// gameView is the terminal-side implementation of snake.Presenter. The
// loop pushes state into it after every tick; the Bubble Tea model
// reads it back out when drawing. It also owns the current direction
// input binding.
//
// All access happens on the Bubble Tea update goroutine, so no locking
// is needed.
type gameView struct {
	blocks  []snake.Block
	bounds  snake.Grid
	score   int
	highest int

	// gameOver is set by NotifyGameOver and cleared when the player
	// acknowledges the overlay.
	gameOver bool

	// handler is the currently bound direction listener. seq grows on
	// every bind; a subscription only cancels the binding it created.
	handler func(snake.Direction)
	seq     uint64
}

// Render stores the blocks to draw on the next View call.
func (v *gameView) Render(blocks []snake.Block, bounds snake.Grid) {
	v.blocks = append(v.blocks[:0], blocks...)
	v.bounds = bounds
}

// SetScoreText stores the score line values.
func (v *gameView) SetScoreText(score, highest int) {
	v.score = score
	v.highest = highest
}

// NotifyGameOver raises the game-over overlay. The loop has already
// transitioned to idle, so this is display-only.
func (v *gameView) NotifyGameOver() {
	v.gameOver = true
}

// OnDirectionInput binds fn as the direction listener, replacing any
// previous binding.
func (v *gameView) OnDirectionInput(fn func(snake.Direction)) snake.Subscription {
	v.seq++
	v.handler = fn
	return &viewSubscription{view: v, id: v.seq}
}

// dispatch delivers a direction command to the bound listener, if any.
// Keys pressed while paused or idle fall on the floor here.
func (v *gameView) dispatch(d snake.Direction) {
	if v.handler != nil {
		v.handler(d)
	}
}

// ackGameOver clears a pending game-over overlay. Returns whether there
// was one to acknowledge.
func (v *gameView) ackGameOver() bool {
	if !v.gameOver {
		return false
	}
	v.gameOver = false
	return true
}

// viewSubscription is the cancellation handle for one input binding.
// A handle that has been superseded by a newer binding cancels nothing.
type viewSubscription struct {
	view *gameView
	id   uint64
}

func (s *viewSubscription) Cancel() {
	if s.view.seq == s.id {
		s.view.handler = nil
	}
}
