package snake

import "time"

// DefaultTickInterval is the reference simulation cadence: one snake
// move every 250ms.
const DefaultTickInterval = 250 * time.Millisecond

// Loop is the fixed-tick simulation driver. It is invoked once per
// external frame callback with the callback's timestamp and advances
// the session by however many whole ticks have elapsed since the last
// processed frame. Everything runs synchronously inside that single
// call: no internal goroutines, no locking.
//
// Frame scheduling is cooperative. Frame returns whether the caller
// should request another callback; Paused and Idle stop the chain until
// a command restarts it.
type Loop struct {
	session   *Session
	presenter Presenter
	tick      time.Duration
	prev      time.Time
	sub       Subscription
}

// NewLoop creates a loop over the given session and presenter. A
// non-positive tick interval falls back to DefaultTickInterval.
func NewLoop(session *Session, presenter Presenter, tick time.Duration) *Loop {
	if tick <= 0 {
		tick = DefaultTickInterval
	}
	return &Loop{
		session:   session,
		presenter: presenter,
		tick:      tick,
	}
}

// Session returns the session this loop drives.
func (l *Loop) Session() *Session {
	return l.session
}

// TickInterval returns the simulation cadence.
func (l *Loop) TickInterval() time.Duration {
	return l.tick
}

// Status returns the session status.
func (l *Loop) Status() Status {
	return l.session.status
}

// Start begins a new run: Idle -> Running. Resets the score, recreates
// the snake and food, binds input and draws the initial state. A no-op
// in any other status.
func (l *Loop) Start(now time.Time) {
	if l.session.status != StatusIdle {
		return
	}
	l.session.StartRun()
	l.session.status = StatusRunning
	l.prev = now
	l.bindInput()
	l.redraw()
}

// Pause halts frame scheduling and releases the input binding:
// Running -> Paused. State is kept. A no-op in any other status.
func (l *Loop) Pause() {
	if l.session.status != StatusRunning {
		return
	}
	l.session.status = StatusPaused
	l.releaseInput()
}

// Resume continues a paused run: Paused -> Running. Input is rebound
// with a fresh subscription and the tick baseline restarts at now, so
// time spent paused produces no catch-up ticks. A no-op in any other
// status.
func (l *Loop) Resume(now time.Time) {
	if l.session.status != StatusPaused {
		return
	}
	l.session.status = StatusRunning
	l.prev = now
	l.bindInput()
}

// Restart reinitializes a running game as if freshly started:
// Running -> Running. A no-op in any other status.
func (l *Loop) Restart(now time.Time) {
	if l.session.status != StatusRunning {
		return
	}
	l.session.StartRun()
	l.prev = now
	l.bindInput()
	l.redraw()
}

// End stops the game without a game-over notification:
// Running/Paused -> Idle.
func (l *Loop) End() {
	if l.session.status == StatusIdle {
		return
	}
	l.session.status = StatusIdle
	l.releaseInput()
}

// Auto is a reserved command with no defined behavior yet.
// TODO: hook up a pathfinding autopilot here.
func (l *Loop) Auto() {}

// Frame processes one frame callback. Whole ticks elapsed since the
// previous baseline are simulated in order; the presenter redraws after
// each one. On collision the run ends: status goes to Idle, input is
// released, the game-over notification fires exactly once and any
// remaining ticks this frame are discarded.
//
// Returns true if the caller should schedule another frame.
func (l *Loop) Frame(now time.Time) bool {
	if l.session.status != StatusRunning {
		return false
	}

	ticks := int(now.Sub(l.prev) / l.tick)
	for i := 0; i < ticks; i++ {
		alive := l.step()
		l.redraw()
		if !alive {
			l.session.status = StatusIdle
			l.releaseInput()
			l.presenter.NotifyGameOver()
			return false
		}
	}
	if ticks > 0 {
		// The sub-tick remainder is dropped, not carried over. This
		// trades slight long-run drift for a simpler baseline.
		l.prev = now
	}
	return true
}

// step advances the simulation by one tick. Returns false when the
// snake can no longer move (wall or self collision).
func (l *Loop) step() bool {
	sn := l.session.snake
	switch {
	case sn.WillEat(l.session.food.Cell):
		l.session.ConsumeFood()
	case sn.CanAdvance():
		sn.Advance()
	default:
		return false
	}
	return true
}

// bindInput replaces the current input subscription with a fresh one.
// The handler only queues a pending direction on the snake; it never
// touches body or position state, so key events arriving between
// frames cannot tear the simulation.
func (l *Loop) bindInput() {
	l.releaseInput()
	l.sub = l.presenter.OnDirectionInput(func(d Direction) {
		if l.session.status == StatusRunning && l.session.snake != nil {
			l.session.snake.SetDirection(d)
		}
	})
}

// releaseInput cancels the active subscription, if any.
func (l *Loop) releaseInput() {
	if l.sub != nil {
		l.sub.Cancel()
		l.sub = nil
	}
}

// redraw pushes the current state to the presenter.
func (l *Loop) redraw() {
	l.presenter.Render(l.session.Blocks(), l.session.grid)
	l.presenter.SetScoreText(l.session.score, l.session.highScore)
}
