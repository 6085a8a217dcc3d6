package snake

// Presenter is the narrow interface the game core drives its display
// and input through. The terminal adapter implements it; tests use a
// recording fake.
type Presenter interface {
	// Render redraws all given blocks within the board bounds.
	Render(blocks []Block, bounds Grid)

	// SetScoreText updates the score display.
	SetScoreText(score, highest int)

	// NotifyGameOver surfaces a user-visible, acknowledgable game-over
	// message. The loop has already stopped when this is called, so the
	// presenter is free to display it asynchronously.
	NotifyGameOver()

	// OnDirectionInput subscribes fn to 4-way directional commands.
	// The returned handle cancels exactly the subscription it was
	// created for; cancelling a superseded handle has no effect.
	OnDirectionInput(fn func(Direction)) Subscription
}

// Subscription is a handle to an active input binding. Cancelling
// invalidates the bound handler; the handle is replaced on each rebind
// rather than reused, so a stale handle can never detach a newer
// listener.
type Subscription interface {
	Cancel()
}
