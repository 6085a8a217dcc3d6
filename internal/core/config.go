package core

// RuntimeConfig contains runtime parameters passed to the platform layer
// at startup. Screen dimensions come from the terminal (or the SSH PTY),
// the seed drives food placement for reproducible sessions.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 means use current time in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
	}
}
