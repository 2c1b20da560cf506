package core

// PlayerID identifies a player within a session.
type PlayerID int

const (
	// Player1 is the local pilot.
	Player1 PlayerID = 1
	// Player2 is the second pilot in duel and kill-count modes.
	Player2 PlayerID = 2
)

// PlayerOrder is the fixed order for per-player updates within a tick.
// Iterating players through it keeps same-tick event ordering reproducible
// across runs with the same seed.
var PlayerOrder = [2]PlayerID{Player1, Player2}

// RuntimeConfig contains configuration passed to the session at initialization.
// The session uses it to size the world and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Viewport width in characters
	ScreenH  int   // Viewport height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic world generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// SessionState is the externally visible state of a running session.
type SessionState struct {
	Score    int  // Current score of player 1
	Fuel     int  // Remaining fuel of player 1
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the session is paused
}
