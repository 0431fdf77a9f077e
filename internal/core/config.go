package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic spawning.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    uint64 // Current score
	GameOver bool   // Whether the game has ended
	Paused   bool   // Whether the game is paused or waiting on a prompt
}

// Summary describes a finished game, ready to be persisted.
type Summary struct {
	Score   uint64
	MaxTile uint64
	Moves   int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Quit is set once the player confirmed leaving the game.
	Quit bool

	// Ended is non-nil on the tick a game finished (game over, confirmed
	// restart or confirmed quit). It describes the finished game, not the new one.
	Ended *Summary
}
