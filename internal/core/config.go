package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame callbacks per second (default 60)
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

// Phase is the coarse lifecycle of a game session.
type Phase int

const (
	PhaseIdle     Phase = iota // Not started yet
	PhaseRunning               // Simulation advancing
	PhaseGameOver              // Run ended, waiting for restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    Phase
	Score    int  // Current score, floored
	GameOver bool // Whether the run has ended
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState

	// Ended is true only on the frame where the run transitioned to game over.
	// Platforms use it to persist the final score exactly once.
	Ended bool
}
