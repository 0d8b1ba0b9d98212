package core

// Game is the contract between a frontend and a game.
// Games contain pure logic with no UI dependencies.
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game for the given runtime configuration.
	// It returns the game to its initial (idle) state.
	Reset(cfg RuntimeConfig)

	// Step applies the frame's input and advances the simulation.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
