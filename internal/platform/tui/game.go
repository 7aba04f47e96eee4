package tui

import "github.com/vovakirdan/tui-flappy/internal/core"

// Game is the contract between the Bubble Tea loop and a playable (or
// replayable) game. Games contain pure logic with no Bubble Tea imports;
// the platform handles input mapping, timing and rendering.
type Game interface {
	// ID returns a unique identifier, used for screenshots and logs.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once when the model starts.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}
