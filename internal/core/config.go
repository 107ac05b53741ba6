package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
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

// GameState represents the current state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int  // Current score
	HighScore  int  // Best score known to the session
	Playing    bool // A run is in progress
	GameOver   bool // The game-over screen is showing
	Paused     bool // The run is paused
	Terminated bool // The player asked to quit
}

// Event is something noteworthy that happened during a tick.
// The platform uses events for side effects such as sound.
type Event int

const (
	EventJump      Event = iota // Player jumped
	EventLand                   // Player landed on a platform
	EventRecycle                // A platform scrolled off the bottom
	EventGameOver               // The run ended
	EventHighScore              // The run beat the stored high score
)

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the tick produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}
