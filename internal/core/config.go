package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 30)
	Seed     int64  // RNG seed for deterministic gameplay
	Player   string // Player name used when recording results
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score            int  // Successful crossings this session
	GameOver         bool // Whether the session has ended
	Paused           bool // Whether the game is paused
	AwaitingDecision bool // A round ended and retry/quit is pending
}

// Event is something notable that happened during a tick.
type Event int

const (
	EventSpawn     Event = iota + 1 // A car entered a lane
	EventCollision                  // The chicken was hit
	EventWin                        // The chicken reached the winning line
)

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
	Round  *RoundResult // Set on the tick a round ends
}

// RoundResult summarises a finished round.
type RoundResult struct {
	Difficulty string
	Won        bool
	Ticks      int
}

// Has reports whether the event occurred during the tick.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
