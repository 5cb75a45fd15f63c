package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Display frames per second (default 60)
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

// GameState is the summary a game reports to the platform after each step.
type GameState struct {
	Phase    Phase
	Score    int
	GameOver bool
	Paused   bool
}

// NewGameState builds a GameState whose flags agree with the phase.
func NewGameState(phase Phase, score int) GameState {
	return GameState{
		Phase:    phase,
		Score:    score,
		GameOver: phase == PhaseGameOver,
		Paused:   phase == PhasePaused,
	}
}

// StepResult is returned by Game.Step() after each simulation step.
type StepResult struct {
	State  GameState
	Events []Event
}
