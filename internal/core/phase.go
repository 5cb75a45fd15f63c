package core

// Phase is the top-level state of a run.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Active reports whether the frame loop keeps running in this phase.
// Paused counts as active: it renders without simulating.
func (p Phase) Active() bool {
	return p == PhasePlaying || p == PhasePaused
}
