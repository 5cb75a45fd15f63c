package racer

import "time"

// Persistence is the durable store the simulation reports to.
// Keys are game mode IDs such as "racer" or "racer_timetrial".
// Every call is best-effort: errors are logged and play continues.
type Persistence interface {
	HighScore(mode string) (int, error)
	SaveHighScore(mode string, score int) error
	SaveRun(run RunRecord) error
	BestGhost(mode string) ([]byte, error)
	UnlockAchievement(id string) error
	Achievements() ([]string, error)
}

// RunRecord summarizes one finished run.
type RunRecord struct {
	Mode          string
	Score         int
	Distance      float64
	Level         int
	MaxMultiplier float64
	ComboBonus    int
	Duration      time.Duration
	Achievements  []string // Unlocked during this run
	Ghost         []byte   // msgpack-encoded position trace
}

// nopPersistence is used when no store is attached.
type nopPersistence struct{}

func (nopPersistence) HighScore(string) (int, error)    { return 0, nil }
func (nopPersistence) SaveHighScore(string, int) error  { return nil }
func (nopPersistence) SaveRun(RunRecord) error          { return nil }
func (nopPersistence) BestGhost(string) ([]byte, error) { return nil, nil }
func (nopPersistence) UnlockAchievement(string) error   { return nil }
func (nopPersistence) Achievements() ([]string, error)  { return nil, nil }
