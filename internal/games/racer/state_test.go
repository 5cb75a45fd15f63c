package racer

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/neon-highway/internal/config"
)

// fakePersistence records calls and can be told to fail.
type fakePersistence struct {
	high      map[string]int
	readErr   error
	writeErr  error
	highSaves int
	runs      []RunRecord
	ghost     []byte
	unlocked  []string
}

func newFakePersistence() *fakePersistence {
	return &fakePersistence{high: make(map[string]int)}
}

func (f *fakePersistence) HighScore(mode string) (int, error) {
	if f.readErr != nil {
		return 0, f.readErr
	}
	return f.high[mode], nil
}

func (f *fakePersistence) SaveHighScore(mode string, score int) error {
	f.highSaves++
	if f.writeErr != nil {
		return f.writeErr
	}
	f.high[mode] = score
	return nil
}

func (f *fakePersistence) SaveRun(run RunRecord) error {
	f.runs = append(f.runs, run)
	return f.writeErr
}

func (f *fakePersistence) BestGhost(string) ([]byte, error) { return f.ghost, nil }

func (f *fakePersistence) UnlockAchievement(id string) error {
	f.unlocked = append(f.unlocked, id)
	return f.writeErr
}

func (f *fakePersistence) Achievements() ([]string, error) { return f.unlocked, nil }

func TestSetSpeedCapped(t *testing.T) {
	s := NewState(config.DefaultRacerConfig(), ModeEndless, "racer", nil, nil)
	s.SetSpeed(100)
	if s.Speed() != s.Config().Speed.Max {
		t.Errorf("Speed() = %v, want max %v", s.Speed(), s.Config().Speed.Max)
	}
	s.SetSpeed(-1)
	if s.Speed() != 0 {
		t.Errorf("Speed() = %v, want 0", s.Speed())
	}
}

func TestAddScoreRecomputesLevel(t *testing.T) {
	s := NewState(config.DefaultRacerConfig(), ModeEndless, "racer", nil, nil)
	if s.Level() != 1 {
		t.Fatalf("start level = %d", s.Level())
	}
	s.AddScore(999)
	if s.Level() != 1 {
		t.Errorf("level at 999 = %d, want 1", s.Level())
	}
	s.AddScore(1)
	if s.Level() != 2 {
		t.Errorf("level at 1000 = %d, want 2", s.Level())
	}
	if s.HighScore() != 1000 {
		t.Errorf("HighScore() = %d, want 1000", s.HighScore())
	}
}

func TestHighScoreWritesAreThrottled(t *testing.T) {
	fp := newFakePersistence()
	s := NewState(config.DefaultRacerConfig(), ModeEndless, "racer", fp, nil)

	s.AddScore(10)
	if fp.highSaves != 1 {
		t.Fatalf("first record wrote %d times, want 1", fp.highSaves)
	}
	s.AddScore(10)
	s.Advance(500 * time.Millisecond)
	s.AddScore(10)
	if fp.highSaves != 1 {
		t.Errorf("writes within a second = %d, want 1", fp.highSaves)
	}
	s.Advance(500 * time.Millisecond)
	s.AddScore(1)
	if fp.highSaves != 2 || fp.high["racer"] != 31 {
		t.Errorf("after a second: saves=%d stored=%d, want 2 and 31", fp.highSaves, fp.high["racer"])
	}

	s.AddScore(5)
	s.FlushHighScore()
	if fp.high["racer"] != 36 {
		t.Errorf("flush stored %d, want 36", fp.high["racer"])
	}
}

func TestHighScoreStorageFailuresAreIgnored(t *testing.T) {
	fp := newFakePersistence()
	fp.readErr = errors.New("corrupt")
	fp.writeErr = errors.New("quota exceeded")

	s := NewState(config.DefaultRacerConfig(), ModeEndless, "racer", fp, nil)
	if s.HighScore() != 0 {
		t.Errorf("HighScore() after failed read = %d, want 0", s.HighScore())
	}
	s.AddScore(50)
	if s.HighScore() != 50 || s.Score() != 50 {
		t.Errorf("failed write changed gameplay: score=%d high=%d", s.Score(), s.HighScore())
	}
}

func TestAdvanceIgnoresNonPositive(t *testing.T) {
	s := NewState(config.DefaultRacerConfig(), ModeEndless, "racer", nil, nil)
	s.Advance(time.Second)
	s.Advance(-5 * time.Second)
	s.Advance(0)
	if s.Now() != time.Second {
		t.Errorf("Now() = %v, want 1s", s.Now())
	}
}

func TestPowerUpExpiryUsesSimulatedTime(t *testing.T) {
	s := NewState(config.DefaultRacerConfig(), ModeEndless, "racer", nil, nil)
	s.ActivateShield(100 * time.Millisecond)
	s.ActivateSlowMo(300 * time.Millisecond)

	s.Advance(99 * time.Millisecond)
	if expired := s.UpdatePowerUpStates(); len(expired) != 0 {
		t.Fatalf("expired early: %v", expired)
	}
	s.Advance(time.Millisecond)
	expired := s.UpdatePowerUpStates()
	if len(expired) != 1 || expired[0] != PowerUpShield {
		t.Fatalf("expired = %v, want [shield]", expired)
	}
	if !s.Data().SlowMoActive || s.SlowMoFactor() != 0.5 {
		t.Error("slow-mo should still be running")
	}
}

func TestResetGamePreservesHighScoreAndMode(t *testing.T) {
	s := NewState(config.DefaultRacerConfig(), ModeTimeTrial, "racer_timetrial", nil, nil)
	s.AddScore(1500)
	s.SetSpeed(12)
	s.AddDistance(300)
	s.AddEnemy(Enemy{Width: 10, Height: 10})
	s.AddParticle(Particle{MaxLife: 5})
	s.Advance(time.Minute)

	s.ResetGame()

	d := s.Data()
	if d.Score != 0 || d.Distance != 0 || d.Clock != 0 || d.Level != 1 {
		t.Errorf("run values not reset: %+v", d)
	}
	if d.Speed != s.Config().Speed.Base {
		t.Errorf("Speed = %v, want base", d.Speed)
	}
	if d.HighScore != 1500 || d.Mode != ModeTimeTrial {
		t.Errorf("high score or mode lost: %+v", d)
	}
	if d.TimeRemaining != 120*time.Second {
		t.Errorf("TimeRemaining = %v", d.TimeRemaining)
	}
	if s.EnemyCount() != 0 || s.ParticleCount() != 0 {
		t.Error("collections not cleared")
	}
	if len(s.RoadLines()) != s.Config().Road.LineCount {
		t.Errorf("road lines = %d", len(s.RoadLines()))
	}
}

func TestReplaceEnemyKeepsPopulation(t *testing.T) {
	s := NewState(config.DefaultRacerConfig(), ModeEndless, "racer", nil, nil)
	a := s.AddEnemy(Enemy{Y: 1})
	s.AddEnemy(Enemy{Y: 2})

	b := s.ReplaceEnemy(a, Enemy{Y: -100})
	if s.EnemyCount() != 2 {
		t.Errorf("EnemyCount() = %d, want 2", s.EnemyCount())
	}
	if a == b {
		t.Error("replacement reused the old id")
	}
	if _, ok := s.Enemy(a); ok {
		t.Error("old id still resolves")
	}
	if e, ok := s.Enemy(b); !ok || e.ID != b || e.Y != -100 {
		t.Errorf("replacement = %+v, %v", e, ok)
	}
}

func TestGettersReturnCopies(t *testing.T) {
	s := NewState(config.DefaultRacerConfig(), ModeEndless, "racer", nil, nil)
	s.AddEnemy(Enemy{X: 1})

	enemies := s.Enemies()
	enemies[0].X = 99
	lines := s.RoadLines()
	lines[0].Y = 999

	if s.Enemies()[0].X != 1 {
		t.Error("mutating Enemies() result changed the store")
	}
	if s.RoadLines()[0].Y == 999 {
		t.Error("mutating RoadLines() result changed the store")
	}
}

func TestSetPlayerPositionClamps(t *testing.T) {
	s := NewState(config.DefaultRacerConfig(), ModeEndless, "racer", nil, nil)
	s.SetPlayerPosition(-50, 5000)
	p := s.Player()
	if p.X != 0 || p.Y != s.Config().Road.Height-p.Height {
		t.Errorf("player at (%v, %v)", p.X, p.Y)
	}
}
