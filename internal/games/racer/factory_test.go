package racer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/neon-highway/internal/config"
)

func TestPickWeightedTieBreak(t *testing.T) {
	tests := []struct {
		name    string
		weights []int
		r       float64
		want    int
	}{
		{"zero draw", []int{1, 1}, 0, 0},
		{"boundary goes to earlier", []int{1, 1}, 1, 0},
		{"just past boundary", []int{1, 1}, 1.0001, 1},
		{"skips zero weights", []int{0, 0, 2}, 0.5, 2},
		{"all zero", []int{0, 0}, 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pickWeighted(tt.weights, tt.r); got != tt.want {
				t.Errorf("pickWeighted(%v, %v) = %d, want %d", tt.weights, tt.r, got, tt.want)
			}
		})
	}
}

func TestEnemyTypeDistribution(t *testing.T) {
	const draws = 100_000
	dm := config.NewDifficultyManager(config.DefaultRacerConfig())
	weights := dm.EnemyWeights(6)
	total := 0
	for _, w := range weights {
		total += w
	}

	rng := rand.New(rand.NewSource(1))
	counts := make([]int, enemyTypeCount)
	for range draws {
		counts[selectEnemyType(rng, weights)]++
	}

	for i, w := range weights {
		want := float64(w) / float64(total)
		got := float64(counts[i]) / draws
		if math.Abs(got-want) > want*0.05 {
			t.Errorf("%s: frequency %.4f, want %.4f ±5%%", EnemyType(i), got, want)
		}
	}
}

func TestEnemyTypeGatedAtLowLevel(t *testing.T) {
	dm := config.NewDifficultyManager(config.DefaultRacerConfig())
	weights := dm.EnemyWeights(1)
	rng := rand.New(rand.NewSource(7))
	for range 10_000 {
		switch typ := selectEnemyType(rng, weights); typ {
		case EnemyZigzag, EnemyShooter:
			t.Fatalf("level 1 produced gated type %s", typ)
		}
	}
}

func TestCreateEnemyLaneCenteredAndScaled(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	s := NewState(cfg, ModeEndless, "racer", nil, nil)
	rng := rand.New(rand.NewSource(3))
	laneWidth := cfg.Road.Width / float64(cfg.Road.Lanes)

	for range 200 {
		e := createEnemy(s, rng, -100)
		spec := e.Type.spec()
		if e.Width != spec.width || e.Height != spec.height {
			t.Fatalf("%s size = %vx%v", e.Type, e.Width, e.Height)
		}
		if e.Speed != s.Speed()*spec.speed {
			t.Fatalf("%s speed = %v, want %v", e.Type, e.Speed, s.Speed()*spec.speed)
		}
		lane := math.Floor(e.X / laneWidth)
		center := lane*laneWidth + laneWidth/2
		if math.Abs(e.X+e.Width/2-center) > 1e-9 {
			t.Fatalf("enemy at x=%v is not centered in lane %v", e.X, lane)
		}
		if e.Y != -100 || e.AnchorX != e.X {
			t.Fatalf("unexpected spawn record %+v", e)
		}
	}
}

func TestCreateProjectileUnderShooter(t *testing.T) {
	s := NewState(config.DefaultRacerConfig(), ModeEndless, "racer", nil, nil)
	e := Enemy{X: 100, Y: 50, Width: 50, Height: 75, Type: EnemyShooter}
	e.ID = s.AddEnemy(e)

	p := createProjectile(s, e)
	if p.X+p.Width/2 != e.X+e.Width/2 {
		t.Errorf("projectile center %v, want %v", p.X+p.Width/2, e.X+e.Width/2)
	}
	if p.Y != e.Y+e.Height {
		t.Errorf("projectile Y = %v, want %v", p.Y, e.Y+e.Height)
	}
	if p.Owner != e.ID {
		t.Errorf("projectile owner = %v, want %v", p.Owner, e.ID)
	}
}

func TestHesitationWithinRange(t *testing.T) {
	cfg := config.DefaultRacerConfig().Enemies
	lo := config.Millis(cfg.HesitationMinMS)
	hi := config.Millis(cfg.HesitationMinMS + cfg.HesitationRangeMS)
	for i := range uint32(50) {
		h := hesitation(cfg, EntityID{Index: i, Gen: 1})
		if h < lo || h >= hi {
			t.Fatalf("hesitation %v outside [%v, %v)", h, lo, hi)
		}
	}
}
