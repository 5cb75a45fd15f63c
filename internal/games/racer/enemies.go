package racer

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/neon-highway/internal/config"
	"github.com/vovakirdan/neon-highway/internal/core"
)

const (
	shooterDrift     = 0.8 // Shooters cruise slower than their spawn speed
	zigzagFrequency  = 3   // Radians per simulated second
	hesitationFloor  = 0.2 // Speed factor right after spawning
	muzzleSparkCount = 5
)

// initEnemies places the opening traffic above the road, staggered.
func initEnemies(s *State, rng *rand.Rand) {
	cfg := s.Config().Enemies
	for i := 0; i < cfg.BaseCount; i++ {
		y := cfg.RespawnY - 100 - float64(i)*cfg.InitialSpacing
		s.AddEnemy(createEnemy(s, rng, y))
	}
}

// updateEnemies moves traffic, runs zigzag and shooter behavior, and
// recycles enemies that left the bottom of the road.
func updateEnemies(s *State, rng *rand.Rand, ev *eventLog) {
	cfg := s.Config()
	road := cfg.Road
	slow := s.SlowMoFactor()
	now := s.Now()

	for _, e := range s.Enemies() {
		speed := e.Speed * slow
		if e.Type == EnemyShooter {
			speed *= shooterDrift
		}
		if e.Y < 0 {
			if h := hesitation(cfg.Enemies, e.ID); now-e.SpawnAt < h {
				speed *= hesitationFloor + (1-hesitationFloor)*float64(now-e.SpawnAt)/float64(h)
			}
		}
		e.Y += speed

		switch e.Type {
		case EnemyZigzag:
			t := (now - e.SpawnAt).Seconds()
			e.X = e.AnchorX + cfg.Enemies.ZigzagAmplitude*math.Sin(zigzagFrequency*t+e.Phase)
		case EnemyShooter:
			if e.Y > 0 && e.Y < road.Height*cfg.Enemies.FireZone && now >= e.NextFire {
				s.AddProjectile(createProjectile(s, e))
				e.NextFire = now + config.Millis(cfg.Enemies.FireCooldownMS)
				ev.emit(core.EventProjectileFired, e.Type.String(), 0)
				for i := 0; i < muzzleSparkCount; i++ {
					emitSparkle(s, rng,
						e.X+e.Width/2+(rng.Float64()-0.5)*20,
						e.Y+e.Height+(rng.Float64()-0.5)*10,
						core.ColorHotPink)
				}
			}
		}
		e.X = core.ClampF(e.X, 0, road.Width-e.Width)

		if e.Y > road.Height+road.ExitMargin {
			s.ReplaceEnemy(e.ID, createEnemy(s, rng, cfg.Enemies.RespawnY))
			s.AddScore(e.Type.Points())
			continue
		}
		s.UpdateEnemy(e.ID, e)
	}
}

// topUpEnemies adds at most one enemy per step until the level's target
// population is reached. Traffic is never culled.
func topUpEnemies(s *State, rng *rand.Rand) {
	target := s.Difficulty().ForLevel(s.Level()).EnemyCount
	if s.EnemyCount() < target {
		s.AddEnemy(createEnemy(s, rng, s.Config().Enemies.TopUpY))
	}
}
