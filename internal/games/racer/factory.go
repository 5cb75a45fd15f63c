package racer

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/neon-highway/internal/config"
)

const (
	projectileSize = 8
)

// pickWeighted walks weights in order, subtracting each from r until the
// remainder drops to zero or below. r must lie in [0, sum(weights)).
// Earlier entries win ties, and a table of zeros yields index 0.
func pickWeighted(weights []int, r float64) int {
	for i, w := range weights {
		r -= float64(w)
		if r <= 0 {
			return i
		}
	}
	return 0
}

// selectEnemyType draws a type using the level's weight table.
func selectEnemyType(rng *rand.Rand, weights []int) EnemyType {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return EnemyNormal
	}
	idx := pickWeighted(weights, rng.Float64()*float64(total))
	if idx >= int(enemyTypeCount) {
		return EnemyNormal
	}
	return EnemyType(idx)
}

// laneX returns the x that centers an object of width w in a lane.
func laneX(cfg config.RoadConfig, lane int, w float64) float64 {
	laneWidth := cfg.Width / float64(cfg.Lanes)
	return float64(lane)*laneWidth + (laneWidth-w)/2
}

// createEnemy builds an enemy in a random lane at spawnY. Type follows the
// current level's weights; speed and size follow the type.
func createEnemy(s *State, rng *rand.Rand, spawnY float64) Enemy {
	cfg := s.Config()
	lane := rng.Intn(cfg.Road.Lanes)
	typ := selectEnemyType(rng, s.Difficulty().EnemyWeights(s.Level()))
	spec := typ.spec()
	x := laneX(cfg.Road, lane, spec.width)

	return Enemy{
		X:        x,
		Y:        spawnY,
		Width:    spec.width,
		Height:   spec.height,
		Speed:    s.Speed() * spec.speed,
		Type:     typ,
		Color:    spec.color,
		SpawnAt:  s.Now(),
		AnchorX:  x,
		NextFire: s.Now(),
	}
}

// createPowerUp builds a pickup of a random type in a random lane.
func createPowerUp(s *State, rng *rand.Rand, spawnY float64) PowerUp {
	cfg := s.Config()
	lane := rng.Intn(cfg.Road.Lanes)
	return PowerUp{
		X:      laneX(cfg.Road, lane, cfg.PowerUps.Size),
		Y:      spawnY,
		Size:   cfg.PowerUps.Size,
		Type:   PowerUpType(rng.Intn(int(powerUpTypeCount))),
		Active: true,
	}
}

// createProjectile builds a shot leaving the bottom center of e.
func createProjectile(s *State, e Enemy) Projectile {
	return Projectile{
		X:      e.X + e.Width/2 - projectileSize/2,
		Y:      e.Y + e.Height,
		Width:  projectileSize,
		Height: projectileSize * 2,
		Speed:  s.Config().Enemies.ProjectileSpeed,
		Owner:  e.ID,
	}
}

// idHash mixes an entity id into a well spread value.
func idHash(id EntityID) uint32 {
	h := id.Index*2654435761 ^ id.Gen*40503
	h ^= h >> 15
	h *= 2246822519
	h ^= h >> 13
	return h
}

// wobblePhase is the zigzag phase offset for an id, in [0, 2π).
func wobblePhase(id EntityID) float64 {
	return float64(idHash(id)%628) / 100
}

// hesitation is how long an enemy takes to reach full speed after spawning.
func hesitation(cfg config.EnemiesConfig, id EntityID) time.Duration {
	extra := 0
	if cfg.HesitationRangeMS > 0 {
		extra = int((idHash(id) >> 8) % uint32(cfg.HesitationRangeMS)) //#nosec G115 -- range comes from config and is positive
	}
	return config.Millis(cfg.HesitationMinMS + extra)
}
