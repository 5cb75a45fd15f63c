package racer

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/neon-highway/internal/core"
)

// speedLineThreshold is the road speed above which speed lines appear.
const speedLineThreshold = 10

// emitExplosion bursts count particles outward from (x, y).
func emitExplosion(s *State, rng *rand.Rand, x, y float64, c core.Color, count int) {
	for i := 0; i < count; i++ {
		angle := float64(i) / float64(count) * 2 * math.Pi
		speed := 2 + rng.Float64()*4
		s.AddParticle(Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			MaxLife: 30 + rng.Intn(20),
			Color:   c,
			Size:    2 + rng.Float64()*4,
		})
	}
}

// emitTrail drops an exhaust particle behind the player.
func emitTrail(s *State, rng *rand.Rand) {
	p := s.Player()
	c := core.ColorCyan
	if p.BoostActive {
		c = core.ColorOrange
	}
	s.AddParticle(Particle{
		X:       p.X + p.Width/2 + (rng.Float64()-0.5)*20,
		Y:       p.Y + p.Height,
		VY:      s.Speed() * 0.5,
		MaxLife: 15,
		Color:   c,
		Size:    3 + rng.Float64()*3,
	})
}

// emitSpeedLines adds streaks when the road is fast.
func emitSpeedLines(s *State, rng *rand.Rand) {
	if s.Speed() <= speedLineThreshold || rng.Float64() > 0.3 {
		return
	}
	s.AddParticle(Particle{
		X:       rng.Float64() * s.Config().Road.Width,
		Y:       0,
		VY:      s.Speed() * 2,
		MaxLife: 40,
		Color:   core.ColorWhite,
		Size:    1 + rng.Float64()*2,
	})
}

// emitSparkle adds one slow drifting spark.
func emitSparkle(s *State, rng *rand.Rand, x, y float64, c core.Color) {
	s.AddParticle(Particle{
		X:       x,
		Y:       y,
		VX:      (rng.Float64() - 0.5) * 2,
		VY:      (rng.Float64() - 0.5) * 2,
		MaxLife: 20,
		Color:   c,
		Size:    2,
	})
}

// emitShield rings the player with short sparks while protected.
func emitShield(s *State, rng *rand.Rand) {
	if !s.Shielded() || rng.Float64() > 0.3 {
		return
	}
	b := s.Player().Bounds()
	cx, cy := b.Center()
	angle := rng.Float64() * 2 * math.Pi
	r := math.Max(b.W, b.H) / 2
	s.AddParticle(Particle{
		X:       cx + math.Cos(angle)*r,
		Y:       cy + math.Sin(angle)*r,
		VX:      (rng.Float64() - 0.5) * 2,
		VY:      (rng.Float64() - 0.5) * 2,
		MaxLife: 10,
		Color:   core.ColorBrightCyan,
		Size:    2,
	})
}
