package racer

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/neon-highway/internal/config"
	"github.com/vovakirdan/neon-highway/internal/core"
)

// spawnPowerUps rolls for a new pickup if the level allows another one.
func spawnPowerUps(s *State, rng *rand.Rand) {
	lvl := s.Difficulty().ForLevel(s.Level())
	if s.PowerUpCount() >= lvl.MaxPowerUps {
		return
	}
	if rng.Float64() < lvl.PowerUpChance {
		s.AddPowerUp(createPowerUp(s, rng, -s.Config().PowerUps.Size))
	}
}

// updatePowerUps scrolls pickups with the road and pulls them toward the
// player while the magnet is on. Inactive or departed pickups are removed.
func updatePowerUps(s *State) {
	cfg := s.Config()
	v := s.Speed() * s.SlowMoFactor()
	magnet := s.Data().MagnetActive
	px, py := s.Player().Bounds().Center()

	for _, p := range s.PowerUps() {
		if !p.Active {
			s.RemovePowerUp(p.ID)
			continue
		}
		p.Y += v
		if magnet {
			cx, cy := p.Bounds().Center()
			p.X += pull(px-cx, cfg.PowerUps.MagnetPull)
			p.Y += pull(py-cy, cfg.PowerUps.MagnetPull)
		}
		if p.Y > cfg.Road.Height+cfg.Road.ExitMargin {
			s.RemovePowerUp(p.ID)
			continue
		}
		s.UpdatePowerUp(p.ID, p)
	}
}

// pull moves at most step along d.
func pull(d, step float64) float64 {
	if math.Abs(d) <= step {
		return d
	}
	return math.Copysign(step, d)
}

// applyPowerUp starts the effect of a collected pickup.
func applyPowerUp(s *State, t PowerUpType, ev *eventLog) {
	cfg := s.Config()
	switch t {
	case PowerUpShield:
		s.ActivateShield(config.Millis(cfg.PowerUps.ShieldMS))
	case PowerUpBoost:
		s.SetPlayerBoost(true, s.Now()+config.Millis(cfg.Player.BoostMS))
		ev.emit(core.EventBoostStart, t.String(), 0)
	case PowerUpSlowMo:
		s.ActivateSlowMo(config.Millis(cfg.PowerUps.SlowMoMS))
	case PowerUpMagnet:
		s.ActivateMagnet(config.Millis(cfg.PowerUps.MagnetMS))
	default:
		return
	}
	ev.emit(core.EventPowerUp, t.String(), 0)
}
