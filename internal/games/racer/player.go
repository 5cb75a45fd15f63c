package racer

import (
	"time"

	"github.com/vovakirdan/neon-highway/internal/config"
	"github.com/vovakirdan/neon-highway/internal/core"
)

const diagonalFactor = 0.707

// updatePlayer applies held input to the player and runs the nitro gauge.
func updatePlayer(s *State, w Weather, dt time.Duration, ev *eventLog) {
	cfg := s.Config().Player
	p := s.Player()
	in := s.Input()

	speed := p.Speed
	if p.BoostActive {
		speed *= cfg.BoostMultiplier
	}
	speed *= s.SlowMoFactor()

	var dx, dy float64
	if in.Has(core.ActionLeft) {
		dx -= speed
	}
	if in.Has(core.ActionRight) {
		dx += speed
	}
	if in.Has(core.ActionUp) {
		dy -= speed
	}
	if in.Has(core.ActionDown) {
		dy += speed
	}
	if dx != 0 && dy != 0 {
		dx *= diagonalFactor
		dy *= diagonalFactor
	}
	dx *= w.Grip(cfg.RainGrip)

	s.SetPlayerPosition(p.X+dx, p.Y+dy)

	switch {
	case p.BoostActive:
	case in.Has(core.ActionBoost) && p.BoostEnergy >= cfg.BoostCost:
		s.SetBoostEnergy(p.BoostEnergy - cfg.BoostCost)
		s.SetPlayerBoost(true, s.Now()+config.Millis(cfg.BoostMS))
		ev.emit(core.EventBoostStart, "nitro", 0)
	default:
		s.SetBoostEnergy(p.BoostEnergy + cfg.BoostRecharge*dt.Seconds())
	}
}

// effectiveSpeed is the road speed the player experiences.
func effectiveSpeed(s *State) float64 {
	v := s.Speed()
	if s.Player().BoostActive {
		v *= s.Config().Player.BoostMultiplier
	}
	return v
}
