package racer

import (
	"github.com/vovakirdan/neon-highway/internal/config"
	"github.com/vovakirdan/neon-highway/internal/core"
)

// CheckCollision reports whether two boxes touch or overlap.
func CheckCollision(a, b core.RectF) bool {
	return a.Overlaps(b)
}

func playerHitbox(s *State) core.RectF {
	return s.Player().Bounds().Inset(s.Config().Player.HitboxInset)
}

// CheckPlayerEnemyCollision returns the first enemy, in slot order, whose
// shrunken hitbox overlaps the player's. A shield means no collision.
func CheckPlayerEnemyCollision(s *State) (Enemy, bool) {
	if s.Shielded() {
		return Enemy{}, false
	}
	hb := playerHitbox(s)
	inset := s.Config().Enemies.HitboxInset
	for _, e := range s.Enemies() {
		if CheckCollision(hb, e.Bounds().Inset(inset)) {
			return e, true
		}
	}
	return Enemy{}, false
}

// CheckPlayerProjectileCollision returns the first projectile hitting the player.
func CheckPlayerProjectileCollision(s *State) (Projectile, bool) {
	if s.Shielded() {
		return Projectile{}, false
	}
	hb := playerHitbox(s)
	for _, p := range s.Projectiles() {
		if CheckCollision(hb, p.Bounds()) {
			return p, true
		}
	}
	return Projectile{}, false
}

// CollectPowerUps removes and returns every pickup touching the player's
// full bounds.
func CollectPowerUps(s *State) []PowerUp {
	pb := s.Player().Bounds()
	var got []PowerUp
	for _, p := range s.PowerUps() {
		if p.Active && CheckCollision(pb, p.Bounds()) {
			s.RemovePowerUp(p.ID)
			got = append(got, p)
		}
	}
	return got
}

// ClassifyCloseCall grades a player-enemy distance.
func ClassifyCloseCall(cfg config.ComboConfig, dist float64) CloseCallTier {
	switch {
	case dist < cfg.PerfectDodge:
		return TierPerfectDodge
	case dist < cfg.NearMiss:
		return TierNearMiss
	case dist < cfg.CloseCall:
		return TierCloseCall
	default:
		return TierNone
	}
}

// detectCloseCalls scores enemies passing near the player. An enemy awards
// again during one pass only when it comes closer than before.
func detectCloseCalls(s *State, combo *Combo, ev *eventLog) {
	cfg := s.Config().Combo
	pb := s.Player().Bounds()
	for _, e := range s.Enemies() {
		if e.Y+e.Height < pb.Y {
			continue
		}
		tier := ClassifyCloseCall(cfg, pb.Distance(e.Bounds()))
		if tier <= e.BestTier {
			continue
		}
		e.BestTier = tier
		s.UpdateEnemy(e.ID, e)

		combo.AddEvent(tier.Units())
		points := combo.Points(cfg.EventPoints)
		s.AddScore(points)
		ev.emit(core.EventCloseCall, tier.String(), points)
	}
}
