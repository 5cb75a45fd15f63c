package racer

import "math"

// Snapshot contains the simulation state for replay and determinism checks.
// Positions are stored in hundredths of a world pixel.
type Snapshot struct {
	Tick      uint64
	Phase     int
	Score     int
	Level     int
	Speed     int
	Distance  int
	ClockMS   int64
	PlayerX   int
	PlayerY   int
	Energy    int
	Combo     int // Multiplier in tenths
	ComboUnit int

	// Each enemy is 4 ints: Type, X, Y, Speed
	EnemyData []int
	// Each pickup is 3 ints: Type, X, Y
	PowerUpData []int
	// Each projectile is 2 ints: X, Y
	ProjectileData []int
	ParticleCount  int
}

func fixed(v float64) int {
	return int(math.Round(v * 100))
}

// Snapshot returns the current state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	p := s.Player()
	combo := g.combo.State()

	snap := Snapshot{
		Tick:          g.tick,
		Phase:         int(s.Phase()),
		Score:         s.Score(),
		Level:         s.Level(),
		Speed:         fixed(s.Speed()),
		Distance:      fixed(s.Distance()),
		ClockMS:       s.Now().Milliseconds(),
		PlayerX:       fixed(p.X),
		PlayerY:       fixed(p.Y),
		Energy:        fixed(p.BoostEnergy),
		Combo:         int(math.Round(combo.Multiplier * 10)),
		ComboUnit:     combo.Count,
		ParticleCount: s.ParticleCount(),
	}
	for _, e := range s.Enemies() {
		snap.EnemyData = append(snap.EnemyData, int(e.Type), fixed(e.X), fixed(e.Y), fixed(e.Speed))
	}
	for _, pu := range s.PowerUps() {
		snap.PowerUpData = append(snap.PowerUpData, int(pu.Type), fixed(pu.X), fixed(pu.Y))
	}
	for _, pr := range s.Projectiles() {
		snap.ProjectileData = append(snap.ProjectileData, fixed(pr.X), fixed(pr.Y))
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Speed)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Distance)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ClockMS)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Energy)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Combo)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ComboUnit) //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.PowerUpData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.ProjectileData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.ParticleCount) //#nosec G115 -- hash computation
	return h
}
