package racer

import (
	"time"

	"github.com/vovakirdan/neon-highway/internal/core"
)

// Mode selects the rules of a run.
type Mode int

const (
	ModeEndless Mode = iota
	ModeTimeTrial
	ModeZen
)

func (m Mode) String() string {
	switch m {
	case ModeEndless:
		return "endless"
	case ModeTimeTrial:
		return "timetrial"
	case ModeZen:
		return "zen"
	default:
		return "unknown"
	}
}

// EnemyType identifies a traffic archetype. The declaration order is the
// order weighted selection walks, so it must not be rearranged.
type EnemyType int

const (
	EnemyNormal EnemyType = iota
	EnemyFast
	EnemyTank
	EnemyZigzag
	EnemyShooter
	enemyTypeCount
)

// enemySpec holds the per-type multipliers applied at spawn time.
type enemySpec struct {
	speed  float64 // Multiplier on the current road speed
	width  float64
	height float64
	color  core.Color
	points int // Awarded when the enemy is passed
}

var enemySpecs = [enemyTypeCount]enemySpec{
	EnemyNormal:  {speed: 0.8, width: 50, height: 80, color: core.ColorPink, points: 10},
	EnemyFast:    {speed: 1.5, width: 45, height: 60, color: core.ColorCyan, points: 15},
	EnemyTank:    {speed: 0.5, width: 55, height: 120, color: core.ColorPurple, points: 25},
	EnemyZigzag:  {speed: 1.1, width: 45, height: 70, color: core.ColorOrange, points: 20},
	EnemyShooter: {speed: 0.7, width: 50, height: 75, color: core.ColorHotPink, points: 30},
}

func (t EnemyType) spec() enemySpec {
	if t < 0 || t >= enemyTypeCount {
		return enemySpecs[EnemyNormal]
	}
	return enemySpecs[t]
}

// Points returns the score awarded for passing an enemy of this type.
func (t EnemyType) Points() int {
	return t.spec().points
}

func (t EnemyType) String() string {
	switch t {
	case EnemyNormal:
		return "normal"
	case EnemyFast:
		return "fast"
	case EnemyTank:
		return "tank"
	case EnemyZigzag:
		return "zigzag"
	case EnemyShooter:
		return "shooter"
	default:
		return "unknown"
	}
}

// PowerUpType identifies a pickup.
type PowerUpType int

const (
	PowerUpShield PowerUpType = iota
	PowerUpBoost
	PowerUpSlowMo
	PowerUpMagnet
	powerUpTypeCount
)

func (p PowerUpType) String() string {
	switch p {
	case PowerUpShield:
		return "shield"
	case PowerUpBoost:
		return "boost"
	case PowerUpSlowMo:
		return "slowmo"
	case PowerUpMagnet:
		return "magnet"
	default:
		return "unknown"
	}
}

// Glyph is the letter drawn inside the pickup box.
func (p PowerUpType) Glyph() rune {
	switch p {
	case PowerUpShield:
		return 'S'
	case PowerUpBoost:
		return 'B'
	case PowerUpSlowMo:
		return 'T'
	case PowerUpMagnet:
		return 'M'
	default:
		return '?'
	}
}

// Color is the pickup's display color.
func (p PowerUpType) Color() core.Color {
	switch p {
	case PowerUpShield:
		return core.ColorBrightCyan
	case PowerUpBoost:
		return core.ColorOrange
	case PowerUpSlowMo:
		return core.ColorBrightMagenta
	case PowerUpMagnet:
		return core.ColorBrightYellow
	default:
		return core.ColorWhite
	}
}

// CloseCallTier grades how near an enemy passed the player.
type CloseCallTier int

const (
	TierNone CloseCallTier = iota
	TierCloseCall
	TierNearMiss
	TierPerfectDodge
)

func (t CloseCallTier) String() string {
	switch t {
	case TierCloseCall:
		return "close_call"
	case TierNearMiss:
		return "near_miss"
	case TierPerfectDodge:
		return "perfect_dodge"
	default:
		return "none"
	}
}

// Units returns the combo units the tier is worth.
func (t CloseCallTier) Units() int {
	switch t {
	case TierCloseCall:
		return 1
	case TierNearMiss:
		return 3
	case TierPerfectDodge:
		return 5
	default:
		return 0
	}
}

// Player is the controlled vehicle.
type Player struct {
	X, Y        float64
	Width       float64
	Height      float64
	Speed       float64
	BoostActive bool
	BoostUntil  time.Duration // Simulated time at which boost ends
	BoostEnergy float64       // 0-100 gauge
}

// Bounds returns the player's visual box.
func (p Player) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Enemy is one traffic vehicle.
type Enemy struct {
	ID       EntityID
	X, Y     float64
	Width    float64
	Height   float64
	Speed    float64
	Type     EnemyType
	Color    core.Color
	SpawnAt  time.Duration // Simulated spawn time
	AnchorX  float64       // Lane position the zigzag oscillates around
	Phase    float64       // Wobble phase derived from the id
	NextFire time.Duration // Shooter cooldown deadline
	BestTier CloseCallTier // Closest call awarded during this pass
}

// Bounds returns the enemy's visual box.
func (e Enemy) Bounds() core.RectF {
	return core.NewRectF(e.X, e.Y, e.Width, e.Height)
}

// PowerUp is a collectible pickup.
type PowerUp struct {
	ID     EntityID
	X, Y   float64
	Size   float64
	Type   PowerUpType
	Active bool
}

// Bounds returns the pickup's box.
func (p PowerUp) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Size, p.Size)
}

// Projectile is a shot fired by a shooter enemy.
type Projectile struct {
	ID     EntityID
	X, Y   float64
	Width  float64
	Height float64
	Speed  float64
	Owner  EntityID
}

// Bounds returns the projectile's box.
func (p Projectile) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Particle is a short-lived visual effect point.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Color   core.Color
	Size    float64
}

// RoadLine is one dashed lane marker segment.
type RoadLine struct {
	Y      float64
	Height float64
}
