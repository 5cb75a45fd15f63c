package config

import (
	"fmt"
	"math"
)

// levelNames are the rank titles shown for each level.
var levelNames = []string{
	"ROOKIE",
	"BEGINNER",
	"NOVICE",
	"APPRENTICE",
	"DRIVER",
	"EXPERIENCED",
	"SKILLED",
	"EXPERT",
	"MASTER",
	"ELITE",
	"LEGEND",
	"CHAMPION",
	"HALL OF FAME",
	"UNTOUCHABLE",
	"GODLIKE",
}

// DifficultyLevel holds the target parameters for one level.
type DifficultyLevel struct {
	Level         int
	Name          string
	Speed         float64 // Target road speed
	EnemyCount    int     // Target traffic population
	PowerUpChance float64 // Per-step power-up spawn probability
	MaxPowerUps   int     // Power-ups allowed on screen at once
}

// DifficultyManager maps score to level and level to gameplay parameters.
type DifficultyManager struct {
	cfg      DifficultyConfig
	speed    SpeedConfig
	enemies  EnemiesConfig
	powerups PowerUpsConfig
}

// NewDifficultyManager creates a difficulty manager for the given config.
func NewDifficultyManager(cfg RacerConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:      cfg.Difficulty,
		speed:    cfg.Speed,
		enemies:  cfg.Enemies,
		powerups: cfg.PowerUps,
	}
}

// IsEnabled returns whether level progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// StartLevel returns the level a run begins at.
func (d *DifficultyManager) StartLevel() int {
	return max(1, min(d.cfg.StartLevel, d.cfg.MaxLevel))
}

// ForLevel returns the difficulty parameters for a level.
func (d *DifficultyManager) ForLevel(level int) DifficultyLevel {
	level = max(1, level)
	return DifficultyLevel{
		Level:         level,
		Name:          LevelName(level),
		Speed:         d.speed.Base + math.Min(float64(level)*d.cfg.SpeedPerLevel, d.cfg.MaxSpeedBonus),
		EnemyCount:    d.enemies.BaseCount + min(level/2, d.cfg.MaxExtraEnemies),
		PowerUpChance: math.Max(d.powerups.SpawnChance-float64(level)*d.powerups.ChanceDecay, d.powerups.MinSpawnChance),
		MaxPowerUps:   min(1+level/2, d.powerups.MaxOnScreen),
	}
}

// Threshold returns the score needed to reach a level.
// Level 1 needs nothing; level n needs ThresholdBase*(n-1)^2.
func (d *DifficultyManager) Threshold(level int) int {
	if level <= 1 {
		return 0
	}
	step := level - 1
	return d.cfg.ThresholdBase * step * step
}

// LevelForScore finds the level for a score by scanning the staircase.
// With progression disabled the level stays at the start level.
func (d *DifficultyManager) LevelForScore(score int) int {
	start := d.StartLevel()
	if !d.cfg.Enabled {
		return start
	}
	level := 1
	for next := 2; next <= d.cfg.MaxLevel; next++ {
		if score < d.Threshold(next) {
			break
		}
		level = next
	}
	return max(level, start)
}

// Progress returns how far a score is between its level and the next, in [0, 1].
func (d *DifficultyManager) Progress(score, level int) float64 {
	if level >= d.cfg.MaxLevel {
		return 1
	}
	lo, hi := d.Threshold(level), d.Threshold(level+1)
	if hi <= lo {
		return 1
	}
	return math.Max(0, math.Min(1, float64(score-lo)/float64(hi-lo)))
}

// EnemyWeights returns spawn weights for a level in enumeration order:
// normal, fast, tank, zigzag, shooter. Gated types weigh 0 below their level.
func (d *DifficultyManager) EnemyWeights(level int) []int {
	zigzag, shooter := 0, 0
	if level >= d.enemies.ZigzagMinLevel {
		zigzag = min(5+level, 25)
	}
	if level >= d.enemies.ShooterMinLevel {
		shooter = min(3+level, 15)
	}
	return []int{
		max(30-level*2, 10),
		min(10+level*3, 30),
		min(5+level*2, 20),
		zigzag,
		shooter,
	}
}

// Description returns a short flavor line for the level.
func (d *DifficultyManager) Description(level int) string {
	speed := d.ForLevel(level).Speed
	switch {
	case level <= 3:
		return fmt.Sprintf("Speed: %.1f | Learn the basics", speed)
	case level <= 7:
		return fmt.Sprintf("Speed: %.1f | Things are heating up!", speed)
	case level <= 12:
		return fmt.Sprintf("Speed: %.1f | Only skilled drivers survive", speed)
	default:
		return fmt.Sprintf("Speed: %.1f | You're playing with fire now!", speed)
	}
}

// LevelName returns the rank title for a level.
func LevelName(level int) string {
	if level < 1 {
		level = 1
	}
	if level > len(levelNames) {
		return "INSANE"
	}
	return levelNames[level-1]
}
