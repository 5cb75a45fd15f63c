// Package config provides YAML-based game configuration loading and
// difficulty management for Neon Highway.
package config

import "time"

// RacerConfig contains all tunables of the racing simulation.
// Distances are world pixels, speeds are pixels per step.
type RacerConfig struct {
	Road       RoadConfig       `yaml:"road"`
	Player     PlayerConfig     `yaml:"player"`
	Speed      SpeedConfig      `yaml:"speed"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	PowerUps   PowerUpsConfig   `yaml:"powerups"`
	Combo      ComboConfig      `yaml:"combo"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	TimeTrial  TimeTrialConfig  `yaml:"time_trial"`
	Particles  ParticlesConfig  `yaml:"particles"`
	Weather    string           `yaml:"weather"` // "clear", "rain" or "fog"
}

// RoadConfig defines the playfield.
type RoadConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Lanes       int     `yaml:"lanes"`
	LineCount   int     `yaml:"line_count"`
	LineSpacing float64 `yaml:"line_spacing"`
	LineHeight  float64 `yaml:"line_height"`
	ExitMargin  float64 `yaml:"exit_margin"` // Distance past the bottom before an entity leaves play
}

// PlayerConfig defines the player vehicle.
type PlayerConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	StartOffset     float64 `yaml:"start_offset"` // Distance of the car's top edge from the road bottom
	HitboxInset     float64 `yaml:"hitbox_inset"`
	BoostMultiplier float64 `yaml:"boost_multiplier"`
	BoostMS         int     `yaml:"boost_ms"`
	BoostCost       float64 `yaml:"boost_cost"`
	BoostRecharge   float64 `yaml:"boost_recharge"` // Energy regained per simulated second
	RainGrip        float64 `yaml:"rain_grip"`      // Steering multiplier in rain
}

// SpeedConfig defines road speed and its ramp.
type SpeedConfig struct {
	Base              float64 `yaml:"base"`
	Max               float64 `yaml:"max"`
	RampPerStep       float64 `yaml:"ramp_per_step"`
	EndlessStepScore  int     `yaml:"endless_step_score"`
	EndlessStepAmount float64 `yaml:"endless_step_amount"`
}

// EnemiesConfig defines traffic.
type EnemiesConfig struct {
	BaseCount         int     `yaml:"base_count"`
	HitboxInset       float64 `yaml:"hitbox_inset"`
	InitialSpacing    float64 `yaml:"initial_spacing"`
	RespawnY          float64 `yaml:"respawn_y"`
	TopUpY            float64 `yaml:"top_up_y"`
	FireCooldownMS    int     `yaml:"fire_cooldown_ms"`
	FireZone          float64 `yaml:"fire_zone"` // Fraction of the road height in which shooters fire
	ProjectileSpeed   float64 `yaml:"projectile_speed"`
	ZigzagMinLevel    int     `yaml:"zigzag_min_level"`
	ShooterMinLevel   int     `yaml:"shooter_min_level"`
	ZigzagAmplitude   float64 `yaml:"zigzag_amplitude"`
	HesitationMinMS   int     `yaml:"hesitation_min_ms"`
	HesitationRangeMS int     `yaml:"hesitation_range_ms"`
}

// PowerUpsConfig defines pickups and their effect durations.
type PowerUpsConfig struct {
	Size           float64 `yaml:"size"`
	SpawnChance    float64 `yaml:"spawn_chance"`
	ChanceDecay    float64 `yaml:"chance_decay"`
	MinSpawnChance float64 `yaml:"min_spawn_chance"`
	MaxOnScreen    int     `yaml:"max_on_screen"`
	ShieldMS       int     `yaml:"shield_ms"`
	SlowMoMS       int     `yaml:"slowmo_ms"`
	MagnetMS       int     `yaml:"magnet_ms"`
	MagnetPull     float64 `yaml:"magnet_pull"`
	SlowMoFactor   float64 `yaml:"slowmo_factor"`
}

// ComboConfig defines close-call thresholds and combo scoring.
type ComboConfig struct {
	BaseTimeMS       int     `yaml:"base_time_ms"`
	TimePerUnitMS    int     `yaml:"time_per_unit_ms"`
	CloseCall        float64 `yaml:"close_call"`
	NearMiss         float64 `yaml:"near_miss"`
	PerfectDodge     float64 `yaml:"perfect_dodge"`
	MaxMultiplier    float64 `yaml:"max_multiplier"`
	UnitsPerStep     int     `yaml:"units_per_step"`
	StepIncrement    float64 `yaml:"step_increment"`
	EventPoints      int     `yaml:"event_points"`
	PowerUpPoints    int     `yaml:"powerup_points"`
	PowerUpUnits     int     `yaml:"powerup_units"`
	EndBonusMinCount int     `yaml:"end_bonus_min_count"`
	EndBonusPerUnit  int     `yaml:"end_bonus_per_unit"`
}

// DifficultyConfig defines the level staircase and per-level scaling.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`
	StartLevel      int     `yaml:"start_level"`
	MaxLevel        int     `yaml:"max_level"`
	ThresholdBase   int     `yaml:"threshold_base"`
	SpeedPerLevel   float64 `yaml:"speed_per_level"`
	MaxSpeedBonus   float64 `yaml:"max_speed_bonus"`
	MaxExtraEnemies int     `yaml:"max_extra_enemies"`
}

// TimeTrialConfig defines the time trial countdown.
type TimeTrialConfig struct {
	DurationSeconds int `yaml:"duration_seconds"`
}

// ParticlesConfig sizes the particle buffer.
type ParticlesConfig struct {
	Capacity int `yaml:"capacity"`
}

// Millis converts a millisecond config value to a duration.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
