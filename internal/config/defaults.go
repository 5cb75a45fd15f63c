package config

import (
	_ "embed"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultRacerConfig returns the built-in configuration.
// It mirrors defaults/racer.yaml and is used when the embedded file cannot be parsed.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Road: RoadConfig{
			Width:       400,
			Height:      800,
			Lanes:       4,
			LineCount:   10,
			LineSpacing: 100,
			LineHeight:  50,
			ExitMargin:  100,
		},
		Player: PlayerConfig{
			Width:           50,
			Height:          80,
			Speed:           8,
			StartOffset:     150,
			HitboxInset:     5,
			BoostMultiplier: 1.5,
			BoostMS:         3000,
			BoostCost:       25,
			BoostRecharge:   5,
			RainGrip:        0.85,
		},
		Speed: SpeedConfig{
			Base:              5,
			Max:               20,
			RampPerStep:       0.01,
			EndlessStepScore:  500,
			EndlessStepAmount: 0.5,
		},
		Enemies: EnemiesConfig{
			BaseCount:         3,
			HitboxInset:       3,
			InitialSpacing:    250,
			RespawnY:          -100,
			TopUpY:            -300,
			FireCooldownMS:    2000,
			FireZone:          0.7,
			ProjectileSpeed:   12,
			ZigzagMinLevel:    4,
			ShooterMinLevel:   6,
			ZigzagAmplitude:   40,
			HesitationMinMS:   200,
			HesitationRangeMS: 300,
		},
		PowerUps: PowerUpsConfig{
			Size:           30,
			SpawnChance:    0.002,
			ChanceDecay:    0.0003,
			MinSpawnChance: 0.0005,
			MaxOnScreen:    3,
			ShieldMS:       5000,
			SlowMoMS:       4000,
			MagnetMS:       6000,
			MagnetPull:     3,
			SlowMoFactor:   0.5,
		},
		Combo: ComboConfig{
			BaseTimeMS:       3000,
			TimePerUnitMS:    150,
			CloseCall:        30,
			NearMiss:         15,
			PerfectDodge:     5,
			MaxMultiplier:    10,
			UnitsPerStep:     3,
			StepIncrement:    0.5,
			EventPoints:      10,
			PowerUpPoints:    50,
			PowerUpUnits:     2,
			EndBonusMinCount: 5,
			EndBonusPerUnit:  25,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			StartLevel:      1,
			MaxLevel:        15,
			ThresholdBase:   1000,
			SpeedPerLevel:   0.5,
			MaxSpeedBonus:   10,
			MaxExtraEnemies: 6,
		},
		TimeTrial: TimeTrialConfig{
			DurationSeconds: 120,
		},
		Particles: ParticlesConfig{
			Capacity: 512,
		},
		Weather: "clear",
	}
}

// GetDefaultYAML returns the embedded default YAML for a game ID.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "racer", "racer_timetrial", "racer_zen":
		return defaultRacerYAML
	default:
		return nil
	}
}
