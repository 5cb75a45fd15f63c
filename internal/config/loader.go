package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRacer loads the racing configuration.
// Search order: customPath -> ~/.neonhighway/configs/racer.yaml -> ./configs/racer.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadRacer(customPath string) (RacerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRacerConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseRacer(data)
		if err != nil {
			return DefaultRacerConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("racer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRacer(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "racer.yaml")); err == nil {
		if cfg, err := parseRacer(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseRacer(defaultRacerYAML)
	if err != nil {
		return DefaultRacerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseRacer(data []byte) (RacerConfig, error) {
	cfg := DefaultRacerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c RacerConfig) Validate() error {
	var errs []error
	if c.Road.Width <= 0 || c.Road.Height <= 0 {
		errs = append(errs, errors.New("config: road dimensions must be positive"))
	}
	if c.Road.Lanes < 1 {
		errs = append(errs, fmt.Errorf("config: need at least one lane, got %d", c.Road.Lanes))
	}
	if c.Speed.Max < c.Speed.Base {
		errs = append(errs, fmt.Errorf("config: max speed %.2f below base speed %.2f", c.Speed.Max, c.Speed.Base))
	}
	if c.Particles.Capacity < 1 {
		errs = append(errs, fmt.Errorf("config: particle capacity must be positive, got %d", c.Particles.Capacity))
	}
	if c.Difficulty.MaxLevel < 1 {
		errs = append(errs, fmt.Errorf("config: max level must be positive, got %d", c.Difficulty.MaxLevel))
	}
	if c.Combo.UnitsPerStep < 1 {
		errs = append(errs, fmt.Errorf("config: combo units_per_step must be positive, got %d", c.Combo.UnitsPerStep))
	}
	switch c.Weather {
	case "", "clear", "rain", "fog":
	default:
		errs = append(errs, fmt.Errorf("config: unknown weather %q", c.Weather))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".neonhighway", "configs", filename)
}

// ApplyRacerPreset modifies the config based on a difficulty preset.
func ApplyRacerPreset(cfg *RacerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Speed.Base = 4
		cfg.PowerUps.SpawnChance *= 1.5
		cfg.Player.BoostRecharge *= 1.5
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.StartLevel = 3
		cfg.Speed.Base = 6
		cfg.Enemies.BaseCount++
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
