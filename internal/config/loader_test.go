package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	embedded, err := parseRacer(defaultRacerYAML)
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if embedded != DefaultRacerConfig() {
		t.Errorf("embedded YAML and DefaultRacerConfig() disagree:\n%+v\n%+v", embedded, DefaultRacerConfig())
	}
}

func TestLoadRacerCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "racer.yaml")
	data := []byte("road:\n  lanes: 3\nspeed:\n  base: 7\n  max: 25\nweather: rain\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadRacer(path)
	if err != nil {
		t.Fatalf("LoadRacer() failed: %v", err)
	}
	if cfg.Road.Lanes != 3 || cfg.Speed.Base != 7 || cfg.Speed.Max != 25 || cfg.Weather != "rain" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Road.Width != 400 || cfg.Player.Width != 50 {
		t.Errorf("unspecified keys should keep defaults: road=%+v player=%+v", cfg.Road, cfg.Player)
	}
}

func TestLoadRacerMissingCustomPath(t *testing.T) {
	_, err := LoadRacer(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadRacer() with a missing explicit path should fail")
	}
}

func TestLoadRacerRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("road:\n  lanes: 0\nweather: snow\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadRacer(path); err == nil {
		t.Fatal("LoadRacer() should reject zero lanes and unknown weather")
	}
}

func TestLoadRacerFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadRacer("")
	if err != nil {
		t.Fatalf("LoadRacer() failed: %v", err)
	}
	if cfg != DefaultRacerConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestApplyRacerPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		base    float64
	}{
		{DifficultyEasy, true, 4},
		{DifficultyNormal, true, 5},
		{DifficultyHard, true, 6},
		{DifficultyFixed, false, 5},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRacerConfig()
			ApplyRacerPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Speed.Base != tc.base {
				t.Errorf("Speed.Base = %v, expected %v", cfg.Speed.Base, tc.base)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("extreme") != "" {
		t.Error("unknown preset should parse to empty")
	}
}
