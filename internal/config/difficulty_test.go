package config

import (
	"math"
	"testing"
)

func TestForLevelBase(t *testing.T) {
	d := NewDifficultyManager(DefaultRacerConfig())

	l1 := d.ForLevel(1)
	if l1.EnemyCount != 3 {
		t.Errorf("level 1 enemy count = %d, expected 3", l1.EnemyCount)
	}
	if l1.Speed != 5.5 {
		t.Errorf("level 1 speed = %v, expected 5.5", l1.Speed)
	}
	if l1.Name != "ROOKIE" {
		t.Errorf("level 1 name = %q, expected ROOKIE", l1.Name)
	}

	l2 := d.ForLevel(2)
	if diff := l2.Speed - l1.Speed; math.Abs(diff-0.5) > 1e-9 {
		t.Errorf("level 2 speed should be 0.5 above level 1, got +%v", diff)
	}
}

func TestForLevelCaps(t *testing.T) {
	d := NewDifficultyManager(DefaultRacerConfig())

	top := d.ForLevel(40)
	if top.Speed != 15 {
		t.Errorf("speed bonus should cap at +10, got %v", top.Speed)
	}
	if top.EnemyCount != 9 {
		t.Errorf("enemy count should cap at base+6, got %d", top.EnemyCount)
	}
	if top.PowerUpChance != 0.0005 {
		t.Errorf("power-up chance should floor at 0.0005, got %v", top.PowerUpChance)
	}
	if top.MaxPowerUps != 3 {
		t.Errorf("max power-ups should cap at 3, got %d", top.MaxPowerUps)
	}
	if top.Name != "INSANE" {
		t.Errorf("name past the table = %q, expected INSANE", top.Name)
	}
}

func TestPowerUpChanceDecreases(t *testing.T) {
	d := NewDifficultyManager(DefaultRacerConfig())

	prev := math.Inf(1)
	for level := 1; level <= 15; level++ {
		c := d.ForLevel(level).PowerUpChance
		if c > prev {
			t.Fatalf("power-up chance rose at level %d: %v > %v", level, c, prev)
		}
		prev = c
	}
}

func TestLevelForScore(t *testing.T) {
	d := NewDifficultyManager(DefaultRacerConfig())

	tests := []struct {
		score int
		level int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{3999, 2},
		{4000, 3},
		{9000, 4},
		{196000, 15},
		{10_000_000, 15},
	}

	for _, tc := range tests {
		if got := d.LevelForScore(tc.score); got != tc.level {
			t.Errorf("LevelForScore(%d) = %d, expected %d", tc.score, got, tc.level)
		}
	}
}

func TestLevelForScoreFixedPreset(t *testing.T) {
	cfg := DefaultRacerConfig()
	ApplyRacerPreset(&cfg, DifficultyFixed)
	d := NewDifficultyManager(cfg)

	if got := d.LevelForScore(50000); got != 1 {
		t.Errorf("fixed preset should not progress, got level %d", got)
	}
}

func TestEnemyWeightsGating(t *testing.T) {
	d := NewDifficultyManager(DefaultRacerConfig())

	w := d.EnemyWeights(1)
	expected := []int{28, 13, 7, 0, 0}
	for i := range expected {
		if w[i] != expected[i] {
			t.Errorf("level 1 weights = %v, expected %v", w, expected)
			break
		}
	}

	if d.EnemyWeights(3)[3] != 0 {
		t.Error("zigzag should be gated below level 4")
	}
	if d.EnemyWeights(4)[3] == 0 {
		t.Error("zigzag should be enabled at level 4")
	}
	if d.EnemyWeights(5)[4] != 0 {
		t.Error("shooter should be gated below level 6")
	}
	if d.EnemyWeights(6)[4] == 0 {
		t.Error("shooter should be enabled at level 6")
	}
}

func TestProgress(t *testing.T) {
	d := NewDifficultyManager(DefaultRacerConfig())

	if p := d.Progress(500, 1); p != 0.5 {
		t.Errorf("Progress(500, 1) = %v, expected 0.5", p)
	}
	if p := d.Progress(0, 15); p != 1 {
		t.Errorf("Progress at max level = %v, expected 1", p)
	}
}
