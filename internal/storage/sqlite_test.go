package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/neon-highway/internal/games/racer"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func run(mode string, score int) racer.RunRecord {
	return racer.RunRecord{
		Mode:          mode,
		Score:         score,
		Distance:      float64(score) * 2,
		Level:         score/1000 + 1,
		MaxMultiplier: 1.5,
		ComboBonus:    10,
		Duration:      90 * time.Second,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveRunAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if err := store.SaveRun(run("racer", score)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if err := store.SaveRun(run("racer_zen", 500)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	scores, err := store.TopScores("racer", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	top := scores[0]
	if top.Distance != 400 || top.Level != 1 || top.MaxMultiplier != 1.5 || top.ComboBonus != 10 {
		t.Errorf("run fields not round-tripped: %+v", top)
	}
	if top.Duration != 90*time.Second {
		t.Errorf("Duration = %v, want 1m30s", top.Duration)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}

	zen, _ := store.TopScores("racer_zen", 10)
	if len(zen) != 1 {
		t.Errorf("Expected 1 zen score, got %d", len(zen))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRun(run("racer", (i+1)*100))
	}

	scores, err := store.TopScores("racer", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("racer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	store.SaveHighScore("racer", 300)
	store.SaveHighScore("racer", 120)

	high, _ = store.HighScore("racer")
	if high != 300 {
		t.Errorf("lower write replaced the high score: got %d", high)
	}

	store.SaveRun(run("racer", 450))
	high, _ = store.HighScore("racer")
	if high != 450 {
		t.Errorf("Expected high score of 450, got %d", high)
	}

	other, _ := store.HighScore("racer_timetrial")
	if other != 0 {
		t.Errorf("modes leak into each other: %d", other)
	}
}

func TestStoreGhostKeepsBestRun(t *testing.T) {
	store := openTestStore(t)

	data, err := store.BestGhost("racer")
	if err != nil || data != nil {
		t.Fatalf("BestGhost() on empty store = %v, %v", data, err)
	}

	first := run("racer", 200)
	first.Ghost = []byte{1, 2, 3}
	store.SaveRun(first)

	worse := run("racer", 100)
	worse.Ghost = []byte{9}
	store.SaveRun(worse)

	data, _ = store.BestGhost("racer")
	if !reflect.DeepEqual(data, []byte{1, 2, 3}) {
		t.Errorf("worse run replaced the ghost: %v", data)
	}

	better := run("racer", 300)
	better.Ghost = []byte{4, 5}
	store.SaveRun(better)

	data, _ = store.BestGhost("racer")
	if !reflect.DeepEqual(data, []byte{4, 5}) {
		t.Errorf("better run did not replace the ghost: %v", data)
	}
}

func TestStoreGhostRoundTrip(t *testing.T) {
	store := openTestStore(t)

	ghost := racer.Ghost{Mode: "racer", Score: 77, Interval: 6, Frames: []racer.GhostFrame{{X: 10, Y: 500}, {X: 12.5, Y: 490}}}
	data, err := racer.EncodeGhost(ghost)
	if err != nil {
		t.Fatalf("EncodeGhost() failed: %v", err)
	}
	r := run("racer", 77)
	r.Ghost = data
	if err := store.SaveRun(r); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	stored, _ := store.BestGhost("racer")
	got, err := racer.DecodeGhost(stored)
	if err != nil {
		t.Fatalf("DecodeGhost() failed: %v", err)
	}
	if !reflect.DeepEqual(got, ghost) {
		t.Errorf("ghost = %+v, want %+v", got, ghost)
	}
}

func TestStoreAchievements(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"speed_demon", "marathon", "speed_demon"} {
		if err := store.UnlockAchievement(id); err != nil {
			t.Fatalf("UnlockAchievement(%q) failed: %v", id, err)
		}
	}

	ids, err := store.Achievements()
	if err != nil {
		t.Fatalf("Achievements() failed: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("Expected 2 achievements, got %v", ids)
	}
	seen := map[string]bool{}
	for _, id := range ids {
		seen[id] = true
	}
	if !seen["speed_demon"] || !seen["marathon"] {
		t.Errorf("achievements = %v", ids)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run("racer", 100))
	store.SaveHighScore("racer", 900)
	store.SaveRun(run("racer_zen", 300))

	if err := store.ClearScores("racer"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("racer", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if high, _ := store.HighScore("racer"); high != 0 {
		t.Errorf("high score survived clear: %d", high)
	}

	zen, _ := store.TopScores("racer_zen", 10)
	if len(zen) != 1 {
		t.Errorf("Zen scores should not be affected by clearing racer")
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetModeStats("racer")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.RunsCount != 0 || stats.HighScore != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveRun(run("racer", 100))
	store.SaveRun(run("racer", 300))
	store.SaveHighScore("racer", 1000)
	store.SaveRun(run("racer_zen", 50))

	stats, _ = store.GetModeStats("racer")
	if stats.RunsCount != 2 {
		t.Errorf("RunsCount = %d, want 2", stats.RunsCount)
	}
	if stats.HighScore != 1000 {
		t.Errorf("HighScore = %d, want 1000", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.TotalDistance != 800 {
		t.Errorf("TotalDistance = %v, want 800", stats.TotalDistance)
	}

	all, err := store.GetAllModesStats()
	if err != nil {
		t.Fatalf("GetAllModesStats() failed: %v", err)
	}
	if len(all) != 2 || all["racer_zen"].RunsCount != 1 {
		t.Errorf("all stats = %+v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/.neonhighway/scores.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".neonhighway", "scores.db"); got != want {
		t.Errorf("ExpandPath() = %q, want %q", got, want)
	}
	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	if got := parseTimestamp("2026-03-04 05:06:07"); !got.Equal(want) {
		t.Errorf("string: got %v", got)
	}
	if got := parseTimestamp(want); !got.Equal(want) {
		t.Errorf("time: got %v", got)
	}
	if got := parseTimestamp(nil); !got.IsZero() {
		t.Errorf("nil: got %v", got)
	}
}
