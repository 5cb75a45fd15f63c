package racer

import (
	"testing"
	"time"
)

func TestAchievementTrackerFiresOnce(t *testing.T) {
	tr := newAchievementTracker([]string{"marathon"})
	stats := RunStats{Speed: 16, Distance: 20000, Elapsed: time.Minute}

	got := tr.check(stats)
	if len(got) != 1 || got[0].ID != "speed_demon" {
		t.Fatalf("unlocked %+v, want speed_demon only", got)
	}
	if again := tr.check(stats); len(again) != 0 {
		t.Errorf("unlocked twice: %+v", again)
	}
	if len(tr.run) != 1 {
		t.Errorf("run unlocks = %v", tr.run)
	}
	tr.resetRun()
	if len(tr.run) != 0 {
		t.Error("resetRun kept the run list")
	}
}

func TestGhostBusterNeedsAGhost(t *testing.T) {
	tr := newAchievementTracker(nil)
	for _, a := range tr.check(RunStats{Score: 500}) {
		if a.ID == "ghost_buster" {
			t.Fatal("ghost_buster unlocked without a ghost")
		}
	}
	got := tr.check(RunStats{Score: 500, GhostScore: 400})
	if len(got) != 1 || got[0].ID != "ghost_buster" {
		t.Errorf("unlocked %+v, want ghost_buster", got)
	}
}

func TestAchievementByID(t *testing.T) {
	if a, ok := AchievementByID("collector"); !ok || a.Name == "" {
		t.Errorf("AchievementByID(collector) = %+v, %v", a, ok)
	}
	if _, ok := AchievementByID("nope"); ok {
		t.Error("unknown id found")
	}
	if len(Achievements()) != 8 {
		t.Errorf("Achievements() = %d entries", len(Achievements()))
	}
}
