package racer

import "time"

// Achievement is a one-time unlock.
type Achievement struct {
	ID          string
	Name        string
	Description string
	check       func(RunStats) bool
}

// RunStats are the per-run numbers achievements are judged on.
type RunStats struct {
	Score         int
	Speed         float64
	Distance      float64
	MaxMultiplier float64
	Elapsed       time.Duration
	Boosts        int
	PowerUps      int
	GhostScore    int // Score of the ghost being raced, 0 when none
}

var achievementList = []Achievement{
	{ID: "speed_demon", Name: "Speed Demon", Description: "Reach speed 15",
		check: func(r RunStats) bool { return r.Speed >= 15 }},
	{ID: "marathon", Name: "Marathon", Description: "Travel 10000 units in one run",
		check: func(r RunStats) bool { return r.Distance >= 10000 }},
	{ID: "high_score", Name: "High Roller", Description: "Score 10000 points",
		check: func(r RunStats) bool { return r.Score >= 10000 }},
	{ID: "combo_master", Name: "Combo Master", Description: "Reach a 10x multiplier",
		check: func(r RunStats) bool { return r.MaxMultiplier >= 10 }},
	{ID: "survivor", Name: "Survivor", Description: "Survive 5 minutes",
		check: func(r RunStats) bool { return r.Elapsed >= 5*time.Minute }},
	{ID: "nitro_master", Name: "Nitro Master", Description: "Use nitro 10 times in one run",
		check: func(r RunStats) bool { return r.Boosts >= 10 }},
	{ID: "collector", Name: "Collector", Description: "Collect 10 power-ups in one run",
		check: func(r RunStats) bool { return r.PowerUps >= 10 }},
	{ID: "ghost_buster", Name: "Ghost Buster", Description: "Beat your best ghost",
		check: func(r RunStats) bool { return r.GhostScore > 0 && r.Score > r.GhostScore }},
}

// Achievements lists every achievement in display order.
func Achievements() []Achievement {
	out := make([]Achievement, len(achievementList))
	copy(out, achievementList)
	return out
}

// AchievementByID looks up an achievement.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range achievementList {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// achievementTracker remembers what is already unlocked so each
// achievement fires once per profile.
type achievementTracker struct {
	unlocked map[string]bool
	run      []string
}

func newAchievementTracker(unlocked []string) *achievementTracker {
	t := &achievementTracker{unlocked: make(map[string]bool, len(unlocked))}
	for _, id := range unlocked {
		t.unlocked[id] = true
	}
	return t
}

// check returns achievements newly earned by stats.
func (t *achievementTracker) check(stats RunStats) []Achievement {
	var got []Achievement
	for _, a := range achievementList {
		if t.unlocked[a.ID] || !a.check(stats) {
			continue
		}
		t.unlocked[a.ID] = true
		t.run = append(t.run, a.ID)
		got = append(got, a)
	}
	return got
}

// resetRun forgets the unlocks of the previous run but keeps the profile.
func (t *achievementTracker) resetRun() {
	t.run = nil
}
