package racer

import (
	"testing"
	"time"

	"github.com/vovakirdan/neon-highway/internal/config"
)

func newTestCombo() *Combo {
	return NewCombo(config.DefaultRacerConfig().Combo)
}

func TestComboPerfectDodgeBurst(t *testing.T) {
	c := newTestCombo()
	for range 4 {
		c.AddEvent(TierPerfectDodge.Units())
	}
	if m := c.Multiplier(); m < 2.0 || m > 10.0 {
		t.Errorf("multiplier after 4 perfect dodges = %v, want within [2, 10]", m)
	}
	for range 100 {
		c.AddEvent(TierPerfectDodge.Units())
	}
	if m := c.Multiplier(); m != 10.0 {
		t.Errorf("multiplier = %v, want cap 10", m)
	}
}

func TestComboMultiplierMonotonicWhileActive(t *testing.T) {
	c := newTestCombo()
	prev := c.Multiplier()
	units := []int{1, 3, 1, 5, 2, 1, 3, 5, 5}
	for _, u := range units {
		c.AddEvent(u)
		if _, ended := c.Update(10 * time.Millisecond); ended {
			t.Fatal("combo ended early")
		}
		if m := c.Multiplier(); m < prev {
			t.Fatalf("multiplier dropped from %v to %v", prev, m)
		}
		prev = c.Multiplier()
	}
}

func TestComboExpiryResetsToOne(t *testing.T) {
	c := newTestCombo()
	c.AddEvent(1)
	if st := c.State(); st.Timer != 3150*time.Millisecond {
		t.Fatalf("timer = %v, want 3.15s", st.Timer)
	}

	if _, ended := c.Update(3100 * time.Millisecond); ended {
		t.Fatal("combo ended before its timer ran out")
	}
	bonus, ended := c.Update(100 * time.Millisecond)
	if !ended {
		t.Fatal("combo should have ended")
	}
	if bonus != 0 {
		t.Errorf("bonus = %d, want 0 for a short chain", bonus)
	}
	st := c.State()
	if st.Active || st.Multiplier != 1.0 || st.Count != 0 {
		t.Errorf("state after expiry = %+v", st)
	}
}

func TestComboEndBonus(t *testing.T) {
	c := newTestCombo()
	c.AddEvent(5)
	c.AddEvent(5)
	if m := c.Multiplier(); m != 2.5 {
		t.Fatalf("multiplier = %v, want 2.5", m)
	}
	if p := c.Points(10); p != 25 {
		t.Errorf("Points(10) = %d, want 25", p)
	}

	bonus, ended := c.Update(5 * time.Second)
	if !ended {
		t.Fatal("combo should have ended")
	}
	if bonus != 625 {
		t.Errorf("bonus = %d, want 625", bonus)
	}
	st := c.State()
	if st.TotalBonus != 625 || st.MaxMultiplier != 2.5 {
		t.Errorf("TotalBonus = %d, MaxMultiplier = %v", st.TotalBonus, st.MaxMultiplier)
	}
	if st.Multiplier != 1.0 {
		t.Errorf("multiplier after end = %v", st.Multiplier)
	}
}

func TestComboIgnoresNonPositiveInput(t *testing.T) {
	c := newTestCombo()
	c.AddEvent(0)
	c.AddEvent(-3)
	if c.State().Active {
		t.Error("non-positive units started a combo")
	}
	c.AddEvent(1)
	if _, ended := c.Update(-time.Second); ended {
		t.Error("negative dt ended the combo")
	}
	if c.State().Timer != 3150*time.Millisecond {
		t.Errorf("negative dt changed the timer to %v", c.State().Timer)
	}
}
