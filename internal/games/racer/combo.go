package racer

import (
	"math"
	"time"

	"github.com/vovakirdan/neon-highway/internal/config"
)

// ComboState is a read-only view of the combo chain.
type ComboState struct {
	Active        bool
	Multiplier    float64
	Count         int           // Accumulated combo units
	Timer         time.Duration // Remaining simulated time
	MaxMultiplier float64       // Highest multiplier reached this run
	TotalBonus    int           // Sum of end-of-combo bonuses this run
}

// Combo tracks chained close calls and pickups. The multiplier only grows
// while the chain is alive and drops to exactly 1 when it ends.
type Combo struct {
	cfg config.ComboConfig
	st  ComboState
}

// NewCombo creates an inactive combo.
func NewCombo(cfg config.ComboConfig) *Combo {
	c := &Combo{cfg: cfg}
	c.Reset()
	return c
}

// Reset clears the chain and the run totals.
func (c *Combo) Reset() {
	c.st = ComboState{Multiplier: 1, MaxMultiplier: 1}
}

// State returns a copy of the combo state.
func (c *Combo) State() ComboState { return c.st }

// Multiplier returns the current score multiplier.
func (c *Combo) Multiplier() float64 { return c.st.Multiplier }

// AddEvent feeds units into the chain, starting it if needed. The timer is
// refreshed and the multiplier recomputed from the total count.
func (c *Combo) AddEvent(units int) {
	if units <= 0 {
		return
	}
	if !c.st.Active {
		c.st.Active = true
		c.st.Count = 0
		c.st.Multiplier = 1
	}
	c.st.Count += units
	c.st.Timer = config.Millis(c.cfg.BaseTimeMS + c.st.Count*c.cfg.TimePerUnitMS)
	steps := 0
	if c.cfg.UnitsPerStep > 0 {
		steps = c.st.Count / c.cfg.UnitsPerStep
	}
	c.st.Multiplier = math.Min(c.cfg.MaxMultiplier, 1+float64(steps)*c.cfg.StepIncrement)
	c.st.MaxMultiplier = math.Max(c.st.MaxMultiplier, c.st.Multiplier)
}

// Update runs the timer down by dt. When it runs out the chain ends and
// the closing bonus is returned along with ended=true.
func (c *Combo) Update(dt time.Duration) (bonus int, ended bool) {
	if !c.st.Active || dt <= 0 {
		return 0, false
	}
	c.st.Timer -= dt
	if c.st.Timer > 0 {
		return 0, false
	}
	return c.End(), true
}

// End closes the chain immediately and returns its bonus.
func (c *Combo) End() int {
	if !c.st.Active {
		return 0
	}
	bonus := 0
	if c.st.Count > c.cfg.EndBonusMinCount {
		bonus = int(float64(c.st.Count*c.cfg.EndBonusPerUnit) * c.st.Multiplier)
	}
	c.st.TotalBonus += bonus
	c.st.Active = false
	c.st.Count = 0
	c.st.Timer = 0
	c.st.Multiplier = 1
	return bonus
}

// Points scales a base award by the current multiplier.
func (c *Combo) Points(base int) int {
	return int(math.Floor(float64(base) * c.st.Multiplier))
}
