// Package loop drives a simulation at a fixed timestep from a variable-rate
// frame callback. Each frame adds the elapsed wall time to an accumulator
// and drains it in whole steps, then the caller renders once.
package loop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-highway/internal/core"
)

const (
	// DefaultStep is one 60 Hz simulation step.
	DefaultStep = time.Second / 60
	// DefaultMaxSteps caps catch-up work per frame.
	DefaultMaxSteps = 5
)

// Simulation is the part of a game the loop drives.
type Simulation interface {
	Step(in core.InputFrame) core.StepResult
	State() core.GameState
}

// FrameResult reports what one frame did.
type FrameResult struct {
	Steps   int          // Simulation steps executed
	Dropped bool         // Backlog was discarded by the catch-up cap
	Events  []core.Event // Events from every step, in order
	State   core.GameState
	Running bool // Whether the loop wants another frame
}

// Loop is a fixed-timestep accumulator. It is driven from a single goroutine.
type Loop struct {
	sim      Simulation
	step     time.Duration
	maxSteps int
	logger   *log.Logger

	running bool
	last    time.Time
	acc     time.Duration
	pending core.InputFrame

	frames uint64
	steps  uint64
}

// Option configures a Loop.
type Option func(*Loop)

// WithStep sets the simulation step.
func WithStep(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.step = d
		}
	}
}

// WithMaxSteps caps the catch-up steps per frame.
func WithMaxSteps(n int) Option {
	return func(l *Loop) {
		if n > 0 {
			l.maxSteps = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a stopped loop for sim.
func New(sim Simulation, opts ...Option) *Loop {
	l := &Loop{
		sim:      sim,
		step:     DefaultStep,
		maxSteps: DefaultMaxSteps,
		logger:   log.New(io.Discard),
		pending:  core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Step returns the fixed simulation step.
func (l *Loop) Step() time.Duration { return l.step }

// Running reports whether the loop is armed.
func (l *Loop) Running() bool { return l.running }

// Stats returns the frame and step counters.
func (l *Loop) Stats() (frames, steps uint64) { return l.frames, l.steps }

// Start arms the loop. now is the reference time for the first frame.
func (l *Loop) Start(now time.Time) {
	l.running = true
	l.last = now
	l.acc = 0
	l.pending.Clear()
}

// Stop halts the loop. Stopping a stopped loop does nothing.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.acc = 0
	l.pending.Clear()
}

// Frame runs one frame callback at time now with the current input.
// Only the first step of a frame sees edge actions such as pause; later
// catch-up steps see held keys only. Edge actions that arrive on a frame
// too short to run a step are kept for the next step.
//
// While the simulation is paused no time accumulates and the input is
// delivered in a single step so the pause can be toggled off. After the
// frame the loop stays armed only while the simulation is playing or paused.
func (l *Loop) Frame(now time.Time, in core.InputFrame) FrameResult {
	if !l.running {
		return FrameResult{State: l.sim.State()}
	}
	l.frames++

	elapsed := now.Sub(l.last)
	if elapsed < 0 {
		elapsed = 0
	}
	l.last = now

	var res FrameResult
	if l.sim.State().Phase == core.PhasePaused {
		l.acc = 0
		r := l.sim.Step(l.withPending(in))
		l.steps++
		res.Steps = 1
		res.Events = append(res.Events, r.Events...)
	} else {
		l.acc += elapsed
		first := l.withPending(in)
		for l.acc >= l.step && res.Steps < l.maxSteps {
			frame := first
			if res.Steps > 0 {
				frame = in.HeldOnly()
			}
			r := l.sim.Step(frame)
			l.acc -= l.step
			l.steps++
			res.Steps++
			res.Events = append(res.Events, r.Events...)
			if r.State.Phase != core.PhasePlaying {
				l.acc = 0
				break
			}
		}
		if res.Steps == 0 {
			l.pending.Merge(first.EdgeOnly())
		}
		if l.acc >= l.step {
			l.logger.Debug("dropping simulation backlog", "backlog", l.acc, "steps", res.Steps)
			l.acc = 0
			res.Dropped = true
		}
	}

	res.State = l.sim.State()
	if !res.State.Phase.Active() {
		l.Stop()
	}
	res.Running = l.running
	return res
}

// withPending merges held-over edge actions into in and clears them.
func (l *Loop) withPending(in core.InputFrame) core.InputFrame {
	if l.pending.Empty() {
		return in
	}
	merged := in.Clone()
	merged.Merge(l.pending)
	l.pending.Clear()
	return merged
}

// Dispatch delivers input to a stopped simulation, such as a title or
// game over screen, as one step. If the simulation becomes active the
// loop is started at now.
func (l *Loop) Dispatch(now time.Time, in core.InputFrame) core.StepResult {
	if l.running {
		return core.StepResult{State: l.sim.State()}
	}
	r := l.sim.Step(in)
	if r.State.Phase.Active() {
		l.Start(now)
	}
	return r
}
