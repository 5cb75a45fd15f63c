// Package racer implements Neon Highway: a top-down racer where the
// player weaves through traffic on a scrolling multi-lane road.
package racer

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-highway/internal/config"
	"github.com/vovakirdan/neon-highway/internal/core"
	"github.com/vovakirdan/neon-highway/internal/registry"
)

const (
	stepsPerSecond   = 60
	explosionCount   = 20
	pickupSparkCount = 8
)

// Package-level settings applied to games created through the registry.
var (
	configPath       string
	difficultyPreset string
	weatherOverride  string
	persistence      Persistence = nopPersistence{}
	logger                       = discardLogger()
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetWeather overrides the configured weather (clear, rain, fog).
// An empty string keeps the config value.
func SetWeather(w string) {
	weatherOverride = w
}

// SetPersistence attaches the store used by games created afterwards.
func SetPersistence(p Persistence) {
	if p == nil {
		p = nopPersistence{}
	}
	persistence = p
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = discardLogger()
	}
	logger = l
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// RunSummary describes the last finished run for the game over screen.
type RunSummary struct {
	Score         int
	HighScore     int
	NewHighScore  bool
	Distance      float64
	Level         int
	MaxMultiplier float64
	ComboBonus    int
	Elapsed       time.Duration
	Cause         string
	Achievements  []string
}

// Game implements Neon Highway for one mode.
type Game struct {
	mode    Mode
	cfg     config.RacerConfig
	cfgSet  bool
	weather Weather
	persist Persistence
	logger  *log.Logger

	rng  *rand.Rand
	seed int64
	runs int64

	state        *State
	combo        *Combo
	achievements *achievementTracker
	recorder     ghostRecorder
	ghost        *Ghost

	tick           uint64
	boosts         int
	pickups        int
	speedThreshold int
	priorHigh      int
	summary        RunSummary
}

// New creates an endless mode game.
func New() *Game {
	return &Game{mode: ModeEndless}
}

// NewTimeTrial creates a time trial game.
func NewTimeTrial() *Game {
	return &Game{mode: ModeTimeTrial}
}

// NewZen creates a zen mode game: no traffic, no crashes.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

// NewWithConfig creates a game with an explicit configuration instead of
// loading one from disk.
func NewWithConfig(mode Mode, cfg config.RacerConfig) *Game {
	return &Game{mode: mode, cfg: cfg, cfgSet: true}
}

func init() {
	registry.Register("racer", func() registry.Game {
		return New()
	})
	registry.Register("racer_timetrial", func() registry.Game {
		return NewTimeTrial()
	})
	registry.Register("racer_zen", func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier, which is also the persistence key.
func (g *Game) ID() string {
	switch g.mode {
	case ModeTimeTrial:
		return "racer_timetrial"
	case ModeZen:
		return "racer_zen"
	default:
		return "racer"
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeTimeTrial:
		return "Neon Highway (Time Trial)"
	case ModeZen:
		return "Neon Highway (Zen)"
	default:
		return "Neon Highway"
	}
}

// Mode returns the game mode.
func (g *Game) Mode() Mode { return g.mode }

// loadConfig resolves the configuration once per game.
func (g *Game) loadConfig() {
	if g.cfgSet {
		return
	}
	cfg, err := config.LoadRacer(configPath)
	if err != nil {
		logger.Warn("using default racer config", "path", configPath, "error", err)
		cfg = config.DefaultRacerConfig()
	}
	if p := config.ParsePreset(difficultyPreset); p != "" {
		config.ApplyRacerPreset(&cfg, p)
	}
	if weatherOverride != "" {
		cfg.Weather = weatherOverride
	}
	g.cfg = cfg
	g.cfgSet = true
}

// Reset prepares a fresh session at the title screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.loadConfig()
	if g.persist == nil {
		g.persist = persistence
	}
	if g.logger == nil {
		g.logger = logger
	}

	g.seed = cfg.Seed
	g.runs = 0
	g.rng = rand.New(rand.NewSource(cfg.Seed)) //#nosec G404 -- gameplay randomness
	g.weather = ParseWeather(g.cfg.Weather)

	g.state = NewState(g.cfg, g.mode, g.ID(), g.persist, g.logger)
	g.combo = NewCombo(g.cfg.Combo)

	unlocked, err := g.persist.Achievements()
	if err != nil {
		g.logger.Warn("could not read achievements", "error", err)
	}
	g.achievements = newAchievementTracker(unlocked)
	g.summary = RunSummary{}
	g.tick = 0
}

// stepTime is the simulated time after n fixed steps. Whole seconds land
// exactly on a step boundary.
func stepTime(n uint64) time.Duration {
	return time.Duration(n) * time.Second / stepsPerSecond //#nosec G115 -- step counts stay far below overflow
}

// startRun begins a new run from the current session.
func (g *Game) startRun() {
	s := g.state
	s.ResetGame()
	g.combo.Reset()
	g.recorder.reset()
	g.achievements.resetRun()
	g.tick = 0
	g.boosts = 0
	g.pickups = 0
	g.speedThreshold = 0
	g.priorHigh = s.HighScore()
	g.summary = RunSummary{}
	g.loadGhost()

	if g.mode != ModeZen {
		initEnemies(s, g.rng)
	}
	s.SetPhase(core.PhasePlaying)
}

func (g *Game) loadGhost() {
	g.ghost = nil
	data, err := g.persist.BestGhost(g.ID())
	if err != nil {
		g.logger.Warn("could not load ghost", "mode", g.ID(), "error", err)
		return
	}
	if len(data) == 0 {
		return
	}
	ghost, err := DecodeGhost(data)
	if err != nil {
		g.logger.Warn("discarding unreadable ghost", "mode", g.ID(), "error", err)
		return
	}
	g.ghost = &ghost
}

// Step advances the game by one fixed tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	var ev eventLog
	s := g.state

	switch s.Phase() {
	case core.PhaseMenu:
		if input.Has(core.ActionConfirm) || input.Has(core.ActionRestart) {
			g.startRun()
		}
		return g.result(ev)

	case core.PhaseGameOver:
		switch {
		case input.Has(core.ActionRestart) || input.Has(core.ActionConfirm):
			g.runs++
			g.rng = rand.New(rand.NewSource(g.seed + g.runs)) //#nosec G404 -- gameplay randomness
			g.startRun()
		case input.Has(core.ActionBack):
			s.SetPhase(core.PhaseMenu)
		}
		return g.result(ev)

	case core.PhasePaused:
		if input.Has(core.ActionPause) {
			s.SetPhase(core.PhasePlaying)
		}
		return g.result(ev)
	}

	if input.Has(core.ActionPause) {
		s.SetPhase(core.PhasePaused)
		return g.result(ev)
	}

	g.update(input, &ev)
	return g.result(ev)
}

// update runs one simulation tick. The system order is fixed: motion
// happens before collision so a hit reflects this tick's positions.
func (g *Game) update(input core.InputFrame, ev *eventLog) {
	s := g.state
	cfg := g.cfg
	zen := g.mode == ModeZen

	prev := stepTime(g.tick)
	g.tick++
	dt := stepTime(g.tick) - prev

	s.SetInput(input)
	s.Advance(dt)
	levelBefore := s.Level()
	wasBoosting := s.Player().BoostActive

	updatePlayer(s, g.weather, dt, ev)
	if !wasBoosting && s.Player().BoostActive {
		g.boosts++
	}
	updateRoad(s)
	if !zen {
		updateEnemies(s, g.rng, ev)
		topUpEnemies(s, g.rng)
	}
	spawnPowerUps(s, g.rng)
	updatePowerUps(s)
	updateProjectiles(s)
	s.UpdatePowerUpStates()
	if !zen {
		g.updateDifficulty()
	}

	if s.Player().BoostActive {
		emitTrail(s, g.rng)
	}
	emitSpeedLines(s, g.rng)
	updateWeather(s, g.rng, g.weather)
	s.UpdateParticles()

	if bonus, ended := g.combo.Update(dt); ended {
		s.AddScore(bonus)
		ev.emit(core.EventComboEnd, "", bonus)
	}
	emitShield(s, g.rng)

	if !zen {
		if e, hit := CheckPlayerEnemyCollision(s); hit {
			cx, cy := e.Bounds().Center()
			emitExplosion(s, g.rng, cx, cy, e.Color, explosionCount)
			ev.emit(core.EventCollision, e.Type.String(), 0)
			g.finishRun("crashed into "+e.Type.String(), ev)
			return
		}
		if p, hit := CheckPlayerProjectileCollision(s); hit {
			s.RemoveProjectile(p.ID)
			b := s.Player().Bounds()
			cx, cy := b.Center()
			emitExplosion(s, g.rng, cx, cy, core.ColorHotPink, explosionCount)
			ev.emit(core.EventCollision, "projectile", 0)
			g.finishRun("shot down", ev)
			return
		}
		detectCloseCalls(s, g.combo, ev)
	}

	for _, p := range CollectPowerUps(s) {
		applyPowerUp(s, p.Type, ev)
		g.pickups++
		g.combo.AddEvent(cfg.Combo.PowerUpUnits)
		s.AddScore(g.combo.Points(cfg.Combo.PowerUpPoints))
		cx, cy := p.Bounds().Center()
		for i := 0; i < pickupSparkCount; i++ {
			emitSparkle(s, g.rng, cx, cy, p.Type.Color())
		}
	}

	s.AddScore(1)
	s.AddDistance(effectiveSpeed(s) * dt.Seconds())
	g.recorder.record(s.Player())

	switch g.mode {
	case ModeTimeTrial:
		s.SetTimeRemaining(time.Duration(cfg.TimeTrial.DurationSeconds)*time.Second - s.Now())
		if s.TimeRemaining() <= 0 {
			ev.emit(core.EventTimeUp, "", s.Score())
			g.finishRun("time up", ev)
			return
		}
	case ModeEndless:
		if s.Level() > levelBefore {
			ev.emit(core.EventLevelUp, config.LevelName(s.Level()), s.Level())
		}
		step := cfg.Speed.EndlessStepScore
		if step > 0 && s.Score() >= g.speedThreshold+step {
			s.SetSpeed(s.Speed() + cfg.Speed.EndlessStepAmount)
			g.speedThreshold += step
		}
	}

	g.checkAchievements(ev)
}

// updateDifficulty eases the speed toward the level's target.
func (g *Game) updateDifficulty() {
	s := g.state
	target := s.Difficulty().ForLevel(s.Level()).Speed
	if s.Speed() < target {
		s.SetSpeed(s.Speed() + g.cfg.Speed.RampPerStep)
	}
}

func (g *Game) runStats() RunStats {
	s := g.state
	stats := RunStats{
		Score:         s.Score(),
		Speed:         s.Speed(),
		Distance:      s.Distance(),
		MaxMultiplier: g.combo.State().MaxMultiplier,
		Elapsed:       s.Now(),
		Boosts:        g.boosts,
		PowerUps:      g.pickups,
	}
	if g.ghost != nil {
		stats.GhostScore = g.ghost.Score
	}
	return stats
}

func (g *Game) checkAchievements(ev *eventLog) {
	for _, a := range g.achievements.check(g.runStats()) {
		ev.emit(core.EventAchievement, a.ID, 0)
		if err := g.persist.UnlockAchievement(a.ID); err != nil {
			g.logger.Warn("could not save achievement", "id", a.ID, "error", err)
		}
	}
}

// finishRun ends the run and reports it to persistence.
func (g *Game) finishRun(cause string, ev *eventLog) {
	s := g.state
	if bonus := g.combo.End(); bonus > 0 {
		s.AddScore(bonus)
		ev.emit(core.EventComboEnd, "", bonus)
	}
	g.checkAchievements(ev)
	s.SetPhase(core.PhaseGameOver)
	s.FlushHighScore()

	combo := g.combo.State()
	g.summary = RunSummary{
		Score:         s.Score(),
		HighScore:     s.HighScore(),
		NewHighScore:  s.Score() > g.priorHigh,
		Distance:      s.Distance(),
		Level:         s.Level(),
		MaxMultiplier: combo.MaxMultiplier,
		ComboBonus:    combo.TotalBonus,
		Elapsed:       s.Now(),
		Cause:         cause,
		Achievements:  append([]string(nil), g.achievements.run...),
	}

	ghost, err := EncodeGhost(g.recorder.ghost(g.ID(), s.Score()))
	if err != nil {
		g.logger.Warn("ghost not recorded", "error", err)
		ghost = nil
	}
	run := RunRecord{
		Mode:          g.ID(),
		Score:         s.Score(),
		Distance:      s.Distance(),
		Level:         s.Level(),
		MaxMultiplier: combo.MaxMultiplier,
		ComboBonus:    combo.TotalBonus,
		Duration:      s.Now(),
		Achievements:  g.summary.Achievements,
		Ghost:         ghost,
	}
	if err := g.persist.SaveRun(run); err != nil {
		g.logger.Warn("run not saved", "mode", run.Mode, "score", run.Score, "error", err)
	}
	ev.emit(core.EventGameOver, cause, s.Score())
}

func (g *Game) result(ev eventLog) core.StepResult {
	return core.StepResult{State: g.State(), Events: ev}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.NewGameState(core.PhaseMenu, 0)
	}
	return core.NewGameState(g.state.Phase(), g.state.Score())
}

// Store returns the state store. Code outside the simulation only reads it.
func (g *Game) Store() *State { return g.state }

// Combo returns the combo state.
func (g *Game) Combo() ComboState {
	if g.combo == nil {
		return ComboState{Multiplier: 1, MaxMultiplier: 1}
	}
	return g.combo.State()
}

// Summary returns the last finished run.
func (g *Game) Summary() RunSummary { return g.summary }

// Tick returns the number of simulated steps in the current run.
func (g *Game) Tick() uint64 { return g.tick }
