package racer

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-highway/internal/config"
	"github.com/vovakirdan/neon-highway/internal/core"
)

// highScoreWriteInterval limits how often a rising high score is written.
const highScoreWriteInterval = time.Second

// StateData is a read-only copy of the run's scalar state.
type StateData struct {
	Mode          Mode
	Phase         core.Phase
	Score         int
	HighScore     int
	Level         int
	Speed         float64
	Distance      float64
	Clock         time.Duration
	ShieldActive  bool
	ShieldUntil   time.Duration
	SlowMoActive  bool
	SlowMoUntil   time.Duration
	MagnetActive  bool
	MagnetUntil   time.Duration
	TimeRemaining time.Duration
}

// State is the sole owner of mutable simulation state. Systems read it
// through copies and change it through the named mutators below.
// It is not safe for concurrent use; one simulation runs on one goroutine.
type State struct {
	cfg     config.RacerConfig
	diff    *config.DifficultyManager
	persist Persistence
	logger  *log.Logger
	key     string

	mode  Mode
	phase core.Phase
	clock time.Duration

	score     int
	highScore int
	level     int
	speed     float64
	distance  float64

	shieldActive  bool
	shieldUntil   time.Duration
	slowMoActive  bool
	slowMoUntil   time.Duration
	magnetActive  bool
	magnetUntil   time.Duration
	timeRemaining time.Duration

	input core.InputFrame

	player      Player
	enemies     *Arena[Enemy]
	powerUps    *Arena[PowerUp]
	projectiles *Arena[Projectile]
	particles   *ParticleBuffer
	roadLines   []RoadLine

	hsDirty     bool
	hsWrittenAt time.Duration
	hsEverSaved bool
}

// NewState creates a state store for one simulation. key names the mode in
// persistent storage. A nil persistence or logger disables that concern.
func NewState(cfg config.RacerConfig, mode Mode, key string, p Persistence, logger *log.Logger) *State {
	if p == nil {
		p = nopPersistence{}
	}
	if logger == nil {
		logger = discardLogger()
	}
	s := &State{
		cfg:         cfg,
		diff:        config.NewDifficultyManager(cfg),
		persist:     p,
		logger:      logger,
		key:         key,
		mode:        mode,
		phase:       core.PhaseMenu,
		input:       core.NewInputFrame(),
		enemies:     NewArena[Enemy](16),
		powerUps:    NewArena[PowerUp](4),
		projectiles: NewArena[Projectile](16),
		particles:   NewParticleBuffer(cfg.Particles.Capacity),
	}
	s.LoadHighScore()
	s.ResetGame()
	return s
}

// LoadHighScore reads the stored high score for this mode.
// A failed read counts as no prior high score.
func (s *State) LoadHighScore() {
	hs, err := s.persist.HighScore(s.key)
	if err != nil {
		s.logger.Warn("could not read high score", "mode", s.key, "error", err)
		hs = 0
	}
	s.highScore = max(hs, 0)
}

// ResetGame restores start-of-run values. High score and mode are kept.
func (s *State) ResetGame() {
	s.FlushHighScore()

	s.clock = 0
	s.score = 0
	s.level = s.diff.StartLevel()
	s.speed = s.cfg.Speed.Base
	s.distance = 0
	s.shieldActive, s.shieldUntil = false, 0
	s.slowMoActive, s.slowMoUntil = false, 0
	s.magnetActive, s.magnetUntil = false, 0
	s.timeRemaining = time.Duration(s.cfg.TimeTrial.DurationSeconds) * time.Second
	s.input.Clear()

	road := s.cfg.Road
	s.player = Player{
		X:           road.Width/2 - s.cfg.Player.Width/2,
		Y:           road.Height - s.cfg.Player.StartOffset,
		Width:       s.cfg.Player.Width,
		Height:      s.cfg.Player.Height,
		Speed:       s.cfg.Player.Speed,
		BoostEnergy: 100,
	}

	s.enemies.Clear()
	s.powerUps.Clear()
	s.projectiles.Clear()
	s.particles.Clear()

	s.roadLines = s.roadLines[:0]
	for i := 0; i < road.LineCount; i++ {
		s.roadLines = append(s.roadLines, RoadLine{
			Y:      float64(i) * road.LineSpacing,
			Height: road.LineHeight,
		})
	}

	s.hsDirty = false
	s.hsWrittenAt = 0
	s.hsEverSaved = false
}

// Data returns a copy of the scalar state.
func (s *State) Data() StateData {
	return StateData{
		Mode:          s.mode,
		Phase:         s.phase,
		Score:         s.score,
		HighScore:     s.highScore,
		Level:         s.level,
		Speed:         s.speed,
		Distance:      s.distance,
		Clock:         s.clock,
		ShieldActive:  s.shieldActive,
		ShieldUntil:   s.shieldUntil,
		SlowMoActive:  s.slowMoActive,
		SlowMoUntil:   s.slowMoUntil,
		MagnetActive:  s.magnetActive,
		MagnetUntil:   s.magnetUntil,
		TimeRemaining: s.timeRemaining,
	}
}

// Config returns the configuration the state was built with.
func (s *State) Config() config.RacerConfig { return s.cfg }

// Difficulty returns the difficulty controller.
func (s *State) Difficulty() *config.DifficultyManager { return s.diff }

func (s *State) Mode() Mode             { return s.mode }
func (s *State) Phase() core.Phase      { return s.phase }
func (s *State) Now() time.Duration     { return s.clock }
func (s *State) Score() int             { return s.score }
func (s *State) HighScore() int         { return s.highScore }
func (s *State) Level() int             { return s.level }
func (s *State) Speed() float64         { return s.speed }
func (s *State) Distance() float64      { return s.distance }
func (s *State) Player() Player         { return s.player }
func (s *State) Input() core.InputFrame { return s.input.Clone() }

// SetPhase moves the run to a new phase.
func (s *State) SetPhase(p core.Phase) {
	s.phase = p
}

// SetMode switches the rules and the persistence key, reloading the high score.
func (s *State) SetMode(m Mode, key string) {
	s.FlushHighScore()
	s.mode = m
	s.key = key
	s.LoadHighScore()
}

// Advance moves the simulated clock forward. Non-positive steps are ignored.
func (s *State) Advance(dt time.Duration) {
	if dt > 0 {
		s.clock += dt
	}
}

// SetScore sets the score, recomputes the level and tracks the high score.
func (s *State) SetScore(score int) {
	s.score = max(score, 0)
	s.level = s.diff.LevelForScore(s.score)
	if s.score > s.highScore {
		s.highScore = s.score
		s.hsDirty = true
		s.maybeWriteHighScore()
	}
}

// AddScore adds points to the score.
func (s *State) AddScore(points int) {
	s.SetScore(s.score + points)
}

// maybeWriteHighScore persists a new high score at most once per
// simulated second. The first new record of a run is written at once.
func (s *State) maybeWriteHighScore() {
	if s.hsEverSaved && s.clock-s.hsWrittenAt < highScoreWriteInterval {
		return
	}
	s.FlushHighScore()
}

// FlushHighScore writes a pending high score immediately.
func (s *State) FlushHighScore() {
	if !s.hsDirty {
		return
	}
	if err := s.persist.SaveHighScore(s.key, s.highScore); err != nil {
		s.logger.Warn("high score write skipped", "mode", s.key, "score", s.highScore, "error", err)
	}
	s.hsDirty = false
	s.hsEverSaved = true
	s.hsWrittenAt = s.clock
}

// SetSpeed sets the road speed, capped to [0, max].
func (s *State) SetSpeed(v float64) {
	s.speed = core.ClampF(v, 0, s.cfg.Speed.Max)
}

// AddDistance accumulates travelled distance.
func (s *State) AddDistance(d float64) {
	if d > 0 {
		s.distance += d
	}
}

// SetTimeRemaining sets the time trial countdown, never below zero.
func (s *State) SetTimeRemaining(d time.Duration) {
	s.timeRemaining = max(d, 0)
}

// TimeRemaining returns the time trial countdown.
func (s *State) TimeRemaining() time.Duration { return s.timeRemaining }

// SetInput stores the input frame for the current step.
func (s *State) SetInput(in core.InputFrame) {
	s.input = in.Clone()
}

// SetPlayerPosition moves the player, clamped to the road.
func (s *State) SetPlayerPosition(x, y float64) {
	s.player.X = core.ClampF(x, 0, s.cfg.Road.Width-s.player.Width)
	s.player.Y = core.ClampF(y, 0, s.cfg.Road.Height-s.player.Height)
}

// SetPlayerBoost turns boost on until the given deadline, or off.
func (s *State) SetPlayerBoost(active bool, until time.Duration) {
	s.player.BoostActive = active
	if active {
		s.player.BoostUntil = until
	} else {
		s.player.BoostUntil = 0
	}
}

// SetBoostEnergy sets the nitro gauge, clamped to [0, 100].
func (s *State) SetBoostEnergy(e float64) {
	s.player.BoostEnergy = core.ClampF(e, 0, 100)
}

// ActivateShield enables the shield for d of simulated time.
func (s *State) ActivateShield(d time.Duration) {
	s.shieldActive = true
	s.shieldUntil = s.clock + d
}

// ActivateSlowMo enables slow motion for d of simulated time.
func (s *State) ActivateSlowMo(d time.Duration) {
	s.slowMoActive = true
	s.slowMoUntil = s.clock + d
}

// ActivateMagnet enables the magnet for d of simulated time.
func (s *State) ActivateMagnet(d time.Duration) {
	s.magnetActive = true
	s.magnetUntil = s.clock + d
}

// Shielded reports whether collisions are currently ignored.
// The magnet carries its own force field.
func (s *State) Shielded() bool {
	return s.shieldActive || s.magnetActive
}

// SlowMoFactor is the multiplier applied to enemy, pickup and projectile motion.
func (s *State) SlowMoFactor() float64 {
	if s.slowMoActive {
		return s.cfg.PowerUps.SlowMoFactor
	}
	return 1
}

// UpdatePowerUpStates expires timed effects whose deadline has passed
// on the simulated clock and returns which ones ended.
func (s *State) UpdatePowerUpStates() []PowerUpType {
	var expired []PowerUpType
	if s.shieldActive && s.clock >= s.shieldUntil {
		s.shieldActive, s.shieldUntil = false, 0
		expired = append(expired, PowerUpShield)
	}
	if s.slowMoActive && s.clock >= s.slowMoUntil {
		s.slowMoActive, s.slowMoUntil = false, 0
		expired = append(expired, PowerUpSlowMo)
	}
	if s.magnetActive && s.clock >= s.magnetUntil {
		s.magnetActive, s.magnetUntil = false, 0
		expired = append(expired, PowerUpMagnet)
	}
	if s.player.BoostActive && s.clock >= s.player.BoostUntil {
		s.SetPlayerBoost(false, 0)
		expired = append(expired, PowerUpBoost)
	}
	return expired
}

// AddEnemy stores a new enemy and returns its id.
func (s *State) AddEnemy(e Enemy) EntityID {
	id := s.enemies.Insert(e)
	e.ID = id
	e.Phase = wobblePhase(id)
	s.enemies.Set(id, e)
	return id
}

// RemoveEnemy deletes an enemy. Unknown ids are ignored.
func (s *State) RemoveEnemy(id EntityID) bool {
	return s.enemies.Remove(id)
}

// UpdateEnemy replaces the record of a live enemy, keeping its id.
func (s *State) UpdateEnemy(id EntityID, e Enemy) bool {
	e.ID = id
	return s.enemies.Set(id, e)
}

// ReplaceEnemy retires id and stores e in its place under a fresh id.
// The population size does not change.
func (s *State) ReplaceEnemy(id EntityID, e Enemy) EntityID {
	s.enemies.Remove(id)
	return s.AddEnemy(e)
}

// Enemy looks up one enemy.
func (s *State) Enemy(id EntityID) (Enemy, bool) { return s.enemies.Get(id) }

// Enemies returns copies of all enemies in slot order.
func (s *State) Enemies() []Enemy { return s.enemies.Values() }

// EnemyCount returns the live enemy count.
func (s *State) EnemyCount() int { return s.enemies.Len() }

// AddPowerUp stores a new pickup and returns its id.
func (s *State) AddPowerUp(p PowerUp) EntityID {
	id := s.powerUps.Insert(p)
	p.ID = id
	s.powerUps.Set(id, p)
	return id
}

// RemovePowerUp deletes a pickup.
func (s *State) RemovePowerUp(id EntityID) bool { return s.powerUps.Remove(id) }

// UpdatePowerUp replaces the record of a live pickup.
func (s *State) UpdatePowerUp(id EntityID, p PowerUp) bool {
	p.ID = id
	return s.powerUps.Set(id, p)
}

// PowerUps returns copies of all pickups in slot order.
func (s *State) PowerUps() []PowerUp { return s.powerUps.Values() }

// PowerUpCount returns the live pickup count.
func (s *State) PowerUpCount() int { return s.powerUps.Len() }

// AddProjectile stores a new projectile and returns its id.
func (s *State) AddProjectile(p Projectile) EntityID {
	id := s.projectiles.Insert(p)
	p.ID = id
	s.projectiles.Set(id, p)
	return id
}

// RemoveProjectile deletes a projectile.
func (s *State) RemoveProjectile(id EntityID) bool { return s.projectiles.Remove(id) }

// UpdateProjectile replaces the record of a live projectile.
func (s *State) UpdateProjectile(id EntityID, p Projectile) bool {
	p.ID = id
	return s.projectiles.Set(id, p)
}

// Projectiles returns copies of all projectiles in slot order.
func (s *State) Projectiles() []Projectile { return s.projectiles.Values() }

// AddParticle stores a particle, dropping it if the buffer is full.
func (s *State) AddParticle(p Particle) bool { return s.particles.Add(p) }

// UpdateParticles advances particles and prunes expired ones.
func (s *State) UpdateParticles() int { return s.particles.Update() }

// ClearParticles drops all particles.
func (s *State) ClearParticles() { s.particles.Clear() }

// Particles returns a copy of the live particles.
func (s *State) Particles() []Particle { return s.particles.Snapshot() }

// ParticleCount returns the live particle count.
func (s *State) ParticleCount() int { return s.particles.Len() }

// RoadLines returns a copy of the lane markers.
func (s *State) RoadLines() []RoadLine {
	out := make([]RoadLine, len(s.roadLines))
	copy(out, s.roadLines)
	return out
}

// SetRoadLine moves one lane marker.
func (s *State) SetRoadLine(i int, y float64) {
	if i >= 0 && i < len(s.roadLines) {
		s.roadLines[i].Y = y
	}
}
