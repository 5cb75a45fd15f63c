package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-highway/internal/core"
	"github.com/vovakirdan/neon-highway/internal/loop"
	"github.com/vovakirdan/neon-highway/internal/registry"
)

// Screen effect lengths, in display frames.
const (
	shakeFrames = 12
	flashFrames = 6
)

// Model is the Bubble Tea model for running one game.
// Title and game over screens are driven by key presses through
// loop.Dispatch; a run is driven by frame ticks through loop.Frame.
type Model struct {
	game       registry.Game
	loop       *loop.Loop
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	keys       *keyState
	logger     *log.Logger
	standalone bool // Quit the program instead of returning to a parent menu
	quitting   bool
	backToMenu bool
	shake      int
	flash      int
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:      game,
		loop:      loop.New(game, loop.WithLogger(logger)),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		keys:      newKeyState(),
		logger:    logger,
	}
}

// Init initializes the model and shows the game's title screen.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.loop.Stop()
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	now := time.Now()
	if m.loop.Running() {
		m.keys.Press(action, now)
		return m, nil
	}

	// Title or game over screen.
	if m.game.State().Phase == core.PhaseMenu && (action == core.ActionBack || action == core.ActionPause) {
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	in := core.NewInputFrame()
	in.Set(action)
	res := m.loop.Dispatch(now, in)
	m.applyEvents(res.Events)
	if m.loop.Running() {
		m.keys.Release()
		return m, tickCmd(m.config.TickRate)
	}
	return m, nil
}

// handleTick runs one display frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.shake > 0 {
		m.shake--
	}
	if m.flash > 0 {
		m.flash--
	}

	res := m.loop.Frame(now, m.keys.Frame(now))
	m.applyEvents(res.Events)

	if res.Running || m.shake > 0 || m.flash > 0 {
		return m, tickCmd(m.config.TickRate)
	}
	return m, nil
}

// applyEvents turns simulation events into screen effects.
func (m *Model) applyEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventCollision:
			m.shake = shakeFrames
		case core.EventLevelUp, core.EventAchievement:
			m.flash = flashFrames
		case core.EventGameOver:
			m.logger.Info("run finished", "game", m.game.ID(), "cause", e.Detail, "score", e.Value)
		}
	}
}

// shakeOffset is the horizontal jitter for the current frame.
func (m Model) shakeOffset() int {
	if m.shake > 0 && m.shake%2 == 0 {
		return 1
	}
	return 0
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".neonhighway", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot not written", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return renderScreen(m.screen, m.shakeOffset(), m.flash > 0)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the mode menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one game.
// It returns true if the player asked to go back to the mode menu.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	model := NewModel(game, cfg, logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
