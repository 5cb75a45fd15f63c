package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-highway/internal/core"
)

// holdWindow is how long a steering key counts as held after a press.
// Terminals report repeats but not releases, so a key stays down until
// the repeat stream stops.
const holdWindow = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case " ", "shift+up", "n":
		return core.ActionBoost, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// keyState builds input frames from key presses. Edge actions fire once;
// held actions stay set until holdWindow passes without a repeat.
type keyState struct {
	until map[core.Action]time.Time
	edges core.InputFrame
}

func newKeyState() *keyState {
	return &keyState{
		until: make(map[core.Action]time.Time),
		edges: core.NewInputFrame(),
	}
}

// Press records a key press at now.
func (k *keyState) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if !a.Held() {
		k.edges.Set(a)
		return
	}
	k.until[a] = now.Add(holdWindow)
	// Opposite directions cancel rather than fight.
	if opp, ok := opposite(a); ok {
		delete(k.until, opp)
	}
}

// Frame returns the input at now and consumes pending edge actions.
func (k *keyState) Frame(now time.Time) core.InputFrame {
	f := k.edges.Clone()
	k.edges.Clear()
	for a, until := range k.until {
		if now.Before(until) {
			f.Set(a)
		} else {
			delete(k.until, a)
		}
	}
	return f
}

// Release drops every held key.
func (k *keyState) Release() {
	clear(k.until)
	k.edges.Clear()
}

func opposite(a core.Action) (core.Action, bool) {
	switch a {
	case core.ActionLeft:
		return core.ActionRight, true
	case core.ActionRight:
		return core.ActionLeft, true
	case core.ActionUp:
		return core.ActionDown, true
	case core.ActionDown:
		return core.ActionUp, true
	}
	return core.ActionNone, false
}
