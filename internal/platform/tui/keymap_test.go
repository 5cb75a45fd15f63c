package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-highway/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a steers left", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"w accelerates", runeKey('w'), core.ActionUp, false},
		{"space boosts", tea.KeyMsg{Type: tea.KeySpace}, core.ActionBoost, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"b goes back", runeKey('b'), core.ActionBack, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	if got := km.MapKeyToMenuAction(runeKey('j')); got != MenuActionDown {
		t.Errorf("j = %v, want down", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}); got != MenuActionScoreboard {
		t.Errorf("tab = %v, want scoreboard", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}); got != MenuActionSelect {
		t.Errorf("enter = %v, want select", got)
	}
}

func TestKeyStateHoldsSteering(t *testing.T) {
	ks := newKeyState()
	t0 := time.Now()

	ks.Press(core.ActionLeft, t0)
	if f := ks.Frame(t0.Add(100 * time.Millisecond)); !f.Has(core.ActionLeft) {
		t.Error("left released inside the hold window")
	}
	// A repeat extends the hold.
	ks.Press(core.ActionLeft, t0.Add(100*time.Millisecond))
	if f := ks.Frame(t0.Add(200 * time.Millisecond)); !f.Has(core.ActionLeft) {
		t.Error("repeat did not extend the hold")
	}
	if f := ks.Frame(t0.Add(400 * time.Millisecond)); f.Has(core.ActionLeft) {
		t.Error("left still held after the repeats stopped")
	}
}

func TestKeyStateOppositeCancels(t *testing.T) {
	ks := newKeyState()
	t0 := time.Now()

	ks.Press(core.ActionLeft, t0)
	ks.Press(core.ActionRight, t0.Add(10*time.Millisecond))
	f := ks.Frame(t0.Add(20 * time.Millisecond))
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("frame = %v, want right only", f.Actions)
	}
}

func TestKeyStateEdgeFiresOnce(t *testing.T) {
	ks := newKeyState()
	t0 := time.Now()

	ks.Press(core.ActionPause, t0)
	if f := ks.Frame(t0); !f.Has(core.ActionPause) {
		t.Fatal("pause lost")
	}
	if f := ks.Frame(t0.Add(time.Millisecond)); f.Has(core.ActionPause) {
		t.Error("pause delivered twice")
	}
}

func TestKeyStateRelease(t *testing.T) {
	ks := newKeyState()
	t0 := time.Now()
	ks.Press(core.ActionUp, t0)
	ks.Press(core.ActionRestart, t0)
	ks.Release()
	if f := ks.Frame(t0); !f.Empty() {
		t.Errorf("frame after release = %v", f.Actions)
	}
}
