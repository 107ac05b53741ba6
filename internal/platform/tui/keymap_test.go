package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyhop/internal/core"
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
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"w", runeKey('w'), core.ActionJump, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"l", runeKey('l'), core.ActionRight, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"x", runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()

	t.Run("any key continues", func(t *testing.T) {
		frame := core.NewInputFrame()
		hold := NewHold(5)
		if km.MapKeyToFrame(runeKey('x'), &frame, hold) {
			t.Fatal("x is not quit")
		}
		if !frame.Has(core.ActionContinue) {
			t.Error("unbound key should still count as Continue")
		}
	})

	t.Run("jump", func(t *testing.T) {
		frame := core.NewInputFrame()
		km.MapKeyToFrame(runeKey('w'), &frame, NewHold(5))
		if !frame.Has(core.ActionJump) || !frame.Has(core.ActionContinue) {
			t.Errorf("frame = %v, expected Jump and Continue", frame.Actions)
		}
	})

	t.Run("direction goes to hold", func(t *testing.T) {
		frame := core.NewInputFrame()
		hold := NewHold(5)
		km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRight}, &frame, hold)
		if frame.Has(core.ActionRight) {
			t.Error("direction should be applied by the hold at tick time")
		}
		if hold.Dir() != 1 {
			t.Errorf("hold direction = %d, expected 1", hold.Dir())
		}
	})

	t.Run("quit", func(t *testing.T) {
		frame := core.NewInputFrame()
		if !km.MapKeyToFrame(runeKey('q'), &frame, NewHold(5)) {
			t.Fatal("q should quit")
		}
		if !frame.Has(core.ActionQuit) || frame.Has(core.ActionContinue) {
			t.Errorf("frame = %v, expected Quit only", frame.Actions)
		}
	})
}

func TestIsScreenshot(t *testing.T) {
	km := NewKeyMapper()
	if !km.IsScreenshot(tea.KeyMsg{Type: tea.KeyCtrlS}) {
		t.Error("ctrl+s should take a screenshot")
	}
	if km.IsScreenshot(runeKey('s')) {
		t.Error("plain s is not a screenshot")
	}
}
