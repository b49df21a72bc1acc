package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickstorm/internal/core"
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
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"up fires", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFire, false},
		{"f fires", runeKey('f'), core.ActionFire, false},
		{"space pauses", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPause, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHeldKeys(t *testing.T) {
	h := make(heldKeys)
	h.press(core.ActionLeft)
	h.press(core.ActionFire)

	frame := core.NewInputFrame()
	h.apply(&frame)
	if !frame.Has(core.ActionLeft) || !frame.Has(core.ActionFire) {
		t.Fatal("held actions should reach the frame")
	}

	h.press(core.ActionRight)
	if _, ok := h[core.ActionLeft]; ok {
		t.Error("pressing right should release left")
	}

	for range holdTicks {
		frame.Clear()
		h.apply(&frame)
	}
	frame.Clear()
	h.apply(&frame)
	if frame.Has(core.ActionRight) || len(h) != 0 {
		t.Errorf("holds should expire after %d ticks, left %v", holdTicks, h)
	}
}

func TestPointerToPlayfield(t *testing.T) {
	tests := []struct {
		col, width int
		want       float64
	}{
		{0, 90, 5},
		{89, 90, 895},
		{40, 80, 455.625},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := PointerToPlayfield(tt.col, tt.width); got != tt.want {
			t.Errorf("PointerToPlayfield(%d, %d) = %v, expected %v", tt.col, tt.width, got, tt.want)
		}
	}
}
