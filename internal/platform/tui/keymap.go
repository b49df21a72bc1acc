package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickstorm/internal/core"
)

// holdTicks is how long a key press counts as held. Terminals only report
// presses (with auto-repeat), never releases.
const holdTicks = 8

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
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case "f", "w", "up":
		return core.ActionFire, false
	case " ", "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// IsHeld reports whether an action models a held key rather than a tap.
func IsHeld(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight || a == core.ActionFire
}

// heldKeys turns key presses into held actions that expire after a few ticks.
type heldKeys map[core.Action]int

// press starts or refreshes a hold. Opposite directions cancel each other.
func (h heldKeys) press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h, core.ActionRight)
	case core.ActionRight:
		delete(h, core.ActionLeft)
	}
	h[a] = holdTicks
}

// apply sets every live hold on frame and counts it down.
func (h heldKeys) apply(frame *core.InputFrame) {
	for a, n := range h {
		frame.Set(a)
		if n <= 1 {
			delete(h, a)
		} else {
			h[a] = n - 1
		}
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
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

// PointerToPlayfield converts a terminal column to logical playfield units,
// aiming at the middle of the cell.
func PointerToPlayfield(col, screenW int) float64 {
	if screenW <= 0 {
		return 0
	}
	return (float64(col) + 0.5) * core.PlayfieldW / float64(screenW)
}
