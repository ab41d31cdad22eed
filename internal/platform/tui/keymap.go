package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

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
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
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
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
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

// holdState emulates key release for terminals, which only report presses.
// A press holds its direction for a window of ticks; key repeats extend it.
// The first window is long enough to bridge the keyboard's repeat delay,
// later ones only the gap between repeats.
type holdState struct {
	window int
	left   int
	right  int
}

func newHoldState(window int) holdState {
	if window < 1 {
		window = 1
	}
	return holdState{window: window}
}

// press starts or extends holding a direction and drops the opposite one.
func (h *holdState) press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left = h.extend(h.left)
		h.right = 0
	case core.ActionRight:
		h.right = h.extend(h.right)
		h.left = 0
	}
}

func (h *holdState) extend(remaining int) int {
	if remaining > 0 {
		return max(h.window/4, 2)
	}
	return h.window
}

// apply sets the held directions on frame and counts the tick down.
func (h *holdState) apply(frame *core.InputFrame) {
	if h.left > 0 {
		frame.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		frame.Set(core.ActionRight)
		h.right--
	}
}

// release drops both directions.
func (h *holdState) release() {
	h.left, h.right = 0, 0
}
