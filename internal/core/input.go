package core

import "strings"

// Action is a semantic input, decoupled from the key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow: paddle left (held)
	ActionRight          // D, Right arrow: paddle right (held)
	ActionConfirm        // Enter: play again after a terminal outcome
	ActionBack           // B, Escape: back to menu
	ActionRestart        // R: restart at any time
	ActionQuit           // Q, Ctrl+C: leave the session
	ActionPause          // P: toggle pause
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions active during one tick.
// Held directions are set on every tick they are held; one-shot
// actions (Pause, Restart) only on the tick they were pressed.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as active.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << uint(a)
}

// Has reports whether a is active.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return f.bits&(1<<uint(a)) != 0
}

// Empty reports whether no action is active.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear drops every action.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// String lists the active actions, e.g. "[Left Pause]".
func (f InputFrame) String() string {
	var names []string
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			names = append(names, a.String())
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}
