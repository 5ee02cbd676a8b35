package core

import "strings"

// Action is a semantic input, decoupled from the keys that produce it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // run left
	ActionRight          // run right
	ActionJump           // jump when standing on something
	ActionConfirm        // accept a menu choice
	ActionBack           // leave to the previous screen
	ActionRestart        // start a finished run over
	ActionQuit           // end the session
	ActionPause          // toggle the simulation

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionJump:    "Jump",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns the action name.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions active during one tick.
// The zero value is an empty frame and frames copy by value.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as active. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a is active.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action is active.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear deactivates every action.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns an independent copy of the frame.
func (f InputFrame) Clone() InputFrame {
	return f
}

// String lists the active actions, e.g. "Left+Jump".
func (f InputFrame) String() string {
	if f.Empty() {
		return "None"
	}
	var names []string
	for a := ActionLeft; a < actionCount; a++ {
		if f.Has(a) {
			names = append(names, a.String())
		}
	}
	return strings.Join(names, "+")
}
