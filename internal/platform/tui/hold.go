package tui

import "github.com/vovakirdan/tui-platformer/internal/core"

// DefaultHoldTicks is how long a movement key stays down after a press.
// Terminals report key repeats but never releases, so a held arrow key
// arrives as a stream of presses and the window bridges the gaps.
const DefaultHoldTicks = 8

// HeldKeys folds discrete key presses into held movement actions.
type HeldKeys struct {
	window int
	left   int
	right  int
	jump   int
	once   core.InputFrame // Pause, restart and similar fire for one tick
}

// NewHeldKeys creates a tracker holding movement for window ticks per press.
func NewHeldKeys(window int) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldTicks
	}
	return &HeldKeys{window: window, once: core.NewInputFrame()}
}

// Press records a key press.
func (h *HeldKeys) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left = h.window
		h.right = 0
	case core.ActionRight:
		h.right = h.window
		h.left = 0
	case core.ActionJump:
		h.jump = h.window
	case core.ActionNone:
	default:
		h.once.Set(a)
	}
}

// Frame returns the input for the coming tick and advances the hold timers.
func (h *HeldKeys) Frame() core.InputFrame {
	frame := h.once.Clone()
	if h.left > 0 {
		frame.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		frame.Set(core.ActionRight)
		h.right--
	}
	if h.jump > 0 {
		frame.Set(core.ActionJump)
		h.jump--
	}
	h.once.Clear()
	return frame
}

// Release drops every held key.
func (h *HeldKeys) Release() {
	h.left, h.right, h.jump = 0, 0, 0
	h.once.Clear()
}
