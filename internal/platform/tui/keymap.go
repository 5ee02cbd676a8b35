package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Left, k.Right, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Pause, k.Restart, k.Back},
		{k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default in-game key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "run left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "run right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/↑", "jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Jump):
		return core.ActionJump, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack, false
	case msg.String() == "enter":
		return core.ActionConfirm, false
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
