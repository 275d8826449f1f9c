package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-quest/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game input.
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
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case " ":
		return core.ActionTap, false
	case "enter":
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

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse converts a left-button press into a normalized pointer on a
// width x height screen. Taps land on the center of the clicked cell.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, width, height int) (core.Pointer, bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.Pointer{}, false
	}
	if width <= 0 || height <= 0 {
		return core.Pointer{}, false
	}
	return core.Pointer{
		X: core.ClampF((float64(msg.X)+0.5)/float64(width), 0, 1),
		Y: core.ClampF((float64(msg.Y)+0.5)/float64(height), 0, 1),
	}, true
}

// MapMouseToFrame queues a tap for a left click. Returns true if a tap was added.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, width, height int, frame *core.InputFrame) bool {
	p, ok := km.MapMouse(msg, width, height)
	if ok {
		frame.Tap(p.X, p.Y)
	}
	return ok
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
	}

	return MenuActionNone
}
