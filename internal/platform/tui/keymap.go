package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oliban/lander-game-sub002/internal/core"
)

// KeyMapper translates Bubble Tea key messages to flight actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action plus the player it belongs to.
// Player1 flies on WASD/space, Player2 on arrows/enter in duel modes.
// Returns ActionNone when the key is unbound, and isQuit for exit keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (player core.PlayerID, action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.Player1, core.ActionQuit, true
	}

	switch key {
	case "w":
		return core.Player1, core.ActionThrust, false
	case "a":
		return core.Player1, core.ActionLeft, false
	case "d":
		return core.Player1, core.ActionRight, false
	case " ":
		return core.Player1, core.ActionDrop, false
	case "t":
		return core.Player1, core.ActionTrade, false
	case "up":
		return core.Player2, core.ActionThrust, false
	case "left":
		return core.Player2, core.ActionLeft, false
	case "right":
		return core.Player2, core.ActionRight, false
	case "enter":
		return core.Player2, core.ActionDrop, false
	case "p", "esc":
		return core.Player1, core.ActionPause, false
	case "r":
		return core.Player1, core.ActionRestart, false
	}

	return core.Player1, core.ActionNone, false
}

// MapKeyToMultiFrame updates a multi-input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	player, action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		f := frame.Player(player)
		f.Set(action)
		frame.SetPlayer(player, f)
	}
	return isQuit
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
