package keymap

import (
	"fmt"
	"strconv"
)

// Kind is the tag of an Action.
type Kind int

const (
	Quit Kind = iota
	MoveRight
	MoveLeft
	MoveUp
	MoveDown
	TabRight
	TabLeft
	Scale
	Reload
)

// Action is one semantic user intent. Level is only meaningful for Scale.
type Action struct {
	Kind  Kind
	Level int
}

// Convenience values for the fixed actions.
var (
	ActionQuit      = Action{Kind: Quit}
	ActionMoveRight = Action{Kind: MoveRight}
	ActionMoveLeft  = Action{Kind: MoveLeft}
	ActionMoveUp    = Action{Kind: MoveUp}
	ActionMoveDown  = Action{Kind: MoveDown}
	ActionTabRight  = Action{Kind: TabRight}
	ActionTabLeft   = Action{Kind: TabLeft}
	ActionReload    = Action{Kind: Reload}
)

// ScaleTo returns the Scale action for level n (0..9 have default keys).
func ScaleTo(n int) Action {
	return Action{Kind: Scale, Level: n}
}

// String returns the canonical action name, e.g. "TabRight" or "Scale3".
func (a Action) String() string {
	switch a.Kind {
	case Quit:
		return "Quit"
	case MoveRight:
		return "MoveRight"
	case MoveLeft:
		return "MoveLeft"
	case MoveUp:
		return "MoveUp"
	case MoveDown:
		return "MoveDown"
	case TabRight:
		return "TabRight"
	case TabLeft:
		return "TabLeft"
	case Scale:
		return "Scale" + strconv.Itoa(a.Level)
	case Reload:
		return "Reload"
	default:
		return fmt.Sprintf("Action(%d)", int(a.Kind))
	}
}

// Description is the short help text shown next to the keys.
func (a Action) Description() string {
	switch a.Kind {
	case Quit:
		return "quit"
	case MoveRight:
		return "increase"
	case MoveLeft:
		return "decrease"
	case MoveUp:
		return "previous property"
	case MoveDown:
		return "next property"
	case TabRight:
		return "next tab"
	case TabLeft:
		return "previous tab"
	case Scale:
		if a.Level == 0 {
			return "reset to 100%"
		}
		return fmt.Sprintf("set to %d%%", a.Level*10)
	case Reload:
		return "reload outputs"
	default:
		return ""
	}
}

// DefaultKeys returns the key symbols that trigger a unless overridden.
func (a Action) DefaultKeys() []string {
	switch a.Kind {
	case Quit:
		return []string{"q"}
	case MoveRight:
		return []string{"l", "right"}
	case MoveLeft:
		return []string{"h", "left"}
	case MoveUp:
		return []string{"k", "up"}
	case MoveDown:
		return []string{"j", "down"}
	case TabRight:
		return []string{"L", ".", ">"}
	case TabLeft:
		return []string{"H", ",", "<"}
	case Scale:
		if a.Level >= 0 && a.Level <= 9 {
			return []string{strconv.Itoa(a.Level)}
		}
		return nil
	case Reload:
		return []string{"R"}
	default:
		return nil
	}
}

// BaseActions is the action set available before initialization.
func BaseActions() []Action {
	return []Action{ActionQuit}
}

// FullActions is the action set available once devices are loaded.
func FullActions() []Action {
	actions := []Action{
		ActionQuit,
		ActionMoveRight,
		ActionMoveLeft,
		ActionMoveUp,
		ActionMoveDown,
		ActionTabRight,
		ActionTabLeft,
	}
	for n := 1; n <= 9; n++ {
		actions = append(actions, ScaleTo(n))
	}
	actions = append(actions, ScaleTo(0), ActionReload)
	return actions
}
