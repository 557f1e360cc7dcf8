package handlers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

type Action int

const (
	NoAction Action = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Reveal
	Flag
	Chord
	Hint
	Quit
)

var actionNames = [...]string{
	NoAction:  "none",
	MoveUp:    "up",
	MoveDown:  "down",
	MoveLeft:  "left",
	MoveRight: "right",
	Reveal:    "reveal",
	Flag:      "flag",
	Chord:     "chord",
	Hint:      "hint",
	Quit:      "quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

func (a Action) isMove() bool {
	return a >= MoveUp && a <= MoveRight
}

var runeActions = map[rune]Action{
	'k': MoveUp, 'w': MoveUp,
	'j': MoveDown, 's': MoveDown,
	'h': MoveLeft, 'a': MoveLeft,
	'l': MoveRight, 'd': MoveRight,
	'e': Reveal,
	'f': Flag, ' ': Flag,
	'c': Chord,
	'?': Hint,
	'q': Quit,
}

var keyActions = map[tcell.Key]Action{
	tcell.KeyUp:     MoveUp,
	tcell.KeyDown:   MoveDown,
	tcell.KeyLeft:   MoveLeft,
	tcell.KeyRight:  MoveRight,
	tcell.KeyEnter:  Reveal,
	tcell.KeyEscape: Quit,
	tcell.KeyCtrlC:  Quit,
}

// KeyAction maps a key press to an action. After the game is over the
// movement keys do nothing and any other key quits.
func KeyAction(ev *tcell.EventKey, over bool) Action {
	var action Action
	if ev.Key() == tcell.KeyRune {
		action = runeActions[ev.Rune()]
	} else {
		action = keyActions[ev.Key()]
	}
	if !over {
		return action
	}
	if action.isMove() {
		return NoAction
	}
	return Quit
}
