package handlers

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/minesweeper-tui/internal/mines"
	"github.com/vancomm/minesweeper-tui/internal/solver"
)

// Locator translates screen coordinates into a grid cell.
type Locator interface {
	CellAt(x, y int) (mines.Point, bool)
}

type GameHandler struct {
	logger *slog.Logger
	game   *mines.Game
	cells  Locator
	quit   func()
}

func NewGameHandler(
	logger *slog.Logger,
	game *mines.Game,
	cells Locator,
	quit func(),
) *GameHandler {
	return &GameHandler{
		logger: logger,
		game:   game,
		cells:  cells,
		quit:   quit,
	}
}

func (h *GameHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.Do(KeyAction(ev, h.game.Status().Over()))
	case *tcell.EventMouse:
		return h.click(ev)
	default:
		return false
	}
}

// Do applies an action to the game and reports whether anything was
// done.
func (h *GameHandler) Do(action Action) bool {
	switch action {
	case MoveUp:
		h.game.MoveCursor(mines.Up)
	case MoveDown:
		h.game.MoveCursor(mines.Down)
	case MoveLeft:
		h.game.MoveCursor(mines.Left)
	case MoveRight:
		h.game.MoveCursor(mines.Right)
	case Reveal:
		h.game.RevealCell()
	case Flag:
		h.game.ToggleFlag()
	case Chord:
		h.game.ChordCell()
	case Hint:
		return h.hint()
	case Quit:
		h.quit()
	default:
		return false
	}
	return true
}

func (h *GameHandler) hint() bool {
	hint, ok := solver.Find(h.game)
	if !ok {
		h.logger.Debug("no hint available")
		return false
	}
	h.logger.Debug(
		"hint",
		slog.String("cell", hint.Cell.String()),
		slog.Bool("mine", hint.Mine),
		slog.String("rule", hint.Rule.String()),
	)
	h.game.MoveTo(hint.Cell.X, hint.Cell.Y)
	return true
}

// click reveals on the primary button and flags on the secondary one.
func (h *GameHandler) click(ev *tcell.EventMouse) bool {
	if h.game.Status().Over() {
		return false
	}
	var action Action
	switch buttons := ev.Buttons(); {
	case buttons&tcell.Button1 != 0:
		action = Reveal
	case buttons&tcell.Button2 != 0:
		action = Flag
	default:
		return false
	}
	p, ok := h.cells.CellAt(ev.Position())
	if !ok {
		return false
	}
	h.game.MoveTo(p.X, p.Y)
	return h.Do(action)
}
