package mines

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/gammazero/deque"
)

var Log *slog.Logger = slog.Default()

type Status int

const (
	Active Status = iota
	Success
	Failed
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

func (s Status) Over() bool {
	return s != Active
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Game is a single minesweeper session. Mines are laid on the first
// reveal so that the opened cell and its surroundings are always safe.
type Game struct {
	GameParams

	grid   *Grid
	cursor Point
	status Status

	minesPlaced    bool
	mineCount      int
	flagsAvailable int
	hiddenSafe     int

	animationLevel int
	sinceAnimation time.Duration

	startedAt, endedAt time.Time

	rnd *rand.Rand
	now func() time.Time
}

func NewGame(params GameParams, r *rand.Rand) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("unable to create game: %w", err)
	}
	mineCount := params.MineCount()
	g := &Game{
		GameParams:     params,
		grid:           NewGrid(params.Width, params.Height),
		mineCount:      mineCount,
		flagsAvailable: mineCount,
		hiddenSafe:     params.Width*params.Height - mineCount,
		rnd:            r,
		now:            time.Now,
	}
	return g, nil
}

func (g *Game) Grid() *Grid          { return g.grid }
func (g *Game) Cursor() Point        { return g.cursor }
func (g *Game) Status() Status       { return g.status }
func (g *Game) MineCount() int       { return g.mineCount }
func (g *Game) MinesPlaced() bool    { return g.minesPlaced }
func (g *Game) FlagsAvailable() int  { return g.flagsAvailable }
func (g *Game) HiddenSafeCells() int { return g.hiddenSafe }
func (g *Game) AnimationLevel() int  { return g.animationLevel }
func (g *Game) StartedAt() time.Time { return g.startedAt }
func (g *Game) EndedAt() time.Time   { return g.endedAt }

// Cell returns a copy of the cell at p.
func (g *Game) Cell(p Point) Cell {
	return *g.grid.At(p)
}

// Elapsed is the play time, measured from the first reveal.
func (g *Game) Elapsed() time.Duration {
	switch {
	case g.startedAt.IsZero():
		return 0
	case g.status.Over():
		return g.endedAt.Sub(g.startedAt)
	default:
		return g.now().Sub(g.startedAt)
	}
}

func (g *Game) MoveCursor(d Direction) {
	switch d {
	case Up:
		g.MoveTo(g.cursor.X, g.cursor.Y-1)
	case Down:
		g.MoveTo(g.cursor.X, g.cursor.Y+1)
	case Left:
		g.MoveTo(g.cursor.X-1, g.cursor.Y)
	case Right:
		g.MoveTo(g.cursor.X+1, g.cursor.Y)
	}
}

// MoveTo places the cursor at x, y clamped to the grid. The cursor is
// frozen once the game is over since it centers the end sweep.
func (g *Game) MoveTo(x, y int) {
	if g.status.Over() {
		return
	}
	g.cursor = Point{
		X: min(max(x, 0), g.Width-1),
		Y: min(max(y, 0), g.Height-1),
	}
}

func (g *Game) RevealCell() {
	if g.status.Over() {
		return
	}
	if !g.minesPlaced {
		placeMines(g.grid, g.mineCount, g.cursor, g.rnd)
		g.minesPlaced = true
		g.startedAt = g.now()
	}
	g.reveal(g.cursor)
}

func (g *Game) reveal(p Point) {
	cell := g.grid.At(p)
	if cell.State != Hidden {
		return
	}
	cell.State = Revealed

	count, safe := cell.Content.Count()
	if !safe {
		g.end(Failed)
		return
	}

	g.hiddenSafe--
	if count == 0 {
		g.revealSafeNeighbors(p)
		g.hiddenSafe = g.grid.countUnrevealedSafe()
	}
	if g.hiddenSafe == 0 {
		g.end(Success)
	}
}

// revealSafeNeighbors opens the connected area of zero cells around p
// together with its numbered border. Flagged cells are left alone.
func (g *Game) revealSafeNeighbors(p Point) {
	var todo deque.Deque[Point]
	todo.PushBack(p)
	for todo.Len() != 0 {
		for _, n := range g.grid.Neighbors(todo.PopFront()) {
			cell := g.grid.At(n)
			if cell.State != Hidden {
				continue
			}
			count, safe := cell.Content.Count()
			if !safe {
				// unreachable: a cell next to a mine never counts 0
				Log.Error("flood fill reached a mine", slog.String("cell", n.String()))
				continue
			}
			cell.State = Revealed
			if count == 0 {
				todo.PushBack(n)
			}
		}
	}
}

// ToggleFlag flips the cursor cell between Hidden and Flagged. A flag is
// only placed while the budget is positive, so the budget stays within
// 0 and the mine count.
func (g *Game) ToggleFlag() {
	if g.status.Over() {
		return
	}
	cell := g.grid.At(g.cursor)
	switch cell.State {
	case Hidden:
		if g.flagsAvailable <= 0 {
			return
		}
		cell.State = Flagged
		g.flagsAvailable--
	case Flagged:
		cell.State = Hidden
		g.flagsAvailable++
	}
}

// ChordCell reveals every hidden neighbour of the revealed cursor cell
// once as many neighbours are flagged as the cell counts. A wrong flag
// loses the game.
func (g *Game) ChordCell() {
	if g.status.Over() || !g.minesPlaced {
		return
	}
	cell := g.grid.At(g.cursor)
	if cell.State != Revealed {
		return
	}
	count, ok := cell.Content.Count()
	if !ok {
		return
	}
	var (
		flags  int
		hidden []Point
	)
	for _, n := range g.grid.Neighbors(g.cursor) {
		switch g.grid.At(n).State {
		case Flagged:
			flags++
		case Hidden:
			hidden = append(hidden, n)
		}
	}
	if flags != count {
		return
	}
	for _, n := range hidden {
		g.reveal(n)
		if g.status.Over() {
			return
		}
	}
}

func (g *Game) end(s Status) {
	g.status = s
	g.endedAt = g.now()
	Log.Debug("game over",
		slog.String("status", s.String()),
		slog.String("cursor", g.cursor.String()),
		slog.Duration("elapsed", g.Elapsed()),
	)
}
