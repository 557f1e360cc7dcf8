// Package solver finds cells the player can open or flag with certainty,
// looking only at what is visible: revealed counts and placed flags.
package solver

import (
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-tui/internal/mines"
)

var Log = logrus.New()

type Rule int

const (
	SinglePoint Rule = iota // a count is fully satisfied or fully unsatisfied
	Subset                  // one count's hidden cells contain another's
)

func (r Rule) String() string {
	if r == Subset {
		return "subset"
	}
	return "single point"
}

type Hint struct {
	Cell mines.Point
	Mine bool
	Rule Rule
}

// Board is the part of a game the solver reads. Hidden cell contents
// are never looked at.
type Board interface {
	Grid() *mines.Grid
	Cursor() mines.Point
	Status() mines.Status
	MinesPlaced() bool
}

type solver struct {
	grid         *mines.Grid
	inspectQueue deque.Deque[mines.Point]
	hints        []Hint
}

// Find returns the deduction closest to the cursor. Flags are trusted,
// so a misplaced flag can lead to a wrong hint.
func Find(b Board) (hint Hint, ok bool) {
	if !b.MinesPlaced() || b.Status().Over() {
		return Hint{}, false
	}

	s := &solver{grid: b.Grid()}
	for p := range s.grid.Points {
		if _, ok := s.revealedCount(p); ok && len(s.untouchedNeighbors(p)) > 0 {
			s.inspectQueue.PushBack(p)
		}
	}
	s.processInspectQueue()

	if len(s.hints) == 0 {
		Log.Debug("no hint available")
		return Hint{}, false
	}

	cursor := b.Cursor()
	hint = s.hints[0]
	for _, h := range s.hints[1:] {
		if h.Cell.Distance(cursor) < hint.Cell.Distance(cursor) {
			hint = h
		}
	}

	Log.WithFields(logrus.Fields{
		"cell":       hint.Cell.String(),
		"mine":       hint.Mine,
		"rule":       hint.Rule.String(),
		"candidates": len(s.hints),
	}).Debug("hint found")

	return hint, true
}

func (s *solver) processInspectQueue() {
	for s.inspectQueue.Len() != 0 {
		s.inspectCell(s.inspectQueue.PopFront())
	}
}

func (s *solver) revealedCount(p mines.Point) (count int, ok bool) {
	cell := s.grid.At(p)
	if cell.State != mines.Revealed {
		return 0, false
	}
	return cell.Content.Count()
}

func (s *solver) untouchedNeighbors(p mines.Point) (ps []mines.Point) {
	for _, n := range s.grid.Neighbors(p) {
		if s.grid.At(n).State == mines.Hidden {
			ps = append(ps, n)
		}
	}
	return
}

// remainingMines is the revealed count at p minus the flags around it.
func (s *solver) remainingMines(p mines.Point) (count int, ok bool) {
	count, ok = s.revealedCount(p)
	if !ok {
		return
	}
	for _, n := range s.grid.Neighbors(p) {
		if s.grid.At(n).State == mines.Flagged {
			count--
		}
	}
	return
}

// extendedOpenedNeighbors returns the revealed cells in the 5x5 square
// around p, the only ones whose hidden neighbours can overlap p's.
func (s *solver) extendedOpenedNeighbors(p mines.Point) (ps []mines.Point) {
	for y := p.Y - 2; y <= p.Y+2; y++ {
		for x := p.X - 2; x <= p.X+2; x++ {
			q := mines.Point{X: x, Y: y}
			if q == p || !s.grid.InBounds(q) {
				continue
			}
			if _, ok := s.revealedCount(q); ok {
				ps = append(ps, q)
			}
		}
	}
	return
}

func (s *solver) add(ps []mines.Point, mine bool, rule Rule) {
	for _, p := range ps {
		s.hints = append(s.hints, Hint{Cell: p, Mine: mine, Rule: rule})
	}
}

func (s *solver) inspectCell(p mines.Point) {
	untouched := s.untouchedNeighbors(p)
	if len(untouched) == 0 {
		return
	}
	remaining, ok := s.remainingMines(p)
	if !ok {
		return
	}

	switch remaining {
	case 0:
		s.add(untouched, false, SinglePoint)
		return
	case len(untouched):
		s.add(untouched, true, SinglePoint)
		return
	}

	for _, o := range s.extendedOpenedNeighbors(p) {
		n := s.untouchedNeighbors(o)
		shared := Intersect(untouched, n)
		if len(shared) != len(untouched) || len(n) == len(untouched) {
			continue
		}
		rm, ok := s.remainingMines(o)
		if !ok {
			continue
		}
		// the cells only o sees hold exactly rm-remaining mines
		rest := Complement(untouched, n)
		switch rm - remaining {
		case 0:
			s.add(rest, false, Subset)
		case len(rest):
			s.add(rest, true, Subset)
		}
	}
}
