package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Hidden CellState = iota
	Revealed
	Flagged
	RevealedAfterEnd // only set by the end-of-game sweep
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	case RevealedAfterEnd:
		return "revealed-after-end"
	default:
		return "CellState(" + strconv.Itoa(int(s)) + ")"
	}
}

// Content is either a mine or a safe square with its surrounding mine
// count (0 to 8). The zero value is a safe square with no mined
// neighbours.
type Content struct {
	mine  bool
	count int8
}

func Mine() Content { return Content{mine: true} }

func Safe(count int) Content { return Content{count: int8(count)} }

func (c Content) IsMine() bool { return c.mine }

// Count returns the number of mined neighbours; ok is false for mines.
func (c Content) Count() (count int, ok bool) {
	if c.mine {
		return 0, false
	}
	return int(c.count), true
}

func (c Content) String() string {
	if c.mine {
		return "*"
	}
	return strconv.Itoa(int(c.count))
}

type Cell struct {
	Content Content
	State   CellState
}

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

// Distance is the Manhattan distance between p and q.
func (p Point) Distance(q Point) int {
	return absDiff(p.X, q.X) + absDiff(p.Y, q.Y)
}

// Grid is a row-major width x height field of cells.
type Grid struct {
	width, height int
	cells         []Cell
}

func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }
func (g *Grid) Len() int    { return len(g.cells) }

func (g *Grid) InBounds(p Point) bool {
	return 0 <= p.X && p.X < g.width && 0 <= p.Y && p.Y < g.height
}

// At panics if p is out of bounds.
func (g *Grid) At(p Point) *Cell {
	return &g.cells[p.Y*g.width+p.X]
}

// Neighbors returns the in-bounds Moore neighbourhood of p, p excluded.
func (g *Grid) Neighbors(p Point) []Point {
	ns := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Point{p.X + dx, p.Y + dy}
			if g.InBounds(n) {
				ns = append(ns, n)
			}
		}
	}
	return ns
}

// Points yields every coordinate in row-major order.
func (g *Grid) Points(yield func(Point) bool) {
	for y := range g.height {
		for x := range g.width {
			if !yield(Point{x, y}) {
				return
			}
		}
	}
}

func (g *Grid) countMines() (count int) {
	for _, c := range g.cells {
		if c.Content.IsMine() {
			count++
		}
	}
	return
}

func (g *Grid) countUnrevealedSafe() (count int) {
	for _, c := range g.cells {
		if !c.Content.IsMine() && c.State != Revealed {
			count++
		}
	}
	return
}

// String renders the full contents, ignoring cell states. Used in logs
// and test failures.
func (g *Grid) String() string {
	var b strings.Builder
	for y := range g.height {
		for x := range g.width {
			fmt.Fprint(&b, g.At(Point{x, y}).Content.String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
