package solver

import (
	"math/rand/v2"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-tui/internal/mines"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	os.Exit(m.Run())
}

type board struct {
	grid   *mines.Grid
	cursor mines.Point
	status mines.Status
	placed bool
}

func (b *board) Grid() *mines.Grid    { return b.grid }
func (b *board) Cursor() mines.Point  { return b.cursor }
func (b *board) Status() mines.Status { return b.status }
func (b *board) MinesPlaced() bool    { return b.placed }

// newBoard reads a player view: digits are revealed counts, 'F' is a
// flag and '#' a hidden cell.
func newBoard(t *testing.T, cursor mines.Point, rows ...string) *board {
	t.Helper()
	grid := mines.NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		require.Len(t, row, grid.Width())
		for x, ch := range row {
			cell := grid.At(mines.Point{X: x, Y: y})
			switch {
			case ch == 'F':
				cell.State = mines.Flagged
			case ch == '#':
				cell.State = mines.Hidden
			case '0' <= ch && ch <= '8':
				cell.State = mines.Revealed
				cell.Content = mines.Safe(int(ch - '0'))
			default:
				t.Fatalf("bad cell %q", ch)
			}
		}
	}
	return &board{grid: grid, cursor: cursor, placed: true}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name   string
		cursor mines.Point
		rows   []string
		want   Hint
	}{
		{
			name:   "satisfied count",
			cursor: mines.Point{X: 0, Y: 0},
			rows: []string{
				"1F",
				"##",
			},
			want: Hint{Cell: mines.Point{X: 0, Y: 1}, Mine: false, Rule: SinglePoint},
		},
		{
			name:   "all hidden are mines",
			cursor: mines.Point{X: 0, Y: 0},
			rows: []string{
				"3#",
				"##",
			},
			want: Hint{Cell: mines.Point{X: 1, Y: 0}, Mine: true, Rule: SinglePoint},
		},
		{
			name:   "one two one",
			cursor: mines.Point{X: 1, Y: 0},
			rows: []string{
				"121",
				"###",
			},
			want: Hint{Cell: mines.Point{X: 2, Y: 1}, Mine: true, Rule: Subset},
		},
		{
			name:   "one one",
			cursor: mines.Point{X: 0, Y: 0},
			rows: []string{
				"11#",
				"###",
			},
			want: Hint{Cell: mines.Point{X: 2, Y: 0}, Mine: false, Rule: Subset},
		},
		{
			name:   "closest to cursor",
			cursor: mines.Point{X: 4, Y: 0},
			rows: []string{
				"1F000",
				"##000",
				"00000",
				"000##",
				"0001#",
			},
			want: Hint{Cell: mines.Point{X: 4, Y: 3}, Mine: false, Rule: SinglePoint},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			hint, ok := Find(newBoard(t, test.cursor, test.rows...))
			require.True(t, ok)
			assert.Equal(t, test.want, hint)
		})
	}
}

func TestFindNothing(t *testing.T) {
	b := newBoard(t, mines.Point{},
		"###",
		"###",
	)
	_, ok := Find(b)
	assert.False(t, ok, "nothing revealed")

	b = newBoard(t, mines.Point{},
		"1#",
		"##",
	)
	_, ok = Find(b)
	assert.False(t, ok, "undecidable")

	b = newBoard(t, mines.Point{},
		"1F",
		"##",
	)
	b.status = mines.Failed
	_, ok = Find(b)
	assert.False(t, ok, "game over")

	b.status = mines.Active
	b.placed = false
	_, ok = Find(b)
	assert.False(t, ok, "before the first reveal")
}

// Following hints from a real game never hits a mine.
func TestHintsAreSound(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		g, err := mines.NewGame(mines.GameParams{Width: 16, Height: 16, Difficulty: mines.Medium}, r)
		require.NoError(t, err)
		g.MoveTo(8, 8)
		g.RevealCell()

		for g.Status() == mines.Active {
			hint, ok := Find(g)
			if !ok {
				break
			}
			require.Equal(t, hint.Mine, g.Cell(hint.Cell).Content.IsMine(), "hint %+v\n%s", hint, g.Grid())
			g.MoveTo(hint.Cell.X, hint.Cell.Y)
			if hint.Mine {
				g.ToggleFlag()
			} else {
				g.RevealCell()
			}
		}
		assert.NotEqual(t, mines.Failed, g.Status())
	}
}
