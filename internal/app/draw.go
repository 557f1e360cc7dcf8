package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/vancomm/minesweeper-tui/internal/mines"
)

const (
	cellWidth    = 5
	cellHeight   = 3
	headerHeight = 1

	quitHint = "press 'q' to quit"
	mineRune = '¤'
	flagRune = 'F'
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	flagStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
	mineStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
	cursorBg    = tcell.ColorDarkGray
)

var countColors = [...]tcell.Color{
	1: tcell.ColorBlue,
	2: tcell.ColorGreen,
	3: tcell.ColorRed,
	4: tcell.ColorNavy,
	5: tcell.ColorMaroon,
	6: tcell.ColorTeal,
	7: tcell.ColorPurple,
	8: tcell.ColorGray,
}

// layout places the grid centered below the header line.
type layout struct {
	left, top  int
	cols, rows int
}

func newLayout(screenWidth, screenHeight, cols, rows int) layout {
	return layout{
		left: max((screenWidth-cols*cellWidth)/2, 0),
		top:  headerHeight + max((screenHeight-headerHeight-rows*cellHeight)/2, 0),
		cols: cols,
		rows: rows,
	}
}

func (l layout) origin(p mines.Point) (x, y int) {
	return l.left + p.X*cellWidth, l.top + p.Y*cellHeight
}

func (l layout) cellAt(x, y int) (mines.Point, bool) {
	if x < l.left || y < l.top {
		return mines.Point{}, false
	}
	p := mines.Point{X: (x - l.left) / cellWidth, Y: (y - l.top) / cellHeight}
	return p, p.X < l.cols && p.Y < l.rows
}

func (a *App) layout() layout {
	w, h := a.screen.Size()
	return newLayout(w, h, a.game.Width, a.game.Height)
}

// CellAt maps a screen position to the grid cell drawn there.
func (a *App) CellAt(x, y int) (mines.Point, bool) {
	return a.layout().cellAt(x, y)
}

func (a *App) draw() {
	a.screen.Clear()
	a.drawHeader()

	l := a.layout()
	for p := range a.game.Grid().Points {
		a.drawCell(l, p)
	}

	a.screen.Show()
}

func (a *App) drawHeader() {
	width, _ := a.screen.Size()

	var status string
	if a.game.Status().Over() {
		status = "Game Over!"
	} else {
		status = fmt.Sprintf("%d Flags Left", a.game.FlagsAvailable())
	}
	drawText(a.screen, 0, 0, tcell.StyleDefault, status)

	clock := formatElapsed(a.game.Elapsed())
	drawText(a.screen, (width-runewidth.StringWidth(clock))/2, 0, tcell.StyleDefault, clock)

	drawText(a.screen, width-runewidth.StringWidth(quitHint), 0, tcell.StyleDefault, quitHint)
}

func (a *App) drawCell(l layout, p mines.Point) {
	x, y := l.origin(p)
	glyph, style := a.cellLook(p)

	a.screen.SetContent(x, y, '┌', nil, borderStyle)
	a.screen.SetContent(x, y+1, '│', nil, borderStyle)
	a.screen.SetContent(x, y+2, '└', nil, borderStyle)
	for i := 1; i < cellWidth-1; i++ {
		a.screen.SetContent(x+i, y, '─', nil, borderStyle)
		a.screen.SetContent(x+i, y+1, ' ', nil, style)
		a.screen.SetContent(x+i, y+2, '─', nil, borderStyle)
	}
	a.screen.SetContent(x+cellWidth-1, y, '┐', nil, borderStyle)
	a.screen.SetContent(x+cellWidth-1, y+1, '│', nil, borderStyle)
	a.screen.SetContent(x+cellWidth-1, y+2, '┘', nil, borderStyle)

	a.screen.SetContent(x+cellWidth/2, y+1, glyph, nil, style)
}

// cellLook returns what the inside of a cell shows.
func (a *App) cellLook(p mines.Point) (rune, tcell.Style) {
	cell := a.game.Cell(p)
	glyph, style := ' ', tcell.StyleDefault

	switch cell.State {
	case mines.Flagged:
		glyph, style = flagRune, flagStyle
	case mines.Revealed:
		glyph, style = contentLook(cell.Content)
	case mines.RevealedAfterEnd:
		glyph, style = contentLook(cell.Content)
		if a.game.Status() == mines.Success {
			style = style.Background(tcell.ColorGreen)
		} else {
			style = style.Background(tcell.ColorRed)
		}
	}

	if p == a.game.Cursor() && !a.game.Status().Over() {
		if cell.State == mines.Flagged {
			style = style.Foreground(tcell.ColorRed)
		}
		style = style.Background(cursorBg)
	}
	return glyph, style
}

func contentLook(c mines.Content) (rune, tcell.Style) {
	count, safe := c.Count()
	switch {
	case !safe:
		return mineRune, mineStyle
	case count == 0:
		return ' ', tcell.StyleDefault
	default:
		return rune('0' + count), tcell.StyleDefault.Foreground(countColors[count]).Bold(true)
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func formatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
