package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/markpane/markpane/internal/surface"
)

var (
	styleDefault = tcell.StyleDefault
	styleBar     = tcell.StyleDefault.Reverse(true)
	styleDivider = tcell.StyleDefault.Dim(true)
)

// draw repaints the whole screen: toolbar, panes, status bar, cursor.
func (a *App) draw() {
	a.screen.Clear()

	v := a.ed.View()
	if v.Menu {
		a.drawToolbar()
	}

	editW := a.width
	showPreview := v.Preview && !a.ed.IsFullScreen()
	if showPreview && v.Editor {
		editW = a.width / 2
		a.drawDivider(editW)
	}

	if v.Editor {
		a.drawEditor(editW)
	}
	if showPreview {
		x := 0
		if v.Editor {
			x = editW + 1
		}
		a.drawPreview(x, a.width-x)
	}

	a.drawStatus()
	a.placeCursor(editW)
	a.screen.Show()
}

func (a *App) drawToolbar() {
	left, right := a.toolbarLine()
	drawText(a.screen, 0, 0, a.width, left, styleBar)

	rw := runewidth.StringWidth(right)
	fillTo := a.width - rw
	for x := runewidth.StringWidth(left); x < a.width; x++ {
		a.screen.SetContent(x, 0, ' ', nil, styleBar)
	}
	if fillTo > 0 {
		drawText(a.screen, fillTo, 0, rw, right, styleBar)
	}
}

func (a *App) drawDivider(x int) {
	for y := 1; y <= a.paneHeight(); y++ {
		a.screen.SetContent(x, y, '│', nil, styleDivider)
	}
}

func (a *App) drawEditor(width int) {
	lines := strings.Split(a.buf.Value(), "\n")
	top := a.buf.ScrollTop()

	for row := 0; row < a.paneHeight(); row++ {
		idx := top + row
		if idx >= len(lines) {
			break
		}
		drawText(a.screen, 0, row+1, width, lines[idx], styleDefault)
	}
}

func (a *App) drawPreview(x, width int) {
	for row, line := range a.preview.visible() {
		drawText(a.screen, x, row+1, width, line, styleDefault)
	}
}

func (a *App) drawStatus() {
	y := a.height - 1
	line := a.statusLine()
	drawText(a.screen, 0, y, a.width, line, styleBar)
	for col := runewidth.StringWidth(line); col < a.width; col++ {
		a.screen.SetContent(col, y, ' ', nil, styleBar)
	}
}

// placeCursor positions the hardware cursor inside the edit pane, hiding
// it when the cursor has scrolled out of view.
func (a *App) placeCursor(editW int) {
	if !a.ed.View().Editor {
		a.screen.HideCursor()
		return
	}

	pos := a.buf.CursorPosition()
	row := pos.Line - a.buf.ScrollTop()
	if row < 0 || row >= a.paneHeight() {
		a.screen.HideCursor()
		return
	}

	col := displayColumn(a.buf.Value(), pos)
	if col >= editW {
		col = editW - 1
	}
	a.screen.ShowCursor(col, row+1)
}

// displayColumn converts a character column to a display column, widening
// for east-asian runes.
func displayColumn(text string, pos surface.Position) int {
	lines := strings.Split(text, "\n")
	if pos.Line >= len(lines) {
		return 0
	}
	line := lines[pos.Line]
	col := 0
	for i, r := range line {
		if i >= pos.Ch {
			break
		}
		col += runewidth.RuneWidth(r)
	}
	return col
}

// drawText writes s starting at (x, y), truncated to width display cells.
func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	col := x
	for _, r := range runewidth.Truncate(text, width, "") {
		s.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}
