package tui

import (
	"github.com/vovakirdan/wrapsnake/internal/core"
	"github.com/vovakirdan/wrapsnake/internal/games/snake"
)

// cellWidth is the number of terminal columns per field cell, so cells look square.
const cellWidth = 2

// layout places the field inside the terminal. The field sits in a bordered
// box centred above a one-line help bar.
type layout struct {
	box   core.Rect // Border, in terminal cells
	field snake.Field
	fits  bool
}

// newLayout computes the layout of f in a termW x termH terminal.
func newLayout(f snake.Field, termW, termH int) layout {
	w := f.Cols*cellWidth + 2
	h := f.PlayRows() + 2
	avail := termH - 1 // help bar

	return layout{
		box:   core.NewRect(max((termW-w)/2, 0), max((avail-h)/2, 0), w, h),
		field: f,
		fits:  w <= termW && h <= avail,
	}
}

// minSize returns the smallest terminal that fits the layout.
func (l layout) minSize() (w, h int) {
	return l.box.W, l.box.H + 1
}

// origin returns the terminal position of field cell (0, 0).
func (l layout) origin() (x, y int) {
	return l.box.X + 1, l.box.Y + 1
}

// cellAt returns the terminal position of the field cell containing p.
func (l layout) cellAt(p snake.Point) (x, y int) {
	ox, oy := l.origin()
	col, row := l.field.CellOf(p)
	return ox + col*cellWidth, oy + row
}

// rowAt converts a field pixel y to a terminal row, clamped to the field.
func (l layout) rowAt(py int) int {
	_, oy := l.origin()
	return oy + core.Clamp(py/l.field.CellSize, 0, l.field.PlayRows()-1)
}

// fieldPoint maps a terminal position to the centre pixel of the field cell
// under it. Positions outside the field map to the centre of the cell just
// beyond the nearest edge, which is never inside the field.
func (l layout) fieldPoint(x, y int) (px, py int) {
	ox, oy := l.origin()
	col, row := -1, -1
	if x >= ox {
		col = (x - ox) / cellWidth
	}
	if y >= oy {
		row = y - oy
	}
	col = core.Clamp(col, -1, l.field.Cols)
	row = core.Clamp(row, -1, l.field.PlayRows())

	cs := l.field.CellSize
	return col*cs + cs/2, row*cs + cs/2
}

// buttonCells returns the terminal rectangle covering every field cell whose
// centre lies strictly inside r, matching what fieldPoint can hit.
func (l layout) buttonCells(r core.Rect) core.Rect {
	cs := l.field.CellSize
	c0, c1 := -1, -1
	for c := range l.field.Cols {
		if cx := c*cs + cs/2; cx > r.X && cx < r.Right() {
			if c0 < 0 {
				c0 = c
			}
			c1 = c
		}
	}
	r0, r1 := -1, -1
	for row := range l.field.PlayRows() {
		if cy := row*cs + cs/2; cy > r.Y && cy < r.Bottom() {
			if r0 < 0 {
				r0 = row
			}
			r1 = row
		}
	}
	if c0 < 0 || r0 < 0 {
		return core.Rect{}
	}

	ox, oy := l.origin()
	return core.NewRect(ox+c0*cellWidth, oy+r0, (c1-c0+1)*cellWidth, r1-r0+1)
}
