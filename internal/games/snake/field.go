package snake

import (
	"github.com/vovakirdan/wrapsnake/internal/config"
	"github.com/vovakirdan/wrapsnake/internal/core"
)

// Point is a position in field pixels. Simulation points are always
// multiples of the cell size.
type Point struct {
	X, Y int
}

// Field describes the grid the snake lives on.
type Field struct {
	CellSize  int
	Cols      int
	Rows      int
	RowMargin int // Rows trimmed from the bottom of the grid
}

// FieldFromConfig converts the configured grid.
func FieldFromConfig(cfg config.FieldConfig) Field {
	return Field{
		CellSize:  cfg.CellSize,
		Cols:      cfg.Cols,
		Rows:      cfg.Rows,
		RowMargin: cfg.RowMargin,
	}
}

// PlayRows returns the number of playable rows.
func (f Field) PlayRows() int {
	return f.Rows - f.RowMargin
}

// Width returns the field width in pixels.
func (f Field) Width() int {
	return f.Cols * f.CellSize
}

// Height returns the playable field height in pixels.
func (f Field) Height() int {
	return f.PlayRows() * f.CellSize
}

// Cell returns the point at the top-left corner of cell (col, row).
func (f Field) Cell(col, row int) Point {
	return Point{X: col * f.CellSize, Y: row * f.CellSize}
}

// CellOf returns the column and row containing p.
func (f Field) CellOf(p Point) (col, row int) {
	return p.X / f.CellSize, p.Y / f.CellSize
}

// CellRect returns the cell-sized rectangle drawn at p.
func (f Field) CellRect(p Point) core.Rect {
	return core.NewRect(p.X, p.Y, f.CellSize, f.CellSize)
}

// Wrap teleports a point that left the field to the opposite edge.
// Only points at most one cell outside the field are expected.
func (f Field) Wrap(p Point) Point {
	maxX := f.Width() - f.CellSize
	maxY := f.Height() - f.CellSize
	if p.X < 0 {
		p.X = maxX
	}
	if p.X > maxX {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = maxY
	}
	if p.Y > maxY {
		p.Y = 0
	}
	return p
}
