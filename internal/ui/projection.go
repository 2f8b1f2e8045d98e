package ui

import "github.com/samdwyer/snake/internal/canvas"

// columnsPerCell keeps grid cells roughly square, since terminal
// characters are about twice as tall as they are wide.
const columnsPerCell = 2

// Projection maps surface pixels onto terminal cells. One grid cell of
// PixelSize pixels becomes columnsPerCell columns by one row.
type Projection struct {
	WidthPx   int
	HeightPx  int
	PixelSize int
}

// Column returns the terminal column holding pixel x.
func (p Projection) Column(x int) int {
	return floorDiv(x*columnsPerCell, p.PixelSize)
}

// Row returns the terminal row holding pixel y.
func (p Projection) Row(y int) int {
	return floorDiv(y, p.PixelSize)
}

// Columns returns the board width in terminal columns.
func (p Projection) Columns() int {
	if p.PixelSize <= 0 {
		return 0
	}
	return p.WidthPx * columnsPerCell / p.PixelSize
}

// Rows returns the board height in terminal rows.
func (p Projection) Rows() int {
	if p.PixelSize <= 0 {
		return 0
	}
	return p.HeightPx / p.PixelSize
}

// InBounds returns true if the terminal cell lies on the board.
func (p Projection) InBounds(col, row int) bool {
	return col >= 0 && col < p.Columns() && row >= 0 && row < p.Rows()
}

// Span returns the half-open column and row ranges a pixel rectangle covers.
func (p Projection) Span(pos canvas.Point, w, h int) (c0, c1, r0, r1 int) {
	if w <= 0 || h <= 0 || p.PixelSize <= 0 {
		return 0, 0, 0, 0
	}
	c0 = p.Column(pos.X)
	c1 = ceilDiv((pos.X+w)*columnsPerCell, p.PixelSize)
	r0 = p.Row(pos.Y)
	r1 = ceilDiv(pos.Y+h, p.PixelSize)
	return c0, c1, r0, r1
}

func floorDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
