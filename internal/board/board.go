// Package board provides the static grid geometry and background rendering.
package board

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snake/internal/canvas"
)

const (
	// Default board dimensions
	DefaultWidth  = 500
	DefaultHeight = 500
	DefaultRows   = 20

	// Smallest cell that still shows a square after the 1px inset
	minPixelSize = 2
)

// ErrInvalidBoard is returned when board dimensions make grid arithmetic meaningless.
var ErrInvalidBoard = errors.New("invalid board")

// Board is the square playing field. It is immutable after construction.
type Board struct {
	width     int // pixels
	height    int // pixels
	rows      int // cells per side
	pixelSize int // pixels per cell
}

// New creates a board of widthPx x heightPx pixels divided into rows x rows cells.
// The cell size is widthPx / rows, truncated.
func New(widthPx, heightPx, rows int) (*Board, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidBoard, rows)
	}
	if widthPx <= 0 || heightPx <= 0 {
		return nil, fmt.Errorf("%w: size must be positive, got %dx%d", ErrInvalidBoard, widthPx, heightPx)
	}

	pixelSize := widthPx / rows
	if pixelSize < minPixelSize {
		return nil, fmt.Errorf("%w: %d rows do not fit in %d pixels", ErrInvalidBoard, rows, widthPx)
	}

	return &Board{
		width:     widthPx,
		height:    heightPx,
		rows:      rows,
		pixelSize: pixelSize,
	}, nil
}

// Width returns the board width in pixels.
func (b *Board) Width() int { return b.width }

// Height returns the board height in pixels.
func (b *Board) Height() int { return b.height }

// Rows returns the number of cells along each side.
func (b *Board) Rows() int { return b.rows }

// PixelSize returns the size of one cell in pixels.
func (b *Board) PixelSize() int { return b.pixelSize }

// Render fills the background, draws the grid lines and presents the frame.
func (b *Board) Render(s canvas.Surface, background, line tcell.Color) {
	s.Fill(background)

	x, y := 0, 0
	for i := 0; i < b.rows; i++ {
		x += b.pixelSize
		y += b.pixelSize
		s.DrawLine(canvas.Point{X: x, Y: 0}, canvas.Point{X: x, Y: b.width}, line)
		s.DrawLine(canvas.Point{X: 0, Y: y}, canvas.Point{X: b.width, Y: y}, line)
	}

	s.Present()
}
