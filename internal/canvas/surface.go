// Package canvas defines the pixel-space drawing capability the board and
// snake render onto, independent of the terminal backend.
package canvas

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snake/internal/grid"
)

// Point is a position in surface pixels.
type Point struct {
	X, Y int
}

// Surface is a drawable target measured in pixels.
type Surface interface {
	// Fill paints the whole drawable area with a single color.
	Fill(color tcell.Color)
	// DrawLine draws a straight horizontal or vertical line from one point to another, inclusive.
	DrawLine(from, to Point, color tcell.Color)
	// DrawFilledRect fills a w x h rectangle whose top-left corner is pos.
	DrawFilledRect(pos Point, w, h int, color tcell.Color)
	// Present makes everything drawn so far visible.
	Present()
}

// DrawSquare draws a grid cell as a filled square inset by one pixel from the
// cell boundary, leaving a visible gap between neighbouring cells.
func DrawSquare(s Surface, c grid.Cell, pixelSize int, color tcell.Color) {
	pos := Point{X: c.X*pixelSize + 1, Y: c.Y*pixelSize + 1}
	s.DrawFilledRect(pos, pixelSize-1, pixelSize-1, color)
}
