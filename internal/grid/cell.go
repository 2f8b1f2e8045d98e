// Package grid provides the cell coordinate type shared by the board and the snake.
package grid

// Cell is one square of the board, addressed by column and row.
type Cell struct {
	X, Y int
}

// Offset returns the cell moved by the given delta, without wrapping.
func (c Cell) Offset(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Within returns true if the cell lies on a size x size grid.
func (c Cell) Within(size int) bool {
	return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size
}

// Wrap folds the cell back onto a size x size grid. Each axis wraps on its own,
// so a cell one step past the right edge lands in column 0.
func (c Cell) Wrap(size int) Cell {
	return Cell{X: wrapAxis(c.X, size), Y: wrapAxis(c.Y, size)}
}

func wrapAxis(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}
