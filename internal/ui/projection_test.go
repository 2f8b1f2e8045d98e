package ui

import (
	"testing"

	"github.com/samdwyer/snake/internal/canvas"
)

var defaultProjection = Projection{WidthPx: 500, HeightPx: 500, PixelSize: 25}

func TestProjectionSize(t *testing.T) {
	if got := defaultProjection.Columns(); got != 40 {
		t.Errorf("Columns() = %d, want 40", got)
	}
	if got := defaultProjection.Rows(); got != 20 {
		t.Errorf("Rows() = %d, want 20", got)
	}
	if got := (Projection{}).Columns(); got != 0 {
		t.Errorf("zero Projection.Columns() = %d, want 0", got)
	}
}

func TestProjectionColumnRow(t *testing.T) {
	tests := []struct {
		px, col, row int
	}{
		{0, 0, 0},
		{12, 0, 0},
		{13, 1, 0},
		{25, 2, 1},
		{499, 39, 19},
		{500, 40, 20},
		{-1, -1, -1},
	}

	for _, tt := range tests {
		if got := defaultProjection.Column(tt.px); got != tt.col {
			t.Errorf("Column(%d) = %d, want %d", tt.px, got, tt.col)
		}
		if got := defaultProjection.Row(tt.px); got != tt.row {
			t.Errorf("Row(%d) = %d, want %d", tt.px, got, tt.row)
		}
	}
}

func TestProjectionSpanOfSquare(t *testing.T) {
	// Cell (3, 4) drawn inset by one pixel
	c0, c1, r0, r1 := defaultProjection.Span(canvas.Point{X: 76, Y: 101}, 24, 24)

	if c0 != 6 || c1 != 8 {
		t.Errorf("columns = [%d, %d), want [6, 8)", c0, c1)
	}
	if r0 != 4 || r1 != 5 {
		t.Errorf("rows = [%d, %d), want [4, 5)", r0, r1)
	}
}

func TestProjectionSpanEmpty(t *testing.T) {
	c0, c1, r0, r1 := defaultProjection.Span(canvas.Point{X: 10, Y: 10}, 0, 5)
	if c0 != c1 || r0 != r1 {
		t.Errorf("Span with zero width = (%d, %d, %d, %d), want empty", c0, c1, r0, r1)
	}
}

func TestProjectionInBounds(t *testing.T) {
	tests := []struct {
		col, row int
		want     bool
	}{
		{0, 0, true},
		{39, 19, true},
		{40, 0, false},
		{0, 20, false},
		{-1, 0, false},
	}

	for _, tt := range tests {
		if got := defaultProjection.InBounds(tt.col, tt.row); got != tt.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tt.col, tt.row, got, tt.want)
		}
	}
}
