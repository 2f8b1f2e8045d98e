package grid

import "testing"

func TestCellWrap(t *testing.T) {
	tests := []struct {
		name string
		in   Cell
		size int
		want Cell
	}{
		{"inside", Cell{10, 10}, 20, Cell{10, 10}},
		{"past right", Cell{20, 5}, 20, Cell{0, 5}},
		{"past left", Cell{-1, 5}, 20, Cell{19, 5}},
		{"past bottom", Cell{3, 20}, 20, Cell{3, 0}},
		{"past top", Cell{3, -1}, 20, Cell{3, 19}},
		{"corner", Cell{-1, 20}, 20, Cell{19, 0}},
		{"far negative", Cell{-3, 0}, 2, Cell{1, 0}},
	}

	for _, tt := range tests {
		got := tt.in.Wrap(tt.size)
		if got != tt.want {
			t.Errorf("%s: %v.Wrap(%d) = %v, want %v", tt.name, tt.in, tt.size, got, tt.want)
		}
	}
}

func TestCellWithin(t *testing.T) {
	tests := []struct {
		in   Cell
		want bool
	}{
		{Cell{0, 0}, true},
		{Cell{19, 19}, true},
		{Cell{20, 0}, false},
		{Cell{0, -1}, false},
	}

	for _, tt := range tests {
		if got := tt.in.Within(20); got != tt.want {
			t.Errorf("%v.Within(20) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCellOffset(t *testing.T) {
	got := Cell{10, 10}.Offset(1, -1)
	if got != (Cell{11, 9}) {
		t.Errorf("Offset(1, -1) = %v, want {11 9}", got)
	}
}
