package ui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snake/internal/canvas"
)

func newTestScreen(t *testing.T) *Screen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("simulation screen Init() error: %v", err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(sim.Fini)

	s := newScreen(sim)
	s.Configure(defaultProjection)
	return s
}

func cellAt(s *Screen, x, y int) (rune, tcell.Color) {
	r, _, style, _ := s.screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return r, bg
}

func TestScreenGridLines(t *testing.T) {
	s := newTestScreen(t)
	s.Fill(tcell.ColorWhite)
	s.DrawLine(canvas.Point{X: 25, Y: 0}, canvas.Point{X: 25, Y: 500}, tcell.ColorBlack)
	s.DrawLine(canvas.Point{X: 0, Y: 25}, canvas.Point{X: 500, Y: 25}, tcell.ColorBlack)

	tests := []struct {
		x, y int
		want rune
	}{
		{2, 0, '│'},
		{2, 5, '│'},
		{0, 1, '─'},
		{39, 1, '─'},
		{2, 1, '┼'},
		{3, 3, ' '},
	}

	for _, tt := range tests {
		if got, _ := cellAt(s, tt.x, tt.y); got != tt.want {
			t.Errorf("cell (%d,%d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}

	// Clipped to the board: nothing past column 39
	if got, _ := cellAt(s, 40, 1); got == '─' {
		t.Error("horizontal line leaked past the board edge")
	}
}

func TestScreenFilledRect(t *testing.T) {
	s := newTestScreen(t)
	s.Fill(tcell.ColorWhite)
	s.DrawFilledRect(canvas.Point{X: 76, Y: 101}, 24, 24, tcell.ColorRed)

	for _, col := range []int{6, 7} {
		if _, bg := cellAt(s, col, 4); bg != tcell.ColorRed {
			t.Errorf("cell (%d,4) background = %v, want red", col, bg)
		}
	}
	if _, bg := cellAt(s, 8, 4); bg != tcell.ColorWhite {
		t.Errorf("cell (8,4) background = %v, want white", bg)
	}
}

func TestRendererStatus(t *testing.T) {
	s := newTestScreen(t)
	r := NewRenderer(s, tcell.ColorWhite)

	r.RenderStatus(7, true)

	want := "GAME OVER"
	for i, ch := range want {
		if got, _ := cellAt(s, i, 20); got != ch {
			t.Fatalf("status cell %d = %q, want %q", i, got, ch)
		}
	}
	if !r.FitsBoard() {
		t.Error("FitsBoard() should be true for an 80x24 terminal")
	}
}

func TestEventsStopAfterCloseWithoutReader(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("simulation screen Init() error: %v", err)
	}
	s := newScreen(sim)
	s.eventBuffer = 1

	ch := s.Events()
	for i := 0; i < 3; i++ {
		sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	}

	// Wait for the buffer to fill so the pump is stuck on a send
	deadline := time.Now().Add(time.Second)
	for len(ch) < 1 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	s.Close()
	s.Close()

	select {
	case <-s.pumpDone:
	case <-time.After(time.Second):
		t.Fatal("event pump still running after Close with nobody reading")
	}
}
