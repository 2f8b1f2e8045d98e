// Package ui provides terminal rendering and keyboard input using tcell.
package ui

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snake/internal/canvas"
)

// eventBuffer bounds how many terminal events can queue between ticks.
const eventBuffer = 64

// Line marks for cells crossed by grid lines.
const (
	lineVertical uint8 = 1 << iota
	lineHorizontal
)

// Screen wraps tcell.Screen and exposes it as a pixel-space canvas.Surface.
type Screen struct {
	screen     tcell.Screen
	proj       Projection
	background tcell.Color
	lines      map[[2]int]uint8

	eventBuffer int
	done        chan struct{} // closed by Close
	closeOnce   sync.Once
	pumpDone    chan struct{} // closed when the event pump exits
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return newScreen(s), nil
}

// newScreen wraps an already initialized tcell screen.
func newScreen(s tcell.Screen) *Screen {
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{
		screen:      s,
		lines:       make(map[[2]int]uint8),
		eventBuffer: eventBuffer,
		done:        make(chan struct{}),
		pumpDone:    make(chan struct{}),
	}
}

// Configure sets the pixel board that Surface calls are projected from.
func (s *Screen) Configure(proj Projection) {
	s.proj = proj
}

// Projection returns the current pixel to terminal projection.
func (s *Screen) Projection() Projection {
	return s.proj
}

// Close finalizes the screen and restores terminal state.
// It is safe to call more than once.
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.screen.Fini()
	})
}

// Events starts forwarding terminal events to the returned channel. It must
// be called at most once. The channel is closed once the screen is closed,
// even if nobody is reading it any more.
func (s *Screen) Events() <-chan tcell.Event {
	ch := make(chan tcell.Event, s.eventBuffer)
	go func() {
		defer close(s.pumpDone)
		defer close(ch)
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case ch <- ev:
			case <-s.done:
				return
			}
		}
	}()
	return ch
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// DrawText writes a string starting at the given cell, clearing the rest of the row.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) {
	width, _ := s.Size()
	for _, ch := range text {
		s.SetContent(x, y, ch, style)
		x++
	}
	for ; x < width; x++ {
		s.SetContent(x, y, ' ', tcell.StyleDefault)
	}
}

// Fill paints the board area with the background color and forgets grid lines.
func (s *Screen) Fill(color tcell.Color) {
	s.background = color
	clear(s.lines)

	style := tcell.StyleDefault.Background(color)
	cols, rows := s.proj.Columns(), s.proj.Rows()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			s.SetContent(x, y, ' ', style)
		}
	}
}

// DrawLine draws a horizontal or vertical line with box-drawing runes.
// Diagonal lines are not needed by the board and are ignored.
func (s *Screen) DrawLine(from, to canvas.Point, color tcell.Color) {
	style := tcell.StyleDefault.Background(s.background).Foreground(color)

	switch {
	case from.X == to.X:
		col := s.proj.Column(from.X)
		r0, r1 := s.proj.Row(min(from.Y, to.Y)), s.proj.Row(max(from.Y, to.Y))
		for row := r0; row <= r1; row++ {
			s.markLine(col, row, lineVertical, style)
		}
	case from.Y == to.Y:
		row := s.proj.Row(from.Y)
		c0, c1 := s.proj.Column(min(from.X, to.X)), s.proj.Column(max(from.X, to.X))
		for col := c0; col <= c1; col++ {
			s.markLine(col, row, lineHorizontal, style)
		}
	}
}

func (s *Screen) markLine(col, row int, mark uint8, style tcell.Style) {
	if !s.proj.InBounds(col, row) {
		return
	}
	key := [2]int{col, row}
	s.lines[key] |= mark
	s.SetContent(col, row, lineRune(s.lines[key]), style)
}

func lineRune(mark uint8) rune {
	switch mark {
	case lineVertical:
		return '│'
	case lineHorizontal:
		return '─'
	default:
		return '┼'
	}
}

// DrawFilledRect paints every terminal cell the rectangle touches.
func (s *Screen) DrawFilledRect(pos canvas.Point, w, h int, color tcell.Color) {
	c0, c1, r0, r1 := s.proj.Span(pos, w, h)
	style := tcell.StyleDefault.Background(color)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			if s.proj.InBounds(col, row) {
				s.SetContent(col, row, ' ', style)
			}
		}
	}
}

// Present flushes the frame to the terminal.
func (s *Screen) Present() {
	s.Show()
}
