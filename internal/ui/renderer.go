package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Renderer draws the text around the board.
type Renderer struct {
	screen *Screen
	color  tcell.Color
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, color tcell.Color) *Renderer {
	return &Renderer{screen: screen, color: color}
}

// RenderStatus writes the status line directly below the board.
func (r *Renderer) RenderStatus(length int, over bool) {
	style := tcell.StyleDefault.Foreground(r.color)
	msg := fmt.Sprintf("Length: %d   arrows/wasd steer, q quits", length)
	if over {
		style = style.Bold(true)
		msg = fmt.Sprintf("GAME OVER   length %d", length)
	}
	r.RenderMessage(msg, r.screen.Projection().Rows(), style)
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int, style tcell.Style) {
	r.screen.DrawText(0, y, msg, style)
}

// FitsBoard reports whether the terminal can show the board and its status line.
func (r *Renderer) FitsBoard() bool {
	w, h := r.screen.Size()
	p := r.screen.Projection()
	return w >= p.Columns() && h > p.Rows()
}
