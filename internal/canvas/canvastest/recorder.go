// Package canvastest provides a recording canvas.Surface for headless tests.
package canvastest

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snake/internal/canvas"
)

var _ canvas.Surface = (*Recorder)(nil)

// Op is a single call recorded by a Recorder.
type Op struct {
	Kind  string // "fill", "line", "rect" or "present"
	From  canvas.Point
	To    canvas.Point
	W, H  int
	Color tcell.Color
}

// Recorder is a canvas.Surface that remembers every call.
type Recorder struct {
	Ops []Op
}

// Fill records a background fill.
func (r *Recorder) Fill(color tcell.Color) {
	r.Ops = append(r.Ops, Op{Kind: "fill", Color: color})
}

// DrawLine records a line.
func (r *Recorder) DrawLine(from, to canvas.Point, color tcell.Color) {
	r.Ops = append(r.Ops, Op{Kind: "line", From: from, To: to, Color: color})
}

// DrawFilledRect records a filled rectangle.
func (r *Recorder) DrawFilledRect(pos canvas.Point, w, h int, color tcell.Color) {
	r.Ops = append(r.Ops, Op{Kind: "rect", From: pos, W: w, H: h, Color: color})
}

// Present records a frame boundary.
func (r *Recorder) Present() {
	r.Ops = append(r.Ops, Op{Kind: "present"})
}

// Count returns how many recorded calls have the given kind.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset discards all recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
