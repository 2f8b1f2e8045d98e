package ui

import "github.com/gdamore/tcell/v2"

// Keys is the directional and quit state collected since the last poll.
type Keys struct {
	Up, Down, Left, Right bool
	Quit                  bool
}

// Keyboard turns queued terminal events into per-tick key state.
type Keyboard struct {
	events   <-chan tcell.Event
	onResize func()
}

// NewKeyboard creates a keyboard reading from the given event channel.
// onResize, if not nil, is called for every resize event.
func NewKeyboard(events <-chan tcell.Event, onResize func()) *Keyboard {
	return &Keyboard{events: events, onResize: onResize}
}

// Poll drains all pending events without blocking.
// A closed event channel is reported as a quit.
func (k *Keyboard) Poll() Keys {
	var keys Keys
	for {
		select {
		case ev, ok := <-k.events:
			if !ok {
				keys.Quit = true
				return keys
			}
			k.handle(ev, &keys)
		default:
			return keys
		}
	}
}

func (k *Keyboard) handle(ev tcell.Event, keys *Keys) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		handleKey(ev, keys)
	case *tcell.EventResize:
		if k.onResize != nil {
			k.onResize()
		}
	}
}

func handleKey(ev *tcell.EventKey, keys *Keys) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		keys.Quit = true
	case tcell.KeyUp:
		keys.Up = true
	case tcell.KeyDown:
		keys.Down = true
	case tcell.KeyLeft:
		keys.Left = true
	case tcell.KeyRight:
		keys.Right = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			keys.Quit = true
		case 'w', 'W':
			keys.Up = true
		case 's', 'S':
			keys.Down = true
		case 'a', 'A':
			keys.Left = true
		case 'd', 'D':
			keys.Right = true
		}
	}
}
