// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateRunning is the normal tick/render loop.
	StateRunning State = iota
	// StateCollided means the head ran into the body. The game is over.
	StateCollided
	// StateQuit means the player left before colliding.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateCollided:
		return "collided"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}
