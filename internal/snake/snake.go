// Package snake holds the mutable game state: the snake, its food and the
// per-tick movement and collision rules.
package snake

import (
	"errors"
	"fmt"

	"github.com/samdwyer/snake/internal/canvas"
	"github.com/samdwyer/snake/internal/gamedata"
	"github.com/samdwyer/snake/internal/grid"
)

const (
	// Default starting head position
	DefaultStartX = 10
	DefaultStartY = 10

	initialLength = 3
)

// initialFood is where the first food appears, before any random placement.
var initialFood = grid.Cell{X: 15, Y: 15}

// ErrInvalidSnake is returned for construction parameters that leave the grid undefined.
var ErrInvalidSnake = errors.New("invalid snake")

// Random is the source used to place food. *math/rand.Rand satisfies it.
type Random interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// Snake is the single stateful game object.
type Snake struct {
	gridSize int
	head     grid.Cell
	body     []grid.Cell // index 0 is nearest the head
	dir      Direction // requested for the next tick
	heading  Direction // used by the last tick
	food     grid.Cell
	rng      Random
}

// New creates a snake with its head at start heading right, three body
// segments trailing to the left, and food at its fixed starting cell.
func New(gridSize int, start grid.Cell, rng Random) (*Snake, error) {
	if gridSize <= 0 {
		return nil, fmt.Errorf("%w: grid size must be positive, got %d", ErrInvalidSnake, gridSize)
	}
	if !start.Within(gridSize) {
		return nil, fmt.Errorf("%w: start %v outside %dx%d grid", ErrInvalidSnake, start, gridSize, gridSize)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidSnake)
	}

	body := make([]grid.Cell, 0, initialLength)
	for i := 1; i <= initialLength; i++ {
		body = append(body, start.Offset(-i, 0).Wrap(gridSize))
	}

	return &Snake{
		gridSize: gridSize,
		head:     start,
		body:     body,
		dir:      Right,
		heading:  Right,
		food:     initialFood.Wrap(gridSize),
		rng:      rng,
	}, nil
}

// SetDirection turns the snake unless dir would reverse the heading of the
// last tick, which would put the head onto its own neck. Several turns may be
// requested between ticks; each is checked against that same heading.
// A rejected turn is silently ignored.
func (s *Snake) SetDirection(dir Direction) {
	if dir == s.heading.Opposite() {
		return
	}
	s.dir = dir
}

// Tick advances the game by one step and reports whether food was eaten.
// Order matters: eat, shift the body into the old head position, move the
// head, then wrap it onto the grid.
func (s *Snake) Tick() bool {
	ate := false
	if s.head == s.food {
		s.Eat()
		ate = true
	}

	for i := len(s.body) - 1; i > 0; i-- {
		s.body[i] = s.body[i-1]
	}
	if len(s.body) > 0 {
		s.body[0] = s.head
	}

	v := s.dir.Velocity()
	s.head = s.head.Offset(v.X, v.Y)
	s.head = s.wrap(s.head)
	s.heading = s.dir

	return ate
}

// wrap folds a coordinate that left the grid by one step back to the far side.
func (s *Snake) wrap(c grid.Cell) grid.Cell {
	last := s.gridSize - 1
	if c.X > last {
		c.X = 0
	}
	if c.X < 0 {
		c.X = last
	}
	if c.Y > last {
		c.Y = 0
	}
	if c.Y < 0 {
		c.Y = last
	}
	return c
}

// Eat relocates the food to a random cell and grows the snake by one segment.
// The new segment starts on the tail and takes its real place on the next shift.
// Food may land on the body.
func (s *Snake) Eat() {
	s.food = grid.Cell{X: s.rng.Intn(s.gridSize), Y: s.rng.Intn(s.gridSize)}

	tail := s.head
	if len(s.body) > 0 {
		tail = s.body[len(s.body)-1]
	}
	s.body = append(s.body, tail)
}

// CheckCollision returns true if the head shares a cell with any body segment.
func (s *Snake) CheckCollision() bool {
	for _, segment := range s.body {
		if segment == s.head {
			return true
		}
	}
	return false
}

// Render draws the food, the head and then every body segment.
func (s *Snake) Render(surface canvas.Surface, pixelSize int, palette gamedata.Palette) {
	canvas.DrawSquare(surface, s.food, pixelSize, palette.Food)
	canvas.DrawSquare(surface, s.head, pixelSize, palette.Head)
	for _, segment := range s.body {
		canvas.DrawSquare(surface, segment, pixelSize, palette.Body)
	}
}

// Length returns the number of body segments.
func (s *Snake) Length() int {
	return len(s.body)
}

// Head returns the head position.
func (s *Snake) Head() grid.Cell {
	return s.head
}

// Body returns a copy of the body segments, nearest the head first.
func (s *Snake) Body() []grid.Cell {
	body := make([]grid.Cell, len(s.body))
	copy(body, s.body)
	return body
}

// Food returns the food position.
func (s *Snake) Food() grid.Cell {
	return s.food
}

// Velocity returns the current per-tick step.
func (s *Snake) Velocity() Velocity {
	return s.dir.Velocity()
}
