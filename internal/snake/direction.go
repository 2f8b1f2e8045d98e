package snake

// Direction is a requested heading from the player.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Velocity is a per-tick step in cells.
type Velocity struct {
	X, Y int
}

// Velocity returns the unit step for the direction.
func (d Direction) Velocity() Velocity {
	switch d {
	case Up:
		return Velocity{0, -1}
	case Down:
		return Velocity{0, 1}
	case Left:
		return Velocity{-1, 0}
	default:
		return Velocity{1, 0}
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
