// Package sim implements the push/pull cell-machine simulation core: a
// bounded grid of typed, directional cells, the per-tick scheduler that
// advances them, and the wire codecs used to serialize grids to and from
// text.
package sim

// Direction is one of the four cardinal headings a cell can face.
// Numeric values carry meaning: adding/subtracting is rotation by quarter
// turns modulo 4.
type Direction uint8

const (
	Right Direction = iota
	Down
	Left
	Up
)

func (d Direction) String() string {
	switch d {
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Up:
		return "Up"
	default:
		return "Direction(?)"
	}
}

// NewDirection reduces an arbitrary integer to a valid Direction modulo 4.
func NewDirection(i int) Direction {
	return Direction(((i % 4) + 4) % 4)
}

// Add rotates d by delta quarter turns; a positive delta steps along the
// Right->Down->Left->Up order (clockwise with Y pointing up).
func (d Direction) Add(delta int) Direction {
	return NewDirection(int(d) + delta)
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	return d.Add(2)
}

// Sub returns the quarter-turn difference from other to d.
func (d Direction) Sub(other Direction) Direction {
	return NewDirection(int(d) - int(other))
}

// RotateLeft rotates one quarter turn from Right towards Up (counter-clockwise
// in a Y-up coordinate system).
func (d Direction) RotateLeft() Direction {
	return d.Add(-1)
}

// RotateRight rotates one quarter turn the other way.
func (d Direction) RotateRight() Direction {
	return d.Add(1)
}

// Shrink reduces the direction into a symmetry class of the given radius
// (1, 2, or 4), used to test rotational-symmetry equivalence.
func (d Direction) Shrink(radius uint8) Direction {
	return Direction(uint8(d) % radius)
}

// Vector returns the unit displacement of this direction. The Y axis points
// up: Down subtracts from Y, Up adds to Y.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case Right:
		return 1, 0
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Up:
		return 0, 1
	default:
		return 0, 0
	}
}
