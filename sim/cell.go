package sim

// ContainedCell is the payload a Mailbox carries: an id and the direction
// it is stored relative to the mailbox's own facing.
type ContainedCell struct {
	ID        CellID
	Direction Direction
}

// Cell is a single occupant of a grid square.
type Cell struct {
	ID        CellID
	Direction Direction
	Updated   bool
	Contained *ContainedCell
}

// NewCell constructs a cell of the given type facing the given direction.
func NewCell(id CellID, dir Direction) Cell {
	return Cell{ID: id, Direction: dir}
}

// Copy returns a value copy of c with Updated reset to false, the way a
// generated or replicated cell starts life unmarked.
func (c Cell) Copy() Cell {
	c.Updated = false
	return c
}

// Equal reports whether c and other are the same cell, ignoring Updated.
func (c Cell) Equal(other Cell) bool {
	if c.ID != other.ID || c.Direction != other.Direction {
		return false
	}
	if (c.Contained == nil) != (other.Contained == nil) {
		return false
	}
	if c.Contained != nil && *c.Contained != *other.Contained {
		return false
	}
	return true
}

// LooksLike reports whether c and other are equal modulo the rotational
// symmetry class of their shared id.
func (c Cell) LooksLike(other Cell) bool {
	if c.ID != other.ID {
		return false
	}
	sides := Sides(c.ID)
	return c.Direction.Shrink(sides) == other.Direction.Shrink(sides)
}
