package sim

// Force classifies the kind of motion being attempted on a cell: a push
// along the direction of travel, a pull (the cell being drawn backward),
// or a swap (Mirror/CrossMirror trading neighbours).
type Force int

const (
	ForcePush Force = iota
	ForcePull
	ForceSwap
)

// PushResult is the outcome of a Push call.
type PushResult int

const (
	// NotMoved: the push was blocked; nothing in the chain changed.
	NotMoved PushResult = iota
	// Moved: at least one cell's position changed.
	Moved
	// Trashed: the chain was consumed by a trash or enemy cell.
	Trashed
)

// DidMove reports whether the chain changed at all (moved or trashed).
func (r PushResult) DidMove() bool { return r == Moved || r == Trashed }

// DidMoveSurvive reports whether the chain moved without being consumed.
func (r PushResult) DidMoveSurvive() bool { return r == Moved }

func isPusherClass(id CellID) bool {
	switch id {
	case Mover, Puller, Pullsher, TrashMover, Speed, Movler:
		return true
	default:
		return false
	}
}

// CanMove reports whether cell yields to a motion of the given force
// heading in dir. It depends only on (cell.ID, cell.Direction, dir, force).
func CanMove(cell Cell, dir Direction, force Force) bool {
	switch cell.ID {
	case Wall, Ghost:
		return false
	case Slide, SlideWall:
		return dir.Shrink(2) == cell.Direction.Shrink(2)
	case OneDir:
		return dir == cell.Direction
	case Mirror:
		if force == ForceSwap && dir.Shrink(2) == cell.Direction.Shrink(2) {
			return false
		}
		return true
	case CrossMirror:
		return force != ForceSwap
	default:
		return true
	}
}

// IsTrash reports whether cell consumes anything arriving from dir.
func IsTrash(cell Cell, dir Direction) bool {
	switch cell.ID {
	case Trash, Enemy:
		return true
	case TrashMover:
		return cell.Direction == dir.Flip()
	case TrashPuller:
		return cell.Direction == dir
	case Sucker:
		return cell.Direction == dir.Flip()
	default:
		return false
	}
}

// CanGenerate reports whether cell may be copied by a generator-class cell.
func CanGenerate(cell Cell) bool {
	return cell.ID != Ghost
}

// CanRotate reports whether cell may be rotated by a rotator approaching
// from side.
func CanRotate(cell Cell, side Direction) bool {
	switch cell.ID {
	case Wall, Ghost, Orientator:
		return false
	case SlideWall:
		return cell.Direction.Sub(side).Shrink(2) != Down
	default:
		return true
	}
}

// Push runs the two-phase push cascade starting at (x, y) heading in dir.
// force is the initial push strength before the cells encountered along the
// way adjust it. replacement, if non-nil, is written into (x, y) as the
// chain shifts forward (nil leaves (x, y) empty); setUpdated raises the
// Updated flag of every carried cell, the replacement included, that is a
// pusher-class cell facing dir.
func Push(g *Grid, x, y int, dir Direction, force int, replacement *Cell, setUpdated bool) PushResult {
	dx, dy := dir.Vector()

	// Scan phase: find where the chain terminates.
	tx, ty := x, y
	for {
		if !g.inBounds(tx, ty) {
			return NotMoved
		}
		cell := g.Get(tx, ty)
		if cell == nil {
			break
		}
		if isPusherClass(cell.ID) {
			if cell.Direction == dir {
				force++
			} else if cell.Direction == dir.Flip() {
				force--
			}
		}
		if IsTrash(*cell, dir) {
			break
		}
		if !CanMove(*cell, dir, ForcePush) {
			return NotMoved
		}
		ntx, nty := tx+dx, ty+dy
		if ntx == x && nty == y {
			// Returned to the start: treat as a terminated loop-push.
			break
		}
		tx, ty = ntx, nty
		if force == 0 {
			return NotMoved
		}
	}
	termX, termY := tx, ty

	// Mutate phase: shift the chain forward one cell at a time, carrying
	// the replacement (or whatever was displaced) ahead of it.
	var next *Cell
	if replacement != nil {
		c := *replacement
		next = &c
	}
	px, py := x, y
	for {
		if next != nil && isPusherClass(next.ID) && next.Direction == dir && setUpdated {
			next.Updated = true
		}

		cur := g.Get(px, py)
		if cur != nil && cur.ID == Enemy {
			g.Delete(px, py)
			return Trashed
		}
		if cur != nil && IsTrash(*cur, dir) {
			if px == x && py == y {
				return Trashed
			}
			return Moved
		}

		old := g.Take(px, py)
		g.SetCell(px, py, next)
		next = old

		if px == termX && py == termY {
			return Moved
		}
		px, py = px+dx, py+dy
	}
}

// Pull cascades the chain of cells starting at (x, y) one step in dir: the
// cell at (x, y) moves into (x+dx, y+dy), the cell behind it moves into
// (x, y), and so on backward, stopping at the first gap, trash, unmovable
// cell, or force-exhausted link. Callers are expected to have already
// established that (x+dx, y+dy) is a valid destination (empty, or a
// trash/enemy cell willing to consume the incoming chain).
func Pull(g *Grid, x, y int, dir Direction) {
	dx, dy := dir.Vector()
	cx, cy := x, y
	force := 1

	for {
		cell := g.Get(cx, cy)
		if cell == nil {
			return
		}
		if isPusherClass(cell.ID) {
			if cell.Direction == dir {
				cell.Updated = true
				force++
			} else if cell.Direction == dir.Flip() {
				force--
			}
		}
		if IsTrash(*cell, dir.Flip()) || force == 0 || !CanMove(*cell, dir, ForcePull) {
			return
		}

		destX, destY := cx+dx, cy+dy
		dest := g.Get(destX, destY)
		switch {
		case dest != nil && dest.ID == Enemy:
			g.Delete(destX, destY)
			g.Delete(cx, cy)
		case dest != nil && IsTrash(*dest, dir):
			g.Delete(cx, cy)
		default:
			moved := g.Take(cx, cy)
			g.SetCell(destX, destY, moved)
		}

		cx, cy = cx-dx, cy-dy
	}
}

// RotateBy rotates the cell at (x, y) by delta quarter turns, if
// can_rotate(cell, side) allows it. side is the direction from which the
// rotation is being applied (used by SlideWall's fixed-axis guard).
func RotateBy(g *Grid, x, y int, delta Direction, side Direction) bool {
	cell := g.GetMut(x, y)
	if cell == nil || !CanRotate(*cell, side) {
		return false
	}
	cell.Direction = cell.Direction.Add(int(delta))
	return true
}

// RotateTo sets the cell at (x, y) to face absolute, if can_rotate allows.
func RotateTo(g *Grid, x, y int, absolute Direction, side Direction) bool {
	cell := g.GetMut(x, y)
	if cell == nil || !CanRotate(*cell, side) {
		return false
	}
	cell.Direction = absolute
	return true
}
