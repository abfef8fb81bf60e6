package sim

// updateDirections is the fixed order sub-phases iterate world directions
// in: Right, Left, Up, Down. This ordering (not Right,Down,Left,Up) is
// load-bearing for idempotence within a tick.
var updateDirections = [4]Direction{Right, Left, Up, Down}

// forEachDir visits every occupied cell for one directional sub-phase scan.
// For dir in {Right, Up} the grid is walked from the highest index down in
// both axes, so a cell furthest along dir acts before the ones behind it
// (a mover facing Right never blocks itself on the mover ahead of it).
// For dir in {Left, Down} the grid is walked low to high.
func forEachDir(g *Grid, dir Direction, f func(x, y int, cell *Cell)) {
	if dir == Right || dir == Up {
		for y := g.Height - 1; y >= 0; y-- {
			for x := g.Width - 1; x >= 0; x-- {
				if cell := g.Get(x, y); cell != nil {
					f(x, y, cell)
				}
			}
		}
		return
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if cell := g.Get(x, y); cell != nil {
				f(x, y, cell)
			}
		}
	}
}

type subPhase struct {
	triggers []CellID
	run      func(g *Grid)
}

// subPhases is the mandatory, fixed sub-phase order from which tick builds
// its per-call schedule. A sub-phase only runs if present intersects its
// triggers.
var subPhases = []subPhase{
	{[]CellID{Mirror}, doMirrors},
	{[]CellID{CrossMirror}, doCrossMirrors},
	{[]CellID{Tunnel}, doTunnels},
	{[]CellID{FixedPullsher}, doFixedPullshers},
	{[]CellID{Sucker}, doSuckers},
	{[]CellID{Generator}, doGenerators},
	{[]CellID{GeneratorCW, GeneratorCCW}, doAngledGenerators},
	{[]CellID{PhysicalGenerator}, doPhysicalGenerators},
	{[]CellID{GeneratorCross}, doCrossGenerators},
	{[]CellID{Replicator}, doReplicators},
	{[]CellID{PostOffice}, doPostOffices},
	{[]CellID{RotatorCW, RotatorCCW, Rotator180}, doRotators},
	{[]CellID{Orientator}, doOrientators},
	{[]CellID{Stone}, doStones},
	{[]CellID{Mailbox}, doMailboxes},
	{[]CellID{Pullsher}, doPullshers},
	{[]CellID{TrashPuller}, doTrashPullers},
	{[]CellID{Puller}, doPullers},
	{[]CellID{TrashMover}, doTrashMovers},
	{[]CellID{Mover}, doMovers},
	{[]CellID{Speed}, doSpeeds},
}

// Tick advances g by one step: it resets every cell's Updated flag,
// collects the set of present type ids, then runs each sub-phase whose
// triggering ids are present, in the fixed order above. It increments
// g.TickCount.
func Tick(g *Grid) {
	g.ResetUpdated()
	present := g.PresentIDs()

	for _, phase := range subPhases {
		triggered := false
		for _, id := range phase.triggers {
			if _, ok := present[id]; ok {
				triggered = true
				break
			}
		}
		if triggered {
			phase.run(g)
		}
	}

	g.TickCount++
}

func doMirrors(g *Grid) {
	g.ForEach(func(x, y int, cell *Cell) {
		if cell == nil || cell.ID != Mirror || cell.Updated || cell.Direction.Shrink(2) != Right {
			return
		}
		cell.Updated = true
		left := g.Take(x-1, y)
		right := g.Take(x+1, y)
		if (left != nil && !CanMove(*left, Right, ForceSwap)) || (right != nil && !CanMove(*right, Left, ForceSwap)) {
			g.SetCell(x-1, y, left)
			g.SetCell(x+1, y, right)
			return
		}
		g.SetCell(x-1, y, right)
		g.SetCell(x+1, y, left)
	})
	g.ForEach(func(x, y int, cell *Cell) {
		if cell == nil || cell.ID != Mirror || cell.Updated || cell.Direction.Shrink(2) != Down {
			return
		}
		cell.Updated = true
		up := g.Take(x, y+1)
		down := g.Take(x, y-1)
		if (up != nil && !CanMove(*up, Down, ForceSwap)) || (down != nil && !CanMove(*down, Up, ForceSwap)) {
			g.SetCell(x, y+1, up)
			g.SetCell(x, y-1, down)
			return
		}
		g.SetCell(x, y+1, down)
		g.SetCell(x, y-1, up)
	})
}

func doCrossMirrors(g *Grid) {
	g.ForEach(func(x, y int, cell *Cell) {
		if cell == nil || cell.ID != CrossMirror || cell.Updated {
			return
		}
		cell.Updated = true

		left := g.Take(x-1, y)
		right := g.Take(x+1, y)
		leftOK := left == nil || CanMove(*left, Right, ForceSwap)
		rightOK := right == nil || CanMove(*right, Left, ForceSwap)
		if leftOK && rightOK {
			g.SetCell(x-1, y, right)
			g.SetCell(x+1, y, left)
		} else {
			g.SetCell(x-1, y, left)
			g.SetCell(x+1, y, right)
		}

		up := g.Take(x, y+1)
		down := g.Take(x, y-1)
		upOK := up == nil || CanMove(*up, Down, ForceSwap)
		downOK := down == nil || CanMove(*down, Up, ForceSwap)
		if upOK && downOK {
			g.SetCell(x, y+1, down)
			g.SetCell(x, y-1, up)
		} else {
			g.SetCell(x, y+1, up)
			g.SetCell(x, y-1, down)
		}
	})
}

func doTunnels(g *Grid) {
	for _, dir := range updateDirections {
		dx, dy := dir.Vector()
		bx, by := dir.Flip().Vector()
		forEachDir(g, dir, func(x, y int, cell *Cell) {
			if cell.ID != Tunnel || cell.Direction != dir || cell.Updated {
				return
			}
			cell.Updated = true
			behind := g.Get(x+bx, y+by)
			if behind == nil || !CanMove(*behind, dir, ForcePush) {
				return
			}
			copied := behind.Copy()
			if Push(g, x+dx, y+dy, dir, 1, &copied, true).DidMove() {
				g.Delete(x+bx, y+by)
			}
		})
	}
}

func doFixedPullshers(g *Grid) {
	for _, dir := range updateDirections {
		dx, dy := dir.Vector()
		bx, by := dir.Flip().Vector()
		forEachDir(g, dir, func(x, y int, cell *Cell) {
			if cell.ID != FixedPullsher || cell.Direction != dir || cell.Updated {
				return
			}
			cell.Updated = true
			behind := g.Get(x+bx, y+by)
			if behind == nil || !CanMove(*behind, dir, ForcePush) || IsTrash(*behind, dir.Flip()) {
				return
			}
			copied := behind.Copy()
			if Push(g, x+dx, y+dy, dir, 1, &copied, true).DidMove() {
				g.Delete(x+bx, y+by)
				Pull(g, x+bx*2, y+by*2, dir)
			}
		})
	}
}

func doSuckers(g *Grid) {
	for _, dir := range updateDirections {
		dx, dy := dir.Vector()
		forEachDir(g, dir, func(x, y int, cell *Cell) {
			if cell.ID != Sucker || cell.Direction != dir || cell.Updated {
				return
			}
			cell.Updated = true
			Pull(g, x+dx, y+dy, dir.Flip())
		})
	}
}

func doGenerators(g *Grid) {
	for _, dir := range updateDirections {
		dx, dy := dir.Vector()
		bx, by := dir.Flip().Vector()
		forEachDir(g, dir, func(x, y int, cell *Cell) {
			if cell.ID != Generator || cell.Direction != dir || cell.Updated {
				return
			}
			cell.Updated = true
			behind := g.Get(x+bx, y+by)
			if behind == nil || !CanGenerate(*behind) {
				return
			}
			copied := behind.Copy()
			Push(g, x+dx, y+dy, dir, 1, &copied, false)
		})
	}
}

func doAngledGenerators(g *Grid) {
	for _, dir := range updateDirections {
		bx, by := dir.Flip().Vector()
		forEachDir(g, dir, func(x, y int, cell *Cell) {
			if cell.Updated {
				return
			}
			switch {
			case cell.ID == GeneratorCW && cell.Direction == dir:
				cell.Updated = true
				behind := g.Get(x+bx, y+by)
				if behind == nil || !CanGenerate(*behind) {
					return
				}
				copied := behind.Copy()
				copied.Direction = copied.Direction.RotateRight()
				pd := dir.RotateRight()
				pdx, pdy := pd.Vector()
				Push(g, x+pdx, y+pdy, pd, 1, &copied, false)
			case cell.ID == GeneratorCCW && cell.Direction == dir:
				cell.Updated = true
				behind := g.Get(x+bx, y+by)
				if behind == nil || !CanGenerate(*behind) {
					return
				}
				copied := behind.Copy()
				copied.Direction = copied.Direction.RotateLeft()
				pd := dir.RotateLeft()
				pdx, pdy := pd.Vector()
				Push(g, x+pdx, y+pdy, pd, 1, &copied, false)
			}
		})
	}
}

func doPhysicalGenerators(g *Grid) {
	for _, dir := range updateDirections {
		dx, dy := dir.Vector()
		bx, by := dir.Flip().Vector()
		forEachDir(g, dir, func(x, y int, cell *Cell) {
			if cell.ID != PhysicalGenerator || cell.Direction != dir || cell.Updated {
				return
			}
			cell.Updated = true
			behind := g.Get(x+bx, y+by)
			if behind == nil || !CanGenerate(*behind) {
				return
			}
			copied := behind.Copy()
			if !Push(g, x+dx, y+dy, dir, 1, &copied, false).DidMove() {
				recoil := behind.Copy()
				Push(g, x, y, dir.Flip(), 1, &recoil, false)
			}
		})
	}
}

func doCrossGenerators(g *Grid) {
	for _, dir := range updateDirections {
		dx1, dy1 := dir.Vector()
		bx1, by1 := dir.Flip().Vector()
		leftDir := dir.RotateLeft()
		dx2, dy2 := leftDir.Vector()
		bx2, by2 := dir.RotateRight().Vector()
		forEachDir(g, dir, func(x, y int, cell *Cell) {
			if cell.ID != GeneratorCross || cell.Direction != dir || cell.Updated {
				return
			}
			cell.Updated = true
			if behind := g.Get(x+bx1, y+by1); behind != nil && CanGenerate(*behind) {
				copied := behind.Copy()
				Push(g, x+dx1, y+dy1, dir, 1, &copied, false)
			}
			if behind := g.Get(x+bx2, y+by2); behind != nil && CanGenerate(*behind) {
				copied := behind.Copy()
				Push(g, x+dx2, y+dy2, leftDir, 1, &copied, false)
			}
		})
	}
}

func doReplicators(g *Grid) {
	for _, dir := range updateDirections {
		dx, dy := dir.Vector()
		forEachDir(g, dir, func(x, y int, cell *Cell) {
			if cell.ID != Replicator || cell.Direction != dir || cell.Updated {
				return
			}
			cell.Updated = true
			ahead := g.Get(x+dx, y+dy)
			if ahead == nil || !CanGenerate(*ahead) {
				return
			}
			copied := ahead.Copy()
			Push(g, x+dx, y+dy, dir, 1, &copied, false)
		})
	}
}

func doPostOffices(g *Grid) {
	for _, dir := range updateDirections {
		mx, my := dir.Vector()
		bx, by := dir.Flip().Vector()
		forEachDir(g, dir, func(x, y int, cell *Cell) {
			if cell.ID != PostOffice || cell.Direction != dir || cell.Updated {
				return
			}
			cell.Updated = true
			mailbox := g.Get(x+mx, y+my)
			if mailbox == nil || mailbox.ID != Mailbox {
				return
			}
			mail := g.Get(x+bx, y+by)
			if mail == nil || !CanMove(*mail, dir, ForcePull) {
				return
			}
			mailbox.Contained = &ContainedCell{ID: mail.ID, Direction: mail.Direction.Sub(dir)}
			g.Delete(x+bx, y+by)
		})
	}
}

func doRotators(g *Grid) {
	g.ForEach(func(x, y int, cell *Cell) {
		if cell == nil || cell.Updated {
			return
		}
		switch cell.ID {
		case RotatorCW:
			cell.Updated = true
			RotateBy(g, x+1, y, Down, Left)
			RotateBy(g, x, y-1, Down, Up)
			RotateBy(g, x-1, y, Down, Right)
			RotateBy(g, x, y+1, Down, Down)
		case RotatorCCW:
			cell.Updated = true
			RotateBy(g, x+1, y, Up, Left)
			RotateBy(g, x, y-1, Up, Up)
			RotateBy(g, x-1, y, Up, Right)
			RotateBy(g, x, y+1, Up, Down)
		case Rotator180:
			cell.Updated = true
			RotateBy(g, x+1, y, Left, Left)
			RotateBy(g, x, y-1, Left, Up)
			RotateBy(g, x-1, y, Left, Right)
			RotateBy(g, x, y+1, Left, Down)
		}
	})
}

func doOrientators(g *Grid) {
	g.ForEach(func(x, y int, cell *Cell) {
		if cell == nil || cell.ID != Orientator || cell.Updated {
			return
		}
		cell.Updated = true
		RotateTo(g, x+1, y, cell.Direction, Left)
		RotateTo(g, x, y-1, cell.Direction, Up)
		RotateTo(g, x-1, y, cell.Direction, Right)
		RotateTo(g, x, y+1, cell.Direction, Down)
	})
}

func doStones(g *Grid) {
	for _, dir := range updateDirections {
		forEachDir(g, dir, func(x, y int, cell *Cell) {
			if cell.ID != Stone || cell.Direction != dir || cell.Updated {
				return
			}
			cell.Updated = true
			down := dir.RotateRight()
			if Push(g, x, y, down, 1, nil, false).DidMove() {
				return
			}
			stoneFall(g, x, y, dir, down)
		})
	}
}

// stoneFall implements the diagonal-settle decision for a stone that could
// not drop straight down this tick: it moves the stone one square sideways
// and then pushes it down from there, preferring the right side (along
// dir) over the left.
func stoneFall(g *Grid, x, y int, dir, down Direction) {
	rx, ry := dir.Vector()
	lx, ly := dir.Flip().Vector()
	ddx, ddy := down.Vector()

	cellRight := g.Get(x+rx, y+ry)
	cellLeft := g.Get(x+lx, y+ly)

	canMoveRight := g.inBounds(x+rx+ddx, y+ry+ddy) && g.Get(x+rx+ddx, y+ry+ddy) == nil
	canMoveLeft := g.inBounds(x+lx+ddx, y+ly+ddy) && g.Get(x+lx+ddx, y+ly+ddy) == nil
	if !canMoveRight && !canMoveLeft {
		return
	}

	var preferred Direction
	havePreferred := false

	switch {
	case cellRight == nil && canMoveRight:
		if cellLeft != nil && canMoveLeft {
			preferred, havePreferred = dir, true
		}
	case cellLeft == nil:
		if canMoveLeft {
			preferred, havePreferred = dir.Flip(), true
		} else {
			return
		}
	default:
		// Reaching here means cellLeft is always non-nil (the first two
		// cases exhaust every way to get here with cellLeft == nil).
		if (IsTrash(*cellLeft, dir.Flip()) || !CanMove(*cellLeft, dir.Flip(), ForcePush)) && canMoveRight {
			preferred, havePreferred = dir, true
		}
	}

	switch {
	case havePreferred:
		ox, oy := preferred.Vector()
		if Push(g, x, y, preferred, 1, nil, false).DidMoveSurvive() {
			Push(g, x+ox, y+oy, down, 1, nil, false)
		}
	case canMoveLeft && !canMoveRight:
		if Push(g, x, y, dir.Flip(), 1, nil, false).DidMoveSurvive() {
			Push(g, x+lx, y+ly, down, 1, nil, false)
		}
	default:
		if Push(g, x, y, dir, 1, nil, false).DidMoveSurvive() {
			Push(g, x+rx, y+ry, down, 1, nil, false)
		}
	}
}

func doMailboxes(g *Grid) {
	for _, dir := range updateDirections {
		forEachDir(g, dir, func(x, y int, cell *Cell) {
			if cell.ID != Mailbox || cell.Direction != dir || cell.Updated {
				return
			}
			cell.Updated = true
			contained := cell.Contained
			if contained == nil {
				return
			}
			if !Push(g, x, y, dir, 1, nil, false).DidMove() {
				g.Set(x, y, NewCell(contained.ID, dir.Add(int(contained.Direction))))
			}
		})
	}
}

func doPullshers(g *Grid) {
	for _, dir := range updateDirections {
		dx, dy := dir.Vector()
		forEachDir(g, dir, func(x, y int, cell *Cell) {
			if cell.ID != Pullsher || cell.Direction != dir || cell.Updated {
				return
			}
			cell.Updated = true
			if Push(g, x, y, dir, 1, nil, true).DidMove() {
				Pull(g, x-dx, y-dy, dir)
			}
		})
	}
}

func doTrashPullers(g *Grid) {
	for _, dir := range updateDirections {
		bx, by := dir.Flip().Vector()
		forEachDir(g, dir, func(x, y int, cell *Cell) {
			if cell.ID != TrashPuller || cell.Direction != dir || cell.Updated {
				return
			}
			cell.Updated = true
			pushed := g.Get(x+bx, y+by)
			if pushed == nil || !CanMove(*pushed, dir, ForcePull) || IsTrash(*pushed, dir) {
				return
			}
			g.Delete(x+bx, y+by)
			if g.inBounds(x-bx, y-by) && g.Get(x-bx, y-by) == nil {
				Pull(g, x, y, dir)
			}
		})
	}
}

func doPullers(g *Grid) {
	for _, dir := range updateDirections {
		dx, dy := dir.Vector()
		forEachDir(g, dir, func(x, y int, cell *Cell) {
			if cell.ID != Puller || cell.Direction != dir || cell.Updated {
				return
			}
			cell.Updated = true
			if g.inBounds(x+dx, y+dy) && g.Get(x+dx, y+dy) == nil {
				Pull(g, x, y, dir)
			}
		})
	}
}

func doTrashMovers(g *Grid) {
	for _, dir := range updateDirections {
		dx, dy := dir.Vector()
		forEachDir(g, dir, func(x, y int, cell *Cell) {
			if cell.ID != TrashMover || cell.Direction != dir || cell.Updated {
				return
			}
			cell.Updated = true
			ahead := g.Get(x+dx, y+dy)
			if ahead != nil {
				if !CanMove(*ahead, dir, ForcePush) || IsTrash(*ahead, dir) {
					return
				}
			}
			g.Delete(x+dx, y+dy)
			Push(g, x, y, dir, 0, nil, true)
		})
	}
}

func doMovers(g *Grid) {
	for _, dir := range updateDirections {
		forEachDir(g, dir, func(x, y int, cell *Cell) {
			if cell.ID != Mover || cell.Direction != dir || cell.Updated {
				return
			}
			cell.Updated = true
			Push(g, x, y, dir, 0, nil, true)
		})
	}
}

func doSpeeds(g *Grid) {
	for _, dir := range updateDirections {
		dx, dy := dir.Vector()
		forEachDir(g, dir, func(x, y int, cell *Cell) {
			if cell.ID != Speed || cell.Direction != dir || cell.Updated {
				return
			}
			cell.Updated = true
			if g.Get(x+dx, y+dy) == nil {
				Push(g, x, y, dir, 0, nil, true)
			}
		})
	}
}
