package sim

import "testing"

func cellAt(t *testing.T, g *Grid, x, y int) *Cell {
	t.Helper()
	return g.Get(x, y)
}

func wantEmpty(t *testing.T, g *Grid, x, y int) {
	t.Helper()
	if c := g.Get(x, y); c != nil {
		t.Errorf("(%d,%d): want empty, got %+v", x, y, *c)
	}
}

func wantCell(t *testing.T, g *Grid, x, y int, id CellID, dir Direction) {
	t.Helper()
	c := g.Get(x, y)
	if c == nil {
		t.Errorf("(%d,%d): want %v(%v), got empty", x, y, id, dir)
		return
	}
	if c.ID != id || c.Direction != dir {
		t.Errorf("(%d,%d): want %v(%v), got %v(%v)", x, y, id, dir, c.ID, c.Direction)
	}
}

func TestTickSingleMoverStepsRight(t *testing.T) {
	g := NewGrid(3, 1)
	g.Set(0, 0, NewCell(Mover, Right))

	Tick(g)

	wantEmpty(t, g, 0, 0)
	wantCell(t, g, 1, 0, Mover, Right)
	wantEmpty(t, g, 2, 0)
}

func TestTickMoverPushesPush(t *testing.T) {
	g := NewGrid(4, 1)
	g.Set(0, 0, NewCell(Mover, Right))
	g.Set(1, 0, NewCell(Push, Right))

	Tick(g)

	wantEmpty(t, g, 0, 0)
	wantCell(t, g, 1, 0, Mover, Right)
	wantCell(t, g, 2, 0, Push, Right)
	wantEmpty(t, g, 3, 0)
}

func TestTickOpposingMoversCancel(t *testing.T) {
	g := NewGrid(3, 1)
	g.Set(0, 0, NewCell(Mover, Right))
	g.Set(1, 0, NewCell(Push, Right))
	g.Set(2, 0, NewCell(Mover, Left))

	Tick(g)

	wantCell(t, g, 0, 0, Mover, Right)
	wantCell(t, g, 1, 0, Push, Right)
	wantCell(t, g, 2, 0, Mover, Left)
}

func TestTickMoverPushesIntoTrash(t *testing.T) {
	g := NewGrid(3, 1)
	g.Set(0, 0, NewCell(Mover, Right))
	g.Set(1, 0, NewCell(Push, Right))
	g.Set(2, 0, NewCell(Trash, Right))

	Tick(g)

	wantEmpty(t, g, 0, 0)
	wantCell(t, g, 1, 0, Mover, Right)
	wantCell(t, g, 2, 0, Trash, Right)
}

func TestTickGeneratorReproducesBehind(t *testing.T) {
	g := NewGrid(3, 1)
	g.Set(0, 0, NewCell(Push, Right))
	g.Set(1, 0, NewCell(Generator, Right))

	Tick(g)

	wantCell(t, g, 0, 0, Push, Right)
	wantCell(t, g, 1, 0, Generator, Right)
	wantCell(t, g, 2, 0, Push, Right)
}

func TestTickRotatorCWRotatesThenMoverActsSameTick(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, NewCell(RotatorCW, Right))
	g.Set(2, 1, NewCell(Mover, Right))

	Tick(g)

	wantEmpty(t, g, 2, 1)
	wantCell(t, g, 2, 0, Mover, Down)
}

func TestTickEmptyGridIsNoOp(t *testing.T) {
	g := NewGrid(5, 5)
	before := g.Clone()

	Tick(g)

	if !g.Equal(before) {
		t.Error("ticking an empty grid changed it")
	}
	if g.TickCount != 1 {
		t.Errorf("TickCount = %d, want 1", g.TickCount)
	}
}

func TestTickMoverFacingWallDoesNotMoveButIsMarkedUpdated(t *testing.T) {
	g := NewGrid(2, 1)
	g.Set(0, 0, NewCell(Mover, Right))
	g.Set(1, 0, NewCell(Wall, Right))

	Tick(g)

	wantCell(t, g, 0, 0, Mover, Right)
	c := cellAt(t, g, 0, 0)
	if !c.Updated {
		t.Error("a blocked Mover should still be marked updated")
	}
}

func TestTickMoverFacingEdgeDoesNotMove(t *testing.T) {
	g := NewGrid(1, 1)
	g.Set(0, 0, NewCell(Mover, Right))

	Tick(g)

	wantCell(t, g, 0, 0, Mover, Right)
}

func TestTickResetsUpdatedBetweenTicks(t *testing.T) {
	g := NewGrid(3, 1)
	g.Set(0, 0, NewCell(Mover, Right))

	Tick(g)
	if c := g.Get(1, 0); c == nil || !c.Updated {
		t.Fatal("mover should be updated after its own tick")
	}

	Tick(g)
	// After the second tick begins and completes, only cells acted on in
	// *that* tick carry updated == true; the mover moved again to (2,0).
	if c := g.Get(1, 0); c != nil {
		t.Fatal("mover should have left (1,0) on the second tick")
	}
	if c := g.Get(2, 0); c == nil || !c.Updated {
		t.Error("mover should be updated after acting in the second tick")
	}
}

func TestTickPreservesDimensionsAndNeverLeaksCells(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(0, 0, NewCell(Mover, Right))
	g.Set(1, 0, NewCell(Push, Right))
	before := countNonEmpty(g)

	Tick(g)

	if g.Width != 4 || g.Height != 4 {
		t.Fatalf("Tick changed dimensions to %dx%d", g.Width, g.Height)
	}
	if after := countNonEmpty(g); after > before {
		t.Errorf("non-empty cell count grew from %d to %d", before, after)
	}
}

func countNonEmpty(g *Grid) int {
	n := 0
	g.ForEach(func(x, y int, cell *Cell) {
		if cell != nil {
			n++
		}
	})
	return n
}
