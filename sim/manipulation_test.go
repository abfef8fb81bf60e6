package sim

import "testing"

func TestCanMoveIsPure(t *testing.T) {
	// can_move must depend only on (id, direction, dir, force), never on
	// grid position or any external state.
	cell := NewCell(Slide, Right)
	a := CanMove(cell, Right, ForcePush)
	b := CanMove(cell, Right, ForcePush)
	if a != b {
		t.Fatalf("CanMove is not stable across identical calls: %v vs %v", a, b)
	}
}

func TestCanMoveWallAndGhostNeverYield(t *testing.T) {
	for _, id := range []CellID{Wall, Ghost} {
		cell := NewCell(id, Right)
		for dir := Right; dir <= Up; dir++ {
			for _, f := range []Force{ForcePush, ForcePull, ForceSwap} {
				if CanMove(cell, dir, f) {
					t.Errorf("CanMove(%v, %v, %v) = true, want false", id, dir, f)
				}
			}
		}
	}
}

func TestCanMoveSlideOnlyOwnAxis(t *testing.T) {
	cell := NewCell(Slide, Right) // horizontal axis
	if !CanMove(cell, Left, ForcePush) {
		t.Error("Slide(Right) should yield to a push along its own axis (Left)")
	}
	if CanMove(cell, Up, ForcePush) {
		t.Error("Slide(Right) should not yield to a push across its axis (Up)")
	}
}

func TestCanMoveOneDirExactOnly(t *testing.T) {
	cell := NewCell(OneDir, Right)
	if !CanMove(cell, Right, ForcePush) {
		t.Error("OneDir(Right) should yield to a push in Right")
	}
	if CanMove(cell, Left, ForcePush) {
		t.Error("OneDir(Right) should not yield to a push in Left")
	}
}

func TestIsTrashTrashMover(t *testing.T) {
	cell := NewCell(TrashMover, Right)
	if !IsTrash(cell, Left) {
		t.Error("TrashMover(Right) should be trash when approached from its back face (Left)")
	}
	if IsTrash(cell, Right) {
		t.Error("TrashMover(Right) should not be trash when approached from Right")
	}
}

func TestCanGenerateExcludesGhostOnly(t *testing.T) {
	if CanGenerate(NewCell(Ghost, Right)) {
		t.Error("Ghost should not be generatable")
	}
	if !CanGenerate(NewCell(Push, Right)) {
		t.Error("Push should be generatable")
	}
}

func TestPushSimpleChain(t *testing.T) {
	g := NewGrid(3, 1)
	g.Set(0, 0, NewCell(Mover, Right))
	g.Set(1, 0, NewCell(Push, Right))

	result := Push(g, 1, 0, Right, 1, nil, false)
	if !result.DidMoveSurvive() {
		t.Fatalf("expected the Push cell to move, got %v", result)
	}
	if g.Get(1, 0) != nil {
		t.Error("(1,0) should be empty after the Push cell moved away")
	}
	if c := g.Get(2, 0); c == nil || c.ID != Push {
		t.Error("(2,0) should now hold the Push cell")
	}
}

func TestPushBlockedByWall(t *testing.T) {
	g := NewGrid(2, 1)
	g.Set(0, 0, NewCell(Mover, Right))
	g.Set(1, 0, NewCell(Wall, Right))

	result := Push(g, 0, 0, Right, 0, nil, true)
	if result != NotMoved {
		t.Fatalf("Push against a Wall should be NotMoved, got %v", result)
	}
}

func TestPullDrawsChainForward(t *testing.T) {
	g := NewGrid(3, 1)
	g.Set(0, 0, NewCell(Push, Right))
	g.Set(1, 0, NewCell(Puller, Right))

	Pull(g, 1, 0, Right)

	if g.Get(0, 0) != nil {
		t.Error("(0,0) should be empty after the chain was pulled forward")
	}
	if c := g.Get(1, 0); c == nil || c.ID != Push {
		t.Error("(1,0) should now hold the Push cell")
	}
	if c := g.Get(2, 0); c == nil || c.ID != Puller {
		t.Error("(2,0) should now hold the Puller")
	}
}

func TestRotateByRespectsCanRotate(t *testing.T) {
	g := NewGrid(1, 1)
	g.Set(0, 0, NewCell(Wall, Right))
	if RotateBy(g, 0, 0, Down, Left) {
		t.Error("RotateBy should refuse to rotate a Wall")
	}
}
