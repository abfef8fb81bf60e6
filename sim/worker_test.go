package sim

import (
	"testing"
	"time"
)

func TestUpdaterProducesAdvancingSnapshots(t *testing.T) {
	g := NewGrid(3, 1)
	g.Set(0, 0, NewCell(Mover, Right))

	u := NewUpdater(g, 2)
	u.Start()
	defer u.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for {
		_, repeatCount, _ := u.Snapshot()
		if repeatCount >= 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("updater never completed a tick within the deadline")
		}
		time.Sleep(10 * time.Millisecond)
	}

	snap, _, present := u.Snapshot()
	if _, ok := present[Mover]; !ok {
		t.Error("present-id set should still report Mover after a tick")
	}
	if snap.Get(1, 0) == nil && snap.Get(2, 0) == nil {
		t.Error("the mover should have advanced at least once by now")
	}
}

func TestUpdaterStopIsIdempotent(t *testing.T) {
	g := NewGrid(1, 1)
	u := NewUpdater(g, 1)
	u.Start()
	u.Stop()
	u.Stop()
}

func TestRowStripesCoverEveryRowExactlyOnce(t *testing.T) {
	for _, c := range []struct{ rows, workers int }{
		{10, 3}, {1, 4}, {7, 1}, {5, 5},
	} {
		stripes := rowStripes(c.rows, c.workers)
		if len(stripes) != c.workers {
			t.Fatalf("rows=%d workers=%d: got %d stripes, want %d", c.rows, c.workers, len(stripes), c.workers)
		}
		covered := make([]bool, c.rows)
		for _, s := range stripes {
			for y := s.StartY; y < s.EndY; y++ {
				if covered[y] {
					t.Fatalf("rows=%d workers=%d: row %d covered twice", c.rows, c.workers, y)
				}
				covered[y] = true
			}
		}
		for y, ok := range covered {
			if !ok {
				t.Errorf("rows=%d workers=%d: row %d never covered", c.rows, c.workers, y)
			}
		}
	}
}

func TestPresentIDsParallelMatchesSequential(t *testing.T) {
	g := NewGrid(6, 6)
	g.Set(0, 0, NewCell(Mover, Right))
	g.Set(3, 4, NewCell(Trash, Up))
	g.Set(5, 5, NewCell(Wall, Right))

	seq := g.PresentIDs()
	par := PresentIDsParallel(g, 4)

	if len(seq) != len(par) {
		t.Fatalf("PresentIDsParallel = %v, sequential = %v", par, seq)
	}
	for id := range seq {
		if _, ok := par[id]; !ok {
			t.Errorf("PresentIDsParallel missing id %v", id)
		}
	}
}
