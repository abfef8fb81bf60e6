package sim

import "testing"

func TestCatalogIDsStartAtZero(t *testing.T) {
	// The Q1 wire format's spec example depends on this exact numbering:
	// Mover must encode as base62 "1", which requires Wall == 0.
	if Wall != 0 {
		t.Errorf("Wall = %d, want 0", Wall)
	}
	if Mover != 1 {
		t.Errorf("Mover = %d, want 1", Mover)
	}
}

func TestCatalogHasThirtyThreeEntries(t *testing.T) {
	if n := len(Catalog); n != 33 {
		t.Errorf("len(Catalog) = %d, want 33", n)
	}
}

func TestCatalogEntriesHaveValidSides(t *testing.T) {
	for id, entry := range Catalog {
		switch entry.Sides {
		case 1, 2, 4:
		default:
			t.Errorf("%v: Sides = %d, want 1, 2, or 4", id, entry.Sides)
		}
		if entry.Name == "" {
			t.Errorf("%v: empty Name", id)
		}
	}
}

func TestSidesFallsBackToFourForUnknownID(t *testing.T) {
	unknown := CellID(9999)
	if _, known := Catalog[unknown]; known {
		t.Fatalf("test id %d unexpectedly present in Catalog", unknown)
	}
	if got := Sides(unknown); got != 4 {
		t.Errorf("Sides(unknown) = %d, want 4", got)
	}
}
