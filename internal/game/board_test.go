package game

import (
	"slices"
	"testing"
)

// newTestBoard builds a board with hazards at exactly the given cells.
func newTestBoard(size int, hazards ...int) *Board {
	b := NewBoard(size)
	for _, h := range hazards {
		b.cells[h].HasHazard = true
	}
	b.hazards = append([]int(nil), hazards...)
	b.declared = len(hazards)
	return b
}

func assertBoardInvariants(t *testing.T, b *Board) {
	t.Helper()
	set := b.HazardSet()
	if len(set) != b.DeclaredHazards() {
		t.Fatalf("hazard set size = %d, want %d", len(set), b.DeclaredHazards())
	}
	seen := make(map[int]bool)
	for _, pos := range set {
		if seen[pos] {
			t.Fatalf("duplicate hazard at %d", pos)
		}
		seen[pos] = true
		if !b.HasHazard(pos) {
			t.Fatalf("hazard set lists %d but cell has no hazard", pos)
		}
		if b.IsRevealed(pos) {
			t.Fatalf("hazard at revealed cell %d", pos)
		}
	}
	for i := 0; i < b.Size(); i++ {
		if b.HasHazard(i) && !seen[i] {
			t.Fatalf("cell %d has a hazard missing from the set", i)
		}
	}
}

func TestBoard_PlaceHazards(t *testing.T) {
	t.Run("places declared count on distinct cells", func(t *testing.T) {
		for _, count := range []int{3, 4, 5, 24} {
			b := NewBoard(MINES_GRID_SIZE)
			b.PlaceHazards(count, NewSeededRNG(uint64(count)))
			if b.DeclaredHazards() != count {
				t.Errorf("declared = %d, want %d", b.DeclaredHazards(), count)
			}
			assertBoardInvariants(t, b)
		}
	})

	t.Run("deterministic with the same seed", func(t *testing.T) {
		b1 := NewBoard(MINES_GRID_SIZE)
		b2 := NewBoard(MINES_GRID_SIZE)
		b1.PlaceHazards(5, NewSeededRNG(11))
		b2.PlaceHazards(5, NewSeededRNG(11))
		if !slices.Equal(b1.HazardSet(), b2.HazardSet()) {
			t.Errorf("placements differ: %v vs %v", b1.HazardSet(), b2.HazardSet())
		}
	})

	t.Run("clears the previous round", func(t *testing.T) {
		b := NewBoard(MINES_GRID_SIZE)
		b.PlaceHazards(5, NewSeededRNG(1))
		b.Reveal(0)
		b.PlaceHazards(3, NewSeededRNG(2))
		if b.RevealedCount() != 0 {
			t.Errorf("revealed count = %d after new placement", b.RevealedCount())
		}
		assertBoardInvariants(t, b)
	})
}

func TestBoard_ForceHazard(t *testing.T) {
	t.Run("evicts one unrevealed hazard", func(t *testing.T) {
		b := newTestBoard(MINES_GRID_SIZE, 1, 2, 3)
		b.Reveal(10)

		if !b.ForceHazard(0, NewSeededRNG(3)) {
			t.Fatal("ForceHazard should apply")
		}
		if !b.HasHazard(0) {
			t.Error("clicked cell should hold a hazard")
		}
		assertBoardInvariants(t, b)
	})

	t.Run("never evicts the clicked or a revealed cell", func(t *testing.T) {
		for seed := uint64(0); seed < 50; seed++ {
			b := newTestBoard(MINES_GRID_SIZE, 1, 2, 3)
			// Reveal two hazard cells directly so only cell 3 can be evicted.
			b.cells[1].Revealed = true
			b.cells[2].Revealed = true
			if !b.ForceHazard(0, NewSeededRNG(seed)) {
				t.Fatal("ForceHazard should apply")
			}
			if b.HasHazard(3) {
				t.Fatalf("seed %d: cell 3 should have been evicted", seed)
			}
			if !b.HasHazard(1) || !b.HasHazard(2) {
				t.Fatalf("seed %d: revealed cells were mutated", seed)
			}
		}
	})

	t.Run("no eviction candidate leaves the board unchanged", func(t *testing.T) {
		b := newTestBoard(5, 1, 2)
		b.cells[1].Revealed = true
		b.cells[2].Revealed = true
		before := b.HazardSet()

		if b.ForceHazard(0, NewSeededRNG(1)) {
			t.Error("ForceHazard should not apply without candidates")
		}
		if b.HasHazard(0) {
			t.Error("clicked cell should be untouched")
		}
		if !slices.Equal(before, b.HazardSet()) {
			t.Errorf("hazard set changed: %v -> %v", before, b.HazardSet())
		}
	})

	t.Run("revealed or hazardous target is a no-op", func(t *testing.T) {
		b := newTestBoard(MINES_GRID_SIZE, 1, 2, 3)
		b.Reveal(5)
		if b.ForceHazard(5, NewSeededRNG(1)) {
			t.Error("revealed cell must not change")
		}
		if b.ForceHazard(1, NewSeededRNG(1)) {
			t.Error("cell already holding a hazard reports no mutation")
		}
		assertBoardInvariants(t, b)
	})
}

func TestBoard_RelocateHazard(t *testing.T) {
	t.Run("moves hazard to a free unrevealed cell", func(t *testing.T) {
		for seed := uint64(0); seed < 50; seed++ {
			b := newTestBoard(MINES_GRID_SIZE, 0, 1, 2)
			b.Reveal(3)
			b.Reveal(4)

			if !b.RelocateHazard(0, NewSeededRNG(seed)) {
				t.Fatal("RelocateHazard should apply")
			}
			if b.HasHazard(0) {
				t.Fatal("clicked cell should be cleared")
			}
			if b.HasHazard(3) || b.HasHazard(4) {
				t.Fatal("hazard moved onto a revealed cell")
			}
			assertBoardInvariants(t, b)
		}
	})

	t.Run("no free cell leaves the board unchanged", func(t *testing.T) {
		b := newTestBoard(3, 0, 1)
		b.Reveal(2)

		if b.RelocateHazard(0, NewSeededRNG(1)) {
			t.Error("RelocateHazard should not apply without a free cell")
		}
		if !b.HasHazard(0) {
			t.Error("hazard should stay on the clicked cell")
		}
	})

	t.Run("safe cell is a no-op", func(t *testing.T) {
		b := newTestBoard(MINES_GRID_SIZE, 0)
		if b.RelocateHazard(5, NewSeededRNG(1)) {
			t.Error("nothing to relocate from a safe cell")
		}
	})
}
