package game

const (
	MINES_GRID_SIZE = 25 // 5x5 grid
)

// Cell is one square of the board. Once Revealed is set HasHazard never changes.
type Cell struct {
	HasHazard bool `json:"-"`
	Revealed  bool `json:"revealed"`
}

// Board holds the cells of the current round and the ordered set of hazard positions.
type Board struct {
	cells    []Cell
	hazards  []int
	declared int
}

// NewBoard returns an empty board with size cells and no hazards.
func NewBoard(size int) *Board {
	return &Board{cells: make([]Cell, size)}
}

// PlaceHazards clears the board and puts count hazards on distinct cells,
// chosen uniformly with a partial Fisher-Yates shuffle.
func (b *Board) PlaceHazards(count int, rng RandomSource) {
	for i := range b.cells {
		b.cells[i] = Cell{}
	}

	indices := make([]int, len(b.cells))
	for i := range indices {
		indices[i] = i
	}
	for i := 0; i < count; i++ {
		j := i + rng.IntN(len(indices)-i)
		indices[i], indices[j] = indices[j], indices[i]
	}

	b.hazards = append([]int(nil), indices[:count]...)
	for _, pos := range b.hazards {
		b.cells[pos].HasHazard = true
	}
	b.declared = count
}

func (b *Board) Size() int { return len(b.cells) }

// DeclaredHazards is the hazard count chosen when the round started.
func (b *Board) DeclaredHazards() int { return b.declared }

func (b *Board) InRange(index int) bool { return index >= 0 && index < len(b.cells) }

func (b *Board) Cell(index int) Cell { return b.cells[index] }

func (b *Board) HasHazard(index int) bool { return b.cells[index].HasHazard }

func (b *Board) IsRevealed(index int) bool { return b.cells[index].Revealed }

// HazardSet returns a copy of the hazard positions in placement order.
func (b *Board) HazardSet() []int {
	return append([]int(nil), b.hazards...)
}

// RevealedCount is the number of cells turned over so far.
func (b *Board) RevealedCount() int {
	n := 0
	for _, c := range b.cells {
		if c.Revealed {
			n++
		}
	}
	return n
}

// Reveal turns the cell over and reports whether it holds a hazard.
func (b *Board) Reveal(index int) bool {
	b.cells[index].Revealed = true
	return b.cells[index].HasHazard
}

// ForceHazard puts a hazard on index and, when that would exceed the declared
// count, evicts one unrevealed hazard elsewhere chosen at random. The change is
// committed in one step. It returns false without touching the board when the
// cell is revealed, already a hazard, or no hazard can be evicted.
func (b *Board) ForceHazard(index int, rng RandomSource) bool {
	if b.cells[index].Revealed || b.cells[index].HasHazard {
		return false
	}

	evict := -1
	if len(b.hazards)+1 > b.declared {
		candidates := make([]int, 0, len(b.hazards))
		for _, pos := range b.hazards {
			if pos != index && !b.cells[pos].Revealed {
				candidates = append(candidates, pos)
			}
		}
		if len(candidates) == 0 {
			return false
		}
		evict = candidates[rng.IntN(len(candidates))]
	}

	if evict >= 0 {
		b.cells[evict].HasHazard = false
		for i, pos := range b.hazards {
			if pos == evict {
				b.hazards[i] = index
				break
			}
		}
	} else {
		b.hazards = append(b.hazards, index)
	}
	b.cells[index].HasHazard = true
	return true
}

// RelocateHazard moves the hazard on index to a random unrevealed, hazard-free
// cell other than index. It returns false when index holds no hazard or no such
// cell exists.
func (b *Board) RelocateHazard(index int, rng RandomSource) bool {
	if b.cells[index].Revealed || !b.cells[index].HasHazard {
		return false
	}

	free := make([]int, 0, len(b.cells))
	for i, c := range b.cells {
		if i != index && !c.HasHazard && !c.Revealed {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return false
	}
	target := free[rng.IntN(len(free))]

	b.cells[index].HasHazard = false
	b.cells[target].HasHazard = true
	for i, pos := range b.hazards {
		if pos == index {
			b.hazards[i] = target
			break
		}
	}
	return true
}
