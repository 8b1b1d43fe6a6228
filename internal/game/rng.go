package game

import (
	"math/rand/v2"
	"sync"
)

// RandomSource is the single source of randomness for a session. Board
// placement, relocation picks and loss draws all read from it.
type RandomSource interface {
	Float64() float64 // [0, 1)
	IntN(n int) int   // [0, n)
}

type globalRNG struct{}

func (globalRNG) Float64() float64 { return rand.Float64() }
func (globalRNG) IntN(n int) int   { return rand.IntN(n) }

// DefaultRNG returns the process-wide random source.
func DefaultRNG() RandomSource { return globalRNG{} }

// seededRNG is replicable, used by the simulator and tests.
type seededRNG struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *seededRNG) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}
