package subtitle

import (
	"errors"
	"math/rand/v2"
)

// source of uniform random integers in [0, n)
type RandSource interface {
	IntN(n int) int
}

// StyleSelector hands out styles from a pool without repeating one until
// every style of the pool has been used. It is scoped to a single
// conversion and is not safe for concurrent use.
type StyleSelector struct {
	pool      []Style
	reservoir []int
	rng       RandSource
}

// creates selector over pool. A nil rng uses a randomly seeded source.
func NewStyleSelector(pool []Style, rng RandSource) (*StyleSelector, error) {
	if len(pool) == 0 {
		return nil, errors.New("style pool is empty")
	}
	return newStyleSelector(pool, rng), nil
}

func newStyleSelector(pool []Style, rng RandSource) *StyleSelector {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &StyleSelector{
		pool: pool,
		rng:  rng,
	}
}

// next style of the current pass
func (s *StyleSelector) Pick() Style {
	if len(s.reservoir) == 0 {
		s.Reset()
	}
	i := s.rng.IntN(len(s.reservoir))
	picked := s.reservoir[i]
	s.reservoir = append(s.reservoir[:i], s.reservoir[i+1:]...)
	return s.pool[picked]
}

// refills the reservoir with every pool index
func (s *StyleSelector) Reset() {
	s.reservoir = s.reservoir[:0]
	for i := range s.pool {
		s.reservoir = append(s.reservoir, i)
	}
}

// number of styles left before the reservoir refills
func (s *StyleSelector) Remaining() int {
	return len(s.reservoir)
}
