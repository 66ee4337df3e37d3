package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// DefaultSampleAttempts is how many random draws Sample makes before giving up.
const DefaultSampleAttempts = 100

// Sampler picks random free cells for food.
//
// It uses bounded retries rather than an exhaustive search: on a crowded
// board it can fail even though free cells exist, and the caller has to
// cope with that.
type Sampler struct {
	rng         *rand.Rand
	maxAttempts int
}

// NewSampler creates a sampler. A nil rng uses a time-seeded source and a
// non-positive maxAttempts uses DefaultSampleAttempts.
func NewSampler(rng *rand.Rand, maxAttempts int) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultSampleAttempts
	}
	return &Sampler{rng: rng, maxAttempts: maxAttempts}
}

// MaxAttempts returns the retry bound.
func (s *Sampler) MaxAttempts() int {
	return s.maxAttempts
}

// Sample draws a row and column uniformly in [0, boardSize) until it finds
// a cell not in excluded. It returns false after MaxAttempts misses.
func (s *Sampler) Sample(boardSize int, excluded map[core.Position]struct{}) (core.Position, bool) {
	if boardSize <= 0 {
		return core.Position{}, false
	}

	for range s.maxAttempts {
		p := core.P(s.rng.Intn(boardSize), s.rng.Intn(boardSize))
		if _, taken := excluded[p]; !taken {
			return p, true
		}
	}
	return core.Position{}, false
}
