package feed

import (
	"math/rand/v2"
	"sync"
)

// Random is the only source of chance the mutator uses.
type Random interface {
	// IntRange returns an int in [min, max].
	IntRange(min, max int) int
	// Weighted returns an index into weights, chosen proportionally.
	Weighted(weights []int) int
}

type seededRandom struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandom(seed uint64) Random {
	return &seededRandom{rnd: rand.New(rand.NewPCG(seed, seed))}
}

func (r *seededRandom) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return min + r.rnd.IntN(max-min+1)
}

func (r *seededRandom) Weighted(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}

	r.mu.Lock()
	pick := r.rnd.IntN(total)
	r.mu.Unlock()

	for i, w := range weights {
		if pick < w {
			return i
		}
		pick -= w
	}
	return len(weights) - 1
}
