package core

import (
	"math/rand"
	"time"
)

// Rand wraps a seeded math/rand source with the helpers engines need.
type Rand struct {
	*rand.Rand
}

// NewRand returns a generator for seed; seed 0 picks one from the clock.
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{Rand: rand.New(rand.NewSource(seed))}
}

// Range returns a uniform float in [lo, hi).
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.Float64() < p
}
