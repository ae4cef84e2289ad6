// Package randutil holds the randomness and bounded-retry helpers shared by
// the question generators.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Rand is a seeded pseudo-random source. It is not safe for concurrent use;
// each round owns its own.
type Rand struct {
	r *rand.Rand
}

// New returns a deterministic source for the given seed.
func New(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandom returns a source seeded from crypto entropy.
func NewRandom() *Rand {
	return New(RandomSeed())
}

// RandomSeed draws a fresh seed from crypto entropy.
func RandomSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.Uint64()
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Intn returns a value in [0, n). It panics if n <= 0.
func (r *Rand) Intn(n int) int {
	return r.r.IntN(n)
}

// Between returns a value in [lo, hi]. When hi < lo it returns lo.
func (r *Rand) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// Chance reports true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Shuffle returns a shuffled copy of items.
func Shuffle[T any](r *Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	r.r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Pick returns a random element. ok is false for an empty slice.
func Pick[T any](r *Rand, items []T) (v T, ok bool) {
	if len(items) == 0 {
		return v, false
	}
	return items[r.r.IntN(len(items))], true
}

// Weighted picks an index with probability proportional to weights.
func (r *Rand) Weighted(weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	x := r.r.Float64() * total
	for i, w := range weights {
		if x < w {
			return i
		}
		x -= w
	}
	return len(weights) - 1
}
