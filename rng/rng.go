// Package rng - randomness shared by terrain generation and scenario selection.
//
// All stochastic choices in gridpath go through a Source so that a single seed
// reproduces a whole scenario (terrain, lanes, start/goal).
//
// Guarantees:
//   - IntInclusive(min,max) returns a value in [min,max] for every min<=max.
//   - Shuffle produces a uniform permutation (each swap partner drawn from [0,i]).
//   - Bool returns true with probability 127/256, not 1/2: one uniform byte b is
//     drawn and compared as b < 127. Generated terrains depend on this bias, so
//     it is kept as-is.
//
// Concurrency:
//   - *Rand is NOT goroutine-safe. Use one per generator run.
package rng

import (
	crand "crypto/rand"
	"math"
	"math/rand"
)

// DefaultSeed is used when callers pass seed==0.
const DefaultSeed int64 = 1

// coinThreshold is the exclusive upper byte bound for Bool returning true.
const coinThreshold = 127

// Source is the randomness contract consumed by the generator and selectors.
type Source interface {
	// Bool returns true with probability 127/256.
	Bool() bool
	// IntInclusive returns a uniform integer in [min,max]. Panics if min > max.
	IntInclusive(min, max int) int
	// Float64 returns a uniform real in [0,1).
	Float64() float64
}

// Rand is the default Source. Byte draws for Bool come from bytes (math/rand
// seeded stream or crypto/rand), integers and reals from the seeded stream.
type Rand struct {
	r     *rand.Rand
	bytes func([]byte) error
	buf   [1]byte
}

// New returns a deterministic Source. Policy: seed==0 => DefaultSeed.
//
// Complexity: O(1).
func New(seed int64) *Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	r := rand.New(rand.NewSource(seed))
	return &Rand{
		r: r,
		bytes: func(p []byte) error {
			_, err := r.Read(p)
			return err
		},
	}
}

// NewCrypto returns a Source whose coin flips read crypto/rand, while ranges and
// reals use a math/rand stream seeded from crypto/rand. Not reproducible.
func NewCrypto() *Rand {
	var seed [8]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic("rng: crypto source unavailable: " + err.Error())
	}
	var s int64
	for _, b := range seed {
		s = s<<8 | int64(b)
	}
	out := New(s)
	out.bytes = func(p []byte) error {
		_, err := crand.Read(p)
		return err
	}
	return out
}

// Bool implements Source.
func (r *Rand) Bool() bool {
	if err := r.bytes(r.buf[:]); err != nil {
		panic("rng: byte source failed: " + err.Error())
	}
	return r.buf[0] < coinThreshold
}

// IntInclusive implements Source: floor(u*(max+1-min)) + min with u in [0,1).
// Spans wider than 2^53 (where float64 loses integers) draw a uint64 offset
// by rejection instead.
func (r *Rand) IntInclusive(min, max int) int {
	if min > max {
		panic("rng: IntInclusive(min>max)")
	}
	span := uint64(max) - uint64(min) + 1 // 0 means the full integer range
	if span == 0 || span > maxExactSpan {
		return int(uint64(min) + r.offset(span))
	}
	v := min + int(r.r.Float64()*float64(span))
	if v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}

// maxExactSpan is the largest span float64 represents without gaps.
const maxExactSpan = 1 << 53

// offset returns a uniform value in [0,span), span==0 meaning [0,2^64).
func (r *Rand) offset(span uint64) uint64 {
	if span == 0 {
		return r.r.Uint64()
	}
	limit := math.MaxUint64 - math.MaxUint64%span
	for {
		if v := r.r.Uint64(); v < limit {
			return v % span
		}
	}
}

// Float64 implements Source.
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// ShuffleFunc permutes n elements in place through swap. For i in [0,n) it
// swaps i with j drawn from [0,i] (inclusive). n<=1 is a no-op.
//
// Complexity: O(n) time, O(1) extra space.
func ShuffleFunc(src Source, n int, swap func(i, j int)) {
	if n <= 1 {
		return
	}
	for i := 0; i < n; i++ {
		j := src.IntInclusive(0, i)
		swap(i, j)
	}
}

// Shuffle permutes s in place using ShuffleFunc.
func Shuffle[T any](src Source, s []T) {
	ShuffleFunc(src, len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
