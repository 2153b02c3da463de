package rng_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/rng"
)

// TestShuffle_PreservesMultiset checks that shuffling only reorders elements,
// including the degenerate lengths 0 and 1.
func TestShuffle_PreservesMultiset(t *testing.T) {
	src := rng.New(7)
	for n := 0; n <= 40; n++ {
		in := make([]int, n)
		for i := range in {
			in[i] = i % 5 // duplicates on purpose
		}
		out := slices.Clone(in)
		rng.Shuffle(src, out)

		a, b := slices.Clone(in), slices.Clone(out)
		slices.Sort(a)
		slices.Sort(b)
		require.Equal(t, a, b, "n=%d", n)
	}
}

func TestShuffle_SingleIsNoop(t *testing.T) {
	s := []string{"only"}
	rng.Shuffle(rng.New(3), s)
	assert.Equal(t, []string{"only"}, s)

	var empty []string
	rng.Shuffle(rng.New(3), empty)
	assert.Empty(t, empty)
}

// TestShuffle_SeedDeterminism locks the permutation for a fixed seed.
func TestShuffle_SeedDeterminism(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := slices.Clone(a)
	rng.Shuffle(rng.New(42), a)
	rng.Shuffle(rng.New(42), b)
	assert.Equal(t, a, b)
}

// TestIntInclusive_RangeAndEndpoints draws many samples and requires every
// value to stay in range and both endpoints to appear.
func TestIntInclusive_RangeAndEndpoints(t *testing.T) {
	cases := []struct {
		name     string
		min, max int
		wide     bool // endpoints too unlikely to assert
	}{
		{"Unit", 0, 1, false},
		{"Small", 3, 7, false},
		{"Negative", -4, 2, false},
		{"Degenerate", 5, 5, false},
		{"RegionRows", 0, 120 - 31 - 1, false},
		{"HalfRange", 0, math.MaxInt, true},
		{"FullRange", math.MinInt, math.MaxInt, true},
		{"NegativeHalf", math.MinInt, -1, true},
	}
	src := rng.New(11)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seenMin, seenMax := false, false
			for i := 0; i < 20000; i++ {
				v := src.IntInclusive(tc.min, tc.max)
				require.GreaterOrEqual(t, v, tc.min)
				require.LessOrEqual(t, v, tc.max)
				seenMin = seenMin || v == tc.min
				seenMax = seenMax || v == tc.max
			}
			if tc.wide {
				return
			}
			assert.True(t, seenMin, "min endpoint never drawn")
			assert.True(t, seenMax, "max endpoint never drawn")
		})
	}
}

// TestIntInclusive_WideSpansSpread guards against the span wrapping or
// overflowing: draws must land on both sides of zero, not stick to min.
func TestIntInclusive_WideSpansSpread(t *testing.T) {
	src := rng.New(3)
	neg, pos := 0, 0
	for i := 0; i < 1000; i++ {
		v := src.IntInclusive(math.MinInt, math.MaxInt)
		if v < 0 {
			neg++
		} else {
			pos++
		}
		require.GreaterOrEqual(t, src.IntInclusive(0, math.MaxInt), 0)
	}
	assert.Greater(t, neg, 400)
	assert.Greater(t, pos, 400)
}

func TestIntInclusive_PanicsOnInvertedRange(t *testing.T) {
	assert.Panics(t, func() { rng.New(1).IntInclusive(3, 2) })
}

// TestBool_Bias checks the 127/256 coin rate within a loose tolerance.
func TestBool_Bias(t *testing.T) {
	const n = 200000
	src := rng.New(5)
	hits := 0
	for i := 0; i < n; i++ {
		if src.Bool() {
			hits++
		}
	}
	rate := float64(hits) / n
	assert.InDelta(t, 127.0/256.0, rate, 0.01)
}

func TestNewCrypto_Usable(t *testing.T) {
	src := rng.NewCrypto()
	for i := 0; i < 100; i++ {
		v := src.IntInclusive(1, 6)
		require.True(t, v >= 1 && v <= 6)
		_ = src.Bool()
	}
}

func TestNew_ZeroSeedPolicy(t *testing.T) {
	a, b := rng.New(0), rng.New(rng.DefaultSeed)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}
