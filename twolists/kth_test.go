package twolists_test

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/katalvlaran/ordstat/twolists"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mergedKth is the brute-force oracle: merge, sort, index.
func mergedKth(a, b []int, k int) (int, bool) {
	if k < 1 || k > len(a)+len(b) {
		return 0, false
	}
	all := append(slices.Clone(a), b...)
	slices.Sort(all)

	return all[k-1], true
}

// randomSorted returns a non-decreasing slice of length n with values in [0, spread].
func randomSorted(r *rand.Rand, n, spread int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = r.IntN(spread + 1)
	}
	slices.Sort(s)

	return s
}

// ------------------------------------------------------------------------
// 1. Concrete scenarios.
// ------------------------------------------------------------------------

func TestKthSmallest_SampleLists(t *testing.T) {
	a := []int{3, 4, 10, 23, 45, 55, 56, 58, 60, 65}
	b := []int{3, 3, 3, 15, 16, 28, 50, 70, 71, 72}

	// merged: 3 3 3 3 4 10 15 16 23 28 45 50 55 56 58 60 65 70 71 72
	cases := map[int]int{1: 3, 4: 3, 5: 4, 10: 28, 13: 55, 17: 65, 18: 70, 20: 72}
	for k, want := range cases {
		got, ok := twolists.KthSmallest(a, b, k)
		require.True(t, ok, "k=%d must be defined", k)
		assert.Equal(t, want, got, "k=%d", k)
	}
}

func TestKthSmallest_FirstEmpty(t *testing.T) {
	got, ok := twolists.KthSmallest([]int{}, []int{1, 2, 3}, 2)
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestKthSmallest_NilSequences(t *testing.T) {
	got, ok := twolists.KthSmallest(nil, []int{7, 8}, 1)
	require.True(t, ok)
	assert.Equal(t, 7, got)

	got, ok = twolists.KthSmallest([]int{7, 8}, nil, 2)
	require.True(t, ok)
	assert.Equal(t, 8, got)

	_, ok = twolists.KthSmallest[int](nil, nil, 1)
	assert.False(t, ok, "two empty sequences have no k-th element")
}

func TestKthSmallest_OutOfRange(t *testing.T) {
	a := []int{1, 5, 9}
	b := []int{2, 3}
	for _, k := range []int{math.MinInt, -1, 0, 6, 7, math.MaxInt} {
		got, ok := twolists.KthSmallest(a, b, k)
		assert.False(t, ok, "k=%d must be undefined", k)
		assert.Zero(t, got, "undefined result carries the zero value")
	}
}

func TestKthSmallest_AllFromOneSide(t *testing.T) {
	// The two smallest both come from a, then everything from b.
	a := []int{1, 2, 100, 101}
	b := []int{50, 60, 70}
	want := []int{1, 2, 50, 60, 70, 100, 101}
	for k := 1; k <= len(want); k++ {
		got, ok := twolists.KthSmallest(a, b, k)
		require.True(t, ok)
		assert.Equal(t, want[k-1], got, "k=%d", k)
	}
}

func TestKthSmallest_NoOverflowAtTypeBounds(t *testing.T) {
	a := []int64{math.MaxInt64 - 1, math.MaxInt64}
	b := []int64{math.MinInt64, math.MaxInt64, math.MaxInt64}
	want := []int64{math.MinInt64, math.MaxInt64 - 1, math.MaxInt64, math.MaxInt64, math.MaxInt64}
	for k := 1; k <= len(want); k++ {
		got, ok := twolists.KthSmallest(a, b, k)
		require.True(t, ok)
		assert.Equal(t, want[k-1], got, "k=%d", k)
	}
}

func TestKthSmallest_OtherOrderedTypes(t *testing.T) {
	s, ok := twolists.KthSmallest([]string{"ant", "cat", "eel"}, []string{"bee", "dog"}, 4)
	require.True(t, ok)
	assert.Equal(t, "dog", s)

	f, ok := twolists.KthSmallest([]float64{0.5, 1.5}, []float64{-2.25, 1.0, 3.0}, 3)
	require.True(t, ok)
	assert.Equal(t, 1.0, f)
}

func TestKthSmallest_DoesNotMutate(t *testing.T) {
	a := []int{1, 4, 4, 9}
	b := []int{2, 4, 8}
	ca, cb := slices.Clone(a), slices.Clone(b)
	for k := 1; k <= len(a)+len(b); k++ {
		twolists.KthSmallest(a, b, k)
	}
	assert.Equal(t, ca, a)
	assert.Equal(t, cb, b)
}

// ------------------------------------------------------------------------
// 2. Properties against the merge-and-sort oracle.
// ------------------------------------------------------------------------

func TestKthSmallest_MatchesOracle(t *testing.T) {
	r := rand.New(rand.NewPCG(13, 2013))
	spreads := []int{1, 3, 10, 1000}
	for iter := 0; iter < 3000; iter++ {
		spread := spreads[iter%len(spreads)]
		a := randomSorted(r, r.IntN(12), spread)
		b := randomSorted(r, r.IntN(12), spread)
		for k := -1; k <= len(a)+len(b)+1; k++ {
			want, wantOK := mergedKth(a, b, k)
			got, ok := twolists.KthSmallest(a, b, k)
			require.Equal(t, wantOK, ok, "a=%v b=%v k=%d", a, b, k)
			require.Equal(t, want, got, "a=%v b=%v k=%d", a, b, k)
		}
	}
}

func TestKthSmallest_Symmetric(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for iter := 0; iter < 1000; iter++ {
		a := randomSorted(r, r.IntN(20), 50)
		b := randomSorted(r, r.IntN(20), 50)
		for k := 1; k <= len(a)+len(b); k++ {
			ab, okAB := twolists.KthSmallest(a, b, k)
			ba, okBA := twolists.KthSmallest(b, a, k)
			require.True(t, okAB && okBA)
			require.Equal(t, ab, ba, "a=%v b=%v k=%d", a, b, k)
		}
	}
}

func TestKthSmallest_UnbalancedLengths(t *testing.T) {
	r := rand.New(rand.NewPCG(99, 1))
	a := randomSorted(r, 3, 1<<20)
	b := randomSorted(r, 500, 1<<20)
	for k := 1; k <= len(a)+len(b); k++ {
		want, _ := mergedKth(a, b, k)
		got, ok := twolists.KthSmallest(a, b, k)
		require.True(t, ok)
		require.Equal(t, want, got, "k=%d", k)
	}
}
