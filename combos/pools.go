package combos

import "slices"

// SinglesOf returns a copy of list. The list is expected to be sorted
// already, so the copy is the Singles pool as is.
func SinglesOf[T Integer](list []T) []T {
	return slices.Clone(list)
}

// PairsOf returns the sorted sums of every unordered pair of distinct
// positions of list. Lists shorter than two yield an empty pool.
//
// Complexity: O(n² log n) time, n·(n−1)/2 values.
func PairsOf[T Integer](list []T) []T {
	n := len(list)
	out := make([]T, 0, PoolSize(n, 2))
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			out = append(out, list[i]+list[j])
		}
	}
	slices.Sort(out)

	return out
}

// TriplesOf returns the sorted sums of every unordered triple of distinct
// positions of list. Lists shorter than three yield an empty pool.
//
// Complexity: O(n³ log n) time, n·(n−1)·(n−2)/6 values.
func TriplesOf[T Integer](list []T) []T {
	n := len(list)
	out := make([]T, 0, PoolSize(n, 3))
	for i := 2; i < n; i++ {
		for j := 1; j < i; j++ {
			for l := 0; l < j; l++ {
				out = append(out, list[i]+list[j]+list[l])
			}
		}
	}
	slices.Sort(out)

	return out
}

// Pools returns the Singles, Pairs and Triples pools of list, indexed by Pool.
func Pools[T Integer](list []T) [][]T {
	return [][]T{
		Singles: SinglesOf(list),
		Pairs:   PairsOf(list),
		Triples: TriplesOf(list),
	}
}

// PoolSize returns C(n, r), the number of r-element position subsets of an
// n-element list, for r in 1..3. Any other r, or n < r, yields 0.
func PoolSize(n, r int) int {
	if n < r {
		return 0
	}
	switch r {
	case 1:
		return n
	case 2:
		return n * (n - 1) / 2
	case 3:
		return n * (n - 1) * (n - 2) / 6
	default:
		return 0
	}
}
