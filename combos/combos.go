package combos

// KSmallest returns the k smallest values that are either an element of
// list, a sum of two distinct elements, or a sum of three distinct elements.
//
// The result always holds exactly k slots for k ≥ 1; slots past the total
// number of candidates (n + C(n,2) + C(n,3)) are unavailable. k < 1 yields nil.
//
// Preconditions:
//   - list is sorted and distinct-valued (not checked).
//
// Example:
//
//	slots := KSmallest([]int{3, 4, 5, 15, 19, 20, 25}, 5)
//	Values(slots) // [3 4 5 7 8]
//
// Complexity: O(n³ log n + k) time, O(n³) memory.
func KSmallest[T Integer](list []T, k int) []Slot[T] {
	if k < 1 {
		return nil
	}

	return Merge(Pools(list), k)
}

// Candidates reports how many values KSmallest can draw from a list of
// length n.
func Candidates(n int) int {
	return PoolSize(n, 1) + PoolSize(n, 2) + PoolSize(n, 3)
}
