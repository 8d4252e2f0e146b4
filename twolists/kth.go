package twolists

import "cmp"

// KthSmallest returns the k-th smallest value (1-indexed) of the multiset
// formed by the two non-decreasing sequences a and b.
//
// Description:
//
//	The search runs over the split (mid1, mid2) with mid1 + mid2 == k, where
//	mid1 is the 1-based position of the last element taken from a (0 means
//	none) and mid2 the same for b. The window [lo, hi] of candidate values for
//	mid1 starts at [0, k]; positions beyond either sequence read as a
//	past-the-end sentinel, which clamps the window without explicit bounds.
//
// Algorithm Outline:
//  1. If k is outside [1, len(a)+len(b)] there is no answer (ok=false).
//  2. If one sequence is empty, index the other directly.
//  3. While the window holds more than two splits:
//     mid1 = middle of [lo, hi], mid2 = k - mid1
//     val1 = a[mid1], val2 = b[mid2]
//     val1 == val2 → that value is the k-th smallest
//     val1 >  val2 → hi = mid1 (b's lower bound rises to mid2)
//     val1 <  val2 → lo = mid1 (b's upper bound falls to mid2)
//  4. Resolve the remaining (at most two) splits by comparing their
//     boundary elements directly.
//
// Preconditions:
//   - a and b are sorted in non-decreasing order. This is not checked;
//     unsorted input yields an unspecified value.
//
// Complexity:
//
//	Time   = O(log k)
//	Memory = O(1)
func KthSmallest[T cmp.Ordered](a, b []T, k int) (T, bool) {
	var zero T
	m, n := len(a), len(b)

	// 1) Rank out of range: a normal "no answer" outcome.
	if k < 1 || k > m+n {
		return zero, false
	}

	// 2) Degenerate inputs: plain indexing into the non-empty side.
	if m == 0 {
		return b[k-1], true
	}
	if n == 0 {
		return a[k-1], true
	}

	// 3) Binary search over the split.
	lo, hi := 0, k
	var mid1, mid2 int
	var val1, val2 bound[T]
	for hi-lo+1 > 2 {
		mid1 = lo + (hi-lo)/2
		mid2 = k - mid1
		val1, val2 = at(a, mid1), at(b, mid2)

		switch val1.compare(val2) {
		case 0:
			// Equal boundaries at a k-split: mid1-1 + mid2-1 elements lie
			// at or below them, everything after them lies at or above.
			return val1.value, true
		case 1:
			hi = mid1
		default:
			lo = mid1
		}
	}

	// 4) Base case.
	return resolve(a, b, k, lo, hi), true
}

// resolve picks the k-th smallest among the splits mid1 in [lo, hi].
//
// A split is valid when it is feasible (0 ≤ mid1 ≤ len(a), 0 ≤ k-mid1 ≤ len(b))
// and the next element of a is not below the last element taken from b.
// The smallest valid split in the window is the answer's split; the answer is
// the larger of the two elements taken last.
func resolve[T cmp.Ordered](a, b []T, k, lo, hi int) T {
	var last1, last2 bound[T]
	for mid1 := lo; mid1 <= hi; mid1++ {
		mid2 := k - mid1
		if mid1 > len(a) || mid2 > len(b) {
			continue
		}
		last1, last2 = at(a, mid1), at(b, mid2)
		if at(a, mid1+1).compare(last2) < 0 {
			continue
		}

		return last1.max(last2).value
	}

	// The search only ever discards splits that cannot hold rank k.
	panic("twolists: k-th split left the search window")
}
