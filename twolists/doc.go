// Package twolists selects order statistics across two sorted sequences
// without merging them.
//
// 🚀 What does it solve?
//
//	Given two non-decreasing sequences A and B and a rank k, find the value
//	that would occupy position k (1-indexed) if A and B were merged and sorted.
//	Duplicates are counted as separate elements, so
//	  A = [3, 3], B = [3]  →  every k in 1..3 yields 3.
//
// ✨ Key features:
//   - O(log k) time, O(1) extra memory, inputs are never modified
//   - generic over cmp.Ordered (ints, floats, strings)
//   - out-of-range ranks report ok=false instead of panicking
//   - no arithmetic on values: boundaries past either end are tagged,
//     so math.MaxInt64 inputs are safe
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ordstat/twolists"
//
//	v, ok := twolists.KthSmallest(a, b, 13)
//	if !ok {
//	    // k is outside [1, len(a)+len(b)]
//	}
//
// Performance:
//
//   - Time:   O(log k)
//   - Memory: O(1)
package twolists
