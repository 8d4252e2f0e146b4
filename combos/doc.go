// Package combos finds the k smallest values obtainable from a sorted list
// as a single element, a sum of two distinct elements, or a sum of three
// distinct elements.
//
// 🚀 How it works
//
//	Three sorted candidate pools are generated once per query:
//	  Singles — the list itself
//	  Pairs   — every a[i]+a[j], i<j           (n·(n−1)/2 sums)
//	  Triples — every a[i]+a[j]+a[l], i<j<l    (n·(n−1)·(n−2)/6 sums)
//	A cursor per pool then emits the k smallest heads in global order.
//
//	  list = [3, 4, 5, 15]
//	  Singles: 3 4 5 15
//	  Pairs:   7 8 9 18 19 20
//	  Triples: 12 22 23 24
//	  k = 6  → 3 4 5 7 8 9
//
// ✨ Key features:
//   - a duplicated value across pools is emitted once per occurrence
//   - equal heads are taken in pool order Singles, Pairs, Triples; this fixes
//     output order (and Slot.Pool) without changing the emitted values
//   - fewer than k candidates → trailing Slot values with Available=false
//   - Merge works for any number of sorted pools of any cmp.Ordered type
//
// Preconditions (not checked):
//   - the list is sorted and distinct-valued
//   - sums fit the element type; no overflow detection is performed
//
// Performance:
//
//   - Time:   O(n³ log n) dominated by sorting the Triples pool
//   - Memory: O(n² + n³)
//
// Use this package for small lists only (n in the low hundreds at most).
package combos
