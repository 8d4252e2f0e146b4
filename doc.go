// Package ordstat is a small library of order-statistic selection over
// sorted and combinatorially derived integer sequences.
//
// 🚀 What is in ordstat?
//
//	Two independent selectors, each a pure function with no shared state:
//		• twolists — k-th smallest across two sorted sequences in O(log k),
//		  without merging them
//		• combos   — k smallest values among the elements of a sorted list,
//		  its pair sums and its triple sums, via a cursor merge of sorted pools
//
// ✨ Why ordstat?
//
//   - Read-only – inputs are never modified, every query owns its own state
//   - Safe for concurrent use – no locks needed, nothing is shared
//   - Total – out-of-range ranks and exhausted pools are reported as values
//     (ok=false, unavailable slots), never as panics
//
// Under the hood, everything is organized under these subpackages:
//
//	twolists/    — KthSmallest over two sorted sequences
//	combos/      — pool generator (Singles, Pairs, Triples), Merge, KSmallest
//	cmd/ordstat/ — demo CLI running both selectors on literal inputs
//
// Quick example:
//
//	v, ok := twolists.KthSmallest([]int{1, 5}, []int{2, 3}, 3) // 3, true
//	combos.Values(combos.KSmallest([]int{3, 4, 5}, 4))          // [3 4 5 7]
//
//	go get github.com/katalvlaran/ordstat
package ordstat
