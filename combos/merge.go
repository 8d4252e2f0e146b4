package combos

import "cmp"

// Merge emits the k smallest values across the sorted pools, in
// non-decreasing order, as exactly k slots.
//
// Algorithm:
//  1. Keep one cursor per pool, starting at 0.
//  2. For each output slot, scan the cursors and pick the pool whose head is
//     strictly smallest among non-exhausted pools; on equal heads the lower
//     pool index wins. Advance only that cursor.
//  3. Once every pool is exhausted the remaining slots stay unavailable.
//
// A tied head that was not picked is offered again for the next slot, so a
// value present in several pools is emitted once per occurrence.
//
// k < 1 yields nil. Pools are read, never modified.
//
// Complexity: O(k·p) time for p pools, O(p) extra memory besides the result.
func Merge[T cmp.Ordered](pools [][]T, k int) []Slot[T] {
	if k < 1 {
		return nil
	}

	out := make([]Slot[T], k)
	cursors := make([]int, len(pools))
	var best, j int
	var pool []T
	for i := range out {
		best = -1
		for j, pool = range pools {
			if cursors[j] >= len(pool) {
				continue
			}
			if best < 0 || pool[cursors[j]] < pools[best][cursors[best]] {
				best = j
			}
		}
		if best < 0 {
			// Exhausted: out[i:] keeps the zero (unavailable) Slot.
			break
		}

		out[i] = Slot[T]{
			Value:     pools[best][cursors[best]],
			Pool:      Pool(best),
			Available: true,
		}
		cursors[best]++
	}

	return out
}

// Values returns the available values of slots, in order.
func Values[T any](slots []Slot[T]) []T {
	out := make([]T, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			out = append(out, s.Value)
		}
	}

	return out
}
