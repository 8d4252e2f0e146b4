package twolists

import "cmp"

// boundKind tags a boundary read from a sequence at a 1-based position.
type boundKind uint8

const (
	// kindReal: the position addresses an element of the sequence.
	kindReal boundKind = iota

	// kindBeforeStart: position 0, i.e. nothing taken from the sequence.
	// Compares below every real value.
	kindBeforeStart

	// kindPastEnd: position beyond the last element.
	// Compares above every real value.
	kindPastEnd
)

// bound is a boundary value with explicit ±infinity states.
type bound[T cmp.Ordered] struct {
	kind  boundKind
	value T // meaningful only when kind == kindReal
}

// at returns the boundary of s at 1-based position pos.
func at[T cmp.Ordered](s []T, pos int) bound[T] {
	switch {
	case pos < 1:
		return bound[T]{kind: kindBeforeStart}
	case pos > len(s):
		return bound[T]{kind: kindPastEnd}
	default:
		return bound[T]{kind: kindReal, value: s[pos-1]}
	}
}

// rank orders the kinds: kindBeforeStart < kindReal < kindPastEnd.
func (b bound[T]) rank() int {
	switch b.kind {
	case kindBeforeStart:
		return -1
	case kindPastEnd:
		return 1
	default:
		return 0
	}
}

// compare returns -1, 0 or +1. Two sentinels of the same kind compare equal.
func (b bound[T]) compare(o bound[T]) int {
	if r := cmp.Compare(b.rank(), o.rank()); r != 0 {
		return r
	}
	if b.kind != kindReal {
		return 0
	}

	return cmp.Compare(b.value, o.value)
}

// max returns the larger of two boundaries.
func (b bound[T]) max(o bound[T]) bound[T] {
	if b.compare(o) >= 0 {
		return b
	}

	return o
}
