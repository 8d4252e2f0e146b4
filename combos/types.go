package combos

import "fmt"

// Integer is satisfied by every native integer kind.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Pool identifies the candidate pool a merged value came from.
// For Merge over arbitrary pools it is simply the pool's index.
type Pool int

const (
	// Singles holds the list elements themselves.
	Singles Pool = iota

	// Pairs holds sums of two distinct positions.
	Pairs

	// Triples holds sums of three distinct positions.
	Triples
)

// String returns the lowercase pool name.
func (p Pool) String() string {
	switch p {
	case Singles:
		return "singles"
	case Pairs:
		return "pairs"
	case Triples:
		return "triples"
	default:
		return fmt.Sprintf("pool(%d)", int(p))
	}
}

// MarshalText encodes the pool by name.
func (p Pool) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Slot is one output position of a merge.
//
// The zero Slot is the "unavailable" marker: the pools ran out before this
// position was reached.
type Slot[T any] struct {
	Value     T    `json:"value"`     // merged value; zero when unavailable
	Pool      Pool `json:"pool"`      // pool that supplied Value
	Available bool `json:"available"` // false once every pool is exhausted
}

// Get returns the slot value and whether it is available.
func (s Slot[T]) Get() (T, bool) {
	return s.Value, s.Available
}

// String renders the value, or "unavailable" for the marker.
func (s Slot[T]) String() string {
	if !s.Available {
		return "unavailable"
	}

	return fmt.Sprint(s.Value)
}
