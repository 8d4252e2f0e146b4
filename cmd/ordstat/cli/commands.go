package cli

import "gopkg.in/alecthomas/kingpin.v2"

// Application holds the registered flags and subcommands.
type Application struct {
	*kingpin.Application
	// Debug enables debug logging and trace debug mode
	Debug *bool
	// Output selects the output format
	Output *string
	// KthCmd selects the k-th smallest value across two sorted lists
	KthCmd KthCmd
	// CombosCmd lists the k smallest singles, pair sums and triple sums
	CombosCmd CombosCmd
}

// KthCmd selects the k-th smallest value across two sorted lists
type KthCmd struct {
	*kingpin.CmdClause
	// A is the first sorted list
	A *[]int64
	// B is the second sorted list
	B *[]int64
	// K is the 1-based rank to select
	K *int
}

// CombosCmd lists the k smallest singles, pair sums and triple sums of a list
type CombosCmd struct {
	*kingpin.CmdClause
	// List is the sorted, distinct-valued input list
	List *[]int64
	// K is the number of values to emit
	K *int
}
