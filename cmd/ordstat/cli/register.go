package cli

import (
	"fmt"

	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	// sampleA and sampleB are the default inputs of the kth command.
	sampleA = "3,4,10,23,45,55,56,58,60,65"
	sampleB = "3,3,3,15,16,28,50,70,71,72"
	// sampleK is the default rank of the kth command.
	sampleK = "13"

	// sampleList is the default input of the combos command.
	sampleList = "3,4,5,15,19,20,25"
	// sampleCount requests every candidate of sampleList (7 + 21 + 35).
	sampleCount = "63"

	// maxComboListLen caps the combos input; the triples pool grows as n³/6.
	maxComboListLen = 500
)

// RegisterCommands registers all ordstat flags, arguments and subcommands
func RegisterCommands(app *kingpin.Application) Application {
	ordstat := Application{
		Application: app,
	}

	ordstat.Debug = app.Flag("debug", "Enable debug mode.").Bool()
	ordstat.Output = app.Flag("output", fmt.Sprintf("Output format: %v.", outputFormats)).
		Short('o').Default(formatText).Enum(outputFormats...)

	ordstat.KthCmd.CmdClause = app.Command("kth", "Find the k-th smallest value across two sorted lists.")
	ordstat.KthCmd.A = Int64List(ordstat.KthCmd.Flag("a", "First sorted list, comma-separated. May be repeated.").Default(sampleA))
	ordstat.KthCmd.B = Int64List(ordstat.KthCmd.Flag("b", "Second sorted list, comma-separated. May be repeated.").Default(sampleB))
	ordstat.KthCmd.K = ordstat.KthCmd.Flag("k", "Rank to select, starting from 1.").Default(sampleK).Int()

	ordstat.CombosCmd.CmdClause = app.Command("combos", "List the k smallest elements, pair sums and triple sums of a sorted list.")
	ordstat.CombosCmd.List = Int64List(ordstat.CombosCmd.Flag("list", "Sorted list of distinct values, comma-separated. May be repeated.").Default(sampleList))
	ordstat.CombosCmd.K = ordstat.CombosCmd.Flag("k", "Number of values to emit.").Default(sampleCount).Int()

	return ordstat
}
