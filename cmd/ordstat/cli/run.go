package cli

import (
	"io"
	"slices"

	"github.com/katalvlaran/ordstat/combos"
	"github.com/katalvlaran/ordstat/twolists"

	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField(trace.Component, "cli")

// Run parses CLI arguments and executes an appropriate ordstat command,
// writing results to w
func Run(ordstat Application, args []string, w io.Writer) error {
	cmd, err := ordstat.Parse(args)
	if err != nil {
		return trace.Wrap(err)
	}

	trace.SetDebug(*ordstat.Debug)
	if *ordstat.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	log.Debugf("Executing: %v.", args)

	switch cmd {
	case ordstat.KthCmd.FullCommand():
		return kth(w, *ordstat.Output, *ordstat.KthCmd.A, *ordstat.KthCmd.B, *ordstat.KthCmd.K)
	case ordstat.CombosCmd.FullCommand():
		return kSmallestCombos(w, *ordstat.Output, *ordstat.CombosCmd.List, *ordstat.CombosCmd.K)
	}

	return trace.NotFound("unknown command %v", cmd)
}

func kth(w io.Writer, format string, a, b []int64, k int) error {
	if err := checkSorted("a", a); err != nil {
		return trace.Wrap(err)
	}
	if err := checkSorted("b", b); err != nil {
		return trace.Wrap(err)
	}
	logger := log.WithFields(logrus.Fields{"len(a)": len(a), "len(b)": len(b), "k": k})

	res := kthResult{K: k}
	if v, ok := twolists.KthSmallest(a, b, k); ok {
		logger.WithField("value", v).Debug("Selected.")
		res.Value, res.Defined = &v, true
	} else {
		logger.Debug("Rank is out of range.")
	}

	return trace.Wrap(printKth(w, format, res))
}

func kSmallestCombos(w io.Writer, format string, list []int64, k int) error {
	if err := checkSorted("list", list); err != nil {
		return trace.Wrap(err)
	}
	if err := checkDistinct("list", list); err != nil {
		return trace.Wrap(err)
	}
	if len(list) > maxComboListLen {
		return trace.LimitExceeded("list has %v values, at most %v are supported",
			len(list), maxComboListLen)
	}
	if k < 1 {
		return trace.BadParameter("k must be at least 1, got %v", k)
	}

	slots := combos.KSmallest(list, k)
	log.WithFields(logrus.Fields{
		"len(list)":  len(list),
		"k":          k,
		"candidates": combos.Candidates(len(list)),
		"available":  len(combos.Values(slots)),
	}).Debug("Merged pools.")

	return trace.Wrap(printCombos(w, format, slots))
}

// checkSorted enforces the non-decreasing precondition the selectors
// leave to their callers
func checkSorted(name string, list []int64) error {
	if !slices.IsSorted(list) {
		return trace.BadParameter("list %q must be sorted in non-decreasing order", name)
	}
	return nil
}

// checkDistinct rejects repeated values in a sorted list
func checkDistinct(name string, list []int64) error {
	for i := 1; i < len(list); i++ {
		if list[i] == list[i-1] {
			return trace.BadParameter("list %q must not repeat values, %v appears twice", name, list[i])
		}
	}
	return nil
}
