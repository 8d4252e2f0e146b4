package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/ordstat/combos"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/ghodss/yaml"
	"github.com/gravitational/trace"
	"github.com/olekukonko/tablewriter"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var outputFormats = []string{formatText, formatJSON, formatYAML}

// kthResult is the rendered outcome of the kth command
type kthResult struct {
	K       int    `json:"k"`
	Value   *int64 `json:"value,omitempty"`
	Defined bool   `json:"defined"`
}

// PrintError prints the red error message to the console
func PrintError(err error) {
	color.Red("[ERROR]: %v\n", trace.UserMessage(err))
}

func printKth(w io.Writer, format string, res kthResult) error {
	switch format {
	case formatText:
		if !res.Defined {
			fmt.Fprintf(w, "There is no %v smallest value.\n", humanize.Ordinal(res.K))
			return nil
		}
		fmt.Fprintf(w, "%v smallest is %v\n", humanize.Ordinal(res.K), *res.Value)
		return nil
	default:
		return trace.Wrap(encode(w, format, res))
	}
}

func printCombos(w io.Writer, format string, slots []combos.Slot[int64]) error {
	switch format {
	case formatText:
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Rank", "Value", "Pool"})
		var data [][]string
		for i, s := range slots {
			pool := "-"
			if s.Available {
				pool = s.Pool.String()
			}
			data = append(data, []string{strconv.Itoa(i + 1), s.String(), pool})
		}
		table.AppendBulk(data)
		table.Render()
		return nil
	default:
		return trace.Wrap(encode(w, format, slots))
	}
}

func encode(w io.Writer, format string, v interface{}) error {
	var bytes []byte
	var err error
	switch format {
	case formatJSON:
		bytes, err = json.MarshalIndent(v, "", "    ")
	case formatYAML:
		bytes, err = yaml.Marshal(v)
	default:
		return trace.BadParameter("unknown output format %q, supported are: %v",
			format, outputFormats)
	}
	if err != nil {
		return trace.Wrap(err)
	}
	fmt.Fprintln(w, string(bytes))
	return nil
}
