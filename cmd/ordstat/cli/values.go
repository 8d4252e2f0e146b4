package cli

import (
	"strconv"
	"strings"

	"github.com/gravitational/trace"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Int64List binds a comma-separated integer list to the given flag.
// Repeating the flag appends to the list; an empty value adds nothing.
func Int64List(s kingpin.Settings) *[]int64 {
	target := new([]int64)
	s.SetValue((*int64List)(target))
	return target
}

type int64List []int64

// Set parses one comma-separated chunk and appends it.
func (l *int64List) Set(v string) error {
	for _, field := range strings.Split(v, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return trace.BadParameter("invalid integer %q", field)
		}
		*l = append(*l, n)
	}
	return nil
}

func (l *int64List) String() string {
	fields := make([]string, 0, len(*l))
	for _, n := range *l {
		fields = append(fields, strconv.FormatInt(n, 10))
	}
	return strings.Join(fields, ",")
}

// IsCumulative allows the flag to be repeated.
func (l *int64List) IsCumulative() bool {
	return true
}
