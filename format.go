package jsondiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// FormatString renders diffs as a single report, one message per
// difference, separated by blank lines. An empty diff list yields an empty
// string
func FormatString(diffs []Difference) string {
	buf := &bytes.Buffer{}
	for i, d := range diffs {
		if i > 0 {
			buf.WriteString("\n\n")
		}
		buf.WriteString(d.String())
	}
	return buf.String()
}

// FormatPretty writes a report of diffs to w. if colorTTY is true it paints
// each difference by kind:
// yellow for unequal values
// red for values missing from the left / actual side
// green for values only the left side has
func FormatPretty(w io.Writer, diffs []Difference, colorTTY bool) error {
	kindColor := map[Kind]*color.Color{
		KindNotEqual:   color.New(color.FgYellow),
		KindMissingLhs: color.New(color.FgRed),
		KindMissingRhs: color.New(color.FgGreen),
	}

	for i, d := range diffs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		var err error
		if colorTTY {
			_, err = kindColor[d.Kind()].Fprintln(w, d.String())
		} else {
			_, err = fmt.Fprintln(w, d.String())
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// FormatPrettyStats returns a one-line summary of s, eg:
//
//	3 differences. 1 not equal. 2 missing from lhs.
func FormatPrettyStats(s Stats) string {
	buf := &bytes.Buffer{}

	word := "differences"
	if s.Total() == 1 {
		word = "difference"
	}
	fmt.Fprintf(buf, "%d %s.", s.Total(), word)

	if s.NotEqual > 0 {
		fmt.Fprintf(buf, " %d not equal.", s.NotEqual)
	}
	if s.MissingLhs > 0 {
		fmt.Fprintf(buf, " %d missing from lhs.", s.MissingLhs)
	}
	if s.MissingRhs > 0 {
		fmt.Fprintf(buf, " %d missing from rhs.", s.MissingRhs)
	}

	return buf.String()
}
