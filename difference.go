package jsondiff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Kind classifies a Difference by which sides were present
type Kind int

const (
	// KindNotEqual means both sides held a value & the values disagree
	KindNotEqual Kind = iota
	// KindMissingLhs means the right side held a value with no counterpart
	// on the left
	KindMissingLhs
	// KindMissingRhs means the left side held a value with no counterpart
	// on the right. Never produced by inclusive comparisons
	KindMissingRhs
)

func (k Kind) String() string {
	switch k {
	case KindMissingLhs:
		return "missing-lhs"
	case KindMissingRhs:
		return "missing-rhs"
	default:
		return "not-equal"
	}
}

// Difference is a single located disagreement between two documents: the
// path where it occurred, the conflicting values (either side may be
// absent, never both) & the configuration that produced it, kept for
// rendering. Differences are immutable once created
type Difference struct {
	path           Path
	lhs, rhs       interface{}
	hasLhs, hasRhs bool
	config         Config
}

// Path returns the location of the disagreement inside the root document
func (d Difference) Path() Path {
	return d.path
}

// Lhs returns the left-hand value & whether the left side held one. A nil
// value with a true flag is a JSON null, not an absence
func (d Difference) Lhs() (interface{}, bool) {
	return d.lhs, d.hasLhs
}

// Rhs returns the right-hand value & whether the right side held one
func (d Difference) Rhs() (interface{}, bool) {
	return d.rhs, d.hasRhs
}

// Config returns the configuration the comparison ran under
func (d Difference) Config() Config {
	return d.config
}

// Kind classifies the difference by which sides are present
func (d Difference) Kind() Kind {
	switch {
	case d.hasLhs && d.hasRhs:
		return KindNotEqual
	case d.hasRhs:
		return KindMissingLhs
	case d.hasLhs:
		return KindMissingRhs
	default:
		panic("jsondiff: difference with both sides missing")
	}
}

// String renders the difference as a human-readable multi-line message. The
// exact labels, line breaks & indentation are part of the package contract:
//
//	json atoms at path ".a" are not equal:
//	    expected:
//	        2
//	    actual:
//	        1
//
// Inclusive comparisons label the sides expected (right) & actual (left),
// strict comparisons label them lhs & rhs. One-sided differences render as a
// single "is missing from" line
func (d Difference) String() string {
	buf := &bytes.Buffer{}
	inclusive := d.config.CompareMode == Inclusive

	switch d.Kind() {
	case KindNotEqual:
		fmt.Fprintf(buf, "json atoms at path \"%s\" are not equal:\n", d.path)
		if inclusive {
			fmt.Fprintln(buf, "    expected:")
			fmt.Fprintln(buf, indent(prettyJSON(d.rhs), 8))
			fmt.Fprintln(buf, "    actual:")
			fmt.Fprint(buf, indent(prettyJSON(d.lhs), 8))
		} else {
			fmt.Fprintln(buf, "    lhs:")
			fmt.Fprintln(buf, indent(prettyJSON(d.lhs), 8))
			fmt.Fprintln(buf, "    rhs:")
			fmt.Fprint(buf, indent(prettyJSON(d.rhs), 8))
		}
	case KindMissingLhs:
		side := "lhs"
		if inclusive {
			side = "actual"
		}
		fmt.Fprintf(buf, "json atom at path \"%s\" is missing from %s", d.path, side)
	case KindMissingRhs:
		if inclusive {
			panic("jsondiff: inclusive comparison produced a value missing from expected")
		}
		fmt.Fprintf(buf, "json atom at path \"%s\" is missing from rhs", d.path)
	}

	return buf.String()
}

// MarshalJSON encodes the difference in a machine-readable shape for
// tooling. Absent sides are omitted entirely rather than encoded as null,
// since null is a legal value
func (d Difference) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{
		"kind": d.Kind().String(),
		"path": d.path.String(),
	}
	if d.hasLhs {
		out["lhs"] = d.lhs
	}
	if d.hasRhs {
		out["rhs"] = d.rhs
	}
	return json.Marshal(out)
}

// prettyJSON renders v in its canonical two-space indented form. Values
// reaching here came out of a JSON-shaped tree, failure to re-encode one is
// a bug
func prettyJSON(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(fmt.Sprintf("jsondiff: encoding value for display: %v", err))
	}
	return string(data)
}

// indent prefixes every line of s with n spaces
func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
