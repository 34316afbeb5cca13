package jsondiff

import (
	"errors"
	"fmt"
	"sort"
)

// Diff walks left & right in lock-step and returns every located
// disagreement between them under cfg. The result is ordered left-to-right,
// depth-first, matching the traversal, and is stable across runs on the same
// input. An empty result means the documents match.
//
// Values must be shaped like unmarshaled JSON: nil, bool, string, a numeric
// type (json.Number keeps the integer/float distinction that strict numeric
// mode relies on), []interface{} or map[string]interface{}. Any other type
// panics.
//
// Dispatch is on the left value's kind, a type mismatch between the sides is
// ordinary diff output, not an error
func Diff(left, right interface{}, cfg Config) []Difference {
	d := &differ{cfg: cfg}
	d.diff(left, right, Path{})
	return d.acc
}

// Equal reports whether Diff would find no differences between left & right
// under cfg
func Equal(left, right interface{}, cfg Config) bool {
	return len(Diff(left, right, cfg)) == 0
}

// Compare diffs left against right & describes every difference found in a
// single error, nil when the documents match under cfg
func Compare(left, right interface{}, cfg Config) error {
	diffs := Diff(left, right, cfg)
	if len(diffs) == 0 {
		return nil
	}
	return errors.New(FormatString(diffs))
}

// differ carries the configuration & accumulates output while recursing
// through both trees
type differ struct {
	cfg Config
	acc []Difference
}

func (d *differ) diff(lhs, rhs interface{}, path Path) {
	switch l := lhs.(type) {
	case nil:
		if rhs != nil {
			d.record(path, lhs, rhs)
		}
	case bool:
		if r, ok := rhs.(bool); !ok || r != l {
			d.record(path, lhs, rhs)
		}
	case string:
		if r, ok := rhs.(string); !ok || r != l {
			d.record(path, lhs, rhs)
		}
	case []interface{}:
		d.diffArray(l, rhs, path)
	case map[string]interface{}:
		d.diffObject(l, rhs, path)
	default:
		ln, ok := asNumber(lhs)
		if !ok {
			panic(fmt.Sprintf("jsondiff: unsupported value type %T", lhs))
		}
		d.diffNumber(ln, lhs, rhs, path)
	}
}

func (d *differ) diffNumber(ln number, lhs, rhs interface{}, path Path) {
	rn, ok := asNumber(rhs)
	if !ok {
		d.record(path, lhs, rhs)
		return
	}

	var equal bool
	if d.cfg.NumericMode == NumericAssumeFloat {
		lf, lok := ln.float64()
		rf, rok := rn.float64()
		if lok && rok {
			equal = d.eqFloats(lf, rf)
		} else {
			// at least one side has no float form, fall back to exact
			// representation equality
			equal = ln.eq(rn)
		}
	} else {
		if ln.isFloat && rn.isFloat {
			lf, lok := ln.float64()
			rf, rok := rn.float64()
			if lok && rok {
				equal = d.eqFloats(lf, rf)
			} else {
				equal = ln.eq(rn)
			}
		} else {
			equal = ln.eq(rn)
		}
	}

	if !equal {
		d.record(path, lhs, rhs)
	}
}

func (d *differ) eqFloats(lhs, rhs float64) bool {
	if d.cfg.FloatCompareMode == FloatEpsilon {
		return approxEq(lhs, rhs, d.cfg.Epsilon)
	}
	return lhs == rhs
}

func (d *differ) diffArray(lhs []interface{}, rhs interface{}, path Path) {
	if d.cfg.ArraySortingMode == SortingIgnore {
		d.containArray(lhs, rhs, path)
		return
	}

	rarr, ok := rhs.([]interface{})
	if !ok {
		d.record(path, lhs, rhs)
		return
	}

	switch d.cfg.CompareMode {
	case Inclusive:
		for i, relem := range rarr {
			p := path.Append(Idx(i))
			if i < len(lhs) {
				d.diff(lhs[i], relem, p)
			} else {
				d.recordMissingLhs(p, rhs)
			}
		}
	case Strict:
		max := len(lhs)
		if len(rarr) > max {
			max = len(rarr)
		}
		for i := 0; i < max; i++ {
			p := path.Append(Idx(i))
			switch {
			case i < len(lhs) && i < len(rarr):
				d.diff(lhs[i], rarr[i], p)
			case i < len(rarr):
				d.recordMissingLhs(p, rarr[i])
			case i < len(lhs):
				d.recordMissingRhs(p, lhs[i])
			default:
				panic("jsondiff: index present in neither array")
			}
		}
	}
}

// containArray realizes order-ignoring multiset containment: every value on
// the right, counting duplicates, must occur at least as often on the left.
// Each candidate pairing runs the full comparator, so this is O(n²) in the
// array sizes
func (d *differ) containArray(lhs []interface{}, rhs interface{}, path Path) {
	rarr, ok := rhs.([]interface{})
	if !ok {
		d.record(path, lhs, rhs)
		return
	}

	if d.cfg.CompareMode == Strict && len(lhs) != len(rarr) {
		d.record(path, lhs, rhs)
		return
	}

	for _, relem := range rarr {
		// self-multiplicity of the value within the right-hand array
		need := 0
		for _, other := range rarr {
			if Equal(relem, other, d.cfg) {
				need++
			}
		}
		have := 0
		for _, lelem := range lhs {
			if Equal(lelem, relem, d.cfg) {
				have++
			}
		}
		if have < need {
			d.record(path, lhs, rhs)
			return
		}
	}
}

func (d *differ) diffObject(lhs map[string]interface{}, rhs interface{}, path Path) {
	robj, ok := rhs.(map[string]interface{})
	if !ok {
		d.record(path, lhs, rhs)
		return
	}

	switch d.cfg.CompareMode {
	case Inclusive:
		// gotta sort keys for deterministic output order
		for _, key := range sortedKeys(robj) {
			p := path.Append(Field(key))
			if lelem, ok := lhs[key]; ok {
				d.diff(lelem, robj[key], p)
			} else {
				d.recordMissingLhs(p, rhs)
			}
		}
	case Strict:
		for _, key := range unionKeys(lhs, robj) {
			p := path.Append(Field(key))
			lelem, lok := lhs[key]
			relem, rok := robj[key]
			switch {
			case lok && rok:
				d.diff(lelem, relem, p)
			case rok:
				d.recordMissingLhs(p, relem)
			case lok:
				d.recordMissingRhs(p, lelem)
			default:
				panic("jsondiff: key present in neither object")
			}
		}
	}
}

func (d *differ) record(path Path, lhs, rhs interface{}) {
	d.acc = append(d.acc, Difference{
		path:   path,
		lhs:    lhs,
		rhs:    rhs,
		hasLhs: true,
		hasRhs: true,
		config: d.cfg,
	})
}

func (d *differ) recordMissingLhs(path Path, rhs interface{}) {
	d.acc = append(d.acc, Difference{
		path:   path,
		rhs:    rhs,
		hasRhs: true,
		config: d.cfg,
	})
}

func (d *differ) recordMissingRhs(path Path, lhs interface{}) {
	d.acc = append(d.acc, Difference{
		path:   path,
		lhs:    lhs,
		hasLhs: true,
		config: d.cfg,
	})
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func unionKeys(a, b map[string]interface{}) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := seen[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
