// Package jsondiff computes structural differences between two tree-shaped
// JSON documents according to a configurable comparison policy, producing a
// list of located discrepancies suitable for human-readable reporting &
// assertion tooling.
//
// Instead of operating on encoded JSON directly, jsondiff operates on the go
// types created by unmarshaling: map[string]interface{}, []interface{} and
// the scalars string, bool, nil and the numeric types. Decoding with
// json.Decoder.UseNumber() preserves the integer / float distinction that
// strict numeric comparison relies on; plain json.Unmarshal (every number a
// float64) still works but collapses that distinction.
//
// Comparison behavior is controlled entirely by a Config value: inclusive
// (subset) vs strict equality, positional vs order-ignoring array
// comparison, exact vs assume-float numerics, and exact vs epsilon-tolerant
// float equality. Diff itself is a pure function with no global state.
//
// Two costs are worth knowing about. Recursion depth equals the nesting
// depth of the inputs, so pathologically nested documents can exhaust the
// call stack. And order-ignoring array comparison runs the full comparator
// for every candidate element pairing, which is quadratic in the array
// sizes.
package jsondiff
