package jsondiff

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// number is the normalized form of every numeric value Diff accepts. lit
// holds the exact source representation, isFloat records whether the source
// was written as a floating point value. Keeping both lets strict numeric
// mode tell 1 & 1.0 apart the way a JSON decoder saw them
type number struct {
	lit     json.Number
	isFloat bool
}

// asNumber normalizes v into a number, reporting false when v is not a
// numeric type. json.Number literals are classified by spelling: a decimal
// point or exponent makes a float, anything else is an integer
func asNumber(v interface{}) (number, bool) {
	switch n := v.(type) {
	case json.Number:
		return number{lit: n, isFloat: strings.ContainsAny(string(n), ".eE")}, true
	case float64:
		return number{lit: json.Number(strconv.FormatFloat(n, 'g', -1, 64)), isFloat: true}, true
	case float32:
		return number{lit: json.Number(strconv.FormatFloat(float64(n), 'g', -1, 32)), isFloat: true}, true
	case int:
		return number{lit: json.Number(strconv.FormatInt(int64(n), 10))}, true
	case int32:
		return number{lit: json.Number(strconv.FormatInt(int64(n), 10))}, true
	case int64:
		return number{lit: json.Number(strconv.FormatInt(n, 10))}, true
	case uint:
		return number{lit: json.Number(strconv.FormatUint(uint64(n), 10))}, true
	case uint32:
		return number{lit: json.Number(strconv.FormatUint(uint64(n), 10))}, true
	case uint64:
		return number{lit: json.Number(strconv.FormatUint(n, 10))}, true
	}
	return number{}, false
}

// eq reports exact value & representation equality: an integer never equals
// a float, integers compare numerically, floats compare bit-for-bit
func (n number) eq(o number) bool {
	if n.isFloat != o.isFloat {
		return false
	}
	if n.lit == o.lit {
		return true
	}
	if n.isFloat {
		a, aerr := n.lit.Float64()
		b, berr := o.lit.Float64()
		return aerr == nil && berr == nil && a == b
	}
	a, aerr := n.lit.Int64()
	b, berr := o.lit.Int64()
	return aerr == nil && berr == nil && a == b
}

// float64 converts n to a 64-bit float. Conversion fails for literals the
// float64 range cannot hold, callers treat that as "not interchangeable as
// floats" rather than an error
func (n number) float64() (float64, bool) {
	f, err := n.lit.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

// approxUlps is the number of adjacent float64 representations still
// considered equal under epsilon comparison, alongside the absolute margin
const approxUlps = 4

// approxEq reports whether a & b are equal within an absolute margin of eps
// or within approxUlps representable float64 values of one another. The
// combined absolute + relative margin matches conventional approximate
// float equality
func approxEq(a, b, eps float64) bool {
	if a == b {
		return true
	}
	if math.Abs(a-b) <= eps {
		return true
	}
	return ulpsDiff(a, b) <= approxUlps
}

// ulpsDiff counts the representable float64 values between a & b
func ulpsDiff(a, b float64) int64 {
	d := ulps(a) - ulps(b)
	if d < 0 {
		return -d
	}
	return d
}

// ulps maps a float64 onto an integer scale where adjacent representable
// floats are adjacent integers, negatives mirrored below zero
func ulps(f float64) int64 {
	u := math.Float64bits(f)
	if u&(1<<63) != 0 {
		return -int64(u &^ (1 << 63))
	}
	return int64(u)
}
