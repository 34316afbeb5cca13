package jsondiff

// CompareMode determines how much of the two documents must line up for a
// comparison to come back clean
type CompareMode int

const (
	// Inclusive treats the right-hand document as the expected subset: only
	// keys & indexes present on the right are checked, anything extra on the
	// left is ignored
	Inclusive CompareMode = iota
	// Strict requires both documents to match exactly, every key & index
	// present on either side is checked
	Strict
)

func (m CompareMode) String() string {
	if m == Strict {
		return "strict"
	}
	return "inclusive"
}

// ArraySortingMode determines whether element order matters when comparing
// two arrays
type ArraySortingMode int

const (
	// SortingExact compares arrays position by position
	SortingExact ArraySortingMode = iota
	// SortingIgnore compares arrays as multisets: every value on the right,
	// counting duplicates, must occur at least as often on the left
	SortingIgnore
)

func (m ArraySortingMode) String() string {
	if m == SortingIgnore {
		return "ignore"
	}
	return "exact"
}

// NumericMode determines how numbers relate to one another
type NumericMode int

const (
	// NumericStrict compares numbers by their exact value & representation:
	// 1 and 1.0 are different
	NumericStrict NumericMode = iota
	// NumericAssumeFloat converts every number to a 64-bit float before
	// comparing, collapsing the integer / float distinction
	NumericAssumeFloat
)

func (m NumericMode) String() string {
	if m == NumericAssumeFloat {
		return "assume-float"
	}
	return "strict"
}

// FloatCompareMode determines how two floating point values are judged equal
type FloatCompareMode int

const (
	// FloatExact requires bit-for-bit float equality
	FloatExact FloatCompareMode = iota
	// FloatEpsilon tolerates a margin configured via Config.Epsilon
	FloatEpsilon
)

func (m FloatCompareMode) String() string {
	if m == FloatEpsilon {
		return "epsilon"
	}
	return "exact"
}

// Config bundles the four comparison policies a diff is parameterized by.
// Config is a plain value: it is copied into every recursive call & never
// mutated, there is no process-wide default state
type Config struct {
	CompareMode      CompareMode
	ArraySortingMode ArraySortingMode
	NumericMode      NumericMode
	FloatCompareMode FloatCompareMode
	// Epsilon is the tolerated margin when FloatCompareMode is FloatEpsilon.
	// negative values are not validated, they behave however the underlying
	// float comparison behaves
	Epsilon float64
}

// NewConfig creates a configuration with the given compare mode & the
// defaults for everything else: exact array ordering, strict numerics, exact
// float equality
func NewConfig(mode CompareMode) Config {
	return Config{CompareMode: mode}
}

// WithCompareMode returns a copy of c with the compare mode replaced.
// c itself is unaffected
func (c Config) WithCompareMode(mode CompareMode) Config {
	c.CompareMode = mode
	return c
}

// WithArraySortingMode returns a copy of c with the array sorting mode
// replaced
func (c Config) WithArraySortingMode(mode ArraySortingMode) Config {
	c.ArraySortingMode = mode
	return c
}

// WithNumericMode returns a copy of c with the numeric mode replaced
func (c Config) WithNumericMode(mode NumericMode) Config {
	c.NumericMode = mode
	return c
}

// WithFloatCompareMode returns a copy of c with the float compare mode
// replaced
func (c Config) WithFloatCompareMode(mode FloatCompareMode) Config {
	c.FloatCompareMode = mode
	return c
}

// WithEpsilon returns a copy of c that compares floats with a tolerated
// margin of epsilon
func (c Config) WithEpsilon(epsilon float64) Config {
	c.FloatCompareMode = FloatEpsilon
	c.Epsilon = epsilon
	return c
}
