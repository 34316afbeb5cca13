package jsondiff

// Stats tallies the differences found by a comparison, bucketed by kind
type Stats struct {
	NotEqual   int `json:"notEqual,omitempty"`   // both sides present & unequal
	MissingLhs int `json:"missingLhs,omitempty"` // value absent from the left side
	MissingRhs int `json:"missingRhs,omitempty"` // value absent from the right side
}

// DiffStats counts diffs by kind
func DiffStats(diffs []Difference) Stats {
	var s Stats
	for _, d := range diffs {
		switch d.Kind() {
		case KindNotEqual:
			s.NotEqual++
		case KindMissingLhs:
			s.MissingLhs++
		case KindMissingRhs:
			s.MissingRhs++
		}
	}
	return s
}

// Total returns the number of differences counted
func (s Stats) Total() int {
	return s.NotEqual + s.MissingLhs + s.MissingRhs
}
