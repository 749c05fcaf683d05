package motion

import "math"

// Range is an inclusive [Min, Max] interval used to constrain a position.
// The zero value is the empty range pinned at 0; use [Unbounded] for a
// range that never constrains.
type Range struct {
	Min float64
	Max float64
}

// Unbounded returns a range spanning all representable values.
func Unbounded() Range {
	return Range{Min: -math.MaxFloat64, Max: math.MaxFloat64}
}

// Clamp constrains v to the range.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}
