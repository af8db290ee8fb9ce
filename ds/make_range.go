package ds

import (
	"golang.org/x/exp/constraints"
)

// MakeRange returns start, start+step, ... up to but not including end.
// A non-positive step yields an empty slice.
func MakeRange[T constraints.Integer](start, end, step T) []T {
	if step <= 0 || end <= start {
		return []T{}
	}
	sequence := make([]T, 0, int((end-start-1)/step)+1)
	for i := start; i < end; i += step {
		sequence = append(sequence, i)
	}
	return sequence
}
