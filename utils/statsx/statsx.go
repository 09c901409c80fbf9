// File: statsx.go
// Title: Statistics Aggregation
// Description: Implements the Summary record and the Statistics fold over
//              numeric sequences. Sum composes mathx.Add through
//              slicex.Reduce; min/max use natural ordering.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation of the statistics aggregator

package statsx

import (
	"github.com/msto63/go-utils/utils/mathx"
	"github.com/msto63/go-utils/utils/slicex"
)

// Summary holds the aggregated statistics of a numeric sequence
type Summary[T mathx.Number] struct {
	Sum  T       `json:"sum"`
	Mean float64 `json:"mean"`
	Min  T       `json:"min"`
	Max  T       `json:"max"`
}

// Statistics folds the sequence into a Summary.
// An empty sequence returns the zero Summary without error.
func Statistics[T mathx.Number](numbers []T) Summary[T] {
	if slicex.IsEmpty(numbers) {
		return Summary[T]{}
	}

	var zero T
	sum := slicex.Reduce(numbers, zero, mathx.Add[T])

	// Both lookups are on a non-empty slice, the ok results are dropped
	min, _ := slicex.Min(numbers)
	max, _ := slicex.Max(numbers)

	return Summary[T]{
		Sum:  sum,
		Mean: divide(float64(sum), float64(len(numbers))),
		Min:  min,
		Max:  max,
	}
}

// divide is the zero-safe division used for the mean. The zero-count case
// is unreachable behind the empty check above but kept deliberately.
func divide(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
