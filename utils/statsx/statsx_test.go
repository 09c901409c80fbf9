// File: statsx_test.go
// Title: Unit Tests for Statistics Aggregation
// Description: Tests for the statistics fold including the empty-sequence
//              policy and the zero-safe mean division.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test implementation for statistics

package statsx

import (
	"testing"
)

func TestStatistics(t *testing.T) {
	tests := []struct {
		name     string
		numbers  []int
		wantSum  int
		wantMean float64
		wantMin  int
		wantMax  int
	}{
		{"one to five", []int{1, 2, 3, 4, 5}, 15, 3.0, 1, 5},
		{"single element", []int{42}, 42, 42.0, 42, 42},
		{"negatives", []int{-5, 0, 5}, 0, 0.0, -5, 5},
		{"unordered", []int{9, 1, 5}, 15, 5.0, 1, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Statistics(tt.numbers)

			if got.Sum != tt.wantSum {
				t.Errorf("Statistics(%v).Sum = %d, want %d", tt.numbers, got.Sum, tt.wantSum)
			}
			if got.Mean != tt.wantMean {
				t.Errorf("Statistics(%v).Mean = %v, want %v", tt.numbers, got.Mean, tt.wantMean)
			}
			if got.Min != tt.wantMin {
				t.Errorf("Statistics(%v).Min = %d, want %d", tt.numbers, got.Min, tt.wantMin)
			}
			if got.Max != tt.wantMax {
				t.Errorf("Statistics(%v).Max = %d, want %d", tt.numbers, got.Max, tt.wantMax)
			}
		})
	}
}

// An empty sequence is a policy choice, not an error condition
func TestStatisticsEmpty(t *testing.T) {
	got := Statistics([]int{})

	want := Summary[int]{Sum: 0, Mean: 0, Min: 0, Max: 0}
	if got != want {
		t.Errorf("Statistics([]) = %+v, want %+v", got, want)
	}
}

func TestStatisticsNil(t *testing.T) {
	got := Statistics[int](nil)

	want := Summary[int]{}
	if got != want {
		t.Errorf("Statistics(nil) = %+v, want %+v", got, want)
	}
}

func TestStatisticsFloat(t *testing.T) {
	got := Statistics([]float64{1.5, 2.5, 3.5})

	if got.Sum != 7.5 {
		t.Errorf("Sum = %v, want 7.5", got.Sum)
	}
	if got.Mean != 2.5 {
		t.Errorf("Mean = %v, want 2.5", got.Mean)
	}
	if got.Min != 1.5 || got.Max != 3.5 {
		t.Errorf("Min/Max = %v/%v, want 1.5/3.5", got.Min, got.Max)
	}
}

func TestDivideZeroSafe(t *testing.T) {
	if got := divide(10, 0); got != 0 {
		t.Errorf("divide(10, 0) = %v, want 0", got)
	}
	if got := divide(10, 4); got != 2.5 {
		t.Errorf("divide(10, 4) = %v, want 2.5", got)
	}
}
