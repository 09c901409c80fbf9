// File: slicex.go
// Title: Generic Slice Operations
// Description: Implements generic fold, ordering, and membership helpers
//              over slices. All operations are pure functions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation with fold and ordering helpers

package slicex

import (
	"cmp"
)

// Reduce folds the slice into a single value using the reducer function,
// starting from the initial value and proceeding left to right
func Reduce[T, R any](slice []T, initial R, reducer func(R, T) R) R {
	result := initial
	for _, element := range slice {
		result = reducer(result, element)
	}
	return result
}

// Min returns the smallest element by natural ordering.
// The second return value is false for an empty slice.
func Min[T cmp.Ordered](slice []T) (T, bool) {
	if len(slice) == 0 {
		var zero T
		return zero, false
	}

	min := slice[0]
	for _, element := range slice[1:] {
		if element < min {
			min = element
		}
	}
	return min, true
}

// Max returns the largest element by natural ordering.
// The second return value is false for an empty slice.
func Max[T cmp.Ordered](slice []T) (T, bool) {
	if len(slice) == 0 {
		var zero T
		return zero, false
	}

	max := slice[0]
	for _, element := range slice[1:] {
		if element > max {
			max = element
		}
	}
	return max, true
}

// IsEmpty checks if the slice has no elements
func IsEmpty[T any](slice []T) bool {
	return len(slice) == 0
}

// Contains checks if the slice contains the given element
func Contains[T comparable](slice []T, element T) bool {
	for _, candidate := range slice {
		if candidate == element {
			return true
		}
	}
	return false
}
