// File: doc.go
// Title: Package Documentation for statsx
// Description: Package statsx folds numeric sequences into summary
//              statistics using the arithmetic engine and the generic slice
//              helpers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation of the statistics aggregator

// Package statsx provides statistics aggregation for go-utils.
//
// Statistics folds a sequence into sum, mean, minimum, and maximum. An
// empty sequence is not an error; it yields the zero Summary. The sum is
// the sequential left-to-right fold of mathx.Add, so integer results are
// exact and floating-point results match the sequential summation order.
package statsx
