// File: doc.go
// Title: Package Documentation for slicex
// Description: Package slicex provides the generic slice operations the
//              go-utils library builds its aggregations from.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation with fold and ordering helpers

// Package slicex provides generic slice helpers for go-utils.
//
// The statistics aggregator is built on these primitives: Reduce folds a
// sequence through a binary operation, Min and Max select by natural
// ordering. All functions are pure and never mutate their input.
package slicex
