// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the small set of string helpers the
//              go-utils library needs beyond the standard strings package.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation with blank-string helpers

// Package stringx provides string helpers for go-utils.
package stringx
