// File: stringx.go
// Title: String Utility Functions
// Description: Implements blank-string detection and defaulting helpers used
//              by configuration loading and CLI flag handling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation with blank-string helpers

package stringx

import (
	"unicode"
)

// IsBlank checks if a string is empty or contains only whitespace
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank checks if a string contains at least one non-whitespace character
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// DefaultIfBlank returns the fallback value when s is blank
func DefaultIfBlank(s, fallback string) string {
	if IsBlank(s) {
		return fallback
	}
	return s
}
