// File: doc.go
// Title: Package Documentation for error
// Description: Package error provides the structured error type used across
//              all go-utils packages, combining error codes, severities, and
//              contextual details with Go's standard error interface.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation with coded errors

// Package error provides structured errors for the go-utils library.
//
// Every failure the library can produce is a *Error carrying a stable Code,
// a Severity, the operation that raised it, and optional key-value details.
// The type satisfies the standard error interface and supports errors.Is /
// errors.As through Unwrap.
//
// Creating errors:
//
//	err := apperror.New("division by zero").
//	    WithCode(apperror.CodeDivisionByZero).
//	    WithOperation("mathx.Divide").
//	    WithDetail("divisor", 0)
//
// Inspecting errors:
//
//	if apperror.HasCode(err, apperror.CodeDivisionByZero) {
//	    // handle the zero divisor
//	}
//
// Domain packages do not construct errors directly; they go through the
// convenience constructors in core/errors so that codes and messages stay
// uniform across the library.
package error
