// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for error classification and the
//              mapping from error codes to their default severities.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: cosmetic issues, missing optional configuration
	SeverityLow Severity = iota

	// SeverityMedium indicates an error caused by invalid caller input
	// Examples: negative factorial argument, unknown shape type
	SeverityMedium

	// SeverityHigh indicates a serious error in a computation path
	// Examples: division by zero reaching the arithmetic engine
	SeverityHigh

	// SeverityCritical indicates an error that makes the library unusable
	// Examples: corrupted configuration state
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeDivisionByZero, CodeInternal:
		return SeverityHigh

	case CodeNegativeFactorial, CodeUnknownShapeType,
		CodeAreaNotImplemented, CodeInvalidInput, CodeValidationFailed:
		return SeverityMedium

	case CodeConfigError, CodeMissingConfig:
		return SeverityMedium

	default:
		return SeverityMedium
	}
}
