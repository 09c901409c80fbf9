// File: codes.go
// Title: Error Code Definitions
// Description: Defines the standardized error codes used for error
//              classification across the go-utils library. The code values
//              are stable strings that callers and tests may pin against.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for the go-utils library
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Arithmetic engine
	CodeDivisionByZero    Code = "MATHX_DIVISION_BY_ZERO"
	CodeNegativeFactorial Code = "MATHX_NEGATIVE_FACTORIAL"

	// Shape model
	CodeUnknownShapeType   Code = "GEOX_UNKNOWN_SHAPE_TYPE"
	CodeAreaNotImplemented Code = "GEOX_AREA_NOT_IMPLEMENTED"

	// Configuration
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeMissingConfig    Code = "MISSING_CONFIG"
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the code is a known code of the library
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeDivisionByZero, CodeNegativeFactorial,
		CodeUnknownShapeType, CodeAreaNotImplemented,
		CodeConfigError, CodeMissingConfig, CodeValidationFailed:
		return true
	default:
		return false
	}
}
