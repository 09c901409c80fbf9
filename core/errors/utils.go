// File: utils.go
// Title: Shared Error Construction Utilities
// Description: Provides the convenience constructors used by the go-utils
//              packages for their failure conditions, keeping codes,
//              messages, and severities uniform across the library.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation of shared error utilities

package errors

import (
	apperror "github.com/msto63/go-utils/core/error"
)

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *apperror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s", module, operation).
		Code(apperror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(apperror.SeverityMedium).
		Build()
}

// ConfigError creates a standardized configuration error
func ConfigError(operation, message string, cause error) *apperror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation(operation).
		Message(message).
		Cause(cause).
		Code(apperror.CodeConfigError).
		Severity(apperror.SeverityMedium).
		Build()
}

// MathxDivisionByZero reports a zero divisor reaching the arithmetic engine
func MathxDivisionByZero(operation string) *apperror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation(operation).
		Message("division by zero").
		Code(apperror.CodeDivisionByZero).
		Severity(apperror.SeverityHigh).
		Build()
}

// MathxNegativeFactorial reports a factorial of a negative number
func MathxNegativeFactorial(operation string, n int) *apperror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation(operation).
		Message("factorial not defined for negative numbers").
		Code(apperror.CodeNegativeFactorial).
		Detail("n", n).
		Severity(apperror.SeverityMedium).
		Build()
}

// GeoxUnknownShapeType reports an unrecognized shape type tag
func GeoxUnknownShapeType(shapeType string) *apperror.Error {
	return NewErrorBuilder(ModuleGeox).
		Operation("CreateShape").
		Messagef("unknown shape type: %s", shapeType).
		Code(apperror.CodeUnknownShapeType).
		Detail("shape_type", shapeType).
		Severity(apperror.SeverityMedium).
		Build()
}

// GeoxAreaNotImplemented reports Area invoked on the unspecialized base shape
func GeoxAreaNotImplemented(name string) *apperror.Error {
	return NewErrorBuilder(ModuleGeox).
		Operation("Area").
		Message("shape variant must implement Area").
		Code(apperror.CodeAreaNotImplemented).
		Detail("shape", name).
		Severity(apperror.SeverityMedium).
		Build()
}
