// File: standards.go
// Title: Error Standards for go-utils
// Description: Provides the module identifiers and the ErrorBuilder used to
//              construct standardized errors across all go-utils packages.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation for error standardization

package errors

import (
	"fmt"

	apperror "github.com/msto63/go-utils/core/error"
)

// Module identifiers for error categorization
const (
	ModuleMathx  = "mathx"
	ModuleStatsx = "statsx"
	ModuleGeox   = "geox"
	ModuleSlicex = "slicex"
	ModuleConfig = "config"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  apperror.Severity
	code      apperror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: apperror.SeverityMedium,
		code:     apperror.CodeUnknown,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a key-value detail to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity apperror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code apperror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build constructs the final error
func (eb *ErrorBuilder) Build() *apperror.Error {
	message := eb.message
	if message == "" {
		message = fmt.Sprintf("operation failed in %s", eb.module)
	}

	var err *apperror.Error
	if eb.cause != nil {
		err = apperror.Wrap(eb.cause, message)
	} else {
		err = apperror.New(message)
	}

	err = err.
		WithCode(eb.code).
		WithSeverity(eb.severity).
		WithDetail("module", eb.module)

	if eb.operation != "" {
		err = err.WithOperation(fmt.Sprintf("%s.%s", eb.module, eb.operation))
	}

	for k, v := range eb.details {
		err = err.WithDetail(k, v)
	}

	return err
}
