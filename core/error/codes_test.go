// File: codes_test.go
// Title: Unit Tests for Error Codes
// Description: Tests for code string conversion and validity checks.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial test implementation for error codes

package error

import (
	"testing"
)

func TestCodeString(t *testing.T) {
	if CodeDivisionByZero.String() != "MATHX_DIVISION_BY_ZERO" {
		t.Errorf("CodeDivisionByZero.String() = %q", CodeDivisionByZero.String())
	}
	if CodeUnknownShapeType.String() != "GEOX_UNKNOWN_SHAPE_TYPE" {
		t.Errorf("CodeUnknownShapeType.String() = %q", CodeUnknownShapeType.String())
	}
}

func TestCodeIsValid(t *testing.T) {
	valid := []Code{
		CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeDivisionByZero, CodeNegativeFactorial,
		CodeUnknownShapeType, CodeAreaNotImplemented,
		CodeConfigError, CodeMissingConfig, CodeValidationFailed,
	}
	for _, code := range valid {
		if !code.IsValid() {
			t.Errorf("Code(%s).IsValid() = false, want true", code)
		}
	}

	if Code("MADE_UP").IsValid() {
		t.Error(`Code("MADE_UP").IsValid() = true, want false`)
	}
}
