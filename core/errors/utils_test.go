// File: utils_test.go
// Title: Unit Tests for Error Construction Utilities
// Description: Tests that the convenience constructors produce errors with
//              the expected codes, operations, and details.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial test implementation for error utilities

package errors

import (
	"fmt"
	"testing"

	apperror "github.com/msto63/go-utils/core/error"
)

func TestMathxDivisionByZero(t *testing.T) {
	err := MathxDivisionByZero("Divide")

	if err.Code() != apperror.CodeDivisionByZero {
		t.Errorf("Code() = %s, want %s", err.Code(), apperror.CodeDivisionByZero)
	}
	if err.Severity() != apperror.SeverityHigh {
		t.Errorf("Severity() = %s, want %s", err.Severity(), apperror.SeverityHigh)
	}
	if err.Operation() != "mathx.Divide" {
		t.Errorf("Operation() = %q, want %q", err.Operation(), "mathx.Divide")
	}
	if err.Error() != "division by zero" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestMathxNegativeFactorial(t *testing.T) {
	err := MathxNegativeFactorial("Factorial", -3)

	if err.Code() != apperror.CodeNegativeFactorial {
		t.Errorf("Code() = %s, want %s", err.Code(), apperror.CodeNegativeFactorial)
	}
	if err.Details()["n"] != -3 {
		t.Errorf("Details()[n] = %v, want -3", err.Details()["n"])
	}
}

func TestGeoxUnknownShapeType(t *testing.T) {
	err := GeoxUnknownShapeType("triangle")

	if err.Code() != apperror.CodeUnknownShapeType {
		t.Errorf("Code() = %s, want %s", err.Code(), apperror.CodeUnknownShapeType)
	}
	if err.Error() != "unknown shape type: triangle" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Details()["shape_type"] != "triangle" {
		t.Errorf("Details()[shape_type] = %v", err.Details()["shape_type"])
	}
}

func TestGeoxAreaNotImplemented(t *testing.T) {
	err := GeoxAreaNotImplemented("Shape")

	if err.Code() != apperror.CodeAreaNotImplemented {
		t.Errorf("Code() = %s, want %s", err.Code(), apperror.CodeAreaNotImplemented)
	}
	if err.Details()["shape"] != "Shape" {
		t.Errorf("Details()[shape] = %v", err.Details()["shape"])
	}
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("cli", "analyze", "abc", "integer")

	if err.Code() != apperror.CodeInvalidInput {
		t.Errorf("Code() = %s, want %s", err.Code(), apperror.CodeInvalidInput)
	}
	if err.Operation() != "cli.analyze" {
		t.Errorf("Operation() = %q", err.Operation())
	}
	if err.Details()["input"] != "abc" || err.Details()["expected"] != "integer" {
		t.Errorf("Details() = %v", err.Details())
	}
}

func TestConfigError(t *testing.T) {
	cause := fmt.Errorf("no such file")
	err := ConfigError("Load", "cannot read config file", cause)

	if err.Code() != apperror.CodeConfigError {
		t.Errorf("Code() = %s, want %s", err.Code(), apperror.CodeConfigError)
	}
	if err.Error() != "cannot read config file: no such file" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestErrorBuilderDefaults(t *testing.T) {
	err := NewErrorBuilder(ModuleMathx).Build()

	if err.Error() != "operation failed in mathx" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Details()["module"] != ModuleMathx {
		t.Errorf("Details()[module] = %v", err.Details()["module"])
	}
}
