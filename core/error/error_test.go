// File: error_test.go
// Title: Unit Tests for the Core Error Type
// Description: Tests for error construction, wrapping, code and severity
//              handling, and the inspection helpers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial test implementation for the error type

package error

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something failed")

	if err.Error() != "something failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "something failed")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %s, want %s", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %s, want %s", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() is zero")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("unknown shape type: %s", "triangle")

	if err.Error() != "unknown shape type: triangle" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWithCode(t *testing.T) {
	err := New("division by zero").WithCode(CodeDivisionByZero)

	if err.Code() != CodeDivisionByZero {
		t.Errorf("Code() = %s, want %s", err.Code(), CodeDivisionByZero)
	}

	// Severity follows the code when not explicitly set
	if err.Severity() != SeverityHigh {
		t.Errorf("Severity() = %s, want %s", err.Severity(), SeverityHigh)
	}
}

func TestWithSeverityExplicit(t *testing.T) {
	err := New("noise").WithSeverity(SeverityLow).WithCode(CodeDivisionByZero)

	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %s, want explicit %s", err.Severity(), SeverityLow)
	}
}

func TestWithOperationAndDetails(t *testing.T) {
	err := New("factorial not defined for negative numbers").
		WithCode(CodeNegativeFactorial).
		WithOperation("mathx.Factorial").
		WithDetail("n", -1)

	if err.Operation() != "mathx.Factorial" {
		t.Errorf("Operation() = %q", err.Operation())
	}

	details := err.Details()
	if details["n"] != -1 {
		t.Errorf("Details()[n] = %v, want -1", details["n"])
	}

	// Details returns a copy, mutations must not leak back
	details["n"] = 99
	if err.Details()["n"] != -1 {
		t.Error("Details() exposed internal state")
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("file missing")
	err := Wrap(cause, "cannot load config")

	if err.Error() != "cannot load config: file missing" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is failed to find the cause")
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "ignored"); err != nil {
		t.Errorf("Wrap(nil, ...) = %v, want nil", err)
	}
}

func TestWrapPreservesCode(t *testing.T) {
	inner := New("division by zero").WithCode(CodeDivisionByZero)
	outer := Wrap(inner, "statistics failed")

	if outer.Code() != CodeDivisionByZero {
		t.Errorf("Code() = %s, want preserved %s", outer.Code(), CodeDivisionByZero)
	}
	if !HasCode(outer, CodeDivisionByZero) {
		t.Error("HasCode failed on wrapped error")
	}
}

func TestRootCause(t *testing.T) {
	root := fmt.Errorf("root")
	middle := Wrap(root, "middle")
	top := Wrap(middle, "top")

	if top.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", top.RootCause(), root)
	}
}

func TestString(t *testing.T) {
	err := New("unknown shape type: triangle").
		WithCode(CodeUnknownShapeType).
		WithOperation("geox.CreateShape")

	s := err.String()
	for _, want := range []string{
		"Error: unknown shape type: triangle",
		"Code: GEOX_UNKNOWN_SHAPE_TYPE",
		"Operation: geox.CreateShape",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestInspectionHelpersOnForeignError(t *testing.T) {
	foreign := fmt.Errorf("plain")

	if HasCode(foreign, CodeDivisionByZero) {
		t.Error("HasCode(foreign) = true")
	}
	if GetCode(foreign) != CodeUnknown {
		t.Errorf("GetCode(foreign) = %s, want %s", GetCode(foreign), CodeUnknown)
	}
	if GetSeverity(foreign) != SeverityMedium {
		t.Errorf("GetSeverity(foreign) = %s, want %s", GetSeverity(foreign), SeverityMedium)
	}
}
