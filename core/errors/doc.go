// File: doc.go
// Title: Package Documentation for errors
// Description: Package errors provides standardized error construction
//              helpers on top of core/error so that every go-utils package
//              raises failures with uniform codes, messages, and details.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation of error standardization

// Package errors standardizes error construction across go-utils.
//
// Domain packages never call core/error directly; they go through the
// module-scoped convenience constructors in this package:
//
//	return 0, errors.MathxDivisionByZero("divide")
//	return nil, errors.GeoxUnknownShapeType(shapeType)
//
// The ErrorBuilder underneath ties together module, operation, message,
// code, severity, and details in a single fluent chain.
package errors
