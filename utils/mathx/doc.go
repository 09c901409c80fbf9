// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides the pure scalar arithmetic operations
//              all other go-utils computation composes from, together with
//              the combinatorics helper built on top of them.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation with scalar operations
// - 2025-03-02 v0.1.1: Added combinatorics helper

// Package mathx provides pure scalar arithmetic for go-utils.
//
// Every operation is a pure function over its inputs; nothing is mutated
// and no state is held. Add, Subtract, and Multiply are total; Divide fails
// with the MATHX_DIVISION_BY_ZERO code on a zero divisor and Factorial fails
// with MATHX_NEGATIVE_FACTORIAL on negative input. Both failures propagate
// unwrapped to the immediate caller; there is no recovery layer.
//
// The higher-level helpers are defined in terms of the engine itself:
// Factorial multiplies through Multiply, Combinations composes three
// Factorial calls, and ComplexOperation chains Add, Multiply, Subtract, and
// Divide.
//
// Example:
//
//	quotient, err := mathx.Divide(10, 4)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(quotient) // 2.5
package mathx
