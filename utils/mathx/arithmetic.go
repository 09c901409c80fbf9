// File: arithmetic.go
// Title: Scalar Arithmetic Operations
// Description: Implements the arithmetic engine: add, subtract, multiply,
//              divide, power, and factorial over generic numeric scalars,
//              plus the chained complex operation built from them.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation with scalar operations

package mathx

import (
	"math"

	"github.com/msto63/go-utils/core/errors"
)

// Number constrains the scalar types the arithmetic engine operates on
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Add returns the sum of two numbers
func Add[T Number](a, b T) T {
	return a + b
}

// Subtract returns a minus b
func Subtract[T Number](a, b T) T {
	return a - b
}

// Multiply returns the product of two numbers
func Multiply[T Number](a, b T) T {
	return a * b
}

// Divide returns a divided by b as float64.
// A zero divisor fails with the MATHX_DIVISION_BY_ZERO code.
func Divide[T Number](a, b T) (float64, error) {
	if b == 0 {
		return 0, errors.MathxDivisionByZero("Divide")
	}
	return float64(a) / float64(b), nil
}

// Power returns base raised to exponent.
// A zero exponent returns exactly 1.0, including Power(0, 0).
func Power(base, exponent float64) float64 {
	if exponent == 0 {
		return 1.0
	}
	return math.Pow(base, exponent)
}

// Factorial returns n! for n >= 0.
// Negative input fails with the MATHX_NEGATIVE_FACTORIAL code.
// The loop runs O(n) multiplications through Multiply.
func Factorial(n int) (int, error) {
	if n < 0 {
		return 0, errors.MathxNegativeFactorial("Factorial", n)
	}
	if n == 0 || n == 1 {
		return 1, nil
	}

	result := 1
	for i := 2; i <= n; i++ {
		result = Multiply(result, i)
	}
	return result, nil
}

// ComplexOperation chains the engine operations over three integers:
// ((x + y) * z - x) / 2, truncated to int.
func ComplexOperation(x, y, z int) (int, error) {
	sum := Add(x, y)
	product := Multiply(sum, z)
	reduced := Subtract(product, x)

	quotient, err := Divide(reduced, 2)
	if err != nil {
		return 0, err
	}
	return int(quotient), nil
}
