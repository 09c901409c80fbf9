// File: combinatorics.go
// Title: Combinatorics Helper
// Description: Implements the combinations (nCr) helper by composing three
//              factorial calls with a multiply and an integer division.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation of the combinations helper

package mathx

// Combinations returns nCr, the number of ways to choose r elements from n,
// computed as n! / (r! * (n-r)!) with integer floor division.
//
// The helper does not validate r <= n itself; a negative n-r propagates
// Factorial's MATHX_NEGATIVE_FACTORIAL error. A zero denominator returns 0
// instead of failing, although Factorial never produces 0 for valid input.
func Combinations(n, r int) (int, error) {
	nFactorial, err := Factorial(n)
	if err != nil {
		return 0, err
	}

	rFactorial, err := Factorial(r)
	if err != nil {
		return 0, err
	}

	remainderFactorial, err := Factorial(n - r)
	if err != nil {
		return 0, err
	}

	denominator := Multiply(rFactorial, remainderFactorial)
	if denominator == 0 {
		return 0, nil
	}

	return nFactorial / denominator, nil
}
