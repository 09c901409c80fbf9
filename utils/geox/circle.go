// File: circle.go
// Title: Circle Shape Variant
// Description: Implements the Circle variant with area and circumference
//              computed from the pinned Pi literal.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation of the circle variant

package geox

import (
	"github.com/msto63/go-utils/utils/mathx"
)

// Circle is the circular shape variant
type Circle struct {
	Base
	radius float64
}

// NewCircle creates a circle with the given radius
func NewCircle(radius float64) *Circle {
	return &Circle{
		Base:   NewBase("Circle"),
		radius: radius,
	}
}

// Radius returns the circle radius
func (c *Circle) Radius() float64 {
	return c.radius
}

// Area returns Pi times the squared radius
func (c *Circle) Area() (float64, error) {
	radiusSquared := mathx.Power(c.radius, 2)
	return mathx.Multiply(Pi, radiusSquared), nil
}

// Circumference returns Pi times the diameter.
// Circumference is specific to circles and not part of the Shape capability set.
func (c *Circle) Circumference() float64 {
	diameter := mathx.Multiply(c.radius, 2)
	return mathx.Multiply(Pi, diameter)
}
