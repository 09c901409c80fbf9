// File: rectangle.go
// Title: Rectangle Shape Variant
// Description: Implements the Rectangle variant with area delegation to the
//              generic rectangle-area helper and a perimeter measure.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation of the rectangle variant

package geox

import (
	"github.com/msto63/go-utils/utils/mathx"
)

// RectangleArea returns length times width through the arithmetic engine.
// The Rectangle variant delegates here so that the generic helper stays
// usable without a shape instance.
func RectangleArea(length, width float64) float64 {
	return mathx.Multiply(length, width)
}

// Rectangle is the rectangular shape variant
type Rectangle struct {
	Base
	length float64
	width  float64
}

// NewRectangle creates a rectangle with the given side lengths
func NewRectangle(length, width float64) *Rectangle {
	return &Rectangle{
		Base:   NewBase("Rectangle"),
		length: length,
		width:  width,
	}
}

// Length returns the rectangle length
func (r *Rectangle) Length() float64 {
	return r.length
}

// Width returns the rectangle width
func (r *Rectangle) Width() float64 {
	return r.width
}

// Area returns length times width
func (r *Rectangle) Area() (float64, error) {
	return RectangleArea(r.length, r.width), nil
}

// Perimeter returns (length + width) * 2.
// Perimeter is specific to rectangles and not part of the Shape capability set.
func (r *Rectangle) Perimeter() float64 {
	return mathx.Multiply(mathx.Add(r.length, r.width), 2)
}
