// File: shape.go
// Title: Shape Capability Set and Base Form
// Description: Defines the Shape interface, the pinned Pi constant, and the
//              unspecialized Base form whose area is not implemented.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation of the shape capability set

package geox

import (
	"github.com/msto63/go-utils/core/errors"
)

// Pi is pinned to the truncated literal used by every circle computation.
// Tests and downstream output depend on this exact value; do not replace it
// with math.Pi.
const Pi = 3.14159

// Shape is the capability set common to all shape variants
type Shape interface {
	// Name returns the variant name assigned at construction
	Name() string

	// Area returns the enclosed area
	Area() (float64, error)
}

// Base is the unspecialized shape form. It carries the immutable name and
// fails with GEOX_AREA_NOT_IMPLEMENTED when asked for an area; the concrete
// variants embed it and provide their own Area.
type Base struct {
	name string
}

// NewBase creates an unspecialized shape with the given name
func NewBase(name string) Base {
	return Base{name: name}
}

// Name returns the shape name
func (b Base) Name() string {
	return b.name
}

// Area on the base form always fails with GEOX_AREA_NOT_IMPLEMENTED
func (b Base) Area() (float64, error) {
	return 0, errors.GeoxAreaNotImplemented(b.name)
}
