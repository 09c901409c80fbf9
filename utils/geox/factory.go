// File: factory.go
// Title: Shape Factory
// Description: Implements shape construction keyed by a type tag with
//              explicit, documented parameter defaults.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation of the shape factory

package geox

import (
	"github.com/msto63/go-utils/core/errors"
)

// Type tags recognized by the factory
const (
	TypeRectangle = "rectangle"
	TypeCircle    = "circle"
)

// Params carries the optional geometry parameters for CreateShape.
// Unset (zero-valued) fields fall back to their documented default of 1.
type Params struct {
	Length float64 // rectangle length, default 1
	Width  float64 // rectangle width, default 1
	Radius float64 // circle radius, default 1
}

// length returns the configured length or its default
func (p Params) length() float64 {
	if p.Length == 0 {
		return 1
	}
	return p.Length
}

// width returns the configured width or its default
func (p Params) width() float64 {
	if p.Width == 0 {
		return 1
	}
	return p.Width
}

// radius returns the configured radius or its default
func (p Params) radius() float64 {
	if p.Radius == 0 {
		return 1
	}
	return p.Radius
}

// CreateShape constructs a shape variant selected by the type tag.
// An unrecognized tag fails with GEOX_UNKNOWN_SHAPE_TYPE.
func CreateShape(shapeType string, params Params) (Shape, error) {
	switch shapeType {
	case TypeRectangle:
		return NewRectangle(params.length(), params.width()), nil
	case TypeCircle:
		return NewCircle(params.radius()), nil
	default:
		return nil, errors.GeoxUnknownShapeType(shapeType)
	}
}
