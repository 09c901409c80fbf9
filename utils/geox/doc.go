// File: doc.go
// Title: Package Documentation for geox
// Description: Package geox models geometric shapes with polymorphic area
//              dispatch across the Rectangle and Circle variants, a tag-keyed
//              factory, and an area comparator.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation of the shape model

// Package geox provides the shape model for go-utils.
//
// A Shape exposes its name and its area; Rectangle and Circle are the two
// concrete variants, each additionally carrying a variant-specific boundary
// measure (Perimeter and Circumference) outside the common capability set.
// Geometry is assigned at construction and immutable afterwards.
//
// All area and boundary computation goes through the arithmetic engine in
// utils/mathx, and circle computation uses the pinned Pi literal 3.14159 so
// that output stays bit-compatible across reimplementations.
//
// Shapes are created directly or through the factory:
//
//	shape, err := geox.CreateShape("circle", geox.Params{Radius: 2})
//	if err != nil {
//	    return err
//	}
//	area, err := shape.Area()
package geox
