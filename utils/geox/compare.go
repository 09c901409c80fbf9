// File: compare.go
// Title: Shape Comparison
// Description: Implements the comparator that reports both shapes' names
//              and areas together with their area difference.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation of the shape comparator

package geox

import (
	"github.com/msto63/go-utils/utils/mathx"
)

// Comparison reports the result of comparing two shapes by area
type Comparison struct {
	Shape1Name     string  `json:"shape1_name"`
	Shape1Area     float64 `json:"shape1_area"`
	Shape2Name     string  `json:"shape2_name"`
	Shape2Area     float64 `json:"shape2_area"`
	AreaDifference float64 `json:"area_difference"`
}

// CompareShapes compares two shapes by area. Area is evaluated twice per
// shape, once for the standalone field and once for the difference; results
// are not cached between the calls.
func CompareShapes(shape1, shape2 Shape) (Comparison, error) {
	area1, err := shape1.Area()
	if err != nil {
		return Comparison{}, err
	}

	area2, err := shape2.Area()
	if err != nil {
		return Comparison{}, err
	}

	diffArea1, err := shape1.Area()
	if err != nil {
		return Comparison{}, err
	}

	diffArea2, err := shape2.Area()
	if err != nil {
		return Comparison{}, err
	}

	return Comparison{
		Shape1Name:     shape1.Name(),
		Shape1Area:     area1,
		Shape2Name:     shape2.Name(),
		Shape2Area:     area2,
		AreaDifference: mathx.Subtract(diffArea1, diffArea2),
	}, nil
}
