// File: workflow.go
// Title: Orchestration Workflows
// Description: Implements the higher-level workflows the demo CLI exposes,
//              chaining the arithmetic engine, the statistics aggregator,
//              and the chained complex operation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-03
// Modified: 2025-03-03
//
// Change History:
// - 2025-03-03 v0.1.0: Initial implementation of order and analysis workflows

// Package workflow chains the go-utils library packages into the
// user-facing workflows of the demo CLI: order totals and dataset analysis.
package workflow

import (
	"github.com/msto63/go-utils/utils/mathx"
	"github.com/msto63/go-utils/utils/statsx"
)

// DefaultTaxRate is the tax rate applied when no configuration overrides it
const DefaultTaxRate = 0.08

// Order is the result of processing a customer order
type Order struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ProcessOrder computes subtotal, tax, and total for an order position
func ProcessOrder(itemPrice float64, quantity int, taxRate float64) Order {
	subtotal := mathx.Multiply(itemPrice, float64(quantity))
	tax := mathx.Multiply(subtotal, taxRate)
	total := mathx.Add(subtotal, tax)

	return Order{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
	}
}

// Analysis is the result of analyzing a dataset: the summary statistics
// plus the chained complex operation over the first three data points
type Analysis struct {
	statsx.Summary[int]
	ComplexResult int `json:"complex_result"`
}

// AnalyzeData aggregates the dataset and, when at least three data points
// are present, runs the complex operation over the first three. Fewer than
// three points leave ComplexResult at 0.
func AnalyzeData(dataPoints []int) (Analysis, error) {
	stats := statsx.Statistics(dataPoints)

	complexResult := 0
	if len(dataPoints) >= 3 {
		result, err := mathx.ComplexOperation(dataPoints[0], dataPoints[1], dataPoints[2])
		if err != nil {
			return Analysis{}, err
		}
		complexResult = result
	}

	return Analysis{
		Summary:       stats,
		ComplexResult: complexResult,
	}, nil
}
