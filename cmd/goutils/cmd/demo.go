package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/go-utils/internal/workflow"
	"github.com/msto63/go-utils/utils/geox"
	"github.com/msto63/go-utils/utils/mathx"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the full library walkthrough",
	Long: `Runs a deterministic walkthrough of the library: arithmetic,
geometry, dataset analysis and order processing. The printed values are
stable across runs and platforms.

Example:
  goutils demo`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Arithmetic engine
	a, b := 10, 5
	fmt.Fprintf(out, "Add: %d\n", mathx.Add(a, b))
	fmt.Fprintf(out, "Multiply: %d\n", mathx.Multiply(a, b))

	// Geometry
	rectangle := geox.NewRectangle(5.0, 3.0)
	area, err := rectangle.Area()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Area: %.2f\n", area)
	fmt.Fprintf(out, "Perimeter: %.2f\n", rectangle.Perimeter())

	circle := geox.NewCircle(2.0)
	circleArea, err := circle.Area()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Circle area: %.5f\n", circleArea)
	fmt.Fprintf(out, "Circumference: %.5f\n", circle.Circumference())

	// Dataset analysis
	data := cfg.GetIntSlice("demo.data", []int{1, 2, 3, 4, 5})
	analysis, err := workflow.AnalyzeData(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Statistics: sum=%d mean=%.2f min=%d max=%d complex_result=%d\n",
		analysis.Sum, analysis.Mean, analysis.Min, analysis.Max, analysis.ComplexResult)

	// Shape comparison
	comparison, err := geox.CompareShapes(rectangle, circle)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Comparison: %s=%.5f %s=%.5f difference=%.5f\n",
		comparison.Shape1Name, comparison.Shape1Area,
		comparison.Shape2Name, comparison.Shape2Area,
		comparison.AreaDifference)

	// Order processing
	taxRate := cfg.GetFloat64("order.tax_rate", workflow.DefaultTaxRate)
	order := workflow.ProcessOrder(25.99, 3, taxRate)
	fmt.Fprintf(out, "Order: subtotal=%.2f tax=%.2f total=%.2f\n",
		order.Subtotal, order.Tax, order.Total)

	return nil
}
