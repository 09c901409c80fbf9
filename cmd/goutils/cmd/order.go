package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/go-utils/core/log"
	"github.com/msto63/go-utils/internal/workflow"
)

var (
	orderPrice    float64
	orderQuantity int
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Compute an order total with tax",
	Long: `Computes subtotal, tax, and total for a single order position.
The tax rate comes from the configuration key order.tax_rate.

Examples:
  goutils order --price 25.99 --quantity 3
  goutils order --price 9.99`,
	RunE: runOrder,
}

func init() {
	orderCmd.Flags().Float64Var(&orderPrice, "price", 0, "item price (required)")
	orderCmd.Flags().IntVar(&orderQuantity, "quantity", 1, "item quantity")
	orderCmd.MarkFlagRequired("price")

	rootCmd.AddCommand(orderCmd)
}

func runOrder(cmd *cobra.Command, args []string) error {
	taxRate := cfg.GetFloat64("order.tax_rate", workflow.DefaultTaxRate)

	logger.Debug("processing order",
		log.Float64("price", orderPrice),
		log.Int("quantity", orderQuantity),
		log.Float64("tax_rate", taxRate))

	order := workflow.ProcessOrder(orderPrice, orderQuantity, taxRate)

	fmt.Fprintf(cmd.OutOrStdout(), "Order: subtotal=%.2f tax=%.2f total=%.2f\n",
		order.Subtotal, order.Tax, order.Total)

	return nil
}
