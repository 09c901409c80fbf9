package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/go-utils/core/errors"
	"github.com/msto63/go-utils/utils/mathx"
)

var combinationsCmd = &cobra.Command{
	Use:   "combinations [n] [r]",
	Short: "Compute nCr",
	Long: `Computes the number of ways to choose r elements from n.

Example:
  goutils combinations 5 2`,
	Args: cobra.ExactArgs(2),
	RunE: runCombinations,
}

func init() {
	rootCmd.AddCommand(combinationsCmd)
}

func runCombinations(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.InvalidInput("cli", "combinations", args[0], "integer")
	}

	r, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.InvalidInput("cli", "combinations", args[1], "integer")
	}

	result, err := mathx.Combinations(n, r)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "C(%d, %d) = %d\n", n, r, result)

	return nil
}
