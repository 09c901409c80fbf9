package cmd

import (
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/go-utils/core/config"
	"github.com/msto63/go-utils/core/errors"
	"github.com/msto63/go-utils/core/log"
	"github.com/msto63/go-utils/internal/workflow"
	"github.com/msto63/go-utils/utils/stringx"
)

const defaultConfigPath = "configs/config.toml"

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "goutils",
	Short: "go-utils - arithmetic and geometry utilities",
	Long: `go-utils is a small arithmetic and geometry utility library with a
demonstration command line.

Commands:
  demo          - run the full walkthrough of the library
  order         - compute an order total with tax
  analyze       - aggregate statistics over a dataset
  shape         - create and compare geometric shapes
  combinations  - compute nCr`,
	SilenceUsage:      true,
	PersistentPreRunE: initRuntime,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// initRuntime loads the configuration and prepares the logger before any
// command runs. Stdout stays reserved for command output, logs go to stderr.
func initRuntime(cmd *cobra.Command, args []string) error {
	defaults := map[string]interface{}{
		"order.tax_rate": workflow.DefaultTaxRate,
		"demo.data":      []interface{}{1, 2, 3, 4, 5},
	}

	path := stringx.DefaultIfBlank(cfgFile, defaultConfigPath)
	if _, err := os.Stat(path); err == nil {
		loaded, loadErr := config.LoadWithOptions(path, config.LoadOptions{Defaults: defaults})
		if loadErr != nil {
			return loadErr
		}
		cfg = loaded
	} else if stringx.IsNotBlank(cfgFile) {
		return errors.ConfigError("initRuntime", "config file not found", err).
			WithDetail("path", cfgFile)
	} else {
		cfg = config.New(defaults)
	}

	level := log.LevelWarn
	if verbose {
		level = log.LevelDebug
	}

	logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: log.FormatText,
		Output: cmd.ErrOrStderr(),
		Name:   "goutils",
	}).WithRequestID(uuid.NewString())

	logger.Debug("runtime initialized", log.Str("config", cfg.FilePath()))

	return nil
}
