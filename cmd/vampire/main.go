package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Dragon-Hatcher/vampire-lib/internal/config"
	"github.com/Dragon-Hatcher/vampire-lib/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string
	timeLimit  time.Duration
	algorithm  string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vampire",
	Short: "vampire - first-order saturation prover",
	Long: `vampire is a resolution-based first-order theorem prover.

Problems are built programmatically through the library API; this command
exposes built-in demonstration problems and prints the refutation proofs
it finds for them.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("time-limit") {
			cfg.Prover.TimeLimit = timeLimit.String()
		}
		if cmd.Flags().Changed("algorithm") {
			cfg.Prover.Algorithm = algorithm
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		// Initialize logger
		logger, err = logging.New(cfg.Logging.Level)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "vampire.yaml", "config file path")
	rootCmd.PersistentFlags().DurationVar(&timeLimit, "time-limit", 60*time.Second, "time limit per query")
	rootCmd.PersistentFlags().StringVar(&algorithm, "algorithm", "discount", "saturation algorithm (discount, otter)")

	rootCmd.AddCommand(demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
