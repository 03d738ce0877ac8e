package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vanvleck",
	Short: "vanvleck - canonical perturbation theory on the command line",
	Long: `vanvleck builds secular perturbation expansions of a driven Hamiltonian.

The Hamiltonian is described by a YAML manifest listing symbolic terms with
their perturbation order, harmonic and coefficient. From that manifest the
tool derives the generator S(n) of the near-identity transformation and the
Kamiltonian rows K(n,m) it produces, keeping every coefficient exact.

Outputs render as LaTeX by default; pass --plain for a terminal-friendly form.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
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
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(generatorCmd)
	rootCmd.AddCommand(presetsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
