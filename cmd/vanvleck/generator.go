package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	generatorHamiltonian string
	generatorPreset      string
	generatorOrder       int
	generatorPlain       bool
)

// generatorCmd prints the generators of the averaging transformation.
var generatorCmd = &cobra.Command{
	Use:   "generator",
	Short: "Print the generators S(1..N) of the averaging transformation",
	Long: `Builds the generator of the near-identity transformation order by order.

S(n) is the formal time integral that cancels the oscillating part of the
order-n Kamiltonian. A zero-harmonic oscillating term cannot be integrated
away; the command reports it as a resonance and exits non-zero.

The system comes from a YAML manifest (--hamiltonian) or from a built-in
preset (--preset; see "vanvleck presets").

Example:
  vanvleck generator --preset parametric --order 2`,
	RunE: runGenerator,
}

func init() {
	generatorCmd.Flags().StringVar(&generatorHamiltonian, "hamiltonian", "", "Path to the Hamiltonian manifest")
	generatorCmd.Flags().StringVar(&generatorPreset, "preset", "", "Built-in Hamiltonian preset name")
	generatorCmd.Flags().IntVar(&generatorOrder, "order", 2, "Highest generator order to build")
	generatorCmd.Flags().BoolVar(&generatorPlain, "plain", false, "Print terms in plain text instead of LaTeX")
}

func runGenerator(cmd *cobra.Command, args []string) error {
	sess, err := resolveSession(generatorHamiltonian, generatorPreset)
	if err != nil {
		return err
	}

	for n := 1; n <= generatorOrder; n++ {
		started := time.Now()
		s, err := sess.S(n)
		if err != nil {
			return err
		}
		logger.Debug("generator built",
			zap.Int("order", n),
			zap.Int("terms", s.Len()),
			zap.Duration("took", time.Since(started)))
		fmt.Printf("S(%d) = %s\n", n, render(s, generatorPlain))
	}

	return nil
}
