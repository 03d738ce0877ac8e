package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	expandHamiltonian string
	expandPreset      string
	expandOrder       int
	expandSteps       int
	expandPlain       bool
)

// expandCmd prints the Kamiltonian table row by row.
var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Print the Kamiltonian rows K(n,m) up to a perturbation order",
	Long: `Expands the transformed Hamiltonian order by order.

For every order n up to --order the command prints the rows K(n,m): the
order-n contribution produced by m nested generator brackets. Row m=0 is the
installed Hamiltonian itself; higher rows mix lower orders through the
bracket with S. Rows that vanish print as 0.

The system comes from a YAML manifest (--hamiltonian) or from a built-in
preset (--preset; see "vanvleck presets").

Example:
  vanvleck expand --preset duffing --order 3 --plain`,
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().StringVar(&expandHamiltonian, "hamiltonian", "", "Path to the Hamiltonian manifest")
	expandCmd.Flags().StringVar(&expandPreset, "preset", "", "Built-in Hamiltonian preset name")
	expandCmd.Flags().IntVar(&expandOrder, "order", 2, "Highest perturbation order to expand")
	expandCmd.Flags().IntVar(&expandSteps, "steps", -1, "Cap on bracket applications m per order (-1 for all)")
	expandCmd.Flags().BoolVar(&expandPlain, "plain", false, "Print terms in plain text instead of LaTeX")
}

func runExpand(cmd *cobra.Command, args []string) error {
	sess, err := resolveSession(expandHamiltonian, expandPreset)
	if err != nil {
		return err
	}

	for n := 0; n <= expandOrder; n++ {
		for m := 0; m <= stepCap(n, expandSteps); m++ {
			started := time.Now()
			row, err := sess.K(n, m)
			if err != nil {
				return err
			}
			logger.Debug("kamiltonian row",
				zap.Int("order", n),
				zap.Int("brackets", m),
				zap.Int("terms", row.Len()),
				zap.Duration("took", time.Since(started)))
			fmt.Printf("K(%d,%d) = %s\n", n, m, render(row, expandPlain))
		}
	}

	return nil
}

// stepCap bounds the bracket count m for order n: every row up to m = n,
// unless a non-negative steps flag caps the rows lower.
func stepCap(n, steps int) int {
	if steps >= 0 && steps < n {
		return steps
	}

	return n
}
