// chemcalc is the terminal front-end to the formula parser and mass
// calculator, for use without the HTTP service.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chemcalc",
		Short: "Parse composition formulas and scale element masses",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newMassCmd())
	rootCmd.AddCommand(newWeightCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
