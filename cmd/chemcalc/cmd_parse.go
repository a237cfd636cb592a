package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"chem-stoich/internal/chem"
	"chem-stoich/internal/ptable"

	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <formula>",
		Short: "Parse a composition formula into element coefficients",
		Long: `Parse a composition formula and print one row per element with its
total stoichiometric coefficient and atomic weight.

Nested groups and decimal coefficients are supported:

  chemcalc parse "Al2(SO4)3"
  chemcalc parse Fe0.5O1.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := chem.Parse(args[0])
			if err != nil {
				return err
			}

			weights := ptable.Standard()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ELEMENT\tCOEFFICIENT\tATOMIC WEIGHT")
			for _, sym := range comp.Symbols() {
				coeff, _ := comp.Coefficient(sym)
				if weight, ok := weights.AtomicWeight(sym); ok {
					fmt.Fprintf(w, "%s\t%g\t%g\n", sym, coeff, weight)
				} else {
					fmt.Fprintf(w, "%s\t%g\tunknown\n", sym, coeff)
				}
			}
			return w.Flush()
		},
	}
}
