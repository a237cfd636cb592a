package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"chem-stoich/internal/chem"
	"chem-stoich/internal/ptable"

	"github.com/spf13/cobra"
)

func newMassCmd() *cobra.Command {
	var reference string
	var grams float64
	var fullPrecision bool

	cmd := &cobra.Command{
		Use:   "mass <formula>",
		Short: "Compute the mass of every element for a given reference mass",
		Long: `Compute how much of every element the formula requires when the
reference element weighs the given number of grams.

  chemcalc mass "Gd2PdSi3" --reference Gd --grams 5

Masses print rounded to 5 decimal places; use --full for full precision.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := chem.Parse(args[0])
			if err != nil {
				return err
			}

			result, err := chem.Calculate(comp, reference, grams, ptable.Standard())
			if err != nil {
				return err
			}

			fmt.Printf("scale factor: %g\n\n", result.ScaleFactor)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ELEMENT\tMASS (g)")
			for _, row := range result.Masses {
				if !row.Known {
					fmt.Fprintf(w, "%s\tunavailable\n", row.Symbol)
					continue
				}
				if fullPrecision {
					fmt.Fprintf(w, "%s\t%g\n", row.Symbol, row.Mass)
				} else {
					fmt.Fprintf(w, "%s\t%.5f\n", row.Symbol, chem.RoundMass(row.Mass))
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&reference, "reference", "r", "", "reference element symbol")
	cmd.Flags().Float64VarP(&grams, "grams", "g", 0, "observed mass of the reference element in grams")
	cmd.Flags().BoolVar(&fullPrecision, "full", false, "print full-precision masses")
	cmd.MarkFlagRequired("reference")
	cmd.MarkFlagRequired("grams")

	return cmd
}
