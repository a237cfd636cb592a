package main

import (
	"fmt"

	"chem-stoich/internal/ptable"

	"github.com/spf13/cobra"
)

func newWeightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weight <symbol>",
		Short: "Look up the atomic weight of an element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := args[0]

			weight, ok := ptable.Standard().AtomicWeight(symbol)
			if !ok {
				return fmt.Errorf("no atomic weight entry for %q", symbol)
			}

			fmt.Printf("%s\t%g\n", symbol, weight)
			return nil
		},
	}
}
