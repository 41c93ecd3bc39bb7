package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func carriersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "carriers",
		Short: "List supported carriers and their divisors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CARRIER\tDIVISOR\tLABEL")
			for _, c := range a.calc.Carriers(cmd.Context()) {
				divisor := "-"
				if c.Divisor > 0 {
					divisor = fmt.Sprintf("%g", c.Divisor)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Carrier, divisor, c.Label)
			}
			return tw.Flush()
		},
	}
}
