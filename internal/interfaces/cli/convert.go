package cli

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/hapkiduki/freight-weight/internal/application/dto"
)

// conversionPlaces trims float noise such as 25.400000000000002 from printed results.
const conversionPlaces = 6

func convertCmd(a *app) *cobra.Command {
	var (
		from   string
		to     string
		kind   string
		asJSON bool
	)

	c := &cobra.Command{
		Use:   "convert VALUE",
		Short: "Convert a dimension or weight between unit systems",
		Example: `  freightcalc convert 10 --from imperial --to metric
  freightcalc convert 5 --from metric --to imperial --kind weight`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}

			resp, err := a.calc.Convert(cmd.Context(), dto.ConversionRequest{
				Value: value,
				From:  from,
				To:    to,
				Kind:  kind,
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n",
				decimal.NewFromFloat(resp.Value).String(), resp.FromUnit,
				decimal.NewFromFloat(resp.Result).Round(conversionPlaces).String(), resp.ToUnit,
			)
			return err
		},
	}

	c.Flags().StringVar(&from, "from", "imperial", "source unit system")
	c.Flags().StringVar(&to, "to", "metric", "target unit system")
	c.Flags().StringVarP(&kind, "kind", "k", "dimension", "measure kind: dimension or weight")
	c.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return c
}
