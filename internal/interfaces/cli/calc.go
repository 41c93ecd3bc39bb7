package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hapkiduki/freight-weight/internal/application/dto"
	"github.com/hapkiduki/freight-weight/internal/domain/valueobject"
	"github.com/hapkiduki/freight-weight/internal/infrastructure/manifest"
)

var errNoItems = errors.New("no items: pass --item or --file")

func calcCmd(a *app) *cobra.Command {
	var (
		unit    string
		items   []string
		file    string
		asJSON  bool
		showAll bool
	)

	c := &cobra.Command{
		Use:   "calc",
		Short: "Calculate volumetric and chargeable weight for a shipment",
		Example: `  freightcalc calc --item 50x40x30:10:DHL
  freightcalc calc --unit imperial --item 20x15x10:30:UPS --item 12x12x12:5
  freightcalc calc --file shipment.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req dto.CalculationRequest
			if file != "" {
				loaded, err := manifest.Load(file)
				if err != nil {
					return err
				}
				req = loaded
			}
			if unit != "" {
				req.UnitSystem = unit
			}

			taken := make(map[string]bool, len(req.Items))
			for _, it := range req.Items {
				taken[it.ID] = true
			}
			seq := len(req.Items)
			for _, raw := range items {
				item, err := parseItem(raw)
				if err != nil {
					return err
				}
				item.ID, seq = nextItemID(taken, seq)
				taken[item.ID] = true
				req.Items = append(req.Items, item)
			}
			if len(req.Items) == 0 {
				return errNoItems
			}

			resp, err := a.calc.Calculate(cmd.Context(), req)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return writeCalculation(cmd.OutOrStdout(), resp, showAll)
		},
	}

	c.Flags().StringVarP(&unit, "unit", "u", "", "unit system: metric or imperial (overrides the manifest)")
	c.Flags().StringArrayVarP(&items, "item", "i", nil, "item as LxWxH:gross[:carrier[:divisor]] (repeatable)")
	c.Flags().StringVarP(&file, "file", "f", "", "YAML shipment manifest")
	c.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	c.Flags().BoolVar(&showAll, "all", false, "also show items with missing dimensions or weight")
	return c
}

// nextItemID returns the first free "item-N" with N greater than seq,
// along with that N.
func nextItemID(taken map[string]bool, seq int) (string, int) {
	for {
		seq++
		id := fmt.Sprintf("item-%d", seq)
		if !taken[id] {
			return id, seq
		}
	}
}

// writeCalculation prints a table of items followed by the totals.
// Incomplete items are hidden unless showAll is set; totals always include them.
func writeCalculation(w io.Writer, resp *dto.CalculationResponse, showAll bool) error {
	fmt.Fprintf(w, "Unit system: %s (%s, %s)\n\n", resp.UnitSystem, resp.DimensionUnit, resp.WeightUnit)

	unit, _ := valueobject.ParseUnitSystem(resp.UnitSystem)
	weight := func(v float64) string { return valueobject.NewWeight(v, unit).String() }

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCARRIER\tVOLUMETRIC\tGROSS\tCHARGEABLE\tFORMULA")
	for _, it := range resp.Items {
		if !it.Complete && !showAll {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			it.ID, it.Carrier,
			weight(it.VolumetricWeight), weight(it.GrossWeight), weight(it.ChargeableWeight),
			it.Formula,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nTotal volumetric: %s\n", resp.Totals.Display.VolumetricWeight)
	fmt.Fprintf(w, "Total gross:      %s\n", resp.Totals.Display.GrossWeight)
	_, err := fmt.Fprintf(w, "Total chargeable: %s\n", resp.Totals.Display.ChargeableWeight)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
