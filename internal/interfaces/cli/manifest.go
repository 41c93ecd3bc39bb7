package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hapkiduki/freight-weight/internal/application/usecase"
	"github.com/hapkiduki/freight-weight/internal/domain/entity"
	"github.com/hapkiduki/freight-weight/internal/domain/valueobject"
	"github.com/hapkiduki/freight-weight/internal/infrastructure/manifest"
)

var errManifestExists = errors.New("manifest already exists (use --force to overwrite)")

func manifestCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "manifest",
		Short: "Create and edit YAML shipment manifests",
	}
	c.AddCommand(
		manifestInitCmd(a),
		manifestAddCmd(a),
		manifestRemoveCmd(a),
		manifestResetCmd(a),
	)
	return c
}

func manifestInitCmd(a *app) *cobra.Command {
	var (
		unit  string
		force bool
	)

	c := &cobra.Command{
		Use:   "init FILE",
		Short: "Write a manifest holding one placeholder item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s: %w", path, errManifestExists)
			}

			system, err := valueobject.ParseUnitSystem(unit)
			if err != nil {
				return err
			}

			s := entity.NewShipment()
			if err := manifest.Save(path, usecase.ShipmentRequest(system, s)); err != nil {
				return err
			}
			a.log.Debug("Manifest created", "path", path, "unit_system", system)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created %s with item %s\n", path, s.Items()[0].ID)
			return err
		},
	}

	c.Flags().StringVarP(&unit, "unit", "u", string(valueobject.UnitSystemMetric), "unit system: metric or imperial")
	c.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return c
}

func manifestAddCmd(a *app) *cobra.Command {
	var (
		raw string
		id  string
	)

	c := &cobra.Command{
		Use:     "add FILE",
		Short:   "Append an item to a manifest",
		Example: `  freightcalc manifest add shipment.yaml --item 50x40x30:10:DHL --id box-2`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseItem(raw)
			if err != nil {
				return err
			}

			return editManifest(cmd, a, args[0], func(s *entity.Shipment) (string, error) {
				var item *entity.ShipmentItem
				if id == "" {
					item = s.AddItem()
				} else {
					item = entity.NewShipmentItemWithID(id)
					if err := s.Add(item); err != nil {
						return "", err
					}
				}

				item.SetDimensions(valueobject.NewDimensions(in.Length, in.Width, in.Height))
				item.SetGrossWeight(in.GrossWeight)
				if in.Carrier != "" {
					carrier, err := valueobject.ParseCarrier(in.Carrier)
					if err != nil {
						return "", err
					}
					item.SetCarrier(carrier)
				}
				item.SetCustomDivisor(in.CustomDivisor)
				return "Added item " + item.ID, nil
			})
		},
	}

	c.Flags().StringVarP(&raw, "item", "i", "", "item as LxWxH:gross[:carrier[:divisor]]")
	c.Flags().StringVar(&id, "id", "", "item ID (default: a generated UUID)")
	_ = c.MarkFlagRequired("item")
	return c
}

func manifestRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove FILE ID",
		Short: "Remove an item from a manifest",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editManifest(cmd, a, args[0], func(s *entity.Shipment) (string, error) {
				if err := s.RemoveItem(args[1]); err != nil {
					return "", fmt.Errorf("%s: %w", args[1], err)
				}
				return "Removed item " + args[1], nil
			})
		},
	}
}

func manifestResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset FILE",
		Short: "Replace every item in a manifest with one placeholder item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editManifest(cmd, a, args[0], func(s *entity.Shipment) (string, error) {
				s.Reset()
				return "Reset to item " + s.Items()[0].ID, nil
			})
		},
	}
}

// editManifest loads path, applies edit to its shipment and saves the result.
// Nothing is written when edit fails.
func editManifest(cmd *cobra.Command, a *app, path string, edit func(*entity.Shipment) (string, error)) error {
	req, err := manifest.Load(path)
	if err != nil {
		return err
	}

	unit, s, err := a.calc.Shipment(req)
	if err != nil {
		return fmt.Errorf("manifest %s: %w", path, err)
	}

	msg, err := edit(s)
	if err != nil {
		return err
	}

	if err := manifest.Save(path, usecase.ShipmentRequest(unit, s)); err != nil {
		return err
	}
	a.log.Debug("Manifest updated", "path", path, "items", s.Len())
	_, err = fmt.Fprintln(cmd.OutOrStdout(), msg)
	return err
}
