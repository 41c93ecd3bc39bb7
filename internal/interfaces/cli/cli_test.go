package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/freight-weight/internal/application/dto"
	"github.com/hapkiduki/freight-weight/internal/application/usecase"
	"github.com/hapkiduki/freight-weight/internal/domain/entity"
	"github.com/hapkiduki/freight-weight/internal/infrastructure/manifest"
)

// run executes freightcalc from an empty directory so no stray config.yaml is read.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var out, errOut bytes.Buffer
	cmd := newRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseItem(t *testing.T) {
	tests := []struct {
		in   string
		want dto.ShipmentItemRequest
	}{
		{
			in:   "50x40x30:10",
			want: dto.ShipmentItemRequest{Length: 50, Width: 40, Height: 30, GrossWeight: 10},
		},
		{
			in:   "50X40X30:10:fedex",
			want: dto.ShipmentItemRequest{Length: 50, Width: 40, Height: 30, GrossWeight: 10, Carrier: "fedex"},
		},
		{
			in:   "12.5×10×8:1.5:Custom:3000",
			want: dto.ShipmentItemRequest{Length: 12.5, Width: 10, Height: 8, GrossWeight: 1.5, Carrier: "Custom", CustomDivisor: 3000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseItem(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseItem_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"50x40x30",
		"50x40:10",
		"50x40x30:heavy",
		"axbxc:1",
		"50x40x30:10:Custom:lots",
		"50x40x30:10:DHL:5000:extra",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := parseItem(in)
			assert.ErrorIs(t, err, ErrInvalidItem)
		})
	}
}

func TestCalc_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "DHL metric",
			args: []string{"calc", "--item", "50x40x30:10:DHL"},
			want: []string{"(50 × 40 × 30) ÷ 5000 = 12.00 kg", "Total chargeable: 12.00 kg", "Total gross:      10.00 kg"},
		},
		{
			name: "imperial uses 166",
			args: []string{"calc", "--unit", "imperial", "--item", "50x40x30:10:DHL"},
			want: []string{"(50 × 40 × 30) ÷ 166 = 361.45 lb", "Total chargeable: 361.45 lb"},
		},
		{
			name: "custom divisor",
			args: []string{"calc", "--item", "50x40x30:10:custom:3000"},
			want: []string{"÷ 3000 = 20.00 kg"},
		},
		{
			name: "IATA",
			args: []string{"calc", "--item", "50x40x30:10:iata"},
			want: []string{"÷ 6000 = 10.00 kg", "Total chargeable: 10.00 kg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestCalc_HidesIncompleteItems(t *testing.T) {
	out, err := run(t, "calc", "--item", "0x40x30:10", "--item", "50x40x30:10")
	require.NoError(t, err)
	assert.NotContains(t, out, "(0 × 40 × 30)")
	assert.Contains(t, out, "Total gross:      20.00 kg")

	out, err = run(t, "calc", "--all", "--item", "0x40x30:10")
	require.NoError(t, err)
	assert.Contains(t, out, "(0 × 40 × 30) ÷ 5000 = 0.00 kg")
}

func TestCalc_JSON(t *testing.T) {
	out, err := run(t, "calc", "--json", "--item", "50x40x30:10", "--item", "10x10x10:2:UPS")
	require.NoError(t, err)

	var resp dto.CalculationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "item-1", resp.Items[0].ID)
	assert.Equal(t, "DHL", resp.Items[0].Carrier)
	assert.Equal(t, "item-2", resp.Items[1].ID)
	assert.Equal(t, 2, resp.Totals.ItemCount)
	assert.InDelta(t, 14.0, resp.Totals.ChargeableWeight, 1e-9)
}

func TestCalc_ManifestPlusItems(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "shipment.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
unit_system: metric
items:
  - id: box-1
    length: 50
    width: 40
    height: 30
    gross_weight: 10
    carrier: DHL
`), 0o600))

	out, err := run(t, "calc", "--json", "--file", p, "--item", "10x10x10:2")
	require.NoError(t, err)

	var resp dto.CalculationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "box-1", resp.Items[0].ID)
	assert.Equal(t, "item-2", resp.Items[1].ID)
}

func TestCalc_GeneratedIDsSkipManifestIDs(t *testing.T) {
	p := filepath.Join(t.TempDir(), "shipment.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
items:
  - id: item-2
    length: 50
    width: 40
    height: 30
    gross_weight: 10
`), 0o600))

	out, err := run(t, "calc", "--json", "--file", p, "--item", "10x10x10:2", "--item", "20x20x20:3")
	require.NoError(t, err)

	var resp dto.CalculationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Items, 3)
	assert.Equal(t, "item-2", resp.Items[0].ID)
	assert.Equal(t, "item-3", resp.Items[1].ID)
	assert.Equal(t, "item-4", resp.Items[2].ID)
}

func TestNextItemID(t *testing.T) {
	taken := map[string]bool{"item-1": true, "item-2": true, "item-4": true}

	id, seq := nextItemID(taken, 0)
	assert.Equal(t, "item-3", id)
	assert.Equal(t, 3, seq)

	id, _ = nextItemID(taken, seq)
	assert.Equal(t, "item-5", id)
}

func TestCalc_Errors(t *testing.T) {
	_, err := run(t, "calc")
	assert.ErrorIs(t, err, errNoItems)

	_, err = run(t, "calc", "--item", "50x40:10")
	assert.ErrorIs(t, err, ErrInvalidItem)

	_, err = run(t, "calc", "--item", "50x40x30:10:TNT")
	assert.ErrorIs(t, err, usecase.ErrValidation)

	_, err = run(t, "calc", "--unit", "cubits", "--item", "50x40x30:10")
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestConvert(t *testing.T) {
	out, err := run(t, "convert", "10")
	require.NoError(t, err)
	assert.Equal(t, "10 in = 25.4 cm\n", out)

	out, err = run(t, "convert", "1", "--from", "metric", "--to", "imperial", "--kind", "weight")
	require.NoError(t, err)
	assert.Equal(t, "1 kg = 2.20462 lb\n", out)

	_, err = run(t, "convert", "ten")
	assert.Error(t, err)

	_, err = run(t, "convert", "1", "--kind", "volume")
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestCarriers(t *testing.T) {
	out, err := run(t, "carriers")
	require.NoError(t, err)

	assert.Contains(t, out, "IATA (6000)")
	assert.Contains(t, out, "FedEx (5000)")
	assert.Regexp(t, `Custom\s+-\s+Custom`, out)
}

func TestManifest_Lifecycle(t *testing.T) {
	p := filepath.Join(t.TempDir(), "shipment.yaml")

	out, err := run(t, "manifest", "init", p, "--unit", "imperial")
	require.NoError(t, err)
	assert.Contains(t, out, "Created "+p)

	req, err := manifest.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "imperial", req.UnitSystem)
	require.Len(t, req.Items, 1)
	placeholder := req.Items[0].ID

	_, err = run(t, "manifest", "init", p)
	assert.ErrorIs(t, err, errManifestExists)

	_, err = run(t, "manifest", "add", p, "--id", "box-2", "--item", "50x40x30:10:custom:3000")
	require.NoError(t, err)
	_, err = run(t, "manifest", "add", p, "--item", "10x10x10:2:ups")
	require.NoError(t, err)

	req, err = manifest.Load(p)
	require.NoError(t, err)
	require.Len(t, req.Items, 3)
	assert.Equal(t, dto.ShipmentItemRequest{
		ID: "box-2", Length: 50, Width: 40, Height: 30, GrossWeight: 10, Carrier: "Custom", CustomDivisor: 3000,
	}, req.Items[1])
	assert.Equal(t, "UPS", req.Items[2].Carrier)
	assert.NotEmpty(t, req.Items[2].ID)

	_, err = run(t, "manifest", "add", p, "--id", "box-2", "--item", "1x1x1:1")
	assert.ErrorIs(t, err, entity.ErrDuplicateItemID)

	_, err = run(t, "manifest", "remove", p, placeholder)
	require.NoError(t, err)
	_, err = run(t, "manifest", "remove", p, "missing")
	assert.ErrorIs(t, err, entity.ErrItemNotFound)

	req, err = manifest.Load(p)
	require.NoError(t, err)
	require.Len(t, req.Items, 2)
	assert.Equal(t, "box-2", req.Items[0].ID)

	out, err = run(t, "calc", "--file", p)
	require.NoError(t, err)
	assert.Contains(t, out, "(50 × 40 × 30) ÷ 166 = 361.45 lb")

	_, err = run(t, "manifest", "reset", p)
	require.NoError(t, err)
	req, err = manifest.Load(p)
	require.NoError(t, err)
	require.Len(t, req.Items, 1)
	assert.NotEqual(t, "box-2", req.Items[0].ID)
	assert.Equal(t, "imperial", req.UnitSystem)
}
