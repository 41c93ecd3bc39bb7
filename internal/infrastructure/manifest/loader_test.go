package manifest

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/freight-weight/internal/application/dto"
	"github.com/hapkiduki/freight-weight/internal/domain/valueobject"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "shipment.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad_Valid(t *testing.T) {
	p := writeManifest(t, `
unit_system: metric
items:
  - id: box-1
    length: 50
    width: 40
    height: 30
    gross_weight: 10
    carrier: DHL
  - length: 12.5
    width: 10
    height: 8
    gross_weight: 1
    carrier: custom
    custom_divisor: 3000
`)

	req, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, "metric", req.UnitSystem)
	require.Len(t, req.Items, 2)
	assert.Equal(t, "box-1", req.Items[0].ID)
	assert.Equal(t, 50.0, req.Items[0].Length)
	assert.Empty(t, req.Items[1].ID)
	assert.Equal(t, 12.5, req.Items[1].Length)
	assert.Equal(t, 3000.0, req.Items[1].CustomDivisor)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "unknown unit system", content: "unit_system: furlongs\n", want: "unit_system"},
		{name: "unknown carrier", content: "items:\n  - carrier: TNT\n", want: "items[0].carrier"},
		{name: "unknown key", content: "unit_sytem: metric\n", want: "unit_sytem"},
		{name: "bad number", content: "items:\n  - length: wide\n", want: "wide"},
		{name: "empty", content: "", want: "empty document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeManifest(t, tt.content)

			_, err := Load(p)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidManifest)
			assert.Contains(t, err.Error(), p)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_CarrierErrorKeepsSentinel(t *testing.T) {
	p := writeManifest(t, "items:\n  - carrier: TNT\n")

	_, err := Load(p)
	assert.ErrorIs(t, err, valueobject.ErrInvalidCarrier)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWrite_ThenDecode(t *testing.T) {
	req := dto.CalculationRequest{
		UnitSystem: "imperial",
		Items: []dto.ShipmentItemRequest{
			{ID: "a", Length: 20, Width: 15, Height: 10, GrossWeight: 30, Carrier: "UPS"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, req))
	assert.True(t, strings.HasPrefix(buf.String(), "unit_system: imperial"))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, req, got)
}

func TestSave_ThenLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.yaml")
	req := dto.CalculationRequest{
		UnitSystem: "metric",
		Items:      []dto.ShipmentItemRequest{{ID: "c", Length: 1, Width: 2, Height: 3, GrossWeight: 4, Carrier: "Custom", CustomDivisor: 3000}},
	}

	require.NoError(t, Save(p, req))

	got, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, req, got)
}

func TestSave_BadPath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing-dir", "out.yaml")
	err := Save(p, dto.CalculationRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), p)
}
