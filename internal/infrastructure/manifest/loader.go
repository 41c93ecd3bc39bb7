// Package manifest reads shipment manifests from YAML files.
//
// A manifest lists the items of one shipment and the unit system they are
// measured in:
//
//	unit_system: metric
//	items:
//	  - id: box-1
//	    length: 50
//	    width: 40
//	    height: 30
//	    gross_weight: 10
//	    carrier: DHL
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hapkiduki/freight-weight/internal/application/dto"
	"github.com/hapkiduki/freight-weight/internal/domain/valueobject"
)

// ErrInvalidManifest is returned when a manifest cannot be decoded or
// names an unknown unit system or carrier.
var ErrInvalidManifest = errors.New("invalid manifest")

// Load reads the manifest at path.
//
// Parameters:
//   - path: manifest file location
//
// Returns:
//   - dto.CalculationRequest: the shipment, ready for the calculator
//   - error: a read error, or ErrInvalidManifest wrapped with the path
func Load(path string) (dto.CalculationRequest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return dto.CalculationRequest{}, fmt.Errorf("manifest %s: %w", path, err)
	}

	req, err := Decode(bytes.NewReader(b))
	if err != nil {
		return dto.CalculationRequest{}, fmt.Errorf("manifest %s: %w", path, err)
	}
	return req, nil
}

// Decode parses a manifest from r. Unknown keys are rejected.
func Decode(r io.Reader) (dto.CalculationRequest, error) {
	var req dto.CalculationRequest

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return dto.CalculationRequest{}, fmt.Errorf("%w: empty document", ErrInvalidManifest)
		}
		return dto.CalculationRequest{}, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	if err := validate(req); err != nil {
		return dto.CalculationRequest{}, err
	}
	return req, nil
}

func validate(req dto.CalculationRequest) error {
	if req.UnitSystem != "" {
		if _, err := valueobject.ParseUnitSystem(req.UnitSystem); err != nil {
			return fmt.Errorf("%w: unit_system: %w", ErrInvalidManifest, err)
		}
	}
	for i, item := range req.Items {
		if item.Carrier == "" {
			continue
		}
		if _, err := valueobject.ParseCarrier(item.Carrier); err != nil {
			return fmt.Errorf("%w: items[%d].carrier: %w", ErrInvalidManifest, i, err)
		}
	}
	return nil
}

// Write encodes req as a manifest.
func Write(w io.Writer, req dto.CalculationRequest) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(req); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return enc.Close()
}

// Save writes req to path as a manifest, replacing any existing file.
//
// Parameters:
//   - path: manifest file location
//   - req: the shipment to store
//
// Returns:
//   - error: an encode or write error wrapped with the path
func Save(path string, req dto.CalculationRequest) error {
	var buf bytes.Buffer
	if err := Write(&buf, req); err != nil {
		return fmt.Errorf("manifest %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("manifest %s: %w", path, err)
	}
	return nil
}
