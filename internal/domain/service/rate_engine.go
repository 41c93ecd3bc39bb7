// Package service contains stateless domain services.
//
// The rate engine turns shipment items into volumetric and chargeable
// weights. Every function here is a pure projection of its arguments:
// nothing is cached, nothing is mutated, and no error is ever returned.
// Callers recompute on every input change.
package service

import (
	"fmt"

	"github.com/hapkiduki/freight-weight/internal/domain/entity"
	"github.com/hapkiduki/freight-weight/internal/domain/valueobject"
)

// CalculationResult is the derived outcome for one item.
type CalculationResult struct {
	// VolumetricWeight is volume divided by the effective divisor.
	VolumetricWeight float64 `json:"volumetric_weight"`

	// ChargeableWeight is max(VolumetricWeight, GrossWeight).
	ChargeableWeight float64 `json:"chargeable_weight"`

	// Formula shows the arithmetic, e.g. "(50 × 40 × 30) ÷ 5000 = 12.00 kg".
	Formula string `json:"formula"`
}

// Totals sums each weight component across a list of items.
type Totals struct {
	VolumetricWeight float64 `json:"volumetric_weight"`
	GrossWeight      float64 `json:"gross_weight"`
	ChargeableWeight float64 `json:"chargeable_weight"`
}

// ComputeVolumetricWeight returns length × width × height divided by the
// divisor, or by 166 under the imperial system regardless of divisor.
// Inputs are not validated.
//
// Parameters:
//   - length, width, height: package dimensions in the session unit
//   - divisor: carrier divisor (ignored under imperial)
//   - unit: the active unit system
//
// Returns:
//   - float64: volumetric weight in kg or lb
func ComputeVolumetricWeight(length, width, height, divisor float64, unit valueobject.UnitSystem) float64 {
	return valueobject.NewDimensions(length, width, height).VolumetricWeight(divisor, unit)
}

// ResolveDivisor returns the metric divisor for an item.
// Custom carriers use the item's CustomDivisor when positive and fall back
// to 5000 otherwise; other carriers use the fixed table.
//
// Parameters:
//   - item: the item to resolve (read only)
//
// Returns:
//   - float64: the divisor
func ResolveDivisor(item *entity.ShipmentItem) float64 {
	divisor, _ := resolveDivisor(item)
	return divisor
}

// resolveDivisor also reports whether the Custom default was substituted.
func resolveDivisor(item *entity.ShipmentItem) (float64, bool) {
	if item.Carrier.IsCustom() {
		if item.CustomDivisor > 0 {
			return item.CustomDivisor, false
		}
		return valueobject.DefaultDivisor, true
	}
	if d, ok := item.Carrier.Divisor(); ok {
		return d, false
	}
	// Unknown carriers never reach here through the adapters, which parse
	// carriers strictly. Use the common divisor rather than dividing by zero.
	return valueobject.DefaultDivisor, true
}

// UsesDefaultDivisor reports whether ResolveDivisor substitutes the default
// for this item instead of using a configured value.
func UsesDefaultDivisor(item *entity.ShipmentItem) bool {
	_, substituted := resolveDivisor(item)
	return substituted
}

// ConvertUnit converts a dimension or weight between unit systems.
// See valueobject.ConvertUnit.
func ConvertUnit(value float64, from, to valueobject.UnitSystem, kind valueobject.MeasureKind) float64 {
	return valueobject.ConvertUnit(value, from, to, kind)
}

// Calculate computes the volumetric weight, chargeable weight and formula
// for a single item.
//
// Parameters:
//   - item: the item to evaluate (read only)
//   - unit: the active unit system
//
// Returns:
//   - CalculationResult: the derived result
func Calculate(item *entity.ShipmentItem, unit valueobject.UnitSystem) CalculationResult {
	divisor := ResolveDivisor(item)
	dims := item.Dimensions()

	volumetric := valueobject.NewWeight(dims.VolumetricWeight(divisor, unit), unit)
	gross := valueobject.NewWeight(item.GrossWeight, unit)
	chargeable := volumetric.Max(gross)

	return CalculationResult{
		VolumetricWeight: volumetric.Value,
		ChargeableWeight: chargeable.Value,
		Formula:          Formula(dims, valueobject.EffectiveDivisor(divisor, unit), volumetric),
	}
}

// Formula renders "(L × W × H) ÷ D = V unit". D is the divisor actually
// applied, so under imperial it is always 166.
func Formula(dims valueobject.Dimensions, divisor float64, volumetric valueobject.Weight) string {
	return fmt.Sprintf("(%s) ÷ %s = %s", dims, valueobject.FormatNumber(divisor), volumetric)
}

// Aggregate sums volumetric, gross and chargeable weight across items.
// Each component is summed independently. An empty list yields zero totals.
//
// Parameters:
//   - items: the items to sum (read only)
//   - unit: the active unit system
//
// Returns:
//   - Totals: the summed weights
func Aggregate(items []*entity.ShipmentItem, unit valueobject.UnitSystem) Totals {
	volumetric := valueobject.ZeroWeight(unit)
	gross := valueobject.ZeroWeight(unit)
	chargeable := valueobject.ZeroWeight(unit)

	for _, item := range items {
		result := Calculate(item, unit)
		// Every operand shares unit, so Add cannot report ErrUnitMismatch.
		volumetric, _ = volumetric.Add(valueobject.NewWeight(result.VolumetricWeight, unit))
		gross, _ = gross.Add(valueobject.NewWeight(item.GrossWeight, unit))
		chargeable, _ = chargeable.Add(valueobject.NewWeight(result.ChargeableWeight, unit))
	}

	return Totals{
		VolumetricWeight: volumetric.Value,
		GrossWeight:      gross.Value,
		ChargeableWeight: chargeable.Value,
	}
}
