package valueobject

import "errors"

// ErrUnitMismatch is returned when combining weights from different systems.
var ErrUnitMismatch = errors.New("unit system mismatch in operation")

// Weight represents a mass expressed in a unit system (kg or lb).
//
// Example usage:
//
//	w := valueobject.NewWeight(12, valueobject.UnitSystemMetric)
//	w.String() // "12.00 kg"
type Weight struct {
	// Value is the magnitude in the unit system's weight unit.
	Value float64 `json:"value"`

	// Unit is the unit system the value is expressed in.
	Unit UnitSystem `json:"unit"`
}

// NewWeight creates a new Weight value object.
//
// Parameters:
//   - value: magnitude in kg (metric) or lb (imperial)
//   - unit: the unit system
//
// Returns:
//   - Weight: the created Weight
func NewWeight(value float64, unit UnitSystem) Weight {
	return Weight{Value: value, Unit: unit}
}

// ZeroWeight returns a zero Weight in the given system.
func ZeroWeight(unit UnitSystem) Weight {
	return NewWeight(0, unit)
}

// Add sums two weights. A zero weight adopts the other operand's unit.
//
// Parameters:
//   - other: the Weight to add
//
// Returns:
//   - Weight: the sum
//   - error: ErrUnitMismatch if both are non-zero and units differ
func (w Weight) Add(other Weight) (Weight, error) {
	if w.Unit != other.Unit && !w.IsZero() && !other.IsZero() {
		return Weight{}, ErrUnitMismatch
	}
	unit := w.Unit
	if w.IsZero() && other.Unit != "" {
		unit = other.Unit
	}
	return NewWeight(w.Value+other.Value, unit), nil
}

// Max returns the heavier of two weights in the same system.
// Used to pick the chargeable weight.
func (w Weight) Max(other Weight) Weight {
	if other.Value > w.Value {
		return other
	}
	return w
}

// IsZero checks if the weight is zero.
func (w Weight) IsZero() bool {
	return w.Value == 0
}

// String returns the weight with two decimals and its unit label.
//
// Returns:
//   - string: Formatted string (e.g., "12.00 kg")
func (w Weight) String() string {
	return FormatFixed2(w.Value) + " " + w.Unit.WeightUnit()
}
