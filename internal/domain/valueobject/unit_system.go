// Package valueobject contains value objects that represent concepts without identity.
// Value objects are immutable and compared by their attributes rather than identity.
//
// Value Objects follow these principles:
//   - Immutability: Once created, they cannot be changed.
//   - Equality: Two value objects are equal if all their attributes are equal.
//   - Side-effect free: Methods return new instances rather than modifying state
package valueobject

import (
	"errors"
	"fmt"
	"strings"
)

// UnitSystem identifies the measurement system shared by every item in a
// calculation session.
type UnitSystem string

// Supported unit systems.
const (
	UnitSystemMetric   UnitSystem = "metric"   // centimetres and kilograms
	UnitSystemImperial UnitSystem = "imperial" // inches and pounds
)

// MeasureKind selects which conversion factor ConvertUnit applies.
type MeasureKind string

const (
	MeasureDimension MeasureKind = "dimension"
	MeasureWeight    MeasureKind = "weight"
)

// Unit errors define domain-specific error conditions.
var (
	ErrInvalidUnitSystem  = errors.New("invalid unit system")
	ErrInvalidMeasureKind = errors.New("invalid measure kind")
)

// Conversion constants between the two supported systems.
const (
	CentimetresPerInch = 2.54
	PoundsPerKilogram  = 2.20462
)

// ParseUnitSystem converts user input into a UnitSystem.
// Matching is case-insensitive and ignores surrounding whitespace.
//
// Parameters:
//   - s: textual unit system ("metric" or "imperial")
//
// Returns:
//   - UnitSystem: the parsed unit system
//   - error: ErrInvalidUnitSystem if s names no known system
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch UnitSystem(strings.ToLower(strings.TrimSpace(s))) {
	case UnitSystemMetric:
		return UnitSystemMetric, nil
	case UnitSystemImperial:
		return UnitSystemImperial, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidUnitSystem, s)
}

// ParseMeasureKind converts user input into a MeasureKind.
func ParseMeasureKind(s string) (MeasureKind, error) {
	switch MeasureKind(strings.ToLower(strings.TrimSpace(s))) {
	case MeasureDimension:
		return MeasureDimension, nil
	case MeasureWeight:
		return MeasureWeight, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMeasureKind, s)
}

// IsImperial reports whether u is the imperial system.
func (u UnitSystem) IsImperial() bool {
	return u == UnitSystemImperial
}

// DimensionUnit returns the length label for the system ("cm" or "in").
func (u UnitSystem) DimensionUnit() string {
	if u.IsImperial() {
		return "in"
	}
	return "cm"
}

// WeightUnit returns the weight label for the system ("kg" or "lb").
func (u UnitSystem) WeightUnit() string {
	if u.IsImperial() {
		return "lb"
	}
	return "kg"
}

// String implements fmt.Stringer.
func (u UnitSystem) String() string {
	return string(u)
}

// ConvertUnit converts a value between unit systems.
// It is the identity when from equals to. Dimensions convert between
// centimetres and inches, weights between kilograms and pounds.
// Unknown systems or kinds leave the value untouched.
//
// Parameters:
//   - value: the magnitude to convert
//   - from: the system value is expressed in
//   - to: the target system
//   - kind: dimension or weight
//
// Returns:
//   - float64: the converted magnitude
func ConvertUnit(value float64, from, to UnitSystem, kind MeasureKind) float64 {
	if from == to {
		return value
	}

	switch kind {
	case MeasureDimension:
		if from == UnitSystemMetric && to == UnitSystemImperial {
			return value / CentimetresPerInch
		}
		if from == UnitSystemImperial && to == UnitSystemMetric {
			return value * CentimetresPerInch
		}
	case MeasureWeight:
		if from == UnitSystemMetric && to == UnitSystemImperial {
			return value * PoundsPerKilogram
		}
		if from == UnitSystemImperial && to == UnitSystemMetric {
			return value / PoundsPerKilogram
		}
	}
	return value
}
