package valueobject

import "fmt"

// Dimensions represents the physical dimensions of a package.
// The unit (cm or in) is implied by the session's UnitSystem.
type Dimensions struct {
	// Length of the package.
	Length float64 `json:"length"`

	// Width of the package.
	Width float64 `json:"width"`

	// Height of the package.
	Height float64 `json:"height"`
}

// NewDimensions creates a new Dimensions value object.
//
// Parameters:
//   - length: Length of the package
//   - width: Width of the package
//   - height: Height of the package
//
// Returns:
//   - Dimensions: new Dimensions value object
func NewDimensions(length, width, height float64) Dimensions {
	return Dimensions{
		Length: length,
		Width:  width,
		Height: height,
	}
}

// Volume calculates length × width × height.
// No validation is applied; negative inputs yield negative volumes.
//
// Returns:
//   - float64: volume in cm³ or in³
func (d Dimensions) Volume() float64 {
	return d.Length * d.Width * d.Height
}

// VolumetricWeight divides the volume by the effective divisor.
// Under the imperial system the divisor argument is ignored and
// ImperialDivisor is used instead.
//
// Parameters:
//   - divisor: the carrier divisor (metric only)
//   - unit: the active unit system
//
// Returns:
//   - float64: volumetric weight in kg or lb
func (d Dimensions) VolumetricWeight(divisor float64, unit UnitSystem) float64 {
	return d.Volume() / EffectiveDivisor(divisor, unit)
}

// EffectiveDivisor returns the divisor actually applied under unit.
func EffectiveDivisor(divisor float64, unit UnitSystem) float64 {
	if unit.IsImperial() {
		return ImperialDivisor
	}
	return divisor
}

// IsPositive checks if every dimension is greater than zero.
func (d Dimensions) IsPositive() bool {
	return d.Length > 0 && d.Width > 0 && d.Height > 0
}

// String returns the dimensions as they appear in a formula.
//
// Returns:
//   - string: formatted dimensions (e.g., "50 × 40 × 30")
func (d Dimensions) String() string {
	return fmt.Sprintf("%s × %s × %s", FormatNumber(d.Length), FormatNumber(d.Width), FormatNumber(d.Height))
}
