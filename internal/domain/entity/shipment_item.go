// Package entity contains the core business entities of the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/hapkiduki/freight-weight/internal/domain/valueobject"
)

// DefaultCarrier is the carrier assigned to freshly created items.
const DefaultCarrier = valueobject.CarrierDHL

// ShipmentItem is a single package in a shipment.
// Dimensions and weight are expressed in the session's unit system,
// which is not stored on the item.
type ShipmentItem struct {
	// ID is the unique identifier of the item within its shipment
	ID string `json:"id"`

	// Length of the package (cm or in)
	Length float64 `json:"length"`

	// Width of the package (cm or in)
	Width float64 `json:"width"`

	// Height of the package (cm or in)
	Height float64 `json:"height"`

	// GrossWeight is the actual weight (kg or lb)
	GrossWeight float64 `json:"gross_weight"`

	// Carrier selects the divisor standard
	Carrier valueobject.Carrier `json:"carrier"`

	// CustomDivisor applies only when Carrier is Custom
	CustomDivisor float64 `json:"custom_divisor"`
}

// NewShipmentItem creates an item with placeholder values: zero dimensions
// and weight, the default carrier, and the default custom divisor.
//
// Returns:
//   - *ShipmentItem: newly created item with a fresh UUID
func NewShipmentItem() *ShipmentItem {
	return NewShipmentItemWithID(uuid.NewString())
}

// NewShipmentItemWithID creates a placeholder item with the given ID.
//
// Parameters:
//   - id: the identifier to assign; an empty id gets a fresh UUID
//
// Returns:
//   - *ShipmentItem: newly created item
func NewShipmentItemWithID(id string) *ShipmentItem {
	if id == "" {
		id = uuid.NewString()
	}
	return &ShipmentItem{
		ID:            id,
		Carrier:       DefaultCarrier,
		CustomDivisor: valueobject.DefaultDivisor,
	}
}

// Dimensions returns the item's dimensions as a value object.
func (i *ShipmentItem) Dimensions() valueobject.Dimensions {
	return valueobject.NewDimensions(i.Length, i.Width, i.Height)
}

// SetDimensions updates length, width and height.
//
// Parameters:
//   - d: new Dimensions value object
func (i *ShipmentItem) SetDimensions(d valueobject.Dimensions) {
	i.Length = d.Length
	i.Width = d.Width
	i.Height = d.Height
}

// SetGrossWeight updates the actual weight.
func (i *ShipmentItem) SetGrossWeight(weight float64) {
	i.GrossWeight = weight
}

// SetCarrier updates the carrier standard.
func (i *ShipmentItem) SetCarrier(c valueobject.Carrier) {
	i.Carrier = c
}

// SetCustomDivisor updates the custom divisor. Non-positive input falls
// back to the default divisor, matching how the form coerces blank input.
//
// Parameters:
//   - divisor: the new divisor
func (i *ShipmentItem) SetCustomDivisor(divisor float64) {
	if divisor <= 0 {
		divisor = valueobject.DefaultDivisor
	}
	i.CustomDivisor = divisor
}

// IsComplete reports whether every dimension and the gross weight are
// positive. Presentation layers show a per-item result only when complete.
func (i *ShipmentItem) IsComplete() bool {
	return i.Dimensions().IsPositive() && i.GrossWeight > 0
}

