package dto

// CalculationRequest is the input for a shipment calculation.
type CalculationRequest struct {
	// UnitSystem is "metric" or "imperial"; empty selects the configured default.
	UnitSystem string `json:"unit_system" yaml:"unit_system"`

	// Items are the packages to evaluate, in display order.
	Items []ShipmentItemRequest `json:"items" yaml:"items"`
}

// ShipmentItemRequest carries one item's raw form values.
type ShipmentItemRequest struct {
	// ID identifies the item; empty gets a generated UUID.
	ID string `json:"id,omitempty" yaml:"id"`

	Length      float64 `json:"length" yaml:"length"`
	Width       float64 `json:"width" yaml:"width"`
	Height      float64 `json:"height" yaml:"height"`
	GrossWeight float64 `json:"gross_weight" yaml:"gross_weight"`

	// Carrier is IATA, DHL, FedEx, UPS or Custom; empty selects the default.
	Carrier string `json:"carrier,omitempty" yaml:"carrier"`

	// CustomDivisor applies to the Custom carrier only.
	CustomDivisor float64 `json:"custom_divisor,omitempty" yaml:"custom_divisor"`
}

// CalculationResponse is the outcome of a shipment calculation.
type CalculationResponse struct {
	// UnitSystem is the system the calculation ran under.
	UnitSystem string `json:"unit_system"`

	// DimensionUnit is "cm" or "in".
	DimensionUnit string `json:"dimension_unit"`

	// WeightUnit is "kg" or "lb".
	WeightUnit string `json:"weight_unit"`

	// Items holds one result per requested item, in request order.
	Items []ItemResultResponse `json:"items"`

	// Totals sums every item.
	Totals TotalsResponse `json:"totals"`
}

// ItemResultResponse is the result for one item.
type ItemResultResponse struct {
	ID      string `json:"id"`
	Carrier string `json:"carrier"`

	// Divisor is the divisor shown in the formula (166 under imperial).
	Divisor float64 `json:"divisor"`

	// DefaultDivisorApplied is true when a Custom carrier had no positive divisor.
	DefaultDivisorApplied bool `json:"default_divisor_applied,omitempty"`

	VolumetricWeight float64 `json:"volumetric_weight"`
	GrossWeight      float64 `json:"gross_weight"`
	ChargeableWeight float64 `json:"chargeable_weight"`
	Formula          string  `json:"formula"`

	// Complete is true when every dimension and the gross weight are positive.
	Complete bool `json:"complete"`
}

// TotalsResponse sums weights across items.
type TotalsResponse struct {
	ItemCount        int     `json:"item_count"`
	VolumetricWeight float64 `json:"volumetric_weight"`
	GrossWeight      float64 `json:"gross_weight"`
	ChargeableWeight float64 `json:"chargeable_weight"`

	// Display holds the totals formatted with two decimals and unit.
	Display TotalsDisplay `json:"display"`
}

// TotalsDisplay holds human-readable totals, e.g. "12.00 kg".
type TotalsDisplay struct {
	VolumetricWeight string `json:"volumetric_weight"`
	GrossWeight      string `json:"gross_weight"`
	ChargeableWeight string `json:"chargeable_weight"`
}

// ConversionRequest asks for a single unit conversion.
type ConversionRequest struct {
	Value float64 `json:"value"`
	From  string  `json:"from"`
	To    string  `json:"to"`

	// Kind is "dimension" or "weight".
	Kind string `json:"kind"`
}

// ConversionResponse is the outcome of a unit conversion.
type ConversionResponse struct {
	Value    float64 `json:"value"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Kind     string  `json:"kind"`
	FromUnit string  `json:"from_unit"`
	ToUnit   string  `json:"to_unit"`
	Result   float64 `json:"result"`
}

// CarrierResponse describes a carrier and its nominal divisor.
type CarrierResponse struct {
	Carrier string  `json:"carrier"`
	Label   string  `json:"label"`
	Divisor float64 `json:"divisor"`
}
