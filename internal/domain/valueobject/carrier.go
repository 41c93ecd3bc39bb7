package valueobject

import (
	"errors"
	"fmt"
	"strings"
)

// Carrier identifies the volumetric-weight standard applied to an item.
type Carrier string

// Supported carriers.
const (
	CarrierIATA   Carrier = "IATA"
	CarrierDHL    Carrier = "DHL"
	CarrierFedEx  Carrier = "FedEx"
	CarrierUPS    Carrier = "UPS"
	CarrierCustom Carrier = "Custom" // Caller supplies its own divisor
)

// Divisor constants.
const (
	// DefaultDivisor is used by DHL, FedEx and UPS, and substituted for a
	// Custom carrier without a positive divisor.
	DefaultDivisor = 5000.0

	// IATADivisor is the air-freight divisor.
	IATADivisor = 6000.0

	// ImperialDivisor converts cubic inches to pounds. Under the imperial
	// system it replaces every carrier divisor.
	ImperialDivisor = 166.0
)

// ErrInvalidCarrier is returned when a carrier name is not recognised.
var ErrInvalidCarrier = errors.New("invalid carrier")

// carrierDivisors is the fixed divisor table. Custom is absent on purpose:
// its divisor comes from the item.
var carrierDivisors = map[Carrier]float64{
	CarrierIATA:  IATADivisor,
	CarrierDHL:   DefaultDivisor,
	CarrierFedEx: DefaultDivisor,
	CarrierUPS:   DefaultDivisor,
}

// CarrierInfo describes a carrier for display in pickers and listings.
type CarrierInfo struct {
	// Carrier is the carrier identifier.
	Carrier Carrier `json:"carrier"`

	// Label is the human-readable name, e.g. "IATA (6000)".
	Label string `json:"label"`

	// Divisor is the nominal metric divisor; zero for Custom.
	Divisor float64 `json:"divisor"`
}

// Carriers returns every supported carrier in display order.
//
// Returns:
//   - []CarrierInfo: a fresh slice the caller may modify
func Carriers() []CarrierInfo {
	order := []Carrier{CarrierIATA, CarrierDHL, CarrierFedEx, CarrierUPS, CarrierCustom}
	out := make([]CarrierInfo, 0, len(order))
	for _, c := range order {
		div, _ := c.Divisor()
		label := string(c)
		if div > 0 {
			label = fmt.Sprintf("%s (%s)", c, FormatNumber(div))
		}
		out = append(out, CarrierInfo{Carrier: c, Label: label, Divisor: div})
	}
	return out
}

// ParseCarrier converts user input into a Carrier, case-insensitively.
//
// Parameters:
//   - s: carrier name such as "dhl" or "FedEx"
//
// Returns:
//   - Carrier: the canonical carrier
//   - error: ErrInvalidCarrier if s names no known carrier
func ParseCarrier(s string) (Carrier, error) {
	trimmed := strings.TrimSpace(s)
	for _, c := range []Carrier{CarrierIATA, CarrierDHL, CarrierFedEx, CarrierUPS, CarrierCustom} {
		if strings.EqualFold(trimmed, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCarrier, s)
}

// Divisor returns the fixed table divisor for the carrier.
//
// Returns:
//   - float64: the divisor, or zero for Custom and unknown carriers
//   - bool: true if the carrier has a table entry
func (c Carrier) Divisor() (float64, bool) {
	d, ok := carrierDivisors[c]
	return d, ok
}

// IsCustom reports whether the carrier takes a caller-supplied divisor.
func (c Carrier) IsCustom() bool {
	return c == CarrierCustom
}

// String implements fmt.Stringer.
func (c Carrier) String() string {
	return string(c)
}
