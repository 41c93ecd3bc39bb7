package usecase

import (
	"github.com/hapkiduki/freight-weight/internal/application/dto"
	"github.com/hapkiduki/freight-weight/internal/domain/entity"
	"github.com/hapkiduki/freight-weight/internal/domain/valueobject"
)

// Shipment validates req and returns it as an editable shipment, applying
// the same defaults and checks as Calculate.
//
// Parameters:
//   - req: raw shipment input, e.g. a loaded manifest
//
// Returns:
//   - valueobject.UnitSystem: the resolved unit system
//   - *entity.Shipment: the items in request order
//   - error: ValidationErrors if the request is invalid
func (c *Calculator) Shipment(req dto.CalculationRequest) (valueobject.UnitSystem, *entity.Shipment, error) {
	return c.buildShipment(req)
}

// ShipmentRequest converts a shipment back into request form so it can be
// stored. The custom divisor is only carried for Custom items.
func ShipmentRequest(unit valueobject.UnitSystem, s *entity.Shipment) dto.CalculationRequest {
	items := s.Items()
	req := dto.CalculationRequest{
		UnitSystem: unit.String(),
		Items:      make([]dto.ShipmentItemRequest, 0, len(items)),
	}
	for _, item := range items {
		in := dto.ShipmentItemRequest{
			ID:          item.ID,
			Length:      item.Length,
			Width:       item.Width,
			Height:      item.Height,
			GrossWeight: item.GrossWeight,
			Carrier:     item.Carrier.String(),
		}
		if item.Carrier.IsCustom() {
			in.CustomDivisor = item.CustomDivisor
		}
		req.Items = append(req.Items, in)
	}
	return req
}
