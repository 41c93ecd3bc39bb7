package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/hapkiduki/freight-weight/internal/application/dto"
	"github.com/hapkiduki/freight-weight/internal/application/port"
	"github.com/hapkiduki/freight-weight/internal/domain/entity"
	"github.com/hapkiduki/freight-weight/internal/domain/service"
	"github.com/hapkiduki/freight-weight/internal/domain/valueobject"
)

// ErrTooManyItems is reported when a request exceeds Options.MaxItems.
var ErrTooManyItems = errors.New("too many items")

// Options configures request defaults and limits.
type Options struct {
	// DefaultUnitSystem applies when a request leaves unit_system empty.
	DefaultUnitSystem valueobject.UnitSystem

	// DefaultCarrier applies to items without a carrier.
	DefaultCarrier valueobject.Carrier

	// MaxItems caps items per request; zero means unlimited.
	MaxItems int
}

// DefaultOptions returns metric, DHL and 100 items.
func DefaultOptions() Options {
	return Options{
		DefaultUnitSystem: valueobject.UnitSystemMetric,
		DefaultCarrier:    entity.DefaultCarrier,
		MaxItems:          100,
	}
}

// Calculator runs the rate engine on behalf of the adapters.
// It holds no per-request state and is safe for concurrent use.
type Calculator struct {
	logger port.Logger
	opts   Options
}

// NewCalculator creates a Calculator.
//
// Parameters:
//   - logger: structured logger
//   - opts: request defaults and limits
//
// Returns:
//   - *Calculator: the use case
func NewCalculator(logger port.Logger, opts Options) *Calculator {
	if opts.DefaultUnitSystem == "" {
		opts.DefaultUnitSystem = valueobject.UnitSystemMetric
	}
	if opts.DefaultCarrier == "" {
		opts.DefaultCarrier = entity.DefaultCarrier
	}
	return &Calculator{logger: logger, opts: opts}
}

// Calculate evaluates every item under one unit system and sums the results.
//
// Parameters:
//   - ctx: request context (used for log correlation)
//   - req: raw calculation input
//
// Returns:
//   - *dto.CalculationResponse: per-item results and totals
//   - error: ValidationErrors if the unit system, a carrier, or the item count is invalid
func (c *Calculator) Calculate(ctx context.Context, req dto.CalculationRequest) (*dto.CalculationResponse, error) {
	log := c.logger.WithContext(ctx)

	unit, shipment, err := c.buildShipment(req)
	if err != nil {
		log.Debug("Calculation rejected", "error", err)
		return nil, err
	}

	resp := &dto.CalculationResponse{
		UnitSystem:    unit.String(),
		DimensionUnit: unit.DimensionUnit(),
		WeightUnit:    unit.WeightUnit(),
		Items:         make([]dto.ItemResultResponse, 0, shipment.Len()),
	}

	items := shipment.Items()

	for _, item := range items {
		result := service.Calculate(item, unit)
		defaulted := service.UsesDefaultDivisor(item)
		if defaulted {
			log.Debug("Custom divisor missing, using default",
				"item_id", item.ID,
				"divisor", valueobject.DefaultDivisor,
			)
		}

		resp.Items = append(resp.Items, dto.ItemResultResponse{
			ID:                    item.ID,
			Carrier:               item.Carrier.String(),
			Divisor:               valueobject.EffectiveDivisor(service.ResolveDivisor(item), unit),
			DefaultDivisorApplied: defaulted,
			VolumetricWeight:      result.VolumetricWeight,
			GrossWeight:           item.GrossWeight,
			ChargeableWeight:      result.ChargeableWeight,
			Formula:               result.Formula,
			Complete:              item.IsComplete(),
		})
	}

	totals := service.Aggregate(items, unit)
	resp.Totals = dto.TotalsResponse{
		ItemCount:        len(items),
		VolumetricWeight: totals.VolumetricWeight,
		GrossWeight:      totals.GrossWeight,
		ChargeableWeight: totals.ChargeableWeight,
		Display: dto.TotalsDisplay{
			VolumetricWeight: valueobject.NewWeight(totals.VolumetricWeight, unit).String(),
			GrossWeight:      valueobject.NewWeight(totals.GrossWeight, unit).String(),
			ChargeableWeight: valueobject.NewWeight(totals.ChargeableWeight, unit).String(),
		},
	}

	log.Debug("Shipment calculated",
		"unit_system", unit,
		"items", len(items),
		"total_chargeable", resp.Totals.Display.ChargeableWeight,
	)
	return resp, nil
}

// buildShipment validates the request and converts it into a shipment.
// Items keep request order; IDs must be unique.
func (c *Calculator) buildShipment(req dto.CalculationRequest) (valueobject.UnitSystem, *entity.Shipment, error) {
	var verrs ValidationErrors

	unit := c.opts.DefaultUnitSystem
	if req.UnitSystem != "" {
		parsed, err := valueobject.ParseUnitSystem(req.UnitSystem)
		if err != nil {
			verrs.add("unit_system", req.UnitSystem, err)
		} else {
			unit = parsed
		}
	}

	if c.opts.MaxItems > 0 && len(req.Items) > c.opts.MaxItems {
		verrs.add("items", len(req.Items), fmt.Errorf("%w: at most %d allowed", ErrTooManyItems, c.opts.MaxItems))
		return "", nil, verrs
	}

	shipment := &entity.Shipment{}
	for idx, in := range req.Items {
		item := entity.NewShipmentItemWithID(in.ID)
		item.SetDimensions(valueobject.NewDimensions(in.Length, in.Width, in.Height))
		item.SetGrossWeight(in.GrossWeight)

		if err := shipment.Add(item); err != nil {
			verrs.add(fmt.Sprintf("items[%d].id", idx), in.ID, err)
		}

		carrier := c.opts.DefaultCarrier
		if in.Carrier != "" {
			parsed, err := valueobject.ParseCarrier(in.Carrier)
			if err != nil {
				verrs.add(fmt.Sprintf("items[%d].carrier", idx), in.Carrier, err)
				continue
			}
			carrier = parsed
		}
		item.SetCarrier(carrier)

		// Raw divisor goes straight onto the item: the engine owns the
		// fallback for non-positive values.
		item.CustomDivisor = in.CustomDivisor
	}

	if err := verrs.errOrNil(); err != nil {
		return "", nil, err
	}
	return unit, shipment, nil
}

// Convert converts a single dimension or weight between unit systems.
//
// Parameters:
//   - ctx: request context
//   - req: raw conversion input
//
// Returns:
//   - *dto.ConversionResponse: the converted value
//   - error: ValidationErrors if a system or the kind is unknown
func (c *Calculator) Convert(ctx context.Context, req dto.ConversionRequest) (*dto.ConversionResponse, error) {
	var verrs ValidationErrors

	from, err := valueobject.ParseUnitSystem(req.From)
	if err != nil {
		verrs.add("from", req.From, err)
	}
	to, err := valueobject.ParseUnitSystem(req.To)
	if err != nil {
		verrs.add("to", req.To, err)
	}
	kind, err := valueobject.ParseMeasureKind(req.Kind)
	if err != nil {
		verrs.add("kind", req.Kind, err)
	}
	if err := verrs.errOrNil(); err != nil {
		return nil, err
	}

	result := service.ConvertUnit(req.Value, from, to, kind)
	c.logger.WithContext(ctx).Debug("Unit converted",
		"kind", kind,
		"from", from,
		"to", to,
		"value", req.Value,
		"result", result,
	)

	return &dto.ConversionResponse{
		Value:    req.Value,
		From:     from.String(),
		To:       to.String(),
		Kind:     string(kind),
		FromUnit: unitLabel(from, kind),
		ToUnit:   unitLabel(to, kind),
		Result:   result,
	}, nil
}

// Carriers lists the supported carriers in display order.
func (c *Calculator) Carriers(_ context.Context) []dto.CarrierResponse {
	infos := valueobject.Carriers()
	out := make([]dto.CarrierResponse, 0, len(infos))
	for _, info := range infos {
		out = append(out, dto.CarrierResponse{
			Carrier: info.Carrier.String(),
			Label:   info.Label,
			Divisor: info.Divisor,
		})
	}
	return out
}

func unitLabel(u valueobject.UnitSystem, kind valueobject.MeasureKind) string {
	if kind == valueobject.MeasureWeight {
		return u.WeightUnit()
	}
	return u.DimensionUnit()
}
