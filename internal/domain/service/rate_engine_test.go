package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/freight-weight/internal/domain/entity"
	"github.com/hapkiduki/freight-weight/internal/domain/valueobject"
)

func newItem(l, w, h, gross float64, carrier valueobject.Carrier) *entity.ShipmentItem {
	item := entity.NewShipmentItemWithID("item")
	item.SetDimensions(valueobject.NewDimensions(l, w, h))
	item.SetGrossWeight(gross)
	item.SetCarrier(carrier)
	return item
}

func TestResolveDivisor(t *testing.T) {
	tests := []struct {
		name          string
		carrier       valueobject.Carrier
		customDivisor float64
		want          float64
	}{
		{"IATA", valueobject.CarrierIATA, 0, 6000},
		{"DHL", valueobject.CarrierDHL, 0, 5000},
		{"FedEx", valueobject.CarrierFedEx, 0, 5000},
		{"UPS", valueobject.CarrierUPS, 0, 5000},
		{"custom divisor", valueobject.CarrierCustom, 4500, 4500},
		{"custom unset falls back", valueobject.CarrierCustom, 0, 5000},
		{"custom negative falls back", valueobject.CarrierCustom, -10, 5000},
		{"custom divisor ignored for table carrier", valueobject.CarrierIATA, 4500, 6000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &entity.ShipmentItem{ID: "x", Carrier: tt.carrier, CustomDivisor: tt.customDivisor}
			assert.Equal(t, tt.want, ResolveDivisor(item))
		})
	}
}

func TestUsesDefaultDivisor(t *testing.T) {
	assert.True(t, UsesDefaultDivisor(&entity.ShipmentItem{Carrier: valueobject.CarrierCustom}))
	assert.False(t, UsesDefaultDivisor(&entity.ShipmentItem{Carrier: valueobject.CarrierCustom, CustomDivisor: 3000}))
	assert.False(t, UsesDefaultDivisor(&entity.ShipmentItem{Carrier: valueobject.CarrierDHL}))
}

func TestComputeVolumetricWeight(t *testing.T) {
	t.Run("metric uses divisor", func(t *testing.T) {
		got := ComputeVolumetricWeight(50, 40, 30, 5000, valueobject.UnitSystemMetric)
		assert.InDelta(t, 12.0, got, 1e-12)
	})

	t.Run("imperial ignores divisor", func(t *testing.T) {
		a := ComputeVolumetricWeight(50, 40, 30, 5000, valueobject.UnitSystemImperial)
		b := ComputeVolumetricWeight(50, 40, 30, 6000, valueobject.UnitSystemImperial)
		assert.Equal(t, a, b)
		assert.InDelta(t, 60000.0/166, a, 1e-12)
	})

	t.Run("zero dimension yields zero", func(t *testing.T) {
		assert.Zero(t, ComputeVolumetricWeight(0, 40, 30, 5000, valueobject.UnitSystemMetric))
	})

	t.Run("negative dimension flows through", func(t *testing.T) {
		got := ComputeVolumetricWeight(-50, 40, 30, 5000, valueobject.UnitSystemMetric)
		assert.InDelta(t, -12.0, got, 1e-12)
	})
}

func TestCalculate_Scenarios(t *testing.T) {
	tests := []struct {
		name           string
		item           *entity.ShipmentItem
		unit           valueobject.UnitSystem
		wantVolumetric string
		wantChargeable string
		wantFormula    string
	}{
		{
			name:           "DHL metric",
			item:           newItem(50, 40, 30, 10, valueobject.CarrierDHL),
			unit:           valueobject.UnitSystemMetric,
			wantVolumetric: "12.00",
			wantChargeable: "12.00",
			wantFormula:    "(50 × 40 × 30) ÷ 5000 = 12.00 kg",
		},
		{
			name:           "DHL imperial",
			item:           newItem(50, 40, 30, 10, valueobject.CarrierDHL),
			unit:           valueobject.UnitSystemImperial,
			wantVolumetric: "361.45",
			wantChargeable: "361.45",
			wantFormula:    "(50 × 40 × 30) ÷ 166 = 361.45 lb",
		},
		{
			name:           "IATA metric gross dominates",
			item:           newItem(50, 40, 30, 25, valueobject.CarrierIATA),
			unit:           valueobject.UnitSystemMetric,
			wantVolumetric: "10.00",
			wantChargeable: "25.00",
			wantFormula:    "(50 × 40 × 30) ÷ 6000 = 10.00 kg",
		},
		{
			name: "custom divisor metric",
			item: func() *entity.ShipmentItem {
				i := newItem(50, 40, 30, 10, valueobject.CarrierCustom)
				i.SetCustomDivisor(3000)
				return i
			}(),
			unit:           valueobject.UnitSystemMetric,
			wantVolumetric: "20.00",
			wantChargeable: "20.00",
			wantFormula:    "(50 × 40 × 30) ÷ 3000 = 20.00 kg",
		},
		{
			name:           "fractional dimensions",
			item:           newItem(12.5, 10, 8, 0.5, valueobject.CarrierUPS),
			unit:           valueobject.UnitSystemMetric,
			wantVolumetric: "0.20",
			wantChargeable: "0.50",
			wantFormula:    "(12.5 × 10 × 8) ÷ 5000 = 0.20 kg",
		},
		{
			name:           "just below a tie rounds down",
			item:           newItem(5025, 1, 1, 0.5, valueobject.CarrierDHL),
			unit:           valueobject.UnitSystemMetric,
			wantVolumetric: "1.00",
			wantChargeable: "1.00",
			wantFormula:    "(5025 × 1 × 1) ÷ 5000 = 1.00 kg",
		},
		{
			name:           "2.675 stored below the tie",
			item:           newItem(13375, 1, 1, 1, valueobject.CarrierDHL),
			unit:           valueobject.UnitSystemMetric,
			wantVolumetric: "2.67",
			wantChargeable: "2.67",
			wantFormula:    "(13375 × 1 × 1) ÷ 5000 = 2.67 kg",
		},
		{
			name:           "0.145 stored below the tie",
			item:           newItem(725, 1, 1, 0.1, valueobject.CarrierDHL),
			unit:           valueobject.UnitSystemMetric,
			wantVolumetric: "0.14",
			wantChargeable: "0.14",
			wantFormula:    "(725 × 1 × 1) ÷ 5000 = 0.14 kg",
		},
		{
			name:           "exact tie rounds up",
			item:           newItem(625, 1, 1, 0.1, valueobject.CarrierDHL),
			unit:           valueobject.UnitSystemMetric,
			wantVolumetric: "0.13",
			wantChargeable: "0.13",
			wantFormula:    "(625 × 1 × 1) ÷ 5000 = 0.13 kg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.item, tt.unit)

			assert.Equal(t, tt.wantVolumetric, valueobject.FormatFixed2(got.VolumetricWeight))
			assert.Equal(t, tt.wantChargeable, valueobject.FormatFixed2(got.ChargeableWeight))
			assert.Equal(t, tt.wantFormula, got.Formula)
		})
	}
}

func TestCalculate_DoesNotMutateItem(t *testing.T) {
	item := newItem(50, 40, 30, 10, valueobject.CarrierCustom)
	item.CustomDivisor = 0
	before := *item

	_ = Calculate(item, valueobject.UnitSystemMetric)

	assert.Equal(t, before, *item)
}

func TestCalculate_ChargeableIsUpperBound(t *testing.T) {
	carriers := []valueobject.Carrier{
		valueobject.CarrierIATA, valueobject.CarrierDHL, valueobject.CarrierFedEx,
		valueobject.CarrierUPS, valueobject.CarrierCustom,
	}
	units := []valueobject.UnitSystem{valueobject.UnitSystemMetric, valueobject.UnitSystemImperial}
	dims := []float64{0, 0.1, 1, 7.5, 30, 120}
	weights := []float64{0, 0.3, 10, 500}

	for _, c := range carriers {
		for _, u := range units {
			for _, d := range dims {
				for _, w := range weights {
					item := newItem(d, d*2, d+1, w, c)
					r := Calculate(item, u)
					require.GreaterOrEqual(t, r.ChargeableWeight, w)
					require.GreaterOrEqual(t, r.ChargeableWeight, r.VolumetricWeight)
				}
			}
		}
	}
}

func TestAggregate(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		assert.Equal(t, Totals{}, Aggregate(nil, valueobject.UnitSystemMetric))
		assert.Equal(t, Totals{}, Aggregate([]*entity.ShipmentItem{}, valueobject.UnitSystemImperial))
	})

	t.Run("single item equals calculate", func(t *testing.T) {
		item := newItem(50, 40, 30, 10, valueobject.CarrierDHL)
		for _, u := range []valueobject.UnitSystem{valueobject.UnitSystemMetric, valueobject.UnitSystemImperial} {
			r := Calculate(item, u)
			totals := Aggregate([]*entity.ShipmentItem{item}, u)

			assert.Equal(t, r.VolumetricWeight, totals.VolumetricWeight)
			assert.Equal(t, item.GrossWeight, totals.GrossWeight)
			assert.Equal(t, r.ChargeableWeight, totals.ChargeableWeight)
		}
	})

	t.Run("components summed independently", func(t *testing.T) {
		bulky := newItem(50, 40, 30, 10, valueobject.CarrierDHL) // volumetric 12, chargeable 12
		dense := newItem(10, 10, 10, 8, valueobject.CarrierDHL)  // volumetric 0.2, chargeable 8

		totals := Aggregate([]*entity.ShipmentItem{bulky, dense}, valueobject.UnitSystemMetric)

		assert.InDelta(t, 12.2, totals.VolumetricWeight, 1e-9)
		assert.InDelta(t, 18.0, totals.GrossWeight, 1e-9)
		assert.InDelta(t, 20.0, totals.ChargeableWeight, 1e-9)
		// Not max(12.2, 18) of the sums.
		assert.NotEqual(t, math.Max(totals.VolumetricWeight, totals.GrossWeight), totals.ChargeableWeight)
	})
}

func TestConvertUnit_RoundTrip(t *testing.T) {
	values := []float64{0, 1, 2.54, 10, 123.456, 99999.9}
	kinds := []valueobject.MeasureKind{valueobject.MeasureDimension, valueobject.MeasureWeight}
	pairs := [][2]valueobject.UnitSystem{
		{valueobject.UnitSystemMetric, valueobject.UnitSystemImperial},
		{valueobject.UnitSystemImperial, valueobject.UnitSystemMetric},
	}

	for _, k := range kinds {
		for _, p := range pairs {
			for _, v := range values {
				back := ConvertUnit(ConvertUnit(v, p[0], p[1], k), p[1], p[0], k)
				tolerance := 1e-9 * math.Max(1, math.Abs(v))
				assert.InDelta(t, v, back, tolerance, "kind=%s %s->%s v=%v", k, p[0], p[1], v)
			}
		}
	}
}
