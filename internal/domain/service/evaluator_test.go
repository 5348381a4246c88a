package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/model"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/service"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/valueobject"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func baseContext() service.EvalContext {
	return service.EvalContext{
		VehiclePrice: dec(100000),
		LoanAmount:   dec(80000),
		ExShowroom:   dec(95000),
		EngineCC:     dec(125),
		TenureMonths: 36,
		Fuel:         valueobject.FuelPetrol,
	}
}

func TestChargeEvaluator_Evaluate(t *testing.T) {
	ev := service.NewChargeEvaluator()

	t.Run("percentage of gross loan amount sees funded charges accumulated so far", func(t *testing.T) {
		charges := model.ChargeList{
			model.FixedComponent{
				ComponentMeta: model.ComponentMeta{ID: "insurance", Impact: valueobject.ImpactFunded},
				Amount:        dec(5000),
			},
			model.PercentageComponent{
				ComponentMeta: model.ComponentMeta{
					ID:     "processing-fee",
					Basis:  valueobject.BasisGrossLoanAmount,
					Impact: valueobject.ImpactUpfront,
				},
				Percentage: dec(2),
			},
		}

		result := ev.Evaluate(charges, baseContext())

		// 2% of (80000 + 5000).
		assert.True(t, result.ComponentAmounts["processing-fee"].Equal(dec(1700)),
			"got %s", result.ComponentAmounts["processing-fee"])
		assert.True(t, result.FundedTotal.Equal(dec(5000)))
		assert.True(t, result.UpfrontTotal.Equal(dec(1700)))
	})

	t.Run("previous tax total sums every amount computed so far", func(t *testing.T) {
		charges := model.ChargeList{
			model.FixedComponent{
				ComponentMeta: model.ComponentMeta{ID: "a"},
				Amount:        dec(1000),
			},
			model.FixedComponent{
				ComponentMeta: model.ComponentMeta{ID: "b", Impact: valueobject.ImpactFunded},
				Amount:        dec(3000),
			},
			model.PercentageComponent{
				ComponentMeta: model.ComponentMeta{ID: "surcharge", Basis: valueobject.BasisPreviousTaxTotal},
				Percentage:    dec(10),
			},
		}

		result := ev.Evaluate(charges, baseContext())

		assert.True(t, result.ComponentAmounts["surcharge"].Equal(dec(400)),
			"got %s", result.ComponentAmounts["surcharge"])
	})

	t.Run("target component references a prior sibling amount", func(t *testing.T) {
		charges := model.ChargeList{
			model.PercentageComponent{
				ComponentMeta: model.ComponentMeta{ID: "od-premium", Basis: valueobject.BasisExShowroom},
				Percentage:    dec(2),
			},
			model.PercentageComponent{
				ComponentMeta: model.ComponentMeta{
					ID:                "gst-on-od",
					Basis:             valueobject.BasisTargetComponent,
					TargetComponentID: "od-premium",
				},
				Percentage: dec(18),
			},
		}

		result := ev.Evaluate(charges, baseContext())

		// 18% of (2% of 95000).
		assert.True(t, result.ComponentAmounts["gst-on-od"].Equal(dec(342)),
			"got %s", result.ComponentAmounts["gst-on-od"])
	})

	t.Run("missing target component contributes zero", func(t *testing.T) {
		charges := model.ChargeList{
			model.PercentageComponent{
				ComponentMeta: model.ComponentMeta{
					ID:                "orphan",
					Basis:             valueobject.BasisTargetComponent,
					TargetComponentID: "does-not-exist",
				},
				Percentage: dec(18),
			},
		}

		result := ev.Evaluate(charges, baseContext())

		assert.True(t, result.Total().IsZero())
	})

	t.Run("fuel matrix overrides the base rate for the quote fuel", func(t *testing.T) {
		charges := model.ChargeList{
			model.PercentageComponent{
				ComponentMeta: model.ComponentMeta{ID: "road-tax", Basis: valueobject.BasisExShowroom},
				Percentage:    dec(10),
				FuelMatrix:    &model.FuelMatrix{EV: decPtr(4)},
			},
		}

		ctx := baseContext()
		result := ev.Evaluate(charges, ctx)
		assert.True(t, result.ComponentAmounts["road-tax"].Equal(dec(9500)), "got %s", result.ComponentAmounts["road-tax"])

		ctx.Fuel = valueobject.FuelEV
		result = ev.Evaluate(charges, ctx)
		assert.True(t, result.ComponentAmounts["road-tax"].Equal(dec(3800)), "got %s", result.ComponentAmounts["road-tax"])
	})

	t.Run("slab resolution is first match wins over overlapping ranges", func(t *testing.T) {
		charges := model.ChargeList{
			model.SlabComponent{
				ComponentMeta: model.ComponentMeta{ID: "tiered-fee", Basis: valueobject.BasisLoanAmount},
				ValueType:     valueobject.SlabValuePercentage,
				Ranges: []model.SlabRange{
					{Basis: valueobject.SlabBasisLoanAmount, Min: dec(0), Max: decPtr(50000), Value: dec(5)},
					{Basis: valueobject.SlabBasisLoanAmount, Min: dec(20000), Max: decPtr(100000), Value: dec(10)},
				},
			},
		}

		ctx := baseContext()
		ctx.LoanAmount = dec(30000)
		result := ev.Evaluate(charges, ctx)

		// First row wins: 5% of 30000, not 10%.
		assert.True(t, result.ComponentAmounts["tiered-fee"].Equal(dec(1500)),
			"got %s", result.ComponentAmounts["tiered-fee"])
	})

	t.Run("slab bounds are inclusive and nil max is unbounded", func(t *testing.T) {
		charges := model.ChargeList{
			model.SlabComponent{
				ComponentMeta: model.ComponentMeta{ID: "tp-premium"},
				ValueType:     valueobject.SlabValueFixed,
				Ranges: []model.SlabRange{
					{Min: dec(0), Max: decPtr(75), Value: dec(482)},
					{Min: dec(75), Max: decPtr(150), Value: dec(714)},
					{Min: dec(150), Max: decPtr(350), Value: dec(1366)},
					{Min: dec(350), Value: dec(2804)},
				},
			},
		}

		cases := []struct {
			cc   float64
			want float64
		}{
			{74, 482},
			{75, 482},
			{76, 714},
			{150, 714},
			{151, 1366},
			{500, 2804},
		}
		for _, tc := range cases {
			ctx := baseContext()
			ctx.EngineCC = dec(tc.cc)
			result := ev.Evaluate(charges, ctx)
			assert.True(t, result.ComponentAmounts["tp-premium"].Equal(dec(tc.want)),
				"cc=%v got %s", tc.cc, result.ComponentAmounts["tp-premium"])
		}
	})

	t.Run("slab with no matching range contributes zero", func(t *testing.T) {
		charges := model.ChargeList{
			model.SlabComponent{
				ComponentMeta: model.ComponentMeta{ID: "narrow"},
				ValueType:     valueobject.SlabValueFixed,
				Ranges: []model.SlabRange{
					{Min: dec(200), Max: decPtr(350), Value: dec(1366)},
				},
			},
		}

		result := ev.Evaluate(charges, baseContext())

		assert.True(t, result.ComponentAmounts["narrow"].IsZero())
		assert.True(t, result.Total().IsZero())
	})

	t.Run("cess is levied on the computed slab amount", func(t *testing.T) {
		charges := model.ChargeList{
			model.SlabComponent{
				ComponentMeta: model.ComponentMeta{ID: "road-tax"},
				ValueType:     valueobject.SlabValuePercentage,
				Ranges: []model.SlabRange{
					{Min: dec(0), Value: dec(5), CessPercentage: dec(10)},
				},
			},
		}

		result := ev.Evaluate(charges, baseContext())

		// 5% of 100000 = 5000, plus 10% cess on that amount.
		assert.True(t, result.ComponentAmounts["road-tax"].Equal(dec(5500)),
			"got %s", result.ComponentAmounts["road-tax"])
	})

	t.Run("slab rows qualified by fuel are skipped for other fuels", func(t *testing.T) {
		charges := model.ChargeList{
			model.SlabComponent{
				ComponentMeta: model.ComponentMeta{ID: "green-tax"},
				ValueType:     valueobject.SlabValueFixed,
				Ranges: []model.SlabRange{
					{Min: dec(0), Value: dec(0), ApplicableFuels: []valueobject.FuelType{valueobject.FuelEV}},
					{Min: dec(0), Value: dec(1000)},
				},
			},
		}

		ctx := baseContext()
		result := ev.Evaluate(charges, ctx)
		assert.True(t, result.ComponentAmounts["green-tax"].Equal(dec(1000)))

		ctx.Fuel = valueobject.FuelEV
		result = ev.Evaluate(charges, ctx)
		assert.True(t, result.ComponentAmounts["green-tax"].IsZero())
	})

	t.Run("conditional takes the then block when the comparison holds", func(t *testing.T) {
		charges := model.ChargeList{
			model.ConditionalComponent{
				ComponentMeta: model.ComponentMeta{ID: "reg-split"},
				Variable:      "REG_TYPE",
				Operator:      valueobject.OperatorEquals,
				Value:         "COMMERCIAL",
				ThenBlock: model.ChargeList{
					model.FixedComponent{ComponentMeta: model.ComponentMeta{ID: "commercial-fee"}, Amount: dec(2500)},
				},
				ElseBlock: model.ChargeList{
					model.FixedComponent{ComponentMeta: model.ComponentMeta{ID: "private-fee"}, Amount: dec(600)},
				},
			},
		}

		ctx := baseContext()
		ctx.Variables = map[string]string{"REG_TYPE": "COMMERCIAL"}
		result := ev.Evaluate(charges, ctx)
		assert.True(t, result.ComponentAmounts["commercial-fee"].Equal(dec(2500)))
		assert.NotContains(t, result.ComponentAmounts, "private-fee")

		ctx.Variables = map[string]string{"REG_TYPE": "PRIVATE"}
		result = ev.Evaluate(charges, ctx)
		assert.True(t, result.ComponentAmounts["private-fee"].Equal(dec(600)))
		assert.NotContains(t, result.ComponentAmounts, "commercial-fee")
	})

	t.Run("numeric comparison operators parse both sides as decimals", func(t *testing.T) {
		charges := model.ChargeList{
			model.ConditionalComponent{
				ComponentMeta: model.ComponentMeta{ID: "big-engine"},
				Variable:      service.VariableTenure,
				Operator:      valueobject.OperatorGreaterThan,
				Value:         "24",
				ThenBlock: model.ChargeList{
					model.FixedComponent{ComponentMeta: model.ComponentMeta{ID: "long-tenure-fee"}, Amount: dec(750)},
				},
			},
		}

		ctx := baseContext()
		ctx.TenureMonths = 36
		result := ev.Evaluate(charges, ctx)
		assert.True(t, result.ComponentAmounts["long-tenure-fee"].Equal(dec(750)))

		ctx.TenureMonths = 12
		result = ev.Evaluate(charges, ctx)
		assert.NotContains(t, result.ComponentAmounts, "long-tenure-fee")
	})

	t.Run("switch evaluates the first matching case and injects the fuel", func(t *testing.T) {
		charges := model.ChargeList{
			model.SwitchComponent{
				ComponentMeta: model.ComponentMeta{ID: "fuel-switch"},
				Variable:      service.VariableFuelType,
				Cases: []model.SwitchCase{
					{
						MatchValue: "EV",
						Block: model.ChargeList{
							model.PercentageComponent{
								ComponentMeta: model.ComponentMeta{ID: "subsidised-tax", Basis: valueobject.BasisExShowroom},
								Percentage:    dec(2),
								FuelMatrix:    &model.FuelMatrix{EV: decPtr(1)},
							},
						},
					},
					{
						MatchValue: "PETROL",
						Block: model.ChargeList{
							model.FixedComponent{ComponentMeta: model.ComponentMeta{ID: "petrol-levy"}, Amount: dec(300)},
						},
					},
				},
			},
		}

		ctx := baseContext()
		ctx.Fuel = valueobject.FuelEV
		result := ev.Evaluate(charges, ctx)

		// The matched case's block sees EV, so the matrix entry applies.
		assert.True(t, result.ComponentAmounts["subsidised-tax"].Equal(dec(950)),
			"got %s", result.ComponentAmounts["subsidised-tax"])
		assert.NotContains(t, result.ComponentAmounts, "petrol-levy")
	})

	t.Run("switch with no matching case contributes nothing", func(t *testing.T) {
		charges := model.ChargeList{
			model.SwitchComponent{
				ComponentMeta: model.ComponentMeta{ID: "fuel-switch"},
				Variable:      service.VariableFuelType,
				Cases: []model.SwitchCase{
					{MatchValue: "CNG", Block: model.ChargeList{
						model.FixedComponent{ComponentMeta: model.ComponentMeta{ID: "cng-kit"}, Amount: dec(4000)},
					}},
				},
			},
		}

		result := ev.Evaluate(charges, baseContext())

		assert.True(t, result.Total().IsZero())
	})

	t.Run("evaluation is deterministic", func(t *testing.T) {
		charges := model.ChargeList{
			model.PercentageComponent{
				ComponentMeta: model.ComponentMeta{ID: "fee", Basis: valueobject.BasisLoanAmount},
				Percentage:    dec(2.5),
			},
			model.FixedComponent{
				ComponentMeta: model.ComponentMeta{ID: "flat", Impact: valueobject.ImpactFunded},
				Amount:        dec(1200),
			},
		}

		ctx := baseContext()
		first := ev.Evaluate(charges, ctx)
		second := ev.Evaluate(charges, ctx)

		require.True(t, first.FundedTotal.Equal(second.FundedTotal))
		require.True(t, first.UpfrontTotal.Equal(second.UpfrontTotal))
		assert.Equal(t, len(first.ComponentAmounts), len(second.ComponentAmounts))
		for id, amt := range first.ComponentAmounts {
			assert.True(t, amt.Equal(second.ComponentAmounts[id]), "component %s", id)
		}
	})
}
