package model_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/model"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/valueobject"
)

func TestChargeList_JSON(t *testing.T) {
	t.Run("a nested formula survives the JSONB round trip", func(t *testing.T) {
		ev := decimal.NewFromInt(4)
		maxCC := decimal.NewFromInt(150)

		original := model.ChargeList{
			model.PercentageComponent{
				ComponentMeta: model.ComponentMeta{
					ID:     "processing-fee",
					Label:  "Processing Fee",
					Basis:  valueobject.BasisGrossLoanAmount,
					Impact: valueobject.ImpactUpfront,
				},
				Percentage: decimal.NewFromInt(2),
			},
			model.SwitchComponent{
				ComponentMeta: model.ComponentMeta{ID: "fuel-switch"},
				Variable:      "FUEL_TYPE",
				Cases: []model.SwitchCase{
					{
						MatchValue: "EV",
						Block: model.ChargeList{
							model.SlabComponent{
								ComponentMeta: model.ComponentMeta{ID: "road-tax", Basis: valueobject.BasisExShowroom},
								ValueType:     valueobject.SlabValuePercentage,
								Ranges: []model.SlabRange{
									{
										Basis:           valueobject.SlabBasisEngineCC,
										Min:             decimal.Zero,
										Max:             &maxCC,
										Value:           decimal.NewFromInt(8),
										CessPercentage:  decimal.NewFromInt(10),
										TenureMonths:    24,
										ApplicableFuels: []valueobject.FuelType{valueobject.FuelEV},
									},
								},
							},
						},
					},
				},
			},
			model.ConditionalComponent{
				ComponentMeta: model.ComponentMeta{ID: "reg-split"},
				Variable:      "REG_TYPE",
				Operator:      valueobject.OperatorEquals,
				Value:         "COMMERCIAL",
				ThenBlock: model.ChargeList{
					model.FixedComponent{
						ComponentMeta: model.ComponentMeta{ID: "permit-fee", Impact: valueobject.ImpactFunded},
						Amount:        decimal.NewFromInt(2500),
						FuelMatrix:    &model.FuelMatrix{EV: &ev},
					},
				},
			},
		}

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded model.ChargeList
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Len(t, decoded, 3)

		pf, ok := decoded[0].(model.PercentageComponent)
		require.True(t, ok)
		assert.Equal(t, "processing-fee", pf.ID)
		assert.True(t, pf.Basis.Equal(valueobject.BasisGrossLoanAmount))
		assert.True(t, pf.Percentage.Equal(decimal.NewFromInt(2)))

		sw, ok := decoded[1].(model.SwitchComponent)
		require.True(t, ok)
		require.Len(t, sw.Cases, 1)
		require.Len(t, sw.Cases[0].Block, 1)

		slab, ok := sw.Cases[0].Block[0].(model.SlabComponent)
		require.True(t, ok)
		require.Len(t, slab.Ranges, 1)
		row := slab.Ranges[0]
		assert.True(t, row.Basis.Equal(valueobject.SlabBasisEngineCC))
		require.NotNil(t, row.Max)
		assert.True(t, row.Max.Equal(decimal.NewFromInt(150)))
		assert.Equal(t, 24, row.TenureMonths)
		require.Len(t, row.ApplicableFuels, 1)
		assert.True(t, row.ApplicableFuels[0].Equal(valueobject.FuelEV))

		cond, ok := decoded[2].(model.ConditionalComponent)
		require.True(t, ok)
		require.Len(t, cond.ThenBlock, 1)
		assert.Empty(t, cond.ElseBlock)

		fixed, ok := cond.ThenBlock[0].(model.FixedComponent)
		require.True(t, ok)
		assert.True(t, fixed.Impact.Equal(valueobject.ImpactFunded))
		require.NotNil(t, fixed.FuelMatrix)
		override, ok := fixed.FuelMatrix.Value(valueobject.FuelEV)
		require.True(t, ok)
		assert.True(t, override.Equal(decimal.NewFromInt(4)))
	})

	t.Run("an unknown discriminator is rejected", func(t *testing.T) {
		var decoded model.ChargeList
		err := json.Unmarshal([]byte(`[{"type":"LOOKUP","id":"x"}]`), &decoded)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown charge component")
	})

	t.Run("an invalid enum value is rejected", func(t *testing.T) {
		var decoded model.ChargeList
		err := json.Unmarshal([]byte(`[{"type":"PERCENTAGE","id":"x","basis":"NET_WORTH"}]`), &decoded)
		require.Error(t, err)
	})
}
