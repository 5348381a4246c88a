package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/model"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/service"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/valueobject"
)

func testScheme(t *testing.T, charges model.ChargeList) model.Scheme {
	t.Helper()
	scheme, err := model.NewScheme("tenant-001", model.SchemeTerms{
		Name:          "Standard 2W Retail",
		PartnerName:   "Apex Capital",
		InterestRate:  decimal.NewFromFloat(10.5),
		InterestType:  valueobject.InterestReducing,
		MinTenure:     12,
		MaxTenure:     36,
		MinLoanAmount: decimal.NewFromInt(30000),
		MaxLoanAmount: decimal.NewFromInt(150000),
		MaxLTV:        decimal.NewFromInt(85),
		Payout:        decimal.NewFromInt(2),
		PayoutType:    valueobject.PayoutPercentage,
	}, charges, time.Now().UTC())
	require.NoError(t, err)
	return scheme
}

func standardInput() service.SimulationInput {
	return service.SimulationInput{
		VehiclePrice: dec(100000),
		LoanAmount:   dec(80000),
		ExShowroom:   dec(95000),
		EngineCC:     dec(125),
		Fuel:         valueobject.FuelPetrol,
	}
}

func TestSimulator_Simulate(t *testing.T) {
	sim := service.NewSimulator()

	t.Run("quotes the standard ladder clipped to the scheme bounds", func(t *testing.T) {
		scheme := testScheme(t, model.ChargeList{
			model.PercentageComponent{
				ComponentMeta: model.ComponentMeta{
					ID:     "processing-fee",
					Basis:  valueobject.BasisGrossLoanAmount,
					Impact: valueobject.ImpactUpfront,
				},
				Percentage: dec(2),
			},
		})

		result, err := sim.Simulate(scheme, standardInput())
		require.NoError(t, err)

		tenures := make([]int, 0, len(result.Quotes))
		for _, q := range result.Quotes {
			tenures = append(tenures, q.TenureMonths)
		}
		assert.Equal(t, []int{12, 18, 24, 30, 36}, tenures)

		for _, q := range result.Quotes {
			assert.True(t, q.UpfrontCharges.Equal(dec(1600)), "tenure %d upfront %s", q.TenureMonths, q.UpfrontCharges)
			assert.True(t, q.GrossLoanAmount.Equal(dec(80000)))
			assert.True(t, q.Downpayment.Equal(dec(21600)), "tenure %d downpayment %s", q.TenureMonths, q.Downpayment)
		}

		last := result.Quotes[len(result.Quotes)-1]
		assert.Equal(t, 36, last.TenureMonths)
		assert.True(t, last.EMI.Equal(dec(2600)), "got %s", last.EMI)
	})

	t.Run("funded charges roll into the gross loan amount", func(t *testing.T) {
		scheme := testScheme(t, model.ChargeList{
			model.FixedComponent{
				ComponentMeta: model.ComponentMeta{ID: "insurance", Impact: valueobject.ImpactFunded},
				Amount:        dec(5000),
			},
		})

		result, err := sim.Simulate(scheme, standardInput())
		require.NoError(t, err)
		require.NotEmpty(t, result.Quotes)

		for _, q := range result.Quotes {
			assert.True(t, q.FundedCharges.Equal(dec(5000)))
			assert.True(t, q.GrossLoanAmount.Equal(dec(85000)))
			// Funded charges never touch the downpayment.
			assert.True(t, q.Downpayment.Equal(dec(20000)), "tenure %d downpayment %s", q.TenureMonths, q.Downpayment)
		}
	})

	t.Run("tenure qualified slab rows drive the candidate set", func(t *testing.T) {
		scheme := testScheme(t, model.ChargeList{
			model.SlabComponent{
				ComponentMeta: model.ComponentMeta{ID: "rate-matrix", Basis: valueobject.BasisLoanAmount},
				ValueType:     valueobject.SlabValuePercentage,
				Ranges: []model.SlabRange{
					{Basis: valueobject.SlabBasisLoanAmount, Min: dec(0), Value: dec(1), TenureMonths: 24},
					{Basis: valueobject.SlabBasisLoanAmount, Min: dec(0), Value: dec(2), TenureMonths: 12},
				},
			},
		})

		result, err := sim.Simulate(scheme, standardInput())
		require.NoError(t, err)
		require.Len(t, result.Quotes, 2)

		assert.Equal(t, 12, result.Quotes[0].TenureMonths)
		assert.Equal(t, 24, result.Quotes[1].TenureMonths)

		// Each tenure resolves its own row: 2% at 12 months, 1% at 24.
		assert.True(t, result.Quotes[0].UpfrontCharges.Equal(dec(1600)), "got %s", result.Quotes[0].UpfrontCharges)
		assert.True(t, result.Quotes[1].UpfrontCharges.Equal(dec(800)), "got %s", result.Quotes[1].UpfrontCharges)
	})

	t.Run("scheme too narrow for the ladder quotes only its max tenure", func(t *testing.T) {
		scheme, err := model.NewScheme("tenant-001", model.SchemeTerms{
			Name:          "Short Tenure Special",
			InterestRate:  decimal.NewFromFloat(10.5),
			InterestType:  valueobject.InterestReducing,
			MinTenure:     13,
			MaxTenure:     15,
			MinLoanAmount: decimal.NewFromInt(30000),
			MaxLoanAmount: decimal.NewFromInt(150000),
			MaxLTV:        decimal.NewFromInt(85),
			PayoutType:    valueobject.PayoutPercentage,
		}, nil, time.Now().UTC())
		require.NoError(t, err)

		result, err := sim.Simulate(scheme, standardInput())
		require.NoError(t, err)
		require.Len(t, result.Quotes, 1)
		assert.Equal(t, 15, result.Quotes[0].TenureMonths)
	})

	t.Run("rejects a loan outside the scheme bounds", func(t *testing.T) {
		scheme := testScheme(t, nil)

		in := standardInput()
		in.LoanAmount = dec(20000)
		_, err := sim.Simulate(scheme, in)
		require.ErrorIs(t, err, service.ErrLoanOutOfRange)

		in.LoanAmount = dec(200000)
		_, err = sim.Simulate(scheme, in)
		require.ErrorIs(t, err, service.ErrLoanOutOfRange)
	})

	t.Run("rejects a loan above the LTV cap", func(t *testing.T) {
		scheme := testScheme(t, nil)

		in := standardInput()
		in.LoanAmount = dec(90000) // 85% of 100000 is 85000
		_, err := sim.Simulate(scheme, in)
		require.ErrorIs(t, err, service.ErrLTVExceeded)
	})

	t.Run("simulation is deterministic across runs", func(t *testing.T) {
		scheme := testScheme(t, model.ChargeList{
			model.PercentageComponent{
				ComponentMeta: model.ComponentMeta{ID: "fee", Basis: valueobject.BasisGrossLoanAmount},
				Percentage:    dec(2),
			},
		})

		first, err := sim.Simulate(scheme, standardInput())
		require.NoError(t, err)
		second, err := sim.Simulate(scheme, standardInput())
		require.NoError(t, err)

		require.Len(t, second.Quotes, len(first.Quotes))
		for i := range first.Quotes {
			assert.Equal(t, first.Quotes[i].TenureMonths, second.Quotes[i].TenureMonths)
			assert.True(t, first.Quotes[i].EMI.Equal(second.Quotes[i].EMI))
			assert.True(t, first.Quotes[i].Downpayment.Equal(second.Quotes[i].Downpayment))
		}
	})
}
