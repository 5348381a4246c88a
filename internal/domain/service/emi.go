package service

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// EMI computation
// ---------------------------------------------------------------------------

var hundred = decimal.NewFromInt(100)

// ComputeEMI returns the equated monthly installment for a gross loan
// amount, rounded to the nearest whole currency unit.
//
// FLAT adds simple interest over the full tenure up front and splits the
// total evenly. REDUCING amortizes on the declining balance with the
// standard annuity formula. A zero rate degenerates to an even principal
// split in both models.
func ComputeEMI(grossLoan decimal.Decimal, annualRatePct decimal.Decimal, tenureMonths int, interestType valueobject.InterestType) (decimal.Decimal, error) {
	if tenureMonths <= 0 {
		return decimal.Zero, valueobject.ErrInvalidTenure
	}

	months := decimal.NewFromInt(int64(tenureMonths))

	if interestType.Equal(valueobject.InterestFlat) {
		years := months.Div(decimal.NewFromInt(12))
		interest := grossLoan.Mul(annualRatePct).Mul(years).Div(hundred)
		return grossLoan.Add(interest).Div(months).Round(0), nil
	}

	if annualRatePct.IsZero() {
		return grossLoan.Div(months).Round(0), nil
	}

	// Annuity formula on the monthly rate. float64 keeps the pow cheap; the
	// result is rounded to a whole unit so the precision loss is immaterial.
	principal, _ := grossLoan.Float64()
	rate, _ := annualRatePct.Float64()
	r := rate / 12 / 100
	factor := math.Pow(1+r, float64(tenureMonths))
	emi := principal * r * factor / (factor - 1)

	return decimal.NewFromFloat(emi).Round(0), nil
}
