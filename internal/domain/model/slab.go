package model

import (
	"github.com/shopspring/decimal"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// SlabRange – one row of a tiered charge table.
//
// Rows are matched in stored order and the first match wins, so overlapping
// ranges are legal and resolved deterministically. A row with TenureMonths 0
// matches any tenure; a row with an empty ApplicableFuels list matches any
// fuel.
// ---------------------------------------------------------------------------

// SlabRange is a closed interval [Min, Max] over a slab basis quantity.
// A nil Max means the range is unbounded above. With inclusive bounds a
// value sitting on the shared boundary of a contiguous table satisfies
// both rows; first-match-wins picks the earlier one.
type SlabRange struct {
	ID              string                  `json:"id,omitempty"`
	Basis           valueobject.SlabBasis   `json:"slab_basis,omitempty"`
	Min             decimal.Decimal         `json:"min"`
	Max             *decimal.Decimal        `json:"max,omitempty"`
	Value           decimal.Decimal         `json:"value"`
	CessPercentage  decimal.Decimal         `json:"cess_percentage,omitempty"`
	TenureMonths    int                     `json:"tenure_months,omitempty"`
	ApplicableFuels []valueobject.FuelType  `json:"applicable_fuels,omitempty"`
}

// Contains reports whether the given quantity falls inside [Min, Max].
func (r SlabRange) Contains(v decimal.Decimal) bool {
	if v.LessThan(r.Min) {
		return false
	}
	if r.Max != nil && v.GreaterThan(*r.Max) {
		return false
	}
	return true
}

func (r SlabRange) matchesTenure(tenureMonths int) bool {
	return r.TenureMonths == 0 || r.TenureMonths == tenureMonths
}

func (r SlabRange) matchesFuel(fuel valueobject.FuelType) bool {
	if len(r.ApplicableFuels) == 0 || fuel.IsZero() {
		return true
	}
	for _, f := range r.ApplicableFuels {
		if f.Equal(fuel) {
			return true
		}
	}
	return false
}

// ResolveSlab walks the ranges in stored order and returns the first row
// whose fuel and tenure qualifiers match and whose interval contains the
// row's basis quantity. valueOf maps a slab basis to the quantity being
// bounded (engine cc, ex-showroom price, loan amount, ...). No match
// returns ok == false; a slab that resolves nothing contributes zero.
func ResolveSlab(ranges []SlabRange, valueOf func(valueobject.SlabBasis) decimal.Decimal, tenureMonths int, fuel valueobject.FuelType) (SlabRange, bool) {
	for _, r := range ranges {
		if !r.matchesFuel(fuel) {
			continue
		}
		if !r.matchesTenure(tenureMonths) {
			continue
		}
		if r.Contains(valueOf(r.Basis)) {
			return r, true
		}
	}
	return SlabRange{}, false
}
