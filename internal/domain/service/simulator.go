package service

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/model"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Multi-tenure simulation
// ---------------------------------------------------------------------------

var (
	ErrLoanOutOfRange = errors.New("loan amount outside scheme bounds")
	ErrLTVExceeded    = errors.New("loan amount exceeds maximum LTV")
)

// Default tenure ladder used when a scheme's charge formula carries no
// tenure-qualified slab rows.
var tenureLadder = []int{12, 18, 24, 30, 36, 48, 60}

// SimulationInput is one hypothetical quote to run a scheme against.
type SimulationInput struct {
	VehiclePrice       decimal.Decimal
	LoanAmount         decimal.Decimal
	ExShowroom         decimal.Decimal
	IDV                decimal.Decimal
	ODPremium          decimal.Decimal
	InvoiceBase        decimal.Decimal
	EngineCC           decimal.Decimal
	KWRating           decimal.Decimal
	SeatingCapacity    decimal.Decimal
	GrossVehicleWeight decimal.Decimal
	Fuel               valueobject.FuelType
	Variables          map[string]string
}

// TenureQuote is the simulated outcome for a single tenure.
type TenureQuote struct {
	TenureMonths    int
	FundedCharges   decimal.Decimal
	UpfrontCharges  decimal.Decimal
	GrossLoanAmount decimal.Decimal
	Downpayment     decimal.Decimal
	EMI             decimal.Decimal
}

// SimulationResult holds one quote per candidate tenure, ascending.
type SimulationResult struct {
	Quotes []TenureQuote
}

// Simulator runs a scheme's charge formula and EMI math across every
// candidate tenure of the scheme.
type Simulator struct {
	evaluator *ChargeEvaluator
}

// NewSimulator creates a Simulator.
func NewSimulator() *Simulator {
	return &Simulator{evaluator: NewChargeEvaluator()}
}

// Simulate validates the requested loan against the scheme's bounds, then
// produces a quote per candidate tenure. Charges are re-evaluated for each
// tenure because slab rows may be tenure-qualified.
func (s *Simulator) Simulate(scheme model.Scheme, in SimulationInput) (SimulationResult, error) {
	if in.LoanAmount.LessThan(scheme.MinLoanAmount()) || in.LoanAmount.GreaterThan(scheme.MaxLoanAmount()) {
		return SimulationResult{}, ErrLoanOutOfRange
	}
	if in.VehiclePrice.IsPositive() {
		ltvCap := in.VehiclePrice.Mul(scheme.MaxLTV()).Div(hundred)
		if in.LoanAmount.GreaterThan(ltvCap) {
			return SimulationResult{}, ErrLTVExceeded
		}
	}

	tenures := candidateTenures(scheme)
	quotes := make([]TenureQuote, 0, len(tenures))

	for _, tenure := range tenures {
		ctx := EvalContext{
			VehiclePrice:       in.VehiclePrice,
			LoanAmount:         in.LoanAmount,
			ExShowroom:         in.ExShowroom,
			IDV:                in.IDV,
			ODPremium:          in.ODPremium,
			InvoiceBase:        in.InvoiceBase,
			EngineCC:           in.EngineCC,
			KWRating:           in.KWRating,
			SeatingCapacity:    in.SeatingCapacity,
			GrossVehicleWeight: in.GrossVehicleWeight,
			TenureMonths:       tenure,
			Fuel:               in.Fuel,
			Variables:          in.Variables,
		}

		eval := s.evaluator.Evaluate(scheme.Charges(), ctx)
		gross := in.LoanAmount.Add(eval.FundedTotal)

		emi, err := ComputeEMI(gross, scheme.InterestRate(), tenure, scheme.InterestType())
		if err != nil {
			return SimulationResult{}, err
		}

		quotes = append(quotes, TenureQuote{
			TenureMonths:    tenure,
			FundedCharges:   eval.FundedTotal,
			UpfrontCharges:  eval.UpfrontTotal,
			GrossLoanAmount: gross,
			Downpayment:     in.VehiclePrice.Sub(in.LoanAmount).Add(eval.UpfrontTotal),
			EMI:             emi,
		})
	}

	return SimulationResult{Quotes: quotes}, nil
}

// candidateTenures derives the tenures worth quoting. Tenure-qualified slab
// rows drive the set when present; otherwise the standard ladder clipped to
// the scheme's bounds; a scheme too narrow for the ladder quotes only its
// max tenure.
func candidateTenures(scheme model.Scheme) []int {
	seen := make(map[int]struct{})
	collectSlabTenures(scheme.Charges(), seen)

	if len(seen) > 0 {
		out := make([]int, 0, len(seen))
		for t := range seen {
			out = append(out, t)
		}
		sort.Ints(out)
		return out
	}

	var out []int
	for _, t := range tenureLadder {
		if t >= scheme.MinTenure() && t <= scheme.MaxTenure() {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		out = []int{scheme.MaxTenure()}
	}
	return out
}

func collectSlabTenures(charges model.ChargeList, seen map[int]struct{}) {
	for _, c := range charges {
		switch v := c.(type) {
		case model.SlabComponent:
			for _, r := range v.Ranges {
				if r.TenureMonths > 0 {
					seen[r.TenureMonths] = struct{}{}
				}
			}
		case model.ConditionalComponent:
			collectSlabTenures(v.ThenBlock, seen)
			collectSlabTenures(v.ElseBlock, seen)
		case model.SwitchComponent:
			for _, cs := range v.Cases {
				collectSlabTenures(cs.Block, seen)
			}
		}
	}
}
