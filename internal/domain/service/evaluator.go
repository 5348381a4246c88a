package service

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/model"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Charge evaluation
//
// Evaluation walks a charge list in declaration order, threading running
// totals so that order-sensitive bases (GROSS_LOAN_AMOUNT,
// PREVIOUS_TAX_TOTAL, TARGET_COMPONENT) resolve against what has already
// been computed. Nested CONDITIONAL and SWITCH blocks share the parent
// scope: their amounts merge into the same totals and component map.
// ---------------------------------------------------------------------------

// Condition variables resolvable without an explicit entry in Variables.
const (
	VariableFuelType = "FUEL_TYPE"
	VariableTenure   = "TENURE"
)

// EvalContext carries the quote inputs a charge formula is evaluated
// against. Amount fields left at zero simply yield zero-valued charges.
type EvalContext struct {
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
	TenureMonths       int
	Fuel               valueobject.FuelType
	Variables          map[string]string
}

// Evaluation is the outcome of evaluating a charge list.
type Evaluation struct {
	FundedTotal      decimal.Decimal
	UpfrontTotal     decimal.Decimal
	ComponentAmounts map[string]decimal.Decimal
}

// Total returns the sum of funded and upfront charges.
func (e Evaluation) Total() decimal.Decimal {
	return e.FundedTotal.Add(e.UpfrontTotal)
}

// ChargeEvaluator evaluates charge formulas against quote inputs.
type ChargeEvaluator struct{}

// NewChargeEvaluator creates a ChargeEvaluator.
func NewChargeEvaluator() *ChargeEvaluator {
	return &ChargeEvaluator{}
}

type evalState struct {
	funded       decimal.Decimal
	upfront      decimal.Decimal
	runningTotal decimal.Decimal
	amounts      map[string]decimal.Decimal
}

// Evaluate computes every charge in the list against the context and
// partitions the amounts into funded and upfront totals. Evaluation is
// pure: the same charges and context always produce the same result.
func (ev *ChargeEvaluator) Evaluate(charges model.ChargeList, ctx EvalContext) Evaluation {
	st := &evalState{
		funded:       decimal.Zero,
		upfront:      decimal.Zero,
		runningTotal: decimal.Zero,
		amounts:      make(map[string]decimal.Decimal),
	}
	ev.evaluateList(charges, ctx, st)
	return Evaluation{
		FundedTotal:      st.funded,
		UpfrontTotal:     st.upfront,
		ComponentAmounts: st.amounts,
	}
}

func (ev *ChargeEvaluator) evaluateList(charges model.ChargeList, ctx EvalContext, st *evalState) {
	for _, c := range charges {
		switch v := c.(type) {
		case model.ConditionalComponent:
			if evalCondition(v, ctx) {
				ev.evaluateList(v.ThenBlock, ctx, st)
			} else {
				ev.evaluateList(v.ElseBlock, ctx, st)
			}
		case model.SwitchComponent:
			ev.evaluateSwitch(v, ctx, st)
		default:
			ev.record(c, ev.leafAmount(c, ctx, st), st)
		}
	}
}

func (ev *ChargeEvaluator) record(c model.ChargeComponent, amount decimal.Decimal, st *evalState) {
	meta := c.Meta()
	if meta.ID != "" {
		st.amounts[meta.ID] = amount
	}
	st.runningTotal = st.runningTotal.Add(amount)
	if meta.Impact.Equal(valueobject.ImpactFunded) {
		st.funded = st.funded.Add(amount)
	} else {
		st.upfront = st.upfront.Add(amount)
	}
}

func (ev *ChargeEvaluator) leafAmount(c model.ChargeComponent, ctx EvalContext, st *evalState) decimal.Decimal {
	switch v := c.(type) {
	case model.PercentageComponent:
		pct := v.Percentage
		if override, ok := v.FuelMatrix.Value(ctx.Fuel); ok {
			pct = override
		}
		return basisAmount(v.Meta(), ctx, st).Mul(pct).Div(hundred)
	case model.FixedComponent:
		amt := v.Amount
		if override, ok := v.FuelMatrix.Value(ctx.Fuel); ok {
			amt = override
		}
		return amt
	case model.SlabComponent:
		return ev.slabAmount(v, ctx, st)
	default:
		return decimal.Zero
	}
}

func (ev *ChargeEvaluator) slabAmount(c model.SlabComponent, ctx EvalContext, st *evalState) decimal.Decimal {
	row, ok := model.ResolveSlab(c.Ranges, func(b valueobject.SlabBasis) decimal.Decimal {
		return slabBasisValue(b, ctx)
	}, ctx.TenureMonths, ctx.Fuel)
	if !ok {
		return decimal.Zero
	}

	var amount decimal.Decimal
	if c.ValueType.Equal(valueobject.SlabValueFixed) {
		amount = row.Value
	} else {
		amount = basisAmount(c.Meta(), ctx, st).Mul(row.Value).Div(hundred)
	}

	// Cess is levied on the slab's computed amount, not on its basis.
	if !row.CessPercentage.IsZero() {
		amount = amount.Add(amount.Mul(row.CessPercentage).Div(hundred))
	}
	return amount
}

func (ev *ChargeEvaluator) evaluateSwitch(c model.SwitchComponent, ctx EvalContext, st *evalState) {
	actual := lookupVariable(c.Variable, ctx)
	for _, cs := range c.Cases {
		if cs.MatchValue != actual {
			continue
		}
		childCtx := ctx
		if c.Variable == VariableFuelType {
			if fuel, err := valueobject.NewFuelType(cs.MatchValue); err == nil {
				childCtx.Fuel = fuel
			}
		}
		ev.evaluateList(cs.Block, childCtx, st)
		return
	}
}

func evalCondition(c model.ConditionalComponent, ctx EvalContext) bool {
	actual := lookupVariable(c.Variable, ctx)
	switch c.Operator {
	case valueobject.OperatorEquals:
		return actual == c.Value
	case valueobject.OperatorNotEquals:
		return actual != c.Value
	case valueobject.OperatorGreaterThan, valueobject.OperatorLessThan:
		lhs, err1 := decimal.NewFromString(actual)
		rhs, err2 := decimal.NewFromString(c.Value)
		if err1 != nil || err2 != nil {
			return false
		}
		if c.Operator.Equal(valueobject.OperatorGreaterThan) {
			return lhs.GreaterThan(rhs)
		}
		return lhs.LessThan(rhs)
	default:
		return false
	}
}

func lookupVariable(name string, ctx EvalContext) string {
	if v, ok := ctx.Variables[name]; ok {
		return v
	}
	switch name {
	case VariableFuelType:
		return ctx.Fuel.String()
	case VariableTenure:
		return strconv.Itoa(ctx.TenureMonths)
	default:
		return ""
	}
}

// basisAmount resolves the source amount a component is computed against.
// An unset basis falls back to the vehicle price.
func basisAmount(meta model.ComponentMeta, ctx EvalContext, st *evalState) decimal.Decimal {
	switch meta.Basis {
	case valueobject.BasisExShowroom:
		return ctx.ExShowroom
	case valueobject.BasisIDV:
		return ctx.IDV
	case valueobject.BasisODPremium:
		return ctx.ODPremium
	case valueobject.BasisInvoiceBase:
		return ctx.InvoiceBase
	case valueobject.BasisLoanAmount:
		return ctx.LoanAmount
	case valueobject.BasisGrossLoanAmount:
		return ctx.LoanAmount.Add(st.funded)
	case valueobject.BasisPreviousTaxTotal:
		return st.runningTotal
	case valueobject.BasisTargetComponent:
		if amt, ok := st.amounts[meta.TargetComponentID]; ok {
			return amt
		}
		return decimal.Zero
	default:
		return ctx.VehiclePrice
	}
}

// slabBasisValue resolves the quantity a slab row's interval bounds. An
// unset slab basis defaults to engine displacement.
func slabBasisValue(b valueobject.SlabBasis, ctx EvalContext) decimal.Decimal {
	switch b {
	case valueobject.SlabBasisKWRating:
		return ctx.KWRating
	case valueobject.SlabBasisExShowroom:
		return ctx.ExShowroom
	case valueobject.SlabBasisSeatingCapacity:
		return ctx.SeatingCapacity
	case valueobject.SlabBasisGrossVehicleWeight:
		return ctx.GrossVehicleWeight
	case valueobject.SlabBasisLoanAmount:
		return ctx.LoanAmount
	default:
		return ctx.EngineCC
	}
}
