package valueobject

import (
	"encoding/json"
	"fmt"
)

// ---------------------------------------------------------------------------
// CalculationBasis – which quantity a charge component is computed from
// ---------------------------------------------------------------------------

// CalculationBasis names the source amount a charge is computed against.
type CalculationBasis struct {
	value string
}

const (
	basisExShowroom       = "EX_SHOWROOM"
	basisIDV              = "IDV"
	basisODPremium        = "OD_PREMIUM"
	basisInvoiceBase      = "INVOICE_BASE"
	basisLoanAmount       = "LOAN_AMOUNT"
	basisGrossLoanAmount  = "GROSS_LOAN_AMOUNT"
	basisVehiclePrice     = "VEHICLE_PRICE"
	basisPreviousTaxTotal = "PREVIOUS_TAX_TOTAL"
	basisTargetComponent  = "TARGET_COMPONENT"
)

var (
	BasisExShowroom       = CalculationBasis{value: basisExShowroom}
	BasisIDV              = CalculationBasis{value: basisIDV}
	BasisODPremium        = CalculationBasis{value: basisODPremium}
	BasisInvoiceBase      = CalculationBasis{value: basisInvoiceBase}
	BasisLoanAmount       = CalculationBasis{value: basisLoanAmount}
	BasisGrossLoanAmount  = CalculationBasis{value: basisGrossLoanAmount}
	BasisVehiclePrice     = CalculationBasis{value: basisVehiclePrice}
	BasisPreviousTaxTotal = CalculationBasis{value: basisPreviousTaxTotal}
	BasisTargetComponent  = CalculationBasis{value: basisTargetComponent}
)

var validBases = map[string]CalculationBasis{
	basisExShowroom:       BasisExShowroom,
	basisIDV:              BasisIDV,
	basisODPremium:        BasisODPremium,
	basisInvoiceBase:      BasisInvoiceBase,
	basisLoanAmount:       BasisLoanAmount,
	basisGrossLoanAmount:  BasisGrossLoanAmount,
	basisVehiclePrice:     BasisVehiclePrice,
	basisPreviousTaxTotal: BasisPreviousTaxTotal,
	basisTargetComponent:  BasisTargetComponent,
}

// NewCalculationBasis creates a CalculationBasis from a raw string.
func NewCalculationBasis(s string) (CalculationBasis, error) {
	v, ok := validBases[s]
	if !ok {
		return CalculationBasis{}, fmt.Errorf("invalid calculation basis: %q", s)
	}
	return v, nil
}

func (b CalculationBasis) String() string                    { return b.value }
func (b CalculationBasis) IsZero() bool                      { return b.value == "" }
func (b CalculationBasis) Equal(other CalculationBasis) bool { return b.value == other.value }

// ---------------------------------------------------------------------------
// ChargeImpact – UPFRONT charges raise the downpayment, FUNDED charges are
// rolled into the financed gross loan amount.
// ---------------------------------------------------------------------------

// ChargeImpact states where a computed charge amount lands.
type ChargeImpact struct {
	value string
}

const (
	impactUpfront = "UPFRONT"
	impactFunded  = "FUNDED"
)

var (
	ImpactUpfront = ChargeImpact{value: impactUpfront}
	ImpactFunded  = ChargeImpact{value: impactFunded}
)

var validImpacts = map[string]ChargeImpact{
	impactUpfront: ImpactUpfront,
	impactFunded:  ImpactFunded,
}

// NewChargeImpact creates a ChargeImpact from a raw string.
func NewChargeImpact(s string) (ChargeImpact, error) {
	v, ok := validImpacts[s]
	if !ok {
		return ChargeImpact{}, fmt.Errorf("invalid charge impact: %q", s)
	}
	return v, nil
}

func (i ChargeImpact) String() string                { return i.value }
func (i ChargeImpact) IsZero() bool                  { return i.value == "" }
func (i ChargeImpact) Equal(other ChargeImpact) bool { return i.value == other.value }

// ---------------------------------------------------------------------------
// SlabBasis – the quantity a slab range's min/max bound
// ---------------------------------------------------------------------------

// SlabBasis names the quantity a slab table is keyed on.
type SlabBasis struct {
	value string
}

const (
	slabBasisEngineCC           = "ENGINE_CC"
	slabBasisKWRating           = "KW_RATING"
	slabBasisExShowroom         = "EX_SHOWROOM"
	slabBasisSeatingCapacity    = "SEATING_CAPACITY"
	slabBasisGrossVehicleWeight = "GROSS_VEHICLE_WEIGHT"
	slabBasisLoanAmount         = "LOAN_AMOUNT"
)

var (
	SlabBasisEngineCC           = SlabBasis{value: slabBasisEngineCC}
	SlabBasisKWRating           = SlabBasis{value: slabBasisKWRating}
	SlabBasisExShowroom         = SlabBasis{value: slabBasisExShowroom}
	SlabBasisSeatingCapacity    = SlabBasis{value: slabBasisSeatingCapacity}
	SlabBasisGrossVehicleWeight = SlabBasis{value: slabBasisGrossVehicleWeight}
	SlabBasisLoanAmount         = SlabBasis{value: slabBasisLoanAmount}
)

var validSlabBases = map[string]SlabBasis{
	slabBasisEngineCC:           SlabBasisEngineCC,
	slabBasisKWRating:           SlabBasisKWRating,
	slabBasisExShowroom:         SlabBasisExShowroom,
	slabBasisSeatingCapacity:    SlabBasisSeatingCapacity,
	slabBasisGrossVehicleWeight: SlabBasisGrossVehicleWeight,
	slabBasisLoanAmount:         SlabBasisLoanAmount,
}

// NewSlabBasis creates a SlabBasis from a raw string.
func NewSlabBasis(s string) (SlabBasis, error) {
	v, ok := validSlabBases[s]
	if !ok {
		return SlabBasis{}, fmt.Errorf("invalid slab basis: %q", s)
	}
	return v, nil
}

func (b SlabBasis) String() string             { return b.value }
func (b SlabBasis) IsZero() bool               { return b.value == "" }
func (b SlabBasis) Equal(other SlabBasis) bool { return b.value == other.value }

// ---------------------------------------------------------------------------
// SlabValueType – whether a matched slab row yields a percentage or a flat amount
// ---------------------------------------------------------------------------

// SlabValueType selects how a matched slab row's value is interpreted.
type SlabValueType struct {
	value string
}

const (
	slabValuePercentage = "PERCENTAGE"
	slabValueFixed      = "FIXED"
)

var (
	SlabValuePercentage = SlabValueType{value: slabValuePercentage}
	SlabValueFixed      = SlabValueType{value: slabValueFixed}
)

var validSlabValueTypes = map[string]SlabValueType{
	slabValuePercentage: SlabValuePercentage,
	slabValueFixed:      SlabValueFixed,
}

// NewSlabValueType creates a SlabValueType from a raw string.
func NewSlabValueType(s string) (SlabValueType, error) {
	v, ok := validSlabValueTypes[s]
	if !ok {
		return SlabValueType{}, fmt.Errorf("invalid slab value type: %q", s)
	}
	return v, nil
}

func (t SlabValueType) String() string                 { return t.value }
func (t SlabValueType) IsZero() bool                   { return t.value == "" }
func (t SlabValueType) Equal(other SlabValueType) bool { return t.value == other.value }

// ---------------------------------------------------------------------------
// ConditionOperator – comparison operator for CONDITIONAL components
// ---------------------------------------------------------------------------

// ConditionOperator is the comparison a CONDITIONAL component applies.
type ConditionOperator struct {
	value string
}

const (
	opEquals      = "EQUALS"
	opNotEquals   = "NOT_EQUALS"
	opGreaterThan = "GREATER_THAN"
	opLessThan    = "LESS_THAN"
)

var (
	OperatorEquals      = ConditionOperator{value: opEquals}
	OperatorNotEquals   = ConditionOperator{value: opNotEquals}
	OperatorGreaterThan = ConditionOperator{value: opGreaterThan}
	OperatorLessThan    = ConditionOperator{value: opLessThan}
)

var validOperators = map[string]ConditionOperator{
	opEquals:      OperatorEquals,
	opNotEquals:   OperatorNotEquals,
	opGreaterThan: OperatorGreaterThan,
	opLessThan:    OperatorLessThan,
}

// NewConditionOperator creates a ConditionOperator from a raw string.
func NewConditionOperator(s string) (ConditionOperator, error) {
	v, ok := validOperators[s]
	if !ok {
		return ConditionOperator{}, fmt.Errorf("invalid condition operator: %q", s)
	}
	return v, nil
}

func (o ConditionOperator) String() string                     { return o.value }
func (o ConditionOperator) IsZero() bool                       { return o.value == "" }
func (o ConditionOperator) Equal(other ConditionOperator) bool { return o.value == other.value }

// ---------------------------------------------------------------------------
// JSON round-tripping
//
// Charge components are persisted as a JSONB document, so the enum value
// objects marshal as their plain string form.
// ---------------------------------------------------------------------------

func (f FuelType) MarshalJSON() ([]byte, error)          { return json.Marshal(f.value) }
func (b CalculationBasis) MarshalJSON() ([]byte, error)  { return json.Marshal(b.value) }
func (i ChargeImpact) MarshalJSON() ([]byte, error)      { return json.Marshal(i.value) }
func (b SlabBasis) MarshalJSON() ([]byte, error)         { return json.Marshal(b.value) }
func (t SlabValueType) MarshalJSON() ([]byte, error)     { return json.Marshal(t.value) }
func (o ConditionOperator) MarshalJSON() ([]byte, error) { return json.Marshal(o.value) }

func (f *FuelType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, f, NewFuelType)
}

func (b *CalculationBasis) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, b, NewCalculationBasis)
}

func (i *ChargeImpact) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, i, NewChargeImpact)
}

func (b *SlabBasis) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, b, NewSlabBasis)
}

func (t *SlabValueType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, t, NewSlabValueType)
}

func (o *ConditionOperator) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, o, NewConditionOperator)
}

func unmarshalEnum[T any](data []byte, dst *T, parse func(string) (T, error)) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		var zero T
		*dst = zero
		return nil
	}
	v, err := parse(raw)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
