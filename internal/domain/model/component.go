package model

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// ChargeComponent – closed sum type over the five charge rule variants.
//
// A scheme's charge list and the nested then/else/case blocks are ordered:
// evaluation order is declaration order, and later components may reference
// amounts accumulated by earlier ones (PREVIOUS_TAX_TOTAL, GROSS_LOAN_AMOUNT,
// TARGET_COMPONENT).
// ---------------------------------------------------------------------------

// ChargeComponent is one charge rule in a scheme or formula block.
type ChargeComponent interface {
	Meta() ComponentMeta
	componentType() string
}

// ComponentMeta carries the fields shared by every component variant.
type ComponentMeta struct {
	ID                string                       `json:"id"`
	Label             string                       `json:"label,omitempty"`
	Basis             valueobject.CalculationBasis `json:"basis,omitempty"`
	TargetComponentID string                       `json:"target_component_id,omitempty"`
	Impact            valueobject.ChargeImpact     `json:"impact,omitempty"`
}

// FuelMatrix overrides a component's rate or amount per fuel type.
// Nil entries fall back to the component's base value.
type FuelMatrix struct {
	Petrol *decimal.Decimal `json:"petrol,omitempty"`
	Diesel *decimal.Decimal `json:"diesel,omitempty"`
	EV     *decimal.Decimal `json:"ev,omitempty"`
	CNG    *decimal.Decimal `json:"cng,omitempty"`
}

// Value returns the matrix entry for the given fuel, if present.
func (m *FuelMatrix) Value(fuel valueobject.FuelType) (decimal.Decimal, bool) {
	if m == nil {
		return decimal.Zero, false
	}
	var entry *decimal.Decimal
	switch fuel {
	case valueobject.FuelPetrol:
		entry = m.Petrol
	case valueobject.FuelDiesel:
		entry = m.Diesel
	case valueobject.FuelEV:
		entry = m.EV
	case valueobject.FuelCNG:
		entry = m.CNG
	}
	if entry == nil {
		return decimal.Zero, false
	}
	return *entry, true
}

const (
	componentTypePercentage  = "PERCENTAGE"
	componentTypeFixed       = "FIXED"
	componentTypeSlab        = "SLAB"
	componentTypeConditional = "CONDITIONAL"
	componentTypeSwitch      = "SWITCH"
)

// PercentageComponent charges a percentage of its basis amount.
type PercentageComponent struct {
	ComponentMeta
	Percentage decimal.Decimal
	FuelMatrix *FuelMatrix
}

// FixedComponent charges a flat amount.
type FixedComponent struct {
	ComponentMeta
	Amount     decimal.Decimal
	FuelMatrix *FuelMatrix
}

// SlabComponent charges via a tiered range table.
type SlabComponent struct {
	ComponentMeta
	ValueType valueobject.SlabValueType
	Ranges    []SlabRange
}

// ConditionalComponent evaluates exactly one of two nested blocks.
type ConditionalComponent struct {
	ComponentMeta
	Variable  string
	Operator  valueobject.ConditionOperator
	Value     string
	ThenBlock ChargeList
	ElseBlock ChargeList
}

// SwitchCase is one branch of a SwitchComponent.
type SwitchCase struct {
	ID         string     `json:"id,omitempty"`
	Label      string     `json:"label,omitempty"`
	MatchValue string     `json:"match_value"`
	Block      ChargeList `json:"block"`
}

// SwitchComponent evaluates the block of the first case whose match value
// equals the switch variable. A switch on FUEL_TYPE injects the matched fuel
// into its block's evaluation context.
type SwitchComponent struct {
	ComponentMeta
	Variable string
	Cases    []SwitchCase
}

func (c PercentageComponent) Meta() ComponentMeta  { return c.ComponentMeta }
func (c FixedComponent) Meta() ComponentMeta       { return c.ComponentMeta }
func (c SlabComponent) Meta() ComponentMeta        { return c.ComponentMeta }
func (c ConditionalComponent) Meta() ComponentMeta { return c.ComponentMeta }
func (c SwitchComponent) Meta() ComponentMeta      { return c.ComponentMeta }

func (PercentageComponent) componentType() string  { return componentTypePercentage }
func (FixedComponent) componentType() string       { return componentTypeFixed }
func (SlabComponent) componentType() string        { return componentTypeSlab }
func (ConditionalComponent) componentType() string { return componentTypeConditional }
func (SwitchComponent) componentType() string      { return componentTypeSwitch }

// ---------------------------------------------------------------------------
// ChargeList – JSON codec
//
// Components round-trip through a tagged envelope so charge trees can live in
// a JSONB column and on the wire. The `type` field discriminates the variant.
// ---------------------------------------------------------------------------

// ChargeList is an ordered list of charge components.
type ChargeList []ChargeComponent

type componentEnvelope struct {
	Type              string                         `json:"type"`
	ID                string                         `json:"id"`
	Label             string                         `json:"label,omitempty"`
	Basis             valueobject.CalculationBasis   `json:"basis,omitempty"`
	TargetComponentID string                         `json:"target_component_id,omitempty"`
	Impact            valueobject.ChargeImpact       `json:"impact,omitempty"`
	Percentage        *decimal.Decimal               `json:"percentage,omitempty"`
	Amount            *decimal.Decimal               `json:"amount,omitempty"`
	FuelMatrix        *FuelMatrix                    `json:"fuel_matrix,omitempty"`
	SlabValueType     valueobject.SlabValueType      `json:"slab_value_type,omitempty"`
	Ranges            []SlabRange                    `json:"ranges,omitempty"`
	ConditionVariable string                         `json:"condition_variable,omitempty"`
	ConditionOperator valueobject.ConditionOperator  `json:"condition_operator,omitempty"`
	ConditionValue    string                         `json:"condition_value,omitempty"`
	ThenBlock         ChargeList                     `json:"then_block,omitempty"`
	ElseBlock         ChargeList                     `json:"else_block,omitempty"`
	SwitchVariable    string                         `json:"switch_variable,omitempty"`
	Cases             []SwitchCase                   `json:"cases,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (l ChargeList) MarshalJSON() ([]byte, error) {
	envelopes := make([]componentEnvelope, 0, len(l))
	for _, c := range l {
		env, err := toEnvelope(c)
		if err != nil {
			return nil, err
		}
		envelopes = append(envelopes, env)
	}
	return json.Marshal(envelopes)
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *ChargeList) UnmarshalJSON(data []byte) error {
	var envelopes []componentEnvelope
	if err := json.Unmarshal(data, &envelopes); err != nil {
		return err
	}
	out := make(ChargeList, 0, len(envelopes))
	for _, env := range envelopes {
		c, err := fromEnvelope(env)
		if err != nil {
			return err
		}
		out = append(out, c)
	}
	*l = out
	return nil
}

func toEnvelope(c ChargeComponent) (componentEnvelope, error) {
	meta := c.Meta()
	env := componentEnvelope{
		Type:              c.componentType(),
		ID:                meta.ID,
		Label:             meta.Label,
		Basis:             meta.Basis,
		TargetComponentID: meta.TargetComponentID,
		Impact:            meta.Impact,
	}

	switch v := c.(type) {
	case PercentageComponent:
		pct := v.Percentage
		env.Percentage = &pct
		env.FuelMatrix = v.FuelMatrix
	case FixedComponent:
		amt := v.Amount
		env.Amount = &amt
		env.FuelMatrix = v.FuelMatrix
	case SlabComponent:
		env.SlabValueType = v.ValueType
		env.Ranges = v.Ranges
	case ConditionalComponent:
		env.ConditionVariable = v.Variable
		env.ConditionOperator = v.Operator
		env.ConditionValue = v.Value
		env.ThenBlock = v.ThenBlock
		env.ElseBlock = v.ElseBlock
	case SwitchComponent:
		env.SwitchVariable = v.Variable
		env.Cases = v.Cases
	default:
		return componentEnvelope{}, fmt.Errorf("unknown charge component type %T", c)
	}

	return env, nil
}

func fromEnvelope(env componentEnvelope) (ChargeComponent, error) {
	meta := ComponentMeta{
		ID:                env.ID,
		Label:             env.Label,
		Basis:             env.Basis,
		TargetComponentID: env.TargetComponentID,
		Impact:            env.Impact,
	}

	switch env.Type {
	case componentTypePercentage:
		c := PercentageComponent{ComponentMeta: meta, FuelMatrix: env.FuelMatrix}
		if env.Percentage != nil {
			c.Percentage = *env.Percentage
		}
		return c, nil
	case componentTypeFixed:
		c := FixedComponent{ComponentMeta: meta, FuelMatrix: env.FuelMatrix}
		if env.Amount != nil {
			c.Amount = *env.Amount
		}
		return c, nil
	case componentTypeSlab:
		return SlabComponent{ComponentMeta: meta, ValueType: env.SlabValueType, Ranges: env.Ranges}, nil
	case componentTypeConditional:
		return ConditionalComponent{
			ComponentMeta: meta,
			Variable:      env.ConditionVariable,
			Operator:      env.ConditionOperator,
			Value:         env.ConditionValue,
			ThenBlock:     env.ThenBlock,
			ElseBlock:     env.ElseBlock,
		}, nil
	case componentTypeSwitch:
		return SwitchComponent{ComponentMeta: meta, Variable: env.SwitchVariable, Cases: env.Cases}, nil
	default:
		return nil, fmt.Errorf("unknown charge component type %q", env.Type)
	}
}
