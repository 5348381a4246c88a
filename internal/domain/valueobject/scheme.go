package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// InterestType – flat vs reducing-balance interest
// ---------------------------------------------------------------------------

// InterestType selects the interest computation model of a scheme.
type InterestType struct {
	value string
}

const (
	interestFlat     = "FLAT"
	interestReducing = "REDUCING"
)

var (
	InterestFlat     = InterestType{value: interestFlat}
	InterestReducing = InterestType{value: interestReducing}
)

var validInterestTypes = map[string]InterestType{
	interestFlat:     InterestFlat,
	interestReducing: InterestReducing,
}

// NewInterestType creates an InterestType from a raw string.
func NewInterestType(s string) (InterestType, error) {
	v, ok := validInterestTypes[s]
	if !ok {
		return InterestType{}, fmt.Errorf("invalid interest type: %q", s)
	}
	return v, nil
}

func (t InterestType) String() string                { return t.value }
func (t InterestType) IsZero() bool                  { return t.value == "" }
func (t InterestType) Equal(other InterestType) bool { return t.value == other.value }

// ---------------------------------------------------------------------------
// PayoutType – how the dealer commission is expressed
// ---------------------------------------------------------------------------

// PayoutType states whether the dealer payout is a percentage or a flat amount.
type PayoutType struct {
	value string
}

const (
	payoutPercentage = "PERCENTAGE"
	payoutFixed      = "FIXED"
)

var (
	PayoutPercentage = PayoutType{value: payoutPercentage}
	PayoutFixed      = PayoutType{value: payoutFixed}
)

var validPayoutTypes = map[string]PayoutType{
	payoutPercentage: PayoutPercentage,
	payoutFixed:      PayoutFixed,
}

// NewPayoutType creates a PayoutType from a raw string.
func NewPayoutType(s string) (PayoutType, error) {
	v, ok := validPayoutTypes[s]
	if !ok {
		return PayoutType{}, fmt.Errorf("invalid payout type: %q", s)
	}
	return v, nil
}

func (t PayoutType) String() string              { return t.value }
func (t PayoutType) IsZero() bool                { return t.value == "" }
func (t PayoutType) Equal(other PayoutType) bool { return t.value == other.value }

// ---------------------------------------------------------------------------
// SchemeStatus – lifecycle stage of a finance scheme
// ---------------------------------------------------------------------------

// SchemeStatus represents the lifecycle stage of a finance scheme.
type SchemeStatus struct {
	value string
}

const (
	schemeStatusDraft    = "DRAFT"
	schemeStatusActive   = "ACTIVE"
	schemeStatusInactive = "INACTIVE"
)

var (
	SchemeStatusDraft    = SchemeStatus{value: schemeStatusDraft}
	SchemeStatusActive   = SchemeStatus{value: schemeStatusActive}
	SchemeStatusInactive = SchemeStatus{value: schemeStatusInactive}
)

var validSchemeStatuses = map[string]SchemeStatus{
	schemeStatusDraft:    SchemeStatusDraft,
	schemeStatusActive:   SchemeStatusActive,
	schemeStatusInactive: SchemeStatusInactive,
}

// NewSchemeStatus creates a SchemeStatus from a raw string.
func NewSchemeStatus(s string) (SchemeStatus, error) {
	v, ok := validSchemeStatuses[s]
	if !ok {
		return SchemeStatus{}, fmt.Errorf("invalid scheme status: %q", s)
	}
	return v, nil
}

func (s SchemeStatus) String() string                { return s.value }
func (s SchemeStatus) IsZero() bool                  { return s.value == "" }
func (s SchemeStatus) Equal(other SchemeStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidTenure           = errors.New("tenure months must be positive")
	ErrSchemeNotFound          = errors.New("scheme not found")
)
