package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/event"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/valueobject"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/pkg/events"
)

// ---------------------------------------------------------------------------
// Scheme aggregate root (Finance Scheme Catalog)
// ---------------------------------------------------------------------------

// Scheme is an immutable aggregate. Mutations return a new copy.
type Scheme struct {
	id            string
	tenantID      string
	name          string
	partnerName   string
	status        valueobject.SchemeStatus
	interestRate  decimal.Decimal
	interestType  valueobject.InterestType
	minTenure     int
	maxTenure     int
	minLoanAmount decimal.Decimal
	maxLoanAmount decimal.Decimal
	maxLTV        decimal.Decimal
	payout        decimal.Decimal
	payoutType    valueobject.PayoutType
	charges       ChargeList
	version       int
	createdAt     time.Time
	updatedAt     time.Time
	domainEvents  []events.DomainEvent
}

// SchemeTerms bundles the commercial terms of a scheme. Charges travel
// separately because they form an ordered formula, not a flat record.
type SchemeTerms struct {
	Name          string
	PartnerName   string
	InterestRate  decimal.Decimal
	InterestType  valueobject.InterestType
	MinTenure     int
	MaxTenure     int
	MinLoanAmount decimal.Decimal
	MaxLoanAmount decimal.Decimal
	MaxLTV        decimal.Decimal
	Payout        decimal.Decimal
	PayoutType    valueobject.PayoutType
}

func validateTerms(t SchemeTerms) error {
	if t.Name == "" {
		return errors.New("scheme name is required")
	}
	if t.InterestRate.IsNegative() {
		return errors.New("interest rate cannot be negative")
	}
	if t.InterestType.IsZero() {
		return errors.New("interest type is required")
	}
	if t.MinTenure <= 0 {
		return valueobject.ErrInvalidTenure
	}
	if t.MaxTenure < t.MinTenure {
		return errors.New("max tenure cannot be below min tenure")
	}
	if t.MinLoanAmount.IsNegative() {
		return errors.New("min loan amount cannot be negative")
	}
	if t.MaxLoanAmount.LessThan(t.MinLoanAmount) {
		return errors.New("max loan amount cannot be below min loan amount")
	}
	if t.MaxLTV.LessThanOrEqual(decimal.Zero) || t.MaxLTV.GreaterThan(decimal.NewFromInt(100)) {
		return errors.New("max LTV must be in (0, 100]")
	}
	if t.Payout.IsNegative() {
		return errors.New("payout cannot be negative")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewScheme creates a finance scheme in DRAFT status.
func NewScheme(tenantID string, terms SchemeTerms, charges ChargeList, now time.Time) (Scheme, error) {
	if tenantID == "" {
		return Scheme{}, errors.New("tenant ID is required")
	}
	if err := validateTerms(terms); err != nil {
		return Scheme{}, err
	}

	id := uuid.New().String()

	scheme := Scheme{
		id:            id,
		tenantID:      tenantID,
		name:          terms.Name,
		partnerName:   terms.PartnerName,
		status:        valueobject.SchemeStatusDraft,
		interestRate:  terms.InterestRate,
		interestType:  terms.InterestType,
		minTenure:     terms.MinTenure,
		maxTenure:     terms.MaxTenure,
		minLoanAmount: terms.MinLoanAmount,
		maxLoanAmount: terms.MaxLoanAmount,
		maxLTV:        terms.MaxLTV,
		payout:        terms.Payout,
		payoutType:    terms.PayoutType,
		charges:       charges,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}

	scheme.domainEvents = append(scheme.domainEvents, event.NewSchemeCreated(
		id, tenantID, terms.Name, terms.PartnerName, terms.InterestRate, terms.InterestType.String(),
	))

	return scheme, nil
}

// ReconstructScheme rebuilds a Scheme aggregate from persistence.
func ReconstructScheme(
	id, tenantID string,
	terms SchemeTerms,
	status valueobject.SchemeStatus,
	charges ChargeList,
	version int,
	createdAt, updatedAt time.Time,
) Scheme {
	return Scheme{
		id:            id,
		tenantID:      tenantID,
		name:          terms.Name,
		partnerName:   terms.PartnerName,
		status:        status,
		interestRate:  terms.InterestRate,
		interestType:  terms.InterestType,
		minTenure:     terms.MinTenure,
		maxTenure:     terms.MaxTenure,
		minLoanAmount: terms.MinLoanAmount,
		maxLoanAmount: terms.MaxLoanAmount,
		maxLTV:        terms.MaxLTV,
		payout:        terms.Payout,
		payoutType:    terms.PayoutType,
		charges:       charges,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// Update replaces the scheme's terms and charge formula and emits
// SchemeUpdated. Updates are allowed in any status; an active scheme's new
// terms take effect for subsequent quotes.
func (s Scheme) Update(terms SchemeTerms, charges ChargeList, now time.Time) (Scheme, error) {
	if err := validateTerms(terms); err != nil {
		return s, err
	}

	next := s
	next.name = terms.Name
	next.partnerName = terms.PartnerName
	next.interestRate = terms.InterestRate
	next.interestType = terms.InterestType
	next.minTenure = terms.MinTenure
	next.maxTenure = terms.MaxTenure
	next.minLoanAmount = terms.MinLoanAmount
	next.maxLoanAmount = terms.MaxLoanAmount
	next.maxLTV = terms.MaxLTV
	next.payout = terms.Payout
	next.payoutType = terms.PayoutType
	next.charges = charges
	next.updatedAt = now
	next.domainEvents = copyEvents(s.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewSchemeUpdated(s.id, s.tenantID, terms.Name, s.version))
	return next, nil
}

// Activate transitions DRAFT or INACTIVE -> ACTIVE.
func (s Scheme) Activate(now time.Time) (Scheme, error) {
	if s.status.Equal(valueobject.SchemeStatusActive) {
		return s, valueobject.ErrInvalidStatusTransition
	}
	next := s
	next.status = valueobject.SchemeStatusActive
	next.updatedAt = now
	next.domainEvents = copyEvents(s.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewSchemeActivated(s.id, s.tenantID, s.name))
	return next, nil
}

// Deactivate transitions ACTIVE -> INACTIVE.
func (s Scheme) Deactivate(reason string, now time.Time) (Scheme, error) {
	if !s.status.Equal(valueobject.SchemeStatusActive) {
		return s, valueobject.ErrInvalidStatusTransition
	}
	next := s
	next.status = valueobject.SchemeStatusInactive
	next.updatedAt = now
	next.domainEvents = copyEvents(s.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewSchemeDeactivated(s.id, s.tenantID, s.name, reason))
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (s Scheme) ID() string                            { return s.id }
func (s Scheme) TenantID() string                      { return s.tenantID }
func (s Scheme) Name() string                          { return s.name }
func (s Scheme) PartnerName() string                   { return s.partnerName }
func (s Scheme) Status() valueobject.SchemeStatus      { return s.status }
func (s Scheme) InterestRate() decimal.Decimal         { return s.interestRate }
func (s Scheme) InterestType() valueobject.InterestType { return s.interestType }
func (s Scheme) MinTenure() int                        { return s.minTenure }
func (s Scheme) MaxTenure() int                        { return s.maxTenure }
func (s Scheme) MinLoanAmount() decimal.Decimal        { return s.minLoanAmount }
func (s Scheme) MaxLoanAmount() decimal.Decimal        { return s.maxLoanAmount }
func (s Scheme) MaxLTV() decimal.Decimal               { return s.maxLTV }
func (s Scheme) Payout() decimal.Decimal               { return s.payout }
func (s Scheme) PayoutType() valueobject.PayoutType    { return s.payoutType }
func (s Scheme) Version() int                          { return s.version }
func (s Scheme) CreatedAt() time.Time                  { return s.createdAt }
func (s Scheme) UpdatedAt() time.Time                  { return s.updatedAt }
func (s Scheme) DomainEvents() []events.DomainEvent    { return s.domainEvents }

// Terms returns the scheme's commercial terms as a bundle.
func (s Scheme) Terms() SchemeTerms {
	return SchemeTerms{
		Name:          s.name,
		PartnerName:   s.partnerName,
		InterestRate:  s.interestRate,
		InterestType:  s.interestType,
		MinTenure:     s.minTenure,
		MaxTenure:     s.maxTenure,
		MinLoanAmount: s.minLoanAmount,
		MaxLoanAmount: s.maxLoanAmount,
		MaxLTV:        s.maxLTV,
		Payout:        s.payout,
		PayoutType:    s.payoutType,
	}
}

// Charges returns a defensive copy of the charge formula.
func (s Scheme) Charges() ChargeList {
	if s.charges == nil {
		return nil
	}
	out := make(ChargeList, len(s.charges))
	copy(out, s.charges)
	return out
}

// ClearEvents returns a copy with an empty event list.
func (s Scheme) ClearEvents() Scheme {
	next := s
	next.domainEvents = nil
	return next
}

func copyEvents(src []events.DomainEvent) []events.DomainEvent {
	if src == nil {
		return nil
	}
	out := make([]events.DomainEvent, len(src))
	copy(out, src)
	return out
}
