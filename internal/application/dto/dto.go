package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// SchemeTermsPayload carries the commercial terms shared by create and
// update requests. Charges use the same tagged envelope that is stored in
// the database, so a formula round-trips the API unchanged.
type SchemeTermsPayload struct {
	Name          string           `json:"name"`
	PartnerName   string           `json:"partner_name,omitempty"`
	InterestRate  decimal.Decimal  `json:"interest_rate"`
	InterestType  string           `json:"interest_type"`
	MinTenure     int              `json:"min_tenure"`
	MaxTenure     int              `json:"max_tenure"`
	MinLoanAmount decimal.Decimal  `json:"min_loan_amount"`
	MaxLoanAmount decimal.Decimal  `json:"max_loan_amount"`
	MaxLTV        decimal.Decimal  `json:"max_ltv"`
	Payout        decimal.Decimal  `json:"payout"`
	PayoutType    string           `json:"payout_type"`
	Charges       model.ChargeList `json:"charges,omitempty"`
}

// CreateSchemeRequest carries the data needed to register a new scheme.
type CreateSchemeRequest struct {
	TenantID string `json:"tenant_id"`
	SchemeTermsPayload
}

// UpdateSchemeRequest replaces a scheme's terms and charge formula.
type UpdateSchemeRequest struct {
	TenantID string `json:"tenant_id"`
	SchemeID string `json:"scheme_id"`
	SchemeTermsPayload
}

// GetSchemeRequest identifies a scheme to retrieve.
type GetSchemeRequest struct {
	TenantID string `json:"tenant_id"`
	SchemeID string `json:"scheme_id"`
}

// ListSchemesRequest lists a tenant's schemes.
type ListSchemesRequest struct {
	TenantID   string `json:"tenant_id"`
	ActiveOnly bool   `json:"active_only,omitempty"`
}

// ActivateSchemeRequest makes a scheme quotable.
type ActivateSchemeRequest struct {
	TenantID string `json:"tenant_id"`
	SchemeID string `json:"scheme_id"`
}

// DeactivateSchemeRequest withdraws a scheme from quoting.
type DeactivateSchemeRequest struct {
	TenantID string `json:"tenant_id"`
	SchemeID string `json:"scheme_id"`
	Reason   string `json:"reason,omitempty"`
}

// SimulateSchemeRequest runs a hypothetical quote through a scheme.
// Either SchemeID references a stored scheme, or Draft carries an
// unsaved terms payload to quote without persisting anything.
type SimulateSchemeRequest struct {
	TenantID           string              `json:"tenant_id"`
	SchemeID           string              `json:"scheme_id,omitempty"`
	Draft              *SchemeTermsPayload `json:"draft,omitempty"`
	VehiclePrice       decimal.Decimal     `json:"vehicle_price"`
	LoanAmount         decimal.Decimal     `json:"loan_amount"`
	ExShowroom         decimal.Decimal     `json:"ex_showroom,omitempty"`
	IDV                decimal.Decimal     `json:"idv,omitempty"`
	ODPremium          decimal.Decimal     `json:"od_premium,omitempty"`
	InvoiceBase        decimal.Decimal     `json:"invoice_base,omitempty"`
	EngineCC           decimal.Decimal     `json:"engine_cc,omitempty"`
	KWRating           decimal.Decimal     `json:"kw_rating,omitempty"`
	SeatingCapacity    decimal.Decimal     `json:"seating_capacity,omitempty"`
	GrossVehicleWeight decimal.Decimal     `json:"gross_vehicle_weight,omitempty"`
	FuelType           string              `json:"fuel_type,omitempty"`
	Variables          map[string]string   `json:"variables,omitempty"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// SchemeResponse is the external representation of a finance scheme.
type SchemeResponse struct {
	ID            string           `json:"id"`
	TenantID      string           `json:"tenant_id"`
	Name          string           `json:"name"`
	PartnerName   string           `json:"partner_name,omitempty"`
	Status        string           `json:"status"`
	InterestRate  decimal.Decimal  `json:"interest_rate"`
	InterestType  string           `json:"interest_type"`
	MinTenure     int              `json:"min_tenure"`
	MaxTenure     int              `json:"max_tenure"`
	MinLoanAmount decimal.Decimal  `json:"min_loan_amount"`
	MaxLoanAmount decimal.Decimal  `json:"max_loan_amount"`
	MaxLTV        decimal.Decimal  `json:"max_ltv"`
	Payout        decimal.Decimal  `json:"payout"`
	PayoutType    string           `json:"payout_type"`
	Charges       model.ChargeList `json:"charges,omitempty"`
	Version       int              `json:"version"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ListSchemesResponse wraps a tenant's schemes.
type ListSchemesResponse struct {
	Schemes []SchemeResponse `json:"schemes"`
}

// TenureQuoteResponse is the simulated outcome for one tenure.
type TenureQuoteResponse struct {
	TenureMonths    int             `json:"tenure_months"`
	FundedCharges   decimal.Decimal `json:"funded_charges"`
	UpfrontCharges  decimal.Decimal `json:"upfront_charges"`
	GrossLoanAmount decimal.Decimal `json:"gross_loan_amount"`
	Downpayment     decimal.Decimal `json:"downpayment"`
	EMI             decimal.Decimal `json:"emi"`
}

// SimulationResponse is the result of running a quote across tenures.
type SimulationResponse struct {
	SchemeID string                `json:"scheme_id"`
	Quotes   []TenureQuoteResponse `json:"quotes"`
}

// FromScheme maps a domain scheme to its response DTO.
func FromScheme(s model.Scheme) SchemeResponse {
	return SchemeResponse{
		ID:            s.ID(),
		TenantID:      s.TenantID(),
		Name:          s.Name(),
		PartnerName:   s.PartnerName(),
		Status:        s.Status().String(),
		InterestRate:  s.InterestRate(),
		InterestType:  s.InterestType().String(),
		MinTenure:     s.MinTenure(),
		MaxTenure:     s.MaxTenure(),
		MinLoanAmount: s.MinLoanAmount(),
		MaxLoanAmount: s.MaxLoanAmount(),
		MaxLTV:        s.MaxLTV(),
		Payout:        s.Payout(),
		PayoutType:    s.PayoutType().String(),
		Charges:       s.Charges(),
		Version:       s.Version(),
		CreatedAt:     s.CreatedAt(),
		UpdatedAt:     s.UpdatedAt(),
	}
}
