package event

import (
	"github.com/shopspring/decimal"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/pkg/events"
)

const aggregateTypeScheme = "FinanceScheme"

// Event type names double as Kafka routing keys, see infrastructure/kafka.
const (
	TypeSchemeCreated     = "finance.scheme.created"
	TypeSchemeUpdated     = "finance.scheme.updated"
	TypeSchemeActivated   = "finance.scheme.activated"
	TypeSchemeDeactivated = "finance.scheme.deactivated"
)

// SchemeCreated is emitted when a new finance scheme is registered.
type SchemeCreated struct {
	events.BaseEvent
	Name         string          `json:"name"`
	PartnerName  string          `json:"partner_name,omitempty"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	InterestType string          `json:"interest_type"`
}

// NewSchemeCreated builds a SchemeCreated event.
func NewSchemeCreated(schemeID, tenantID, name, partnerName string, rate decimal.Decimal, interestType string) SchemeCreated {
	return SchemeCreated{
		BaseEvent:    events.NewBaseEvent(TypeSchemeCreated, schemeID, aggregateTypeScheme, tenantID),
		Name:         name,
		PartnerName:  partnerName,
		InterestRate: rate,
		InterestType: interestType,
	}
}

// SchemeUpdated is emitted when a scheme's terms or charge formula change.
type SchemeUpdated struct {
	events.BaseEvent
	Name    string `json:"name"`
	Version int    `json:"version"`
}

// NewSchemeUpdated builds a SchemeUpdated event.
func NewSchemeUpdated(schemeID, tenantID, name string, version int) SchemeUpdated {
	return SchemeUpdated{
		BaseEvent: events.NewBaseEvent(TypeSchemeUpdated, schemeID, aggregateTypeScheme, tenantID),
		Name:      name,
		Version:   version,
	}
}

// SchemeActivated is emitted when a scheme becomes quotable.
type SchemeActivated struct {
	events.BaseEvent
	Name string `json:"name"`
}

// NewSchemeActivated builds a SchemeActivated event.
func NewSchemeActivated(schemeID, tenantID, name string) SchemeActivated {
	return SchemeActivated{
		BaseEvent: events.NewBaseEvent(TypeSchemeActivated, schemeID, aggregateTypeScheme, tenantID),
		Name:      name,
	}
}

// SchemeDeactivated is emitted when a scheme is withdrawn from quoting.
type SchemeDeactivated struct {
	events.BaseEvent
	Name   string `json:"name"`
	Reason string `json:"reason,omitempty"`
}

// NewSchemeDeactivated builds a SchemeDeactivated event.
func NewSchemeDeactivated(schemeID, tenantID, name, reason string) SchemeDeactivated {
	return SchemeDeactivated{
		BaseEvent: events.NewBaseEvent(TypeSchemeDeactivated, schemeID, aggregateTypeScheme, tenantID),
		Name:      name,
		Reason:    reason,
	}
}
