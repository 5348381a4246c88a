package port

import (
	"context"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/model"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/pkg/events"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// SchemeRepository persists and retrieves finance schemes.
type SchemeRepository interface {
	Save(ctx context.Context, scheme model.Scheme) error
	FindByID(ctx context.Context, tenantID, id string) (model.Scheme, error)
	FindByTenant(ctx context.Context, tenantID string) ([]model.Scheme, error)
	FindActiveByTenant(ctx context.Context, tenantID string) ([]model.Scheme, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}

// ---------------------------------------------------------------------------
// Cache port
// ---------------------------------------------------------------------------

// SchemeCache is a read-through cache over scheme lookups. Implementations
// degrade to misses on backend failure so callers never depend on cache
// availability.
type SchemeCache interface {
	Get(ctx context.Context, tenantID, id string) (model.Scheme, bool)
	Set(ctx context.Context, scheme model.Scheme)
	Invalidate(ctx context.Context, tenantID, id string)
}
