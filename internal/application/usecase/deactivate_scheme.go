package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/application/dto"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/port"
)

// DeactivateSchemeUseCase withdraws a scheme from quoting.
type DeactivateSchemeUseCase struct {
	repo      port.SchemeRepository
	publisher port.EventPublisher
	cache     port.SchemeCache
}

// NewDeactivateSchemeUseCase wires dependencies.
func NewDeactivateSchemeUseCase(repo port.SchemeRepository, publisher port.EventPublisher, cache port.SchemeCache) *DeactivateSchemeUseCase {
	return &DeactivateSchemeUseCase{repo: repo, publisher: publisher, cache: cache}
}

// Execute transitions the scheme to INACTIVE.
func (uc *DeactivateSchemeUseCase) Execute(ctx context.Context, req dto.DeactivateSchemeRequest) (dto.SchemeResponse, error) {
	scheme, err := uc.repo.FindByID(ctx, req.TenantID, req.SchemeID)
	if err != nil {
		return dto.SchemeResponse{}, fmt.Errorf("find scheme: %w", err)
	}

	scheme, err = scheme.Deactivate(req.Reason, time.Now().UTC())
	if err != nil {
		return dto.SchemeResponse{}, fmt.Errorf("deactivate scheme: %w", err)
	}

	if err := uc.repo.Save(ctx, scheme); err != nil {
		return dto.SchemeResponse{}, fmt.Errorf("save scheme: %w", err)
	}
	uc.cache.Invalidate(ctx, req.TenantID, req.SchemeID)

	if err := uc.publisher.Publish(ctx, scheme.DomainEvents()...); err != nil {
		return dto.SchemeResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.FromScheme(scheme), nil
}
