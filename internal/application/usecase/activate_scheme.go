package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/application/dto"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/port"
)

// ActivateSchemeUseCase makes a scheme quotable.
type ActivateSchemeUseCase struct {
	repo      port.SchemeRepository
	publisher port.EventPublisher
	cache     port.SchemeCache
}

// NewActivateSchemeUseCase wires dependencies.
func NewActivateSchemeUseCase(repo port.SchemeRepository, publisher port.EventPublisher, cache port.SchemeCache) *ActivateSchemeUseCase {
	return &ActivateSchemeUseCase{repo: repo, publisher: publisher, cache: cache}
}

// Execute transitions the scheme to ACTIVE.
func (uc *ActivateSchemeUseCase) Execute(ctx context.Context, req dto.ActivateSchemeRequest) (dto.SchemeResponse, error) {
	scheme, err := uc.repo.FindByID(ctx, req.TenantID, req.SchemeID)
	if err != nil {
		return dto.SchemeResponse{}, fmt.Errorf("find scheme: %w", err)
	}

	scheme, err = scheme.Activate(time.Now().UTC())
	if err != nil {
		return dto.SchemeResponse{}, fmt.Errorf("activate scheme: %w", err)
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
