package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/application/dto"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/port"
)

// UpdateSchemeUseCase replaces a scheme's terms and charge formula.
type UpdateSchemeUseCase struct {
	repo      port.SchemeRepository
	publisher port.EventPublisher
	cache     port.SchemeCache
}

// NewUpdateSchemeUseCase wires dependencies.
func NewUpdateSchemeUseCase(repo port.SchemeRepository, publisher port.EventPublisher, cache port.SchemeCache) *UpdateSchemeUseCase {
	return &UpdateSchemeUseCase{repo: repo, publisher: publisher, cache: cache}
}

// Execute loads, mutates, and persists the scheme. The repository's
// optimistic lock rejects concurrent writers.
func (uc *UpdateSchemeUseCase) Execute(ctx context.Context, req dto.UpdateSchemeRequest) (dto.SchemeResponse, error) {
	now := time.Now().UTC()

	terms, err := toSchemeTerms(req.SchemeTermsPayload)
	if err != nil {
		return dto.SchemeResponse{}, fmt.Errorf("parse terms: %w", err)
	}

	scheme, err := uc.repo.FindByID(ctx, req.TenantID, req.SchemeID)
	if err != nil {
		return dto.SchemeResponse{}, fmt.Errorf("find scheme: %w", err)
	}

	scheme, err = scheme.Update(terms, req.Charges, now)
	if err != nil {
		return dto.SchemeResponse{}, fmt.Errorf("update scheme: %w", err)
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
