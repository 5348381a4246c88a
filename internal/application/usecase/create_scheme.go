package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/application/dto"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/model"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/port"
)

// CreateSchemeUseCase registers a new finance scheme for a tenant.
type CreateSchemeUseCase struct {
	repo      port.SchemeRepository
	publisher port.EventPublisher
	cache     port.SchemeCache
}

// NewCreateSchemeUseCase wires dependencies.
func NewCreateSchemeUseCase(repo port.SchemeRepository, publisher port.EventPublisher, cache port.SchemeCache) *CreateSchemeUseCase {
	return &CreateSchemeUseCase{repo: repo, publisher: publisher, cache: cache}
}

// Execute validates, persists, and announces a new scheme.
func (uc *CreateSchemeUseCase) Execute(ctx context.Context, req dto.CreateSchemeRequest) (dto.SchemeResponse, error) {
	now := time.Now().UTC()

	terms, err := toSchemeTerms(req.SchemeTermsPayload)
	if err != nil {
		return dto.SchemeResponse{}, fmt.Errorf("parse terms: %w", err)
	}

	scheme, err := model.NewScheme(req.TenantID, terms, req.Charges, now)
	if err != nil {
		return dto.SchemeResponse{}, fmt.Errorf("create scheme: %w", err)
	}

	if err := uc.repo.Save(ctx, scheme); err != nil {
		return dto.SchemeResponse{}, fmt.Errorf("save scheme: %w", err)
	}
	uc.cache.Set(ctx, scheme)

	if err := uc.publisher.Publish(ctx, scheme.DomainEvents()...); err != nil {
		return dto.SchemeResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.FromScheme(scheme), nil
}
