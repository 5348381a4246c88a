package usecase

import (
	"context"
	"fmt"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/application/dto"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/port"
)

// GetSchemeUseCase retrieves a single scheme, read-through cached.
type GetSchemeUseCase struct {
	repo  port.SchemeRepository
	cache port.SchemeCache
}

// NewGetSchemeUseCase wires dependencies.
func NewGetSchemeUseCase(repo port.SchemeRepository, cache port.SchemeCache) *GetSchemeUseCase {
	return &GetSchemeUseCase{repo: repo, cache: cache}
}

// Execute returns the scheme, consulting the cache first.
func (uc *GetSchemeUseCase) Execute(ctx context.Context, req dto.GetSchemeRequest) (dto.SchemeResponse, error) {
	if scheme, ok := uc.cache.Get(ctx, req.TenantID, req.SchemeID); ok {
		return dto.FromScheme(scheme), nil
	}

	scheme, err := uc.repo.FindByID(ctx, req.TenantID, req.SchemeID)
	if err != nil {
		return dto.SchemeResponse{}, fmt.Errorf("find scheme: %w", err)
	}
	uc.cache.Set(ctx, scheme)

	return dto.FromScheme(scheme), nil
}
