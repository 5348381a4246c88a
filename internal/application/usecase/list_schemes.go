package usecase

import (
	"context"
	"fmt"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/application/dto"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/model"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/port"
)

// ListSchemesUseCase lists a tenant's schemes.
type ListSchemesUseCase struct {
	repo port.SchemeRepository
}

// NewListSchemesUseCase wires dependencies.
func NewListSchemesUseCase(repo port.SchemeRepository) *ListSchemesUseCase {
	return &ListSchemesUseCase{repo: repo}
}

// Execute lists every scheme of the tenant, optionally only active ones.
func (uc *ListSchemesUseCase) Execute(ctx context.Context, req dto.ListSchemesRequest) (dto.ListSchemesResponse, error) {
	var (
		schemes []model.Scheme
		err     error
	)
	if req.ActiveOnly {
		schemes, err = uc.repo.FindActiveByTenant(ctx, req.TenantID)
	} else {
		schemes, err = uc.repo.FindByTenant(ctx, req.TenantID)
	}
	if err != nil {
		return dto.ListSchemesResponse{}, fmt.Errorf("list schemes: %w", err)
	}

	out := make([]dto.SchemeResponse, 0, len(schemes))
	for _, s := range schemes {
		out = append(out, dto.FromScheme(s))
	}
	return dto.ListSchemesResponse{Schemes: out}, nil
}
