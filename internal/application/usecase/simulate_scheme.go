package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/application/dto"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/model"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/port"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/service"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/valueobject"
)

// SimulateSchemeUseCase runs a hypothetical quote through a scheme's charge
// formula and EMI math across every candidate tenure.
type SimulateSchemeUseCase struct {
	repo      port.SchemeRepository
	cache     port.SchemeCache
	simulator *service.Simulator
}

// NewSimulateSchemeUseCase wires dependencies.
func NewSimulateSchemeUseCase(repo port.SchemeRepository, cache port.SchemeCache, simulator *service.Simulator) *SimulateSchemeUseCase {
	return &SimulateSchemeUseCase{repo: repo, cache: cache, simulator: simulator}
}

// Execute simulates the quote. Simulation reads current scheme state and
// never mutates it, so the cached copy is good enough. A Draft payload
// quotes an unsaved scheme without touching storage.
func (uc *SimulateSchemeUseCase) Execute(ctx context.Context, req dto.SimulateSchemeRequest) (dto.SimulationResponse, error) {
	var scheme model.Scheme
	if req.Draft != nil {
		terms, err := toSchemeTerms(*req.Draft)
		if err != nil {
			return dto.SimulationResponse{}, fmt.Errorf("parse terms: %w", err)
		}
		scheme, err = model.NewScheme(req.TenantID, terms, req.Draft.Charges, time.Now())
		if err != nil {
			return dto.SimulationResponse{}, fmt.Errorf("draft scheme: %w", err)
		}
	} else {
		var ok bool
		scheme, ok = uc.cache.Get(ctx, req.TenantID, req.SchemeID)
		if !ok {
			var err error
			scheme, err = uc.repo.FindByID(ctx, req.TenantID, req.SchemeID)
			if err != nil {
				return dto.SimulationResponse{}, fmt.Errorf("find scheme: %w", err)
			}
			uc.cache.Set(ctx, scheme)
		}
	}

	in := service.SimulationInput{
		VehiclePrice:       req.VehiclePrice,
		LoanAmount:         req.LoanAmount,
		ExShowroom:         req.ExShowroom,
		IDV:                req.IDV,
		ODPremium:          req.ODPremium,
		InvoiceBase:        req.InvoiceBase,
		EngineCC:           req.EngineCC,
		KWRating:           req.KWRating,
		SeatingCapacity:    req.SeatingCapacity,
		GrossVehicleWeight: req.GrossVehicleWeight,
		Variables:          req.Variables,
	}
	if req.FuelType != "" {
		fuel, err := valueobject.NewFuelType(req.FuelType)
		if err != nil {
			return dto.SimulationResponse{}, fmt.Errorf("parse fuel type: %w", err)
		}
		in.Fuel = fuel
	}

	result, err := uc.simulator.Simulate(scheme, in)
	if err != nil {
		return dto.SimulationResponse{}, fmt.Errorf("simulate scheme: %w", err)
	}

	quotes := make([]dto.TenureQuoteResponse, 0, len(result.Quotes))
	for _, q := range result.Quotes {
		quotes = append(quotes, dto.TenureQuoteResponse{
			TenureMonths:    q.TenureMonths,
			FundedCharges:   q.FundedCharges,
			UpfrontCharges:  q.UpfrontCharges,
			GrossLoanAmount: q.GrossLoanAmount,
			Downpayment:     q.Downpayment,
			EMI:             q.EMI,
		})
	}

	schemeID := scheme.ID()
	if req.Draft != nil {
		schemeID = ""
	}
	return dto.SimulationResponse{SchemeID: schemeID, Quotes: quotes}, nil
}
