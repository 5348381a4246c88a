package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/application/dto"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/application/usecase"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/model"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/service"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/valueobject"
)

func simulationScheme(t *testing.T) model.Scheme {
	t.Helper()
	scheme, err := model.NewScheme("tenant-001", model.SchemeTerms{
		Name:          "Standard 2W Retail",
		InterestRate:  decimal.NewFromFloat(10.5),
		InterestType:  valueobject.InterestReducing,
		MinTenure:     12,
		MaxTenure:     36,
		MinLoanAmount: decimal.NewFromInt(30000),
		MaxLoanAmount: decimal.NewFromInt(150000),
		MaxLTV:        decimal.NewFromInt(85),
		PayoutType:    valueobject.PayoutPercentage,
	}, model.ChargeList{
		model.PercentageComponent{
			ComponentMeta: model.ComponentMeta{
				ID:     "processing-fee",
				Basis:  valueobject.BasisGrossLoanAmount,
				Impact: valueobject.ImpactUpfront,
			},
			Percentage: decimal.NewFromInt(2),
		},
	}, time.Now().UTC())
	require.NoError(t, err)
	return scheme.ClearEvents()
}

func validSimulateRequest(schemeID string) dto.SimulateSchemeRequest {
	return dto.SimulateSchemeRequest{
		TenantID:     "tenant-001",
		SchemeID:     schemeID,
		VehiclePrice: decimal.NewFromInt(100000),
		LoanAmount:   decimal.NewFromInt(80000),
		FuelType:     "PETROL",
	}
}

func TestSimulateScheme_Execute(t *testing.T) {
	t.Run("quotes every ladder tenure for the scheme", func(t *testing.T) {
		scheme := simulationScheme(t)
		repo := &mockSchemeRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.Scheme, error) {
				return scheme, nil
			},
		}
		cache := newMockSchemeCache()

		uc := usecase.NewSimulateSchemeUseCase(repo, cache, service.NewSimulator())

		resp, err := uc.Execute(context.Background(), validSimulateRequest(scheme.ID()))

		require.NoError(t, err)
		assert.Equal(t, scheme.ID(), resp.SchemeID)
		require.Len(t, resp.Quotes, 5)

		last := resp.Quotes[len(resp.Quotes)-1]
		assert.Equal(t, 36, last.TenureMonths)
		assert.True(t, last.UpfrontCharges.Equal(decimal.NewFromInt(1600)), "got %s", last.UpfrontCharges)
		assert.True(t, last.Downpayment.Equal(decimal.NewFromInt(21600)), "got %s", last.Downpayment)
		assert.True(t, last.EMI.Equal(decimal.NewFromInt(2600)), "got %s", last.EMI)

		// The fetched scheme is cached for the next simulation.
		assert.Equal(t, 1, cache.sets)
	})

	t.Run("serves repeat simulations from the cache", func(t *testing.T) {
		scheme := simulationScheme(t)
		calls := 0
		repo := &mockSchemeRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.Scheme, error) {
				calls++
				return scheme, nil
			},
		}
		cache := newMockSchemeCache()

		uc := usecase.NewSimulateSchemeUseCase(repo, cache, service.NewSimulator())

		_, err := uc.Execute(context.Background(), validSimulateRequest(scheme.ID()))
		require.NoError(t, err)
		_, err = uc.Execute(context.Background(), validSimulateRequest(scheme.ID()))
		require.NoError(t, err)

		assert.Equal(t, 1, calls)
	})

	t.Run("fails on an unknown fuel type", func(t *testing.T) {
		scheme := simulationScheme(t)
		cache := newMockSchemeCache()
		cache.Set(context.Background(), scheme)

		uc := usecase.NewSimulateSchemeUseCase(&mockSchemeRepository{}, cache, service.NewSimulator())

		req := validSimulateRequest(scheme.ID())
		req.FuelType = "HYDROGEN"
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse fuel type")
	})

	t.Run("propagates loan bound violations", func(t *testing.T) {
		scheme := simulationScheme(t)
		cache := newMockSchemeCache()
		cache.Set(context.Background(), scheme)

		uc := usecase.NewSimulateSchemeUseCase(&mockSchemeRepository{}, cache, service.NewSimulator())

		req := validSimulateRequest(scheme.ID())
		req.LoanAmount = decimal.NewFromInt(10000)
		_, err := uc.Execute(context.Background(), req)

		require.ErrorIs(t, err, service.ErrLoanOutOfRange)
	})

	t.Run("fails when the scheme cannot be loaded", func(t *testing.T) {
		uc := usecase.NewSimulateSchemeUseCase(&mockSchemeRepository{}, newMockSchemeCache(), service.NewSimulator())

		_, err := uc.Execute(context.Background(), validSimulateRequest("missing"))

		require.ErrorIs(t, err, valueobject.ErrSchemeNotFound)
	})

	t.Run("quotes a draft payload without touching storage", func(t *testing.T) {
		repo := &mockSchemeRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.Scheme, error) {
				t.Fatal("draft simulation must not hit the repository")
				return model.Scheme{}, nil
			},
		}
		cache := newMockSchemeCache()

		uc := usecase.NewSimulateSchemeUseCase(repo, cache, service.NewSimulator())

		req := validSimulateRequest("")
		req.Draft = &dto.SchemeTermsPayload{
			Name:          "Draft 2W Retail",
			InterestRate:  decimal.NewFromFloat(10.5),
			InterestType:  "REDUCING",
			MinTenure:     12,
			MaxTenure:     36,
			MinLoanAmount: decimal.NewFromInt(30000),
			MaxLoanAmount: decimal.NewFromInt(150000),
			MaxLTV:        decimal.NewFromInt(85),
		}
		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Empty(t, resp.SchemeID)
		require.Len(t, resp.Quotes, 5)
		assert.True(t, resp.Quotes[4].EMI.Equal(decimal.NewFromInt(2600)), "got %s", resp.Quotes[4].EMI)
		assert.Equal(t, 0, cache.sets)
		assert.Empty(t, repo.saved)
	})

	t.Run("rejects an invalid draft payload", func(t *testing.T) {
		uc := usecase.NewSimulateSchemeUseCase(&mockSchemeRepository{}, newMockSchemeCache(), service.NewSimulator())

		req := validSimulateRequest("")
		req.Draft = &dto.SchemeTermsPayload{
			Name:         "Draft",
			InterestType: "REDUCING",
			MinTenure:    0,
			MaxTenure:    36,
			MaxLTV:       decimal.NewFromInt(85),
		}
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "draft scheme")
	})
}

func TestGetScheme_Execute(t *testing.T) {
	t.Run("reads through the cache", func(t *testing.T) {
		scheme := simulationScheme(t)
		calls := 0
		repo := &mockSchemeRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.Scheme, error) {
				calls++
				return scheme, nil
			},
		}
		cache := newMockSchemeCache()

		uc := usecase.NewGetSchemeUseCase(repo, cache)

		req := dto.GetSchemeRequest{TenantID: "tenant-001", SchemeID: scheme.ID()}
		first, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		second, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 1, calls)
	})

	t.Run("fails when the scheme does not exist", func(t *testing.T) {
		uc := usecase.NewGetSchemeUseCase(&mockSchemeRepository{}, newMockSchemeCache())

		_, err := uc.Execute(context.Background(), dto.GetSchemeRequest{TenantID: "tenant-001", SchemeID: "missing"})

		require.ErrorIs(t, err, valueobject.ErrSchemeNotFound)
	})
}

func TestListSchemes_Execute(t *testing.T) {
	t.Run("lists all schemes for the tenant", func(t *testing.T) {
		a := simulationScheme(t)
		b := simulationScheme(t)
		repo := &mockSchemeRepository{
			findByTenantFunc: func(_ context.Context, tenantID string) ([]model.Scheme, error) {
				assert.Equal(t, "tenant-001", tenantID)
				return []model.Scheme{a, b}, nil
			},
		}

		uc := usecase.NewListSchemesUseCase(repo)

		resp, err := uc.Execute(context.Background(), dto.ListSchemesRequest{TenantID: "tenant-001"})

		require.NoError(t, err)
		assert.Len(t, resp.Schemes, 2)
	})

	t.Run("filters to active schemes on request", func(t *testing.T) {
		active, err := simulationScheme(t).Activate(time.Now().UTC())
		require.NoError(t, err)

		repo := &mockSchemeRepository{
			findActiveFunc: func(_ context.Context, _ string) ([]model.Scheme, error) {
				return []model.Scheme{active.ClearEvents()}, nil
			},
		}

		uc := usecase.NewListSchemesUseCase(repo)

		resp, err := uc.Execute(context.Background(), dto.ListSchemesRequest{TenantID: "tenant-001", ActiveOnly: true})

		require.NoError(t, err)
		require.Len(t, resp.Schemes, 1)
		assert.Equal(t, "ACTIVE", resp.Schemes[0].Status)
	})

	t.Run("fails when the repository fails", func(t *testing.T) {
		repo := &mockSchemeRepository{
			findByTenantFunc: func(_ context.Context, _ string) ([]model.Scheme, error) {
				return nil, fmt.Errorf("database unavailable")
			},
		}

		uc := usecase.NewListSchemesUseCase(repo)

		_, err := uc.Execute(context.Background(), dto.ListSchemesRequest{TenantID: "tenant-001"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "list schemes")
	})
}
