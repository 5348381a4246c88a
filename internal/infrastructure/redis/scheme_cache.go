package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/model"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/valueobject"
)

// SchemeCache implements port.SchemeCache on Redis. Failures degrade to
// cache misses so scheme reads never depend on Redis availability.
type SchemeCache struct {
	client *goredis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewSchemeCache creates a Redis-backed scheme cache.
func NewSchemeCache(client *goredis.Client, ttl time.Duration, logger *slog.Logger) *SchemeCache {
	return &SchemeCache{client: client, ttl: ttl, logger: logger}
}

func cacheKey(tenantID, id string) string {
	return fmt.Sprintf("scheme:%s:%s", tenantID, id)
}

// schemeRecord is the cached representation of a scheme aggregate.
type schemeRecord struct {
	ID            string           `json:"id"`
	TenantID      string           `json:"tenant_id"`
	Name          string           `json:"name"`
	PartnerName   string           `json:"partner_name,omitempty"`
	Status        string           `json:"status"`
	InterestRate  decimal.Decimal  `json:"interest_rate"`
	InterestType  string           `json:"interest_type"`
	MinTenure     int              `json:"min_tenure"`
	MaxTenure     int              `json:"max_tenure"`
	MinLoanAmount decimal.Decimal  `json:"min_loan_amount"`
	MaxLoanAmount decimal.Decimal  `json:"max_loan_amount"`
	MaxLTV        decimal.Decimal  `json:"max_ltv"`
	Payout        decimal.Decimal  `json:"payout"`
	PayoutType    string           `json:"payout_type"`
	Charges       model.ChargeList `json:"charges,omitempty"`
	Version       int              `json:"version"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// Get looks up a cached scheme. A miss, an unreachable backend, or a record
// that no longer decodes all report a miss.
func (c *SchemeCache) Get(ctx context.Context, tenantID, id string) (model.Scheme, bool) {
	raw, err := c.client.Get(ctx, cacheKey(tenantID, id)).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.logger.WarnContext(ctx, "scheme cache read failed", "error", err)
		}
		return model.Scheme{}, false
	}

	var rec schemeRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		c.logger.WarnContext(ctx, "scheme cache record corrupt", "key", cacheKey(tenantID, id), "error", err)
		return model.Scheme{}, false
	}

	scheme, err := rec.toScheme()
	if err != nil {
		c.logger.WarnContext(ctx, "scheme cache record invalid", "key", cacheKey(tenantID, id), "error", err)
		return model.Scheme{}, false
	}
	return scheme, true
}

// Set stores a scheme with the configured TTL. Errors are logged, not returned.
func (c *SchemeCache) Set(ctx context.Context, scheme model.Scheme) {
	rec := schemeRecord{
		ID:            scheme.ID(),
		TenantID:      scheme.TenantID(),
		Name:          scheme.Name(),
		PartnerName:   scheme.PartnerName(),
		Status:        scheme.Status().String(),
		InterestRate:  scheme.InterestRate(),
		InterestType:  scheme.InterestType().String(),
		MinTenure:     scheme.MinTenure(),
		MaxTenure:     scheme.MaxTenure(),
		MinLoanAmount: scheme.MinLoanAmount(),
		MaxLoanAmount: scheme.MaxLoanAmount(),
		MaxLTV:        scheme.MaxLTV(),
		Payout:        scheme.Payout(),
		PayoutType:    scheme.PayoutType().String(),
		Charges:       scheme.Charges(),
		Version:       scheme.Version(),
		CreatedAt:     scheme.CreatedAt(),
		UpdatedAt:     scheme.UpdatedAt(),
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		c.logger.WarnContext(ctx, "scheme cache marshal failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, cacheKey(rec.TenantID, rec.ID), raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "scheme cache write failed", "error", err)
	}
}

// Invalidate drops a cached scheme after a write.
func (c *SchemeCache) Invalidate(ctx context.Context, tenantID, id string) {
	if err := c.client.Del(ctx, cacheKey(tenantID, id)).Err(); err != nil {
		c.logger.WarnContext(ctx, "scheme cache invalidation failed", "error", err)
	}
}

func (r schemeRecord) toScheme() (model.Scheme, error) {
	status, err := valueobject.NewSchemeStatus(r.Status)
	if err != nil {
		return model.Scheme{}, err
	}
	interestType, err := valueobject.NewInterestType(r.InterestType)
	if err != nil {
		return model.Scheme{}, err
	}
	payoutType, err := valueobject.NewPayoutType(r.PayoutType)
	if err != nil {
		return model.Scheme{}, err
	}

	return model.ReconstructScheme(
		r.ID, r.TenantID,
		model.SchemeTerms{
			Name:          r.Name,
			PartnerName:   r.PartnerName,
			InterestRate:  r.InterestRate,
			InterestType:  interestType,
			MinTenure:     r.MinTenure,
			MaxTenure:     r.MaxTenure,
			MinLoanAmount: r.MinLoanAmount,
			MaxLoanAmount: r.MaxLoanAmount,
			MaxLTV:        r.MaxLTV,
			Payout:        r.Payout,
			PayoutType:    payoutType,
		},
		status, r.Charges, r.Version, r.CreatedAt, r.UpdatedAt,
	), nil
}
