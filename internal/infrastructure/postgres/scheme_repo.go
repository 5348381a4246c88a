package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/model"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/valueobject"
	pkgpostgres "github.com/riderbookmybike-blip/bookmy.bike-sub007/pkg/postgres"
)

// SchemeRepo implements port.SchemeRepository. The charge formula is stored
// as a JSONB document in the schemes row; terms are flat columns so they can
// be filtered and indexed.
type SchemeRepo struct {
	db pkgpostgres.Querier
}

// NewSchemeRepo creates a new PostgreSQL-backed scheme repository.
// db is typically a *pgxpool.Pool but may be a pgx.Tx.
func NewSchemeRepo(db pkgpostgres.Querier) *SchemeRepo {
	return &SchemeRepo{db: db}
}

const schemeColumns = `
	id, tenant_id, name, partner_name, status,
	interest_rate, interest_type, min_tenure, max_tenure,
	min_loan_amount, max_loan_amount, max_ltv,
	payout, payout_type, charges,
	version, created_at, updated_at
`

// Save upserts a scheme with optimistic locking on the version column.
func (r *SchemeRepo) Save(ctx context.Context, scheme model.Scheme) error {
	charges, err := json.Marshal(scheme.Charges())
	if err != nil {
		return fmt.Errorf("marshal charges: %w", err)
	}

	query := `
		INSERT INTO schemes (
			id, tenant_id, name, partner_name, status,
			interest_rate, interest_type, min_tenure, max_tenure,
			min_loan_amount, max_loan_amount, max_ltv,
			payout, payout_type, charges,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		ON CONFLICT (id) DO UPDATE SET
			name            = EXCLUDED.name,
			partner_name    = EXCLUDED.partner_name,
			status          = EXCLUDED.status,
			interest_rate   = EXCLUDED.interest_rate,
			interest_type   = EXCLUDED.interest_type,
			min_tenure      = EXCLUDED.min_tenure,
			max_tenure      = EXCLUDED.max_tenure,
			min_loan_amount = EXCLUDED.min_loan_amount,
			max_loan_amount = EXCLUDED.max_loan_amount,
			max_ltv         = EXCLUDED.max_ltv,
			payout          = EXCLUDED.payout,
			payout_type     = EXCLUDED.payout_type,
			charges         = EXCLUDED.charges,
			version         = schemes.version + 1,
			updated_at      = EXCLUDED.updated_at
		WHERE schemes.version = $16
	`
	tag, err := r.db.Exec(ctx, query,
		scheme.ID(), scheme.TenantID(), scheme.Name(), scheme.PartnerName(), scheme.Status().String(),
		scheme.InterestRate(), scheme.InterestType().String(), scheme.MinTenure(), scheme.MaxTenure(),
		scheme.MinLoanAmount(), scheme.MaxLoanAmount(), scheme.MaxLTV(),
		scheme.Payout(), scheme.PayoutType().String(), charges,
		scheme.Version(), scheme.CreatedAt(), scheme.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save scheme: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on scheme")
	}
	return nil
}

// FindByID retrieves a scheme by tenant and ID.
func (r *SchemeRepo) FindByID(ctx context.Context, tenantID, id string) (model.Scheme, error) {
	query := `SELECT ` + schemeColumns + ` FROM schemes WHERE tenant_id = $1 AND id = $2`
	scheme, err := scanSchemeRow(r.db.QueryRow(ctx, query, tenantID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Scheme{}, valueobject.ErrSchemeNotFound
	}
	return scheme, err
}

// FindByTenant retrieves all schemes of a tenant, newest first.
func (r *SchemeRepo) FindByTenant(ctx context.Context, tenantID string) ([]model.Scheme, error) {
	query := `SELECT ` + schemeColumns + ` FROM schemes WHERE tenant_id = $1 ORDER BY created_at DESC`
	return r.querySchemes(ctx, query, tenantID)
}

// FindActiveByTenant retrieves a tenant's ACTIVE schemes, newest first.
func (r *SchemeRepo) FindActiveByTenant(ctx context.Context, tenantID string) ([]model.Scheme, error) {
	query := `SELECT ` + schemeColumns + ` FROM schemes WHERE tenant_id = $1 AND status = $2 ORDER BY created_at DESC`
	return r.querySchemes(ctx, query, tenantID, valueobject.SchemeStatusActive.String())
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

func (r *SchemeRepo) querySchemes(ctx context.Context, query string, args ...any) ([]model.Scheme, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query schemes: %w", err)
	}
	defer rows.Close()

	var schemes []model.Scheme
	for rows.Next() {
		scheme, err := scanSchemeRow(rows)
		if err != nil {
			return nil, err
		}
		schemes = append(schemes, scheme)
	}
	return schemes, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanSchemeRow(s scannable) (model.Scheme, error) {
	var (
		id, tenantID, name, partnerName string
		statusStr, interestTypeStr      string
		interestRate                    decimal.Decimal
		minTenure, maxTenure            int
		minLoan, maxLoan, maxLTV        decimal.Decimal
		payout                          decimal.Decimal
		payoutTypeStr                   string
		chargesRaw                      []byte
		version                         int
		createdAt, updatedAt            time.Time
	)

	err := s.Scan(
		&id, &tenantID, &name, &partnerName, &statusStr,
		&interestRate, &interestTypeStr, &minTenure, &maxTenure,
		&minLoan, &maxLoan, &maxLTV,
		&payout, &payoutTypeStr, &chargesRaw,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Scheme{}, err
		}
		return model.Scheme{}, fmt.Errorf("scan scheme: %w", err)
	}

	status, err := valueobject.NewSchemeStatus(statusStr)
	if err != nil {
		return model.Scheme{}, fmt.Errorf("parse scheme status: %w", err)
	}
	interestType, err := valueobject.NewInterestType(interestTypeStr)
	if err != nil {
		return model.Scheme{}, fmt.Errorf("parse interest type: %w", err)
	}
	payoutType, err := valueobject.NewPayoutType(payoutTypeStr)
	if err != nil {
		return model.Scheme{}, fmt.Errorf("parse payout type: %w", err)
	}

	var charges model.ChargeList
	if len(chargesRaw) > 0 {
		if err := json.Unmarshal(chargesRaw, &charges); err != nil {
			return model.Scheme{}, fmt.Errorf("unmarshal charges: %w", err)
		}
	}

	return model.ReconstructScheme(
		id, tenantID,
		model.SchemeTerms{
			Name:          name,
			PartnerName:   partnerName,
			InterestRate:  interestRate,
			InterestType:  interestType,
			MinTenure:     minTenure,
			MaxTenure:     maxTenure,
			MinLoanAmount: minLoan,
			MaxLoanAmount: maxLoan,
			MaxLTV:        maxLTV,
			Payout:        payout,
			PayoutType:    payoutType,
		},
		status, charges, version, createdAt, updatedAt,
	), nil
}
