package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Corely-AI/corely-ledger/internal/apperrors"
	"github.com/Corely-AI/corely-ledger/internal/core/domain"
	portsrepo "github.com/Corely-AI/corely-ledger/internal/core/ports/repositories"
	"github.com/Corely-AI/corely-ledger/internal/models"
)

type PgxPeriodRepository struct {
	BaseRepository
}

// newPgxPeriodRepository creates a new repository for fiscal period data.
func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepository {
	return &PgxPeriodRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PeriodRepository = (*PgxPeriodRepository)(nil)

func toDomainPeriod(m models.AccountingPeriod) domain.AccountingPeriod {
	return domain.AccountingPeriod{
		PeriodID:     m.PeriodID,
		TenantID:     m.TenantID,
		FiscalYearID: m.FiscalYearID,
		Name:         m.Name,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Status:       domain.PeriodStatus(m.Status),
		ClosedAt:     m.ClosedAt,
		ClosedBy:     m.ClosedBy,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const periodColumns = `period_id, tenant_id, fiscal_year_id, name, start_date, end_date, status, closed_at, closed_by, created_at, created_by, last_updated_at, last_updated_by`

func scanPeriod(row pgx.Row) (*domain.AccountingPeriod, error) {
	var m models.AccountingPeriod
	var closedBy sql.NullString
	err := row.Scan(
		&m.PeriodID,
		&m.TenantID,
		&m.FiscalYearID,
		&m.Name,
		&m.StartDate,
		&m.EndDate,
		&m.Status,
		&m.ClosedAt,
		&closedBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	m.ClosedBy = closedBy.String
	period := toDomainPeriod(m)
	return &period, nil
}

// SavePeriod persists a new period.
func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.AccountingPeriod) error {
	query := `
		INSERT INTO accounting_periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		period.PeriodID,
		period.TenantID,
		period.FiscalYearID,
		period.Name,
		period.StartDate,
		period.EndDate,
		string(period.Status),
		period.ClosedAt,
		nullable(period.ClosedBy),
		period.CreatedAt,
		period.CreatedBy,
		period.LastUpdatedAt,
		period.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: period %s already exists", apperrors.ErrConflict, period.PeriodID)
		}
		return fmt.Errorf("failed to save period %s: %w", period.PeriodID, err)
	}
	return nil
}

// UpdatePeriod persists period status changes.
func (r *PgxPeriodRepository) UpdatePeriod(ctx context.Context, period domain.AccountingPeriod) error {
	query := `
		UPDATE accounting_periods
		SET status = $1, closed_at = $2, closed_by = $3, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $6 AND period_id = $7;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		string(period.Status),
		period.ClosedAt,
		nullable(period.ClosedBy),
		period.LastUpdatedAt,
		period.LastUpdatedBy,
		period.TenantID,
		period.PeriodID,
	)
	if err != nil {
		return fmt.Errorf("failed to update period %s: %w", period.PeriodID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: period %s", apperrors.ErrNotFound, period.PeriodID)
	}
	return nil
}

// FindPeriodByID retrieves a tenant's period by its unique identifier.
func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, tenantID, periodID string) (*domain.AccountingPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM accounting_periods WHERE tenant_id = $1 AND period_id = $2;`
	period, err := scanPeriod(r.db(ctx).QueryRow(ctx, query, tenantID, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: period %s", apperrors.ErrNotFound, periodID)
		}
		return nil, fmt.Errorf("failed to find period %s: %w", periodID, err)
	}
	return period, nil
}

// FindPeriodContainingDate returns the period whose date range contains date.
func (r *PgxPeriodRepository) FindPeriodContainingDate(ctx context.Context, tenantID string, date time.Time) (*domain.AccountingPeriod, error) {
	query := `
		SELECT ` + periodColumns + ` FROM accounting_periods
		WHERE tenant_id = $1 AND start_date <= $2 AND end_date >= $2
		ORDER BY start_date ASC
		LIMIT 1;
	`
	period, err := scanPeriod(r.db(ctx).QueryRow(ctx, query, tenantID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no period contains %s", apperrors.ErrNotFound, date.Format("2006-01-02"))
		}
		return nil, fmt.Errorf("failed to find period containing %s: %w", date.Format("2006-01-02"), err)
	}
	return period, nil
}

// ListPeriods retrieves all periods of a fiscal year ordered by start date.
func (r *PgxPeriodRepository) ListPeriods(ctx context.Context, tenantID, fiscalYearID string) ([]domain.AccountingPeriod, error) {
	query := `
		SELECT ` + periodColumns + ` FROM accounting_periods
		WHERE tenant_id = $1 AND fiscal_year_id = $2
		ORDER BY start_date ASC;
	`
	rows, err := r.db(ctx).Query(ctx, query, tenantID, fiscalYearID)
	if err != nil {
		return nil, fmt.Errorf("failed to query periods: %w", err)
	}
	defer rows.Close()

	var periods []domain.AccountingPeriod
	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan period row: %w", err)
		}
		periods = append(periods, *period)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating period rows: %w", err)
	}
	if periods == nil {
		periods = []domain.AccountingPeriod{}
	}
	return periods, nil
}
