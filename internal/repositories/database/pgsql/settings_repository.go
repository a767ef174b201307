package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Corely-AI/corely-ledger/internal/apperrors"
	"github.com/Corely-AI/corely-ledger/internal/core/domain"
	portsrepo "github.com/Corely-AI/corely-ledger/internal/core/ports/repositories"
	"github.com/Corely-AI/corely-ledger/internal/models"
)

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for accounting settings.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

func toDomainSettings(m models.AccountingSettings) domain.AccountingSettings {
	return domain.AccountingSettings{
		TenantID:             m.TenantID,
		BaseCurrency:         m.BaseCurrency,
		FiscalYearStartMonth: m.FiscalYearStartMonth,
		FiscalYearStartDay:   m.FiscalYearStartDay,
		PeriodLockingEnabled: m.PeriodLockingEnabled,
		EntryNumberPrefix:    m.EntryNumberPrefix,
		NextEntryNumber:      m.NextEntryNumber,
		PONumberPrefix:       m.PONumberPrefix,
		NextPONumber:         m.NextPONumber,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const settingsColumns = `tenant_id, base_currency, fiscal_year_start_month, fiscal_year_start_day, period_locking_enabled, entry_number_prefix, next_entry_number, po_number_prefix, next_po_number, created_at, created_by, last_updated_at, last_updated_by`

func scanSettings(row pgx.Row) (*domain.AccountingSettings, error) {
	var m models.AccountingSettings
	err := row.Scan(
		&m.TenantID,
		&m.BaseCurrency,
		&m.FiscalYearStartMonth,
		&m.FiscalYearStartDay,
		&m.PeriodLockingEnabled,
		&m.EntryNumberPrefix,
		&m.NextEntryNumber,
		&m.PONumberPrefix,
		&m.NextPONumber,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	settings := toDomainSettings(m)
	return &settings, nil
}

// FindSettings retrieves a tenant's settings.
func (r *PgxSettingsRepository) FindSettings(ctx context.Context, tenantID string) (*domain.AccountingSettings, error) {
	query := `SELECT ` + settingsColumns + ` FROM accounting_settings WHERE tenant_id = $1;`
	return r.findSettings(ctx, tenantID, query)
}

// FindSettingsForUpdate retrieves the settings row locked for update. The
// row lock serializes concurrent number allocations on the same tenant.
func (r *PgxSettingsRepository) FindSettingsForUpdate(ctx context.Context, tenantID string) (*domain.AccountingSettings, error) {
	query := `SELECT ` + settingsColumns + ` FROM accounting_settings WHERE tenant_id = $1 FOR UPDATE;`
	return r.findSettings(ctx, tenantID, query)
}

func (r *PgxSettingsRepository) findSettings(ctx context.Context, tenantID, query string) (*domain.AccountingSettings, error) {
	settings, err := scanSettings(r.db(ctx).QueryRow(ctx, query, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: accounting is not set up for tenant", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find settings: %w", err)
	}
	return settings, nil
}

// SaveSettings inserts the initial settings record for a tenant.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.AccountingSettings) error {
	query := `
		INSERT INTO accounting_settings (` + settingsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		settings.TenantID,
		settings.BaseCurrency,
		settings.FiscalYearStartMonth,
		settings.FiscalYearStartDay,
		settings.PeriodLockingEnabled,
		settings.EntryNumberPrefix,
		settings.NextEntryNumber,
		settings.PONumberPrefix,
		settings.NextPONumber,
		settings.CreatedAt,
		settings.CreatedBy,
		settings.LastUpdatedAt,
		settings.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: accounting is already set up for tenant", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// UpdateSettings persists settings mutations, including counter advances.
func (r *PgxSettingsRepository) UpdateSettings(ctx context.Context, settings domain.AccountingSettings) error {
	query := `
		UPDATE accounting_settings
		SET base_currency = $1, fiscal_year_start_month = $2, fiscal_year_start_day = $3,
			period_locking_enabled = $4, entry_number_prefix = $5, next_entry_number = $6,
			po_number_prefix = $7, next_po_number = $8, last_updated_at = $9, last_updated_by = $10
		WHERE tenant_id = $11;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		settings.BaseCurrency,
		settings.FiscalYearStartMonth,
		settings.FiscalYearStartDay,
		settings.PeriodLockingEnabled,
		settings.EntryNumberPrefix,
		settings.NextEntryNumber,
		settings.PONumberPrefix,
		settings.NextPONumber,
		settings.LastUpdatedAt,
		settings.LastUpdatedBy,
		settings.TenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: accounting is not set up for tenant", apperrors.ErrNotFound)
	}
	return nil
}
