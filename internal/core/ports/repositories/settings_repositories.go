package repositories

import (
	"context"

	"github.com/Corely-AI/corely-ledger/internal/core/domain"
)

// SettingsRepository persists the single per-tenant settings record. The
// numbering counters live on this record, so SaveSettings participates in the
// posting transaction: implementations must serialize concurrent
// read-modify-write cycles on the same tenant row (row lock or equivalent) so
// two concurrent posts never observe the same counter value.
type SettingsRepository interface {
	// FindSettings retrieves a tenant's settings, or apperrors.ErrNotFound
	// when accounting has not been set up for the tenant.
	FindSettings(ctx context.Context, tenantID string) (*domain.AccountingSettings, error)

	// FindSettingsForUpdate retrieves the settings row locked for update
	// within the current transaction.
	FindSettingsForUpdate(ctx context.Context, tenantID string) (*domain.AccountingSettings, error)

	// SaveSettings inserts the initial settings record for a tenant.
	SaveSettings(ctx context.Context, settings domain.AccountingSettings) error

	// UpdateSettings persists settings mutations, including counter advances.
	UpdateSettings(ctx context.Context, settings domain.AccountingSettings) error
}
