package services

import (
	"context"

	"github.com/Corely-AI/corely-ledger/internal/core/domain"
	"github.com/Corely-AI/corely-ledger/internal/dto"
)

// NumberProbe reports whether a candidate document number is already taken.
// Allocators call it between generating and committing a number so a stale
// counter cannot hand out a duplicate.
type NumberProbe func(ctx context.Context, number string) (bool, error)

// SettingsSvcFacade defines tenant configuration and document numbering
// operations.
type SettingsSvcFacade interface {
	// SetupAccounting creates the initial settings record for a tenant.
	// Fails with apperrors.ErrConflict when the tenant is already set up.
	SetupAccounting(ctx context.Context, tenantID string, req dto.SetupAccountingRequest, userID string) (*domain.AccountingSettings, error)

	// GetSettings retrieves a tenant's settings, or apperrors.ErrNotFound
	// when accounting has not been set up.
	GetSettings(ctx context.Context, tenantID string) (*domain.AccountingSettings, error)

	// GetSetupStatus reports whether accounting is set up for the tenant.
	GetSetupStatus(ctx context.Context, tenantID string) (*dto.SetupStatusResponse, error)

	// UpdateSettings mutates tenant configuration (not the counters).
	UpdateSettings(ctx context.Context, tenantID string, req dto.UpdateSettingsRequest, userID string) (*domain.AccountingSettings, error)

	// AllocateEntryNumber returns the next journal entry number and advances
	// the counter, probing for collisions against existing entry numbers.
	// Must be called inside the transaction that persists the numbered entry.
	AllocateEntryNumber(ctx context.Context, tenantID string) (string, error)

	// AllocatePONumber returns the next purchase order number, probing with
	// the caller-supplied isTaken check before committing the counter.
	AllocatePONumber(ctx context.Context, tenantID string, isTaken NumberProbe) (string, error)
}
