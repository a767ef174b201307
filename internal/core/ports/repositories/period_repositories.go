package repositories

import (
	"context"
	"time"

	"github.com/Corely-AI/corely-ledger/internal/core/domain"
)

// PeriodReader defines read operations for fiscal period data.
type PeriodReader interface {
	// FindPeriodByID retrieves a tenant's period by its unique identifier.
	FindPeriodByID(ctx context.Context, tenantID, periodID string) (*domain.AccountingPeriod, error)

	// FindPeriodContainingDate returns the period whose [startDate, endDate]
	// range contains date, or apperrors.ErrNotFound if none does.
	FindPeriodContainingDate(ctx context.Context, tenantID string, date time.Time) (*domain.AccountingPeriod, error)

	// ListPeriods retrieves all periods of a fiscal year ordered by start date.
	ListPeriods(ctx context.Context, tenantID, fiscalYearID string) ([]domain.AccountingPeriod, error)
}

// PeriodWriter defines write operations for fiscal period data.
type PeriodWriter interface {
	// SavePeriod persists a new period.
	SavePeriod(ctx context.Context, period domain.AccountingPeriod) error

	// UpdatePeriod persists period status changes.
	UpdatePeriod(ctx context.Context, period domain.AccountingPeriod) error
}

// PeriodRepository combines all period repository interfaces.
type PeriodRepository interface {
	PeriodReader
	PeriodWriter
}
