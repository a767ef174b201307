package services

import (
	"context"
	"time"

	"github.com/Corely-AI/corely-ledger/internal/core/domain"
	"github.com/Corely-AI/corely-ledger/internal/dto"
)

// PeriodSvcFacade defines fiscal period management operations. Closing a
// period never blocks mutation of the period itself; the posting-time check
// in the journal service is the sole enforcement point.
type PeriodSvcFacade interface {
	// CreatePeriod registers a new fiscal period.
	CreatePeriod(ctx context.Context, tenantID string, req dto.CreatePeriodRequest, userID string) (*domain.AccountingPeriod, error)

	// GetPeriodByID retrieves a specific period.
	GetPeriodByID(ctx context.Context, tenantID, periodID string) (*domain.AccountingPeriod, error)

	// FindPeriodContainingDate returns the period covering date, or
	// apperrors.ErrNotFound.
	FindPeriodContainingDate(ctx context.Context, tenantID string, date time.Time) (*domain.AccountingPeriod, error)

	// ListPeriods retrieves the periods of a fiscal year.
	ListPeriods(ctx context.Context, tenantID, fiscalYearID string) ([]domain.AccountingPeriod, error)

	// ClosePeriod closes an open period. Fails with apperrors.ErrValidation
	// when the period is already closed.
	ClosePeriod(ctx context.Context, tenantID, periodID, closedByUserID string) (*domain.AccountingPeriod, error)

	// ReopenPeriod reopens a closed period. Fails with
	// apperrors.ErrValidation when the period is not closed.
	ReopenPeriod(ctx context.Context, tenantID, periodID, userID string) (*domain.AccountingPeriod, error)
}
