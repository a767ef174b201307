package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Corely-AI/corely-ledger/internal/apperrors"
	"github.com/Corely-AI/corely-ledger/internal/core/domain"
	portsrepo "github.com/Corely-AI/corely-ledger/internal/core/ports/repositories"
	portssvc "github.com/Corely-AI/corely-ledger/internal/core/ports/services"
	"github.com/Corely-AI/corely-ledger/internal/dto"
)

// periodService manages fiscal period state. Closing a period does not touch
// existing entries; the journal service's posting check is the enforcement
// point for the lock.
type periodService struct {
	BaseService
	periodRepo portsrepo.PeriodRepository
}

// NewPeriodService creates a new period service.
func NewPeriodService(periodRepo portsrepo.PeriodRepository) portssvc.PeriodSvcFacade {
	return &periodService{periodRepo: periodRepo}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

// CreatePeriod registers a new fiscal period for the tenant. Range overlap
// with existing periods is the creator's responsibility and is not
// re-validated on every posting.
func (s *periodService) CreatePeriod(ctx context.Context, tenantID string, req dto.CreatePeriodRequest, userID string) (*domain.AccountingPeriod, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, fmt.Errorf("%w: period end date must be after start date", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	period := domain.AccountingPeriod{
		PeriodID:     uuid.NewString(),
		TenantID:     tenantID,
		FiscalYearID: req.FiscalYearID,
		Name:         req.Name,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Status:       domain.PeriodOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.periodRepo.SavePeriod(ctx, period); err != nil {
		s.LogError(ctx, err, "Failed to save period", slog.String("period_id", period.PeriodID))
		return nil, fmt.Errorf("failed to save period: %w", err)
	}

	s.LogInfo(ctx, "Period created successfully", slog.String("period_id", period.PeriodID), slog.String("name", period.Name))
	return &period, nil
}

// GetPeriodByID retrieves a specific period.
func (s *periodService) GetPeriodByID(ctx context.Context, tenantID, periodID string) (*domain.AccountingPeriod, error) {
	return s.findTenantPeriod(ctx, tenantID, periodID)
}

// FindPeriodContainingDate returns the period covering date.
func (s *periodService) FindPeriodContainingDate(ctx context.Context, tenantID string, date time.Time) (*domain.AccountingPeriod, error) {
	period, err := s.periodRepo.FindPeriodContainingDate(ctx, tenantID, date)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find period containing date", slog.Time("date", date))
		}
		return nil, err
	}
	return period, nil
}

// ListPeriods retrieves the periods of a fiscal year.
func (s *periodService) ListPeriods(ctx context.Context, tenantID, fiscalYearID string) ([]domain.AccountingPeriod, error) {
	periods, err := s.periodRepo.ListPeriods(ctx, tenantID, fiscalYearID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list periods", slog.String("fiscal_year_id", fiscalYearID))
		return nil, fmt.Errorf("failed to retrieve periods: %w", err)
	}
	return periods, nil
}

// ClosePeriod closes an open period.
func (s *periodService) ClosePeriod(ctx context.Context, tenantID, periodID, closedByUserID string) (*domain.AccountingPeriod, error) {
	period, err := s.findTenantPeriod(ctx, tenantID, periodID)
	if err != nil {
		return nil, err
	}

	if err := period.Close(closedByUserID, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := s.periodRepo.UpdatePeriod(ctx, *period); err != nil {
		s.LogError(ctx, err, "Failed to persist period close", slog.String("period_id", periodID))
		return nil, fmt.Errorf("failed to close period: %w", err)
	}

	s.LogInfo(ctx, "Period closed", slog.String("period_id", periodID), slog.String("closed_by", closedByUserID))
	return period, nil
}

// ReopenPeriod reopens a closed period.
func (s *periodService) ReopenPeriod(ctx context.Context, tenantID, periodID, userID string) (*domain.AccountingPeriod, error) {
	period, err := s.findTenantPeriod(ctx, tenantID, periodID)
	if err != nil {
		return nil, err
	}

	if err := period.Reopen(userID, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := s.periodRepo.UpdatePeriod(ctx, *period); err != nil {
		s.LogError(ctx, err, "Failed to persist period reopen", slog.String("period_id", periodID))
		return nil, fmt.Errorf("failed to reopen period: %w", err)
	}

	s.LogInfo(ctx, "Period reopened", slog.String("period_id", periodID))
	return period, nil
}

func (s *periodService) findTenantPeriod(ctx context.Context, tenantID, periodID string) (*domain.AccountingPeriod, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, tenantID, periodID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find period by ID", slog.String("period_id", periodID))
		}
		return nil, err
	}
	if period.TenantID != tenantID {
		s.LogWarn(ctx, "Period belongs to a different tenant", slog.String("period_id", periodID))
		return nil, apperrors.ErrNotFound
	}
	return period, nil
}
