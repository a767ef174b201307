package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Corely-AI/corely-ledger/internal/apperrors"
	"github.com/Corely-AI/corely-ledger/internal/core/domain"
	portsrepo "github.com/Corely-AI/corely-ledger/internal/core/ports/repositories"
	portssvc "github.com/Corely-AI/corely-ledger/internal/core/ports/services"
	"github.com/Corely-AI/corely-ledger/internal/dto"
)

// maxNumberProbes bounds the collision-probe loop of the allocators. Hitting
// the bound means the counter is badly out of sync with stored documents.
const maxNumberProbes = 25

// settingsService owns tenant configuration and document numbering.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
	journalRepo  portsrepo.JournalEntryReader
}

// NewSettingsService creates a new settings service. journalRepo is used to
// probe entry numbers for collisions before an allocation commits.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository, journalRepo portsrepo.JournalEntryReader) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo, journalRepo: journalRepo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// SetupAccounting creates the initial settings record for a tenant.
func (s *settingsService) SetupAccounting(ctx context.Context, tenantID string, req dto.SetupAccountingRequest, userID string) (*domain.AccountingSettings, error) {
	existing, err := s.settingsRepo.FindSettings(ctx, tenantID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check existing settings")
		return nil, fmt.Errorf("failed to check existing settings: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: accounting is already set up for this tenant", apperrors.ErrConflict)
	}

	entryPrefix := req.EntryNumberPrefix
	if entryPrefix == "" {
		entryPrefix = "JE-"
	}
	poPrefix := req.PONumberPrefix
	if poPrefix == "" {
		poPrefix = "PO-"
	}

	now := time.Now().UTC()
	settings := domain.AccountingSettings{
		TenantID:             tenantID,
		BaseCurrency:         req.BaseCurrency,
		FiscalYearStartMonth: req.FiscalYearStartMonth,
		FiscalYearStartDay:   req.FiscalYearStartDay,
		PeriodLockingEnabled: req.PeriodLockingEnabled,
		EntryNumberPrefix:    entryPrefix,
		NextEntryNumber:      1,
		PONumberPrefix:       poPrefix,
		NextPONumber:         1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "Failed to save settings")
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	s.LogInfo(ctx, "Accounting set up for tenant", slog.String("base_currency", settings.BaseCurrency))
	return &settings, nil
}

// GetSettings retrieves a tenant's settings.
func (s *settingsService) GetSettings(ctx context.Context, tenantID string) (*domain.AccountingSettings, error) {
	settings, err := s.settingsRepo.FindSettings(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find settings")
		}
		return nil, err
	}
	return settings, nil
}

// GetSetupStatus reports whether accounting is set up for the tenant.
func (s *settingsService) GetSetupStatus(ctx context.Context, tenantID string) (*dto.SetupStatusResponse, error) {
	settings, err := s.settingsRepo.FindSettings(ctx, tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &dto.SetupStatusResponse{IsSetup: false}, nil
		}
		s.LogError(ctx, err, "Failed to check setup status")
		return nil, fmt.Errorf("failed to check setup status: %w", err)
	}
	return &dto.SetupStatusResponse{IsSetup: true, BaseCurrency: settings.BaseCurrency}, nil
}

// UpdateSettings mutates tenant configuration. The numbering counters are
// untouched here; they only move through the allocators.
func (s *settingsService) UpdateSettings(ctx context.Context, tenantID string, req dto.UpdateSettingsRequest, userID string) (*domain.AccountingSettings, error) {
	settings, err := s.GetSettings(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.PeriodLockingEnabled != nil {
		settings.PeriodLockingEnabled = *req.PeriodLockingEnabled
		updated = true
	}
	if req.EntryNumberPrefix != nil {
		settings.EntryNumberPrefix = *req.EntryNumberPrefix
		updated = true
	}
	if req.PONumberPrefix != nil {
		settings.PONumberPrefix = *req.PONumberPrefix
		updated = true
	}
	if !updated {
		return settings, nil
	}

	settings.LastUpdatedAt = time.Now().UTC()
	settings.LastUpdatedBy = userID

	if err := s.settingsRepo.UpdateSettings(ctx, *settings); err != nil {
		s.LogError(ctx, err, "Failed to update settings")
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	s.LogInfo(ctx, "Settings updated")
	return settings, nil
}

// AllocateEntryNumber returns the next journal entry number and persists the
// advanced counter. It must run inside the transaction that saves the
// numbered entry: the locked read serializes concurrent allocations and the
// counter write commits or rolls back with the entry, so numbers are never
// burned by a failed post. Each candidate is probed against existing entry
// numbers before being handed out.
func (s *settingsService) AllocateEntryNumber(ctx context.Context, tenantID string) (string, error) {
	return s.allocate(ctx, tenantID,
		func(settings *domain.AccountingSettings) string { return settings.AllocateEntryNumber() },
		func(ctx context.Context, number string) (bool, error) {
			return s.journalRepo.ExistsByEntryNumber(ctx, tenantID, number)
		})
}

// AllocatePONumber returns the next purchase order number, probing candidates
// with the caller-supplied check.
func (s *settingsService) AllocatePONumber(ctx context.Context, tenantID string, isTaken portssvc.NumberProbe) (string, error) {
	return s.allocate(ctx, tenantID,
		func(settings *domain.AccountingSettings) string { return settings.AllocatePONumber() },
		isTaken)
}

func (s *settingsService) allocate(ctx context.Context, tenantID string, next func(*domain.AccountingSettings) string, isTaken portssvc.NumberProbe) (string, error) {
	settings, err := s.settingsRepo.FindSettingsForUpdate(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to lock settings for number allocation")
		}
		return "", err
	}

	var number string
	allocated := false
	for probe := 0; probe < maxNumberProbes; probe++ {
		number = next(settings)
		taken, err := isTaken(ctx, number)
		if err != nil {
			s.LogError(ctx, err, "Number collision probe failed", slog.String("candidate", number))
			return "", fmt.Errorf("failed to probe document number: %w", err)
		}
		if !taken {
			allocated = true
			break
		}
		s.LogWarn(ctx, "Document number collision, advancing counter", slog.String("candidate", number))
	}
	if !allocated {
		return "", fmt.Errorf("%w: could not allocate a free document number after %d probes", apperrors.ErrInternal, maxNumberProbes)
	}

	if err := s.settingsRepo.UpdateSettings(ctx, *settings); err != nil {
		s.LogError(ctx, err, "Failed to persist advanced number counter")
		return "", fmt.Errorf("failed to persist number counter: %w", err)
	}
	return number, nil
}
