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

// journalService owns the journal entry lifecycle: draft creation and
// mutation, posting with balance and period checks, and atomic reversal.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalEntryRepository
	accountSvc  portssvc.AccountReaderSvc
	periodSvc   portssvc.PeriodSvcFacade
	settingsSvc portssvc.SettingsSvcFacade
}

// NewJournalService creates a new journal service.
func NewJournalService(journalRepo portsrepo.JournalEntryRepository, accountSvc portssvc.AccountReaderSvc, periodSvc portssvc.PeriodSvcFacade, settingsSvc portssvc.SettingsSvcFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
		periodSvc:   periodSvc,
		settingsSvc: settingsSvc,
	}
}

var (
	_ portssvc.JournalSvcFacade   = (*journalService)(nil)
	_ portssvc.JournalPostingPort = (*journalService)(nil)
)

// buildLines converts line requests into domain lines, enforcing a single
// currency per entry.
func buildLines(entryID string, reqs []dto.CreateEntryLineRequest) ([]domain.JournalLine, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: entry must have at least one line", apperrors.ErrValidation)
	}
	currency := reqs[0].Currency
	lines := make([]domain.JournalLine, len(reqs))
	for i, req := range reqs {
		if req.Currency != currency {
			return nil, fmt.Errorf("%w: all lines of an entry must share one currency (%s vs %s)", apperrors.ErrValidation, currency, req.Currency)
		}
		lines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountID:   req.AccountID,
			Direction:   domain.Direction(req.Direction),
			AmountCents: req.AmountCents,
			Currency:    req.Currency,
			LineMemo:    req.LineMemo,
			Reference:   req.Reference,
			Tags:        req.Tags,
		}
	}
	return lines, nil
}

// validateLineAccounts checks that every referenced account exists in the
// tenant and is active.
func (s *journalService) validateLineAccounts(ctx context.Context, tenantID string, lines []domain.JournalLine) error {
	ids := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.AccountID]; ok {
			continue
		}
		seen[line.AccountID] = struct{}{}
		ids = append(ids, line.AccountID)
	}

	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, tenantID, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch accounts for entry: %w", err)
	}
	for _, id := range ids {
		account, found := accounts[id]
		if !found {
			return fmt.Errorf("%w: ledger account %s", apperrors.ErrNotFound, id)
		}
		if !account.IsActive {
			return fmt.Errorf("%w: ledger account %s (%s) is inactive", apperrors.ErrValidation, account.Code, id)
		}
	}
	return nil
}

// CreateEntry creates a draft journal entry. Balance is not required at
// draft time; drafts may be incomplete.
func (s *journalService) CreateEntry(ctx context.Context, tenantID string, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	now := time.Now().UTC()
	entryID := uuid.NewString()

	lines, err := buildLines(entryID, req.Lines)
	if err != nil {
		return nil, err
	}

	entry := domain.JournalEntry{
		EntryID:     entryID,
		TenantID:    tenantID,
		Status:      domain.Draft,
		PostingDate: req.PostingDate,
		Memo:        req.Memo,
		SourceType:  req.SourceType,
		SourceID:    req.SourceID,
		SourceRef:   req.SourceRef,
		Lines:       lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := entry.ValidateLines(); err != nil {
		return nil, err
	}
	if err := s.validateLineAccounts(ctx, tenantID, entry.Lines); err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save draft entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	s.LogInfo(ctx, "Draft entry created", slog.String("entry_id", entryID), slog.Int("line_count", len(entry.Lines)))
	return &entry, nil
}

// UpdateEntry replaces header fields and lines of a draft entry. Posted
// entries are immutable.
func (s *journalService) UpdateEntry(ctx context.Context, tenantID, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.JournalEntry, error) {
	entry, err := s.findTenantEntry(ctx, tenantID, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.Draft {
		return nil, fmt.Errorf("%w: entry %s is %s, posted entries are immutable", apperrors.ErrValidation, entryID, entry.Status)
	}

	if req.PostingDate != nil {
		entry.PostingDate = *req.PostingDate
	}
	if req.Memo != nil {
		entry.Memo = *req.Memo
	}
	if req.Lines != nil {
		lines, err := buildLines(entryID, req.Lines)
		if err != nil {
			return nil, err
		}
		entry.Lines = lines
		if err := entry.ValidateLines(); err != nil {
			return nil, err
		}
		if err := s.validateLineAccounts(ctx, tenantID, entry.Lines); err != nil {
			return nil, err
		}
	}

	entry.LastUpdatedAt = time.Now().UTC()
	entry.LastUpdatedBy = userID

	if err := s.journalRepo.UpdateEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update draft entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	s.LogInfo(ctx, "Draft entry updated", slog.String("entry_id", entryID))
	return entry, nil
}

// checkPeriodOpen enforces the period gate for a posting date when period
// locking is enabled for the tenant. Settings must exist; posting requires a
// set-up tenant regardless because the entry number comes from them.
func (s *journalService) checkPeriodOpen(ctx context.Context, tenantID string, postingDate time.Time) error {
	settings, err := s.settingsSvc.GetSettings(ctx, tenantID)
	if err != nil {
		return err
	}
	if !settings.PeriodLockingEnabled {
		return nil
	}

	period, err := s.periodSvc.FindPeriodContainingDate(ctx, tenantID, postingDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: no accounting period covers posting date %s", apperrors.ErrValidation, postingDate.Format("2006-01-02"))
		}
		return err
	}
	if period.Status == domain.PeriodClosed {
		return fmt.Errorf("%w: posting date is in closed period %s", apperrors.ErrValidation, period.Name)
	}
	return nil
}

// PostEntry transitions a balanced draft to Posted. The balance and period
// checks, number allocation and status write all happen inside one storage
// transaction, so a post is never half-applied and a failed post never burns
// an entry number.
func (s *journalService) PostEntry(ctx context.Context, tenantID, entryID, postedByUserID string) (*domain.JournalEntry, error) {
	var posted *domain.JournalEntry

	err := s.journalRepo.WithTransaction(ctx, func(txCtx context.Context) error {
		entry, err := s.findTenantEntry(txCtx, tenantID, entryID)
		if err != nil {
			return err
		}
		if entry.Status != domain.Draft {
			return fmt.Errorf("%w: entry %s is %s, only drafts can be posted", apperrors.ErrValidation, entryID, entry.Status)
		}
		// Fail the cheap invariants before touching the number counter.
		if err := entry.ValidateLines(); err != nil {
			return err
		}
		if !entry.IsBalanced() {
			return fmt.Errorf("%w: entry is not balanced (debits %d, credits %d)", apperrors.ErrValidation, entry.TotalDebitsCents(), entry.TotalCreditsCents())
		}
		if err := s.checkPeriodOpen(txCtx, tenantID, entry.PostingDate); err != nil {
			return err
		}

		entryNumber, err := s.settingsSvc.AllocateEntryNumber(txCtx, tenantID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := entry.Post(entryNumber, postedByUserID, now); err != nil {
			return err
		}
		if err := s.journalRepo.UpdateEntryPosting(txCtx, *entry); err != nil {
			s.LogError(txCtx, err, "Failed to persist posted entry", slog.String("entry_id", entryID))
			return fmt.Errorf("failed to persist posted entry: %w", err)
		}

		posted = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Entry posted", slog.String("entry_id", entryID), slog.String("entry_number", posted.EntryNumber))
	return posted, nil
}

// ReverseEntry creates, posts and links the reversal of a posted entry. The
// reversal's save and the original's linkage update are a single atomic unit:
// an orphaned reversal or an unmarked original must be impossible.
func (s *journalService) ReverseEntry(ctx context.Context, tenantID, entryID string, req dto.ReverseEntryRequest, userID string) (*domain.JournalEntry, error) {
	var reversal *domain.JournalEntry

	err := s.journalRepo.WithTransaction(ctx, func(txCtx context.Context) error {
		original, err := s.findTenantEntry(txCtx, tenantID, entryID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		reversalID := uuid.NewString()
		lineIDs := make([]string, len(original.Lines))
		for i := range lineIDs {
			lineIDs[i] = uuid.NewString()
		}

		rev, err := original.BuildReversal(reversalID, lineIDs, req.ReversalDate, req.Memo, userID, now)
		if err != nil {
			return err
		}

		if err := s.checkPeriodOpen(txCtx, tenantID, rev.PostingDate); err != nil {
			return err
		}

		// Reversals are never left in draft: allocate a number and post
		// immediately.
		entryNumber, err := s.settingsSvc.AllocateEntryNumber(txCtx, tenantID)
		if err != nil {
			return err
		}
		if err := rev.Post(entryNumber, userID, now); err != nil {
			return err
		}
		if err := s.journalRepo.SaveEntry(txCtx, *rev); err != nil {
			s.LogError(txCtx, err, "Failed to save reversal entry", slog.String("entry_id", reversalID))
			return fmt.Errorf("failed to save reversal entry: %w", err)
		}

		if err := original.MarkReversed(reversalID, userID, now); err != nil {
			return err
		}
		if err := s.journalRepo.UpdateEntryReversalLinks(txCtx, *original); err != nil {
			s.LogError(txCtx, err, "Failed to mark original entry reversed", slog.String("entry_id", entryID))
			return fmt.Errorf("failed to mark original entry reversed: %w", err)
		}

		reversal = rev
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Entry reversed", slog.String("entry_id", entryID), slog.String("reversal_entry_id", reversal.EntryID), slog.String("entry_number", reversal.EntryNumber))
	return reversal, nil
}

// GetEntryByID retrieves a specific entry with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	return s.findTenantEntry(ctx, tenantID, entryID)
}

// ListEntries retrieves a filtered, paginated entry list.
func (s *journalService) ListEntries(ctx context.Context, tenantID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	filters := portsrepo.EntryListFilters{
		SourceType:   params.SourceType,
		SourceID:     params.SourceID,
		IncludeLines: params.IncludeLines,
		Limit:        limit,
		NextToken:    params.NextToken,
	}
	if params.Status != nil {
		status := domain.EntryStatus(*params.Status)
		filters.Status = &status
	}

	entries, nextToken, err := s.journalRepo.ListEntries(ctx, tenantID, filters)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries")
		return nil, fmt.Errorf("failed to retrieve entries: %w", err)
	}

	return &dto.ListEntriesResponse{
		Entries:   dto.ToEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

// CreateJournalEntry implements portssvc.JournalPostingPort for callers from
// other modules.
func (s *journalService) CreateJournalEntry(ctx context.Context, tenantID string, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	return s.CreateEntry(ctx, tenantID, req, creatorUserID)
}

// PostJournalEntry implements portssvc.JournalPostingPort.
func (s *journalService) PostJournalEntry(ctx context.Context, tenantID, entryID, postedByUserID string) (*domain.JournalEntry, error) {
	return s.PostEntry(ctx, tenantID, entryID, postedByUserID)
}

// findTenantEntry fetches an entry and verifies tenant ownership, obscuring
// cross-tenant existence as NotFound.
func (s *journalService) findTenantEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, tenantID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entry by ID", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	if entry.TenantID != tenantID {
		s.LogWarn(ctx, "Entry belongs to a different tenant", slog.String("entry_id", entryID))
		return nil, apperrors.ErrNotFound
	}
	return entry, nil
}
