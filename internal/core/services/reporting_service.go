package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Corely-AI/corely-ledger/internal/core/domain"
	portsrepo "github.com/Corely-AI/corely-ledger/internal/core/ports/repositories"
	portssvc "github.com/Corely-AI/corely-ledger/internal/core/ports/services"
)

// reportingService computes financial reports from pre-aggregated posted
// line activity. All math is integer cents; reports never mutate anything.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountSvc    portssvc.AccountReaderSvc
	settingsSvc   portssvc.SettingsSvcFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, accountSvc portssvc.AccountReaderSvc, settingsSvc portssvc.SettingsSvcFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		accountSvc:    accountSvc,
		settingsSvc:   settingsSvc,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// requireSetup gates every report on the tenant having accounting settings.
// An empty ledger is fine, a never-configured tenant is NotFound.
func (s *reportingService) requireSetup(ctx context.Context, tenantID string) error {
	_, err := s.settingsSvc.GetSettings(ctx, tenantID)
	return err
}

// endOfDayExclusive converts an inclusive, day-granular report end date into
// the exclusive upper bound of the query window. Posting dates are full
// timestamps, so "through to" means "before the start of the next day".
func endOfDayExclusive(to time.Time) time.Time {
	return to.AddDate(0, 0, 1)
}

// GetTrialBalance sums debits and credits per account over [from, to].
// Accounts whose debits and credits are both zero in range are omitted, and
// the totals are computed over the surviving rows.
func (s *reportingService) GetTrialBalance(ctx context.Context, tenantID string, from, to time.Time) (*domain.TrialBalanceReport, error) {
	if err := s.requireSetup(ctx, tenantID); err != nil {
		return nil, err
	}

	totals, err := s.reportingRepo.GetAccountActivityTotals(ctx, tenantID, from, endOfDayExclusive(to))
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate account activity")
		return nil, fmt.Errorf("failed to aggregate account activity: %w", err)
	}

	report := &domain.TrialBalanceReport{
		FromDate: from,
		ToDate:   to,
		Rows:     make([]domain.TrialBalanceRow, 0, len(totals)),
	}
	for _, t := range totals {
		if t.DebitsCents == 0 && t.CreditsCents == 0 {
			continue
		}
		report.Rows = append(report.Rows, domain.TrialBalanceRow{
			AccountID:    t.AccountID,
			AccountCode:  t.AccountCode,
			AccountName:  t.AccountName,
			AccountType:  t.AccountType,
			DebitsCents:  t.DebitsCents,
			CreditsCents: t.CreditsCents,
			BalanceCents: t.DebitsCents - t.CreditsCents,
		})
		report.TotalDebitsCents += t.DebitsCents
		report.TotalCreditsCents += t.CreditsCents
	}
	return report, nil
}

// GetGeneralLedger lists one account's posted movements over [from, to]. The
// opening balance is the signed activity before from, every movement adjusts
// the running balance debit-positive, and the closing balance is the final
// running balance.
func (s *reportingService) GetGeneralLedger(ctx context.Context, tenantID, accountID string, from, to time.Time) (*domain.GeneralLedgerReport, error) {
	if err := s.requireSetup(ctx, tenantID); err != nil {
		return nil, err
	}

	account, err := s.accountSvc.GetAccountByID(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}

	var opening int64
	if !from.IsZero() {
		// The repository window is half-open, so all activity strictly
		// before from is [zero, from).
		prior, err := s.reportingRepo.GetAccountActivityTotals(ctx, tenantID, time.Time{}, from)
		if err != nil {
			s.LogError(ctx, err, "Failed to aggregate opening balance", slog.String("account_id", accountID))
			return nil, fmt.Errorf("failed to aggregate opening balance: %w", err)
		}
		for _, t := range prior {
			if t.AccountID == accountID {
				opening = t.DebitsCents - t.CreditsCents
				break
			}
		}
	}

	lines, err := s.reportingRepo.ListLedgerLines(ctx, tenantID, accountID, from, endOfDayExclusive(to))
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger lines", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list ledger lines: %w", err)
	}

	report := &domain.GeneralLedgerReport{
		AccountID:           account.AccountID,
		AccountCode:         account.Code,
		AccountName:         account.Name,
		FromDate:            from,
		ToDate:              to,
		OpeningBalanceCents: opening,
		Entries:             make([]domain.GeneralLedgerEntry, 0, len(lines)),
	}

	running := opening
	for _, line := range lines {
		if line.Direction == domain.Debit {
			running += line.AmountCents
		} else {
			running -= line.AmountCents
		}
		report.Entries = append(report.Entries, domain.GeneralLedgerEntry{
			LedgerLine:          line,
			RunningBalanceCents: running,
		})
	}
	report.ClosingBalanceCents = running
	return report, nil
}

// GetProfitLoss aggregates income (credits minus debits) and expense (debits
// minus credits) balances over [from, to]. Zero-balance accounts are omitted
// from the line items and the totals alike.
func (s *reportingService) GetProfitLoss(ctx context.Context, tenantID string, from, to time.Time) (*domain.ProfitLossReport, error) {
	if err := s.requireSetup(ctx, tenantID); err != nil {
		return nil, err
	}

	totals, err := s.reportingRepo.GetAccountActivityTotals(ctx, tenantID, from, endOfDayExclusive(to))
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate account activity")
		return nil, fmt.Errorf("failed to aggregate account activity: %w", err)
	}

	report := &domain.ProfitLossReport{
		FromDate: from,
		ToDate:   to,
		Income:   []domain.ReportAccountAmount{},
		Expenses: []domain.ReportAccountAmount{},
	}
	for _, t := range totals {
		switch t.AccountType {
		case domain.Income:
			amount := t.CreditsCents - t.DebitsCents
			if amount == 0 {
				continue
			}
			report.Income = append(report.Income, domain.ReportAccountAmount{
				AccountID:   t.AccountID,
				AccountCode: t.AccountCode,
				Name:        t.AccountName,
				AmountCents: amount,
			})
			report.TotalIncomeCents += amount
		case domain.Expense:
			amount := t.DebitsCents - t.CreditsCents
			if amount == 0 {
				continue
			}
			report.Expenses = append(report.Expenses, domain.ReportAccountAmount{
				AccountID:   t.AccountID,
				AccountCode: t.AccountCode,
				Name:        t.AccountName,
				AmountCents: amount,
			})
			report.TotalExpensesCents += amount
		}
	}
	report.NetProfitCents = report.TotalIncomeCents - report.TotalExpensesCents
	return report, nil
}

// GetBalanceSheet aggregates asset (debits minus credits), liability and
// equity (credits minus debits) balances cumulatively since inception up to
// asOf. Zero-balance accounts are omitted.
func (s *reportingService) GetBalanceSheet(ctx context.Context, tenantID string, asOf time.Time) (*domain.BalanceSheetReport, error) {
	if err := s.requireSetup(ctx, tenantID); err != nil {
		return nil, err
	}

	totals, err := s.reportingRepo.GetAccountActivityTotals(ctx, tenantID, time.Time{}, endOfDayExclusive(asOf))
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate account activity")
		return nil, fmt.Errorf("failed to aggregate account activity: %w", err)
	}

	report := &domain.BalanceSheetReport{
		AsOfDate:    asOf,
		Assets:      []domain.ReportAccountAmount{},
		Liabilities: []domain.ReportAccountAmount{},
		Equity:      []domain.ReportAccountAmount{},
	}
	for _, t := range totals {
		switch t.AccountType {
		case domain.Asset:
			amount := t.DebitsCents - t.CreditsCents
			if amount == 0 {
				continue
			}
			report.Assets = append(report.Assets, domain.ReportAccountAmount{
				AccountID:   t.AccountID,
				AccountCode: t.AccountCode,
				Name:        t.AccountName,
				AmountCents: amount,
			})
			report.TotalAssetsCents += amount
		case domain.Liability:
			amount := t.CreditsCents - t.DebitsCents
			if amount == 0 {
				continue
			}
			report.Liabilities = append(report.Liabilities, domain.ReportAccountAmount{
				AccountID:   t.AccountID,
				AccountCode: t.AccountCode,
				Name:        t.AccountName,
				AmountCents: amount,
			})
			report.TotalLiabilitiesCents += amount
		case domain.Equity:
			amount := t.CreditsCents - t.DebitsCents
			if amount == 0 {
				continue
			}
			report.Equity = append(report.Equity, domain.ReportAccountAmount{
				AccountID:   t.AccountID,
				AccountCode: t.AccountCode,
				Name:        t.AccountName,
				AmountCents: amount,
			})
			report.TotalEquityCents += amount
		}
	}
	return report, nil
}
