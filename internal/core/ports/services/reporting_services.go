package services

import (
	"context"
	"time"

	"github.com/Corely-AI/corely-ledger/internal/core/domain"
)

// ReportingSvcFacade defines the read-only financial report aggregations.
// Every operation fails with apperrors.ErrNotFound when accounting is not
// set up for the tenant; aggregation over an empty ledger yields zero totals,
// never an error.
type ReportingSvcFacade interface {
	// GetTrialBalance sums debits and credits per account over a date range.
	GetTrialBalance(ctx context.Context, tenantID string, from, to time.Time) (*domain.TrialBalanceReport, error)

	// GetGeneralLedger lists one account's movements over a range with
	// opening, running and closing balances.
	GetGeneralLedger(ctx context.Context, tenantID, accountID string, from, to time.Time) (*domain.GeneralLedgerReport, error)

	// GetProfitLoss aggregates income and expense balances over a range.
	GetProfitLoss(ctx context.Context, tenantID string, from, to time.Time) (*domain.ProfitLossReport, error)

	// GetBalanceSheet aggregates asset, liability and equity balances
	// cumulatively since inception up to asOf.
	GetBalanceSheet(ctx context.Context, tenantID string, asOf time.Time) (*domain.BalanceSheetReport, error)
}
