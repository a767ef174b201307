package repositories

import (
	"context"
	"time"

	"github.com/Corely-AI/corely-ledger/internal/core/domain"
)

// ReportingRepository exposes pre-aggregated activity over posted lines so
// the report aggregation math does not re-scan raw storage. Only lines whose
// entry status is POSTED or REVERSED participate: a reversed original's lines
// stay in the sums, its economic effect is cancelled by the reversal entry's
// offsetting lines, never by exclusion.
// Both queries take a half-open window [from, before): posting dates are full
// timestamps, so callers with day-granular report ranges pass the day after
// their inclusive end date as before, and "strictly before a date" is simply
// before = that date. Inclusive bounds at timestamp granularity would drop
// intra-day activity at the window edges.
type ReportingRepository interface {
	// GetAccountActivityTotals returns per-account debit and credit sums over
	// posted lines with posting dates in [from, before). A zero from means
	// "since inception". Accounts with no activity in the window are absent.
	GetAccountActivityTotals(ctx context.Context, tenantID string, from, before time.Time) ([]domain.AccountActivityTotal, error)

	// ListLedgerLines returns posted lines of one account with posting dates
	// in [from, before), in posting_date then entry_number order. That order
	// is the report's ordering contract.
	ListLedgerLines(ctx context.Context, tenantID, accountID string, from, before time.Time) ([]domain.LedgerLine, error)
}
