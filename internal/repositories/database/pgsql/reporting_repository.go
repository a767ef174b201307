package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Corely-AI/corely-ledger/internal/core/domain"
	portsrepo "github.com/Corely-AI/corely-ledger/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface.
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetAccountActivityTotals returns per-account debit and credit sums over
// posted lines with posting dates in [from, before). Lines of reversed
// originals stay in the sums; their effect is cancelled by the reversal
// entry's lines.
func (r *reportingRepository) GetAccountActivityTotals(ctx context.Context, tenantID string, from, before time.Time) ([]domain.AccountActivityTotal, error) {
	query := `
		SELECT
			a.account_id,
			a.code,
			a.name,
			a.account_type,
			COALESCE(SUM(CASE WHEN l.direction = 'DEBIT' THEN l.amount_cents ELSE 0 END), 0) AS total_debits,
			COALESCE(SUM(CASE WHEN l.direction = 'CREDIT' THEN l.amount_cents ELSE 0 END), 0) AS total_credits
		FROM journal_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		JOIN accounts a ON l.account_id = a.account_id
		WHERE e.tenant_id = $1
			AND e.status IN ('POSTED', 'REVERSED')
			AND e.posting_date < $2
			AND ($3::timestamptz IS NULL OR e.posting_date >= $3)
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code;
	`
	var fromArg *time.Time
	if !from.IsZero() {
		fromArg = &from
	}

	rows, err := r.db(ctx).Query(ctx, query, tenantID, before, fromArg)
	if err != nil {
		return nil, fmt.Errorf("error querying account activity totals: %w", err)
	}
	defer rows.Close()

	result := []domain.AccountActivityTotal{}
	for rows.Next() {
		var t domain.AccountActivityTotal
		var accountType string
		if err := rows.Scan(&t.AccountID, &t.AccountCode, &t.AccountName, &accountType, &t.DebitsCents, &t.CreditsCents); err != nil {
			return nil, fmt.Errorf("error scanning account activity row: %w", err)
		}
		t.AccountType = domain.AccountType(accountType)
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account activity rows: %w", err)
	}
	return result, nil
}

// ListLedgerLines returns posted lines of one account with posting dates in
// [from, before), in posting date then entry number order.
func (r *reportingRepository) ListLedgerLines(ctx context.Context, tenantID, accountID string, from, before time.Time) ([]domain.LedgerLine, error) {
	query := `
		SELECT
			l.line_id,
			l.entry_id,
			e.entry_number,
			e.posting_date,
			e.memo,
			l.direction,
			l.amount_cents,
			l.currency
		FROM journal_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE e.tenant_id = $1
			AND l.account_id = $2
			AND e.status IN ('POSTED', 'REVERSED')
			AND e.posting_date >= $3
			AND e.posting_date < $4
		ORDER BY e.posting_date ASC, e.entry_number ASC;
	`
	rows, err := r.db(ctx).Query(ctx, query, tenantID, accountID, from, before)
	if err != nil {
		return nil, fmt.Errorf("error querying ledger lines: %w", err)
	}
	defer rows.Close()

	result := []domain.LedgerLine{}
	for rows.Next() {
		var line domain.LedgerLine
		var direction string
		if err := rows.Scan(&line.LineID, &line.EntryID, &line.EntryNumber, &line.PostingDate, &line.Memo, &direction, &line.AmountCents, &line.Currency); err != nil {
			return nil, fmt.Errorf("error scanning ledger line row: %w", err)
		}
		line.Direction = domain.Direction(direction)
		result = append(result, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger line rows: %w", err)
	}
	return result, nil
}
