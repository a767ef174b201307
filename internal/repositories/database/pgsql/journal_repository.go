package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Corely-AI/corely-ledger/internal/apperrors"
	"github.com/Corely-AI/corely-ledger/internal/core/domain"
	portsrepo "github.com/Corely-AI/corely-ledger/internal/core/ports/repositories"
	"github.com/Corely-AI/corely-ledger/internal/models"
	"github.com/Corely-AI/corely-ledger/internal/utils/pagination"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalEntryRepository {
	return &PgxJournalRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalEntryRepository = (*PgxJournalRepository)(nil)

func toModelLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:      d.LineID,
		EntryID:     d.EntryID,
		AccountID:   d.AccountID,
		Direction:   string(d.Direction),
		AmountCents: d.AmountCents,
		Currency:    d.Currency,
		LineMemo:    d.LineMemo,
		Reference:   d.Reference,
		Tags:        d.Tags,
	}
}

func toDomainLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		AccountID:   m.AccountID,
		Direction:   domain.Direction(m.Direction),
		AmountCents: m.AmountCents,
		Currency:    m.Currency,
		LineMemo:    m.LineMemo,
		Reference:   m.Reference,
		Tags:        m.Tags,
	}
}

const entryColumns = `entry_id, tenant_id, entry_number, status, posting_date, memo, source_type, source_id, source_ref, reverses_entry_id, reversed_by_entry_id, posted_by, posted_at, created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var m models.JournalEntry
	var entryNumber, sourceType, sourceID, sourceRef, postedBy sql.NullString
	err := row.Scan(
		&m.EntryID,
		&m.TenantID,
		&entryNumber,
		&m.Status,
		&m.PostingDate,
		&m.Memo,
		&sourceType,
		&sourceID,
		&sourceRef,
		&m.ReversesEntryID,
		&m.ReversedByEntryID,
		&postedBy,
		&m.PostedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	return &domain.JournalEntry{
		EntryID:           m.EntryID,
		TenantID:          m.TenantID,
		EntryNumber:       entryNumber.String,
		Status:            domain.EntryStatus(m.Status),
		PostingDate:       m.PostingDate,
		Memo:              m.Memo,
		SourceType:        sourceType.String,
		SourceID:          sourceID.String,
		SourceRef:         sourceRef.String,
		ReversesEntryID:   m.ReversesEntryID,
		ReversedByEntryID: m.ReversedByEntryID,
		PostedBy:          postedBy.String,
		PostedAt:          m.PostedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}, nil
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// SaveEntry persists a new entry and its lines.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		entry.EntryID,
		entry.TenantID,
		nullable(entry.EntryNumber),
		string(entry.Status),
		entry.PostingDate,
		entry.Memo,
		nullable(entry.SourceType),
		nullable(entry.SourceID),
		nullable(entry.SourceRef),
		entry.ReversesEntryID,
		entry.ReversedByEntryID,
		nullable(entry.PostedBy),
		entry.PostedAt,
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: entry %s already exists", apperrors.ErrConflict, entry.EntryID)
		}
		return fmt.Errorf("failed to save entry %s: %w", entry.EntryID, err)
	}

	if err := r.insertLines(ctx, entry.Lines); err != nil {
		return err
	}
	return nil
}

func (r *PgxJournalRepository) insertLines(ctx context.Context, lines []domain.JournalLine) error {
	query := `
		INSERT INTO journal_lines (line_id, entry_id, account_id, direction, amount_cents, currency, line_memo, reference, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, line := range lines {
		m := toModelLine(line)
		_, err := r.db(ctx).Exec(ctx, query,
			m.LineID,
			m.EntryID,
			m.AccountID,
			m.Direction,
			m.AmountCents,
			m.Currency,
			nullable(m.LineMemo),
			nullable(m.Reference),
			nullable(m.Tags),
		)
		if err != nil {
			return fmt.Errorf("failed to save line %s of entry %s: %w", m.LineID, m.EntryID, err)
		}
	}
	return nil
}

// UpdateEntry replaces a draft entry's header and lines. Lines are replaced
// wholesale; partial line edits are not expressible at this layer.
func (r *PgxJournalRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry) error {
	return r.WithTransaction(ctx, func(txCtx context.Context) error {
		query := `
			UPDATE journal_entries
			SET posting_date = $1, memo = $2, last_updated_at = $3, last_updated_by = $4
			WHERE tenant_id = $5 AND entry_id = $6 AND status = 'DRAFT';
		`
		tag, err := r.db(txCtx).Exec(txCtx, query,
			entry.PostingDate,
			entry.Memo,
			entry.LastUpdatedAt,
			entry.LastUpdatedBy,
			entry.TenantID,
			entry.EntryID,
		)
		if err != nil {
			return fmt.Errorf("failed to update entry %s: %w", entry.EntryID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: draft entry %s", apperrors.ErrNotFound, entry.EntryID)
		}

		if _, err := r.db(txCtx).Exec(txCtx, `DELETE FROM journal_lines WHERE entry_id = $1;`, entry.EntryID); err != nil {
			return fmt.Errorf("failed to clear lines of entry %s: %w", entry.EntryID, err)
		}
		return r.insertLines(txCtx, entry.Lines)
	})
}

// UpdateEntryPosting persists the posting-time fields of an entry.
func (r *PgxJournalRepository) UpdateEntryPosting(ctx context.Context, entry domain.JournalEntry) error {
	query := `
		UPDATE journal_entries
		SET status = $1, entry_number = $2, posted_by = $3, posted_at = $4, last_updated_at = $5, last_updated_by = $6
		WHERE tenant_id = $7 AND entry_id = $8;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		string(entry.Status),
		entry.EntryNumber,
		entry.PostedBy,
		entry.PostedAt,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
		entry.TenantID,
		entry.EntryID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: entry number %s already exists", apperrors.ErrConflict, entry.EntryNumber)
		}
		return fmt.Errorf("failed to persist posting of entry %s: %w", entry.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: entry %s", apperrors.ErrNotFound, entry.EntryID)
	}
	return nil
}

// UpdateEntryReversalLinks persists status and reversal linkage of an entry
// without touching its lines.
func (r *PgxJournalRepository) UpdateEntryReversalLinks(ctx context.Context, entry domain.JournalEntry) error {
	query := `
		UPDATE journal_entries
		SET status = $1, reverses_entry_id = $2, reversed_by_entry_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $6 AND entry_id = $7;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		string(entry.Status),
		entry.ReversesEntryID,
		entry.ReversedByEntryID,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
		entry.TenantID,
		entry.EntryID,
	)
	if err != nil {
		return fmt.Errorf("failed to persist reversal links of entry %s: %w", entry.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: entry %s", apperrors.ErrNotFound, entry.EntryID)
	}
	return nil
}

// FindEntryByID retrieves an entry with its lines.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE tenant_id = $1 AND entry_id = $2;`
	entry, err := scanEntry(r.db(ctx).QueryRow(ctx, query, tenantID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: entry %s", apperrors.ErrNotFound, entryID)
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}

	lines, err := r.findLinesByEntryIDs(ctx, []string{entryID})
	if err != nil {
		return nil, err
	}
	entry.Lines = lines[entryID]
	return entry, nil
}

func (r *PgxJournalRepository) findLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	if len(entryIDs) == 0 {
		return map[string][]domain.JournalLine{}, nil
	}

	query := `
		SELECT line_id, entry_id, account_id, direction, amount_cents, currency, line_memo, reference, tags
		FROM journal_lines
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, line_id;
	`
	rows, err := r.db(ctx).Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]domain.JournalLine, len(entryIDs))
	for rows.Next() {
		var m models.JournalLine
		var lineMemo, reference, tags sql.NullString
		if err := rows.Scan(&m.LineID, &m.EntryID, &m.AccountID, &m.Direction, &m.AmountCents, &m.Currency, &lineMemo, &reference, &tags); err != nil {
			return nil, fmt.Errorf("failed to scan line row: %w", err)
		}
		m.LineMemo = lineMemo.String
		m.Reference = reference.String
		m.Tags = tags.String
		result[m.EntryID] = append(result[m.EntryID], toDomainLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line rows: %w", err)
	}
	return result, nil
}

// ExistsByEntryNumber reports whether an entry number is already taken.
func (r *PgxJournalRepository) ExistsByEntryNumber(ctx context.Context, tenantID, entryNumber string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM journal_entries WHERE tenant_id = $1 AND entry_number = $2);`
	if err := r.db(ctx).QueryRow(ctx, query, tenantID, entryNumber).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check entry number %s: %w", entryNumber, err)
	}
	return exists, nil
}

// ExistsBySourceRef reports whether any entry carries the given source
// reference.
func (r *PgxJournalRepository) ExistsBySourceRef(ctx context.Context, tenantID, sourceRef string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM journal_entries WHERE tenant_id = $1 AND source_ref = $2);`
	if err := r.db(ctx).QueryRow(ctx, query, tenantID, sourceRef).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check source ref %s: %w", sourceRef, err)
	}
	return exists, nil
}

// ListEntries retrieves a filtered, token-paginated list of entries, newest
// posting date first. The token carries the last seen posting date and entry
// ID for stable keyset pagination.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, tenantID string, filters portsrepo.EntryListFilters) ([]domain.JournalEntry, *string, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE tenant_id = $1`
	args := []any{tenantID}
	argPos := 2

	if filters.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, string(*filters.Status))
		argPos++
	}
	if filters.SourceType != nil {
		query += fmt.Sprintf(" AND source_type = $%d", argPos)
		args = append(args, *filters.SourceType)
		argPos++
	}
	if filters.SourceID != nil {
		query += fmt.Sprintf(" AND source_id = $%d", argPos)
		args = append(args, *filters.SourceID)
		argPos++
	}
	if filters.NextToken != nil && *filters.NextToken != "" {
		lastDate, lastID, err := pagination.DecodeToken(*filters.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += fmt.Sprintf(" AND (posting_date, entry_id) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, lastDate, lastID)
		argPos += 2
	}

	query += fmt.Sprintf(" ORDER BY posting_date DESC, entry_id DESC LIMIT $%d;", argPos)
	args = append(args, filters.Limit+1)

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.JournalEntry, 0, filters.Limit)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating entry rows: %w", err)
	}

	var nextToken *string
	if len(entries) > filters.Limit {
		entries = entries[:filters.Limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeToken(last.PostingDate, last.EntryID)
		nextToken = &token
	}

	if filters.IncludeLines && len(entries) > 0 {
		ids := make([]string, len(entries))
		for i := range entries {
			ids[i] = entries[i].EntryID
		}
		linesByEntry, err := r.findLinesByEntryIDs(ctx, ids)
		if err != nil {
			return nil, nil, err
		}
		for i := range entries {
			entries[i].Lines = linesByEntry[entries[i].EntryID]
		}
	}
	return entries, nextToken, nil
}
