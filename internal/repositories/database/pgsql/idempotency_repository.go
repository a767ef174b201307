package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Corely-AI/corely-ledger/internal/apperrors"
	portsrepo "github.com/Corely-AI/corely-ledger/internal/core/ports/repositories"
)

type PgxIdempotencyRepository struct {
	BaseRepository
}

// newPgxIdempotencyRepository creates a new store for idempotency records.
func newPgxIdempotencyRepository(pool *pgxpool.Pool) portsrepo.IdempotencyStore {
	return &PgxIdempotencyRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.IdempotencyStore = (*PgxIdempotencyRepository)(nil)

// FindRecord returns the stored record for a key.
func (r *PgxIdempotencyRepository) FindRecord(ctx context.Context, tenantID, actionKey, key string) (*portsrepo.IdempotencyRecord, error) {
	query := `
		SELECT tenant_id, action_key, idempotency_key, result
		FROM idempotency_records
		WHERE tenant_id = $1 AND action_key = $2 AND idempotency_key = $3;
	`
	var record portsrepo.IdempotencyRecord
	err := r.db(ctx).QueryRow(ctx, query, tenantID, actionKey, key).Scan(
		&record.TenantID,
		&record.ActionKey,
		&record.Key,
		&record.Result,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: idempotency record", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find idempotency record: %w", err)
	}
	return &record, nil
}

// SaveRecord stores the outcome of a completed operation.
func (r *PgxIdempotencyRepository) SaveRecord(ctx context.Context, record portsrepo.IdempotencyRecord) error {
	query := `
		INSERT INTO idempotency_records (tenant_id, action_key, idempotency_key, result, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		record.TenantID,
		record.ActionKey,
		record.Key,
		[]byte(record.Result),
		time.Now().UTC(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: idempotency key already recorded", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to save idempotency record: %w", err)
	}
	return nil
}
