package repositories

import (
	"context"
	"encoding/json"
)

// IdempotencyRecord is the stored outcome of a previously executed operation.
type IdempotencyRecord struct {
	TenantID  string
	ActionKey string
	Key       string
	Result    json.RawMessage
}

// IdempotencyStore is a key-value store of prior operation results, keyed by
// (tenantID, actionKey, idempotencyKey). Callers check it before mutating and
// return the stored result unchanged on replay, which makes at-least-once
// retries of posting operations safe.
type IdempotencyStore interface {
	// FindRecord returns the stored record, or apperrors.ErrNotFound.
	FindRecord(ctx context.Context, tenantID, actionKey, key string) (*IdempotencyRecord, error)

	// SaveRecord stores the outcome of a completed operation.
	SaveRecord(ctx context.Context, record IdempotencyRecord) error
}
