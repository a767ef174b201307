package models

import "time"

// IdempotencyRecord is the storage representation of a stored operation
// outcome.
type IdempotencyRecord struct {
	TenantID  string    `db:"tenant_id"`
	ActionKey string    `db:"action_key"`
	Key       string    `db:"idempotency_key"`
	Result    []byte    `db:"result"`
	CreatedAt time.Time `db:"created_at"`
}
