package models

// Account is the storage representation of a ledger account.
type Account struct {
	AccountID        string `db:"account_id"`
	TenantID         string `db:"tenant_id"`
	Code             string `db:"code"`
	Name             string `db:"name"`
	AccountType      string `db:"account_type"`
	Description      string `db:"description"`
	SystemAccountKey string `db:"system_account_key"` // Nullable
	IsActive         bool   `db:"is_active"`
	AuditFields
}
