package domain

// AccountType defines the fundamental accounting type of a ledger account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the five known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// SystemAccountKey names a well-known role an account plays for automated
// postings (e.g. purchasing resolves its COGS account through this key).
type SystemAccountKey string

const (
	SystemAccountCOGS             SystemAccountKey = "COGS"
	SystemAccountInventory        SystemAccountKey = "INVENTORY"
	SystemAccountAccountsPayable  SystemAccountKey = "ACCOUNTS_PAYABLE"
	SystemAccountRetainedEarnings SystemAccountKey = "RETAINED_EARNINGS"
)

// LedgerAccount represents one row of a tenant's chart of accounts.
// Accounts are never physically deleted; they are soft-disabled via IsActive.
type LedgerAccount struct {
	AccountID        string           `json:"accountID"` // Primary key (UUID)
	TenantID         string           `json:"tenantID"`
	Code             string           `json:"code"` // Unique per tenant
	Name             string           `json:"name"`
	AccountType      AccountType      `json:"accountType"`
	Description      string           `json:"description"`
	SystemAccountKey SystemAccountKey `json:"systemAccountKey,omitempty"` // Empty unless the account has a well-known role
	IsActive         bool             `json:"isActive"`
	AuditFields
}
