package repositories

import (
	"context"

	"github.com/Corely-AI/corely-ledger/internal/core/domain"
)

// AccountListFilters narrows ListAccounts results.
type AccountListFilters struct {
	AccountType *domain.AccountType
	IsActive    *bool
	Limit       int
	NextToken   *string
}

// AccountReader defines read operations for chart-of-accounts data.
type AccountReader interface {
	// FindAccountByID retrieves a tenant's account by its unique identifier.
	FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.LedgerAccount, error)

	// FindAccountByCode retrieves a tenant's account by its code.
	FindAccountByCode(ctx context.Context, tenantID, code string) (*domain.LedgerAccount, error)

	// FindAccountBySystemKey retrieves the account holding a well-known role.
	FindAccountBySystemKey(ctx context.Context, tenantID string, key domain.SystemAccountKey) (*domain.LedgerAccount, error)

	// FindAccountsByIDs retrieves multiple accounts by ID, keyed by account ID.
	// Accounts belonging to other tenants are absent from the result.
	FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.LedgerAccount, error)

	// ListAccounts retrieves a filtered, token-paginated list of accounts.
	ListAccounts(ctx context.Context, tenantID string, filters AccountListFilters) ([]domain.LedgerAccount, *string, error)
}

// AccountWriter defines write operations for chart-of-accounts data.
type AccountWriter interface {
	// SaveAccount persists a new account. Returns apperrors.ErrConflict when
	// the code is already taken within the tenant.
	SaveAccount(ctx context.Context, account domain.LedgerAccount) error

	// UpdateAccount updates an existing account's mutable details.
	UpdateAccount(ctx context.Context, account domain.LedgerAccount) error
}

// AccountRepository combines all account repository interfaces.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
