package services

import (
	"context"

	"github.com/Corely-AI/corely-ledger/internal/core/domain"
	"github.com/Corely-AI/corely-ledger/internal/dto"
)

// AccountReaderSvc defines read operations for the chart of accounts.
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its ID.
	GetAccountByID(ctx context.Context, tenantID, accountID string) (*domain.LedgerAccount, error)

	// GetAccountByCode retrieves an account by its tenant-unique code.
	GetAccountByCode(ctx context.Context, tenantID, code string) (*domain.LedgerAccount, error)

	// GetAccountBySystemKey retrieves the account holding a well-known role.
	GetAccountBySystemKey(ctx context.Context, tenantID string, key domain.SystemAccountKey) (*domain.LedgerAccount, error)

	// GetAccountsByIDs retrieves multiple accounts keyed by ID.
	GetAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.LedgerAccount, error)

	// ListAccounts retrieves a filtered, paginated account list.
	ListAccounts(ctx context.Context, tenantID string, params dto.ListAccountsParams) (*dto.ListAccountsResponse, error)
}

// AccountWriterSvc defines write operations for the chart of accounts.
type AccountWriterSvc interface {
	// CreateAccount creates a new ledger account. Fails with
	// apperrors.ErrConflict when the code already exists for the tenant.
	CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.LedgerAccount, error)

	// UpdateAccount updates name and description of an account.
	UpdateAccount(ctx context.Context, tenantID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.LedgerAccount, error)

	// ActivateAccount re-enables a deactivated account.
	ActivateAccount(ctx context.Context, tenantID, accountID, userID string) (*domain.LedgerAccount, error)

	// DeactivateAccount soft-disables an account. There is no deletion.
	DeactivateAccount(ctx context.Context, tenantID, accountID, userID string) (*domain.LedgerAccount, error)
}

// AccountSvcFacade combines all account service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
