package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Corely-AI/corely-ledger/internal/apperrors"
	"github.com/Corely-AI/corely-ledger/internal/core/domain"
	portsrepo "github.com/Corely-AI/corely-ledger/internal/core/ports/repositories"
	portssvc "github.com/Corely-AI/corely-ledger/internal/core/ports/services"
	"github.com/Corely-AI/corely-ledger/internal/dto"
)

// accountService manages the tenant's chart of accounts.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount creates a new ledger account for the tenant.
func (s *accountService) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.LedgerAccount, error) {
	accountType := domain.AccountType(req.AccountType)
	if !accountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}

	// Duplicate-code probe before the save; the repository's unique
	// constraint remains the authoritative check under concurrency.
	existing, err := s.accountRepo.FindAccountByCode(ctx, tenantID, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check account code uniqueness", slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to check account code: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: account code %s already exists", apperrors.ErrConflict, req.Code)
	}

	now := time.Now().UTC()
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	systemKey := domain.SystemAccountKey("")
	if req.SystemAccountKey != nil {
		systemKey = domain.SystemAccountKey(*req.SystemAccountKey)
	}

	account := domain.LedgerAccount{
		AccountID:        uuid.NewString(),
		TenantID:         tenantID,
		Code:             req.Code,
		Name:             req.Name,
		AccountType:      accountType,
		Description:      req.Description,
		SystemAccountKey: systemKey,
		IsActive:         isActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: account code %s already exists", apperrors.ErrConflict, req.Code)
		}
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created successfully", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// UpdateAccount updates name and description of an existing account.
func (s *accountService) UpdateAccount(ctx context.Context, tenantID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.LedgerAccount, error) {
	account, err := s.findTenantAccount(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		account.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		account.Description = *req.Description
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for account update", slog.String("account_id", accountID))
		return account, nil
	}

	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.LogInfo(ctx, "Account updated successfully", slog.String("account_id", accountID))
	return account, nil
}

// ActivateAccount re-enables a deactivated account.
func (s *accountService) ActivateAccount(ctx context.Context, tenantID, accountID, userID string) (*domain.LedgerAccount, error) {
	return s.setActive(ctx, tenantID, accountID, userID, true)
}

// DeactivateAccount soft-disables an account. Posting to it fails afterwards;
// historic postings and report participation are unaffected.
func (s *accountService) DeactivateAccount(ctx context.Context, tenantID, accountID, userID string) (*domain.LedgerAccount, error) {
	return s.setActive(ctx, tenantID, accountID, userID, false)
}

func (s *accountService) setActive(ctx context.Context, tenantID, accountID, userID string, active bool) (*domain.LedgerAccount, error) {
	account, err := s.findTenantAccount(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}

	account.IsActive = active
	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to change account active flag", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.LogInfo(ctx, "Account active flag changed", slog.String("account_id", accountID), slog.Bool("is_active", active))
	return account, nil
}

// GetAccountByID retrieves a specific account by its ID.
func (s *accountService) GetAccountByID(ctx context.Context, tenantID, accountID string) (*domain.LedgerAccount, error) {
	return s.findTenantAccount(ctx, tenantID, accountID)
}

// GetAccountByCode retrieves an account by its tenant-unique code.
func (s *accountService) GetAccountByCode(ctx context.Context, tenantID, code string) (*domain.LedgerAccount, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, tenantID, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by code", slog.String("code", code))
		}
		return nil, err
	}
	return account, nil
}

// GetAccountBySystemKey retrieves the account holding a well-known role.
func (s *accountService) GetAccountBySystemKey(ctx context.Context, tenantID string, key domain.SystemAccountKey) (*domain.LedgerAccount, error) {
	account, err := s.accountRepo.FindAccountBySystemKey(ctx, tenantID, key)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by system key", slog.String("system_key", string(key)))
		}
		return nil, err
	}
	return account, nil
}

// GetAccountsByIDs retrieves multiple accounts keyed by ID.
func (s *accountService) GetAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.LedgerAccount, error) {
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, tenantID, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts by IDs")
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	return accounts, nil
}

// ListAccounts retrieves a filtered, paginated account list.
func (s *accountService) ListAccounts(ctx context.Context, tenantID string, params dto.ListAccountsParams) (*dto.ListAccountsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}

	filters := portsrepo.AccountListFilters{
		IsActive:  params.IsActive,
		Limit:     limit,
		NextToken: params.NextToken,
	}
	if params.AccountType != nil {
		accountType := domain.AccountType(*params.AccountType)
		filters.AccountType = &accountType
	}

	accounts, nextToken, err := s.accountRepo.ListAccounts(ctx, tenantID, filters)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to retrieve accounts: %w", err)
	}

	return &dto.ListAccountsResponse{
		Accounts:  dto.ToAccountResponses(accounts),
		NextToken: nextToken,
	}, nil
}

// findTenantAccount fetches an account and verifies tenant ownership,
// obscuring cross-tenant existence as NotFound.
func (s *accountService) findTenantAccount(ctx context.Context, tenantID, accountID string) (*domain.LedgerAccount, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	if account.TenantID != tenantID {
		s.LogWarn(ctx, "Account belongs to a different tenant", slog.String("account_id", accountID))
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}
