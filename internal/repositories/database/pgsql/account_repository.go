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

const pgUniqueViolation = "23505"

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for chart-of-accounts data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// Helper to convert domain.LedgerAccount to models.Account for DB storage
func toModelAccount(d domain.LedgerAccount) models.Account {
	return models.Account{
		AccountID:        d.AccountID,
		TenantID:         d.TenantID,
		Code:             d.Code,
		Name:             d.Name,
		AccountType:      string(d.AccountType),
		Description:      d.Description,
		SystemAccountKey: string(d.SystemAccountKey),
		IsActive:         d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Account from DB to domain.LedgerAccount
func toDomainAccount(m models.Account) domain.LedgerAccount {
	return domain.LedgerAccount{
		AccountID:        m.AccountID,
		TenantID:         m.TenantID,
		Code:             m.Code,
		Name:             m.Name,
		AccountType:      domain.AccountType(m.AccountType),
		Description:      m.Description,
		SystemAccountKey: domain.SystemAccountKey(m.SystemAccountKey),
		IsActive:         m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const accountColumns = `account_id, tenant_id, code, name, account_type, description, system_account_key, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (*domain.LedgerAccount, error) {
	var m models.Account
	var systemKey sql.NullString
	err := row.Scan(
		&m.AccountID,
		&m.TenantID,
		&m.Code,
		&m.Name,
		&m.AccountType,
		&m.Description,
		&systemKey,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	m.SystemAccountKey = systemKey.String
	acc := toDomainAccount(m)
	return &acc, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.LedgerAccount) error {
	m := toModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	var systemKey sql.NullString
	if m.SystemAccountKey != "" {
		systemKey = sql.NullString{String: m.SystemAccountKey, Valid: true}
	}

	_, err := r.db(ctx).Exec(ctx, query,
		m.AccountID,
		m.TenantID,
		m.Code,
		m.Name,
		m.AccountType,
		m.Description,
		systemKey,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: account code %s already exists", apperrors.ErrConflict, m.Code)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// UpdateAccount updates an existing account's mutable details.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.LedgerAccount) error {
	query := `
		UPDATE accounts
		SET name = $1, description = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $6 AND account_id = $7;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		account.Name,
		account.Description,
		account.IsActive,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
		account.TenantID,
		account.AccountID,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", account.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, account.AccountID)
	}
	return nil
}

// FindAccountByID retrieves a tenant's account by its unique identifier.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.LedgerAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE tenant_id = $1 AND account_id = $2;`
	account, err := scanAccount(r.db(ctx).QueryRow(ctx, query, tenantID, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return account, nil
}

// FindAccountByCode retrieves a tenant's account by its code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, tenantID, code string) (*domain.LedgerAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE tenant_id = $1 AND code = $2;`
	account, err := scanAccount(r.db(ctx).QueryRow(ctx, query, tenantID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account code %s", apperrors.ErrNotFound, code)
		}
		return nil, fmt.Errorf("failed to find account by code %s: %w", code, err)
	}
	return account, nil
}

// FindAccountBySystemKey retrieves the account holding a well-known role.
func (r *PgxAccountRepository) FindAccountBySystemKey(ctx context.Context, tenantID string, key domain.SystemAccountKey) (*domain.LedgerAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE tenant_id = $1 AND system_account_key = $2;`
	account, err := scanAccount(r.db(ctx).QueryRow(ctx, query, tenantID, string(key)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no account holds system key %s", apperrors.ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to find account by system key %s: %w", key, err)
	}
	return account, nil
}

// FindAccountsByIDs retrieves multiple accounts by ID, keyed by account ID.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.LedgerAccount, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.LedgerAccount{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE tenant_id = $1 AND account_id = ANY($2);`
	rows, err := r.db(ctx).Query(ctx, query, tenantID, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.LedgerAccount, len(accountIDs))
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		result[account.AccountID] = *account
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return result, nil
}

// ListAccounts retrieves a filtered, code-ordered page of accounts. The
// pagination token carries the last seen code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, tenantID string, filters portsrepo.AccountListFilters) ([]domain.LedgerAccount, *string, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE tenant_id = $1`
	args := []any{tenantID}
	argPos := 2

	if filters.AccountType != nil {
		query += fmt.Sprintf(" AND account_type = $%d", argPos)
		args = append(args, string(*filters.AccountType))
		argPos++
	}
	if filters.IsActive != nil {
		query += fmt.Sprintf(" AND is_active = $%d", argPos)
		args = append(args, *filters.IsActive)
		argPos++
	}
	if filters.NextToken != nil && *filters.NextToken != "" {
		fields, err := pagination.DecodeMultiFieldToken(*filters.NextToken)
		if err != nil || len(fields) != 1 {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += fmt.Sprintf(" AND code > $%d", argPos)
		args = append(args, fields[0])
		argPos++
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(" ORDER BY code ASC LIMIT $%d;", argPos)
	args = append(args, filters.Limit+1)

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.LedgerAccount, 0, filters.Limit)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating account rows: %w", err)
	}

	var nextToken *string
	if len(accounts) > filters.Limit {
		accounts = accounts[:filters.Limit]
		token := pagination.EncodeMultiFieldToken(accounts[len(accounts)-1].Code)
		nextToken = &token
	}
	return accounts, nextToken, nil
}
