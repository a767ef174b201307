package dto

import (
	"time"

	"github.com/Corely-AI/corely-ledger/internal/core/domain"
)

// CreateAccountRequest defines the payload for creating a ledger account.
type CreateAccountRequest struct {
	Code             string  `json:"code" binding:"required,max=32"`
	Name             string  `json:"name" binding:"required,max=255"`
	AccountType      string  `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	Description      string  `json:"description" binding:"max=1024"`
	SystemAccountKey *string `json:"systemAccountKey,omitempty"`
	IsActive         *bool   `json:"isActive,omitempty"` // Defaults to true
}

// UpdateAccountRequest defines the mutable fields of an account.
type UpdateAccountRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=1024"`
}

// ListAccountsParams holds parameters for listing accounts.
type ListAccountsParams struct {
	AccountType *string `form:"accountType" binding:"omitempty,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	IsActive    *bool   `form:"isActive"`
	Limit       int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken   *string `form:"nextToken"`
}

// AccountResponse defines the data returned for a ledger account.
type AccountResponse struct {
	AccountID        string    `json:"accountID"`
	Code             string    `json:"code"`
	Name             string    `json:"name"`
	AccountType      string    `json:"accountType"`
	Description      string    `json:"description,omitempty"`
	SystemAccountKey string    `json:"systemAccountKey,omitempty"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
	LastUpdatedAt    time.Time `json:"lastUpdatedAt"`
}

// ListAccountsResponse is the paginated account list payload.
type ListAccountsResponse struct {
	Accounts  []AccountResponse `json:"accounts"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToAccountResponse converts a domain.LedgerAccount to its response DTO.
func ToAccountResponse(a *domain.LedgerAccount) AccountResponse {
	return AccountResponse{
		AccountID:        a.AccountID,
		Code:             a.Code,
		Name:             a.Name,
		AccountType:      string(a.AccountType),
		Description:      a.Description,
		SystemAccountKey: string(a.SystemAccountKey),
		IsActive:         a.IsActive,
		CreatedAt:        a.CreatedAt,
		LastUpdatedAt:    a.LastUpdatedAt,
	}
}

// ToAccountResponses converts a slice of accounts to response DTOs.
func ToAccountResponses(accounts []domain.LedgerAccount) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
