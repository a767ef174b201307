package dto

import (
	"time"

	"github.com/Corely-AI/corely-ledger/internal/core/domain"
	"github.com/Corely-AI/corely-ledger/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateEntryLineRequest is one line of a journal entry creation payload.
type CreateEntryLineRequest struct {
	AccountID   string `json:"accountID" binding:"required"`
	Direction   string `json:"direction" binding:"required,oneof=DEBIT CREDIT"`
	AmountCents int64  `json:"amountCents" binding:"required,gt=0"`
	Currency    string `json:"currency" binding:"required,len=3"`
	LineMemo    string `json:"lineMemo,omitempty" binding:"max=512"`
	Reference   string `json:"reference,omitempty" binding:"max=255"`
	Tags        string `json:"tags,omitempty" binding:"max=255"`
}

// CreateEntryRequest defines the payload for creating a draft journal entry.
type CreateEntryRequest struct {
	PostingDate time.Time                `json:"postingDate" binding:"required"`
	Memo        string                   `json:"memo" binding:"max=1024"`
	Lines       []CreateEntryLineRequest `json:"lines" binding:"required,min=1,dive"`
	SourceType  string                   `json:"sourceType,omitempty" binding:"max=64"`
	SourceID    string                   `json:"sourceID,omitempty" binding:"max=64"`
	SourceRef   string                   `json:"sourceRef,omitempty" binding:"max=255"`
}

// UpdateEntryRequest defines the mutable fields of a draft entry. A nil Lines
// slice leaves the existing lines untouched.
type UpdateEntryRequest struct {
	PostingDate *time.Time               `json:"postingDate,omitempty"`
	Memo        *string                  `json:"memo,omitempty" binding:"omitempty,max=1024"`
	Lines       []CreateEntryLineRequest `json:"lines,omitempty" binding:"omitempty,min=1,dive"`
}

// ReverseEntryRequest defines the payload for reversing a posted entry.
type ReverseEntryRequest struct {
	ReversalDate time.Time `json:"reversalDate" binding:"required"`
	Memo         string    `json:"memo,omitempty" binding:"max=1024"`
}

// ListEntriesParams holds parameters for listing journal entries.
type ListEntriesParams struct {
	Status       *string `form:"status" binding:"omitempty,oneof=DRAFT POSTED REVERSED"`
	SourceType   *string `form:"sourceType"`
	SourceID     *string `form:"sourceID"`
	IncludeLines bool    `form:"includeLines"`
	Limit        int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken    *string `form:"nextToken"`
}

// EntryLineResponse defines the data returned for a journal line.
type EntryLineResponse struct {
	LineID      string          `json:"lineID"`
	AccountID   string          `json:"accountID"`
	Direction   string          `json:"direction"`
	AmountCents int64           `json:"amountCents"`
	Amount      decimal.Decimal `json:"amount"` // Major units, display only
	Currency    string          `json:"currency"`
	LineMemo    string          `json:"lineMemo,omitempty"`
	Reference   string          `json:"reference,omitempty"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID           string              `json:"entryID"`
	EntryNumber       string              `json:"entryNumber,omitempty"`
	Status            string              `json:"status"`
	PostingDate       time.Time           `json:"postingDate"`
	Memo              string              `json:"memo"`
	SourceType        string              `json:"sourceType,omitempty"`
	SourceID          string              `json:"sourceID,omitempty"`
	SourceRef         string              `json:"sourceRef,omitempty"`
	ReversesEntryID   *string             `json:"reversesEntryID,omitempty"`
	ReversedByEntryID *string             `json:"reversedByEntryID,omitempty"`
	PostedBy          string              `json:"postedBy,omitempty"`
	PostedAt          *time.Time          `json:"postedAt,omitempty"`
	Lines             []EntryLineResponse `json:"lines,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
	CreatedBy         string              `json:"createdBy"`
}

// ListEntriesResponse is the paginated entry list payload.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToEntryLineResponse converts a domain.JournalLine to its response DTO.
func ToEntryLineResponse(line *domain.JournalLine) EntryLineResponse {
	return EntryLineResponse{
		LineID:      line.LineID,
		AccountID:   line.AccountID,
		Direction:   string(line.Direction),
		AmountCents: line.AmountCents,
		Amount:      utils.CentsToDecimal(line.AmountCents),
		Currency:    line.Currency,
		LineMemo:    line.LineMemo,
		Reference:   line.Reference,
	}
}

// ToEntryResponse converts a domain.JournalEntry to its response DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:           e.EntryID,
		EntryNumber:       e.EntryNumber,
		Status:            string(e.Status),
		PostingDate:       e.PostingDate,
		Memo:              e.Memo,
		SourceType:        e.SourceType,
		SourceID:          e.SourceID,
		SourceRef:         e.SourceRef,
		ReversesEntryID:   e.ReversesEntryID,
		ReversedByEntryID: e.ReversedByEntryID,
		PostedBy:          e.PostedBy,
		PostedAt:          e.PostedAt,
		CreatedAt:         e.CreatedAt,
		CreatedBy:         e.CreatedBy,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]EntryLineResponse, len(e.Lines))
		for i := range e.Lines {
			resp.Lines[i] = ToEntryLineResponse(&e.Lines[i])
		}
	}
	return resp
}

// ToEntryResponses converts a slice of entries to response DTOs.
func ToEntryResponses(entries []domain.JournalEntry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}
