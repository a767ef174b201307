package services

import (
	"context"

	"github.com/Corely-AI/corely-ledger/internal/core/domain"
	"github.com/Corely-AI/corely-ledger/internal/dto"
)

// JournalReaderSvc defines read operations for journal entries.
type JournalReaderSvc interface {
	// GetEntryByID retrieves a specific entry with its lines.
	GetEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a filtered, paginated entry list.
	ListEntries(ctx context.Context, tenantID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// JournalWriterSvc defines the entry lifecycle operations.
type JournalWriterSvc interface {
	// CreateEntry creates a draft entry. Drafts may be unbalanced but every
	// line must reference an active account of the tenant.
	CreateEntry(ctx context.Context, tenantID string, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error)

	// UpdateEntry replaces header fields and lines of a draft. Fails with
	// apperrors.ErrValidation once the entry is posted.
	UpdateEntry(ctx context.Context, tenantID, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.JournalEntry, error)

	// PostEntry transitions a balanced draft to Posted, allocating the entry
	// number atomically with the status write. Fails with
	// apperrors.ErrValidation when the entry is unbalanced or its posting
	// date falls into a closed (or missing) period while period locking is
	// enabled.
	PostEntry(ctx context.Context, tenantID, entryID, postedByUserID string) (*domain.JournalEntry, error)

	// ReverseEntry creates and immediately posts a reversal entry with every
	// line's direction flipped, linking both entries bidirectionally. The two
	// writes are atomic.
	ReverseEntry(ctx context.Context, tenantID, entryID string, req dto.ReverseEntryRequest, userID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal entry service interfaces.
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}

// JournalPostingPort is the narrow contract other modules (purchasing's
// vendor-bill and COGS posting) depend on. It deliberately exposes only
// entry creation and posting so callers cannot reach the rest of the engine.
type JournalPostingPort interface {
	CreateJournalEntry(ctx context.Context, tenantID string, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error)
	PostJournalEntry(ctx context.Context, tenantID, entryID, postedByUserID string) (*domain.JournalEntry, error)
}
