package repositories

import (
	"context"

	"github.com/Corely-AI/corely-ledger/internal/core/domain"
)

// EntryListFilters narrows ListEntries results.
type EntryListFilters struct {
	Status       *domain.EntryStatus
	SourceType   *string
	SourceID     *string
	IncludeLines bool
	Limit        int
	NextToken    *string
}

// JournalEntryReader defines read operations for journal entry data.
type JournalEntryReader interface {
	// FindEntryByID retrieves an entry with its lines.
	FindEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error)

	// ExistsByEntryNumber reports whether an entry number is already taken
	// within the tenant. Used by the collision-probing number allocator.
	ExistsByEntryNumber(ctx context.Context, tenantID, entryNumber string) (bool, error)

	// ExistsBySourceRef reports whether any entry carries the given source
	// reference. Used to probe purchase order numbers for collisions.
	ExistsBySourceRef(ctx context.Context, tenantID, sourceRef string) (bool, error)

	// ListEntries retrieves a filtered, token-paginated list of entries.
	ListEntries(ctx context.Context, tenantID string, filters EntryListFilters) ([]domain.JournalEntry, *string, error)
}

// JournalEntryWriter defines write operations for journal entry data.
type JournalEntryWriter interface {
	// SaveEntry persists a new entry and its lines.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error

	// UpdateEntry replaces a draft entry's header and lines.
	UpdateEntry(ctx context.Context, entry domain.JournalEntry) error

	// UpdateEntryPosting persists the posting-time fields of an entry
	// (status, entry number, poster, posting timestamp).
	UpdateEntryPosting(ctx context.Context, entry domain.JournalEntry) error

	// UpdateEntryReversalLinks persists status and reversal linkage of an
	// entry without touching its lines.
	UpdateEntryReversalLinks(ctx context.Context, entry domain.JournalEntry) error
}

// JournalEntryRepository combines entry read/write operations with the
// transaction contract the posting and reversal flows depend on.
type JournalEntryRepository interface {
	JournalEntryReader
	JournalEntryWriter
	TxManager
}
