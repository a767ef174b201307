package domain

import (
	"fmt"
	"time"

	"github.com/Corely-AI/corely-ledger/internal/apperrors"
)

// EntryStatus indicates the lifecycle state of a journal entry.
type EntryStatus string

const (
	Draft    EntryStatus = "DRAFT"
	Posted   EntryStatus = "POSTED"
	Reversed EntryStatus = "REVERSED"
)

// Direction indicates whether a journal line is a Debit or a Credit.
type Direction string

const (
	Debit  Direction = "DEBIT"
	Credit Direction = "CREDIT"
)

// Opposite returns the flipped side of d.
func (d Direction) Opposite() Direction {
	if d == Debit {
		return Credit
	}
	return Debit
}

// JournalLine represents a single line item within a journal entry, affecting
// one ledger account. Amounts are positive integers in minor currency units.
type JournalLine struct {
	LineID    string    `json:"lineID"` // Primary key (UUID)
	EntryID   string    `json:"entryID"`
	AccountID string    `json:"accountID"`
	Direction Direction `json:"direction"`
	// AmountCents is the line amount in minor units. The engine never applies
	// rounding; callers must pre-round before building lines.
	AmountCents int64  `json:"amountCents"`
	Currency    string `json:"currency"`
	LineMemo    string `json:"lineMemo,omitempty"`
	Reference   string `json:"reference,omitempty"`
	Tags        string `json:"tags,omitempty"`
}

// JournalEntry represents a single financial event composed of debit and
// credit lines. Entries are created as Draft, become immutable once Posted,
// and may be reversed exactly once by a linked, auto-posted reversal entry.
type JournalEntry struct {
	EntryID     string      `json:"entryID"` // Primary key (UUID)
	TenantID    string      `json:"tenantID"`
	EntryNumber string      `json:"entryNumber,omitempty"` // Assigned only at posting
	Status      EntryStatus `json:"status"`
	PostingDate time.Time   `json:"postingDate"`
	Memo        string      `json:"memo"`

	// Optional link to the originating business document.
	SourceType string `json:"sourceType,omitempty"`
	SourceID   string `json:"sourceID,omitempty"`
	SourceRef  string `json:"sourceRef,omitempty"`

	// Reversal linkage. ReversesEntryID is set on the reversal entry,
	// ReversedByEntryID on the original.
	ReversesEntryID   *string `json:"reversesEntryID,omitempty"`
	ReversedByEntryID *string `json:"reversedByEntryID,omitempty"`

	PostedBy string     `json:"postedBy,omitempty"`
	PostedAt *time.Time `json:"postedAt,omitempty"`

	Lines []JournalLine `json:"lines,omitempty"`
	AuditFields
}

// TotalDebitsCents sums the Debit line amounts.
func (e *JournalEntry) TotalDebitsCents() int64 {
	var total int64
	for _, line := range e.Lines {
		if line.Direction == Debit {
			total += line.AmountCents
		}
	}
	return total
}

// TotalCreditsCents sums the Credit line amounts.
func (e *JournalEntry) TotalCreditsCents() int64 {
	var total int64
	for _, line := range e.Lines {
		if line.Direction == Credit {
			total += line.AmountCents
		}
	}
	return total
}

// IsBalanced reports whether debits equal credits across all lines.
func (e *JournalEntry) IsBalanced() bool {
	return e.TotalDebitsCents() == e.TotalCreditsCents()
}

// ValidateLines checks structural line invariants that hold even for drafts:
// at least one line, positive integer amounts, known directions and a
// non-empty account reference. Balance is deliberately not checked here;
// drafts may be incomplete and balance is enforced at Post.
func (e *JournalEntry) ValidateLines() error {
	if len(e.Lines) == 0 {
		return fmt.Errorf("%w: entry must have at least one line", apperrors.ErrValidation)
	}
	for _, line := range e.Lines {
		if line.AmountCents <= 0 {
			return fmt.Errorf("%w: line amount must be a positive integer for account %s", apperrors.ErrValidation, line.AccountID)
		}
		if line.Direction != Debit && line.Direction != Credit {
			return fmt.Errorf("%w: unknown line direction %q", apperrors.ErrValidation, line.Direction)
		}
		if line.AccountID == "" {
			return fmt.Errorf("%w: line is missing a ledger account", apperrors.ErrValidation)
		}
	}
	return nil
}

// Post transitions the entry from Draft to Posted, recomputing the balance
// check and stamping the entry number, poster and posting time. The entry is
// immutable afterwards except for reversal linkage.
func (e *JournalEntry) Post(entryNumber, postedBy string, now time.Time) error {
	if e.Status != Draft {
		return fmt.Errorf("%w: entry %s is %s, only drafts can be posted", apperrors.ErrValidation, e.EntryID, e.Status)
	}
	if err := e.ValidateLines(); err != nil {
		return err
	}
	debits, credits := e.TotalDebitsCents(), e.TotalCreditsCents()
	if debits != credits {
		return fmt.Errorf("%w: entry is not balanced (debits %d, credits %d)", apperrors.ErrValidation, debits, credits)
	}
	e.EntryNumber = entryNumber
	e.PostedBy = postedBy
	postedAt := now
	e.PostedAt = &postedAt
	e.Status = Posted
	e.LastUpdatedAt = now
	e.LastUpdatedBy = postedBy
	return nil
}

// BuildReversal produces the flipped counterpart of a posted entry: every
// line keeps its account and amount with the debit/credit side swapped. The
// returned entry is a Draft the caller must post and link atomically with
// marking the original.
func (e *JournalEntry) BuildReversal(reversalEntryID string, lineIDs []string, reversalDate time.Time, memo, createdBy string, now time.Time) (*JournalEntry, error) {
	if e.Status != Posted {
		return nil, fmt.Errorf("%w: entry %s is %s, only posted entries can be reversed", apperrors.ErrValidation, e.EntryID, e.Status)
	}
	if e.ReversedByEntryID != nil {
		return nil, fmt.Errorf("%w: entry %s has already been reversed", apperrors.ErrValidation, e.EntryID)
	}
	if len(lineIDs) != len(e.Lines) {
		return nil, fmt.Errorf("%w: need %d line IDs for reversal, got %d", apperrors.ErrInternal, len(e.Lines), len(lineIDs))
	}
	if memo == "" {
		memo = "Reversal of " + e.Memo
	}
	reversal := &JournalEntry{
		EntryID:         reversalEntryID,
		TenantID:        e.TenantID,
		Status:          Draft,
		PostingDate:     reversalDate,
		Memo:            memo,
		SourceType:      e.SourceType,
		SourceID:        e.SourceID,
		SourceRef:       e.SourceRef,
		ReversesEntryID: &e.EntryID,
		Lines:           make([]JournalLine, len(e.Lines)),
		AuditFields: AuditFields{
			CreatedAt:     now,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
			LastUpdatedBy: createdBy,
		},
	}
	for i, line := range e.Lines {
		reversal.Lines[i] = JournalLine{
			LineID:      lineIDs[i],
			EntryID:     reversalEntryID,
			AccountID:   line.AccountID,
			Direction:   line.Direction.Opposite(),
			AmountCents: line.AmountCents,
			Currency:    line.Currency,
			LineMemo:    line.LineMemo,
			Reference:   line.Reference,
		}
	}
	return reversal, nil
}

// MarkReversed flags a posted entry as reversed and records the linkage to
// the reversal entry.
func (e *JournalEntry) MarkReversed(reversalEntryID, updatedBy string, now time.Time) error {
	if e.Status != Posted {
		return fmt.Errorf("%w: entry %s is %s, only posted entries can be marked reversed", apperrors.ErrValidation, e.EntryID, e.Status)
	}
	e.Status = Reversed
	e.ReversedByEntryID = &reversalEntryID
	e.LastUpdatedAt = now
	e.LastUpdatedBy = updatedBy
	return nil
}
