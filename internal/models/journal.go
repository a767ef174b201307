package models

import "time"

// JournalEntry is the storage representation of a journal entry header.
type JournalEntry struct {
	EntryID          string     `db:"entry_id"`
	TenantID         string     `db:"tenant_id"`
	EntryNumber      string     `db:"entry_number"` // Nullable until posted
	Status           string     `db:"status"`
	PostingDate      time.Time  `db:"posting_date"`
	Memo             string     `db:"memo"`
	SourceType       string     `db:"source_type"` // Nullable
	SourceID         string     `db:"source_id"`   // Nullable
	SourceRef        string     `db:"source_ref"`  // Nullable
	ReversesEntryID  *string    `db:"reverses_entry_id"`
	ReversedByEntryID *string   `db:"reversed_by_entry_id"`
	PostedBy         string     `db:"posted_by"` // Nullable until posted
	PostedAt         *time.Time `db:"posted_at"`
	AuditFields
}

// JournalLine is the storage representation of one debit or credit line.
type JournalLine struct {
	LineID      string `db:"line_id"`
	EntryID     string `db:"entry_id"`
	AccountID   string `db:"account_id"`
	Direction   string `db:"direction"`
	AmountCents int64  `db:"amount_cents"`
	Currency    string `db:"currency"`
	LineMemo    string `db:"line_memo"`  // Nullable
	Reference   string `db:"reference"`  // Nullable
	Tags        string `db:"tags"`       // Nullable
}
