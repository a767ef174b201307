package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Corely-AI/corely-ledger/internal/apperrors"
	"github.com/Corely-AI/corely-ledger/internal/core/domain"
)

func balancedEntry() domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     "entry-1",
		TenantID:    "tenant-1",
		Status:      domain.Draft,
		PostingDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Memo:        "March sale",
		Lines: []domain.JournalLine{
			{LineID: "line-1", EntryID: "entry-1", AccountID: "acc-cash", Direction: domain.Debit, AmountCents: 15000, Currency: "USD"},
			{LineID: "line-2", EntryID: "entry-1", AccountID: "acc-rev", Direction: domain.Credit, AmountCents: 15000, Currency: "USD"},
		},
	}
}

func TestDirection_Opposite(t *testing.T) {
	assert.Equal(t, domain.Credit, domain.Debit.Opposite())
	assert.Equal(t, domain.Debit, domain.Credit.Opposite())
}

func TestJournalEntry_Balance(t *testing.T) {
	tests := []struct {
		name         string
		lines        []domain.JournalLine
		wantDebits   int64
		wantCredits  int64
		wantBalanced bool
	}{
		{
			name: "balanced two-line entry",
			lines: []domain.JournalLine{
				{Direction: domain.Debit, AmountCents: 15000},
				{Direction: domain.Credit, AmountCents: 15000},
			},
			wantDebits:   15000,
			wantCredits:  15000,
			wantBalanced: true,
		},
		{
			name: "split debit against one credit",
			lines: []domain.JournalLine{
				{Direction: domain.Debit, AmountCents: 12000},
				{Direction: domain.Debit, AmountCents: 3000},
				{Direction: domain.Credit, AmountCents: 15000},
			},
			wantDebits:   15000,
			wantCredits:  15000,
			wantBalanced: true,
		},
		{
			name: "off by one cent",
			lines: []domain.JournalLine{
				{Direction: domain.Debit, AmountCents: 15000},
				{Direction: domain.Credit, AmountCents: 14999},
			},
			wantDebits:   15000,
			wantCredits:  14999,
			wantBalanced: false,
		},
		{
			name:         "no lines",
			lines:        nil,
			wantDebits:   0,
			wantCredits:  0,
			wantBalanced: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := domain.JournalEntry{Lines: tt.lines}
			assert.Equal(t, tt.wantDebits, entry.TotalDebitsCents())
			assert.Equal(t, tt.wantCredits, entry.TotalCreditsCents())
			assert.Equal(t, tt.wantBalanced, entry.IsBalanced())
		})
	}
}

func TestJournalEntry_ValidateLines(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *domain.JournalEntry)
		wantErr bool
	}{
		{
			name:    "valid entry",
			mutate:  func(e *domain.JournalEntry) {},
			wantErr: false,
		},
		{
			name:    "no lines",
			mutate:  func(e *domain.JournalEntry) { e.Lines = nil },
			wantErr: true,
		},
		{
			name:    "zero amount",
			mutate:  func(e *domain.JournalEntry) { e.Lines[0].AmountCents = 0 },
			wantErr: true,
		},
		{
			name:    "negative amount",
			mutate:  func(e *domain.JournalEntry) { e.Lines[0].AmountCents = -100 },
			wantErr: true,
		},
		{
			name:    "unknown direction",
			mutate:  func(e *domain.JournalEntry) { e.Lines[1].Direction = "SIDEWAYS" },
			wantErr: true,
		},
		{
			name:    "missing account",
			mutate:  func(e *domain.JournalEntry) { e.Lines[0].AccountID = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := balancedEntry()
			tt.mutate(&entry)
			err := entry.ValidateLines()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJournalEntry_Post(t *testing.T) {
	now := time.Date(2025, 3, 16, 9, 0, 0, 0, time.UTC)

	t.Run("posts a balanced draft", func(t *testing.T) {
		entry := balancedEntry()
		err := entry.Post("JE-1", "user-1", now)
		require.NoError(t, err)
		assert.Equal(t, domain.Posted, entry.Status)
		assert.Equal(t, "JE-1", entry.EntryNumber)
		assert.Equal(t, "user-1", entry.PostedBy)
		require.NotNil(t, entry.PostedAt)
		assert.Equal(t, now, *entry.PostedAt)
	})

	t.Run("rejects an unbalanced draft", func(t *testing.T) {
		entry := balancedEntry()
		entry.Lines[1].AmountCents = 14999
		err := entry.Post("JE-1", "user-1", now)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Equal(t, domain.Draft, entry.Status)
		assert.Empty(t, entry.EntryNumber)
	})

	t.Run("rejects a posted entry", func(t *testing.T) {
		entry := balancedEntry()
		require.NoError(t, entry.Post("JE-1", "user-1", now))
		err := entry.Post("JE-2", "user-1", now)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Equal(t, "JE-1", entry.EntryNumber)
	})
}

func TestJournalEntry_BuildReversal(t *testing.T) {
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	reversalDate := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	postedEntry := func() domain.JournalEntry {
		entry := balancedEntry()
		require.NoError(t, entry.Post("JE-1", "user-1", now))
		return entry
	}

	t.Run("flips every line", func(t *testing.T) {
		entry := postedEntry()
		rev, err := entry.BuildReversal("entry-2", []string{"rline-1", "rline-2"}, reversalDate, "", "user-2", now)
		require.NoError(t, err)

		assert.Equal(t, domain.Draft, rev.Status)
		assert.Equal(t, reversalDate, rev.PostingDate)
		assert.Equal(t, "Reversal of March sale", rev.Memo)
		require.NotNil(t, rev.ReversesEntryID)
		assert.Equal(t, entry.EntryID, *rev.ReversesEntryID)

		require.Len(t, rev.Lines, 2)
		for i, line := range rev.Lines {
			assert.Equal(t, entry.Lines[i].AccountID, line.AccountID)
			assert.Equal(t, entry.Lines[i].AmountCents, line.AmountCents)
			assert.Equal(t, entry.Lines[i].Direction.Opposite(), line.Direction)
			assert.Equal(t, "entry-2", line.EntryID)
		}
		assert.True(t, rev.IsBalanced())
	})

	t.Run("keeps a caller-provided memo", func(t *testing.T) {
		entry := postedEntry()
		rev, err := entry.BuildReversal("entry-2", []string{"rline-1", "rline-2"}, reversalDate, "correction", "user-2", now)
		require.NoError(t, err)
		assert.Equal(t, "correction", rev.Memo)
	})

	t.Run("rejects a draft", func(t *testing.T) {
		entry := balancedEntry()
		_, err := entry.BuildReversal("entry-2", []string{"rline-1", "rline-2"}, reversalDate, "", "user-2", now)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("rejects a second reversal", func(t *testing.T) {
		entry := postedEntry()
		require.NoError(t, entry.MarkReversed("entry-2", "user-2", now))
		entry.Status = domain.Posted // status alone does not reset the link
		_, err := entry.BuildReversal("entry-3", []string{"rline-1", "rline-2"}, reversalDate, "", "user-2", now)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestJournalEntry_MarkReversed(t *testing.T) {
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	t.Run("marks a posted entry", func(t *testing.T) {
		entry := balancedEntry()
		require.NoError(t, entry.Post("JE-1", "user-1", now))
		err := entry.MarkReversed("entry-2", "user-2", now)
		require.NoError(t, err)
		assert.Equal(t, domain.Reversed, entry.Status)
		require.NotNil(t, entry.ReversedByEntryID)
		assert.Equal(t, "entry-2", *entry.ReversedByEntryID)
	})

	t.Run("rejects a draft", func(t *testing.T) {
		entry := balancedEntry()
		err := entry.MarkReversed("entry-2", "user-2", now)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}
