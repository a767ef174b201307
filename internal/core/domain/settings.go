package domain

import "fmt"

// AccountingSettings is the single per-tenant configuration record. It owns
// the journal entry number sequence; the incremented counter must be saved in
// the same transaction as the entry that consumes the number, or numbers can
// be skipped or duplicated under concurrent posting.
type AccountingSettings struct {
	TenantID             string `json:"tenantID"` // Primary key, one row per tenant
	BaseCurrency         string `json:"baseCurrency"`
	FiscalYearStartMonth int    `json:"fiscalYearStartMonth"` // 1-12
	FiscalYearStartDay   int    `json:"fiscalYearStartDay"`   // 1-31
	PeriodLockingEnabled bool   `json:"periodLockingEnabled"`
	EntryNumberPrefix    string `json:"entryNumberPrefix"`
	NextEntryNumber      int64  `json:"nextEntryNumber"`
	PONumberPrefix       string `json:"poNumberPrefix"`
	NextPONumber         int64  `json:"nextPONumber"`
	AuditFields
}

// AllocateEntryNumber returns the next entry number and advances the counter.
func (s *AccountingSettings) AllocateEntryNumber() string {
	number := fmt.Sprintf("%s%d", s.EntryNumberPrefix, s.NextEntryNumber)
	s.NextEntryNumber++
	return number
}

// AllocatePONumber returns the next purchase order number and advances the
// counter.
func (s *AccountingSettings) AllocatePONumber() string {
	number := fmt.Sprintf("%s%d", s.PONumberPrefix, s.NextPONumber)
	s.NextPONumber++
	return number
}
