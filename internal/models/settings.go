package models

// AccountingSettings is the storage representation of a tenant's accounting
// configuration and document number counters.
type AccountingSettings struct {
	TenantID             string `db:"tenant_id"`
	BaseCurrency         string `db:"base_currency"`
	FiscalYearStartMonth int    `db:"fiscal_year_start_month"`
	FiscalYearStartDay   int    `db:"fiscal_year_start_day"`
	PeriodLockingEnabled bool   `db:"period_locking_enabled"`
	EntryNumberPrefix    string `db:"entry_number_prefix"`
	NextEntryNumber      int64  `db:"next_entry_number"`
	PONumberPrefix       string `db:"po_number_prefix"`
	NextPONumber         int64  `db:"next_po_number"`
	AuditFields
}
