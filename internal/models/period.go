package models

import "time"

// AccountingPeriod is the storage representation of a fiscal period.
type AccountingPeriod struct {
	PeriodID     string     `db:"period_id"`
	TenantID     string     `db:"tenant_id"`
	FiscalYearID string     `db:"fiscal_year_id"`
	Name         string     `db:"name"`
	StartDate    time.Time  `db:"start_date"`
	EndDate      time.Time  `db:"end_date"`
	Status       string     `db:"status"`
	ClosedAt     *time.Time `db:"closed_at"`
	ClosedBy     string     `db:"closed_by"` // Nullable
	AuditFields
}
