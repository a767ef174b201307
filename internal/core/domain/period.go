package domain

import (
	"fmt"
	"time"

	"github.com/Corely-AI/corely-ledger/internal/apperrors"
)

// PeriodStatus indicates whether a fiscal period accepts postings.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
)

// AccountingPeriod is a contiguous fiscal date range. Closing a period is
// advisory: it blocks nothing by itself, the posting check in the journal
// service is the only enforcement point.
type AccountingPeriod struct {
	PeriodID     string       `json:"periodID"` // Primary key (UUID)
	TenantID     string       `json:"tenantID"`
	FiscalYearID string       `json:"fiscalYearID"`
	Name         string       `json:"name"`
	StartDate    time.Time    `json:"startDate"`
	EndDate      time.Time    `json:"endDate"`
	Status       PeriodStatus `json:"status"`
	ClosedAt     *time.Time   `json:"closedAt,omitempty"`
	ClosedBy     string       `json:"closedBy,omitempty"`
	AuditFields
}

// Contains reports whether date falls within [StartDate, EndDate] inclusive.
func (p *AccountingPeriod) Contains(date time.Time) bool {
	return !date.Before(p.StartDate) && !date.After(p.EndDate)
}

// Close marks the period as closed. Closing an already-closed period is a
// programming error surfaced as a validation failure.
func (p *AccountingPeriod) Close(closedBy string, now time.Time) error {
	if p.Status == PeriodClosed {
		return fmt.Errorf("%w: period %s is already closed", apperrors.ErrValidation, p.Name)
	}
	p.Status = PeriodClosed
	closedAt := now
	p.ClosedAt = &closedAt
	p.ClosedBy = closedBy
	p.LastUpdatedAt = now
	p.LastUpdatedBy = closedBy
	return nil
}

// Reopen returns a closed period to the open state.
func (p *AccountingPeriod) Reopen(reopenedBy string, now time.Time) error {
	if p.Status != PeriodClosed {
		return fmt.Errorf("%w: period %s is not closed", apperrors.ErrValidation, p.Name)
	}
	p.Status = PeriodOpen
	p.ClosedAt = nil
	p.ClosedBy = ""
	p.LastUpdatedAt = now
	p.LastUpdatedBy = reopenedBy
	return nil
}
