package dto

import "github.com/Corely-AI/corely-ledger/internal/core/domain"

// SetupAccountingRequest defines the payload for initial tenant setup.
type SetupAccountingRequest struct {
	BaseCurrency         string `json:"baseCurrency" binding:"required,len=3"`
	FiscalYearStartMonth int    `json:"fiscalYearStartMonth" binding:"required,min=1,max=12"`
	FiscalYearStartDay   int    `json:"fiscalYearStartDay" binding:"required,min=1,max=31"`
	PeriodLockingEnabled bool   `json:"periodLockingEnabled"`
	EntryNumberPrefix    string `json:"entryNumberPrefix" binding:"max=16"`
	PONumberPrefix       string `json:"poNumberPrefix" binding:"max=16"`
}

// UpdateSettingsRequest defines the mutable tenant configuration. Numbering
// counters are deliberately absent; they advance only through allocation.
type UpdateSettingsRequest struct {
	PeriodLockingEnabled *bool   `json:"periodLockingEnabled,omitempty"`
	EntryNumberPrefix    *string `json:"entryNumberPrefix,omitempty" binding:"omitempty,max=16"`
	PONumberPrefix       *string `json:"poNumberPrefix,omitempty" binding:"omitempty,max=16"`
}

// SettingsResponse defines the data returned for tenant settings.
type SettingsResponse struct {
	BaseCurrency         string `json:"baseCurrency"`
	FiscalYearStartMonth int    `json:"fiscalYearStartMonth"`
	FiscalYearStartDay   int    `json:"fiscalYearStartDay"`
	PeriodLockingEnabled bool   `json:"periodLockingEnabled"`
	EntryNumberPrefix    string `json:"entryNumberPrefix"`
	NextEntryNumber      int64  `json:"nextEntryNumber"`
	PONumberPrefix       string `json:"poNumberPrefix"`
	NextPONumber         int64  `json:"nextPONumber"`
}

// SetupStatusResponse reports whether accounting is set up for a tenant.
type SetupStatusResponse struct {
	IsSetup      bool   `json:"isSetup"`
	BaseCurrency string `json:"baseCurrency,omitempty"`
}

// ToSettingsResponse converts domain settings to the response DTO.
func ToSettingsResponse(s *domain.AccountingSettings) SettingsResponse {
	return SettingsResponse{
		BaseCurrency:         s.BaseCurrency,
		FiscalYearStartMonth: s.FiscalYearStartMonth,
		FiscalYearStartDay:   s.FiscalYearStartDay,
		PeriodLockingEnabled: s.PeriodLockingEnabled,
		EntryNumberPrefix:    s.EntryNumberPrefix,
		NextEntryNumber:      s.NextEntryNumber,
		PONumberPrefix:       s.PONumberPrefix,
		NextPONumber:         s.NextPONumber,
	}
}
