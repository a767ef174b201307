package domain

import "time"

// AccountActivityTotal is a pre-aggregated per-account sum of posted line
// amounts, as returned by the reporting query port.
type AccountActivityTotal struct {
	AccountID    string      `json:"accountID"`
	AccountCode  string      `json:"accountCode"`
	AccountName  string      `json:"accountName"`
	AccountType  AccountType `json:"accountType"`
	DebitsCents  int64       `json:"debitsCents"`
	CreditsCents int64       `json:"creditsCents"`
}

// LedgerLine is a posted journal line joined with its entry header, used for
// general ledger listings.
type LedgerLine struct {
	LineID      string    `json:"lineID"`
	EntryID     string    `json:"entryID"`
	EntryNumber string    `json:"entryNumber"`
	PostingDate time.Time `json:"postingDate"`
	Memo        string    `json:"memo"`
	Direction   Direction `json:"direction"`
	AmountCents int64     `json:"amountCents"`
	Currency    string    `json:"currency"`
}

// TrialBalanceRow is a single account row of a trial balance.
type TrialBalanceRow struct {
	AccountID    string      `json:"accountID"`
	AccountCode  string      `json:"accountCode"`
	AccountName  string      `json:"accountName"`
	AccountType  AccountType `json:"accountType"`
	DebitsCents  int64       `json:"debitsCents"`
	CreditsCents int64       `json:"creditsCents"`
	BalanceCents int64       `json:"balanceCents"` // debits - credits
}

// TrialBalanceReport aggregates non-zero rows and their totals.
type TrialBalanceReport struct {
	FromDate          time.Time         `json:"fromDate"`
	ToDate            time.Time         `json:"toDate"`
	Rows              []TrialBalanceRow `json:"rows"`
	TotalDebitsCents  int64             `json:"totalDebitsCents"`
	TotalCreditsCents int64             `json:"totalCreditsCents"`
}

// GeneralLedgerEntry is one movement of a general ledger report with its
// running balance.
type GeneralLedgerEntry struct {
	LedgerLine
	RunningBalanceCents int64 `json:"runningBalanceCents"`
}

// GeneralLedgerReport lists an account's movements over a range with opening
// and closing balances.
type GeneralLedgerReport struct {
	AccountID           string               `json:"accountID"`
	AccountCode         string               `json:"accountCode"`
	AccountName         string               `json:"accountName"`
	FromDate            time.Time            `json:"fromDate"`
	ToDate              time.Time            `json:"toDate"`
	OpeningBalanceCents int64                `json:"openingBalanceCents"`
	Entries             []GeneralLedgerEntry `json:"entries"`
	ClosingBalanceCents int64                `json:"closingBalanceCents"`
}

// ReportAccountAmount is an account with its net amount for P&L and balance
// sheet reports.
type ReportAccountAmount struct {
	AccountID   string `json:"accountID"`
	AccountCode string `json:"accountCode"`
	Name        string `json:"name"`
	AmountCents int64  `json:"amountCents"`
}

// ProfitLossReport is a profit and loss statement over a date range.
type ProfitLossReport struct {
	FromDate           time.Time             `json:"fromDate"`
	ToDate             time.Time             `json:"toDate"`
	Income             []ReportAccountAmount `json:"income"`
	Expenses           []ReportAccountAmount `json:"expenses"`
	TotalIncomeCents   int64                 `json:"totalIncomeCents"`
	TotalExpensesCents int64                 `json:"totalExpensesCents"`
	NetProfitCents     int64                 `json:"netProfitCents"`
}

// BalanceSheetReport is a cumulative statement of financial position as of a
// date.
type BalanceSheetReport struct {
	AsOfDate              time.Time             `json:"asOfDate"`
	Assets                []ReportAccountAmount `json:"assets"`
	Liabilities           []ReportAccountAmount `json:"liabilities"`
	Equity                []ReportAccountAmount `json:"equity"`
	TotalAssetsCents      int64                 `json:"totalAssetsCents"`
	TotalLiabilitiesCents int64                 `json:"totalLiabilitiesCents"`
	TotalEquityCents      int64                 `json:"totalEquityCents"`
}
