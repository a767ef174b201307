package dto

import (
	"time"

	"github.com/Corely-AI/corely-ledger/internal/core/domain"
	"github.com/Corely-AI/corely-ledger/internal/utils"
	"github.com/shopspring/decimal"
)

// ReportRangeParams holds the date range of range-based reports.
type ReportRangeParams struct {
	FromDate time.Time `form:"fromDate" time_format:"2006-01-02" binding:"required"`
	ToDate   time.Time `form:"toDate" time_format:"2006-01-02" binding:"required"`
}

// AsOfParams holds the cut-off date of point-in-time reports.
type AsOfParams struct {
	AsOfDate time.Time `form:"asOfDate" time_format:"2006-01-02" binding:"required"`
}

// TrialBalanceRowResponse is one account row of the trial balance payload.
type TrialBalanceRowResponse struct {
	AccountID    string          `json:"accountID"`
	AccountCode  string          `json:"accountCode"`
	AccountName  string          `json:"accountName"`
	AccountType  string          `json:"accountType"`
	DebitsCents  int64           `json:"debitsCents"`
	CreditsCents int64           `json:"creditsCents"`
	BalanceCents int64           `json:"balanceCents"`
	Debits       decimal.Decimal `json:"debits"`
	Credits      decimal.Decimal `json:"credits"`
}

// TrialBalanceResponse is the trial balance payload.
type TrialBalanceResponse struct {
	FromDate          time.Time                 `json:"fromDate"`
	ToDate            time.Time                 `json:"toDate"`
	Rows              []TrialBalanceRowResponse `json:"rows"`
	TotalDebitsCents  int64                     `json:"totalDebitsCents"`
	TotalCreditsCents int64                     `json:"totalCreditsCents"`
}

// GeneralLedgerEntryResponse is one movement of the general ledger payload.
type GeneralLedgerEntryResponse struct {
	EntryID             string    `json:"entryID"`
	EntryNumber         string    `json:"entryNumber"`
	PostingDate         time.Time `json:"postingDate"`
	Memo                string    `json:"memo"`
	Direction           string    `json:"direction"`
	AmountCents         int64     `json:"amountCents"`
	RunningBalanceCents int64     `json:"runningBalanceCents"`
}

// GeneralLedgerResponse is the general ledger payload for one account.
type GeneralLedgerResponse struct {
	AccountID           string                       `json:"accountID"`
	AccountCode         string                       `json:"accountCode"`
	AccountName         string                       `json:"accountName"`
	FromDate            time.Time                    `json:"fromDate"`
	ToDate              time.Time                    `json:"toDate"`
	OpeningBalanceCents int64                        `json:"openingBalanceCents"`
	Entries             []GeneralLedgerEntryResponse `json:"entries"`
	ClosingBalanceCents int64                        `json:"closingBalanceCents"`
}

// ReportAccountAmountResponse is an account and its net amount.
type ReportAccountAmountResponse struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	Name        string          `json:"name"`
	AmountCents int64           `json:"amountCents"`
	Amount      decimal.Decimal `json:"amount"`
}

// ProfitLossResponse is the profit and loss payload.
type ProfitLossResponse struct {
	FromDate           time.Time                     `json:"fromDate"`
	ToDate             time.Time                     `json:"toDate"`
	Income             []ReportAccountAmountResponse `json:"income"`
	Expenses           []ReportAccountAmountResponse `json:"expenses"`
	TotalIncomeCents   int64                         `json:"totalIncomeCents"`
	TotalExpensesCents int64                         `json:"totalExpensesCents"`
	NetProfitCents     int64                         `json:"netProfitCents"`
}

// BalanceSheetResponse is the balance sheet payload.
type BalanceSheetResponse struct {
	AsOfDate              time.Time                     `json:"asOfDate"`
	Assets                []ReportAccountAmountResponse `json:"assets"`
	Liabilities           []ReportAccountAmountResponse `json:"liabilities"`
	Equity                []ReportAccountAmountResponse `json:"equity"`
	TotalAssetsCents      int64                         `json:"totalAssetsCents"`
	TotalLiabilitiesCents int64                         `json:"totalLiabilitiesCents"`
	TotalEquityCents      int64                         `json:"totalEquityCents"`
}

// ToTrialBalanceResponse converts the domain report to its payload.
func ToTrialBalanceResponse(r *domain.TrialBalanceReport) TrialBalanceResponse {
	rows := make([]TrialBalanceRowResponse, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = TrialBalanceRowResponse{
			AccountID:    row.AccountID,
			AccountCode:  row.AccountCode,
			AccountName:  row.AccountName,
			AccountType:  string(row.AccountType),
			DebitsCents:  row.DebitsCents,
			CreditsCents: row.CreditsCents,
			BalanceCents: row.BalanceCents,
			Debits:       utils.CentsToDecimal(row.DebitsCents),
			Credits:      utils.CentsToDecimal(row.CreditsCents),
		}
	}
	return TrialBalanceResponse{
		FromDate:          r.FromDate,
		ToDate:            r.ToDate,
		Rows:              rows,
		TotalDebitsCents:  r.TotalDebitsCents,
		TotalCreditsCents: r.TotalCreditsCents,
	}
}

// ToGeneralLedgerResponse converts the domain report to its payload.
func ToGeneralLedgerResponse(r *domain.GeneralLedgerReport) GeneralLedgerResponse {
	entries := make([]GeneralLedgerEntryResponse, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = GeneralLedgerEntryResponse{
			EntryID:             e.EntryID,
			EntryNumber:         e.EntryNumber,
			PostingDate:         e.PostingDate,
			Memo:                e.Memo,
			Direction:           string(e.Direction),
			AmountCents:         e.AmountCents,
			RunningBalanceCents: e.RunningBalanceCents,
		}
	}
	return GeneralLedgerResponse{
		AccountID:           r.AccountID,
		AccountCode:         r.AccountCode,
		AccountName:         r.AccountName,
		FromDate:            r.FromDate,
		ToDate:              r.ToDate,
		OpeningBalanceCents: r.OpeningBalanceCents,
		Entries:             entries,
		ClosingBalanceCents: r.ClosingBalanceCents,
	}
}

func toReportAmounts(amounts []domain.ReportAccountAmount) []ReportAccountAmountResponse {
	out := make([]ReportAccountAmountResponse, len(amounts))
	for i, a := range amounts {
		out[i] = ReportAccountAmountResponse{
			AccountID:   a.AccountID,
			AccountCode: a.AccountCode,
			Name:        a.Name,
			AmountCents: a.AmountCents,
			Amount:      utils.CentsToDecimal(a.AmountCents),
		}
	}
	return out
}

// ToProfitLossResponse converts the domain report to its payload.
func ToProfitLossResponse(r *domain.ProfitLossReport) ProfitLossResponse {
	return ProfitLossResponse{
		FromDate:           r.FromDate,
		ToDate:             r.ToDate,
		Income:             toReportAmounts(r.Income),
		Expenses:           toReportAmounts(r.Expenses),
		TotalIncomeCents:   r.TotalIncomeCents,
		TotalExpensesCents: r.TotalExpensesCents,
		NetProfitCents:     r.NetProfitCents,
	}
}

// ToBalanceSheetResponse converts the domain report to its payload.
func ToBalanceSheetResponse(r *domain.BalanceSheetReport) BalanceSheetResponse {
	return BalanceSheetResponse{
		AsOfDate:              r.AsOfDate,
		Assets:                toReportAmounts(r.Assets),
		Liabilities:           toReportAmounts(r.Liabilities),
		Equity:                toReportAmounts(r.Equity),
		TotalAssetsCents:      r.TotalAssetsCents,
		TotalLiabilitiesCents: r.TotalLiabilitiesCents,
		TotalEquityCents:      r.TotalEquityCents,
	}
}
