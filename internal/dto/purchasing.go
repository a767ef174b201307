package dto

import "time"

// VendorBillLineRequest is one expense line of a vendor bill.
type VendorBillLineRequest struct {
	ExpenseAccountID string `json:"expenseAccountID" binding:"required"`
	AmountCents      int64  `json:"amountCents" binding:"required,gt=0"`
	Description      string `json:"description,omitempty" binding:"max=512"`
}

// PostVendorBillRequest defines the payload for posting a vendor bill to the
// ledger. The expense lines are debited against a single accounts payable
// credit for the bill total.
type PostVendorBillRequest struct {
	BillID         string                  `json:"billID" binding:"required"`
	BillNumber     string                  `json:"billNumber" binding:"required,max=64"`
	VendorName     string                  `json:"vendorName" binding:"required,max=255"`
	BillDate       time.Time               `json:"billDate" binding:"required"`
	Currency       string                  `json:"currency" binding:"required,len=3"`
	Lines          []VendorBillLineRequest `json:"lines" binding:"required,min=1,dive"`
	IdempotencyKey string                  `json:"idempotencyKey" binding:"required,max=128"`
}

// PostVendorBillResponse reports the journal entry a vendor bill produced.
type PostVendorBillResponse struct {
	EntryID     string `json:"entryID"`
	EntryNumber string `json:"entryNumber"`
	Replayed    bool   `json:"replayed"` // True when served from the idempotency store
}

// PostCOGSRequest defines the payload for posting cost of goods sold when
// inventory ships. COGS is debited against an inventory credit; both accounts
// resolve through their system account keys.
type PostCOGSRequest struct {
	ShipmentID     string    `json:"shipmentID" binding:"required"`
	ShipmentRef    string    `json:"shipmentRef,omitempty" binding:"max=255"`
	ShippedAt      time.Time `json:"shippedAt" binding:"required"`
	Currency       string    `json:"currency" binding:"required,len=3"`
	CostCents      int64     `json:"costCents" binding:"required,gt=0"`
	IdempotencyKey string    `json:"idempotencyKey" binding:"required,max=128"`
}

// PostCOGSResponse reports the journal entry a COGS posting produced.
type PostCOGSResponse struct {
	EntryID     string `json:"entryID"`
	EntryNumber string `json:"entryNumber"`
	Replayed    bool   `json:"replayed"`
}
