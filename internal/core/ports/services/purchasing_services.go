package services

import (
	"context"

	"github.com/Corely-AI/corely-ledger/internal/dto"
)

// PurchasingSvcFacade defines the purchasing use cases that call into the
// accounting core through JournalPostingPort. A failure to create or post the
// underlying journal entry aborts the purchasing operation; the core's error
// is propagated unchanged, never re-interpreted.
type PurchasingSvcFacade interface {
	// PostVendorBill records a vendor bill as a journal entry (expense
	// debits against an accounts payable credit) and posts it. Safe to retry
	// with the same idempotency key.
	PostVendorBill(ctx context.Context, tenantID string, req dto.PostVendorBillRequest, userID string) (*dto.PostVendorBillResponse, error)

	// PostCOGS records cost of goods sold for shipped inventory (COGS debit
	// against an inventory credit) and posts it. Safe to retry with the same
	// idempotency key.
	PostCOGS(ctx context.Context, tenantID string, req dto.PostCOGSRequest, userID string) (*dto.PostCOGSResponse, error)

	// AllocatePONumber hands out the next purchase order number for the
	// tenant using the collision-probing allocator.
	AllocatePONumber(ctx context.Context, tenantID string) (string, error)
}
