package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Corely-AI/corely-ledger/internal/apperrors"
	"github.com/Corely-AI/corely-ledger/internal/core/domain"
	portsrepo "github.com/Corely-AI/corely-ledger/internal/core/ports/repositories"
	portssvc "github.com/Corely-AI/corely-ledger/internal/core/ports/services"
	"github.com/Corely-AI/corely-ledger/internal/dto"
)

const (
	actionVendorBill = "purchasing.vendor_bill"
	actionCOGS       = "purchasing.cogs"

	sourceTypeVendorBill = "VENDOR_BILL"
	sourceTypeShipment   = "SHIPMENT"
)

// purchasingService turns purchasing events into journal entries through the
// accounting core's posting port. It owns no ledger rules of its own; when
// the core rejects an entry the purchasing operation fails with the core's
// error as-is.
type purchasingService struct {
	BaseService
	postingPort portssvc.JournalPostingPort
	accountSvc  portssvc.AccountReaderSvc
	settingsSvc portssvc.SettingsSvcFacade
	idemStore   portsrepo.IdempotencyStore
	journalRepo portsrepo.JournalEntryReader
}

// NewPurchasingService creates a new purchasing service.
func NewPurchasingService(postingPort portssvc.JournalPostingPort, accountSvc portssvc.AccountReaderSvc, settingsSvc portssvc.SettingsSvcFacade, idemStore portsrepo.IdempotencyStore, journalRepo portsrepo.JournalEntryReader) portssvc.PurchasingSvcFacade {
	return &purchasingService{
		postingPort: postingPort,
		accountSvc:  accountSvc,
		settingsSvc: settingsSvc,
		idemStore:   idemStore,
		journalRepo: journalRepo,
	}
}

var _ portssvc.PurchasingSvcFacade = (*purchasingService)(nil)

// PostVendorBill records a vendor bill as a posted journal entry: one debit
// per expense line and a single accounts payable credit for the bill total.
func (s *purchasingService) PostVendorBill(ctx context.Context, tenantID string, req dto.PostVendorBillRequest, userID string) (*dto.PostVendorBillResponse, error) {
	var replay dto.PostVendorBillResponse
	found, err := s.findReplay(ctx, tenantID, actionVendorBill, req.IdempotencyKey, &replay)
	if err != nil {
		return nil, err
	}
	if found {
		replay.Replayed = true
		return &replay, nil
	}

	apAccount, err := s.accountSvc.GetAccountBySystemKey(ctx, tenantID, domain.SystemAccountAccountsPayable)
	if err != nil {
		return nil, err
	}

	var totalCents int64
	lines := make([]dto.CreateEntryLineRequest, 0, len(req.Lines)+1)
	for _, billLine := range req.Lines {
		totalCents += billLine.AmountCents
		lines = append(lines, dto.CreateEntryLineRequest{
			AccountID:   billLine.ExpenseAccountID,
			Direction:   string(domain.Debit),
			AmountCents: billLine.AmountCents,
			Currency:    req.Currency,
			LineMemo:    billLine.Description,
		})
	}
	lines = append(lines, dto.CreateEntryLineRequest{
		AccountID:   apAccount.AccountID,
		Direction:   string(domain.Credit),
		AmountCents: totalCents,
		Currency:    req.Currency,
		LineMemo:    "Vendor bill " + req.BillNumber,
	})

	entry, err := s.createAndPost(ctx, tenantID, dto.CreateEntryRequest{
		PostingDate: req.BillDate,
		Memo:        fmt.Sprintf("Vendor bill %s from %s", req.BillNumber, req.VendorName),
		Lines:       lines,
		SourceType:  sourceTypeVendorBill,
		SourceID:    req.BillID,
		SourceRef:   req.BillNumber,
	}, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.PostVendorBillResponse{EntryID: entry.EntryID, EntryNumber: entry.EntryNumber}
	s.saveReplay(ctx, tenantID, actionVendorBill, req.IdempotencyKey, resp)

	s.LogInfo(ctx, "Vendor bill posted", slog.String("bill_id", req.BillID), slog.String("entry_id", entry.EntryID))
	return resp, nil
}

// PostCOGS records cost of goods sold for a shipment: a COGS debit against an
// inventory credit, both resolved through system account keys.
func (s *purchasingService) PostCOGS(ctx context.Context, tenantID string, req dto.PostCOGSRequest, userID string) (*dto.PostCOGSResponse, error) {
	var replay dto.PostCOGSResponse
	found, err := s.findReplay(ctx, tenantID, actionCOGS, req.IdempotencyKey, &replay)
	if err != nil {
		return nil, err
	}
	if found {
		replay.Replayed = true
		return &replay, nil
	}

	cogsAccount, err := s.accountSvc.GetAccountBySystemKey(ctx, tenantID, domain.SystemAccountCOGS)
	if err != nil {
		return nil, err
	}
	inventoryAccount, err := s.accountSvc.GetAccountBySystemKey(ctx, tenantID, domain.SystemAccountInventory)
	if err != nil {
		return nil, err
	}

	entry, err := s.createAndPost(ctx, tenantID, dto.CreateEntryRequest{
		PostingDate: req.ShippedAt,
		Memo:        "COGS for shipment " + req.ShipmentID,
		Lines: []dto.CreateEntryLineRequest{
			{
				AccountID:   cogsAccount.AccountID,
				Direction:   string(domain.Debit),
				AmountCents: req.CostCents,
				Currency:    req.Currency,
			},
			{
				AccountID:   inventoryAccount.AccountID,
				Direction:   string(domain.Credit),
				AmountCents: req.CostCents,
				Currency:    req.Currency,
			},
		},
		SourceType: sourceTypeShipment,
		SourceID:   req.ShipmentID,
		SourceRef:  req.ShipmentRef,
	}, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.PostCOGSResponse{EntryID: entry.EntryID, EntryNumber: entry.EntryNumber}
	s.saveReplay(ctx, tenantID, actionCOGS, req.IdempotencyKey, resp)

	s.LogInfo(ctx, "COGS posted", slog.String("shipment_id", req.ShipmentID), slog.String("entry_id", entry.EntryID))
	return resp, nil
}

// AllocatePONumber hands out the next purchase order number, probing existing
// entry source references so a stale counter cannot produce a duplicate.
func (s *purchasingService) AllocatePONumber(ctx context.Context, tenantID string) (string, error) {
	return s.settingsSvc.AllocatePONumber(ctx, tenantID, func(probeCtx context.Context, number string) (bool, error) {
		return s.journalRepo.ExistsBySourceRef(probeCtx, tenantID, number)
	})
}

// createAndPost creates a draft through the posting port and posts it. Any
// failure from the core aborts the operation unchanged.
func (s *purchasingService) createAndPost(ctx context.Context, tenantID string, req dto.CreateEntryRequest, userID string) (*domain.JournalEntry, error) {
	draft, err := s.postingPort.CreateJournalEntry(ctx, tenantID, req, userID)
	if err != nil {
		return nil, err
	}
	return s.postingPort.PostJournalEntry(ctx, tenantID, draft.EntryID, userID)
}

// findReplay loads a stored result into out. Returns false when the key has
// not been seen.
func (s *purchasingService) findReplay(ctx context.Context, tenantID, actionKey, key string, out any) (bool, error) {
	record, err := s.idemStore.FindRecord(ctx, tenantID, actionKey, key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		s.LogError(ctx, err, "Failed to check idempotency store", slog.String("action", actionKey))
		return false, fmt.Errorf("failed to check idempotency store: %w", err)
	}
	if err := json.Unmarshal(record.Result, out); err != nil {
		return false, fmt.Errorf("%w: corrupt idempotency record", apperrors.ErrInternal)
	}
	return true, nil
}

// saveReplay stores a completed operation's result. The posting already
// happened, so a store failure is logged rather than surfaced; a retry would
// then re-post, which is why the store write should rarely fail.
func (s *purchasingService) saveReplay(ctx context.Context, tenantID, actionKey, key string, result any) {
	payload, err := json.Marshal(result)
	if err != nil {
		s.LogError(ctx, err, "Failed to encode idempotency result", slog.String("action", actionKey))
		return
	}
	if err := s.idemStore.SaveRecord(ctx, portsrepo.IdempotencyRecord{
		TenantID:  tenantID,
		ActionKey: actionKey,
		Key:       key,
		Result:    payload,
	}); err != nil {
		s.LogError(ctx, err, "Failed to save idempotency record", slog.String("action", actionKey))
	}
}
