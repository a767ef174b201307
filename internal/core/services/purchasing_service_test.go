package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Corely-AI/corely-ledger/internal/apperrors"
	"github.com/Corely-AI/corely-ledger/internal/core/domain"
	portsrepo "github.com/Corely-AI/corely-ledger/internal/core/ports/repositories"
	portssvc "github.com/Corely-AI/corely-ledger/internal/core/ports/services"
	"github.com/Corely-AI/corely-ledger/internal/core/services"
	"github.com/Corely-AI/corely-ledger/internal/dto"
)

type PurchasingServiceTestSuite struct {
	suite.Suite
	mockPostingPort *MockJournalPostingPort
	mockAccountSvc  *MockAccountService
	mockSettingsSvc *MockSettingsService
	mockIdemStore   *MockIdempotencyStore
	mockJournalRepo *MockJournalRepository
	service         portssvc.PurchasingSvcFacade

	tenantID  string
	userID    string
	apAccount domain.LedgerAccount
}

func TestPurchasingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PurchasingServiceTestSuite))
}

func (suite *PurchasingServiceTestSuite) SetupTest() {
	suite.mockPostingPort = new(MockJournalPostingPort)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockSettingsSvc = new(MockSettingsService)
	suite.mockIdemStore = new(MockIdempotencyStore)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.service = services.NewPurchasingService(suite.mockPostingPort, suite.mockAccountSvc, suite.mockSettingsSvc, suite.mockIdemStore, suite.mockJournalRepo)

	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.apAccount = domain.LedgerAccount{
		AccountID:        uuid.NewString(),
		TenantID:         suite.tenantID,
		Code:             "2000",
		Name:             "Accounts Payable",
		AccountType:      domain.Liability,
		SystemAccountKey: domain.SystemAccountAccountsPayable,
		IsActive:         true,
	}
}

func (suite *PurchasingServiceTestSuite) vendorBillRequest() dto.PostVendorBillRequest {
	return dto.PostVendorBillRequest{
		BillID:     uuid.NewString(),
		BillNumber: "BILL-2042",
		VendorName: "Acme Supplies",
		BillDate:   time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
		Currency:   "USD",
		Lines: []dto.VendorBillLineRequest{
			{ExpenseAccountID: "acc-office", AmountCents: 12000, Description: "Office chairs"},
			{ExpenseAccountID: "acc-freight", AmountCents: 3000, Description: "Freight"},
		},
		IdempotencyKey: uuid.NewString(),
	}
}

func (suite *PurchasingServiceTestSuite) TestPostVendorBill_Success() {
	ctx := context.Background()
	req := suite.vendorBillRequest()
	draftID := uuid.NewString()
	var createdReq dto.CreateEntryRequest

	suite.mockIdemStore.On("FindRecord", ctx, suite.tenantID, "purchasing.vendor_bill", req.IdempotencyKey).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountSvc.On("GetAccountBySystemKey", ctx, suite.tenantID, domain.SystemAccountAccountsPayable).
		Return(&suite.apAccount, nil).Once()
	suite.mockPostingPort.On("CreateJournalEntry", ctx, suite.tenantID, mock.AnythingOfType("dto.CreateEntryRequest"), suite.userID).
		Run(func(args mock.Arguments) { createdReq = args.Get(2).(dto.CreateEntryRequest) }).
		Return(&domain.JournalEntry{EntryID: draftID, TenantID: suite.tenantID, Status: domain.Draft}, nil).Once()
	suite.mockPostingPort.On("PostJournalEntry", ctx, suite.tenantID, draftID, suite.userID).
		Return(&domain.JournalEntry{EntryID: draftID, TenantID: suite.tenantID, Status: domain.Posted, EntryNumber: "JE-12"}, nil).Once()
	suite.mockIdemStore.On("SaveRecord", ctx, mock.AnythingOfType("repositories.IdempotencyRecord")).Return(nil).Once()

	resp, err := suite.service.PostVendorBill(ctx, suite.tenantID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(draftID, resp.EntryID)
	suite.Equal("JE-12", resp.EntryNumber)
	suite.False(resp.Replayed)

	// Expense debits plus one payable credit for the bill total.
	suite.Require().Len(createdReq.Lines, 3)
	suite.Equal("acc-office", createdReq.Lines[0].AccountID)
	suite.Equal(string(domain.Debit), createdReq.Lines[0].Direction)
	suite.Equal(suite.apAccount.AccountID, createdReq.Lines[2].AccountID)
	suite.Equal(string(domain.Credit), createdReq.Lines[2].Direction)
	suite.Equal(int64(15000), createdReq.Lines[2].AmountCents)
	suite.Equal("VENDOR_BILL", createdReq.SourceType)
	suite.Equal(req.BillID, createdReq.SourceID)
	suite.Equal(req.BillNumber, createdReq.SourceRef)
	suite.mockPostingPort.AssertExpectations(suite.T())
	suite.mockIdemStore.AssertExpectations(suite.T())
}

func (suite *PurchasingServiceTestSuite) TestPostVendorBill_ReplayServedFromStore() {
	ctx := context.Background()
	req := suite.vendorBillRequest()
	stored, err := json.Marshal(dto.PostVendorBillResponse{EntryID: "entry-99", EntryNumber: "JE-99"})
	suite.Require().NoError(err)

	suite.mockIdemStore.On("FindRecord", ctx, suite.tenantID, "purchasing.vendor_bill", req.IdempotencyKey).
		Return(&portsrepo.IdempotencyRecord{
			TenantID:  suite.tenantID,
			ActionKey: "purchasing.vendor_bill",
			Key:       req.IdempotencyKey,
			Result:    stored,
		}, nil).Once()

	resp, err := suite.service.PostVendorBill(ctx, suite.tenantID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("entry-99", resp.EntryID)
	suite.Equal("JE-99", resp.EntryNumber)
	suite.True(resp.Replayed)
	suite.mockPostingPort.AssertNotCalled(suite.T(), "CreateJournalEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockAccountSvc.AssertNotCalled(suite.T(), "GetAccountBySystemKey", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PurchasingServiceTestSuite) TestPostVendorBill_CoreRejectionPropagated() {
	ctx := context.Background()
	req := suite.vendorBillRequest()
	draftID := uuid.NewString()

	suite.mockIdemStore.On("FindRecord", ctx, suite.tenantID, "purchasing.vendor_bill", req.IdempotencyKey).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountSvc.On("GetAccountBySystemKey", ctx, suite.tenantID, domain.SystemAccountAccountsPayable).
		Return(&suite.apAccount, nil).Once()
	suite.mockPostingPort.On("CreateJournalEntry", ctx, suite.tenantID, mock.AnythingOfType("dto.CreateEntryRequest"), suite.userID).
		Return(&domain.JournalEntry{EntryID: draftID, TenantID: suite.tenantID, Status: domain.Draft}, nil).Once()
	suite.mockPostingPort.On("PostJournalEntry", ctx, suite.tenantID, draftID, suite.userID).
		Return(nil, apperrors.ErrValidation).Once()

	resp, err := suite.service.PostVendorBill(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockIdemStore.AssertNotCalled(suite.T(), "SaveRecord", mock.Anything, mock.Anything)
}

func (suite *PurchasingServiceTestSuite) TestPostCOGS_Success() {
	ctx := context.Background()
	cogsAccount := domain.LedgerAccount{AccountID: uuid.NewString(), TenantID: suite.tenantID, Code: "5000", AccountType: domain.Expense, SystemAccountKey: domain.SystemAccountCOGS, IsActive: true}
	inventoryAccount := domain.LedgerAccount{AccountID: uuid.NewString(), TenantID: suite.tenantID, Code: "1200", AccountType: domain.Asset, SystemAccountKey: domain.SystemAccountInventory, IsActive: true}
	req := dto.PostCOGSRequest{
		ShipmentID:     uuid.NewString(),
		ShippedAt:      time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Currency:       "USD",
		CostCents:      7200,
		IdempotencyKey: uuid.NewString(),
	}
	draftID := uuid.NewString()
	var createdReq dto.CreateEntryRequest

	suite.mockIdemStore.On("FindRecord", ctx, suite.tenantID, "purchasing.cogs", req.IdempotencyKey).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountSvc.On("GetAccountBySystemKey", ctx, suite.tenantID, domain.SystemAccountCOGS).Return(&cogsAccount, nil).Once()
	suite.mockAccountSvc.On("GetAccountBySystemKey", ctx, suite.tenantID, domain.SystemAccountInventory).Return(&inventoryAccount, nil).Once()
	suite.mockPostingPort.On("CreateJournalEntry", ctx, suite.tenantID, mock.AnythingOfType("dto.CreateEntryRequest"), suite.userID).
		Run(func(args mock.Arguments) { createdReq = args.Get(2).(dto.CreateEntryRequest) }).
		Return(&domain.JournalEntry{EntryID: draftID, TenantID: suite.tenantID, Status: domain.Draft}, nil).Once()
	suite.mockPostingPort.On("PostJournalEntry", ctx, suite.tenantID, draftID, suite.userID).
		Return(&domain.JournalEntry{EntryID: draftID, TenantID: suite.tenantID, Status: domain.Posted, EntryNumber: "JE-13"}, nil).Once()
	suite.mockIdemStore.On("SaveRecord", ctx, mock.AnythingOfType("repositories.IdempotencyRecord")).Return(nil).Once()

	resp, err := suite.service.PostCOGS(ctx, suite.tenantID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("JE-13", resp.EntryNumber)
	suite.False(resp.Replayed)

	suite.Require().Len(createdReq.Lines, 2)
	suite.Equal(cogsAccount.AccountID, createdReq.Lines[0].AccountID)
	suite.Equal(string(domain.Debit), createdReq.Lines[0].Direction)
	suite.Equal(inventoryAccount.AccountID, createdReq.Lines[1].AccountID)
	suite.Equal(string(domain.Credit), createdReq.Lines[1].Direction)
	suite.Equal(req.CostCents, createdReq.Lines[0].AmountCents)
	suite.Equal("SHIPMENT", createdReq.SourceType)
	suite.mockPostingPort.AssertExpectations(suite.T())
}

func (suite *PurchasingServiceTestSuite) TestAllocatePONumber_ProbesSourceRefs() {
	ctx := context.Background()

	suite.mockSettingsSvc.On("AllocatePONumber", ctx, suite.tenantID).Return("PO-7", nil).Once()

	number, err := suite.service.AllocatePONumber(ctx, suite.tenantID)

	suite.Require().NoError(err)
	suite.Equal("PO-7", number)
	suite.mockSettingsSvc.AssertExpectations(suite.T())
}
