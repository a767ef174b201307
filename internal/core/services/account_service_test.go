package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Corely-AI/corely-ledger/internal/apperrors"
	"github.com/Corely-AI/corely-ledger/internal/core/domain"
	portssvc "github.com/Corely-AI/corely-ledger/internal/core/ports/services"
	"github.com/Corely-AI/corely-ledger/internal/core/services"
	"github.com/Corely-AI/corely-ledger/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade

	tenantID string
	userID   string
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "1000",
		Name:        "Cash",
		AccountType: "ASSET",
	}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.tenantID, "1000").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.LedgerAccount")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.tenantID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal("1000", account.Code)
	suite.Equal(domain.Asset, account.AccountType)
	suite.True(account.IsActive)
	suite.Equal(suite.userID, account.CreatedBy)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCodeConflict() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "1000", Name: "Cash", AccountType: "ASSET"}
	existing := &domain.LedgerAccount{AccountID: uuid.NewString(), TenantID: suite.tenantID, Code: "1000"}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.tenantID, "1000").Return(existing, nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnknownTypeRejected() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "1000", Name: "Cash", AccountType: "SAVINGS"}

	account, err := suite.service.CreateAccount(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	ctx := context.Background()
	account := &domain.LedgerAccount{
		AccountID:   uuid.NewString(),
		TenantID:    suite.tenantID,
		Code:        "6000",
		Name:        "Office Supplies",
		AccountType: domain.Expense,
		IsActive:    true,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.tenantID, account.AccountID).Return(account, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.LedgerAccount")).Return(nil).Once()

	updated, err := suite.service.DeactivateAccount(ctx, suite.tenantID, account.AccountID, suite.userID)

	suite.Require().NoError(err)
	suite.False(updated.IsActive)
	suite.Equal(suite.userID, updated.LastUpdatedBy)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_CrossTenantObscured() {
	ctx := context.Background()
	foreign := &domain.LedgerAccount{
		AccountID: uuid.NewString(),
		TenantID:  uuid.NewString(),
		Code:      "1000",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.tenantID, foreign.AccountID).Return(foreign, nil).Once()

	account, err := suite.service.GetAccountByID(ctx, suite.tenantID, foreign.AccountID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NoFieldsIsNoop() {
	ctx := context.Background()
	account := &domain.LedgerAccount{
		AccountID: uuid.NewString(),
		TenantID:  suite.tenantID,
		Code:      "2000",
		Name:      "Accounts Payable",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.tenantID, account.AccountID).Return(account, nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, suite.tenantID, account.AccountID, dto.UpdateAccountRequest{}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Accounts Payable", updated.Name)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}
