package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bukukita/bkk_backend/internal/core/domain"
	portssvc "github.com/bukukita/bkk_backend/internal/core/ports/services"
	"github.com/bukukita/bkk_backend/internal/core/services"
	"github.com/bukukita/bkk_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	mockAuthorizer  *MockBusinessAuthorizer
	service         portssvc.TransactionService

	businessID string
	userID     string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockAuthorizer = new(MockBusinessAuthorizer)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockAccountRepo,
		services.WithTransactionBusinessAuthorizer(suite.mockAuthorizer))
	suite.businessID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *TransactionServiceTestSuite) expectAuthorized(role domain.BusinessRole) {
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.businessID, role).Return(nil)
}

func (suite *TransactionServiceTestSuite) account(code, name string, accountType domain.AccountType) domain.Account {
	return domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  suite.businessID,
		AccountCode: code,
		Name:        name,
		AccountType: accountType,
		IsActive:    true,
	}
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	suite.expectAuthorized(domain.RoleManager)

	expense := suite.account("5110", "General Expenses", domain.Expense)
	cash := suite.account("1110", "Cash", domain.Asset)

	req := dto.CreateTransactionRequest{
		Date:            "2026-03-15",
		Name:            "Office supplies",
		Amount:          decimal.NewFromInt(250000),
		DebitAccountID:  expense.AccountID,
		CreditAccountID: cash.AccountID,
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, suite.businessID, []string{expense.AccountID, cash.AccountID}).
		Return(map[string]domain.Account{expense.AccountID: expense, cash.AccountID: cash}, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, result, err := suite.service.CreateTransaction(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(result.IsValid)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(domain.CategoryOpex, txn.Category)
	suite.True(txn.IsDoubleEntry())
	posting := txn.Posting.(domain.DoubleEntryPosting)
	suite.Equal(expense.AccountID, posting.DebitAccountID)
	suite.Equal(cash.AccountID, posting.CreditAccountID)
	suite.Equal(suite.userID, txn.CreatedBy)

	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ExplicitCategoryWins() {
	ctx := context.Background()
	suite.expectAuthorized(domain.RoleManager)

	expense := suite.account("5110", "General Expenses", domain.Expense)
	cash := suite.account("1110", "Cash", domain.Asset)

	req := dto.CreateTransactionRequest{
		Date:            "2026-03-15",
		Name:            "Annual tax payment",
		Amount:          decimal.NewFromInt(500000),
		DebitAccountID:  expense.AccountID,
		CreditAccountID: cash.AccountID,
		Category:        domain.CategoryTax,
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, suite.businessID, []string{expense.AccountID, cash.AccountID}).
		Return(map[string]domain.Account{expense.AccountID: expense, cash.AccountID: cash}, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, result, err := suite.service.CreateTransaction(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(result.IsValid)
	suite.Equal(domain.CategoryTax, txn.Category)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_SameAccountNotPersisted() {
	ctx := context.Background()
	suite.expectAuthorized(domain.RoleManager)

	cash := suite.account("1110", "Cash", domain.Asset)

	req := dto.CreateTransactionRequest{
		Date:            "2026-03-15",
		Name:            "Broken entry",
		Amount:          decimal.NewFromInt(1000),
		DebitAccountID:  cash.AccountID,
		CreditAccountID: cash.AccountID,
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, suite.businessID, []string{cash.AccountID, cash.AccountID}).
		Return(map[string]domain.Account{cash.AccountID: cash}, nil).Once()

	txn, result, err := suite.service.CreateTransaction(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Nil(txn)
	suite.False(result.IsValid)
	codes := make([]string, 0, len(result.Errors))
	for _, issue := range result.Errors {
		codes = append(codes, issue.Code)
	}
	suite.Contains(codes, domain.CodeSameAccount)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Forbidden() {
	ctx := context.Background()
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.businessID, domain.RoleManager).
		Return(assert.AnError).Once()

	txn, _, err := suite.service.CreateTransaction(ctx, suite.businessID, dto.CreateTransactionRequest{}, suite.userID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountsByIDs", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateQuickTransaction_ExpenseDebitsSelected() {
	ctx := context.Background()
	suite.expectAuthorized(domain.RoleManager)

	expense := suite.account("5110", "General Expenses", domain.Expense)
	cash := suite.account("1110", "Cash", domain.Asset)
	chart := []domain.Account{cash, expense}

	req := dto.QuickTransactionRequest{
		Date:              "2026-04-01",
		Name:              "Electricity",
		Notes:             "April bill",
		Amount:            decimal.NewFromInt(150000),
		SelectedAccountID: expense.AccountID,
	}

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.businessID).Return(chart, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, suite.businessID, []string{expense.AccountID, cash.AccountID}).
		Return(map[string]domain.Account{expense.AccountID: expense, cash.AccountID: cash}, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, result, err := suite.service.CreateQuickTransaction(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(result.IsValid)
	suite.Require().NotNil(txn)
	posting := txn.Posting.(domain.DoubleEntryPosting)
	suite.Equal(expense.AccountID, posting.DebitAccountID)
	suite.Equal(cash.AccountID, posting.CreditAccountID)
	suite.Equal(domain.CategoryOpex, txn.Category)
	suite.Equal("April bill", txn.Description)
}

func (suite *TransactionServiceTestSuite) TestCreateQuickTransaction_CashSelectedRejected() {
	ctx := context.Background()
	suite.expectAuthorized(domain.RoleManager)

	cash := suite.account("1110", "Cash", domain.Asset)
	bank := suite.account("1120", "Bank", domain.Asset)
	chart := []domain.Account{cash, bank}

	req := dto.QuickTransactionRequest{
		Date:              "2026-04-01",
		Name:              "Transfer",
		Amount:            decimal.NewFromInt(100000),
		SelectedAccountID: bank.AccountID,
	}

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.businessID).Return(chart, nil).Once()

	txn, result, err := suite.service.CreateQuickTransaction(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Nil(txn)
	suite.False(result.IsValid)
	suite.Require().Len(result.Errors, 1)
	suite.Equal(domain.CodeAccountNotFound, result.Errors[0].Code)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateQuickTransaction_BadDate() {
	ctx := context.Background()
	suite.expectAuthorized(domain.RoleManager)
	suite.mockAccountRepo.On("ListAccounts", ctx, suite.businessID).Return([]domain.Account{}, nil).Once()

	req := dto.QuickTransactionRequest{
		Date:              "01/04/2026",
		Name:              "Electricity",
		Amount:            decimal.NewFromInt(150000),
		SelectedAccountID: uuid.NewString(),
	}

	txn, result, err := suite.service.CreateQuickTransaction(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Nil(txn)
	suite.False(result.IsValid)
	suite.Require().Len(result.Errors, 1)
	suite.Equal(domain.CodeInvalidDate, result.Errors[0].Code)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_RevalidatesPair() {
	ctx := context.Background()
	suite.expectAuthorized(domain.RoleManager)

	expense := suite.account("5110", "General Expenses", domain.Expense)
	cash := suite.account("1110", "Cash", domain.Asset)
	txnID := uuid.NewString()
	existing := &domain.Transaction{
		TransactionID: txnID,
		BusinessID:    suite.businessID,
		Date:          time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Category:      domain.CategoryOpex,
		Name:          "Office supplies",
		Amount:        decimal.NewFromInt(250000),
		Posting: domain.DoubleEntryPosting{
			DebitAccountID:  expense.AccountID,
			CreditAccountID: cash.AccountID,
		},
	}

	newAmount := decimal.NewFromInt(300000)
	req := dto.UpdateTransactionRequest{Amount: &newAmount}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.businessID, txnID).Return(existing, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, suite.businessID, []string{expense.AccountID, cash.AccountID}).
		Return(map[string]domain.Account{expense.AccountID: expense, cash.AccountID: cash}, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	updated, result, err := suite.service.UpdateTransaction(ctx, suite.businessID, txnID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(result.IsValid)
	suite.True(updated.Amount.Equal(newAmount))
	suite.Equal(suite.userID, updated.LastUpdatedBy)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_InvalidAmountNotPersisted() {
	ctx := context.Background()
	suite.expectAuthorized(domain.RoleManager)

	expense := suite.account("5110", "General Expenses", domain.Expense)
	cash := suite.account("1110", "Cash", domain.Asset)
	txnID := uuid.NewString()
	existing := &domain.Transaction{
		TransactionID: txnID,
		BusinessID:    suite.businessID,
		Date:          time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Category:      domain.CategoryOpex,
		Name:          "Office supplies",
		Amount:        decimal.NewFromInt(250000),
		Posting: domain.DoubleEntryPosting{
			DebitAccountID:  expense.AccountID,
			CreditAccountID: cash.AccountID,
		},
	}

	zero := decimal.Zero
	req := dto.UpdateTransactionRequest{Amount: &zero}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.businessID, txnID).Return(existing, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, suite.businessID, []string{expense.AccountID, cash.AccountID}).
		Return(map[string]domain.Account{expense.AccountID: expense, cash.AccountID: cash}, nil).Once()

	updated, result, err := suite.service.UpdateTransaction(ctx, suite.businessID, txnID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Nil(updated)
	suite.False(result.IsValid)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestSoftDeleteAndRestore() {
	ctx := context.Background()
	txnID := uuid.NewString()
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.businessID, domain.RoleManager).Return(nil).Twice()
	suite.mockTxnRepo.On("SoftDeleteTransaction", ctx, suite.businessID, txnID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockTxnRepo.On("RestoreTransaction", ctx, suite.businessID, txnID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	suite.Require().NoError(suite.service.SoftDeleteTransaction(ctx, suite.businessID, txnID, suite.userID))
	suite.Require().NoError(suite.service.RestoreTransaction(ctx, suite.businessID, txnID, suite.userID))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestReclassifyStockToCOGS_Success() {
	ctx := context.Background()
	suite.expectAuthorized(domain.RoleManager)

	inventory := suite.account("1130", "Persediaan Barang", domain.Asset)
	cash := suite.account("1110", "Cash", domain.Asset)
	expenseParent := suite.account("5100", "Operating Expenses", domain.Expense)
	cogs := suite.account("5210", "Cost of Goods Sold (HPP)", domain.Expense)
	cogs.ParentAccountID = expenseParent.AccountID

	txnID := uuid.NewString()
	stockTxn := &domain.Transaction{
		TransactionID: txnID,
		BusinessID:    suite.businessID,
		Date:          time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
		Category:      domain.CategoryVar,
		Name:          "Supplier",
		Amount:        decimal.NewFromInt(750000),
		Posting: domain.DoubleEntryPosting{
			DebitAccountID:  inventory.AccountID,
			CreditAccountID: cash.AccountID,
		},
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.businessID, txnID).Return(stockTxn, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.businessID, inventory.AccountID).Return(&inventory, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx, suite.businessID).
		Return([]domain.Account{cash, inventory, expenseParent, cogs}, nil).Once()
	suite.mockTxnRepo.On("UpdateDebitAccount", ctx, suite.businessID, txnID, cogs.AccountID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	updated, err := suite.service.ReclassifyStockToCOGS(ctx, suite.businessID, txnID, suite.userID)

	suite.Require().NoError(err)
	posting := updated.Posting.(domain.DoubleEntryPosting)
	suite.Equal(cogs.AccountID, posting.DebitAccountID)
	suite.Equal(cash.AccountID, posting.CreditAccountID)
	suite.True(updated.Amount.Equal(decimal.NewFromInt(750000)))
	suite.Equal(domain.CategoryVar, updated.Category)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestReclassifyStockToCOGS_NotStock() {
	ctx := context.Background()
	suite.expectAuthorized(domain.RoleManager)

	expense := suite.account("5110", "General Expenses", domain.Expense)
	cash := suite.account("1110", "Cash", domain.Asset)
	txnID := uuid.NewString()
	opexTxn := &domain.Transaction{
		TransactionID: txnID,
		BusinessID:    suite.businessID,
		Category:      domain.CategoryOpex,
		Amount:        decimal.NewFromInt(1000),
		Posting: domain.DoubleEntryPosting{
			DebitAccountID:  expense.AccountID,
			CreditAccountID: cash.AccountID,
		},
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.businessID, txnID).Return(opexTxn, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.businessID, expense.AccountID).Return(&expense, nil).Once()

	updated, err := suite.service.ReclassifyStockToCOGS(ctx, suite.businessID, txnID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrNotStockTransaction)
	suite.Nil(updated)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateDebitAccount",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
