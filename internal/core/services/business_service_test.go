package services_test

import (
	"context"
	"testing"

	"github.com/bukukita/bkk_backend/internal/apperrors"
	"github.com/bukukita/bkk_backend/internal/core/domain"
	portssvc "github.com/bukukita/bkk_backend/internal/core/ports/services"
	"github.com/bukukita/bkk_backend/internal/core/services"
	"github.com/bukukita/bkk_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountService is a mock type for the AccountService interface
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, businessID, accountID, userID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, businessID, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, businessID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, businessID, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accountID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, businessID, accountID, userID string) error {
	args := m.Called(ctx, businessID, accountID, userID)
	return args.Error(0)
}

func (m *MockAccountService) SeedSystemAccounts(ctx context.Context, businessID, creatorUserID string) error {
	args := m.Called(ctx, businessID, creatorUserID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type BusinessServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockBusinessRepository
	mockAccountSvc *MockAccountService
	service        portssvc.BusinessService
}

func (suite *BusinessServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBusinessRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.service = services.NewBusinessService(suite.mockRepo, suite.mockAccountSvc)
}

// --- Test Cases ---

func (suite *BusinessServiceTestSuite) TestCreateBusiness_SeedsChart() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateBusinessRequest{Name: "Warung Sejahtera"}

	var savedBusiness domain.Business
	var savedOwner domain.BusinessMember
	suite.mockRepo.On("SaveBusiness", ctx, mock.AnythingOfType("domain.Business"), mock.AnythingOfType("domain.BusinessMember")).
		Run(func(args mock.Arguments) {
			savedBusiness = args.Get(1).(domain.Business)
			savedOwner = args.Get(2).(domain.BusinessMember)
		}).Return(nil).Once()
	suite.mockAccountSvc.On("SeedSystemAccounts", ctx, mock.AnythingOfType("string"), creatorUserID).Return(nil).Once()

	business, err := suite.service.CreateBusiness(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(business)
	suite.Equal(req.Name, business.Name)
	suite.Equal(business.BusinessID, savedBusiness.BusinessID)
	suite.Equal(domain.RoleOwner, savedOwner.Role)
	suite.Equal(creatorUserID, savedOwner.UserID)
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *BusinessServiceTestSuite) TestAuthorizeUserAction_RoleRanking() {
	ctx := context.Background()
	businessID := uuid.NewString()
	userID := uuid.NewString()

	cases := []struct {
		held     domain.BusinessRole
		required domain.BusinessRole
		allowed  bool
	}{
		{domain.RoleOwner, domain.RoleManager, true},
		{domain.RoleManager, domain.RoleManager, true},
		{domain.RoleInvestor, domain.RoleManager, false},
		{domain.RoleInvestor, domain.RoleInvestor, true},
		{domain.RoleManager, domain.RoleOwner, false},
	}

	for _, tc := range cases {
		member := &domain.BusinessMember{BusinessID: businessID, UserID: userID, Role: tc.held}
		suite.mockRepo.On("FindMembership", ctx, businessID, userID).Return(member, nil).Once()

		err := suite.service.AuthorizeUserAction(ctx, userID, businessID, tc.required)
		if tc.allowed {
			suite.NoError(err, "role %s should satisfy %s", tc.held, tc.required)
		} else {
			suite.ErrorIs(err, apperrors.ErrForbidden, "role %s should not satisfy %s", tc.held, tc.required)
		}
	}
}

func (suite *BusinessServiceTestSuite) TestAuthorizeUserAction_NoMembership() {
	ctx := context.Background()
	businessID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockRepo.On("FindMembership", ctx, businessID, userID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AuthorizeUserAction(ctx, userID, businessID, domain.RoleInvestor)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BusinessServiceTestSuite) TestListBusinessesForUser() {
	ctx := context.Background()
	userID := uuid.NewString()
	expected := []domain.Business{{BusinessID: uuid.NewString(), Name: "Toko A"}}

	suite.mockRepo.On("ListBusinessesByUser", ctx, userID).Return(expected, nil).Once()

	businesses, err := suite.service.ListBusinessesForUser(ctx, userID)
	suite.Require().NoError(err)
	suite.Equal(expected, businesses)
}

func TestBusinessServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BusinessServiceTestSuite))
}
