package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	portssvc "github.com/Murlidhar08/settlr-sub001/internal/core/ports/services"
	"github.com/Murlidhar08/settlr-sub001/internal/dto"
	"github.com/Murlidhar08/settlr-sub001/internal/handlers"
	"github.com/Murlidhar08/settlr-sub001/internal/platform/config"
	"github.com/Murlidhar08/settlr-sub001/internal/utils"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ListAccounts(ctx context.Context, auth domain.AuthContext) ([]domain.Account, error) {
	args := m.Called(ctx, auth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccount(ctx context.Context, auth domain.AuthContext, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, auth, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, auth domain.AuthContext, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, auth, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, auth domain.AuthContext, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, auth, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, auth domain.AuthContext, accountID string) (*domain.DeleteAccountResult, error) {
	args := m.Called(ctx, auth, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeleteAccountResult), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock BalanceService ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) ListAccountBalances(ctx context.Context, auth domain.AuthContext) ([]domain.AccountBalance, error) {
	args := m.Called(ctx, auth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}

func (m *MockBalanceService) GetAccountBalance(ctx context.Context, auth domain.AuthContext, accountID string) (*domain.AccountBalance, error) {
	args := m.Called(ctx, auth, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountBalance), args.Error(1)
}

func (m *MockBalanceService) GetBalanceSummary(ctx context.Context, auth domain.AuthContext) (*domain.BalanceSummary, error) {
	args := m.Called(ctx, auth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSummary), args.Error(1)
}

var _ portssvc.BalanceSvc = (*MockBalanceService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	mockBalanceService *MockBalanceService
	jwtSecret          string
	auth               domain.AuthContext
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.auth = domain.AuthContext{UserID: uuid.NewString(), ActiveBusinessID: uuid.NewString()}

	suite.mockAccountService = new(MockAccountService)
	suite.mockBalanceService = new(MockBalanceService)

	services := &portssvc.ServiceContainer{
		Account: suite.mockAccountService,
		Balance: suite.mockBalanceService,
	}
	handlers.RegisterRoutes(suite.router, &config.Config{JWTSecret: suite.jwtSecret}, services, handlers.RouteOptions{})
}

func (suite *AccountHandlerTestSuite) TearDownTest() {
	suite.mockAccountService.AssertExpectations(suite.T())
	suite.mockBalanceService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) generateTestToken() string {
	token, err := utils.GenerateJWT(suite.auth.UserID, suite.auth.ActiveBusinessID, suite.jwtSecret, time.Hour, "settlr-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *AccountHandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AccountHandlerTestSuite) errorMessage(w *httptest.ResponseRecorder) string {
	var body handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	income := domain.CategoryTypeIncome
	created := &domain.Account{
		AccountID:    uuid.NewString(),
		BusinessID:   suite.auth.ActiveBusinessID,
		Name:         "Sales",
		AccountType:  domain.AccountTypeCategory,
		CategoryType: &income,
		Status:       domain.AccountStatusActive,
	}
	suite.mockAccountService.On("CreateAccount", mock.Anything, suite.auth, mock.MatchedBy(func(r dto.CreateAccountRequest) bool {
		return r.Name == "Sales" && r.AccountType == domain.AccountTypeCategory
	})).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", map[string]any{
		"name": "Sales", "accountType": "CATEGORY", "categoryType": "INCOME",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.AccountID, resp.AccountID)
	suite.True(resp.IsActive)
	suite.False(resp.IsSystem)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_InvalidType() {
	w := suite.do(http.MethodPost, "/api/v1/accounts", map[string]any{"name": "Sales", "accountType": "ASSET"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorMessage(w), "Invalid request format")
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_ServiceValidationError() {
	suite.mockAccountService.On("CreateAccount", mock.Anything, suite.auth, mock.Anything).
		Return(nil, fmt.Errorf("%w: moneyType is only allowed on MONEY accounts", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", map[string]any{
		"name": "Sales", "accountType": "CATEGORY", "moneyType": "CASH",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorMessage(w), "moneyType")
}

func (suite *AccountHandlerTestSuite) TestRequestWithoutTokenIsUnauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestUpdateAccount_StatusMapping() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"protected system account", fmt.Errorf("%w: system account %q can only be renamed", apperrors.ErrProtectedResource, "Cash"), http.StatusConflict},
		{"immutable type", fmt.Errorf("%w: account type cannot be changed", apperrors.ErrImmutableField), http.StatusConflict},
		{"missing account", apperrors.ErrNotFound, http.StatusNotFound},
		{"foreign business", apperrors.NewUnauthorizedError("business not accessible"), http.StatusUnauthorized},
		{"storage failure", fmt.Errorf("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			accountID := uuid.NewString()
			suite.mockAccountService.On("UpdateAccount", mock.Anything, suite.auth, accountID, mock.Anything).Return(nil, tt.err).Once()

			w := suite.do(http.MethodPut, "/api/v1/accounts/"+accountID, map[string]any{"moneyType": "WALLET"})

			suite.Equal(tt.status, w.Code)
			if tt.status == http.StatusInternalServerError {
				suite.Equal("Failed to update account", suite.errorMessage(w))
			}
		})
	}
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_Deactivated() {
	accountID := uuid.NewString()
	suite.mockAccountService.On("DeleteAccount", mock.Anything, suite.auth, accountID).Return(&domain.DeleteAccountResult{
		Outcome: domain.DeletionOutcomeDeactivated,
		Message: domain.AccountDeactivatedMessage,
	}, nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/accounts/"+accountID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DeleteAccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal(domain.DeletionOutcomeDeactivated, resp.Outcome)
	suite.Equal(domain.AccountDeactivatedMessage, resp.Message)
}

func (suite *AccountHandlerTestSuite) TestGetAccountBalance() {
	accountID := uuid.NewString()
	cash := domain.MoneyTypeCash
	suite.mockBalanceService.On("GetAccountBalance", mock.Anything, suite.auth, accountID).Return(&domain.AccountBalance{
		Account: domain.Account{AccountID: accountID, Name: "Cash", AccountType: domain.AccountTypeMoney, MoneyType: &cash, Status: domain.AccountStatusSystem},
		Balance: decimal.NewFromInt(-100),
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/"+accountID+"/balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(decimal.NewFromInt(-100).Equal(resp.Balance))
	suite.True(resp.IsSystem)
}

// --- Run Test Suite ---
func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
