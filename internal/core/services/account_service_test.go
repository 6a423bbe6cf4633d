package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	portssvc "github.com/Murlidhar08/settlr-sub001/internal/core/ports/services"
	"github.com/Murlidhar08/settlr-sub001/internal/core/services"
	"github.com/Murlidhar08/settlr-sub001/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	accountRepo *MockAccountRepository
	txnReader   *MockTransactionReader
	partyReader *MockPartyReader
	authorizer  *MockAuthorizer
	service     portssvc.AccountSvcFacade
	auth        domain.AuthContext
	ctx         context.Context
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.accountRepo = new(MockAccountRepository)
	s.txnReader = new(MockTransactionReader)
	s.partyReader = new(MockPartyReader)
	s.authorizer = new(MockAuthorizer)
	s.service = services.NewAccountService(passthroughTx{}, s.accountRepo, s.txnReader, s.partyReader,
		services.WithBusinessAuthorizer(s.authorizer))
	s.auth = domain.AuthContext{UserID: "user-1", ActiveBusinessID: "biz-1"}
	s.ctx = context.Background()
	s.authorizer.On("AuthorizeOwner", mock.Anything, "user-1", "biz-1").Return(nil).Maybe()
}

func (s *AccountServiceTestSuite) TearDownTest() {
	s.accountRepo.AssertExpectations(s.T())
	s.txnReader.AssertExpectations(s.T())
	s.partyReader.AssertExpectations(s.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func moneyType(m domain.MoneyType) *domain.MoneyType { return &m }

func (s *AccountServiceTestSuite) systemCash() *domain.Account {
	return &domain.Account{
		AccountID:   "cash",
		BusinessID:  "biz-1",
		Name:        "Cash",
		AccountType: domain.AccountTypeMoney,
		MoneyType:   moneyType(domain.MoneyTypeCash),
		Status:      domain.AccountStatusSystem,
	}
}

func (s *AccountServiceTestSuite) TestCreateAccount_Success() {
	req := dto.CreateAccountRequest{
		Name:        "  HDFC Savings ",
		AccountType: domain.AccountTypeMoney,
		MoneyType:   moneyType(domain.MoneyTypeBank),
	}
	s.accountRepo.On("SaveAccount", mock.Anything, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == "HDFC Savings" && a.BusinessID == "biz-1" && a.Status == domain.AccountStatusActive && a.CreatedBy == "user-1"
	})).Return(nil).Once()

	account, err := s.service.CreateAccount(s.ctx, s.auth, req)

	s.Require().NoError(err)
	s.NotEmpty(account.AccountID)
	s.Equal(domain.AccountStatusActive, account.Status)
}

func (s *AccountServiceTestSuite) TestCreateAccount_BlankNameIsValidationError() {
	_, err := s.service.CreateAccount(s.ctx, s.auth, dto.CreateAccountRequest{Name: "   ", AccountType: domain.AccountTypeCategory})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.accountRepo.AssertNotCalled(s.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestCreateAccount_ForeignPartyRejected() {
	partyID := "party-of-other-business"
	req := dto.CreateAccountRequest{
		Name:        "Ravi",
		AccountType: domain.AccountTypeParty,
		PartyID:     &partyID,
	}
	s.partyReader.On("FindPartyByID", mock.Anything, "biz-1", partyID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.CreateAccount(s.ctx, s.auth, req)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AccountServiceTestSuite) TestCreateAccount_NoBusinessIsUnauthorized() {
	_, err := s.service.CreateAccount(s.ctx, domain.AuthContext{UserID: "user-1"}, dto.CreateAccountRequest{Name: "x", AccountType: domain.AccountTypeCategory})
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *AccountServiceTestSuite) TestCreateAccount_NotOwnerIsUnauthorized() {
	auth := domain.AuthContext{UserID: "user-1", ActiveBusinessID: "biz-2"}
	s.authorizer.On("AuthorizeOwner", mock.Anything, "user-1", "biz-2").Return(apperrors.NewUnauthorizedError("business not accessible")).Once()

	_, err := s.service.CreateAccount(s.ctx, auth, dto.CreateAccountRequest{Name: "x", AccountType: domain.AccountTypeCategory})
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *AccountServiceTestSuite) TestUpdateAccount_SystemReclassifyIsProtected() {
	s.accountRepo.On("FindAccountByID", mock.Anything, "biz-1", "cash").Return(s.systemCash(), nil).Once()

	_, err := s.service.UpdateAccount(s.ctx, s.auth, "cash", dto.UpdateAccountRequest{MoneyType: moneyType(domain.MoneyTypeWallet)})

	s.ErrorIs(err, apperrors.ErrProtectedResource)
	s.accountRepo.AssertNotCalled(s.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestUpdateAccount_SystemRenameAllowed() {
	name := "Petty Cash"
	s.accountRepo.On("FindAccountByID", mock.Anything, "biz-1", "cash").Return(s.systemCash(), nil).Once()
	s.accountRepo.On("UpdateAccount", mock.Anything, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == name && a.Status == domain.AccountStatusSystem && a.LastUpdatedBy == "user-1"
	})).Return(nil).Once()

	account, err := s.service.UpdateAccount(s.ctx, s.auth, "cash", dto.UpdateAccountRequest{Name: &name})

	s.Require().NoError(err)
	s.Equal(name, account.Name)
}

func (s *AccountServiceTestSuite) TestUpdateAccount_TypeChangeIsImmutable() {
	category := domain.AccountTypeCategory
	existing := &domain.Account{AccountID: "a1", BusinessID: "biz-1", Name: "Wallet", AccountType: domain.AccountTypeMoney, Status: domain.AccountStatusActive}
	s.accountRepo.On("FindAccountByID", mock.Anything, "biz-1", "a1").Return(existing, nil).Once()

	_, err := s.service.UpdateAccount(s.ctx, s.auth, "a1", dto.UpdateAccountRequest{AccountType: &category})
	s.ErrorIs(err, apperrors.ErrImmutableField)
}

func (s *AccountServiceTestSuite) TestDeleteAccount_Outcomes() {
	tests := []struct {
		name       string
		references int64
		outcome    domain.DeletionOutcome
		message    string
		setup      func()
	}{
		{
			name:       "unused account is deleted",
			references: 0,
			outcome:    domain.DeletionOutcomeDeleted,
			message:    domain.AccountDeletedMessage,
			setup: func() {
				s.accountRepo.On("DeleteAccount", mock.Anything, "biz-1", "a1").Return(nil).Once()
			},
		},
		{
			name:       "referenced account is deactivated",
			references: 3,
			outcome:    domain.DeletionOutcomeDeactivated,
			message:    domain.AccountDeactivatedMessage,
			setup: func() {
				s.accountRepo.On("DeactivateAccount", mock.Anything, "biz-1", "a1", "user-1", mock.Anything).Return(nil).Once()
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			existing := &domain.Account{AccountID: "a1", BusinessID: "biz-1", Name: "Old", AccountType: domain.AccountTypeCategory, Status: domain.AccountStatusActive}
			s.accountRepo.On("FindAccountByIDForUpdate", mock.Anything, "biz-1", "a1").Return(existing, nil).Once()
			s.txnReader.On("CountTransactionsByAccount", mock.Anything, "biz-1", "a1").Return(tt.references, nil).Once()
			tt.setup()

			result, err := s.service.DeleteAccount(s.ctx, s.auth, "a1")

			s.Require().NoError(err)
			s.Equal(tt.outcome, result.Outcome)
			s.Equal(tt.message, result.Message)
			s.accountRepo.AssertExpectations(s.T())
		})
	}
}

func (s *AccountServiceTestSuite) TestDeleteAccount_SystemIsProtected() {
	s.accountRepo.On("FindAccountByIDForUpdate", mock.Anything, "biz-1", "cash").Return(s.systemCash(), nil).Once()
	s.txnReader.On("CountTransactionsByAccount", mock.Anything, "biz-1", "cash").Return(int64(0), nil).Once()

	_, err := s.service.DeleteAccount(s.ctx, s.auth, "cash")

	s.ErrorIs(err, apperrors.ErrProtectedResource)
	s.accountRepo.AssertNotCalled(s.T(), "DeleteAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestDeleteAccount_RepositoryFailurePropagates() {
	boom := errors.New("connection reset")
	s.accountRepo.On("FindAccountByIDForUpdate", mock.Anything, "biz-1", "a1").Return(nil, boom).Once()

	_, err := s.service.DeleteAccount(s.ctx, s.auth, "a1")
	s.ErrorIs(err, boom)
}

func (s *AccountServiceTestSuite) TestListAccounts_NoActiveBusinessIsEmpty() {
	accounts, err := s.service.ListAccounts(s.ctx, domain.AuthContext{UserID: "user-1"})
	s.Require().NoError(err)
	s.Empty(accounts)
}
