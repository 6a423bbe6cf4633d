package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"google.golang.org/api/idtoken"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	portssvc "github.com/Murlidhar08/settlr-sub001/internal/core/ports/services"
	"github.com/Murlidhar08/settlr-sub001/internal/core/services"
	"github.com/Murlidhar08/settlr-sub001/internal/dto"
	"github.com/Murlidhar08/settlr-sub001/internal/platform/config"
	"github.com/Murlidhar08/settlr-sub001/internal/repositories/database/memory"
	"github.com/Murlidhar08/settlr-sub001/internal/utils"
)

const testSecret = "ledger-scenario-secret"

// LedgerScenarioSuite drives the service container against the in-memory store.
type LedgerScenarioSuite struct {
	suite.Suite
	ctx    context.Context
	google *MockGoogleOAuth
	svc    *portssvc.ServiceContainer
	auth   domain.AuthContext
	cash   domain.Account
}

func TestLedgerScenarioSuite(t *testing.T) {
	suite.Run(t, new(LedgerScenarioSuite))
}

func (s *LedgerScenarioSuite) SetupTest() {
	s.ctx = context.Background()
	s.google = new(MockGoogleOAuth)
	cfg := &config.Config{
		JWTSecret:         testSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "settlr",
		DefaultCurrency:   "INR",
	}
	s.svc = services.NewServiceContainerWithOAuth(cfg, memory.NewRepositoryProvider(memory.NewStore()), s.google)

	session := s.register("asha@example.com", "Asha Stores")
	s.auth = domain.AuthContext{UserID: session.User.UserID, ActiveBusinessID: session.BusinessID}
	s.cash = s.systemAccount(s.auth, domain.MoneyTypeCash)
}

func (s *LedgerScenarioSuite) register(email, business string) *portssvc.Session {
	session, err := s.svc.Identity.Register(s.ctx, dto.RegisterRequest{
		Name:         "Asha",
		Email:        email,
		Password:     "correct horse",
		BusinessName: business,
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(session.BusinessID)
	return session
}

func (s *LedgerScenarioSuite) systemAccount(auth domain.AuthContext, moneyType domain.MoneyType) domain.Account {
	accounts, err := s.svc.Account.ListAccounts(s.ctx, auth)
	s.Require().NoError(err)
	for _, a := range accounts {
		if a.IsSystem() && a.MoneyType != nil && *a.MoneyType == moneyType {
			return a
		}
	}
	s.FailNow("system account not seeded", "money type %s", moneyType)
	return domain.Account{}
}

func (s *LedgerScenarioSuite) createCategory(name string, categoryType domain.CategoryType) domain.Account {
	account, err := s.svc.Account.CreateAccount(s.ctx, s.auth, dto.CreateAccountRequest{
		Name:         name,
		AccountType:  domain.AccountTypeCategory,
		CategoryType: &categoryType,
	})
	s.Require().NoError(err)
	return *account
}

func (s *LedgerScenarioSuite) record(from, to string, amount int64, partyID *string) domain.Transaction {
	txn, err := s.svc.Transaction.RecordTransaction(s.ctx, s.auth, dto.RecordTransactionRequest{
		Amount:        decimal.NewFromInt(amount),
		Date:          time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PaymentMode:   domain.PaymentModeCash,
		Direction:     domain.DirectionIn,
		FromAccountID: from,
		ToAccountID:   to,
		PartyID:       partyID,
	})
	s.Require().NoError(err)
	return *txn
}

func (s *LedgerScenarioSuite) balanceOf(accountID string) decimal.Decimal {
	balance, err := s.svc.Balance.GetAccountBalance(s.ctx, s.auth, accountID)
	s.Require().NoError(err)
	return balance.Balance
}

func (s *LedgerScenarioSuite) TestRegister_SeedsSystemAccounts() {
	accounts, err := s.svc.Account.ListAccounts(s.ctx, s.auth)
	s.Require().NoError(err)
	s.Len(accounts, len(domain.DefaultSystemAccounts))
	for _, a := range accounts {
		s.Equal(domain.AccountStatusSystem, a.Status)
	}

	claims, err := utils.ParseAndValidateJWT(s.mustLogin().Token, testSecret)
	s.Require().NoError(err)
	s.Equal(s.auth.UserID, claims.Subject)
	s.Equal(s.auth.ActiveBusinessID, claims.BusinessID)
}

func (s *LedgerScenarioSuite) mustLogin() *portssvc.Session {
	session, err := s.svc.Identity.Login(s.ctx, dto.LoginRequest{Email: "ASHA@example.com", Password: "correct horse"})
	s.Require().NoError(err)
	return session
}

func (s *LedgerScenarioSuite) TestRegister_DuplicateEmail() {
	_, err := s.svc.Identity.Register(s.ctx, dto.RegisterRequest{
		Name: "Other", Email: "Asha@Example.com", Password: "another pass", BusinessName: "Other",
	})
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *LedgerScenarioSuite) TestRegister_PasswordOverBcryptLimit() {
	_, err := s.svc.Identity.Register(s.ctx, dto.RegisterRequest{
		Name: "Long", Email: "long@example.com", Password: strings.Repeat("x", utils.MaxPasswordBytes+1), BusinessName: "Long",
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerScenarioSuite) TestLogin_WrongPassword() {
	_, err := s.svc.Identity.Login(s.ctx, dto.LoginRequest{Email: "asha@example.com", Password: "wrong"})
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *LedgerScenarioSuite) TestTransaction_MovesMoneyAndLedgerBalances() {
	sales := s.createCategory("Sales", domain.CategoryTypeIncome)
	s.record(s.cash.AccountID, sales.AccountID, 100, nil)

	s.True(decimal.NewFromInt(-100).Equal(s.balanceOf(s.cash.AccountID)))
	s.True(decimal.NewFromInt(100).Equal(s.balanceOf(sales.AccountID)))

	summary, err := s.svc.Balance.GetBalanceSummary(s.ctx, s.auth)
	s.Require().NoError(err)
	s.True(summary.Net.IsZero())
	s.True(summary.Balanced)
}

func (s *LedgerScenarioSuite) TestTransaction_Validation() {
	sales := s.createCategory("Sales", domain.CategoryTypeIncome)
	base := dto.RecordTransactionRequest{
		Amount:        decimal.NewFromInt(10),
		Date:          time.Now(),
		PaymentMode:   domain.PaymentModeUPI,
		Direction:     domain.DirectionOut,
		FromAccountID: s.cash.AccountID,
		ToAccountID:   sales.AccountID,
	}

	zero := base
	zero.Amount = decimal.Zero
	_, err := s.svc.Transaction.RecordTransaction(s.ctx, s.auth, zero)
	s.ErrorIs(err, apperrors.ErrValidation)

	same := base
	same.ToAccountID = s.cash.AccountID
	_, err = s.svc.Transaction.RecordTransaction(s.ctx, s.auth, same)
	s.ErrorIs(err, apperrors.ErrValidation)

	for _, amount := range []string{"0.00001", "1.00005", "123456789012345678"} {
		unstorable := base
		unstorable.Amount = decimal.RequireFromString(amount)
		_, err = s.svc.Transaction.RecordTransaction(s.ctx, s.auth, unstorable)
		s.ErrorIs(err, apperrors.ErrValidation, amount)
	}
	page, _, err := s.svc.Transaction.ListTransactions(s.ctx, s.auth, dto.ListTransactionsParams{Limit: 10})
	s.Require().NoError(err)
	s.Empty(page)

	missing := base
	missing.ToAccountID = "does-not-exist"
	_, err = s.svc.Transaction.RecordTransaction(s.ctx, s.auth, missing)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerScenarioSuite) TestTransaction_AmendmentKeepsAccounts() {
	sales := s.createCategory("Sales", domain.CategoryTypeIncome)
	rent := s.createCategory("Rent", domain.CategoryTypeExpense)
	original := s.record(s.cash.AccountID, sales.AccountID, 100, nil)

	amended, err := s.svc.Transaction.RecordTransaction(s.ctx, s.auth, dto.RecordTransactionRequest{
		TransactionID: original.TransactionID,
		Amount:        decimal.NewFromInt(250),
		Date:          original.Date,
		Description:   "corrected",
		PaymentMode:   domain.PaymentModeBank,
		Direction:     domain.DirectionIn,
		FromAccountID: s.cash.AccountID,
		ToAccountID:   rent.AccountID,
	})
	s.Require().NoError(err)
	s.Equal(sales.AccountID, amended.ToAccountID)
	s.Equal("corrected", amended.Description)
	s.True(decimal.NewFromInt(250).Equal(s.balanceOf(sales.AccountID)))
	s.True(s.balanceOf(rent.AccountID).IsZero())

	_, err = s.svc.Transaction.RecordTransaction(s.ctx, s.auth, dto.RecordTransactionRequest{
		TransactionID: original.TransactionID,
		Amount:        decimal.NewFromInt(-5),
		Date:          original.Date,
		PaymentMode:   domain.PaymentModeBank,
		Direction:     domain.DirectionIn,
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerScenarioSuite) TestAccount_SystemProtections() {
	wallet := domain.MoneyTypeWallet
	_, err := s.svc.Account.UpdateAccount(s.ctx, s.auth, s.cash.AccountID, dto.UpdateAccountRequest{MoneyType: &wallet})
	s.ErrorIs(err, apperrors.ErrProtectedResource)

	_, err = s.svc.Account.DeleteAccount(s.ctx, s.auth, s.cash.AccountID)
	s.ErrorIs(err, apperrors.ErrProtectedResource)

	name := "Galla"
	renamed, err := s.svc.Account.UpdateAccount(s.ctx, s.auth, s.cash.AccountID, dto.UpdateAccountRequest{Name: &name})
	s.Require().NoError(err)
	s.Equal(name, renamed.Name)
	s.Equal(domain.AccountStatusSystem, renamed.Status)
}

func (s *LedgerScenarioSuite) TestAccount_TypeIsImmutable() {
	sales := s.createCategory("Sales", domain.CategoryTypeIncome)
	money := domain.AccountTypeMoney
	_, err := s.svc.Account.UpdateAccount(s.ctx, s.auth, sales.AccountID, dto.UpdateAccountRequest{AccountType: &money})
	s.ErrorIs(err, apperrors.ErrImmutableField)
}

func (s *LedgerScenarioSuite) TestAccount_BlankNameRejected() {
	_, err := s.svc.Account.CreateAccount(s.ctx, s.auth, dto.CreateAccountRequest{Name: " ", AccountType: domain.AccountTypeCategory})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerScenarioSuite) TestAccount_DeleteUnusedRemovesIt() {
	misc := s.createCategory("Misc", domain.CategoryTypeExpense)

	result, err := s.svc.Account.DeleteAccount(s.ctx, s.auth, misc.AccountID)
	s.Require().NoError(err)
	s.Equal(domain.DeletionOutcomeDeleted, result.Outcome)

	_, err = s.svc.Account.GetAccount(s.ctx, s.auth, misc.AccountID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerScenarioSuite) TestAccount_DeleteReferencedDeactivatesIt() {
	sales := s.createCategory("Sales", domain.CategoryTypeIncome)
	s.record(s.cash.AccountID, sales.AccountID, 100, nil)

	result, err := s.svc.Account.DeleteAccount(s.ctx, s.auth, sales.AccountID)
	s.Require().NoError(err)
	s.Equal(domain.DeletionOutcomeDeactivated, result.Outcome)
	s.Equal(domain.AccountDeactivatedMessage, result.Message)

	account, err := s.svc.Account.GetAccount(s.ctx, s.auth, sales.AccountID)
	s.Require().NoError(err)
	s.Equal(domain.AccountStatusInactive, account.Status)

	accounts, err := s.svc.Account.ListAccounts(s.ctx, s.auth)
	s.Require().NoError(err)
	for _, a := range accounts {
		s.NotEqual(sales.AccountID, a.AccountID)
	}

	// The inactive account keeps its share, so the ledger still nets to zero.
	summary, err := s.svc.Balance.GetBalanceSummary(s.ctx, s.auth)
	s.Require().NoError(err)
	s.True(summary.Net.IsZero())

	_, err = s.svc.Transaction.RecordTransaction(s.ctx, s.auth, dto.RecordTransactionRequest{
		Amount:        decimal.NewFromInt(1),
		Date:          time.Now(),
		PaymentMode:   domain.PaymentModeCash,
		Direction:     domain.DirectionIn,
		FromAccountID: s.cash.AccountID,
		ToAccountID:   sales.AccountID,
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerScenarioSuite) TestBusinessIsolation() {
	other := s.register("ravi@example.com", "Ravi Traders")
	otherAuth := domain.AuthContext{UserID: other.User.UserID, ActiveBusinessID: other.BusinessID}
	sales := s.createCategory("Sales", domain.CategoryTypeIncome)

	_, err := s.svc.Account.GetAccount(s.ctx, otherAuth, sales.AccountID)
	s.ErrorIs(err, apperrors.ErrNotFound)

	hijack := domain.AuthContext{UserID: other.User.UserID, ActiveBusinessID: s.auth.ActiveBusinessID}
	_, err = s.svc.Account.ListAccounts(s.ctx, hijack)
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	otherCash := s.systemAccount(otherAuth, domain.MoneyTypeCash)
	_, err = s.svc.Transaction.RecordTransaction(s.ctx, s.auth, dto.RecordTransactionRequest{
		Amount:        decimal.NewFromInt(5),
		Date:          time.Now(),
		PaymentMode:   domain.PaymentModeCash,
		Direction:     domain.DirectionOut,
		FromAccountID: s.cash.AccountID,
		ToAccountID:   otherCash.AccountID,
	})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerScenarioSuite) TestPartyDeletionCascades() {
	party, err := s.svc.Party.CreateParty(s.ctx, s.auth, dto.CreatePartyRequest{Name: "Ravi", PartyType: domain.PartyTypeCustomer})
	s.Require().NoError(err)
	customer := domain.PartyTypeCustomer
	ledger, err := s.svc.Account.CreateAccount(s.ctx, s.auth, dto.CreateAccountRequest{
		Name:        "Ravi",
		AccountType: domain.AccountTypeParty,
		PartyType:   &customer,
		PartyID:     &party.PartyID,
	})
	s.Require().NoError(err)

	s.record(ledger.AccountID, s.cash.AccountID, 40, &party.PartyID)
	s.record(ledger.AccountID, s.cash.AccountID, 60, &party.PartyID)
	s.record(s.cash.AccountID, ledger.AccountID, 10, nil)

	deleted, err := s.svc.Party.DeleteParty(s.ctx, s.auth, party.PartyID)
	s.Require().NoError(err)
	s.EqualValues(2, deleted)

	account, err := s.svc.Account.GetAccount(s.ctx, s.auth, ledger.AccountID)
	s.Require().NoError(err)
	s.Nil(account.PartyID)
	s.True(decimal.NewFromInt(-10).Equal(s.balanceOf(s.cash.AccountID)))

	_, err = s.svc.Party.GetParty(s.ctx, s.auth, party.PartyID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerScenarioSuite) TestTransactionsPaginate() {
	sales := s.createCategory("Sales", domain.CategoryTypeIncome)
	for i := 1; i <= 5; i++ {
		_, err := s.svc.Transaction.RecordTransaction(s.ctx, s.auth, dto.RecordTransactionRequest{
			Amount:        decimal.NewFromInt(int64(i)),
			Date:          time.Date(2024, 3, i, 0, 0, 0, 0, time.UTC),
			PaymentMode:   domain.PaymentModeCash,
			Direction:     domain.DirectionIn,
			FromAccountID: s.cash.AccountID,
			ToAccountID:   sales.AccountID,
		})
		s.Require().NoError(err)
	}

	var seen []int64
	params := dto.ListTransactionsParams{Limit: 2}
	for {
		page, next, err := s.svc.Transaction.ListTransactions(s.ctx, s.auth, params)
		s.Require().NoError(err)
		for _, t := range page {
			seen = append(seen, t.Amount.IntPart())
		}
		if next == nil {
			break
		}
		params.NextToken = *next
	}
	s.Equal([]int64{5, 4, 3, 2, 1}, seen)
}

func (s *LedgerScenarioSuite) TestSwitchBusiness() {
	second, err := s.svc.Business.CreateBusiness(s.ctx, s.auth.UserID, "Asha Online")
	s.Require().NoError(err)

	session, err := s.svc.Identity.SwitchBusiness(s.ctx, s.auth, second.BusinessID)
	s.Require().NoError(err)
	s.Equal(second.BusinessID, session.BusinessID)

	// The next login lands on the business used last.
	s.Equal(second.BusinessID, s.mustLogin().BusinessID)

	other := s.register("ravi@example.com", "Ravi Traders")
	_, err = s.svc.Identity.SwitchBusiness(s.ctx, s.auth, other.BusinessID)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *LedgerScenarioSuite) TestGoogleSignIn() {
	s.google.On("ExchangeCodeForIDToken", mock.Anything, "code-1").Return("raw-token", nil).Once()
	s.google.On("ValidateGoogleIDToken", mock.Anything, "raw-token").Return(&idtoken.Payload{
		Subject: "google-sub-1",
		Claims:  map[string]interface{}{"email": "meera@example.com", "email_verified": true, "name": "Meera"},
	}, nil).Twice()
	s.google.On("ExchangeCodeForIDToken", mock.Anything, "code-2").Return("raw-token", nil).Once()

	first, err := s.svc.Identity.ExchangeGoogleCode(s.ctx, "code-1")
	s.Require().NoError(err)
	s.NotEmpty(first.BusinessID)
	s.Equal(domain.ProviderGoogle, first.User.AuthProvider)

	again, err := s.svc.Identity.ExchangeGoogleCode(s.ctx, "code-2")
	s.Require().NoError(err)
	s.Equal(first.User.UserID, again.User.UserID)
	s.Equal(first.BusinessID, again.BusinessID)
	s.google.AssertExpectations(s.T())
}

func (s *LedgerScenarioSuite) TestSettings() {
	settings, err := s.svc.Settings.GetSettings(s.ctx, s.auth.UserID)
	s.Require().NoError(err)
	s.Equal("INR", settings.CurrencyCode)
	s.Require().NotNil(settings.ActiveBusinessID)
	s.Equal(s.auth.ActiveBusinessID, *settings.ActiveBusinessID)

	usd := "usd"
	format := "YYYY-MM-DD"
	updated, err := s.svc.Settings.UpdateSettings(s.ctx, s.auth.UserID, dto.UpdateSettingsRequest{CurrencyCode: &usd, DateFormat: &format})
	s.Require().NoError(err)
	s.Equal("USD", updated.CurrencyCode)
	s.Equal(format, updated.DateFormat)

	bad := "dd.mm"
	_, err = s.svc.Settings.UpdateSettings(s.ctx, s.auth.UserID, dto.UpdateSettingsRequest{DateFormat: &bad})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerScenarioSuite) googleReturns(code, subject string, claims map[string]interface{}) {
	raw := "raw-" + code
	s.google.On("ExchangeCodeForIDToken", mock.Anything, code).Return(raw, nil).Once()
	s.google.On("ValidateGoogleIDToken", mock.Anything, raw).Return(&idtoken.Payload{Subject: subject, Claims: claims}, nil).Once()
}

func (s *LedgerScenarioSuite) TestGoogleSignIn_UnverifiedEmailCannotClaimAccount() {
	s.googleReturns("code-unverified", "other-sub", map[string]interface{}{
		"email": "asha@example.com", "email_verified": false,
	})

	session, err := s.svc.Identity.ExchangeGoogleCode(s.ctx, "code-unverified")

	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.Nil(session)
	s.google.AssertExpectations(s.T())
}

func (s *LedgerScenarioSuite) TestGoogleSignIn_UnverifiedEmailCreatesNothing() {
	s.googleReturns("code-new", "new-sub", map[string]interface{}{"email": "nobody@example.com"})

	_, err := s.svc.Identity.ExchangeGoogleCode(s.ctx, "code-new")
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = s.svc.Identity.Register(s.ctx, dto.RegisterRequest{
		Name: "Nobody", Email: "nobody@example.com", Password: "correct horse", BusinessName: "Nobody Co",
	})
	s.NoError(err)
}

func (s *LedgerScenarioSuite) TestGoogleSignIn_VerifiedEmailLinksBySubject() {
	s.googleReturns("code-link", "asha-sub", map[string]interface{}{
		"email": "asha@example.com", "email_verified": "true",
	})
	linked, err := s.svc.Identity.ExchangeGoogleCode(s.ctx, "code-link")
	s.Require().NoError(err)
	s.Equal(s.auth.UserID, linked.User.UserID)
	s.Equal(s.auth.ActiveBusinessID, linked.BusinessID)

	// Later sign-ins match on the subject even without an email claim.
	s.googleReturns("code-again", "asha-sub", map[string]interface{}{})
	again, err := s.svc.Identity.ExchangeGoogleCode(s.ctx, "code-again")
	s.Require().NoError(err)
	s.Equal(s.auth.UserID, again.User.UserID)

	// A different Google identity with the same verified email is refused.
	s.googleReturns("code-other", "someone-else", map[string]interface{}{
		"email": "asha@example.com", "email_verified": true,
	})
	_, err = s.svc.Identity.ExchangeGoogleCode(s.ctx, "code-other")
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	// The password keeps working after linking.
	s.Equal(s.auth.UserID, s.mustLogin().User.UserID)
	s.google.AssertExpectations(s.T())
}
