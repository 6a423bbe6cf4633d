package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"google.golang.org/api/idtoken"

	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
)

// passthroughTx runs the unit of work without any storage transaction.
type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) AuthorizeOwner(ctx context.Context, userID, businessID string) error {
	return m.Called(ctx, userID, businessID).Error(0)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, businessID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByIDForUpdate(ctx context.Context, businessID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, businessID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, businessID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListActiveAccounts(ctx context.Context, businessID string) ([]domain.Account, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, businessID, accountID, userID string, now time.Time) error {
	return m.Called(ctx, businessID, accountID, userID, now).Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, businessID, accountID string) error {
	return m.Called(ctx, businessID, accountID).Error(0)
}

func (m *MockAccountRepository) UnlinkPartyAccounts(ctx context.Context, businessID, partyID, userID string, now time.Time) error {
	return m.Called(ctx, businessID, partyID, userID, now).Error(0)
}

type MockTransactionReader struct {
	mock.Mock
}

func (m *MockTransactionReader) FindTransactionByID(ctx context.Context, businessID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, businessID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionReader) ListTransactions(ctx context.Context, businessID string, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, businessID, filter, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), next, args.Error(2)
}

func (m *MockTransactionReader) ListLedgerMovements(ctx context.Context, businessID string) ([]domain.LedgerMovement, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerMovement), args.Error(1)
}

func (m *MockTransactionReader) CountTransactionsByAccount(ctx context.Context, businessID, accountID string) (int64, error) {
	args := m.Called(ctx, businessID, accountID)
	return args.Get(0).(int64), args.Error(1)
}

type MockPartyReader struct {
	mock.Mock
}

func (m *MockPartyReader) FindPartyByID(ctx context.Context, businessID, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, businessID, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyReader) ListParties(ctx context.Context, businessID string, partyType domain.PartyType) ([]domain.Party, error) {
	args := m.Called(ctx, businessID, partyType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

type MockGoogleOAuth struct {
	mock.Mock
}

func (m *MockGoogleOAuth) ExchangeCodeForIDToken(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleOAuth) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}
