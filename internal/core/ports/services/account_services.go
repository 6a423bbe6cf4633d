package services

import (
	"context"

	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	"github.com/Murlidhar08/settlr-sub001/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// ListAccounts returns the active accounts of the caller's business, newest first.
	ListAccounts(ctx context.Context, auth domain.AuthContext) ([]domain.Account, error)

	GetAccount(ctx context.Context, auth domain.AuthContext, accountID string) (*domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, auth domain.AuthContext, req dto.CreateAccountRequest) (*domain.Account, error)

	UpdateAccount(ctx context.Context, auth domain.AuthContext, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes the account, or deactivates it when transactions reference it.
	DeleteAccount(ctx context.Context, auth domain.AuthContext, accountID string) (*domain.DeleteAccountResult, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
