package repositories

import (
	"context"
	"time"

	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
)

// AccountReader defines read operations for account data. Every lookup is
// scoped to a business.
type AccountReader interface {
	// FindAccountByID retrieves an account of the business regardless of its status.
	FindAccountByID(ctx context.Context, businessID, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves the accounts of the business among accountIDs, keyed by ID.
	FindAccountsByIDs(ctx context.Context, businessID string, accountIDs []string) (map[string]domain.Account, error)

	// ListActiveAccounts returns ACTIVE and SYSTEM accounts, most recently created first.
	ListActiveAccounts(ctx context.Context, businessID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount persists name, classifiers and party link of an existing account.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account as INACTIVE.
	DeactivateAccount(ctx context.Context, businessID, accountID, userID string, now time.Time) error

	// DeleteAccount removes the account row.
	DeleteAccount(ctx context.Context, businessID, accountID string) error

	// UnlinkPartyAccounts clears the party link of every account pointing at partyID.
	UnlinkPartyAccounts(ctx context.Context, businessID, partyID, userID string, now time.Time) error
}

// AccountLocker supports the deletion workflow.
type AccountLocker interface {
	// FindAccountByIDForUpdate retrieves the account and locks it until the
	// surrounding transaction ends.
	FindAccountByIDForUpdate(ctx context.Context, businessID, accountID string) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountLocker
}
