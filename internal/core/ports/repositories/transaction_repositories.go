package repositories

import (
	"context"

	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
)

// TransactionReader defines read operations for the ledger.
type TransactionReader interface {
	FindTransactionByID(ctx context.Context, businessID, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns a page of transactions ordered by date, created_at
	// and id descending, and the token of the next page if there is one.
	ListTransactions(ctx context.Context, businessID string, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListLedgerMovements returns the (amount, from, to) triple of every transaction of the business.
	ListLedgerMovements(ctx context.Context, businessID string) ([]domain.LedgerMovement, error)

	// CountTransactionsByAccount counts transactions using the account as source or destination.
	CountTransactionsByAccount(ctx context.Context, businessID, accountID string) (int64, error)
}

// TransactionWriter defines write operations for the ledger.
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction overwrites the amendable fields of an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransactionsByParty removes every transaction tied to the party and reports how many.
	DeleteTransactionsByParty(ctx context.Context, businessID, partyID string) (int64, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
