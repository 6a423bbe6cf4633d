package services

import (
	"context"

	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	"github.com/Murlidhar08/settlr-sub001/internal/dto"
)

// TransactionReaderSvc defines read operations for the ledger.
type TransactionReaderSvc interface {
	GetTransaction(ctx context.Context, auth domain.AuthContext, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns a page of transactions and the token of the next page.
	ListTransactions(ctx context.Context, auth domain.AuthContext, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error)
}

// TransactionWriterSvc defines write operations for the ledger.
type TransactionWriterSvc interface {
	// RecordTransaction creates a transaction, or amends an existing one when
	// req.TransactionID is set.
	RecordTransaction(ctx context.Context, auth domain.AuthContext, req dto.RecordTransactionRequest) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
