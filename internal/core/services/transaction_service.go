package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	portsrepo "github.com/Murlidhar08/settlr-sub001/internal/core/ports/repositories"
	portssvc "github.com/Murlidhar08/settlr-sub001/internal/core/ports/services"
	"github.com/Murlidhar08/settlr-sub001/internal/dto"
	"github.com/google/uuid"
)

const (
	defaultTransactionPageSize = 20
	maxTransactionPageSize     = 100
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txManager     portsrepo.TransactionManager
	txnRepo       portsrepo.TransactionRepositoryFacade
	accountReader portsrepo.AccountReader
	partyReader   portsrepo.PartyReader
}

// NewTransactionService creates a new ledger service.
func NewTransactionService(
	txManager portsrepo.TransactionManager,
	txnRepo portsrepo.TransactionRepositoryFacade,
	accountReader portsrepo.AccountReader,
	partyReader portsrepo.PartyReader,
	options ...ServiceOption,
) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txManager:     txManager,
		txnRepo:       txnRepo,
		accountReader: accountReader,
		partyReader:   partyReader,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) RecordTransaction(ctx context.Context, auth domain.AuthContext, req dto.RecordTransactionRequest) (*domain.Transaction, error) {
	if err := s.Authorize(ctx, auth); err != nil {
		return nil, err
	}

	var recorded domain.Transaction
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		now := time.Now().UTC()
		var txn domain.Transaction

		if req.IsAmendment() {
			existing, err := s.txnRepo.FindTransactionByID(ctx, auth.ActiveBusinessID, req.TransactionID)
			if err != nil {
				return err
			}
			txn = *existing
			if (req.FromAccountID != "" && req.FromAccountID != txn.FromAccountID) ||
				(req.ToAccountID != "" && req.ToAccountID != txn.ToAccountID) {
				s.LogDebug(ctx, "Ignoring account change on transaction amendment", slog.String("transaction_id", txn.TransactionID))
			}
		} else {
			txn = domain.Transaction{
				TransactionID: uuid.NewString(),
				FromAccountID: req.FromAccountID,
				ToAccountID:   req.ToAccountID,
				CreatedAt:     now,
			}
		}

		txn.BusinessID = auth.ActiveBusinessID
		txn.Amount = req.Amount
		txn.Date = req.Date.UTC()
		txn.Description = strings.TrimSpace(req.Description)
		txn.PaymentMode = req.PaymentMode
		txn.Direction = req.Direction
		txn.PartyID = nonEmpty(req.PartyID)
		txn.UserID = auth.UserID
		txn.UpdatedAt = now

		if err := txn.Validate(); err != nil {
			return err
		}
		if err := s.checkReferences(ctx, txn); err != nil {
			return err
		}

		if req.IsAmendment() {
			if err := s.txnRepo.UpdateTransaction(ctx, txn); err != nil {
				return err
			}
		} else if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
			return err
		}
		recorded = txn
		return nil
	})
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to record transaction", slog.String("transaction_id", req.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", recorded.TransactionID),
		slog.Bool("amendment", req.IsAmendment()),
		slog.String("amount", recorded.Amount.String()))
	return &recorded, nil
}

// checkReferences ensures both accounts and the optional party belong to the
// transaction's business and that both accounts are active.
func (s *transactionService) checkReferences(ctx context.Context, txn domain.Transaction) error {
	accounts, err := s.accountReader.FindAccountsByIDs(ctx, txn.BusinessID, []string{txn.FromAccountID, txn.ToAccountID})
	if err != nil {
		return fmt.Errorf("failed to load transaction accounts: %w", err)
	}
	for _, id := range []string{txn.FromAccountID, txn.ToAccountID} {
		account, ok := accounts[id]
		if !ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		if !account.IsActive() {
			return fmt.Errorf("%w: account %q is inactive", apperrors.ErrValidation, account.Name)
		}
	}

	if txn.PartyID != nil {
		if _, err := s.partyReader.FindPartyByID(ctx, txn.BusinessID, *txn.PartyID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: party %s", apperrors.ErrNotFound, *txn.PartyID)
			}
			return err
		}
	}
	return nil
}

func (s *transactionService) GetTransaction(ctx context.Context, auth domain.AuthContext, transactionID string) (*domain.Transaction, error) {
	if err := s.Authorize(ctx, auth); err != nil {
		return nil, err
	}
	txn, err := s.txnRepo.FindTransactionByID(ctx, auth.ActiveBusinessID, transactionID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, auth domain.AuthContext, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	ok, err := s.authorizeRead(ctx, auth)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return []domain.Transaction{}, nil, nil
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}
	if limit > maxTransactionPageSize {
		limit = maxTransactionPageSize
	}
	filter := domain.TransactionFilter{AccountID: params.AccountID, PartyID: params.PartyID}

	txns, next, err := s.txnRepo.ListTransactions(ctx, auth.ActiveBusinessID, filter, limit, nonEmpty(&params.NextToken))
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to list transactions")
		return nil, nil, err
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, next, nil
}

// nonEmpty maps a pointer to an empty string to nil.
func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
