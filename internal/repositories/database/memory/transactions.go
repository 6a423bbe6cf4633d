package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	"github.com/Murlidhar08/settlr-sub001/internal/utils/pagination"
)

func (s *Store) FindTransactionByID(ctx context.Context, businessID, transactionID string) (*domain.Transaction, error) {
	defer s.lock(ctx)()
	e, ok := s.transactions[transactionID]
	if !ok || e.value.BusinessID != businessID {
		return nil, apperrors.ErrNotFound
	}
	txn := e.value
	return &txn, nil
}

func (s *Store) ListTransactions(ctx context.Context, businessID string, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	var cursor *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor = &c
	}

	defer s.lock(ctx)()
	var matched []domain.Transaction
	for _, e := range s.transactions {
		t := e.value
		if t.BusinessID != businessID {
			continue
		}
		if filter.AccountID != "" && t.FromAccountID != filter.AccountID && t.ToAccountID != filter.AccountID {
			continue
		}
		if filter.PartyID != "" && (t.PartyID == nil || *t.PartyID != filter.PartyID) {
			continue
		}
		if cursor != nil && !cursor.After(t.Date, t.CreatedAt, t.TransactionID) {
			continue
		}
		matched = append(matched, t)
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.TransactionID > b.TransactionID
	})

	if len(matched) <= limit {
		return matched, nil, nil
	}
	page := matched[:limit]
	last := page[len(page)-1]
	token := pagination.EncodeToken(pagination.Cursor{Date: last.Date, CreatedAt: last.CreatedAt, ID: last.TransactionID})
	return page, &token, nil
}

func (s *Store) ListLedgerMovements(ctx context.Context, businessID string) ([]domain.LedgerMovement, error) {
	defer s.lock(ctx)()
	movements := make([]domain.LedgerMovement, 0, len(s.transactions))
	for _, e := range s.transactions {
		if e.value.BusinessID == businessID {
			movements = append(movements, e.value.Movement())
		}
	}
	return movements, nil
}

func (s *Store) CountTransactionsByAccount(ctx context.Context, businessID, accountID string) (int64, error) {
	defer s.lock(ctx)()
	var count int64
	for _, e := range s.transactions {
		if e.value.BusinessID == businessID && (e.value.FromAccountID == accountID || e.value.ToAccountID == accountID) {
			count++
		}
	}
	return count, nil
}

func (s *Store) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	defer s.lock(ctx)()
	if _, exists := s.transactions[txn.TransactionID]; exists {
		return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, txn.TransactionID)
	}
	if err := s.checkTransactionRefs(txn); err != nil {
		return err
	}
	s.transactions[txn.TransactionID] = entry[domain.Transaction]{value: txn, seq: s.nextSeq()}
	return nil
}

func (s *Store) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	defer s.lock(ctx)()
	e, ok := s.transactions[txn.TransactionID]
	if !ok || e.value.BusinessID != txn.BusinessID {
		return apperrors.ErrNotFound
	}
	if err := s.checkTransactionRefs(txn); err != nil {
		return err
	}
	current := e.value
	current.Amount = txn.Amount
	current.Date = txn.Date
	current.Description = txn.Description
	current.PaymentMode = txn.PaymentMode
	current.Direction = txn.Direction
	current.PartyID = txn.PartyID
	current.UserID = txn.UserID
	current.UpdatedAt = txn.UpdatedAt
	e.value = current
	s.transactions[txn.TransactionID] = e
	return nil
}

func (s *Store) DeleteTransactionsByParty(ctx context.Context, businessID, partyID string) (int64, error) {
	defer s.lock(ctx)()
	var deleted int64
	for id, e := range s.transactions {
		if e.value.BusinessID == businessID && e.value.PartyID != nil && *e.value.PartyID == partyID {
			delete(s.transactions, id)
			deleted++
		}
	}
	return deleted, nil
}

// checkTransactionRefs mirrors the foreign keys of the relational schema.
func (s *Store) checkTransactionRefs(txn domain.Transaction) error {
	for _, id := range []string{txn.FromAccountID, txn.ToAccountID} {
		if _, ok := s.accounts[id]; !ok {
			return fmt.Errorf("transaction references unknown account %s", id)
		}
	}
	if txn.PartyID != nil {
		if _, ok := s.parties[*txn.PartyID]; !ok {
			return fmt.Errorf("transaction references unknown party %s", *txn.PartyID)
		}
	}
	return nil
}
