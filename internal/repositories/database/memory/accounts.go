package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
)

func (s *Store) findAccount(businessID, accountID string) (*domain.Account, error) {
	e, ok := s.accounts[accountID]
	if !ok || e.value.BusinessID != businessID {
		return nil, apperrors.ErrNotFound
	}
	account := e.value
	return &account, nil
}

func (s *Store) FindAccountByID(ctx context.Context, businessID, accountID string) (*domain.Account, error) {
	defer s.lock(ctx)()
	return s.findAccount(businessID, accountID)
}

// FindAccountByIDForUpdate needs no extra locking: callers run inside WithinTx,
// which already holds the store mutex.
func (s *Store) FindAccountByIDForUpdate(ctx context.Context, businessID, accountID string) (*domain.Account, error) {
	return s.FindAccountByID(ctx, businessID, accountID)
}

func (s *Store) FindAccountsByIDs(ctx context.Context, businessID string, accountIDs []string) (map[string]domain.Account, error) {
	defer s.lock(ctx)()
	found := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if account, err := s.findAccount(businessID, id); err == nil {
			found[id] = *account
		}
	}
	return found, nil
}

func (s *Store) ListActiveAccounts(ctx context.Context, businessID string) ([]domain.Account, error) {
	defer s.lock(ctx)()
	var matched []entry[domain.Account]
	for _, e := range s.accounts {
		if e.value.BusinessID == businessID && e.value.IsActive() {
			matched = append(matched, e)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return newerFirst(matched[i], matched[j], accountCreatedAt) })

	accounts := make([]domain.Account, 0, len(matched))
	for _, e := range matched {
		accounts = append(accounts, e.value)
	}
	return accounts, nil
}

func (s *Store) SaveAccount(ctx context.Context, account domain.Account) error {
	defer s.lock(ctx)()
	if _, exists := s.accounts[account.AccountID]; exists {
		return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, account.AccountID)
	}
	if _, ok := s.businesses[account.BusinessID]; !ok {
		return fmt.Errorf("business %s does not exist", account.BusinessID)
	}
	s.accounts[account.AccountID] = entry[domain.Account]{value: account, seq: s.nextSeq()}
	return nil
}

func (s *Store) UpdateAccount(ctx context.Context, account domain.Account) error {
	defer s.lock(ctx)()
	e, ok := s.accounts[account.AccountID]
	if !ok || e.value.BusinessID != account.BusinessID {
		return apperrors.ErrNotFound
	}
	current := e.value
	current.Name = account.Name
	current.MoneyType = account.MoneyType
	current.PartyType = account.PartyType
	current.CategoryType = account.CategoryType
	current.PartyID = account.PartyID
	current.LastUpdatedAt = account.LastUpdatedAt
	current.LastUpdatedBy = account.LastUpdatedBy
	e.value = current
	s.accounts[account.AccountID] = e
	return nil
}

func (s *Store) DeactivateAccount(ctx context.Context, businessID, accountID, userID string, now time.Time) error {
	defer s.lock(ctx)()
	e, ok := s.accounts[accountID]
	if !ok || e.value.BusinessID != businessID {
		return apperrors.ErrNotFound
	}
	if e.value.IsSystem() {
		return fmt.Errorf("%w: system accounts cannot be deactivated", apperrors.ErrProtectedResource)
	}
	e.value.Status = domain.AccountStatusInactive
	e.value.Touch(userID, now)
	s.accounts[accountID] = e
	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, businessID, accountID string) error {
	defer s.lock(ctx)()
	e, ok := s.accounts[accountID]
	if !ok || e.value.BusinessID != businessID {
		return apperrors.ErrNotFound
	}
	for _, t := range s.transactions {
		if t.value.FromAccountID == accountID || t.value.ToAccountID == accountID {
			return fmt.Errorf("account %s is still referenced by transaction %s", accountID, t.value.TransactionID)
		}
	}
	delete(s.accounts, accountID)
	return nil
}

func (s *Store) UnlinkPartyAccounts(ctx context.Context, businessID, partyID, userID string, now time.Time) error {
	defer s.lock(ctx)()
	for id, e := range s.accounts {
		if e.value.BusinessID == businessID && e.value.PartyID != nil && *e.value.PartyID == partyID {
			e.value.PartyID = nil
			e.value.Touch(userID, now)
			s.accounts[id] = e
		}
	}
	return nil
}

func accountCreatedAt(a domain.Account) time.Time { return a.CreatedAt }

// newerFirst orders by creation time descending, falling back to insertion order.
func newerFirst[T any](a, b entry[T], createdAt func(T) time.Time) bool {
	ca, cb := createdAt(a.value), createdAt(b.value)
	if !ca.Equal(cb) {
		return ca.After(cb)
	}
	return a.seq > b.seq
}
