// Package memory is an in-process implementation of the repository ports.
// A single mutex serializes access; WithinTx holds it for the whole unit of
// work and restores a snapshot when the work fails.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	portsrepo "github.com/Murlidhar08/settlr-sub001/internal/core/ports/repositories"
)

type entry[T any] struct {
	value T
	seq   int64
}

type txKey struct{}

// Store holds every table of the application in memory.
type Store struct {
	mu  sync.Mutex
	seq int64

	users        map[string]entry[domain.User]
	settings     map[string]domain.UserSettings
	businesses   map[string]entry[domain.Business]
	parties      map[string]entry[domain.Party]
	accounts     map[string]entry[domain.Account]
	transactions map[string]entry[domain.Transaction]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:        map[string]entry[domain.User]{},
		settings:     map[string]domain.UserSettings{},
		businesses:   map[string]entry[domain.Business]{},
		parties:      map[string]entry[domain.Party]{},
		accounts:     map[string]entry[domain.Account]{},
		transactions: map[string]entry[domain.Transaction]{},
	}
}

// NewRepositoryProvider exposes the store through every repository port.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:       store,
		AccountRepo:     store,
		TransactionRepo: store,
		PartyRepo:       store,
		BusinessRepo:    store,
		UserRepo:        store,
		SettingsRepo:    store,
	}
}

var (
	_ portsrepo.TransactionManager          = (*Store)(nil)
	_ portsrepo.AccountRepositoryFacade     = (*Store)(nil)
	_ portsrepo.TransactionRepositoryFacade = (*Store)(nil)
	_ portsrepo.PartyRepositoryFacade       = (*Store)(nil)
	_ portsrepo.BusinessRepositoryFacade    = (*Store)(nil)
	_ portsrepo.UserRepositoryFacade        = (*Store)(nil)
	_ portsrepo.SettingsRepository          = (*Store)(nil)
)

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// lock acquires the store mutex unless ctx already runs inside a WithinTx of this store.
func (s *Store) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}

type snapshot struct {
	seq          int64
	users        map[string]entry[domain.User]
	settings     map[string]domain.UserSettings
	businesses   map[string]entry[domain.Business]
	parties      map[string]entry[domain.Party]
	accounts     map[string]entry[domain.Account]
	transactions map[string]entry[domain.Transaction]
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		seq:          s.seq,
		users:        maps.Clone(s.users),
		settings:     maps.Clone(s.settings),
		businesses:   maps.Clone(s.businesses),
		parties:      maps.Clone(s.parties),
		accounts:     maps.Clone(s.accounts),
		transactions: maps.Clone(s.transactions),
	}
}

func (s *Store) restore(snap snapshot) {
	s.seq = snap.seq
	s.users = snap.users
	s.settings = snap.settings
	s.businesses = snap.businesses
	s.parties = snap.parties
	s.accounts = snap.accounts
	s.transactions = snap.transactions
}

// WithinTx runs fn atomically. Nested calls join the outer unit of work.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	defer func() {
		if r := recover(); r != nil {
			s.restore(snap)
			panic(r)
		}
		if err != nil {
			s.restore(snap)
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, s))
}
