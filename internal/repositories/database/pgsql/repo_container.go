package pgsql

import (
	portsrepo "github.com/Murlidhar08/settlr-sub001/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:       newTxManager(dbPool),
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		PartyRepo:       newPgxPartyRepository(dbPool),
		BusinessRepo:    newPgxBusinessRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		SettingsRepo:    newPgxSettingsRepository(dbPool),
	}
}
