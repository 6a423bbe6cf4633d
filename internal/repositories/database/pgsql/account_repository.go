package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	portsrepo "github.com/Murlidhar08/settlr-sub001/internal/core/ports/repositories"
	"github.com/Murlidhar08/settlr-sub001/internal/models"
	"github.com/Murlidhar08/settlr-sub001/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountSelectQuery = `
SELECT
	a.account_id, a.business_id, a.name, a.account_type, a.money_type, a.party_type,
	a.category_type, a.party_id, a.status,
	a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
FROM accounts a
`

func (r *PgxAccountRepository) getAccounts(ctx context.Context, filterQuery string, args ...any) ([]domain.Account, error) {
	rows, err := r.db(ctx).Query(ctx, accountSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query accounts", err)
	}
	defer rows.Close()

	modelAccounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect account rows", err)
	}
	return mapping.ToDomainAccountSlice(modelAccounts), nil
}

func (r *PgxAccountRepository) getAccount(ctx context.Context, filterQuery string, args ...any) (*domain.Account, error) {
	accounts, err := r.getAccounts(ctx, filterQuery, args...)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &accounts[0], nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, businessID, accountID string) (*domain.Account, error) {
	return r.getAccount(ctx, "WHERE a.business_id = $1 AND a.account_id = $2", businessID, accountID)
}

func (r *PgxAccountRepository) FindAccountByIDForUpdate(ctx context.Context, businessID, accountID string) (*domain.Account, error) {
	return r.getAccount(ctx, "WHERE a.business_id = $1 AND a.account_id = $2 FOR UPDATE", businessID, accountID)
}

func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, businessID string, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}
	accounts, err := r.getAccounts(ctx, "WHERE a.business_id = $1 AND a.account_id = ANY($2)", businessID, accountIDs)
	if err != nil {
		return nil, err
	}
	accountsMap := make(map[string]domain.Account, len(accounts))
	for _, account := range accounts {
		accountsMap[account.AccountID] = account
	}
	return accountsMap, nil
}

func (r *PgxAccountRepository) ListActiveAccounts(ctx context.Context, businessID string) ([]domain.Account, error) {
	return r.getAccounts(ctx,
		"WHERE a.business_id = $1 AND a.status <> $2 ORDER BY a.created_at DESC, a.account_id DESC",
		businessID, string(domain.AccountStatusInactive))
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (
			account_id, business_id, name, account_type, money_type, party_type, category_type,
			party_id, status, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.AccountID, m.BusinessID, m.Name, m.AccountType, m.MoneyType, m.PartyType, m.CategoryType,
		m.PartyID, m.Status, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, m.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET name = $3, money_type = $4, party_type = $5, category_type = $6, party_id = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE business_id = $1 AND account_id = $2;
	`
	cmdTag, err := r.db(ctx).Exec(ctx, query,
		m.BusinessID, m.AccountID, m.Name, m.MoneyType, m.PartyType, m.CategoryType, m.PartyID,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, businessID, accountID, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE business_id = $1 AND account_id = $2 AND status <> $6;
	`
	cmdTag, err := r.db(ctx).Exec(ctx, query,
		businessID, accountID, string(domain.AccountStatusInactive), now, userID, string(domain.AccountStatusSystem))
	if err != nil {
		return fmt.Errorf("failed to deactivate account %s: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.explainMissingRow(ctx, businessID, accountID)
	}
	return nil
}

func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, businessID, accountID string) error {
	query := `DELETE FROM accounts WHERE business_id = $1 AND account_id = $2 AND status <> $3;`
	cmdTag, err := r.db(ctx).Exec(ctx, query, businessID, accountID, string(domain.AccountStatusSystem))
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("account %s is still referenced by transactions: %w", accountID, err)
		}
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.explainMissingRow(ctx, businessID, accountID)
	}
	return nil
}

func (r *PgxAccountRepository) UnlinkPartyAccounts(ctx context.Context, businessID, partyID, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET party_id = NULL, last_updated_at = $3, last_updated_by = $4
		WHERE business_id = $1 AND party_id = $2;
	`
	if _, err := r.db(ctx).Exec(ctx, query, businessID, partyID, now, userID); err != nil {
		return fmt.Errorf("failed to unlink accounts of party %s: %w", partyID, err)
	}
	return nil
}

// explainMissingRow tells a missing account apart from a protected one after a
// guarded write touched no rows.
func (r *PgxAccountRepository) explainMissingRow(ctx context.Context, businessID, accountID string) error {
	account, err := r.FindAccountByID(ctx, businessID, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	if account.IsSystem() {
		return fmt.Errorf("%w: system accounts cannot be removed", apperrors.ErrProtectedResource)
	}
	return nil
}
