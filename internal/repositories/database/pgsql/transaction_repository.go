package pgsql

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	portsrepo "github.com/Murlidhar08/settlr-sub001/internal/core/ports/repositories"
	"github.com/Murlidhar08/settlr-sub001/internal/models"
	"github.com/Murlidhar08/settlr-sub001/internal/utils/mapping"
	"github.com/Murlidhar08/settlr-sub001/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionSelectQuery = `
SELECT
	t.transaction_id, t.business_id, t.amount, t.date, t.description, t.payment_mode, t.direction,
	t.from_account_id, t.to_account_id, t.party_id, t.user_id, t.created_at, t.updated_at
FROM transactions t
`

func (r *PgxTransactionRepository) getTransactions(ctx context.Context, filterQuery string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db(ctx).Query(ctx, transactionSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query transactions", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect transaction rows", err)
	}
	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, businessID, transactionID string) (*domain.Transaction, error) {
	txns, err := r.getTransactions(ctx, "WHERE t.business_id = $1 AND t.transaction_id = $2", businessID, transactionID)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &txns[0], nil
}

// ListTransactions uses keyset pagination over (date, created_at, transaction_id).
// One extra row is fetched to learn whether a next page exists.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, businessID string, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	conditions := []string{"t.business_id = $1"}
	args := []any{businessID}
	argPos := 2

	if filter.AccountID != "" {
		conditions = append(conditions, fmt.Sprintf("(t.from_account_id = $%d OR t.to_account_id = $%d)", argPos, argPos))
		args = append(args, filter.AccountID)
		argPos++
	}
	if filter.PartyID != "" {
		conditions = append(conditions, fmt.Sprintf("t.party_id = $%d", argPos))
		args = append(args, filter.PartyID)
		argPos++
	}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		conditions = append(conditions, fmt.Sprintf("(t.date, t.created_at, t.transaction_id) < ($%d, $%d, $%d)", argPos, argPos+1, argPos+2))
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.ID)
		argPos += 3
	}

	filterQuery := fmt.Sprintf("WHERE %s ORDER BY t.date DESC, t.created_at DESC, t.transaction_id DESC LIMIT $%d",
		strings.Join(conditions, " AND "), argPos)
	args = append(args, limit+1)

	txns, err := r.getTransactions(ctx, filterQuery, args...)
	if err != nil {
		return nil, nil, err
	}
	if len(txns) <= limit {
		return txns, nil, nil
	}

	page := txns[:limit]
	last := page[len(page)-1]
	token := pagination.EncodeToken(pagination.Cursor{Date: last.Date, CreatedAt: last.CreatedAt, ID: last.TransactionID})
	return page, &token, nil
}

func (r *PgxTransactionRepository) ListLedgerMovements(ctx context.Context, businessID string) ([]domain.LedgerMovement, error) {
	query := `SELECT amount, from_account_id, to_account_id FROM transactions WHERE business_id = $1;`
	rows, err := r.db(ctx).Query(ctx, query, businessID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query ledger movements", err)
	}
	defer rows.Close()

	movements, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LedgerMovement])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect ledger movements", err)
	}
	return mapping.ToDomainLedgerMovementSlice(movements), nil
}

func (r *PgxTransactionRepository) CountTransactionsByAccount(ctx context.Context, businessID, accountID string) (int64, error) {
	query := `
		SELECT COUNT(*) FROM transactions
		WHERE business_id = $1 AND (from_account_id = $2 OR to_account_id = $2);
	`
	var count int64
	if err := r.db(ctx).QueryRow(ctx, query, businessID, accountID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions of account %s: %w", accountID, err)
	}
	return count, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (
			transaction_id, business_id, amount, date, description, payment_mode, direction,
			from_account_id, to_account_id, party_id, user_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.TransactionID, m.BusinessID, m.Amount, m.Date, m.Description, m.PaymentMode, m.Direction,
		m.FromAccountID, m.ToAccountID, m.PartyID, m.UserID, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET amount = $3, date = $4, description = $5, payment_mode = $6, direction = $7,
			party_id = $8, user_id = $9, updated_at = $10
		WHERE business_id = $1 AND transaction_id = $2;
	`
	cmdTag, err := r.db(ctx).Exec(ctx, query,
		m.BusinessID, m.TransactionID, m.Amount, m.Date, m.Description, m.PaymentMode, m.Direction,
		m.PartyID, m.UserID, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransactionsByParty(ctx context.Context, businessID, partyID string) (int64, error) {
	query := `DELETE FROM transactions WHERE business_id = $1 AND party_id = $2;`
	cmdTag, err := r.db(ctx).Exec(ctx, query, businessID, partyID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete transactions of party %s: %w", partyID, err)
	}
	return cmdTag.RowsAffected(), nil
}
