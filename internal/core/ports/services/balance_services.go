package services

import (
	"context"

	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
)

// BalanceSvc derives balances by folding the transaction log.
type BalanceSvc interface {
	ListAccountBalances(ctx context.Context, auth domain.AuthContext) ([]domain.AccountBalance, error)
	GetAccountBalance(ctx context.Context, auth domain.AuthContext, accountID string) (*domain.AccountBalance, error)
	GetBalanceSummary(ctx context.Context, auth domain.AuthContext) (*domain.BalanceSummary, error)
}
