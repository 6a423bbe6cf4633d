package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	portsrepo "github.com/Murlidhar08/settlr-sub001/internal/core/ports/repositories"
	portssvc "github.com/Murlidhar08/settlr-sub001/internal/core/ports/services"
	"github.com/Murlidhar08/settlr-sub001/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// balanceService folds the full transaction log on every read.
type balanceService struct {
	BaseService
	accountReader portsrepo.AccountReader
	txnReader     portsrepo.TransactionReader
}

// NewBalanceService creates a new balance service.
func NewBalanceService(accountReader portsrepo.AccountReader, txnReader portsrepo.TransactionReader, options ...ServiceOption) portssvc.BalanceSvc {
	svc := &balanceService{accountReader: accountReader, txnReader: txnReader}
	svc.apply(options)
	return svc
}

var _ portssvc.BalanceSvc = (*balanceService)(nil)

func (s *balanceService) fold(ctx context.Context, businessID string) (map[string]decimal.Decimal, error) {
	movements, err := s.txnReader.ListLedgerMovements(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger movements", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	return accounting.FoldBalances(movements), nil
}

func (s *balanceService) activeBalances(ctx context.Context, businessID string) ([]domain.AccountBalance, map[string]decimal.Decimal, error) {
	accounts, err := s.accountReader.ListActiveAccounts(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for balances", slog.String("business_id", businessID))
		return nil, nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	folded, err := s.fold(ctx, businessID)
	if err != nil {
		return nil, nil, err
	}
	return accounting.MergeBalances(accounts, folded), folded, nil
}

func (s *balanceService) ListAccountBalances(ctx context.Context, auth domain.AuthContext) ([]domain.AccountBalance, error) {
	ok, err := s.authorizeRead(ctx, auth)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.AccountBalance{}, nil
	}
	balances, _, err := s.activeBalances(ctx, auth.ActiveBusinessID)
	return balances, err
}

func (s *balanceService) GetAccountBalance(ctx context.Context, auth domain.AuthContext, accountID string) (*domain.AccountBalance, error) {
	if err := s.Authorize(ctx, auth); err != nil {
		return nil, err
	}
	account, err := s.accountReader.FindAccountByID(ctx, auth.ActiveBusinessID, accountID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find account for balance", slog.String("account_id", accountID))
		return nil, err
	}
	if !account.IsActive() {
		return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrNotFound, accountID)
	}
	folded, err := s.fold(ctx, auth.ActiveBusinessID)
	if err != nil {
		return nil, err
	}
	return &domain.AccountBalance{Account: *account, Balance: folded[accountID]}, nil
}

func (s *balanceService) GetBalanceSummary(ctx context.Context, auth domain.AuthContext) (*domain.BalanceSummary, error) {
	if err := s.Authorize(ctx, auth); err != nil {
		return nil, err
	}
	balances, folded, err := s.activeBalances(ctx, auth.ActiveBusinessID)
	if err != nil {
		return nil, err
	}
	summary := accounting.Summarize(balances, folded)
	if !summary.Balanced {
		s.LogError(ctx, fmt.Errorf("ledger net is %s", summary.Net), "Ledger does not balance", slog.String("business_id", auth.ActiveBusinessID))
	}
	return &summary, nil
}
