package accounting

import (
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FoldBalances derives the balance of every account touched by the given
// movements: each movement subtracts its amount from the source account and
// adds it to the destination account.
func FoldBalances(movements []domain.LedgerMovement) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal)
	for _, m := range movements {
		balances[m.FromAccountID] = balances[m.FromAccountID].Sub(m.Amount)
		balances[m.ToAccountID] = balances[m.ToAccountID].Add(m.Amount)
	}
	return balances
}

// MergeBalances attaches folded balances to accounts, preserving account order.
// Accounts without movements get a zero balance.
func MergeBalances(accounts []domain.Account, balances map[string]decimal.Decimal) []domain.AccountBalance {
	merged := make([]domain.AccountBalance, 0, len(accounts))
	for _, acc := range accounts {
		merged = append(merged, domain.AccountBalance{Account: acc, Balance: balances[acc.AccountID]})
	}
	return merged
}

// SumBalances adds up every folded balance. The result is zero for any set of
// movements since each one moves value between two accounts.
func SumBalances(balances map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, b := range balances {
		total = total.Add(b)
	}
	return total
}

// TotalsByType sums merged balances per account type.
func TotalsByType(balances []domain.AccountBalance) map[domain.AccountType]decimal.Decimal {
	totals := map[domain.AccountType]decimal.Decimal{
		domain.AccountTypeMoney:    decimal.Zero,
		domain.AccountTypeCategory: decimal.Zero,
		domain.AccountTypeParty:    decimal.Zero,
	}
	for _, b := range balances {
		totals[b.AccountType] = totals[b.AccountType].Add(b.Balance)
	}
	return totals
}

// Summarize builds a BalanceSummary from the active account balances and the
// full fold, which also covers inactive accounts.
func Summarize(active []domain.AccountBalance, folded map[string]decimal.Decimal) domain.BalanceSummary {
	net := SumBalances(folded)
	return domain.BalanceSummary{
		TotalsByType: TotalsByType(active),
		Net:          net,
		Balanced:     net.IsZero(),
	}
}
