package domain

import "github.com/shopspring/decimal"

// AccountBalance is an active account together with its folded balance.
type AccountBalance struct {
	Account
	Balance decimal.Decimal `json:"balance"`
}

// BalanceSummary aggregates the folded balances of a business.
type BalanceSummary struct {
	TotalsByType map[AccountType]decimal.Decimal `json:"totalsByType"`
	// Net is the sum over every account including inactive ones; it is zero
	// for any consistent ledger.
	Net      decimal.Decimal `json:"net"`
	Balanced bool            `json:"balanced"`
}
