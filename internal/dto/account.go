package dto

import (
	"time"

	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name         string               `json:"name" binding:"required"`
	AccountType  domain.AccountType   `json:"accountType" binding:"required,accounttype"`
	MoneyType    *domain.MoneyType    `json:"moneyType" binding:"omitempty,moneytype"`
	PartyType    *domain.PartyType    `json:"partyType" binding:"omitempty,partytype"`
	CategoryType *domain.CategoryType `json:"categoryType" binding:"omitempty,categorytype"`
	PartyID      *string              `json:"partyID"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Omitted fields are left untouched; an empty classifier clears it.
type UpdateAccountRequest struct {
	Name         *string              `json:"name"`
	AccountType  *domain.AccountType  `json:"accountType" binding:"omitempty,accounttype"`
	MoneyType    *domain.MoneyType    `json:"moneyType" binding:"omitempty,moneytype"`
	PartyType    *domain.PartyType    `json:"partyType" binding:"omitempty,partytype"`
	CategoryType *domain.CategoryType `json:"categoryType" binding:"omitempty,categorytype"`
	PartyID      *string              `json:"partyID"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateAccountRequest) ToPatch() domain.AccountPatch {
	return domain.AccountPatch{
		Name:         r.Name,
		AccountType:  r.AccountType,
		MoneyType:    r.MoneyType,
		PartyType:    r.PartyType,
		CategoryType: r.CategoryType,
		PartyID:      r.PartyID,
	}
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string               `json:"accountID"`
	BusinessID    string               `json:"businessID"`
	Name          string               `json:"name"`
	AccountType   domain.AccountType   `json:"accountType"`
	MoneyType     *domain.MoneyType    `json:"moneyType,omitempty"`
	PartyType     *domain.PartyType    `json:"partyType,omitempty"`
	CategoryType  *domain.CategoryType `json:"categoryType,omitempty"`
	PartyID       *string              `json:"partyID,omitempty"`
	Status        domain.AccountStatus `json:"status"`
	IsSystem      bool                 `json:"isSystem"`
	IsActive      bool                 `json:"isActive"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy string               `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		BusinessID:    acc.BusinessID,
		Name:          acc.Name,
		AccountType:   acc.AccountType,
		MoneyType:     acc.MoneyType,
		PartyType:     acc.PartyType,
		CategoryType:  acc.CategoryType,
		PartyID:       acc.PartyID,
		Status:        acc.Status,
		IsSystem:      acc.IsSystem(),
		IsActive:      acc.IsActive(),
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToListAccountResponse converts a slice of domain.Account to ListAccountsResponse DTO
func ToListAccountResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: res}
}

// DeleteAccountResponse reports whether the account was removed or only deactivated.
type DeleteAccountResponse struct {
	Success bool                   `json:"success"`
	Outcome domain.DeletionOutcome `json:"outcome"`
	Message string                 `json:"message"`
}

func ToDeleteAccountResponse(res domain.DeleteAccountResult) DeleteAccountResponse {
	return DeleteAccountResponse{Success: true, Outcome: res.Outcome, Message: res.Message}
}

// AccountBalanceResponse is an account together with its current balance.
type AccountBalanceResponse struct {
	AccountResponse
	Balance decimal.Decimal `json:"balance"`
}

func ToAccountBalanceResponse(b *domain.AccountBalance) AccountBalanceResponse {
	return AccountBalanceResponse{AccountResponse: ToAccountResponse(&b.Account), Balance: b.Balance}
}

// ListAccountBalancesResponse wraps the list of account balances.
type ListAccountBalancesResponse struct {
	Balances []AccountBalanceResponse `json:"balances"`
}

func ToListAccountBalancesResponse(balances []domain.AccountBalance) ListAccountBalancesResponse {
	res := make([]AccountBalanceResponse, len(balances))
	for i := range balances {
		res[i] = ToAccountBalanceResponse(&balances[i])
	}
	return ListAccountBalancesResponse{Balances: res}
}

// BalanceSummaryResponse is the per-type totals of a business.
type BalanceSummaryResponse struct {
	TotalsByType map[domain.AccountType]decimal.Decimal `json:"totalsByType"`
	Net          decimal.Decimal                        `json:"net"`
	Balanced     bool                                   `json:"balanced"`
}

func ToBalanceSummaryResponse(s *domain.BalanceSummary) BalanceSummaryResponse {
	return BalanceSummaryResponse{TotalsByType: s.TotalsByType, Net: s.Net, Balanced: s.Balanced}
}
