package dto

import (
	"time"

	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordTransactionRequest creates a transaction, or amends one when TransactionID is set.
type RecordTransactionRequest struct {
	TransactionID string             `json:"transactionID"`
	Amount        decimal.Decimal    `json:"amount"`
	Date          time.Time          `json:"date" binding:"required"`
	Description   string             `json:"description"`
	PaymentMode   domain.PaymentMode `json:"paymentMode" binding:"required,paymentmode"`
	Direction     domain.Direction   `json:"direction" binding:"required,direction"`
	FromAccountID string             `json:"fromAccountID"`
	ToAccountID   string             `json:"toAccountID"`
	PartyID       *string            `json:"partyID"`
}

// IsAmendment reports whether the request targets an existing transaction.
func (r RecordTransactionRequest) IsAmendment() bool {
	return r.TransactionID != ""
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	AccountID string `form:"accountID"`
	PartyID   string `form:"partyID"`
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string             `json:"transactionID"`
	BusinessID    string             `json:"businessID"`
	Amount        decimal.Decimal    `json:"amount"`
	Date          time.Time          `json:"date"`
	Description   string             `json:"description"`
	PaymentMode   domain.PaymentMode `json:"paymentMode"`
	Direction     domain.Direction   `json:"direction"`
	FromAccountID string             `json:"fromAccountID"`
	ToAccountID   string             `json:"toAccountID"`
	PartyID       *string            `json:"partyID,omitempty"`
	UserID        string             `json:"userID"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		BusinessID:    t.BusinessID,
		Amount:        t.Amount,
		Date:          t.Date,
		Description:   t.Description,
		PaymentMode:   t.PaymentMode,
		Direction:     t.Direction,
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
		PartyID:       t.PartyID,
		UserID:        t.UserID,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: res, NextToken: nextToken}
}
