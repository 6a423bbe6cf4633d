package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	BusinessID    string          `db:"business_id"`
	Amount        decimal.Decimal `db:"amount"`
	Date          time.Time       `db:"date"`
	Description   string          `db:"description"`
	PaymentMode   string          `db:"payment_mode"`
	Direction     string          `db:"direction"`
	FromAccountID string          `db:"from_account_id"`
	ToAccountID   string          `db:"to_account_id"`
	PartyID       *string         `db:"party_id"`
	UserID        string          `db:"user_id"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// LedgerMovement is the projection used for balance folding.
type LedgerMovement struct {
	Amount        decimal.Decimal `db:"amount"`
	FromAccountID string          `db:"from_account_id"`
	ToAccountID   string          `db:"to_account_id"`
}
