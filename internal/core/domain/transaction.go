package domain

import (
	"fmt"
	"time"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PaymentMode is how money changed hands.
type PaymentMode string

const (
	PaymentModeCash   PaymentMode = "CASH"
	PaymentModeBank   PaymentMode = "BANK"
	PaymentModeUPI    PaymentMode = "UPI"
	PaymentModeCard   PaymentMode = "CARD"
	PaymentModeCheque PaymentMode = "CHEQUE"
	PaymentModeOther  PaymentMode = "OTHER"
)

func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModeCash, PaymentModeBank, PaymentModeUPI, PaymentModeCard, PaymentModeCheque, PaymentModeOther:
		return true
	}
	return false
}

// Direction is the user-facing sense of a transaction (money received or paid).
// Balances are driven by the from/to pair alone.
type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

func (d Direction) IsValid() bool {
	return d == DirectionIn || d == DirectionOut
}

// Amounts are stored as NUMERIC(20, 4).
const AmountScale = 4

// MaxAmount is the exclusive upper bound of a transaction amount.
var MaxAmount = decimal.New(1, 16)

// Transaction is a directed movement of Amount from FromAccountID to ToAccountID.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	BusinessID    string          `json:"businessID"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description,omitempty"`
	PaymentMode   PaymentMode     `json:"paymentMode"`
	Direction     Direction       `json:"direction"`
	FromAccountID string          `json:"fromAccountID"`
	ToAccountID   string          `json:"toAccountID"`
	PartyID       *string         `json:"partyID,omitempty"`
	UserID        string          `json:"userID"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Validate checks the rules that do not need storage: a positive amount that
// fits the stored precision, known enums and two distinct accounts.
func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if !t.Amount.Equal(t.Amount.Truncate(AmountScale)) {
		return fmt.Errorf("%w: amount supports at most %d decimal places", apperrors.ErrValidation, AmountScale)
	}
	if t.Amount.GreaterThanOrEqual(MaxAmount) {
		return fmt.Errorf("%w: amount must be less than %s", apperrors.ErrValidation, MaxAmount)
	}
	if !t.PaymentMode.IsValid() {
		return fmt.Errorf("%w: invalid payment mode %q", apperrors.ErrValidation, t.PaymentMode)
	}
	if !t.Direction.IsValid() {
		return fmt.Errorf("%w: invalid direction %q", apperrors.ErrValidation, t.Direction)
	}
	if t.FromAccountID == "" || t.ToAccountID == "" {
		return fmt.Errorf("%w: both fromAccountID and toAccountID are required", apperrors.ErrValidation)
	}
	if t.FromAccountID == t.ToAccountID {
		return fmt.Errorf("%w: fromAccountID and toAccountID must differ", apperrors.ErrValidation)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	return nil
}

// Movement projects the transaction onto the fields the balance fold needs.
func (t Transaction) Movement() LedgerMovement {
	return LedgerMovement{Amount: t.Amount, FromAccountID: t.FromAccountID, ToAccountID: t.ToAccountID}
}

// LedgerMovement is the minimal view of a transaction used to derive balances.
type LedgerMovement struct {
	Amount        decimal.Decimal
	FromAccountID string
	ToAccountID   string
}

// TransactionFilter narrows a transaction listing. Empty fields do not filter.
type TransactionFilter struct {
	AccountID string
	PartyID   string
}
