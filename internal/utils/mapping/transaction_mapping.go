package mapping

import (
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	"github.com/Murlidhar08/settlr-sub001/internal/models"
)

func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		BusinessID:    d.BusinessID,
		Amount:        d.Amount,
		Date:          d.Date,
		Description:   d.Description,
		PaymentMode:   string(d.PaymentMode),
		Direction:     string(d.Direction),
		FromAccountID: d.FromAccountID,
		ToAccountID:   d.ToAccountID,
		PartyID:       d.PartyID,
		UserID:        d.UserID,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		BusinessID:    m.BusinessID,
		Amount:        m.Amount,
		Date:          m.Date.UTC(),
		Description:   m.Description,
		PaymentMode:   domain.PaymentMode(m.PaymentMode),
		Direction:     domain.Direction(m.Direction),
		FromAccountID: m.FromAccountID,
		ToAccountID:   m.ToAccountID,
		PartyID:       m.PartyID,
		UserID:        m.UserID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

func ToDomainLedgerMovementSlice(ms []models.LedgerMovement) []domain.LedgerMovement {
	ds := make([]domain.LedgerMovement, len(ms))
	for i, m := range ms {
		ds[i] = domain.LedgerMovement{Amount: m.Amount, FromAccountID: m.FromAccountID, ToAccountID: m.ToAccountID}
	}
	return ds
}
