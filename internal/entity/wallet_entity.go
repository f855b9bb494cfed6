package entity

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionTypePurchase        TransactionType = "purchase"
	TransactionTypeSale            TransactionType = "sale"
	TransactionTypeRefund          TransactionType = "refund"
	TransactionTypeRefundDeduction TransactionType = "refund_deduction"
	TransactionTypeTopup           TransactionType = "topup"
)

// WalletTransaction is an audit row for every credit balance movement.
// Amount is signed: positive credits the wallet, negative debits it.
type WalletTransaction struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Amount      float64
	Type        TransactionType
	Description string
	ReferenceId *uuid.UUID
	CreatedAt   time.Time
}
