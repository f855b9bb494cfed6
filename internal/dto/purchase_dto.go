package dto

import (
	"time"

	"github.com/google/uuid"
)

type BuyTicketRequest struct {
	TicketId uuid.UUID `json:"ticket_id" validate:"required"`
}

type PurchaseResponse struct {
	Id            uuid.UUID  `json:"id"`
	TicketId      uuid.UUID  `json:"ticket_id"`
	TicketTitle   string     `json:"ticket_title,omitempty"`
	TicketCode    string     `json:"ticket_code,omitempty"`
	SellerId      uuid.UUID  `json:"seller_id"`
	Price         float64    `json:"price"`
	PaymentStatus string     `json:"payment_status"`
	PurchaseDate  time.Time  `json:"purchase_date"`
	RefundedAt    *time.Time `json:"refunded_at,omitempty"`
}

type WalletResponse struct {
	CreditBalance float64                     `json:"credit_balance"`
	LoyaltyPoints int                         `json:"loyalty_points"`
	Transactions  []WalletTransactionResponse `json:"transactions"`
}

type WalletTransactionResponse struct {
	Id          uuid.UUID  `json:"id"`
	Amount      float64    `json:"amount"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	ReferenceId *uuid.UUID `json:"reference_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type TopupRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}
