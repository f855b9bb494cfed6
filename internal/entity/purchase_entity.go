package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type Purchase struct {
	Id            uuid.UUID
	TicketId      uuid.UUID
	BuyerId       uuid.UUID
	SellerId      uuid.UUID
	Price         float64
	PaymentStatus PaymentStatus
	PurchaseDate  time.Time
	RefundedAt    *time.Time

	Ticket *Ticket
	Buyer  *User
	Seller *User
}

// Refundable reports whether the purchase can still be reversed.
// A purchase transitions to refunded exactly once.
func (p *Purchase) Refundable() bool {
	return p.PaymentStatus == PaymentStatusCompleted
}
