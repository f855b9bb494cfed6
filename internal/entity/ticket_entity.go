package entity

import (
	"time"

	"github.com/google/uuid"
)

// Ticket is a betting-tip product listed by a seller. Not to be confused
// with a support Case, which buyers raise against a Purchase.
type Ticket struct {
	Id          uuid.UUID
	SellerId    uuid.UUID
	Title       string
	Description string
	Price       float64
	BettingSite string
	TicketCode  string
	Odds        float64
	KickoffAt   time.Time
	IsPublished bool
	IsFree      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Seller *User
}

// IsExpired reports whether the event the tip covers has already kicked off.
func (t *Ticket) IsExpired(now time.Time) bool {
	return now.After(t.KickoffAt)
}
