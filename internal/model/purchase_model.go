package model

import (
	"time"

	"github.com/google/uuid"
)

type Purchase struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TicketId      uuid.UUID `gorm:"type:uuid;not null;index:idx_purchases_ticket_buyer,priority:1"`
	BuyerId       uuid.UUID `gorm:"type:uuid;not null;index:idx_purchases_ticket_buyer,priority:2;index"`
	SellerId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Price         float64   `gorm:"type:decimal(12,2);not null"`
	PaymentStatus string    `gorm:"type:varchar(20);not null;default:'completed'"`
	PurchaseDate  time.Time `gorm:"not null"`
	RefundedAt    *time.Time

	Ticket Ticket `gorm:"foreignKey:TicketId"`
	Buyer  User   `gorm:"foreignKey:BuyerId"`
	Seller User   `gorm:"foreignKey:SellerId"`
}
