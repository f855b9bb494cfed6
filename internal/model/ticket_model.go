package model

import (
	"time"

	"github.com/google/uuid"
)

type Ticket struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:decimal(12,2);not null"`
	BettingSite string    `gorm:"type:varchar(100)"`
	TicketCode  string    `gorm:"type:varchar(100)"`
	Odds        float64   `gorm:"type:decimal(8,2)"`
	KickoffAt   time.Time `gorm:"index"`
	IsPublished bool      `gorm:"default:false;index"`
	IsFree      bool      `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Seller User `gorm:"foreignKey:SellerId"`
}
