package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTicketRequest struct {
	Title       string    `json:"title" validate:"required,min=5,max=255"`
	Description string    `json:"description" validate:"required,min=10"`
	Price       float64   `json:"price" validate:"gte=0"`
	BettingSite string    `json:"betting_site" validate:"required"`
	TicketCode  string    `json:"ticket_code" validate:"required"`
	Odds        float64   `json:"odds" validate:"gt=0"`
	KickoffAt   time.Time `json:"kickoff_at" validate:"required"`
	IsFree      bool      `json:"is_free"`
}

type UpdateTicketRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=5,max=255"`
	Description *string    `json:"description,omitempty"`
	Price       *float64   `json:"price,omitempty" validate:"omitempty,gte=0"`
	KickoffAt   *time.Time `json:"kickoff_at,omitempty"`
	IsPublished *bool      `json:"is_published,omitempty"`
}

type TicketResponse struct {
	Id          uuid.UUID `json:"id"`
	SellerId    uuid.UUID `json:"seller_id"`
	SellerName  string    `json:"seller_name,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	BettingSite string    `json:"betting_site"`
	Odds        float64   `json:"odds"`
	KickoffAt   time.Time `json:"kickoff_at"`
	IsPublished bool      `json:"is_published"`
	IsFree      bool      `json:"is_free"`
	CreatedAt   time.Time `json:"created_at"`
}
