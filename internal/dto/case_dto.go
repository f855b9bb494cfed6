package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCaseRequest struct {
	TicketId    uuid.UUID `json:"ticket_id" validate:"required"`
	PurchaseId  uuid.UUID `json:"purchase_id" validate:"required"`
	Title       string    `json:"title" validate:"required,min=5,max=255"`
	Description string    `json:"description" validate:"required,min=10"`
}

type CreateCaseResponse struct {
	CaseId     uuid.UUID `json:"case_id"`
	CaseNumber string    `json:"case_number"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type CaseListItem struct {
	Id          uuid.UUID `json:"id"`
	CaseNumber  string    `json:"case_number"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	UserId      uuid.UUID `json:"user_id"`
	CreatorName string    `json:"creator_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CaseListResponse struct {
	Cases []CaseListItem `json:"cases"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type CaseDetailResponse struct {
	Id          uuid.UUID           `json:"id"`
	CaseNumber  string              `json:"case_number"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      string              `json:"status"`
	UserId      uuid.UUID           `json:"user_id"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Purchase    *CasePurchaseInfo   `json:"purchase,omitempty"`
	Ticket      *CaseTicketInfo     `json:"ticket,omitempty"`
	Replies     []CaseReplyResponse `json:"replies"`
}

type CasePurchaseInfo struct {
	Id            uuid.UUID  `json:"id"`
	Price         float64    `json:"price"`
	PaymentStatus string     `json:"payment_status"`
	PurchaseDate  time.Time  `json:"purchase_date"`
	RefundedAt    *time.Time `json:"refunded_at,omitempty"`
	BuyerId       uuid.UUID  `json:"buyer_id"`
	SellerId      uuid.UUID  `json:"seller_id"`
}

type CaseTicketInfo struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	BettingSite string    `json:"betting_site"`
	SellerId    uuid.UUID `json:"seller_id"`
}

type CaseReplyRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

type CaseReplyResponse struct {
	Id         uuid.UUID `json:"id"`
	UserId     uuid.UUID `json:"user_id"`
	AuthorName string    `json:"author_name,omitempty"`
	AuthorRole string    `json:"author_role,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type UpdateCaseStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open in_progress resolved refunded closed"`
}
