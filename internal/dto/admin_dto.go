package dto

import (
	"time"

	"github.com/google/uuid"
)

type AdminUserListItem struct {
	Id            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	Role          string    `json:"role"`
	Approved      bool      `json:"approved"`
	Suspended     bool      `json:"suspended"`
	CreditBalance float64   `json:"credit_balance"`
	CreatedAt     time.Time `json:"created_at"`
}

type AdminUpdateUserStatusRequest struct {
	Approved  *bool `json:"approved,omitempty"`
	Suspended *bool `json:"suspended,omitempty"`
}

type DashboardStatsResponse struct {
	TotalUsers     int64   `json:"total_users"`
	TotalSellers   int64   `json:"total_sellers"`
	TotalTickets   int64   `json:"total_tickets"`
	TotalPurchases int64   `json:"total_purchases"`
	OpenCases      int64   `json:"open_cases"`
	RefundedTotal  float64 `json:"refunded_total"`
	GeneratedAt    time.Time `json:"generated_at"`
}
