package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Admin-Side Refund Processing ---

type AdminProcessRefundRequest struct {
	AdminNotes string `json:"admin_notes,omitempty"`
}

type AdminProcessRefundResponse struct {
	CaseId         uuid.UUID `json:"case_id"`
	PurchaseId     uuid.UUID `json:"purchase_id"`
	RefundedAmount float64   `json:"refunded_amount"`
	CaseStatus     string    `json:"case_status"`
	ProcessedAt    time.Time `json:"processed_at"`
}
