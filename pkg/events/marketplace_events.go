package events

import (
	"time"

	"github.com/google/uuid"
)

// Event type codes published to the change feed.
const (
	TypeCaseOpened        = "CASE_OPENED"
	TypeCaseReplied       = "CASE_REPLIED"
	TypeCaseStatusChanged = "CASE_STATUS_CHANGED"
	TypeRefundProcessed   = "REFUND_PROCESSED"
	TypeTicketPurchased   = "TICKET_PURCHASED"
)

func NewCaseOpened(caseId uuid.UUID, caseNumber string, userId uuid.UUID) Event {
	return BaseEvent{
		Type: TypeCaseOpened,
		Data: map[string]interface{}{
			"case_id":     caseId.String(),
			"case_number": caseNumber,
			"user_id":     userId.String(),
			"entity_type": "case",
			"entity_id":   caseId.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewCaseReplied(caseId uuid.UUID, caseNumber string, authorId, recipientId uuid.UUID) Event {
	return BaseEvent{
		Type: TypeCaseReplied,
		Data: map[string]interface{}{
			"case_id":     caseId.String(),
			"case_number": caseNumber,
			"actor_id":    authorId.String(),
			"user_id":     recipientId.String(),
			"entity_type": "case",
			"entity_id":   caseId.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewCaseStatusChanged(caseId uuid.UUID, caseNumber, from, to string) Event {
	return BaseEvent{
		Type: TypeCaseStatusChanged,
		Data: map[string]interface{}{
			"case_id":     caseId.String(),
			"case_number": caseNumber,
			"from_status": from,
			"to_status":   to,
			"entity_type": "case",
			"entity_id":   caseId.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewRefundProcessed(caseId, purchaseId, buyerId, sellerId uuid.UUID, amount float64) Event {
	return BaseEvent{
		Type: TypeRefundProcessed,
		Data: map[string]interface{}{
			"case_id":     caseId.String(),
			"purchase_id": purchaseId.String(),
			"buyer_id":    buyerId.String(),
			"seller_id":   sellerId.String(),
			"amount":      amount,
			"entity_type": "purchase",
			"entity_id":   purchaseId.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewTicketPurchased(purchaseId, ticketId, buyerId, sellerId uuid.UUID, price float64) Event {
	return BaseEvent{
		Type: TypeTicketPurchased,
		Data: map[string]interface{}{
			"purchase_id": purchaseId.String(),
			"ticket_id":   ticketId.String(),
			"buyer_id":    buyerId.String(),
			"seller_id":   sellerId.String(),
			"price":       price,
			"entity_type": "purchase",
			"entity_id":   purchaseId.String(),
		},
		OccurredAt: time.Now(),
	}
}
