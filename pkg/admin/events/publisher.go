package events

import (
	"context"
	"time"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/pkg/logger"
	pkgEvents "github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/events"
	pktNats "github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/nats"

	"github.com/google/uuid"
)

// Publisher abstracts event publishing for admin operations
type Publisher interface {
	PublishRefundProcessed(ctx context.Context, caseId, purchaseId, buyerId, sellerId uuid.UUID, amount float64)
	PublishCaseStatusChanged(ctx context.Context, caseId uuid.UUID, caseNumber, from, to string)
	PublishUserFlagsUpdated(ctx context.Context, userId uuid.UUID, email string, approved, suspended bool)
}

// NatsPublisher implements Publisher using NATS
type NatsPublisher struct {
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

// NewNatsPublisher creates a new NATS-based event publisher
func NewNatsPublisher(publisher *pktNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

// PublishRefundProcessed emits REFUND_PROCESSED after the refund transaction commits.
func (p *NatsPublisher) PublishRefundProcessed(ctx context.Context, caseId, purchaseId, buyerId, sellerId uuid.UUID, amount float64) {
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.NewRefundProcessed(caseId, purchaseId, buyerId, sellerId, amount)
	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("ADMIN", "Failed to publish REFUND_PROCESSED event", map[string]interface{}{"error": err.Error()})
	}
}

// PublishCaseStatusChanged emits CASE_STATUS_CHANGED
func (p *NatsPublisher) PublishCaseStatusChanged(ctx context.Context, caseId uuid.UUID, caseNumber, from, to string) {
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.NewCaseStatusChanged(caseId, caseNumber, from, to)
	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("ADMIN", "Failed to publish CASE_STATUS_CHANGED event", map[string]interface{}{"error": err.Error()})
	}
}

// PublishUserFlagsUpdated emits USER_FLAGS_UPDATED when an admin approves or suspends an account.
func (p *NatsPublisher) PublishUserFlagsUpdated(ctx context.Context, userId uuid.UUID, email string, approved, suspended bool) {
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type: "USER_FLAGS_UPDATED",
		Data: map[string]interface{}{
			"user_id":     userId.String(),
			"email":       email,
			"approved":    approved,
			"suspended":   suspended,
			"entity_type": "user",
			"entity_id":   userId.String(),
		},
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("ADMIN", "Failed to publish USER_FLAGS_UPDATED event", map[string]interface{}{"error": err.Error()})
	}
}
