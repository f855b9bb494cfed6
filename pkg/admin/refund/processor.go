package refund

import (
	"context"
	"errors"
	"time"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/pkg/logger"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/specification"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/unitofwork"
	adminEvents "github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/admin/events"

	"github.com/google/uuid"
)

var (
	ErrCaseNotFound      = errors.New("case not found")
	ErrPurchaseNotFound  = errors.New("purchase not found for case")
	ErrAlreadyRefunded   = errors.New("purchase already refunded")
	ErrCaseNotRefundable = errors.New("case status does not allow a refund")
)

// Result contains the outcome of a processed refund.
type Result struct {
	CaseId         uuid.UUID
	PurchaseId     uuid.UUID
	BuyerId        uuid.UUID
	SellerId       uuid.UUID
	CaseNumber     string
	RefundedAmount float64
	ProcessedAt    time.Time
}

// Processor reverses a completed purchase in one database transaction:
// purchase marked refunded, buyer credited, seller debited, two wallet
// audit rows written, case resolved. All six writes commit or none do.
type Processor struct {
	logger    logger.ILogger
	publisher adminEvents.Publisher
}

// NewProcessor creates a new refund processor
func NewProcessor(logger logger.ILogger, publisher adminEvents.Publisher) *Processor {
	return &Processor{
		logger:    logger,
		publisher: publisher,
	}
}

// Process refunds the purchase behind the given case.
//
// Idempotency: the purchase row is flipped with a guarded UPDATE that only
// matches payment_status = completed. A second invocation for the same case
// sees zero rows affected and returns ErrAlreadyRefunded without touching
// any balance.
func (p *Processor) Process(ctx context.Context, uow unitofwork.UnitOfWork, caseId uuid.UUID, adminNotes string) (*Result, error) {
	// 1. Start transaction
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// 2. Load the case with its purchase
	c, err := uow.CaseRepository().FindOneWithDetails(ctx, specification.ByID{ID: caseId})
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	if c.Purchase == nil || c.Purchase.Id == uuid.Nil {
		return nil, ErrPurchaseNotFound
	}
	if !entity.CanTransition(c.Status, entity.CaseStatusResolved) {
		return nil, ErrCaseNotRefundable
	}

	purchase := c.Purchase
	amount := purchase.Price
	now := time.Now()

	// 3. Guarded purchase flip (the idempotency gate)
	rows, err := uow.PurchaseRepository().MarkRefunded(ctx, purchase.Id, now)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAlreadyRefunded
	}

	// 4. Move the balances: buyer +amount, seller -amount
	if err := uow.UserRepository().AdjustCreditBalance(ctx, purchase.BuyerId, amount); err != nil {
		return nil, err
	}
	if err := uow.UserRepository().AdjustCreditBalance(ctx, purchase.SellerId, -amount); err != nil {
		return nil, err
	}

	// 5. Audit trail
	refId := purchase.Id
	buyerTx := &entity.WalletTransaction{
		Id:          uuid.New(),
		UserId:      purchase.BuyerId,
		Amount:      amount,
		Type:        entity.TransactionTypeRefund,
		Description: "Refund for case " + c.CaseNumber,
		ReferenceId: &refId,
		CreatedAt:   now,
	}
	sellerTx := &entity.WalletTransaction{
		Id:          uuid.New(),
		UserId:      purchase.SellerId,
		Amount:      -amount,
		Type:        entity.TransactionTypeRefundDeduction,
		Description: "Refund deduction for case " + c.CaseNumber,
		ReferenceId: &refId,
		CreatedAt:   now,
	}
	if err := uow.WalletRepository().CreateTransaction(ctx, buyerTx); err != nil {
		return nil, err
	}
	if err := uow.WalletRepository().CreateTransaction(ctx, sellerTx); err != nil {
		return nil, err
	}

	// 6. Resolve the case
	if err := uow.CaseRepository().UpdateStatus(ctx, c.Id, entity.CaseStatusResolved); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	p.logger.Info("ADMIN", "Processed Refund", map[string]interface{}{
		"caseId":     caseId.String(),
		"purchaseId": purchase.Id.String(),
		"buyerId":    purchase.BuyerId.String(),
		"sellerId":   purchase.SellerId.String(),
		"amount":     amount,
		"adminNotes": adminNotes,
	})

	// 7. Emit REFUND_PROCESSED after commit (best-effort)
	p.publisher.PublishRefundProcessed(ctx, c.Id, purchase.Id, purchase.BuyerId, purchase.SellerId, amount)

	return &Result{
		CaseId:         c.Id,
		PurchaseId:     purchase.Id,
		BuyerId:        purchase.BuyerId,
		SellerId:       purchase.SellerId,
		CaseNumber:     c.CaseNumber,
		RefundedAmount: amount,
		ProcessedAt:    now,
	}, nil
}
