package service

import (
	"context"
	"testing"
	"time"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/dto"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/model"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/memory"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/admin/dashboard"
	adminEvents "github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/admin/events"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/admin/refund"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/admin/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminService(e *testEnv) IAdminService {
	events := adminEvents.NewNatsPublisher(nil, noopLogger{})
	return NewAdminService(
		e.uowFactory,
		refund.NewProcessor(noopLogger{}, events),
		user.NewManager(noopLogger{}, events),
		dashboard.NewAggregator(noopLogger{}, memory.NewStatsCache(time.Minute)),
		e.notifSvc,
		nil,
		noopLogger{},
	)
}

// Full lifecycle: buy a R100 ticket, open a case, pick it up, refund it.
func TestProcessRefundFullLifecycle(t *testing.T) {
	e := newTestEnv(t)
	purchaseSvc := newPurchaseService(e)
	caseSvc := newCaseService(e)
	adminSvc := newAdminService(e)
	ctx := context.Background()

	seller := e.seedUser(t, "seller@test.local", "seller", 0)
	buyer := e.seedUser(t, "buyer@test.local", "buyer", 150)
	e.seedUser(t, "admin@test.local", "admin", 0)
	ticket := e.seedTicket(t, seller.Id, 100)

	bought, err := purchaseSvc.BuyTicket(ctx, buyer.Id, &dto.BuyTicketRequest{TicketId: ticket.Id})
	require.NoError(t, err)
	require.InDelta(t, 50, e.userBalance(t, buyer.Id), 0.001)
	require.InDelta(t, 100, e.userBalance(t, seller.Id), 0.001)

	created, err := caseSvc.CreateCase(ctx, buyer.Id, &dto.CreateCaseRequest{
		TicketId:    ticket.Id,
		PurchaseId:  bought.Id,
		Title:       "Code invalid",
		Description: "The betting site rejected the code.",
	})
	require.NoError(t, err)

	_, err = caseSvc.UpdateStatus(ctx, created.CaseId, &dto.UpdateCaseStatusRequest{Status: "in_progress"})
	require.NoError(t, err)

	res, err := adminSvc.ProcessRefund(ctx, created.CaseId, dto.AdminProcessRefundRequest{AdminNotes: "verified"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.CaseStatusResolved), res.CaseStatus)
	assert.InDelta(t, 100, res.RefundedAmount, 0.001)

	// Money went back where it came from
	assert.InDelta(t, 150, e.userBalance(t, buyer.Id), 0.001)
	assert.InDelta(t, 0, e.userBalance(t, seller.Id), 0.001)

	var p model.Purchase
	require.NoError(t, e.db.First(&p, "id = ?", bought.Id).Error)
	assert.Equal(t, string(entity.PaymentStatusRefunded), p.PaymentStatus)
	assert.NotNil(t, p.RefundedAt)

	var c model.Case
	require.NoError(t, e.db.First(&c, "id = ?", created.CaseId).Error)
	assert.Equal(t, string(entity.CaseStatusResolved), c.Status)

	// Exactly one inbox entry tells the buyer about the refund
	var refundNotifs int64
	e.db.Model(&model.Notification{}).
		Where("user_id = ? AND type = ? AND title = ?",
			buyer.Id, string(model.NotificationTypeCase), "Refund Processed").
		Count(&refundNotifs)
	assert.EqualValues(t, 1, refundNotifs)

	// Purchase left two audit rows, the refund two more
	var txCount int64
	e.db.Model(&model.WalletTransaction{}).Count(&txCount)
	assert.EqualValues(t, 4, txCount)
}

func TestProcessRefundRejectsOpenCase(t *testing.T) {
	e := newTestEnv(t)
	caseSvc := newCaseService(e)
	adminSvc := newAdminService(e)
	ctx := context.Background()

	seller := e.seedUser(t, "seller@test.local", "seller", 100)
	buyer := e.seedUser(t, "buyer@test.local", "buyer", 0)
	ticket := e.seedTicket(t, seller.Id, 100)
	purchase := e.seedPurchase(t, ticket, buyer.Id)

	created, err := caseSvc.CreateCase(ctx, buyer.Id, &dto.CreateCaseRequest{
		TicketId:    ticket.Id,
		PurchaseId:  purchase.Id,
		Title:       "Code invalid",
		Description: "The betting site rejected the code.",
	})
	require.NoError(t, err)

	// Nobody picked the case up yet
	_, err = adminSvc.ProcessRefund(ctx, created.CaseId, dto.AdminProcessRefundRequest{})
	assert.ErrorIs(t, err, refund.ErrCaseNotRefundable)
	assert.InDelta(t, 0, e.userBalance(t, buyer.Id), 0.001)
}
