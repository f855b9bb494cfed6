package service

import (
	"context"
	"testing"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/dto"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCaseService(e *testEnv) ICaseService {
	return NewCaseService(e.uowFactory, e.notifSvc, nil, nil, noopLogger{})
}

func TestCreateCase(t *testing.T) {
	e := newTestEnv(t)
	svc := newCaseService(e)
	ctx := context.Background()

	seller := e.seedUser(t, "seller@test.local", "seller", 100)
	buyer := e.seedUser(t, "buyer@test.local", "buyer", 0)
	e.seedUser(t, "admin1@test.local", "admin", 0)
	e.seedUser(t, "admin2@test.local", "admin", 0)
	ticket := e.seedTicket(t, seller.Id, 100)
	purchase := e.seedPurchase(t, ticket, buyer.Id)

	res, err := svc.CreateCase(ctx, buyer.Id, &dto.CreateCaseRequest{
		TicketId:    ticket.Id,
		PurchaseId:  purchase.Id,
		Title:       "Ticket code invalid",
		Description: "The code was rejected by the betting site.",
	})
	require.NoError(t, err)
	assert.Equal(t, "SC-000001", res.CaseNumber)
	assert.Equal(t, string(entity.CaseStatusOpen), res.Status)

	// One inbox row per admin
	var count int64
	e.db.Model(&model.Notification{}).Where("type = ?", string(model.NotificationTypeCase)).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestCreateCaseSurvivesNotificationFailure(t *testing.T) {
	e := newTestEnv(t)
	svc := newCaseService(e)
	ctx := context.Background()

	seller := e.seedUser(t, "seller@test.local", "seller", 100)
	buyer := e.seedUser(t, "buyer@test.local", "buyer", 0)
	e.seedUser(t, "admin1@test.local", "admin", 0)
	e.seedUser(t, "admin2@test.local", "admin", 0)
	ticket := e.seedTicket(t, seller.Id, 100)
	purchase := e.seedPurchase(t, ticket, buyer.Id)

	e.notifRepo.failCreate = true

	res, err := svc.CreateCase(ctx, buyer.Id, &dto.CreateCaseRequest{
		TicketId:    ticket.Id,
		PurchaseId:  purchase.Id,
		Title:       "Ticket code invalid",
		Description: "The code was rejected by the betting site.",
	})
	require.NoError(t, err)

	// Exactly one case row, one insert attempt per admin
	var caseCount int64
	e.db.Model(&model.Case{}).Count(&caseCount)
	assert.EqualValues(t, 1, caseCount)
	assert.Equal(t, 2, e.notifRepo.createAttempts)

	// And the case is fully readable afterwards
	detail, err := svc.GetCaseDetails(ctx, buyer.Id, "buyer", res.CaseId)
	require.NoError(t, err)
	assert.Equal(t, res.CaseNumber, detail.CaseNumber)
}

func TestCreateCaseRejectsForeignPurchase(t *testing.T) {
	e := newTestEnv(t)
	svc := newCaseService(e)
	ctx := context.Background()

	seller := e.seedUser(t, "seller@test.local", "seller", 100)
	buyer := e.seedUser(t, "buyer@test.local", "buyer", 0)
	other := e.seedUser(t, "other@test.local", "buyer", 0)
	ticket := e.seedTicket(t, seller.Id, 100)
	purchase := e.seedPurchase(t, ticket, buyer.Id)

	_, err := svc.CreateCase(ctx, other.Id, &dto.CreateCaseRequest{
		TicketId:    ticket.Id,
		PurchaseId:  purchase.Id,
		Title:       "Not my purchase",
		Description: "Trying to open someone else's case.",
	})
	assert.ErrorIs(t, err, ErrPurchaseNotOwned)
}

func TestGetCaseDetailsAccessControl(t *testing.T) {
	e := newTestEnv(t)
	svc := newCaseService(e)
	ctx := context.Background()

	seller := e.seedUser(t, "seller@test.local", "seller", 100)
	buyer := e.seedUser(t, "buyer@test.local", "buyer", 0)
	stranger := e.seedUser(t, "stranger@test.local", "buyer", 0)
	admin := e.seedUser(t, "admin@test.local", "admin", 0)
	ticket := e.seedTicket(t, seller.Id, 100)
	purchase := e.seedPurchase(t, ticket, buyer.Id)

	created, err := svc.CreateCase(ctx, buyer.Id, &dto.CreateCaseRequest{
		TicketId:    ticket.Id,
		PurchaseId:  purchase.Id,
		Title:       "Code invalid",
		Description: "The betting site rejected the code.",
	})
	require.NoError(t, err)

	// Creator, seller and admin can read it
	for _, viewer := range []struct {
		id   uuid.UUID
		role string
	}{
		{buyer.Id, "buyer"},
		{seller.Id, "seller"},
		{admin.Id, "admin"},
	} {
		_, err := svc.GetCaseDetails(ctx, viewer.id, viewer.role, created.CaseId)
		assert.NoError(t, err)
	}

	// A stranger gets forbidden, not not-found
	_, err = svc.GetCaseDetails(ctx, stranger.Id, "buyer", created.CaseId)
	assert.ErrorIs(t, err, ErrCaseForbidden)

	// An unknown id gets not-found, even for admins
	_, err = svc.GetCaseDetails(ctx, admin.Id, "admin", uuid.New())
	assert.ErrorIs(t, err, ErrCaseNotFound)
}

func TestAddReplyOrderingAndNotifications(t *testing.T) {
	e := newTestEnv(t)
	svc := newCaseService(e)
	ctx := context.Background()

	seller := e.seedUser(t, "seller@test.local", "seller", 100)
	buyer := e.seedUser(t, "buyer@test.local", "buyer", 0)
	admin := e.seedUser(t, "admin@test.local", "admin", 0)
	ticket := e.seedTicket(t, seller.Id, 100)
	purchase := e.seedPurchase(t, ticket, buyer.Id)

	created, err := svc.CreateCase(ctx, buyer.Id, &dto.CreateCaseRequest{
		TicketId:    ticket.Id,
		PurchaseId:  purchase.Id,
		Title:       "Code invalid",
		Description: "The betting site rejected the code.",
	})
	require.NoError(t, err)

	before, err := svc.GetCaseDetails(ctx, buyer.Id, "buyer", created.CaseId)
	require.NoError(t, err)

	_, err = svc.AddReply(ctx, buyer.Id, "buyer", created.CaseId, &dto.CaseReplyRequest{Content: "first"})
	require.NoError(t, err)
	_, err = svc.AddReply(ctx, admin.Id, "admin", created.CaseId, &dto.CaseReplyRequest{Content: "second"})
	require.NoError(t, err)

	detail, err := svc.GetCaseDetails(ctx, buyer.Id, "buyer", created.CaseId)
	require.NoError(t, err)
	require.Len(t, detail.Replies, 2)
	assert.Equal(t, "first", detail.Replies[0].Content)
	assert.Equal(t, "second", detail.Replies[1].Content)

	// Each reply bumps the case
	assert.True(t, detail.UpdatedAt.After(before.UpdatedAt))

	// The admin reply landed in the buyer's inbox
	var buyerNotifs int64
	e.db.Model(&model.Notification{}).
		Where("user_id = ? AND title LIKE ?", buyer.Id, "New Reply%").
		Count(&buyerNotifs)
	assert.EqualValues(t, 1, buyerNotifs)
}

func TestUpdateStatusTransitionTable(t *testing.T) {
	e := newTestEnv(t)
	svc := newCaseService(e)
	ctx := context.Background()

	seller := e.seedUser(t, "seller@test.local", "seller", 100)
	buyer := e.seedUser(t, "buyer@test.local", "buyer", 0)
	ticket := e.seedTicket(t, seller.Id, 100)
	purchase := e.seedPurchase(t, ticket, buyer.Id)

	created, err := svc.CreateCase(ctx, buyer.Id, &dto.CreateCaseRequest{
		TicketId:    ticket.Id,
		PurchaseId:  purchase.Id,
		Title:       "Code invalid",
		Description: "The betting site rejected the code.",
	})
	require.NoError(t, err)

	// open -> resolved is illegal
	_, err = svc.UpdateStatus(ctx, created.CaseId, &dto.UpdateCaseStatusRequest{Status: "resolved"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// open -> in_progress -> resolved -> closed is the happy path
	for _, status := range []string{"in_progress", "resolved", "closed"} {
		detail, err := svc.UpdateStatus(ctx, created.CaseId, &dto.UpdateCaseStatusRequest{Status: status})
		require.NoError(t, err, "transition to %s", status)
		assert.Equal(t, status, detail.Status)
	}

	// closed is terminal
	_, err = svc.UpdateStatus(ctx, created.CaseId, &dto.UpdateCaseStatusRequest{Status: "open"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatusRefundedRequiresRefundedPurchase(t *testing.T) {
	e := newTestEnv(t)
	svc := newCaseService(e)
	ctx := context.Background()

	seller := e.seedUser(t, "seller@test.local", "seller", 100)
	buyer := e.seedUser(t, "buyer@test.local", "buyer", 0)
	ticket := e.seedTicket(t, seller.Id, 100)
	purchase := e.seedPurchase(t, ticket, buyer.Id)

	created, err := svc.CreateCase(ctx, buyer.Id, &dto.CreateCaseRequest{
		TicketId:    ticket.Id,
		PurchaseId:  purchase.Id,
		Title:       "Code invalid",
		Description: "The betting site rejected the code.",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, created.CaseId, &dto.UpdateCaseStatusRequest{Status: "in_progress"})
	require.NoError(t, err)

	// Purchase still completed: marking the case refunded must fail
	_, err = svc.UpdateStatus(ctx, created.CaseId, &dto.UpdateCaseStatusRequest{Status: "refunded"})
	assert.ErrorIs(t, err, ErrRefundViaStatusEdit)
}

func TestAddReplyClosedCase(t *testing.T) {
	e := newTestEnv(t)
	svc := newCaseService(e)
	ctx := context.Background()

	seller := e.seedUser(t, "seller@test.local", "seller", 100)
	buyer := e.seedUser(t, "buyer@test.local", "buyer", 0)
	ticket := e.seedTicket(t, seller.Id, 100)
	purchase := e.seedPurchase(t, ticket, buyer.Id)

	created, err := svc.CreateCase(ctx, buyer.Id, &dto.CreateCaseRequest{
		TicketId:    ticket.Id,
		PurchaseId:  purchase.Id,
		Title:       "Code invalid",
		Description: "The betting site rejected the code.",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, created.CaseId, &dto.UpdateCaseStatusRequest{Status: "closed"})
	require.NoError(t, err)

	_, err = svc.AddReply(ctx, buyer.Id, "buyer", created.CaseId, &dto.CaseReplyRequest{Content: "anyone there?"})
	assert.ErrorIs(t, err, ErrCaseClosed)
}

func TestListCasesScoping(t *testing.T) {
	e := newTestEnv(t)
	svc := newCaseService(e)
	ctx := context.Background()

	seller := e.seedUser(t, "seller@test.local", "seller", 100)
	otherSeller := e.seedUser(t, "seller2@test.local", "seller", 100)
	buyer := e.seedUser(t, "buyer@test.local", "buyer", 0)
	admin := e.seedUser(t, "admin@test.local", "admin", 0)

	ticketA := e.seedTicket(t, seller.Id, 100)
	ticketB := e.seedTicket(t, otherSeller.Id, 50)
	purchaseA := e.seedPurchase(t, ticketA, buyer.Id)
	purchaseB := e.seedPurchase(t, ticketB, buyer.Id)

	for _, p := range []struct {
		ticketId   uuid.UUID
		purchaseId uuid.UUID
	}{
		{ticketA.Id, purchaseA.Id},
		{ticketB.Id, purchaseB.Id},
	} {
		_, err := svc.CreateCase(ctx, buyer.Id, &dto.CreateCaseRequest{
			TicketId:    p.ticketId,
			PurchaseId:  p.purchaseId,
			Title:       "Problem here",
			Description: "Something went wrong with this purchase.",
		})
		require.NoError(t, err)
	}

	buyerList, err := svc.ListCases(ctx, buyer.Id, "buyer", 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, buyerList.Total)

	sellerList, err := svc.ListCases(ctx, seller.Id, "seller", 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, sellerList.Total)

	adminList, err := svc.ListCases(ctx, admin.Id, "admin", 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, adminList.Total)

	strangerList, err := svc.ListCases(ctx, uuid.New(), "buyer", 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 0, strangerList.Total)
}
