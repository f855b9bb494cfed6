package service

import (
	"context"
	"testing"
	"time"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/dto"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPurchaseService(e *testEnv) IPurchaseService {
	return NewPurchaseService(e.uowFactory, e.notifSvc, nil, noopLogger{})
}

func TestBuyTicketMovesBalances(t *testing.T) {
	e := newTestEnv(t)
	svc := newPurchaseService(e)
	ctx := context.Background()

	seller := e.seedUser(t, "seller@test.local", "seller", 0)
	buyer := e.seedUser(t, "buyer@test.local", "buyer", 150)
	ticket := e.seedTicket(t, seller.Id, 100)

	res, err := svc.BuyTicket(ctx, buyer.Id, &dto.BuyTicketRequest{TicketId: ticket.Id})
	require.NoError(t, err)
	assert.Equal(t, "BW-TEST1", res.TicketCode)
	assert.Equal(t, string(entity.PaymentStatusCompleted), res.PaymentStatus)

	assert.InDelta(t, 50, e.userBalance(t, buyer.Id), 0.001)
	assert.InDelta(t, 100, e.userBalance(t, seller.Id), 0.001)

	// Two wallet rows, one per side
	var txCount int64
	e.db.Model(&model.WalletTransaction{}).Count(&txCount)
	assert.EqualValues(t, 2, txCount)

	// Loyalty accrues one point per rand
	var u model.User
	require.NoError(t, e.db.First(&u, "id = ?", buyer.Id).Error)
	assert.Equal(t, 100, u.LoyaltyPoints)

	// Seller got an inbox entry
	var sold int64
	e.db.Model(&model.Notification{}).Where("user_id = ?", seller.Id).Count(&sold)
	assert.EqualValues(t, 1, sold)
}

func TestBuyTicketGuards(t *testing.T) {
	e := newTestEnv(t)
	svc := newPurchaseService(e)
	ctx := context.Background()

	seller := e.seedUser(t, "seller@test.local", "seller", 0)
	buyer := e.seedUser(t, "buyer@test.local", "buyer", 150)
	poor := e.seedUser(t, "poor@test.local", "buyer", 10)
	ticket := e.seedTicket(t, seller.Id, 100)

	// Insufficient balance
	_, err := svc.BuyTicket(ctx, poor.Id, &dto.BuyTicketRequest{TicketId: ticket.Id})
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.InDelta(t, 10, e.userBalance(t, poor.Id), 0.001)

	// Self purchase
	_, err = svc.BuyTicket(ctx, seller.Id, &dto.BuyTicketRequest{TicketId: ticket.Id})
	assert.ErrorIs(t, err, ErrOwnTicket)

	// Double purchase
	_, err = svc.BuyTicket(ctx, buyer.Id, &dto.BuyTicketRequest{TicketId: ticket.Id})
	require.NoError(t, err)
	_, err = svc.BuyTicket(ctx, buyer.Id, &dto.BuyTicketRequest{TicketId: ticket.Id})
	assert.ErrorIs(t, err, ErrAlreadyPurchased)

	// Balance moved exactly once
	assert.InDelta(t, 50, e.userBalance(t, buyer.Id), 0.001)
}

func TestBuyExpiredTicket(t *testing.T) {
	e := newTestEnv(t)
	svc := newPurchaseService(e)
	ctx := context.Background()

	seller := e.seedUser(t, "seller@test.local", "seller", 0)
	buyer := e.seedUser(t, "buyer@test.local", "buyer", 150)
	ticket := e.seedTicket(t, seller.Id, 100)
	require.NoError(t, e.db.Model(&model.Ticket{}).
		Where("id = ?", ticket.Id).
		Update("kickoff_at", time.Now().Add(-time.Hour)).Error)

	_, err := svc.BuyTicket(ctx, buyer.Id, &dto.BuyTicketRequest{TicketId: ticket.Id})
	assert.ErrorIs(t, err, ErrTicketExpired)
}

func TestBuyFreeTicket(t *testing.T) {
	e := newTestEnv(t)
	svc := newPurchaseService(e)
	ctx := context.Background()

	seller := e.seedUser(t, "seller@test.local", "seller", 0)
	buyer := e.seedUser(t, "buyer@test.local", "buyer", 0)
	ticket := e.seedTicket(t, seller.Id, 0)

	res, err := svc.BuyTicket(ctx, buyer.Id, &dto.BuyTicketRequest{TicketId: ticket.Id})
	require.NoError(t, err)
	assert.Zero(t, res.Price)

	// No wallet rows for a free grab
	var txCount int64
	e.db.Model(&model.WalletTransaction{}).Count(&txCount)
	assert.Zero(t, txCount)
}

func TestTopupAndWallet(t *testing.T) {
	e := newTestEnv(t)
	svc := newPurchaseService(e)
	ctx := context.Background()

	buyer := e.seedUser(t, "buyer@test.local", "buyer", 0)

	wallet, err := svc.Topup(ctx, buyer.Id, &dto.TopupRequest{Amount: 250})
	require.NoError(t, err)
	assert.InDelta(t, 250, wallet.CreditBalance, 0.001)
	require.Len(t, wallet.Transactions, 1)
	assert.Equal(t, string(entity.TransactionTypeTopup), wallet.Transactions[0].Type)
	assert.InDelta(t, 250, wallet.Transactions[0].Amount, 0.001)
}
