package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/dto"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/model"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/pkg/logger"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/specification"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/unitofwork"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/events"
	pktNats "github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/nats"

	"github.com/google/uuid"
)

var (
	ErrInsufficientBalance = errors.New("insufficient credit balance")
	ErrAlreadyPurchased    = errors.New("ticket already purchased")
	ErrOwnTicket           = errors.New("sellers cannot buy their own tickets")
	ErrTicketExpired       = errors.New("ticket event has already kicked off")
)

type IPurchaseService interface {
	BuyTicket(ctx context.Context, buyerId uuid.UUID, req *dto.BuyTicketRequest) (*dto.PurchaseResponse, error)
	GetMyPurchases(ctx context.Context, buyerId uuid.UUID) ([]dto.PurchaseResponse, error)
	GetMySales(ctx context.Context, sellerId uuid.UUID) ([]dto.PurchaseResponse, error)
	GetWallet(ctx context.Context, userId uuid.UUID) (*dto.WalletResponse, error)
	Topup(ctx context.Context, userId uuid.UUID, req *dto.TopupRequest) (*dto.WalletResponse, error)
}

type purchaseService struct {
	uowFactory          unitofwork.RepositoryFactory
	notificationService *NotificationService
	eventPublisher      *pktNats.Publisher
	logger              logger.ILogger
}

func NewPurchaseService(uowFactory unitofwork.RepositoryFactory, notificationService *NotificationService, eventPublisher *pktNats.Publisher, log logger.ILogger) IPurchaseService {
	return &purchaseService{
		uowFactory:          uowFactory,
		notificationService: notificationService,
		eventPublisher:      eventPublisher,
		logger:              log,
	}
}

// BuyTicket moves credits from buyer to seller and hands the buyer the
// ticket code. The balance moves, the purchase row and both wallet rows
// commit in one transaction.
func (s *purchaseService) BuyTicket(ctx context.Context, buyerId uuid.UUID, req *dto.BuyTicketRequest) (*dto.PurchaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// 1. Load ticket
	ticket, err := uow.TicketRepository().FindOne(ctx, specification.ByID{ID: req.TicketId})
	if err != nil {
		return nil, err
	}
	if ticket == nil || !ticket.IsPublished {
		return nil, ErrTicketNotFound
	}
	if ticket.IsExpired(time.Now()) {
		return nil, ErrTicketExpired
	}
	if ticket.SellerId == buyerId {
		return nil, ErrOwnTicket
	}

	// 2. One purchase per buyer per ticket
	existing, err := uow.PurchaseRepository().FindOne(ctx,
		specification.ByBuyer{BuyerId: buyerId},
		specification.FilterBy{Field: "ticket_id", Value: req.TicketId},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyPurchased
	}

	// 3. Check buyer balance
	buyer, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: buyerId})
	if err != nil {
		return nil, err
	}
	if buyer == nil {
		return nil, errors.New("buyer not found")
	}

	price := ticket.Price
	if ticket.IsFree {
		price = 0
	}
	if buyer.CreditBalance < price {
		return nil, ErrInsufficientBalance
	}

	now := time.Now()
	purchase := &entity.Purchase{
		Id:            uuid.New(),
		TicketId:      ticket.Id,
		BuyerId:       buyerId,
		SellerId:      ticket.SellerId,
		Price:         price,
		PaymentStatus: entity.PaymentStatusCompleted,
		PurchaseDate:  now,
	}
	if err := uow.PurchaseRepository().Create(ctx, purchase); err != nil {
		return nil, err
	}

	// 4. Move the credits and write the audit rows (paid tickets only)
	if price > 0 {
		if err := uow.UserRepository().AdjustCreditBalance(ctx, buyerId, -price); err != nil {
			return nil, err
		}
		if err := uow.UserRepository().AdjustCreditBalance(ctx, ticket.SellerId, price); err != nil {
			return nil, err
		}

		refId := purchase.Id
		buyerTx := &entity.WalletTransaction{
			Id:          uuid.New(),
			UserId:      buyerId,
			Amount:      -price,
			Type:        entity.TransactionTypePurchase,
			Description: fmt.Sprintf("Purchased ticket: %s", ticket.Title),
			ReferenceId: &refId,
			CreatedAt:   now,
		}
		sellerTx := &entity.WalletTransaction{
			Id:          uuid.New(),
			UserId:      ticket.SellerId,
			Amount:      price,
			Type:        entity.TransactionTypeSale,
			Description: fmt.Sprintf("Sold ticket: %s", ticket.Title),
			ReferenceId: &refId,
			CreatedAt:   now,
		}
		if err := uow.WalletRepository().CreateTransaction(ctx, buyerTx); err != nil {
			return nil, err
		}
		if err := uow.WalletRepository().CreateTransaction(ctx, sellerTx); err != nil {
			return nil, err
		}

		// Loyalty: one point per rand spent
		if err := uow.UserRepository().AddLoyaltyPoints(ctx, buyerId, int(price)); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("PURCHASE", "Ticket Purchased", map[string]interface{}{
		"purchaseId": purchase.Id.String(),
		"ticketId":   ticket.Id.String(),
		"buyerId":    buyerId.String(),
		"price":      price,
	})

	// 5. Best-effort side effects after commit
	purchaseId := purchase.Id
	s.notificationService.Notify(ctx, ticket.SellerId, model.NotificationTypePurchase,
		"Ticket Sold",
		fmt.Sprintf("%s bought your ticket \"%s\" for R%.2f", buyer.FullName, ticket.Title, price),
		&purchaseId,
		map[string]interface{}{"ticket_id": ticket.Id.String(), "price": price},
	)

	if s.eventPublisher != nil {
		evt := events.NewTicketPurchased(purchase.Id, ticket.Id, buyerId, ticket.SellerId, price)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("PURCHASE", "Failed to publish TICKET_PURCHASED event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.PurchaseResponse{
		Id:            purchase.Id,
		TicketId:      ticket.Id,
		TicketTitle:   ticket.Title,
		TicketCode:    ticket.TicketCode,
		SellerId:      ticket.SellerId,
		Price:         price,
		PaymentStatus: string(purchase.PaymentStatus),
		PurchaseDate:  purchase.PurchaseDate,
	}, nil
}

func (s *purchaseService) GetMyPurchases(ctx context.Context, buyerId uuid.UUID) ([]dto.PurchaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	purchases, err := uow.PurchaseRepository().FindAllWithTickets(ctx,
		specification.ByBuyer{BuyerId: buyerId},
		specification.OrderBy{Field: "purchase_date", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		item := toPurchaseResponse(p)
		// The code the buyer paid for
		if p.Ticket != nil {
			item.TicketCode = p.Ticket.TicketCode
		}
		res = append(res, item)
	}
	return res, nil
}

func (s *purchaseService) GetMySales(ctx context.Context, sellerId uuid.UUID) ([]dto.PurchaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	purchases, err := uow.PurchaseRepository().FindAllWithTickets(ctx,
		specification.BySeller{SellerId: sellerId},
		specification.OrderBy{Field: "purchase_date", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		res = append(res, toPurchaseResponse(p))
	}
	return res, nil
}

func (s *purchaseService) GetWallet(ctx context.Context, userId uuid.UUID) (*dto.WalletResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	txs, err := uow.WalletRepository().FindAll(ctx,
		specification.ByOwner{UserId: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 50, Offset: 0},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.WalletResponse{
		CreditBalance: user.CreditBalance,
		LoyaltyPoints: user.LoyaltyPoints,
		Transactions:  make([]dto.WalletTransactionResponse, 0, len(txs)),
	}
	for _, tx := range txs {
		res.Transactions = append(res.Transactions, dto.WalletTransactionResponse{
			Id:          tx.Id,
			Amount:      tx.Amount,
			Type:        string(tx.Type),
			Description: tx.Description,
			ReferenceId: tx.ReferenceId,
			CreatedAt:   tx.CreatedAt,
		})
	}
	return res, nil
}

// Topup credits the wallet directly. Payment-gateway settlement sits
// outside this service; callers hand it an already-settled amount.
func (s *purchaseService) Topup(ctx context.Context, userId uuid.UUID, req *dto.TopupRequest) (*dto.WalletResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	if err := uow.UserRepository().AdjustCreditBalance(ctx, userId, req.Amount); err != nil {
		return nil, err
	}

	tx := &entity.WalletTransaction{
		Id:          uuid.New(),
		UserId:      userId,
		Amount:      req.Amount,
		Type:        entity.TransactionTypeTopup,
		Description: fmt.Sprintf("Wallet top-up of R%.2f", req.Amount),
		CreatedAt:   time.Now(),
	}
	if err := uow.WalletRepository().CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return s.GetWallet(ctx, userId)
}

func toPurchaseResponse(p *entity.Purchase) dto.PurchaseResponse {
	item := dto.PurchaseResponse{
		Id:            p.Id,
		TicketId:      p.TicketId,
		SellerId:      p.SellerId,
		Price:         p.Price,
		PaymentStatus: string(p.PaymentStatus),
		PurchaseDate:  p.PurchaseDate,
		RefundedAt:    p.RefundedAt,
	}
	if p.Ticket != nil {
		item.TicketTitle = p.Ticket.Title
	}
	return item
}
