package service

import (
	"context"
	"errors"
	"time"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/dto"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/specification"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var (
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrTicketForbidden = errors.New("ticket does not belong to this seller")
	ErrSellerNotActive = errors.New("seller account is not approved for selling")
)

type ITicketService interface {
	Create(ctx context.Context, sellerId uuid.UUID, req *dto.CreateTicketRequest) (*dto.TicketResponse, error)
	Update(ctx context.Context, sellerId, ticketId uuid.UUID, req *dto.UpdateTicketRequest) (*dto.TicketResponse, error)
	Delete(ctx context.Context, sellerId, ticketId uuid.UUID) error
	GetMarketplace(ctx context.Context, page, limit int) ([]dto.TicketResponse, int64, error)
	GetOne(ctx context.Context, ticketId uuid.UUID) (*dto.TicketResponse, error)
	GetMine(ctx context.Context, sellerId uuid.UUID) ([]dto.TicketResponse, error)
}

type ticketService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTicketService(uowFactory unitofwork.RepositoryFactory) ITicketService {
	return &ticketService{
		uowFactory: uowFactory,
	}
}

func (s *ticketService) Create(ctx context.Context, sellerId uuid.UUID, req *dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	seller, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: sellerId})
	if err != nil {
		return nil, err
	}
	if seller == nil || !seller.CanSell() {
		return nil, ErrSellerNotActive
	}

	now := time.Now()
	ticket := &entity.Ticket{
		Id:          uuid.New(),
		SellerId:    sellerId,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		BettingSite: req.BettingSite,
		TicketCode:  req.TicketCode,
		Odds:        req.Odds,
		KickoffAt:   req.KickoffAt,
		IsPublished: true,
		IsFree:      req.IsFree || req.Price == 0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uow.TicketRepository().Create(ctx, ticket); err != nil {
		return nil, err
	}

	resp := toTicketResponse(ticket)
	return &resp, nil
}

func (s *ticketService) Update(ctx context.Context, sellerId, ticketId uuid.UUID, req *dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ticket, err := uow.TicketRepository().FindOne(ctx, specification.ByID{ID: ticketId})
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}
	if ticket.SellerId != sellerId {
		return nil, ErrTicketForbidden
	}

	if req.Title != nil {
		ticket.Title = *req.Title
	}
	if req.Description != nil {
		ticket.Description = *req.Description
	}
	if req.Price != nil {
		ticket.Price = *req.Price
		ticket.IsFree = *req.Price == 0
	}
	if req.KickoffAt != nil {
		ticket.KickoffAt = *req.KickoffAt
	}
	if req.IsPublished != nil {
		ticket.IsPublished = *req.IsPublished
	}
	ticket.UpdatedAt = time.Now()

	if err := uow.TicketRepository().Update(ctx, ticket); err != nil {
		return nil, err
	}

	resp := toTicketResponse(ticket)
	return &resp, nil
}

func (s *ticketService) Delete(ctx context.Context, sellerId, ticketId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ticket, err := uow.TicketRepository().FindOne(ctx, specification.ByID{ID: ticketId})
	if err != nil {
		return err
	}
	if ticket == nil {
		return ErrTicketNotFound
	}
	if ticket.SellerId != sellerId {
		return ErrTicketForbidden
	}

	return uow.TicketRepository().Delete(ctx, ticketId)
}

// GetMarketplace lists published tickets, newest first. The ticket code
// is never exposed here; buyers see it only after purchase.
func (s *ticketService) GetMarketplace(ctx context.Context, page, limit int) ([]dto.TicketResponse, int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	total, err := uow.TicketRepository().Count(ctx, specification.Published{})
	if err != nil {
		return nil, 0, err
	}

	tickets, err := uow.TicketRepository().FindAll(ctx,
		specification.Published{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	if err != nil {
		return nil, 0, err
	}

	res := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		res = append(res, toTicketResponse(t))
	}
	return res, total, nil
}

func (s *ticketService) GetOne(ctx context.Context, ticketId uuid.UUID) (*dto.TicketResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ticket, err := uow.TicketRepository().FindOneWithSeller(ctx, specification.ByID{ID: ticketId})
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}

	resp := toTicketResponse(ticket)
	return &resp, nil
}

func (s *ticketService) GetMine(ctx context.Context, sellerId uuid.UUID) ([]dto.TicketResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tickets, err := uow.TicketRepository().FindAll(ctx,
		specification.BySeller{SellerId: sellerId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		res = append(res, toTicketResponse(t))
	}
	return res, nil
}

// toTicketResponse never carries the ticket code. Buyers receive the code
// through their purchase history, sellers through their own listings view.
func toTicketResponse(t *entity.Ticket) dto.TicketResponse {
	resp := dto.TicketResponse{
		Id:          t.Id,
		SellerId:    t.SellerId,
		Title:       t.Title,
		Description: t.Description,
		Price:       t.Price,
		BettingSite: t.BettingSite,
		Odds:        t.Odds,
		KickoffAt:   t.KickoffAt,
		IsPublished: t.IsPublished,
		IsFree:      t.IsFree,
		CreatedAt:   t.CreatedAt,
	}
	if t.Seller != nil {
		resp.SellerName = t.Seller.FullName
	}
	return resp
}
