package service

import (
	"context"
	"encoding/json"
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
	// ErrCaseNotFound means no case with that id exists at all.
	ErrCaseNotFound = errors.New("case not found")
	// ErrCaseForbidden means the case exists but the caller is not a participant.
	ErrCaseForbidden = errors.New("case access denied")
	ErrCaseClosed    = errors.New("case is closed")

	ErrPurchaseMismatch    = errors.New("purchase does not match the given ticket")
	ErrPurchaseNotOwned    = errors.New("purchase does not belong to this buyer")
	ErrInvalidTransition   = errors.New("illegal case status transition")
	ErrRefundViaStatusEdit = errors.New("refunded status requires the refund flow")
)

type ICaseService interface {
	CreateCase(ctx context.Context, userId uuid.UUID, req *dto.CreateCaseRequest) (*dto.CreateCaseResponse, error)
	GetCaseDetails(ctx context.Context, viewerId uuid.UUID, viewerRole string, caseId uuid.UUID) (*dto.CaseDetailResponse, error)
	ListCases(ctx context.Context, viewerId uuid.UUID, viewerRole string, page, limit int) (*dto.CaseListResponse, error)
	AddReply(ctx context.Context, authorId uuid.UUID, authorRole string, caseId uuid.UUID, req *dto.CaseReplyRequest) (*dto.CaseReplyResponse, error)
	UpdateStatus(ctx context.Context, caseId uuid.UUID, req *dto.UpdateCaseStatusRequest) (*dto.CaseDetailResponse, error)
}

type caseService struct {
	uowFactory          unitofwork.RepositoryFactory
	notificationService *NotificationService
	mailPublisher       IPublisherService
	eventPublisher      *pktNats.Publisher
	logger              logger.ILogger
}

func NewCaseService(
	uowFactory unitofwork.RepositoryFactory,
	notificationService *NotificationService,
	mailPublisher IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) ICaseService {
	return &caseService{
		uowFactory:          uowFactory,
		notificationService: notificationService,
		mailPublisher:       mailPublisher,
		eventPublisher:      eventPublisher,
		logger:              log,
	}
}

// CreateCase opens a support case against one of the buyer's purchases.
// The case row is the source of truth: once it commits, a failed admin
// notification or event publish never rolls it back.
func (s *caseService) CreateCase(ctx context.Context, userId uuid.UUID, req *dto.CreateCaseRequest) (*dto.CreateCaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// 1. The purchase must exist, belong to the caller and match the ticket
	purchase, err := uow.PurchaseRepository().FindOne(ctx, specification.ByID{ID: req.PurchaseId})
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, errors.New("purchase not found")
	}
	if purchase.BuyerId != userId {
		return nil, ErrPurchaseNotOwned
	}
	if purchase.TicketId != req.TicketId {
		return nil, ErrPurchaseMismatch
	}

	// 2. Sequential case number
	seq, err := uow.CaseRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	c := &entity.Case{
		Id:          uuid.New(),
		CaseNumber:  fmt.Sprintf("SC-%06d", seq+1),
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.CaseStatusOpen,
		UserId:      userId,
		TicketId:    req.TicketId,
		PurchaseId:  req.PurchaseId,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uow.CaseRepository().Create(ctx, c); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("CASE", "Case Opened", map[string]interface{}{
		"caseId":     c.Id.String(),
		"caseNumber": c.CaseNumber,
		"userId":     userId.String(),
	})

	// 3. Best-effort fan-out to admins
	caseId := c.Id
	s.notificationService.NotifyAdmins(ctx, model.NotificationTypeCase,
		"New Support Case",
		fmt.Sprintf("Case %s opened: %s", c.CaseNumber, c.Title),
		&caseId,
		map[string]interface{}{"case_number": c.CaseNumber},
	)

	if s.eventPublisher != nil {
		evt := events.NewCaseOpened(c.Id, c.CaseNumber, userId)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("CASE", "Failed to publish CASE_OPENED event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.CreateCaseResponse{
		CaseId:     c.Id,
		CaseNumber: c.CaseNumber,
		Status:     string(c.Status),
		CreatedAt:  c.CreatedAt,
	}, nil
}

// GetCaseDetails returns the full case view. A case that exists but does
// not involve the viewer yields ErrCaseForbidden, never ErrCaseNotFound,
// so clients can tell the two apart.
func (s *caseService) GetCaseDetails(ctx context.Context, viewerId uuid.UUID, viewerRole string, caseId uuid.UUID) (*dto.CaseDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	c, err := uow.CaseRepository().FindOneWithDetails(ctx, specification.ByID{ID: caseId})
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	if !canAccessCase(c, viewerId, viewerRole) {
		return nil, ErrCaseForbidden
	}

	replies, err := uow.CaseRepository().FindRepliesWithAuthors(ctx, caseId)
	if err != nil {
		return nil, err
	}

	resp := &dto.CaseDetailResponse{
		Id:          c.Id,
		CaseNumber:  c.CaseNumber,
		Title:       c.Title,
		Description: c.Description,
		Status:      string(c.Status),
		UserId:      c.UserId,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Replies:     make([]dto.CaseReplyResponse, 0, len(replies)),
	}

	if c.Purchase != nil {
		resp.Purchase = &dto.CasePurchaseInfo{
			Id:            c.Purchase.Id,
			Price:         c.Purchase.Price,
			PaymentStatus: string(c.Purchase.PaymentStatus),
			PurchaseDate:  c.Purchase.PurchaseDate,
			RefundedAt:    c.Purchase.RefundedAt,
			BuyerId:       c.Purchase.BuyerId,
			SellerId:      c.Purchase.SellerId,
		}
	}
	if c.Ticket != nil {
		resp.Ticket = &dto.CaseTicketInfo{
			Id:          c.Ticket.Id,
			Title:       c.Ticket.Title,
			BettingSite: c.Ticket.BettingSite,
			SellerId:    c.Ticket.SellerId,
		}
	}
	for _, r := range replies {
		item := dto.CaseReplyResponse{
			Id:        r.Id,
			UserId:    r.UserId,
			Content:   r.Content,
			CreatedAt: r.CreatedAt,
		}
		if r.Author != nil {
			item.AuthorName = r.Author.FullName
			item.AuthorRole = string(r.Author.Role)
		}
		resp.Replies = append(resp.Replies, item)
	}

	return resp, nil
}

// ListCases scopes the listing to the viewer: buyers see cases they opened,
// sellers see cases raised against their sales, admins see everything.
func (s *caseService) ListCases(ctx context.Context, viewerId uuid.UUID, viewerRole string, page, limit int) (*dto.CaseListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var scope []specification.Specification
	switch viewerRole {
	case string(entity.UserRoleAdmin):
		// no scoping
	case string(entity.UserRoleSeller):
		sales, err := uow.PurchaseRepository().FindAll(ctx, specification.BySeller{SellerId: viewerId})
		if err != nil {
			return nil, err
		}
		if len(sales) == 0 {
			return &dto.CaseListResponse{Cases: []dto.CaseListItem{}, Total: 0, Page: page, Limit: limit}, nil
		}
		purchaseIds := make([]uuid.UUID, 0, len(sales))
		for _, p := range sales {
			purchaseIds = append(purchaseIds, p.Id)
		}
		scope = append(scope, specification.ByPurchaseIds{PurchaseIds: purchaseIds})
	default:
		scope = append(scope, specification.ByOwner{UserId: viewerId})
	}

	total, err := uow.CaseRepository().Count(ctx, scope...)
	if err != nil {
		return nil, err
	}

	listSpecs := append(scope,
		specification.OrderBy{Field: "updated_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	cases, err := uow.CaseRepository().FindAllWithCreator(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	resp := &dto.CaseListResponse{
		Cases: make([]dto.CaseListItem, 0, len(cases)),
		Total: total,
		Page:  page,
		Limit: limit,
	}
	for _, c := range cases {
		item := dto.CaseListItem{
			Id:         c.Id,
			CaseNumber: c.CaseNumber,
			Title:      c.Title,
			Status:     string(c.Status),
			UserId:     c.UserId,
			CreatedAt:  c.CreatedAt,
			UpdatedAt:  c.UpdatedAt,
		}
		if c.Creator != nil {
			item.CreatorName = c.Creator.FullName
		}
		resp.Cases = append(resp.Cases, item)
	}
	return resp, nil
}

// AddReply appends a message to an open case and pokes the counterparty.
func (s *caseService) AddReply(ctx context.Context, authorId uuid.UUID, authorRole string, caseId uuid.UUID, req *dto.CaseReplyRequest) (*dto.CaseReplyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	c, err := uow.CaseRepository().FindOneWithDetails(ctx, specification.ByID{ID: caseId})
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	if !canAccessCase(c, authorId, authorRole) {
		return nil, ErrCaseForbidden
	}
	if c.Status == entity.CaseStatusClosed {
		return nil, ErrCaseClosed
	}

	author, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: authorId})
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, errors.New("author not found")
	}

	now := time.Now()
	reply := &entity.CaseReply{
		Id:        uuid.New(),
		CaseId:    caseId,
		UserId:    authorId,
		Content:   req.Content,
		CreatedAt: now,
	}
	if err := uow.CaseRepository().CreateReply(ctx, reply); err != nil {
		return nil, err
	}
	// Bump so the case sorts to the top of everyone's list
	if err := uow.CaseRepository().TouchUpdatedAt(ctx, caseId, now); err != nil {
		s.logger.Warn("CASE", "Failed to bump case updated_at", map[string]interface{}{"caseId": caseId.String(), "error": err.Error()})
	}

	// Best-effort: notify every participant except the author
	s.notifyReplyRecipients(ctx, uow, c, author, req.Content)

	if s.eventPublisher != nil {
		evt := events.NewCaseReplied(c.Id, c.CaseNumber, authorId, c.UserId)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("CASE", "Failed to publish CASE_REPLIED event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.CaseReplyResponse{
		Id:         reply.Id,
		UserId:     authorId,
		AuthorName: author.FullName,
		AuthorRole: string(author.Role),
		Content:    reply.Content,
		CreatedAt:  reply.CreatedAt,
	}, nil
}

// UpdateStatus applies an admin status change, holding the transition
// table. The refunded status is reserved for cases whose purchase has
// actually been reversed; money never moves through this path.
func (s *caseService) UpdateStatus(ctx context.Context, caseId uuid.UUID, req *dto.UpdateCaseStatusRequest) (*dto.CaseDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	c, err := uow.CaseRepository().FindOneWithDetails(ctx, specification.ByID{ID: caseId})
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}

	target := entity.CaseStatus(req.Status)
	if !entity.ValidCaseStatus(target) {
		return nil, ErrInvalidTransition
	}
	if !entity.CanTransition(c.Status, target) {
		return nil, ErrInvalidTransition
	}
	if target == entity.CaseStatusRefunded && (c.Purchase == nil || c.Purchase.PaymentStatus != entity.PaymentStatusRefunded) {
		return nil, ErrRefundViaStatusEdit
	}

	from := c.Status
	if err := uow.CaseRepository().UpdateStatus(ctx, caseId, target); err != nil {
		return nil, err
	}

	s.logger.Info("CASE", "Case Status Changed", map[string]interface{}{
		"caseId": caseId.String(),
		"from":   string(from),
		"to":     string(target),
	})

	// Best-effort: tell the creator
	s.notificationService.Notify(ctx, c.UserId, model.NotificationTypeCase,
		"Case Status Updated",
		fmt.Sprintf("Case %s moved from %s to %s", c.CaseNumber, from, target),
		&caseId,
		map[string]interface{}{"case_number": c.CaseNumber, "from": string(from), "to": string(target)},
	)

	if s.eventPublisher != nil {
		evt := events.NewCaseStatusChanged(c.Id, c.CaseNumber, string(from), string(target))
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("CASE", "Failed to publish CASE_STATUS_CHANGED event", map[string]interface{}{"error": err.Error()})
		}
	}

	return s.GetCaseDetails(ctx, c.UserId, string(entity.UserRoleAdmin), caseId)
}

func (s *caseService) notifyReplyRecipients(ctx context.Context, uow unitofwork.UnitOfWork, c *entity.Case, author *entity.User, content string) {
	recipients := map[uuid.UUID]bool{c.UserId: true}
	if c.Purchase != nil {
		recipients[c.Purchase.SellerId] = true
	}
	delete(recipients, author.Id)

	preview := content
	if len(preview) > 120 {
		preview = preview[:120] + "..."
	}

	caseId := c.Id
	for userId := range recipients {
		s.notificationService.Notify(ctx, userId, model.NotificationTypeCase,
			"New Reply on Case "+c.CaseNumber,
			fmt.Sprintf("%s replied: %s", author.FullName, preview),
			&caseId,
			map[string]interface{}{"case_number": c.CaseNumber},
		)

		// Queue the email copy; the dispatch worker owns delivery
		if s.mailPublisher != nil {
			recipient, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
			if err != nil || recipient == nil {
				continue
			}
			payload, err := json.Marshal(dto.SendEmailMessage{
				Kind:       dto.MailKindCaseReply,
				ToEmail:    recipient.Email,
				CaseNumber: c.CaseNumber,
				AuthorName: author.FullName,
				Preview:    preview,
			})
			if err != nil {
				continue
			}
			if err := s.mailPublisher.Publish(ctx, payload); err != nil {
				s.logger.Warn("CASE", "Failed to queue reply email", map[string]interface{}{"error": err.Error()})
			}
		}
	}

	if author.Role != entity.UserRoleAdmin {
		s.notificationService.NotifyAdmins(ctx, model.NotificationTypeCase,
			"Case Activity",
			fmt.Sprintf("Case %s has a new reply from %s", c.CaseNumber, author.FullName),
			&caseId,
			map[string]interface{}{"case_number": c.CaseNumber},
		)
	}
}

func canAccessCase(c *entity.Case, viewerId uuid.UUID, viewerRole string) bool {
	if viewerRole == string(entity.UserRoleAdmin) {
		return true
	}
	if c.UserId == viewerId {
		return true
	}
	if c.Purchase != nil && c.Purchase.SellerId == viewerId {
		return true
	}
	return false
}
