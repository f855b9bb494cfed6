package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/dto"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/model"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/pkg/logger"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/specification"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/unitofwork"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/admin/dashboard"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/admin/refund"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/admin/user"

	"github.com/google/uuid"
)

type IAdminService interface {
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)

	// User Management
	GetAllUsers(ctx context.Context, role string) ([]dto.AdminUserListItem, error)
	UpdateUserStatus(ctx context.Context, userId uuid.UUID, req dto.AdminUpdateUserStatusRequest) (*dto.AdminUserListItem, error)

	// Refund Management
	ProcessRefund(ctx context.Context, caseId uuid.UUID, req dto.AdminProcessRefundRequest) (*dto.AdminProcessRefundResponse, error)

	// Logs
	GetSystemLogs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error)
}

type adminService struct {
	uowFactory          unitofwork.RepositoryFactory
	refundProcessor     *refund.Processor
	userManager         *user.Manager
	dashboardAggregator *dashboard.Aggregator
	notificationService *NotificationService
	mailPublisher       IPublisherService
	logger              logger.ILogger
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	refundProcessor *refund.Processor,
	userManager *user.Manager,
	dashboardAggregator *dashboard.Aggregator,
	notificationService *NotificationService,
	mailPublisher IPublisherService,
	log logger.ILogger,
) IAdminService {
	return &adminService{
		uowFactory:          uowFactory,
		refundProcessor:     refundProcessor,
		userManager:         userManager,
		dashboardAggregator: dashboardAggregator,
		notificationService: notificationService,
		mailPublisher:       mailPublisher,
		logger:              log,
	}
}

func (s *adminService) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.dashboardAggregator.GetStats(ctx, uow)
}

func (s *adminService) GetAllUsers(ctx context.Context, role string) ([]dto.AdminUserListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.userManager.List(ctx, uow, role)
}

func (s *adminService) UpdateUserStatus(ctx context.Context, userId uuid.UUID, req dto.AdminUpdateUserStatusRequest) (*dto.AdminUserListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	updated, err := s.userManager.UpdateFlags(ctx, uow, userId, req)
	if err != nil {
		return nil, err
	}

	// Tell the user what happened to their account
	if req.Suspended != nil && *req.Suspended {
		s.notificationService.Notify(ctx, userId, model.NotificationTypeSystem,
			"Account Suspended",
			"Your account has been suspended. Contact support for details.",
			nil, nil,
		)
	} else if req.Approved != nil && *req.Approved {
		s.notificationService.Notify(ctx, userId, model.NotificationTypeSystem,
			"Account Approved",
			"Your seller account has been approved. You can now publish tickets.",
			nil, nil,
		)
	}

	return &dto.AdminUserListItem{
		Id:            updated.Id,
		Email:         updated.Email,
		FullName:      updated.FullName,
		Role:          string(updated.Role),
		Approved:      updated.Approved,
		Suspended:     updated.Suspended,
		CreditBalance: updated.CreditBalance,
		CreatedAt:     updated.CreatedAt,
	}, nil
}

// ProcessRefund runs the transactional refund and then fires the
// best-effort side effects: buyer inbox entry, refund email, stale
// dashboard cache drop. Side-effect failures never undo the refund.
func (s *adminService) ProcessRefund(ctx context.Context, caseId uuid.UUID, req dto.AdminProcessRefundRequest) (*dto.AdminProcessRefundResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	result, err := s.refundProcessor.Process(ctx, uow, caseId, req.AdminNotes)
	if err != nil {
		return nil, err
	}

	s.dashboardAggregator.Invalidate()

	resultCaseId := result.CaseId
	s.notificationService.Notify(ctx, result.BuyerId, model.NotificationTypeCase,
		"Refund Processed",
		fmt.Sprintf("Your refund of R%.2f for case %s has been processed.", result.RefundedAmount, result.CaseNumber),
		&resultCaseId,
		map[string]interface{}{"case_number": result.CaseNumber, "amount": result.RefundedAmount},
	)

	if s.mailPublisher != nil {
		buyer, err := s.uowFactory.NewUnitOfWork(ctx).UserRepository().FindOne(ctx, specification.ByID{ID: result.BuyerId})
		if err == nil && buyer != nil {
			payload, marshalErr := json.Marshal(dto.SendEmailMessage{
				Kind:       dto.MailKindRefundProcessed,
				ToEmail:    buyer.Email,
				CaseNumber: result.CaseNumber,
				Amount:     result.RefundedAmount,
			})
			if marshalErr == nil {
				if pubErr := s.mailPublisher.Publish(ctx, payload); pubErr != nil {
					s.logger.Warn("ADMIN", "Failed to queue refund email", map[string]interface{}{"error": pubErr.Error()})
				}
			}
		}
	}

	return &dto.AdminProcessRefundResponse{
		CaseId:         result.CaseId,
		PurchaseId:     result.PurchaseId,
		RefundedAmount: result.RefundedAmount,
		CaseStatus:     string(entity.CaseStatusResolved),
		ProcessedAt:    result.ProcessedAt,
	}, nil
}

func (s *adminService) GetSystemLogs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}
	return s.logger.GetLogs(level, limit, offset)
}
