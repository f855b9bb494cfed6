package user

import (
	"context"
	"fmt"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/dto"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/pkg/logger"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/specification"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/unitofwork"
	adminEvents "github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/admin/events"

	"github.com/google/uuid"
)

// Manager handles user-related admin operations
type Manager struct {
	logger    logger.ILogger
	publisher adminEvents.Publisher
}

// NewManager creates a new user manager
func NewManager(logger logger.ILogger, publisher adminEvents.Publisher) *Manager {
	return &Manager{
		logger:    logger,
		publisher: publisher,
	}
}

// List returns all users, optionally filtered by role.
func (m *Manager) List(ctx context.Context, uow unitofwork.UnitOfWork, role string) ([]dto.AdminUserListItem, error) {
	specs := []specification.Specification{specification.OrderBy{Field: "created_at", Desc: true}}
	if role != "" {
		specs = append(specs, specification.ByRole{Role: role})
	}

	users, err := uow.UserRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.AdminUserListItem, 0, len(users))
	for _, u := range users {
		items = append(items, dto.AdminUserListItem{
			Id:            u.Id,
			Email:         u.Email,
			FullName:      u.FullName,
			Role:          string(u.Role),
			Approved:      u.Approved,
			Suspended:     u.Suspended,
			CreditBalance: u.CreditBalance,
			CreatedAt:     u.CreatedAt,
		})
	}
	return items, nil
}

// UpdateFlags approves or suspends an account and emits event.
// Nil fields in the request are left untouched.
func (m *Manager) UpdateFlags(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, req dto.AdminUpdateUserStatusRequest) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}
	if req.Approved == nil && req.Suspended == nil {
		return user, nil
	}

	if err := uow.UserRepository().UpdateFlags(ctx, userId, req.Approved, req.Suspended); err != nil {
		return nil, err
	}

	if req.Approved != nil {
		user.Approved = *req.Approved
	}
	if req.Suspended != nil {
		user.Suspended = *req.Suspended
	}

	m.logger.Info("ADMIN", "Updated User Flags", map[string]interface{}{
		"userId":    userId.String(),
		"approved":  user.Approved,
		"suspended": user.Suspended,
	})

	m.publisher.PublishUserFlagsUpdated(ctx, user.Id, user.Email, user.Approved, user.Suspended)

	return user, nil
}
