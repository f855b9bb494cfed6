package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/model"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/pkg/logger"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationService writes to the per-user notification inbox.
//
// Every write here is best-effort from the caller's point of view: a
// failed insert is logged and swallowed so it can never fail the
// business operation that triggered it.
type NotificationService struct {
	repo   repository.NotificationRepository
	logger logger.ILogger
}

func NewNotificationService(repo repository.NotificationRepository, log logger.ILogger) *NotificationService {
	return &NotificationService{
		repo:   repo,
		logger: log,
	}
}

// Notify creates a single inbox entry. Errors are logged, never returned.
func (s *NotificationService) Notify(ctx context.Context, userId uuid.UUID, notifType model.NotificationType, title, message string, relatedId *uuid.UUID, metadata map[string]interface{}) {
	notif := &model.Notification{
		ID:        uuid.New(),
		UserID:    userId,
		Title:     title,
		Message:   message,
		Type:      string(notifType),
		RelatedID: relatedId,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	if metadata != nil {
		if raw, err := json.Marshal(metadata); err == nil {
			notif.Metadata = datatypes.JSON(raw)
		}
	}

	if err := s.repo.CreateNotification(ctx, notif); err != nil {
		s.logger.Error("NOTIFICATION", "Failed to create notification", map[string]interface{}{
			"userId": userId.String(),
			"title":  title,
			"error":  err.Error(),
		})
	}
}

// NotifyAdmins fans a notification out to every admin account. A failure
// for one recipient is logged and skipped; remaining admins still get
// their copy.
func (s *NotificationService) NotifyAdmins(ctx context.Context, notifType model.NotificationType, title, message string, relatedId *uuid.UUID, metadata map[string]interface{}) {
	admins, err := s.repo.GetUsersByRole(ctx, "admin")
	if err != nil {
		s.logger.Error("NOTIFICATION", "Failed to resolve admin recipients", map[string]interface{}{"error": err.Error()})
		return
	}

	delivered := 0
	for _, admin := range admins {
		notif := &model.Notification{
			ID:        uuid.New(),
			UserID:    admin.Id,
			Title:     title,
			Message:   message,
			Type:      string(notifType),
			RelatedID: relatedId,
			IsRead:    false,
			CreatedAt: time.Now(),
		}
		if metadata != nil {
			if raw, err := json.Marshal(metadata); err == nil {
				notif.Metadata = datatypes.JSON(raw)
			}
		}

		if err := s.repo.CreateNotification(ctx, notif); err != nil {
			s.logger.Warn("NOTIFICATION", "Skipping failed admin notification", map[string]interface{}{
				"adminId": admin.Id.String(),
				"error":   err.Error(),
			})
			continue
		}
		delivered++
	}

	s.logger.Info("NOTIFICATION", fmt.Sprintf("Admin fan-out delivered %d/%d", delivered, len(admins)), map[string]interface{}{
		"title": title,
	})
}

// GetInbox returns a page of the user's notifications, newest first.
func (s *NotificationService) GetInbox(ctx context.Context, userId uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.GetNotificationsByUserID(ctx, userId, limit, offset)
}

func (s *NotificationService) GetUnreadCount(ctx context.Context, userId uuid.UUID) (int64, error) {
	return s.repo.GetUnreadCount(ctx, userId)
}

// MarkAsRead only flips rows owned by userId; a foreign id is a no-op.
func (s *NotificationService) MarkAsRead(ctx context.Context, notificationId, userId uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, notificationId, userId)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userId uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userId)
}
