package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/model"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/pkg/logger"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/implementation"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/unitofwork"

	gormsqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache memory DB keeps one store across gorm's pooled
	// connections without leaking between tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	models := []interface{}{
		&model.User{},
		&model.Ticket{},
		&model.Purchase{},
		&model.Case{},
		&model.CaseReply{},
		&model.WalletTransaction{},
		&model.Notification{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }
func (noopLogger) GetLogs(string, int, int) ([]logger.LogEntry, error) {
	return nil, nil
}

// flakyNotifRepo wraps the real repository and fails CreateNotification on
// demand while counting every attempt.
type flakyNotifRepo struct {
	repository.NotificationRepository
	failCreate     bool
	createAttempts int
}

func (r *flakyNotifRepo) CreateNotification(ctx context.Context, n *model.Notification) error {
	r.createAttempts++
	if r.failCreate {
		return errors.New("simulated insert failure")
	}
	return r.NotificationRepository.CreateNotification(ctx, n)
}

type testEnv struct {
	db         *gorm.DB
	uowFactory unitofwork.RepositoryFactory
	notifRepo  *flakyNotifRepo
	notifSvc   *NotificationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	notifRepo := &flakyNotifRepo{NotificationRepository: implementation.NewNotificationRepository(db)}
	return &testEnv{
		db:         db,
		uowFactory: unitofwork.NewRepositoryFactory(db),
		notifRepo:  notifRepo,
		notifSvc:   NewNotificationService(notifRepo, noopLogger{}),
	}
}

func (e *testEnv) seedUser(t *testing.T, email, role string, balance float64) *model.User {
	t.Helper()

	hash := "x"
	u := &model.User{
		Id:            uuid.New(),
		Email:         email,
		PasswordHash:  &hash,
		FullName:      "Test " + role,
		Role:          role,
		Approved:      true,
		CreditBalance: balance,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := e.db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func (e *testEnv) seedTicket(t *testing.T, sellerId uuid.UUID, price float64) *model.Ticket {
	t.Helper()

	tk := &model.Ticket{
		Id:          uuid.New(),
		SellerId:    sellerId,
		Title:       "Weekend Multi",
		Description: "Five legs.",
		Price:       price,
		BettingSite: "Betway",
		TicketCode:  "BW-TEST1",
		Odds:        8.5,
		KickoffAt:   time.Now().Add(24 * time.Hour),
		IsPublished: true,
		IsFree:      price == 0,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := e.db.Create(tk).Error; err != nil {
		t.Fatalf("seed ticket: %v", err)
	}
	return tk
}

func (e *testEnv) seedPurchase(t *testing.T, ticket *model.Ticket, buyerId uuid.UUID) *model.Purchase {
	t.Helper()

	p := &model.Purchase{
		Id:            uuid.New(),
		TicketId:      ticket.Id,
		BuyerId:       buyerId,
		SellerId:      ticket.SellerId,
		Price:         ticket.Price,
		PaymentStatus: string(entity.PaymentStatusCompleted),
		PurchaseDate:  time.Now(),
	}
	if err := e.db.Create(p).Error; err != nil {
		t.Fatalf("seed purchase: %v", err)
	}
	return p
}

func (e *testEnv) userBalance(t *testing.T, id uuid.UUID) float64 {
	t.Helper()

	var u model.User
	if err := e.db.First(&u, "id = ?", id).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	return u.CreditBalance
}
