package refund

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/model"
	pkgLogger "github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/pkg/logger"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/unitofwork"
	adminEvents "github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/admin/events"

	gormsqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
func (nopLogger) GetLogs(level string, limit, offset int) ([]pkgLogger.LogEntry, error) {
	return nil, nil
}

type refundFixture struct {
	db      *gorm.DB
	factory unitofwork.RepositoryFactory
	proc    *Processor

	buyer    *model.User
	seller   *model.User
	purchase *model.Purchase
	supCase  *model.Case
}

// newRefundFixture seeds the state right after a R100 sale: seller holds
// the money, buyer is empty, and the buyer has opened a case that an
// admin already picked up.
func newRefundFixture(t *testing.T) *refundFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Ticket{}, &model.Purchase{},
		&model.Case{}, &model.CaseReply{}, &model.WalletTransaction{},
	))

	f := &refundFixture{
		db:      db,
		factory: unitofwork.NewRepositoryFactory(db),
		proc:    NewProcessor(nopLogger{}, adminEvents.NewNatsPublisher(nil, nopLogger{})),
	}

	hash := "x"
	f.seller = &model.User{Id: uuid.New(), Email: "seller@test.local", PasswordHash: &hash, FullName: "Thabo Tips", Role: "seller", Approved: true, CreditBalance: 100}
	f.buyer = &model.User{Id: uuid.New(), Email: "buyer@test.local", PasswordHash: &hash, FullName: "Lerato M", Role: "buyer", Approved: true, CreditBalance: 0}
	require.NoError(t, db.Create(f.seller).Error)
	require.NoError(t, db.Create(f.buyer).Error)

	ticket := &model.Ticket{
		Id: uuid.New(), SellerId: f.seller.Id, Title: "Weekend Multi",
		Price: 100, BettingSite: "Betway", TicketCode: "BW-TEST1",
		Odds: 8.5, KickoffAt: time.Now().Add(24 * time.Hour), IsPublished: true,
	}
	require.NoError(t, db.Create(ticket).Error)

	f.purchase = &model.Purchase{
		Id: uuid.New(), TicketId: ticket.Id, BuyerId: f.buyer.Id,
		SellerId: f.seller.Id, Price: 100,
		PaymentStatus: string(entity.PaymentStatusCompleted),
		PurchaseDate:  time.Now(),
	}
	require.NoError(t, db.Create(f.purchase).Error)

	f.supCase = &model.Case{
		Id: uuid.New(), CaseNumber: "SC-000001", Title: "Code does not work",
		Description: "The site rejects the code.",
		Status:      string(entity.CaseStatusInProgress),
		UserId:      f.buyer.Id, TicketId: ticket.Id, PurchaseId: f.purchase.Id,
	}
	require.NoError(t, db.Create(f.supCase).Error)
	return f
}

func (f *refundFixture) balance(t *testing.T, id uuid.UUID) float64 {
	t.Helper()
	var u model.User
	require.NoError(t, f.db.First(&u, "id = ?", id).Error)
	return u.CreditBalance
}

func TestProcessRefund(t *testing.T) {
	f := newRefundFixture(t)
	ctx := context.Background()

	res, err := f.proc.Process(ctx, f.factory.NewUnitOfWork(ctx), f.supCase.Id, "verified with the betting site")
	require.NoError(t, err)
	assert.Equal(t, "SC-000001", res.CaseNumber)
	assert.InDelta(t, 100, res.RefundedAmount, 0.001)
	assert.Equal(t, f.buyer.Id, res.BuyerId)
	assert.Equal(t, f.seller.Id, res.SellerId)

	// Money went back
	assert.InDelta(t, 100, f.balance(t, f.buyer.Id), 0.001)
	assert.InDelta(t, 0, f.balance(t, f.seller.Id), 0.001)

	// Purchase flipped with a timestamp
	var p model.Purchase
	require.NoError(t, f.db.First(&p, "id = ?", f.purchase.Id).Error)
	assert.Equal(t, string(entity.PaymentStatusRefunded), p.PaymentStatus)
	assert.NotNil(t, p.RefundedAt)

	// Case resolved
	var c model.Case
	require.NoError(t, f.db.First(&c, "id = ?", f.supCase.Id).Error)
	assert.Equal(t, string(entity.CaseStatusResolved), c.Status)

	// One audit row per side, both tied to the purchase
	var txs []model.WalletTransaction
	require.NoError(t, f.db.Order("amount desc").Find(&txs).Error)
	require.Len(t, txs, 2)
	assert.Equal(t, string(entity.TransactionTypeRefund), txs[0].Type)
	assert.InDelta(t, 100, txs[0].Amount, 0.001)
	assert.Equal(t, f.buyer.Id, txs[0].UserId)
	assert.Equal(t, string(entity.TransactionTypeRefundDeduction), txs[1].Type)
	assert.InDelta(t, -100, txs[1].Amount, 0.001)
	assert.Equal(t, f.seller.Id, txs[1].UserId)
	for _, tx := range txs {
		require.NotNil(t, tx.ReferenceId)
		assert.Equal(t, f.purchase.Id, *tx.ReferenceId)
	}
}

func TestProcessRefundTwiceMovesMoneyOnce(t *testing.T) {
	f := newRefundFixture(t)
	ctx := context.Background()

	_, err := f.proc.Process(ctx, f.factory.NewUnitOfWork(ctx), f.supCase.Id, "")
	require.NoError(t, err)

	// Simulate a retry racing the first run: the case looks workable
	// again but the purchase is already refunded.
	require.NoError(t, f.db.Model(&model.Case{}).
		Where("id = ?", f.supCase.Id).
		Update("status", string(entity.CaseStatusInProgress)).Error)

	_, err = f.proc.Process(ctx, f.factory.NewUnitOfWork(ctx), f.supCase.Id, "")
	assert.ErrorIs(t, err, ErrAlreadyRefunded)

	assert.InDelta(t, 100, f.balance(t, f.buyer.Id), 0.001)
	assert.InDelta(t, 0, f.balance(t, f.seller.Id), 0.001)

	var txCount int64
	f.db.Model(&model.WalletTransaction{}).Count(&txCount)
	assert.EqualValues(t, 2, txCount)
}

func TestProcessRefundNeedsWorkableCase(t *testing.T) {
	f := newRefundFixture(t)
	ctx := context.Background()

	require.NoError(t, f.db.Model(&model.Case{}).
		Where("id = ?", f.supCase.Id).
		Update("status", string(entity.CaseStatusClosed)).Error)

	_, err := f.proc.Process(ctx, f.factory.NewUnitOfWork(ctx), f.supCase.Id, "")
	assert.ErrorIs(t, err, ErrCaseNotRefundable)
	assert.InDelta(t, 0, f.balance(t, f.buyer.Id), 0.001)
}

func TestProcessRefundUnknownCase(t *testing.T) {
	f := newRefundFixture(t)
	ctx := context.Background()

	_, err := f.proc.Process(ctx, f.factory.NewUnitOfWork(ctx), uuid.New(), "")
	assert.ErrorIs(t, err, ErrCaseNotFound)
}
