package implementation

import (
	"context"
	"time"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/mapper"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/model"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/contract"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type purchaseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PurchaseMapper
}

func NewPurchaseRepository(db *gorm.DB) contract.PurchaseRepository {
	return &purchaseRepositoryImpl{
		db:     db,
		mapper: mapper.NewPurchaseMapper(),
	}
}

func (r *purchaseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *purchaseRepositoryImpl) Create(ctx context.Context, purchase *entity.Purchase) error {
	modelPurchase := r.mapper.ToModel(purchase)
	if err := r.db.WithContext(ctx).Create(modelPurchase).Error; err != nil {
		return err
	}
	*purchase = *r.mapper.ToEntity(modelPurchase)
	return nil
}

func (r *purchaseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Purchase, error) {
	var modelPurchase model.Purchase
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelPurchase).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelPurchase), nil
}

// FindOneWithDetails returns a purchase with buyer, seller and ticket preloaded.
func (r *purchaseRepositoryImpl) FindOneWithDetails(ctx context.Context, specs ...specification.Specification) (*entity.Purchase, error) {
	var modelPurchase model.Purchase
	query := r.applySpecifications(
		r.db.WithContext(ctx).Preload("Ticket").Preload("Buyer").Preload("Seller"),
		specs...,
	)

	if err := query.First(&modelPurchase).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	userMapper := mapper.NewUserMapper()
	purchase := r.mapper.ToEntity(&modelPurchase)
	purchase.Ticket = mapper.NewTicketMapper().ToEntity(&modelPurchase.Ticket)
	purchase.Buyer = userMapper.ToEntity(&modelPurchase.Buyer)
	purchase.Seller = userMapper.ToEntity(&modelPurchase.Seller)
	return purchase, nil
}

func (r *purchaseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Purchase, error) {
	var modelPurchases []*model.Purchase
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelPurchases).Error; err != nil {
		return nil, err
	}

	var purchases []*entity.Purchase
	for _, mp := range modelPurchases {
		purchases = append(purchases, r.mapper.ToEntity(mp))
	}
	return purchases, nil
}

func (r *purchaseRepositoryImpl) FindAllWithTickets(ctx context.Context, specs ...specification.Specification) ([]*entity.Purchase, error) {
	var modelPurchases []*model.Purchase
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Ticket"), specs...)

	if err := query.Find(&modelPurchases).Error; err != nil {
		return nil, err
	}

	ticketMapper := mapper.NewTicketMapper()
	var purchases []*entity.Purchase
	for _, mp := range modelPurchases {
		purchase := r.mapper.ToEntity(mp)
		purchase.Ticket = ticketMapper.ToEntity(&mp.Ticket)
		purchases = append(purchases, purchase)
	}
	return purchases, nil
}

func (r *purchaseRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Purchase{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// MarkRefunded is the idempotency gate of the refund flow: the WHERE clause
// only matches while the purchase is still completed, so a concurrent or
// repeated refund sees zero rows affected.
func (r *purchaseRepositoryImpl) MarkRefunded(ctx context.Context, id uuid.UUID, refundedAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Purchase{}).
		Where("id = ? AND payment_status = ?", id, string(entity.PaymentStatusCompleted)).
		Updates(map[string]interface{}{
			"payment_status": string(entity.PaymentStatusRefunded),
			"refunded_at":    refundedAt,
		})
	return res.RowsAffected, res.Error
}
