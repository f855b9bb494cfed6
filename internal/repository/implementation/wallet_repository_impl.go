package implementation

import (
	"context"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/model"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/contract"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/specification"

	"gorm.io/gorm"
)

type walletRepositoryImpl struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) contract.WalletRepository {
	return &walletRepositoryImpl{db: db}
}

func (r *walletRepositoryImpl) CreateTransaction(ctx context.Context, tx *entity.WalletTransaction) error {
	modelTx := &model.WalletTransaction{
		Id:          tx.Id,
		UserId:      tx.UserId,
		Amount:      tx.Amount,
		Type:        string(tx.Type),
		Description: tx.Description,
		ReferenceId: tx.ReferenceId,
		CreatedAt:   tx.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(modelTx).Error
}

func (r *walletRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WalletTransaction, error) {
	var modelTxs []*model.WalletTransaction
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&modelTxs).Error; err != nil {
		return nil, err
	}

	var txs []*entity.WalletTransaction
	for _, mt := range modelTxs {
		txs = append(txs, r.mapToEntity(mt))
	}
	return txs, nil
}

func (r *walletRepositoryImpl) SumAmountByType(ctx context.Context, txType entity.TransactionType) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.WalletTransaction{}).
		Where("type = ?", string(txType)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *walletRepositoryImpl) mapToEntity(mt *model.WalletTransaction) *entity.WalletTransaction {
	return &entity.WalletTransaction{
		Id:          mt.Id,
		UserId:      mt.UserId,
		Amount:      mt.Amount,
		Type:        entity.TransactionType(mt.Type),
		Description: mt.Description,
		ReferenceId: mt.ReferenceId,
		CreatedAt:   mt.CreatedAt,
	}
}
