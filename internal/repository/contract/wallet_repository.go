package contract

import (
	"context"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/specification"
)

type WalletRepository interface {
	CreateTransaction(ctx context.Context, tx *entity.WalletTransaction) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WalletTransaction, error)
	SumAmountByType(ctx context.Context, txType entity.TransactionType) (float64, error)
}
