package contract

import (
	"context"
	"time"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/specification"

	"github.com/google/uuid"
)

type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Purchase, error)
	FindOneWithDetails(ctx context.Context, specs ...specification.Specification) (*entity.Purchase, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Purchase, error)
	FindAllWithTickets(ctx context.Context, specs ...specification.Specification) ([]*entity.Purchase, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// MarkRefunded flips payment_status to refunded only while it is still
	// completed. Returns the number of rows touched; zero means the purchase
	// was already refunded and the caller must not move any balances.
	MarkRefunded(ctx context.Context, id uuid.UUID, refundedAt time.Time) (int64, error)
}
