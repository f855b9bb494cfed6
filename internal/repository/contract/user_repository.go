package contract

import (
	"context"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// AdjustCreditBalance applies a signed delta to the stored balance.
	// Both halves of a refund or purchase must run inside the same
	// unit-of-work transaction.
	AdjustCreditBalance(ctx context.Context, userId uuid.UUID, delta float64) error
	AddLoyaltyPoints(ctx context.Context, userId uuid.UUID, points int) error
	UpdateFlags(ctx context.Context, userId uuid.UUID, approved, suspended *bool) error
}
