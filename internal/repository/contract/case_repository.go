package contract

import (
	"context"
	"time"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/specification"

	"github.com/google/uuid"
)

type CaseRepository interface {
	Create(ctx context.Context, c *entity.Case) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Case, error)
	FindOneWithDetails(ctx context.Context, specs ...specification.Specification) (*entity.Case, error)
	FindAllWithCreator(ctx context.Context, specs ...specification.Specification) ([]*entity.Case, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CaseStatus) error
	TouchUpdatedAt(ctx context.Context, id uuid.UUID, at time.Time) error

	CreateReply(ctx context.Context, reply *entity.CaseReply) error
	FindRepliesWithAuthors(ctx context.Context, caseId uuid.UUID) ([]*entity.CaseReply, error)
}
