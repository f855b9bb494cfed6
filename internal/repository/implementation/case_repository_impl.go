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

type caseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CaseMapper
}

func NewCaseRepository(db *gorm.DB) contract.CaseRepository {
	return &caseRepositoryImpl{
		db:     db,
		mapper: mapper.NewCaseMapper(),
	}
}

func (r *caseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *caseRepositoryImpl) Create(ctx context.Context, c *entity.Case) error {
	modelCase := r.mapper.ToModel(c)
	if err := r.db.WithContext(ctx).Create(modelCase).Error; err != nil {
		return err
	}
	*c = *r.mapper.ToEntity(modelCase)
	return nil
}

func (r *caseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Case, error) {
	var modelCase model.Case
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelCase).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelCase), nil
}

// FindOneWithDetails returns a case with its purchase, ticket and creator
// preloaded. Replies are fetched separately and joined by the service.
func (r *caseRepositoryImpl) FindOneWithDetails(ctx context.Context, specs ...specification.Specification) (*entity.Case, error) {
	var modelCase model.Case
	query := r.applySpecifications(
		r.db.WithContext(ctx).Preload("Purchase").Preload("Ticket").Preload("Creator"),
		specs...,
	)

	if err := query.First(&modelCase).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	c := r.mapper.ToEntity(&modelCase)
	c.Purchase = mapper.NewPurchaseMapper().ToEntity(&modelCase.Purchase)
	c.Ticket = mapper.NewTicketMapper().ToEntity(&modelCase.Ticket)
	c.Creator = mapper.NewUserMapper().ToEntity(&modelCase.Creator)
	return c, nil
}

func (r *caseRepositoryImpl) FindAllWithCreator(ctx context.Context, specs ...specification.Specification) ([]*entity.Case, error) {
	var modelCases []*model.Case
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Creator"), specs...)

	if err := query.Find(&modelCases).Error; err != nil {
		return nil, err
	}

	userMapper := mapper.NewUserMapper()
	var cases []*entity.Case
	for _, mc := range modelCases {
		c := r.mapper.ToEntity(mc)
		c.Creator = userMapper.ToEntity(&mc.Creator)
		cases = append(cases, c)
	}
	return cases, nil
}

func (r *caseRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Case{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *caseRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CaseStatus) error {
	return r.db.WithContext(ctx).Model(&model.Case{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		}).Error
}

func (r *caseRepositoryImpl) TouchUpdatedAt(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Case{}).
		Where("id = ?", id).
		Update("updated_at", at).Error
}

func (r *caseRepositoryImpl) CreateReply(ctx context.Context, reply *entity.CaseReply) error {
	modelReply := r.mapper.ReplyToModel(reply)
	if err := r.db.WithContext(ctx).Create(modelReply).Error; err != nil {
		return err
	}
	*reply = *r.mapper.ReplyToEntity(modelReply)
	return nil
}

// FindRepliesWithAuthors returns a case's replies ordered created_at ASC,
// each with its author profile attached.
func (r *caseRepositoryImpl) FindRepliesWithAuthors(ctx context.Context, caseId uuid.UUID) ([]*entity.CaseReply, error) {
	var modelReplies []*model.CaseReply
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("case_id = ?", caseId).
		Order("created_at ASC").
		Find(&modelReplies).Error
	if err != nil {
		return nil, err
	}

	userMapper := mapper.NewUserMapper()
	var replies []*entity.CaseReply
	for _, mr := range modelReplies {
		reply := r.mapper.ReplyToEntity(mr)
		reply.Author = userMapper.ToEntity(&mr.Author)
		replies = append(replies, reply)
	}
	return replies, nil
}
