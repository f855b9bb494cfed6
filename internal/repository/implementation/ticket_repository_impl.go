package implementation

import (
	"context"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/mapper"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/model"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/contract"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ticketRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TicketMapper
}

func NewTicketRepository(db *gorm.DB) contract.TicketRepository {
	return &ticketRepositoryImpl{
		db:     db,
		mapper: mapper.NewTicketMapper(),
	}
}

func (r *ticketRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ticketRepositoryImpl) Create(ctx context.Context, ticket *entity.Ticket) error {
	modelTicket := r.mapper.ToModel(ticket)
	if err := r.db.WithContext(ctx).Create(modelTicket).Error; err != nil {
		return err
	}
	*ticket = *r.mapper.ToEntity(modelTicket)
	return nil
}

func (r *ticketRepositoryImpl) Update(ctx context.Context, ticket *entity.Ticket) error {
	modelTicket := r.mapper.ToModel(ticket)
	if err := r.db.WithContext(ctx).Save(modelTicket).Error; err != nil {
		return err
	}
	*ticket = *r.mapper.ToEntity(modelTicket)
	return nil
}

func (r *ticketRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Ticket{}).Error
}

func (r *ticketRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Ticket, error) {
	var modelTicket model.Ticket
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelTicket).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelTicket), nil
}

// FindOneWithSeller returns a ticket with its seller profile preloaded.
func (r *ticketRepositoryImpl) FindOneWithSeller(ctx context.Context, specs ...specification.Specification) (*entity.Ticket, error) {
	var modelTicket model.Ticket
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Seller"), specs...)

	if err := query.First(&modelTicket).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	ticket := r.mapper.ToEntity(&modelTicket)
	ticket.Seller = mapper.NewUserMapper().ToEntity(&modelTicket.Seller)
	return ticket, nil
}

func (r *ticketRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Ticket, error) {
	var modelTickets []*model.Ticket
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelTickets).Error; err != nil {
		return nil, err
	}

	var tickets []*entity.Ticket
	for _, mt := range modelTickets {
		tickets = append(tickets, r.mapper.ToEntity(mt))
	}
	return tickets, nil
}

func (r *ticketRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Ticket{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
