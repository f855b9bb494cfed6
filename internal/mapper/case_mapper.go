package mapper

import (
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/model"
)

type CaseMapper struct {
	users   *UserMapper
	tickets *TicketMapper
}

func NewCaseMapper() *CaseMapper {
	return &CaseMapper{
		users:   NewUserMapper(),
		tickets: NewTicketMapper(),
	}
}

func (m *CaseMapper) ToEntity(c *model.Case) *entity.Case {
	if c == nil {
		return nil
	}
	return &entity.Case{
		Id:          c.Id,
		CaseNumber:  c.CaseNumber,
		Title:       c.Title,
		Description: c.Description,
		Status:      entity.CaseStatus(c.Status),
		UserId:      c.UserId,
		TicketId:    c.TicketId,
		PurchaseId:  c.PurchaseId,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *CaseMapper) ToModel(c *entity.Case) *model.Case {
	if c == nil {
		return nil
	}
	return &model.Case{
		Id:          c.Id,
		CaseNumber:  c.CaseNumber,
		Title:       c.Title,
		Description: c.Description,
		Status:      string(c.Status),
		UserId:      c.UserId,
		TicketId:    c.TicketId,
		PurchaseId:  c.PurchaseId,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *CaseMapper) ReplyToEntity(r *model.CaseReply) *entity.CaseReply {
	if r == nil {
		return nil
	}
	return &entity.CaseReply{
		Id:        r.Id,
		CaseId:    r.CaseId,
		UserId:    r.UserId,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
	}
}

func (m *CaseMapper) ReplyToModel(r *entity.CaseReply) *model.CaseReply {
	if r == nil {
		return nil
	}
	return &model.CaseReply{
		Id:        r.Id,
		CaseId:    r.CaseId,
		UserId:    r.UserId,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
	}
}
