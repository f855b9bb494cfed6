package mapper

import (
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/model"
)

type TicketMapper struct{}

func NewTicketMapper() *TicketMapper {
	return &TicketMapper{}
}

func (m *TicketMapper) ToEntity(t *model.Ticket) *entity.Ticket {
	if t == nil {
		return nil
	}
	return &entity.Ticket{
		Id:          t.Id,
		SellerId:    t.SellerId,
		Title:       t.Title,
		Description: t.Description,
		Price:       t.Price,
		BettingSite: t.BettingSite,
		TicketCode:  t.TicketCode,
		Odds:        t.Odds,
		KickoffAt:   t.KickoffAt,
		IsPublished: t.IsPublished,
		IsFree:      t.IsFree,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (m *TicketMapper) ToModel(t *entity.Ticket) *model.Ticket {
	if t == nil {
		return nil
	}
	return &model.Ticket{
		Id:          t.Id,
		SellerId:    t.SellerId,
		Title:       t.Title,
		Description: t.Description,
		Price:       t.Price,
		BettingSite: t.BettingSite,
		TicketCode:  t.TicketCode,
		Odds:        t.Odds,
		KickoffAt:   t.KickoffAt,
		IsPublished: t.IsPublished,
		IsFree:      t.IsFree,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
