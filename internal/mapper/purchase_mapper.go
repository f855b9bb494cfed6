package mapper

import (
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/model"
)

type PurchaseMapper struct{}

func NewPurchaseMapper() *PurchaseMapper {
	return &PurchaseMapper{}
}

func (m *PurchaseMapper) ToEntity(p *model.Purchase) *entity.Purchase {
	if p == nil {
		return nil
	}
	return &entity.Purchase{
		Id:            p.Id,
		TicketId:      p.TicketId,
		BuyerId:       p.BuyerId,
		SellerId:      p.SellerId,
		Price:         p.Price,
		PaymentStatus: entity.PaymentStatus(p.PaymentStatus),
		PurchaseDate:  p.PurchaseDate,
		RefundedAt:    p.RefundedAt,
	}
}

func (m *PurchaseMapper) ToModel(p *entity.Purchase) *model.Purchase {
	if p == nil {
		return nil
	}
	return &model.Purchase{
		Id:            p.Id,
		TicketId:      p.TicketId,
		BuyerId:       p.BuyerId,
		SellerId:      p.SellerId,
		Price:         p.Price,
		PaymentStatus: string(p.PaymentStatus),
		PurchaseDate:  p.PurchaseDate,
		RefundedAt:    p.RefundedAt,
	}
}
