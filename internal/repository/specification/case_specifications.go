package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByOwner filters cases (or replies, purchases) by their user_id column.
type ByOwner struct {
	UserId uuid.UUID
}

func (s ByOwner) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserId)
}

// ByCaseId filters replies by their parent case.
type ByCaseId struct {
	CaseId uuid.UUID
}

func (s ByCaseId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("case_id = ?", s.CaseId)
}

// ByBuyer filters purchases by buyer_id.
type ByBuyer struct {
	BuyerId uuid.UUID
}

func (s ByBuyer) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("buyer_id = ?", s.BuyerId)
}

// BySeller filters tickets or purchases by seller_id.
type BySeller struct {
	SellerId uuid.UUID
}

func (s BySeller) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("seller_id = ?", s.SellerId)
}

// ByPurchaseIds filters cases raised against any of the given purchases.
type ByPurchaseIds struct {
	PurchaseIds []uuid.UUID
}

func (s ByPurchaseIds) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("purchase_id IN ?", s.PurchaseIds)
}

// Published filters tickets visible on the marketplace.
type Published struct{}

func (s Published) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_published = ?", true)
}
