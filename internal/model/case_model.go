package model

import (
	"time"

	"github.com/google/uuid"
)

type Case struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CaseNumber  string    `gorm:"type:varchar(20);unique;not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);not null;default:'open';index"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	TicketId    uuid.UUID `gorm:"type:uuid;not null"`
	PurchaseId  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Purchase Purchase `gorm:"foreignKey:PurchaseId"`
	Ticket   Ticket   `gorm:"foreignKey:TicketId"`
	Creator  User     `gorm:"foreignKey:UserId"`
}

func (Case) TableName() string {
	return "support_cases"
}

type CaseReply struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CaseId    uuid.UUID `gorm:"type:uuid;not null;index:idx_case_replies_case_created,priority:1"`
	UserId    uuid.UUID `gorm:"type:uuid;not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index:idx_case_replies_case_created,priority:2"`

	Author User `gorm:"foreignKey:UserId"`
}
