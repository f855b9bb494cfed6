package model

import (
	"time"

	"github.com/google/uuid"
)

type WalletTransaction struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserId      uuid.UUID  `gorm:"type:uuid;not null;index:idx_wallet_tx_user_created,priority:1"`
	Amount      float64    `gorm:"type:decimal(12,2);not null"`
	Type        string     `gorm:"type:varchar(30);not null;index"`
	Description string     `gorm:"type:text"`
	ReferenceId *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"index:idx_wallet_tx_user_created,priority:2"`
}
