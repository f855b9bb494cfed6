package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash  *string   `gorm:"type:varchar(255)"`
	FullName      string    `gorm:"type:varchar(255);not null"`
	Role          string    `gorm:"type:varchar(20);not null;default:'buyer';index"`
	Approved      bool      `gorm:"default:false"`
	Suspended     bool      `gorm:"default:false"`
	CreditBalance float64   `gorm:"type:decimal(12,2);not null;default:0"`
	LoyaltyPoints int       `gorm:"not null;default:0"`
	AvatarURL     *string   `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (User) TableName() string {
	return "profiles"
}
