package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleBuyer  UserRole = "buyer"
	UserRoleSeller UserRole = "seller"
	UserRoleAdmin  UserRole = "admin"
)

type User struct {
	Id            uuid.UUID
	Email         string
	PasswordHash  *string
	FullName      string
	Role          UserRole
	Approved      bool
	Suspended     bool
	CreditBalance float64
	LoyaltyPoints int
	AvatarURL     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CanSell reports whether the user may list and sell tickets.
func (u *User) CanSell() bool {
	return u.Role == UserRoleSeller && u.Approved && !u.Suspended
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
