package mapper

import (
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:            u.Id,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		FullName:      u.FullName,
		Role:          entity.UserRole(u.Role),
		Approved:      u.Approved,
		Suspended:     u.Suspended,
		CreditBalance: u.CreditBalance,
		LoyaltyPoints: u.LoyaltyPoints,
		AvatarURL:     u.AvatarURL,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:            u.Id,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		FullName:      u.FullName,
		Role:          string(u.Role),
		Approved:      u.Approved,
		Suspended:     u.Suspended,
		CreditBalance: u.CreditBalance,
		LoyaltyPoints: u.LoyaltyPoints,
		AvatarURL:     u.AvatarURL,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
