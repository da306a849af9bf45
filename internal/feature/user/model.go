package user

import (
	"time"

	"gorm.io/gorm"

	"gin-task-forms/internal/domain"
	"gin-task-forms/internal/validate"
)

type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"size:80;not null"`
	Email        string `gorm:"uniqueIndex;size:191;not null"`
	PasswordHash string `gorm:"size:100;not null"`
	Role         string `gorm:"size:16;not null;default:user"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) ToDomain() *domain.User {
	u := &domain.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		u.DeletedAt = &t
	}
	return u
}

func FromDomain(u *domain.User) *UserModel {
	return &UserModel{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
	}
}

var RegisterRules = validate.Rules{
	{Field: "name", Kind: validate.Text, Min: 3, Max: 80, Message: "Name must be 3-80 characters."},
	{Field: "email", Kind: validate.Email, Message: "Invalid email format."},
	{Field: "password", Kind: validate.Password, Min: 8, Trim: true, Message: "Password must be at least 8 characters."},
}

var LoginRules = validate.Rules{
	{Field: "email", Kind: validate.Email, Message: "Email and password are required."},
	{Field: "password", Kind: validate.Password, Min: 1, Trim: true, Message: "Email and password are required."},
}
