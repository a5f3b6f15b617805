package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	DTO
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"unique;not null" json:"email"`
	Phone    string `json:"phone"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"default:'user';not null" json:"role"`
	Active   bool   `gorm:"default:true" json:"active"`
}

type PasswordResetToken struct {
	DTO
	UserId    uint      `gorm:"not null;index" json:"userId"`
	Token     string    `gorm:"unique;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Used      bool      `gorm:"default:false" json:"used"`
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty"`
	Password string `json:"password" validate:"required,min=6"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	RepeatPassword  string `json:"repeatPassword" validate:"required,eqfield=NewPassword"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordInput struct {
	Token          string `json:"token" validate:"required"`
	NewPassword    string `json:"newPassword" validate:"required,min=6"`
	RepeatPassword string `json:"repeatPassword" validate:"required,eqfield=NewPassword"`
}
