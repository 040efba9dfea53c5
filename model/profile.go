package model

import "time"

type Profile struct {
	DTO
	Email      string  `gorm:"uniqueIndex;not null" json:"email"`
	Password   string  `gorm:"not null" json:"-"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Role       string  `gorm:"size:20;not null;default:'customer'" json:"role"`
	BusinessId *uint   `json:"businessId"`
	AvatarUrl  *string `json:"avatarUrl"`
	IsActive   bool    `gorm:"default:true" json:"isActive"`

	Business *Business `gorm:"foreignKey:BusinessId" json:"business,omitempty"`
}

type Profiles []Profile

type RegisterInput struct {
	Email        string  `json:"email" validate:"required,email"`
	Password     string  `json:"password" validate:"required,min=6,max=72"`
	FirstName    *string `json:"firstName" validate:"omitempty,max=100"`
	LastName     *string `json:"lastName" validate:"omitempty,max=100"`
	Role         string  `json:"role" validate:"omitempty,oneof=business customer"`
	BusinessName *string `json:"businessName" validate:"omitempty,min=2,max=150"`
	BusinessType *string `json:"businessType" validate:"omitempty,oneof=restaurant salon clinic generic"`
}

type UpdateProfileInput struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,max=100"`
	AvatarUrl *string `json:"avatarUrl" validate:"omitempty,url"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=72"`
	RepeatPassword  string `json:"repeatPassword" validate:"required,eqfield=NewPassword"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=72"`
}

type PasswordResetToken struct {
	DTO
	ProfileId uint      `gorm:"not null" json:"profileId"`
	Token     string    `gorm:"type:varchar(255);not null;unique" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Profile   Profile   `gorm:"foreignKey:ProfileId" json:"profile"`
}

type ElevateRoleInput struct {
	ProfileId uint   `json:"profileId" validate:"required"`
	Role      string `json:"role" validate:"required,oneof=admin business customer"`
}

type FilterProfile struct {
	Pagination
	SearchKey string  `json:"searchKey"`
	Role      *string `json:"role"`
	Active    *bool   `json:"active"`
}
