package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                 uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Email              string         `json:"email" gorm:"uniqueIndex;not null"`
	Password           string         `json:"-"`
	Name               string         `json:"name"`
	Locale             string         `json:"locale" gorm:"default:en"`
	OnboardingStep     int            `json:"onboardingStep" gorm:"default:0"`
	OnboardingComplete bool           `json:"onboardingComplete" gorm:"default:false"`
	FCMToken           string         `json:"-" gorm:"column:fcm_token"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	DeletedAt          gorm.DeletedAt `json:"-" gorm:"index"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Auth DTOs
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Locale *string `json:"locale"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
