package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subscription records the (mocked) paywall purchase. Plan is "monthly"
// or "yearly"; the entitlement id mirrors what the store SDK would return.
type Subscription struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID  `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	Plan          string     `json:"plan" gorm:"not null"`
	EntitlementID string     `json:"entitlementId" gorm:"not null"`
	Active        bool       `json:"active" gorm:"default:true"`
	PurchasedAt   *time.Time `json:"purchasedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type PurchaseRequest struct {
	Plan string `json:"plan" validate:"required"`
}
