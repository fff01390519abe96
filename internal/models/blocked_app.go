package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlockedApp is one app the user chose to shield while daily goals are
// unmet. AppID is the catalog identifier ("instagram", "tiktok", ...).
type BlockedApp struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;uniqueIndex:idx_user_app;not null"`
	AppID     string    `json:"appId" gorm:"uniqueIndex:idx_user_app;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (b *BlockedApp) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// DefaultBlockedAppIDs is seeded for new accounts, matching the app's
// out-of-the-box selection.
var DefaultBlockedAppIDs = []string{"instagram", "tiktok", "twitter"}

type SetBlockedAppsRequest struct {
	AppIDs []string `json:"appIds" validate:"required"`
}
