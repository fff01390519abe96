package models

import "time"

// StateBlob backs the named-key persistent store: one opaque serialized
// value per name. Goal and streak state lives here as a single JSON blob
// per user.
type StateBlob struct {
	Name      string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}
