package store

import (
	"errors"

	"github.com/lockgoal/lockgoal-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the named-key persistent store: load/save opaque string values
// by name. Absence is not an error; Load reports it via the bool.
type Store interface {
	Load(name string) (string, bool, error)
	Save(name, value string) error
	Delete(name string) error
}

// Gorm persists blobs in the state_blobs table, upserting on name.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (s *Gorm) Load(name string) (string, bool, error) {
	var blob models.StateBlob
	err := s.db.First(&blob, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return blob.Value, true, nil
}

func (s *Gorm) Save(name, value string) error {
	blob := models.StateBlob{Name: name, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
}

func (s *Gorm) Delete(name string) error {
	return s.db.Delete(&models.StateBlob{}, "name = ?", name).Error
}
