package store

import (
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot is one persisted key/value cell. Each collection is serialized
// whole into its slot on every change; there is no delta persistence.
type Slot struct {
	Key   string         `gorm:"primaryKey"`
	Value datatypes.JSON `gorm:"not null"`
}

// Store wraps the slot table behind a load/save contract with a
// silent-repair policy: corrupt or missing values fall back to a
// caller-supplied default instead of raising.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Load reads the slot for key. A missing slot, an unreadable row, or a
// value that fails to decode into T all yield fallback; stored data is
// never allowed to take the session down.
func Load[T any](s *Store, key string, fallback T) T {
	var slot Slot
	if err := s.db.First(&slot, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Err(err).Str("slot", key).Msg("slot read failed, using default")
		}
		return fallback
	}

	var v T
	if err := json.Unmarshal(slot.Value, &v); err != nil {
		log.Warn().Err(err).Str("slot", key).Msg("slot value corrupt, using default")
		return fallback
	}
	return v
}

// Save serializes v and writes it under key, replacing any previous
// value. Called on every mutation; no diffing, no debounce.
func (s *Store) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Slot{Key: key, Value: raw}).Error
}
