package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hitchly/planner-api/internal/config"
	"github.com/hitchly/planner-api/internal/store"
)

func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Auto Migrate
	if err := db.AutoMigrate(&store.Slot{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to auto migrate")
	}

	return db
}
