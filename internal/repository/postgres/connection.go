// Package postgres is the durable store backend, selected when
// DATABASE_URL is set. It honors the same semantics as the in-memory
// reference store.
package postgres

import (
	"github.com/jmorgan/word-royale/internal/domain"
	"github.com/jmorgan/word-royale/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&domain.Room{}, &domain.Player{}); err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Rooms:   NewRoomRepository(db),
		Players: NewPlayerRepository(db),
	}
}
