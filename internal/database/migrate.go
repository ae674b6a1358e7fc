package database

import (
	"gorm.io/gorm"

	"github.com/craftnet/backend/internal/models"
)

// RunMigrations creates or updates the schema for every entity, including
// the composite unique indexes backing company and follower deduplication.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Company{},
		&models.Post{},
		&models.Comment{},
		&models.Follower{},
		&models.Approval{},
	)
}
