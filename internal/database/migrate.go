package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/forkcast/backend/internal/model"
)

// RunMigrations brings the catalog schema up to date.
func RunMigrations(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("running migrations")
	if err := db.AutoMigrate(&model.RecipeDoc{}); err != nil {
		return err
	}
	logger.Info("migrations complete")
	return nil
}
