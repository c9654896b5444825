package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/synerjet/bendesk/internal/infrastructure/persistence/models"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

// GormAutoMigrateStrategy derives the schema from the persistence models.
// Used for local development and throwaway sqlite databases.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{logger: log.With("component", "migration.automigrate")}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	all := models.All()
	s.logger.Infow("running gorm automigrate", "models_count", len(all))
	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("failed to automigrate: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
