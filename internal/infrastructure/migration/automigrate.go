package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/smartlock-inc/smartlock/internal/infrastructure/persistence/models"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

// AutoMigrateStrategy derives the schema from the persistence models. It
// has no version history, so Down and Status are unsupported.
type AutoMigrateStrategy struct {
	models []interface{}
	logger logger.Interface
}

func NewAutoMigrateStrategy(log logger.Interface) *AutoMigrateStrategy {
	return &AutoMigrateStrategy{
		models: models.All(),
		logger: log.Named("migration.automigrate"),
	}
}

func (s *AutoMigrateStrategy) Name() string {
	return "gorm_auto_migrate"
}

func (s *AutoMigrateStrategy) Up(ctx context.Context, db *gorm.DB) error {
	s.logger.Infow("running gorm auto migrate", "models_count", len(s.models))

	if err := db.WithContext(ctx).AutoMigrate(s.models...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}

func (s *AutoMigrateStrategy) Down(context.Context, *gorm.DB, int) error {
	return fmt.Errorf("down migration is not supported by %s", s.Name())
}

func (s *AutoMigrateStrategy) Status(context.Context, *gorm.DB) ([]Status, error) {
	return nil, fmt.Errorf("status is not supported by %s", s.Name())
}
