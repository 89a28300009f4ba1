package migration

import (
	"context"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/smartlock-inc/smartlock/internal/shared/config"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

// ScriptsDir is where `migrate create` writes new postgres scripts.
const ScriptsDir = "internal/infrastructure/migration/scripts/postgres"

// Manager runs the migration strategy matching a database driver.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks versioned goose scripts for postgres and sqlite and
// gorm AutoMigrate for mysql.
func NewManager(driver string, log logger.Interface) (*Manager, error) {
	var strategy Strategy

	switch strings.ToLower(driver) {
	case config.DriverPostgres:
		strategy = NewGooseStrategy(goose.DialectPostgres, "postgres", log)
	case config.DriverSQLite:
		strategy = NewGooseStrategy(goose.DialectSQLite3, "sqlite3", log)
	case config.DriverMySQL:
		strategy = NewAutoMigrateStrategy(log)
	default:
		return nil, fmt.Errorf("no migration strategy for driver %q", driver)
	}

	return NewManagerWithStrategy(strategy, log), nil
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.Named("migration.manager"),
	}
}

func (m *Manager) Strategy() Strategy {
	return m.strategy
}

func (m *Manager) Up(ctx context.Context, db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.Name())

	if err := m.strategy.Up(ctx, db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.Name(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.Name(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.Name())
	return nil
}

func (m *Manager) Down(ctx context.Context, db *gorm.DB, steps int) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}
	return m.strategy.Down(ctx, db, steps)
}

func (m *Manager) Status(ctx context.Context, db *gorm.DB) ([]Status, error) {
	return m.strategy.Status(ctx, db)
}
