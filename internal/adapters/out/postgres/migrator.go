package postgres

import (
	"context"
	"embed"
	"errors"
	"strings"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const migrationsDir = "migrations"

//go:embed migrations/*.sql
var migrations embed.FS

// Migrator applies the embedded SQL migrations with goose.
type Migrator struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewMigrator configures goose for Postgres and the embedded migration set.
func NewMigrator(db *gorm.DB, logger *zap.Logger) (*Migrator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, err
	}

	return &Migrator{
		db:     db,
		logger: logger.With(zap.String("component", "migrator")),
	}, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up(ctx context.Context) error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}

	if err := goose.UpContext(ctx, sqlDB, migrationsDir); err != nil {
		if isNoMigrationErr(err) {
			m.logger.Info("no migrations to apply")
			return nil
		}
		return err
	}

	m.logger.Info("migrations applied")
	return nil
}

// Down rolls back the given number of migrations. Steps <= 0 defaults to 1.
func (m *Migrator) Down(ctx context.Context, steps int) error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}

	if steps <= 0 {
		steps = 1
	}

	for range steps {
		if err := goose.DownContext(ctx, sqlDB, migrationsDir); err != nil {
			if isNoMigrationErr(err) {
				m.logger.Info("no migrations to rollback")
				return nil
			}
			return err
		}
	}

	m.logger.Info("migrations rolled back", zap.Int("steps", steps))
	return nil
}

func isNoMigrationErr(err error) bool {
	if errors.Is(err, goose.ErrNoNextVersion) || errors.Is(err, goose.ErrNoMigrationFiles) {
		return true
	}

	return strings.Contains(err.Error(), "no migrations")
}
