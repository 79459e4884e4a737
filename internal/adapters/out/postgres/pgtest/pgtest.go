// Package pgtest starts a disposable Postgres container with the application schema
// for integration tests of the GORM adapters.
package pgtest

import (
	"context"
	"fmt"
	"time"

	postgres_adapter "delivery-api/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Tables lists every application table, children first.
const Tables = "order_items, orders, products, customers"

// Database is a running container plus a migrated GORM connection to it.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine, connects to it and applies all migrations.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start container: %w", err)
	}

	database := &Database{Container: container}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}

	db, err := postgres_adapter.OpenDSN(ctx, dsn, postgres_adapter.Config{})
	if err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}
	database.DB = db

	migrator, err := postgres_adapter.NewMigrator(db, nil)
	if err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}
	if err := migrator.Up(ctx); err != nil {
		_ = database.Terminate(ctx)
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return database, nil
}

// Truncate empties every application table.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE " + Tables + " CASCADE").Error
}

// Terminate closes the connection and stops the container.
func (d *Database) Terminate(ctx context.Context) error {
	if d.DB != nil {
		_ = postgres_adapter.Close(d.DB)
	}
	if d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
