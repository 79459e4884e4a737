package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"delivery-api/internal/adapters/out/postgres"
	"delivery-api/internal/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// NewRootCommand builds the delivery-api CLI.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "delivery-api",
		Short:         "Delivery orders, customers and products API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())

	return root
}

// Execute runs the CLI with ctx, which is canceled on shutdown signals.
func Execute(ctx context.Context) error {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"start"},
		Short:   "Run the HTTP service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			migrate, _ := cmd.Flags().GetBool("migrate")
			return withDatabase(cmd.Context(), func(ctx context.Context, cfg Config, log *zap.Logger, db *gorm.DB) error {
				if migrate {
					if err := migrateUp(ctx, db, log); err != nil {
						return err
					}
				}
				return serve(ctx, cfg, log, db)
			})
		},
	}
	cmd.Flags().Bool("migrate", true, "Apply pending migrations before serving")

	return cmd
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(cmd.Context(), func(ctx context.Context, _ Config, log *zap.Logger, db *gorm.DB) error {
				if err := migrateUp(ctx, db, log); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
				return nil
			})
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			return withDatabase(cmd.Context(), func(ctx context.Context, _ Config, log *zap.Logger, db *gorm.DB) error {
				migrator, err := postgres.NewMigrator(db, log)
				if err != nil {
					return err
				}
				if err := migrator.Down(ctx, steps); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations rolled back")
				return nil
			})
		},
	}
	downCmd.Flags().Int("steps", 1, "Number of migration steps to rollback")

	cmd.AddCommand(upCmd, downCmd)
	return cmd
}

type databaseFunc func(ctx context.Context, cfg Config, log *zap.Logger, db *gorm.DB) error

// withDatabase loads the configuration, builds the logger and opens the database around fn.
func withDatabase(ctx context.Context, fn databaseFunc) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logger())
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	db, err := postgres.Open(ctx, cfg.Database())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}()

	return fn(ctx, cfg, log, db)
}

func migrateUp(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	migrator, err := postgres.NewMigrator(db, log)
	if err != nil {
		return err
	}
	return migrator.Up(ctx)
}

// serve runs the HTTP server and the background jobs until ctx is canceled.
func serve(ctx context.Context, cfg Config, log *zap.Logger, db *gorm.DB) error {
	store, closeStore, err := NewCache(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("connect cache: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("failed to close cache", zap.Error(err))
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	root, err := NewCompositionRoot(cfg, db, store, log, registry)
	if err != nil {
		return err
	}

	router, err := root.CreateRouter()
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	serverErr := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", cfg.HTTPAddr()))
		serverErr <- router.Start(cfg.HTTPAddr())
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := router.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
