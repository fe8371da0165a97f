package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/exchwatch/currency_exchange_app/internal/core/services"
	"github.com/exchwatch/currency_exchange_app/internal/handlers"
	"github.com/exchwatch/currency_exchange_app/internal/ingest"
	"github.com/exchwatch/currency_exchange_app/internal/middleware"
	"github.com/exchwatch/currency_exchange_app/internal/platform/config"
	"github.com/exchwatch/currency_exchange_app/internal/repositories/database/pgsql"
	"github.com/exchwatch/currency_exchange_app/internal/scheduler"
	"github.com/exchwatch/currency_exchange_app/internal/utils"
	"github.com/exchwatch/currency_exchange_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Currency Exchange API
// @version 1.0
// @description Daily currency rates, statistics and per-user exchange operations.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	clock := utils.SystemClock{}
	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, clock)

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	// Background rate ingestion: run once at startup, then on the cron schedule.
	ingester := ingest.NewIngester(ingest.NewClient(cfg.RateProviderURL, clock), repos.RateRepo, cfg.BaseCurrency, clock)
	if status, err := ingester.Run(context.Background()); err != nil {
		logger.Error("Initial rate ingestion failed", slog.String("error", err.Error()))
	} else {
		logger.Info("Initial rate ingestion finished", slog.String("status", status))
	}

	sched := scheduler.New(logger)
	if err := sched.ScheduleIngestion(cfg.IngestSchedule, ingester); err != nil {
		logger.Error("Failed to schedule rate ingestion", slog.String("error", err.Error()))
		os.Exit(1)
	}
	sched.Start()
	defer sched.Stop()

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations over a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
