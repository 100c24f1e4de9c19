package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "maverick-bank/docs"
	"maverick-bank/internal/api"
	"maverick-bank/internal/batch"
	"maverick-bank/internal/config"
	"maverick-bank/internal/domain/customer"
	"maverick-bank/internal/domain/employee"
	"maverick-bank/internal/domain/identity"
	"maverick-bank/internal/event"
	"maverick-bank/internal/infrastructure/database/postgres"
	"maverick-bank/internal/infrastructure/logging"

	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// @title Maverick Bank Identity API
// @version 1.0
// @description User, customer and bank employee management for the Maverick Bank back office.

// @contact.name API Support

// @BasePath /api/v1
func main() {
	cfg, logger := initializeApp()

	dbPool := initializeDatabase(cfg, logger)
	defer closeDatabase(dbPool, logger)

	rabbitConn, publisher := setupRabbitMQ(cfg, logger)
	userService, customerService, employeeService, statsJob := initializeServices(cfg, dbPool, publisher, logger)

	cronScheduler := startBatchJobs(cfg, logger, statsJob)
	router := api.SetupRouter(userService, customerService, employeeService, cfg, logger)

	srv, serverErrors, shutdownChan := startServer(cfg, router, logger)
	handleShutdown(srv, cronScheduler, rabbitConn, shutdownChan, serverErrors, logger)
}

func initializeApp() (*config.Config, *slog.Logger) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.Logger)
	logger.Info("Application starting...", "config_source", viper.ConfigFileUsed())

	return cfg, logger
}

func initializeDatabase(cfg *config.Config, logger *slog.Logger) *pgxpool.Pool {
	logger.Info("Initializing database connection pool...")
	dbPool, err := postgres.NewConnectionPool(context.Background(), cfg.Database, logger)
	if err != nil {
		logger.Error("Failed to initialize database connection pool", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.EnsureSchema(ctx, dbPool, logger); err != nil {
		logger.Error("Failed to ensure database schema", "error", err)
		dbPool.Close()
		os.Exit(1)
	}
	// A missing CUSTOMER role would leave registration unable to resolve a
	// default role, so seeding failure is fatal.
	if err := postgres.SeedRoles(ctx, dbPool, logger); err != nil {
		logger.Error("Failed to seed roles", "error", err)
		dbPool.Close()
		os.Exit(1)
	}

	return dbPool
}

func closeDatabase(dbPool *pgxpool.Pool, logger *slog.Logger) {
	logger.Info("Closing database connection pool...")
	dbPool.Close()
}

func setupRabbitMQ(cfg *config.Config, logger *slog.Logger) (*amqp.Connection, event.EventPublisher) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("RabbitMQ is disabled, lifecycle events will not be published.")
		return nil, event.NewNoopEventPublisher()
	}

	logger.Info("Connecting to RabbitMQ...", "host", cfg.RabbitMQ.Host, "port", cfg.RabbitMQ.Port)
	conn, err := amqp.Dial(cfg.RabbitMQ.URL())
	if err != nil {
		logger.Error("Failed to connect to RabbitMQ, continuing without event publishing", "error", err)
		return nil, event.NewNoopEventPublisher()
	}

	publisher, err := event.NewRabbitMQEventPublisher(conn, cfg.RabbitMQ.ExchangeName, logger)
	if err != nil {
		logger.Error("Failed to set up RabbitMQ publisher, continuing without event publishing", "error", err)
		conn.Close()
		return nil, event.NewNoopEventPublisher()
	}

	return conn, publisher
}

func initializeServices(cfg *config.Config, dbPool *pgxpool.Pool, publisher event.EventPublisher, logger *slog.Logger) (identity.UserService, customer.Service, employee.Service, *batch.ProfileStatsJob) {
	logger.Info("Initializing application components...")

	userRepo := postgres.NewUserRepository(dbPool, logger)
	roleRepo := postgres.NewRoleRepository(dbPool, logger)
	customerRepo := postgres.NewCustomerRepository(dbPool, logger)
	employeeRepo := postgres.NewBankEmployeeRepository(dbPool, logger)

	allowDual := cfg.Identity.AllowDualProfiles

	userService := identity.NewUserService(userRepo, roleRepo, publisher, logger)
	customerService := customer.NewService(customerRepo, userRepo, employeeRepo, publisher, logger, allowDual)
	employeeService := employee.NewService(employeeRepo, userRepo, customerRepo, publisher, logger, allowDual)

	statsJob := batch.NewProfileStatsJob(userRepo, customerRepo, employeeRepo, logger)

	return userService, customerService, employeeService, statsJob
}

func startBatchJobs(cfg *config.Config, logger *slog.Logger, statsJob *batch.ProfileStatsJob) *cron.Cron {
	logger.Info("Initializing batch job scheduler...")
	c := cron.New()

	scheduleSpec := cfg.Batch.ProfileStatsSchedule
	if scheduleSpec == "" {
		scheduleSpec = "*/5 * * * *"
		logger.Warn("Profile stats schedule not configured, using default", "schedule", scheduleSpec)
	}
	jobTimeout := cfg.Batch.ProfileStatsTimeout
	if jobTimeout <= 0 {
		jobTimeout = 30 * time.Second
	}

	jobID, err := c.AddJob(scheduleSpec, cron.FuncJob(func() {
		jobLogger := logger.With("job_name", "ProfileStats")
		jobLogger.Info("Cron triggered: Running profile stats job.")

		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		if runErr := statsJob.Run(ctx); runErr != nil {
			jobLogger.Error("Profile stats job finished with error", slog.Any("error", runErr))
		} else {
			jobLogger.Info("Profile stats job finished successfully.")
		}
	}))

	if err != nil {
		logger.Error("Failed to schedule profile stats job", "error", err, "schedule", scheduleSpec)
		os.Exit(1)
	}

	logger.Info("Profile stats job scheduled.", "jobID", jobID, "schedule", scheduleSpec)
	c.Start()
	return c
}

func startServer(cfg *config.Config, router http.Handler, logger *slog.Logger) (*http.Server, <-chan error, <-chan os.Signal) {
	logger.Info("Setting up HTTP server...", "port", cfg.Server.Port)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Server listening on port %d", cfg.Server.Port))
		err := srv.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			serverErrors <- err
		} else {
			logger.Info("Server closed gracefully.")
			serverErrors <- nil
		}
	}()
	return srv, serverErrors, shutdownChan
}

func handleShutdown(srv *http.Server, cronScheduler *cron.Cron, rabbitConn *amqp.Connection,
	shutdownChan <-chan os.Signal, serverErrors <-chan error, logger *slog.Logger) {
	logger.Info("Shutdown handler started. Waiting for signal or server error...")

	triggerReason := waitForShutdownTrigger(shutdownChan, serverErrors, logger)

	logger.Info("Starting graceful shutdown...", "trigger", triggerReason)

	stopCronScheduler(cronScheduler, logger)
	closeRabbitMQConnection(rabbitConn, logger)
	shutdownHTTPServer(srv, serverErrors, logger)

	logger.Info("Application shutdown process complete.")
}

func waitForShutdownTrigger(shutdownChan <-chan os.Signal, serverErrors <-chan error, logger *slog.Logger) string {
	select {
	case sig := <-shutdownChan:
		logger.Info("Shutdown signal received.", "signal", sig.String())
		return "signal: " + sig.String()
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server exited unexpectedly before signal", "error", err)
			os.Exit(1)
		}
		logger.Info("Server goroutine finished before signal.", "error", err)
		return "server exited"
	}
}

func stopCronScheduler(cronScheduler *cron.Cron, logger *slog.Logger) {
	logger.Info("Stopping cron scheduler...")
	cronCtx := cronScheduler.Stop()
	select {
	case <-cronCtx.Done():
		logger.Info("Cron scheduler stopped gracefully.")
	case <-time.After(15 * time.Second):
		logger.Warn("Cron scheduler shutdown timed out.")
	}
}

func closeRabbitMQConnection(rabbitConn *amqp.Connection, logger *slog.Logger) {
	if rabbitConn != nil && !rabbitConn.IsClosed() {
		logger.Info("Closing RabbitMQ connection...")
		if err := rabbitConn.Close(); err != nil {
			logger.Error("Failed to close RabbitMQ connection gracefully", slog.Any("error", err))
		} else {
			logger.Info("RabbitMQ connection closed.")
		}
	} else if rabbitConn == nil {
		logger.Info("RabbitMQ connection was not established, skipping close.")
	} else {
		logger.Info("RabbitMQ connection already closed, skipping close.")
	}
}

func shutdownHTTPServer(srv *http.Server, serverErrors <-chan error, logger *slog.Logger) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Info("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server graceful shutdown failed", "error", err)
		} else {
			logger.Info("HTTP server shutdown initiated.")
		}
		if err := srv.Close(); err != nil {
			logger.Error("HTTP server forced close failed", "error", err)
		}
	} else {
		logger.Info("HTTP server gracefully stopped.")
	}

	logger.Info("Waiting for server goroutine to confirm exit...")
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("Server goroutine exited with unexpected error after shutdown", "error", err)
		} else {
			logger.Info("Server goroutine confirmed exit.")
		}
	case <-time.After(5 * time.Second):
		logger.Warn("Timed out waiting for server goroutine confirmation.")
	}
}
