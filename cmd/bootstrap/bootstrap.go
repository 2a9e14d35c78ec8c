package bootstrap

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vipclinic-api/config"
	deliveryHttp "vipclinic-api/internal/delivery/http"
	"vipclinic-api/internal/delivery/http/handler"
	"vipclinic-api/internal/delivery/http/middleware"
	"vipclinic-api/internal/infrastructure/database"
	"vipclinic-api/internal/repository"
	"vipclinic-api/internal/usecase"
	"vipclinic-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *database.Provider
	Schema      *database.SchemaInitializer
	Server      *http.Server
	DBConnected bool
}

// New creates a new App instance with all dependencies initialized.
// An unreachable database is not fatal: the app starts degraded.
func New() (*App, error) {
	app := &App{}

	// Setup logger
	log := setupLogger()
	app.Log = log

	// Load configuration
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	applyLogLevel(log, cfg.Log.Level)
	log.Info("Configuration loaded successfully")

	// Initialize database pool
	provider, err := database.NewPostgresConnection(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}
	app.DB = provider
	app.Schema = database.NewSchemaInitializer(provider.DB(), log)

	// Verify connectivity, then create tables
	ctx := context.Background()
	app.DBConnected = provider.CheckConnectivity(ctx)
	if app.DBConnected {
		log.Info("Database connected successfully")
		// Failure is logged by the initializer and surfaces through /health.
		_ = app.Schema.EnsureSchema(ctx)
	}

	app.Server = initializeServer(cfg, log, provider, app.Schema)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
	return log
}

func applyLogLevel(log *logrus.Logger, level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("Invalid LOG_LEVEL %q, using info", level)
		return
	}
	log.SetLevel(parsed)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, provider *database.Provider, schema *database.SchemaInitializer) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository()

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorUsecase(provider.DB(), log, doctorRepo)
	healthUsecase := usecase.NewHealthUsecase(log, cfg.App.Name, provider, schema)

	// Initialize handlers
	systemHandler := handler.NewSystemHandler(healthUsecase)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	requestLoggerMiddleware := middleware.NewRequestLoggerMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(systemHandler, doctorHandler, corsMiddleware, requestLoggerMiddleware)
	httpRouter := router.Setup()

	// Create server
	return &http.Server{
		Addr:    net.JoinHostPort("0.0.0.0", cfg.App.Port),
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("%s running on port %s", app.Config.App.Name, app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		app.Log.Infof("Database: %s", databaseStatus(app.DBConnected))
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

func databaseStatus(connected bool) string {
	if connected {
		return "Connected"
	}
	return "Disconnected"
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close releases the database pool.
func (app *App) Close() {
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Log.Warnf("Failed to close database pool: %v", err)
		}
	}
}
