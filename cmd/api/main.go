// cmd/api/main.go
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

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/sellerhub/opsdash-be/internal/adapters/db"
	redis_a "github.com/sellerhub/opsdash-be/internal/adapters/redis_adapter"
	"github.com/sellerhub/opsdash-be/internal/adapters/storage"
	"github.com/sellerhub/opsdash-be/internal/adapters/upstream"
	"github.com/sellerhub/opsdash-be/internal/core/services"
	"github.com/sellerhub/opsdash-be/internal/handlers"
	"github.com/sellerhub/opsdash-be/internal/handlers/middleware"
	"github.com/sellerhub/opsdash-be/internal/pkg/auth"
	"github.com/sellerhub/opsdash-be/internal/pkg/config"
	"github.com/sellerhub/opsdash-be/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting seller operations dashboard API",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	if cfg.App.Environment != "production" {
		if err := runMigrations(ctx, cfg, slogger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
		}
	}

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database       *db.Database
	redisClient    *redis.Client
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector

	sessionAuth func(http.Handler) http.Handler

	authHandler      *handlers.AuthHandler
	lookHandler      *handlers.LookHandler
	catalogHandler   *handlers.CatalogHandler
	viewStateHandler *handlers.ViewStateHandler
	supplierHandler  *handlers.SupplierHandler
	reportHandler    *handlers.ReportHandler
	healthHandler    *handlers.HealthHandler
}

func (d *dependencies) cleanup() {
	if d.database != nil {
		d.database.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	logger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:            fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		PoolTimeout:     cfg.Redis.PoolTimeout,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient

	cache := redis_a.NewCache(redisClient, cfg.Redis.TTL, logger)
	invalidator := redis_a.NewInvalidator(cache, logger)
	sessionStore := redis_a.NewSessionStore(redisClient, cfg.Session.TTL, logger)
	draftStore := redis_a.NewDraftStore(redisClient, cfg.Session.DraftTTL, logger)
	viewStateStore := redis_a.NewViewStateStore(redisClient, cfg.Session.ViewStateTTL, logger)

	logger.Info("initializing Asynq client")

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}
	deps.asynqClient = asynq.NewClient(asynqRedisOpt)
	deps.asynqInspector = asynq.NewInspector(asynqRedisOpt)

	s3Storage, err := storage.NewS3Storage(ctx, &storage.S3Config{
		Region:          cfg.AWS.Region,
		Bucket:          cfg.AWS.S3Bucket,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Endpoint:        cfg.AWS.S3Endpoint,
		UsePathStyle:    cfg.AWS.UsePathStyle,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3 storage: %w", err)
	}

	upstreamClient := upstream.NewClient(upstream.Config{
		BaseURL:        cfg.Upstream.BaseURL,
		Timeout:        cfg.Upstream.Timeout,
		ServiceToken:   cfg.Upstream.ServiceToken,
		CommissionRate: cfg.Upstream.CommissionRate,
	}, logger)

	tokenService := auth.NewTokenService(cfg.Security.JWTSecret, cfg.Security.JWTExpiration, cfg.App.Name)

	// Repositories
	lookRepo := db.NewLookRepository(database, logger)
	documentRepo := db.NewDocumentRepository(database, logger)
	reportRepo := db.NewReportRepository(database, logger)

	// Services
	sessionService := services.NewSessionService(upstreamClient, sessionStore, tokenService, cfg.Session.TTL, logger)
	lookService := services.NewLookService(lookRepo, cache, invalidator, logger)
	draftService := services.NewDraftService(draftStore, lookRepo, invalidator, logger)
	catalogService := services.NewCatalogService(upstreamClient, sessionStore, cache, logger)

	// Middleware
	deps.sessionAuth = middleware.SessionAuth(tokenService, sessionStore, cfg.Session.CookieName, logger)

	// Handlers
	deps.authHandler = handlers.NewAuthHandler(sessionService, cfg.Session.CookieName, cfg.Session.CookieSecure, logger)
	deps.lookHandler = handlers.NewLookHandler(lookService, draftService, s3Storage, logger)
	deps.catalogHandler = handlers.NewCatalogHandler(catalogService, logger)
	deps.viewStateHandler = handlers.NewViewStateHandler(viewStateStore, logger)
	deps.supplierHandler = handlers.NewSupplierHandler(documentRepo, s3Storage, deps.asynqClient, cfg.FileProcessing.PDFMaxSizeMB, logger)
	deps.reportHandler = handlers.NewReportHandler(reportRepo, s3Storage, deps.asynqClient, logger)
	deps.healthHandler = handlers.NewHealthHandler(database, redisClient, deps.asynqInspector, cfg, logger)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()

	var handler http.Handler = mux

	// Apply middleware in reverse order (innermost first)
	if cfg.App.Environment != "test" {
		handler = middleware.RequestID(handler)
		handler = middleware.Logger(logger)(handler)
		handler = middleware.Recovery(logger)(handler)
	}

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}

	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}

	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}

	registerRoutes(mux, deps, cfg)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

func registerRoutes(mux *http.ServeMux, deps *dependencies, cfg *config.Config) {
	apiV1 := "/api/v1"

	// authed wraps a handler with session authentication; admin additionally
	// requires the admin role.
	authed := func(h http.HandlerFunc) http.Handler {
		return deps.sessionAuth(h)
	}
	admin := func(h http.HandlerFunc) http.Handler {
		return deps.sessionAuth(middleware.RequireAdmin(h))
	}

	// Health and readiness endpoints
	if cfg.Server.EnableHealthCheck {
		mux.HandleFunc("GET /health", deps.healthHandler.Health)
		mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
		mux.HandleFunc("GET "+apiV1+"/health", deps.healthHandler.Health)
	}

	// Auth endpoints
	mux.HandleFunc("POST "+apiV1+"/auth/login", deps.authHandler.Login)
	mux.Handle("POST "+apiV1+"/auth/logout", authed(deps.authHandler.Logout))
	mux.Handle("GET "+apiV1+"/auth/me", authed(deps.authHandler.GetProfile))
	mux.Handle("PUT "+apiV1+"/auth/password", authed(deps.authHandler.UpdatePassword))

	// Look-builder wizard endpoints. These must be registered before the
	// {id} routes so "draft" is not parsed as a look id.
	mux.Handle("POST "+apiV1+"/looks/draft", authed(deps.lookHandler.StartAddDraft))
	mux.Handle("GET "+apiV1+"/looks/draft", authed(deps.lookHandler.ResumeDraft))
	mux.Handle("DELETE "+apiV1+"/looks/draft", authed(deps.lookHandler.CancelDraft))
	mux.Handle("PUT "+apiV1+"/looks/draft/name", authed(deps.lookHandler.SetDraftName))
	mux.Handle("POST "+apiV1+"/looks/draft/image-upload", authed(deps.lookHandler.RequestDraftImageUpload))
	mux.Handle("PUT "+apiV1+"/looks/draft/image", authed(deps.lookHandler.AttachDraftImage))
	mux.Handle("PUT "+apiV1+"/looks/draft/products", authed(deps.lookHandler.SelectDraftProducts))
	mux.Handle("PUT "+apiV1+"/looks/draft/markers", authed(deps.lookHandler.PlaceDraftMarkers))
	mux.Handle("POST "+apiV1+"/looks/draft/submit", authed(deps.lookHandler.SubmitDraft))

	// Look endpoints
	mux.Handle("GET "+apiV1+"/looks", authed(deps.lookHandler.ListLooks))
	mux.Handle("GET "+apiV1+"/looks/{id}", authed(deps.lookHandler.GetLook))
	mux.Handle("PUT "+apiV1+"/looks/{id}", authed(deps.lookHandler.UpdateLook))
	mux.Handle("DELETE "+apiV1+"/looks/{id}", authed(deps.lookHandler.DeleteLook))
	mux.Handle("POST "+apiV1+"/looks/{id}/publish", authed(deps.lookHandler.PublishLook))
	mux.Handle("POST "+apiV1+"/looks/{id}/draft", authed(deps.lookHandler.StartEditDraft))

	// Catalog proxy endpoints
	mux.Handle("GET "+apiV1+"/catalog/{resource}", authed(deps.catalogHandler.List))

	// View state endpoints
	mux.Handle("PUT "+apiV1+"/viewstate/{pageKey}", authed(deps.viewStateHandler.Save))
	mux.Handle("GET "+apiV1+"/viewstate/{pageKey}", authed(deps.viewStateHandler.Load))
	mux.Handle("DELETE "+apiV1+"/viewstate/{pageKey}", authed(deps.viewStateHandler.Clear))

	// Supplier onboarding endpoints (admin only)
	mux.Handle("POST "+apiV1+"/suppliers/{supplierID}/documents", admin(deps.supplierHandler.UploadDocument))
	mux.Handle("GET "+apiV1+"/suppliers/{supplierID}/documents", admin(deps.supplierHandler.ListDocuments))
	mux.Handle("GET "+apiV1+"/suppliers/documents/{id}", admin(deps.supplierHandler.GetDocument))
	mux.Handle("GET "+apiV1+"/suppliers/documents/{id}/download", admin(deps.supplierHandler.DownloadDocument))

	// Payout report endpoints
	mux.Handle("POST "+apiV1+"/reports", authed(deps.reportHandler.RequestReport))
	mux.Handle("GET "+apiV1+"/reports", authed(deps.reportHandler.ListReports))
	mux.Handle("GET "+apiV1+"/reports/{id}", authed(deps.reportHandler.GetReport))
	mux.Handle("GET "+apiV1+"/reports/{id}/download", authed(deps.reportHandler.DownloadReport))

	// pprof endpoints (development only)
	if cfg.Server.EnablePprof && cfg.IsDevelopment() {
		mux.HandleFunc("GET /debug/pprof/", http.HandlerFunc(http.DefaultServeMux.ServeHTTP))
	}
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	migrationConfig := &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}

	return db.RunMigrationsWithRetry(ctx, migrationConfig, logger, 3)
}
