package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"warehouseapi/docs"
	"warehouseapi/internal/awscfg"
	"warehouseapi/internal/bedrock"
	"warehouseapi/internal/cache"
	"warehouseapi/internal/config"
	"warehouseapi/internal/database"
	"warehouseapi/internal/database/migration"
	handlers "warehouseapi/internal/http/handler"
	"warehouseapi/internal/http/middleware"
	"warehouseapi/internal/kvs"
	"warehouseapi/internal/logging"
	"warehouseapi/internal/otel"
	"warehouseapi/internal/repository/postgres"
	"warehouseapi/internal/service"
	"warehouseapi/internal/storage"
)

// @title Warehouse API
// @version 1.0.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	loc := logging.LoadLocation(cfg.Timezone)
	log := logging.New(os.Stdout, cfg.LogLevel, loc)

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Error().Err(err).Msg("tracing shutdown failed")
		}
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			log.Fatal().Err(err).Msg("database migration failed")
		}
	}

	transcripts, err := newTranscriptStorage(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.TranscriptStorage).Msg("failed to initialize transcript storage")
	}

	awsCfg, err := awscfg.Load(ctx, cfg.AWS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load AWS configuration")
	}

	sessionCache, closeCache := newSessionCache(ctx, cfg.Redis, log)
	defer closeCache()

	// Initialize repositories and services
	warehouseRepo := postgres.NewWarehousePostgres(db)
	cameraRepo := postgres.NewCameraPostgres(db)
	chunkRepo := postgres.NewChunkPostgres(db)
	activityRepo := postgres.NewActivityPostgres(db)

	svcs := handlers.Services{
		Warehouses: service.NewWarehouseService(warehouseRepo),
		Streams: service.NewCameraStreamService(
			cameraRepo,
			kvs.New(awsCfg),
			sessionCache,
			time.Duration(cfg.AWS.HLSExpiresSec)*time.Second,
			log,
		),
		Chunks:   service.NewChunkService(chunkRepo),
		Activity: service.NewActivityService(activityRepo),
		Chat: service.NewChatService(
			chunkRepo,
			transcripts,
			bedrock.New(awsCfg),
			service.ChatOptions{DefaultModelID: cfg.AWS.BedrockDefaultModel, Location: loc},
			log,
		),
	}

	if p, ok := sessionCache.(handlers.Pinger); ok {
		svcs.Cache = p
	}

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}

	app := fiber.New(fiber.Config{
		AppName:      "Warehouse API",
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(middleware.CORS(cfg.CORSAllowOrigins))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, db, svcs)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("transcript_storage", cfg.TranscriptStorage).Msg("starting server")

	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

func newTranscriptStorage(cfg *config.AppConfig) (storage.Storage, error) {
	if cfg.TranscriptStorage == "minio" {
		return storage.NewMinIO(cfg.MinIO)
	}
	return storage.NewAzureBlob(cfg.Azure)
}

// newSessionCache connects to Redis when configured. Without it HLS sessions are
// requested from Kinesis on every call.
func newSessionCache(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (cache.Cache, func()) {
	if cfg.Addr == "" {
		return cache.NewNoOpCache(), func() {}
	}
	rc, err := cache.NewRedisCache(ctx, cfg, log)
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Addr).Msg("redis unavailable, HLS session cache disabled")
		return cache.NewNoOpCache(), func() {}
	}
	return rc, func() { _ = rc.Close() }
}
