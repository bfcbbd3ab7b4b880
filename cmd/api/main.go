package main

import (
	"context"
	"fmt"
	stdlog "log"
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
	"go.uber.org/zap"

	"portfolio/docs"
	"portfolio/internal/auth"
	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/content"
	"portfolio/internal/database"
	"portfolio/internal/database/migration"
	handlers "portfolio/internal/http/handler"
	"portfolio/internal/http/middleware"
	"portfolio/internal/logger"
	"portfolio/internal/mailer"
	"portfolio/internal/model"
	tracing "portfolio/internal/otel"
	"portfolio/internal/repository"
	"portfolio/internal/repository/memory"
	"portfolio/internal/repository/postgres"
	"portfolio/internal/service"
	"portfolio/internal/storage"
)

const serviceName = "portfolio"

// maxBodyBytes bounds multipart submissions, image included.
const maxBodyBytes = 10 << 20

// @title Portfolio API
// @version 1.0
// @description Public content API, visitor forms and the owner's admin endpoints.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		stdlog.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, serviceName, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to open content store", zap.Error(err))
	}
	defer closeStore()

	pageCache, rateCounter, closeCache := openCache(cfg, log)
	defer closeCache()

	// Metrics
	reg := prometheus.DefaultRegisterer
	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal("failed to register http metrics", zap.Error(err))
	}
	if err := content.RegisterMetrics(reg); err != nil {
		log.Fatal("failed to register content metrics", zap.Error(err))
	}
	if err := service.RegisterMetrics(reg); err != nil {
		log.Fatal("failed to register service metrics", zap.Error(err))
	}

	// Content repositories and services
	set := content.NewSet(content.Deps{
		Store:       store,
		Invalidator: pageCache,
		Logger:      log,
		SeedOnRead:  cfg.SeedOnRead,
	})
	images := openImageHost(cfg, log)
	renderer, err := handlers.NewRenderer(pageCache, log)
	if err != nil {
		log.Fatal("failed to parse page templates", zap.Error(err))
	}

	deps := handlers.Deps{
		Store:    store,
		Renderer: renderer,
		Pages:    service.NewPages(set),
		Visitor:  service.NewVisitorReviews(set.Reviews, images, service.ImageFolder(cfg.MinIO.ImageFolder, model.KindReview), log),
		Contact:  service.NewContact(openSender(cfg, log), cfg.Resend.From, cfg.Resend.To, log),
	}
	if authSvc, err := auth.NewService(cfg.Admin.JWTSecret, cfg.Admin.PasswordHash, time.Duration(cfg.Admin.TokenTTLMinute)*time.Minute); err != nil {
		log.Warn("admin routes disabled", zap.Error(err))
	} else {
		deps.Auth = authSvc
		deps.Admin = service.NewAdmin(set, images, cfg.MinIO.ImageFolder, log)
	}
	if rateCounter != nil {
		window := time.Duration(cfg.ReviewLimit.WindowSec) * time.Second
		deps.ReviewLimit = middleware.RateLimit(rateCounter, "reviews", cfg.ReviewLimit.Max, window, log)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    maxBodyBytes,
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(prom.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, deps)

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
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	log.Info("server starting", zap.String("addr", addr), zap.String("store_driver", cfg.StoreDriver))
	if err := app.Listen(addr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

// openStore selects the document store named by STORE_DRIVER.
func openStore(ctx context.Context, cfg *config.AppConfig, log *zap.Logger) (repository.DocumentStore, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		log.Warn("using in-memory content store; content is lost on restart")
		return memory.NewDocumentMemory(), func() {}, nil
	case config.StoreDriverPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database, log)
		if err != nil {
			return nil, nil, err
		}
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return postgres.NewDocumentPostgres(db), func() { _ = db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

// openCache connects Redis when configured. Without it pages are rendered on every
// request and visitor reviews are not rate limited.
func openCache(cfg *config.AppConfig, log *zap.Logger) (cache.PageCache, middleware.RateCounter, func()) {
	if cfg.Redis.Addr == "" {
		log.Info("redis not configured; page cache and review rate limit disabled")
		return cache.Noop{}, nil, func() {}
	}
	cli, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable; page cache and review rate limit disabled", zap.Error(err))
		return cache.Noop{}, nil, func() {}
	}
	ttl := time.Duration(cfg.Redis.PageCacheTTLSec) * time.Second
	return cache.NewRedisPageCache(cli, ttl), cli, func() { _ = cli.Close() }
}

func openImageHost(cfg *config.AppConfig, log *zap.Logger) storage.ImageHost {
	if cfg.MinIO.Endpoint == "" {
		log.Warn("object storage not configured; image uploads will be rejected")
		return storage.Unconfigured{}
	}
	host, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatal("failed to initialize object storage", zap.Error(err))
	}
	return host
}

func openSender(cfg *config.AppConfig, log *zap.Logger) mailer.Sender {
	sender, err := mailer.NewResend(cfg.Resend.APIKey, "")
	if err != nil {
		log.Warn("email not configured; contact form disabled", zap.Error(err))
		return mailer.Unconfigured{}
	}
	return sender
}
