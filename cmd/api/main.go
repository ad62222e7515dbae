package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/Jayantx07/Education-Point/api/swagger"
	"github.com/Jayantx07/Education-Point/internal/handler"
	"github.com/Jayantx07/Education-Point/internal/repository"
	"github.com/Jayantx07/Education-Point/internal/router"
	"github.com/Jayantx07/Education-Point/internal/service"
	"github.com/Jayantx07/Education-Point/migrations"
	"github.com/Jayantx07/Education-Point/pkg/cache"
	"github.com/Jayantx07/Education-Point/pkg/config"
	"github.com/Jayantx07/Education-Point/pkg/database"
	"github.com/Jayantx07/Education-Point/pkg/export"
	"github.com/Jayantx07/Education-Point/pkg/logger"
	"github.com/Jayantx07/Education-Point/pkg/mailer"
	"github.com/Jayantx07/Education-Point/pkg/middleware/ratelimit"
	"github.com/Jayantx07/Education-Point/pkg/storage"
	"github.com/Jayantx07/Education-Point/pkg/validation"
)

// @title Education Point API
// @version 1.0.0
// @description Course catalog, testimonials, contact inbox and accounts for the Education Point coaching center.
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	started := time.Now()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	db, err := database.NewPostgres(ctx, cfg.Database, logr)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(db.DB, logr); err != nil {
			logr.Fatal("migration failed", zap.Error(err))
		}
	}

	metrics := service.NewMetricsService()
	cacheSvc := service.NewCacheService(nil, metrics, cfg.Cache.TTL, logr, false)
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, running without cache", zap.Error(err))
		} else {
			cacheRepo := repository.NewCacheRepository(client)
			defer cacheRepo.Close() //nolint:errcheck
			cacheSvc = service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, true)
		}
	}

	notifyCfg := service.NotificationConfig{
		Recipient:  cfg.Mail.AdminRecipient,
		Workers:    cfg.Notify.Workers,
		MaxRetries: cfg.Notify.MaxRetries,
		RetryDelay: cfg.Notify.RetryDelay,
	}
	notifier := service.NewNotificationService(nil, metrics, notifyCfg, logr)
	if cfg.Mail.Enabled() {
		sender := mailer.NewMailgun(cfg.Mail.Domain, cfg.Mail.APIKey, cfg.Mail.Sender)
		notifier = service.NewNotificationService(sender, metrics, notifyCfg, logr)
	} else {
		logr.Info("mail not configured, contact notifications disabled")
	}
	notifier.Start(ctx)
	defer notifier.Stop()

	files, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		logr.Fatal("failed to prepare uploads directory", zap.Error(err))
	}

	validate := validation.New()

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	contactRepo := repository.NewContactRepository(db)
	overviewRepo := repository.NewOverviewRepository(db)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userSvc := service.NewUserService(userRepo, authSvc, validate, logr)
	courseSvc := service.NewCourseService(courseRepo, cacheSvc, validate, logr)
	testimonialSvc := service.NewTestimonialService(testimonialRepo, cacheSvc, validate, logr)
	exportSvc := service.NewExportService(export.NewCSVExporter(), export.NewPDFExporter())
	contactSvc := service.NewContactService(contactRepo, notifier, exportSvc, validate, logr)
	uploadSvc := service.NewUploadService(files, metrics, service.UploadConfig{
		MaxBytes:     cfg.Uploads.MaxFileSizeBytes,
		AllowedMIMEs: cfg.Uploads.AllowedMIMEs,
		PublicPrefix: "/uploads",
	}, logr)

	handlers := router.Handlers{
		Course:      handler.NewCourseHandler(courseSvc),
		Testimonial: handler.NewTestimonialHandler(testimonialSvc),
		Contact:     handler.NewContactHandler(contactSvc),
		Auth:        handler.NewAuthHandler(authSvc),
		User:        handler.NewUserHandler(userSvc),
		Overview:    handler.NewOverviewHandler(service.NewOverviewService(overviewRepo)),
		Upload:      handler.NewUploadHandler(uploadSvc, cfg.Uploads.MaxFileSizeBytes),
		Health:      handler.NewHealthHandler(service.NewHealthService(db, started)),
	}
	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = metrics
		handlers.Metrics = handler.NewMetricsHandler(metrics)
	}

	r := router.New(router.Deps{
		Handlers:       handlers,
		Authenticator:  authSvc,
		Limiter:        ratelimit.New(cfg.Limits.RPS, cfg.Limits.Burst),
		MetricsService: metricsSvc,
		Logger:         logr,
		APIPrefix:      cfg.APIPrefix,
		UploadsDir:     files.Dir(),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		TrustedProxies: cfg.HTTP.TrustedProxies,
		EnableDocs:     cfg.Env != config.EnvProduction,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logr.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("server forced to shutdown", zap.Error(err))
	}
	logr.Info("server exited")
}
