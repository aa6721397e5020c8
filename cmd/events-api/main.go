package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/eventure/events-api/api/swagger"
	"github.com/eventure/events-api/internal/handler"
	"github.com/eventure/events-api/internal/middleware"
	"github.com/eventure/events-api/internal/repository"
	"github.com/eventure/events-api/internal/service"
	"github.com/eventure/events-api/internal/validation"
	"github.com/eventure/events-api/pkg/cache"
	"github.com/eventure/events-api/pkg/config"
	"github.com/eventure/events-api/pkg/database"
	"github.com/eventure/events-api/pkg/logger"
	corsmiddleware "github.com/eventure/events-api/pkg/middleware/cors"
	reqidmiddleware "github.com/eventure/events-api/pkg/middleware/requestid"
	"github.com/eventure/events-api/pkg/storage"
)

// @title Eventure Events API
// @version 1.0.0
// @description Public event gallery, submissions and image uploads
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	var cacheRepo *repository.CacheRepository
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to redis", "error", err)
		}
		defer redisClient.Close() //nolint:errcheck
		cacheRepo = repository.NewCacheRepository(redisClient, logr)
	}

	store, err := storage.NewLocalStorage(cfg.Storage.Dir, cfg.Storage.PublicBaseURL)
	if err != nil {
		logr.Sugar().Fatalw("failed to init image storage", "error", err)
	}

	metrics := service.NewMetricsService()

	catalogSvc := service.NewCatalogService(nil, metrics, logr, cfg.Catalog.CacheTTL)
	if cacheRepo != nil {
		catalogSvc = service.NewCatalogService(cacheRepo, metrics, logr, cfg.Catalog.CacheTTL)
	}
	submissionSvc := service.NewSubmissionService(
		repository.NewSubmissionRepository(db),
		validation.NewSubmissionValidator(),
		metrics,
		logr,
	)
	uploadSvc := service.NewUploadService(
		store,
		validation.NewImageValidator(cfg.Storage.MaxUploadSize, cfg.Storage.AllowedMIMEs),
		metrics,
		logr,
	)

	eventHandler := handler.NewEventHandler(catalogSvc)
	submissionHandler := handler.NewSubmissionHandler(submissionSvc)
	uploadHandler := handler.NewUploadHandler(uploadSvc)
	healthHandler := handler.NewHealthHandler(db, metrics)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metrics))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	// Uploads exceed gin's default multipart memory; size enforcement
	// happens in validation, not here.
	r.MaxMultipartMemory = cfg.Storage.MaxUploadSize

	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", healthHandler.Prometheus)
	r.Static("/uploads", store.Dir())

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/events", eventHandler.List)
		api.GET("/events/recent", submissionHandler.Recent)
		api.GET("/faqs", eventHandler.FAQs)
		api.POST("/events/submit", submissionHandler.Submit)
		api.POST("/events/upload-image", uploadHandler.Upload)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
