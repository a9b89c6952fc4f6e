package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/emp-portal-api/api/swagger"
	"github.com/noah-isme/emp-portal-api/internal/handler"
	"github.com/noah-isme/emp-portal-api/internal/middleware"
	"github.com/noah-isme/emp-portal-api/internal/recordstore"
	"github.com/noah-isme/emp-portal-api/internal/repository"
	"github.com/noah-isme/emp-portal-api/internal/service"
	"github.com/noah-isme/emp-portal-api/pkg/cache"
	"github.com/noah-isme/emp-portal-api/pkg/config"
	"github.com/noah-isme/emp-portal-api/pkg/database"
	"github.com/noah-isme/emp-portal-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/emp-portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/emp-portal-api/pkg/middleware/requestid"
)

// @title Employee Portal API
// @version 0.1.0
// @description Faceted employee directory with bulk recycle-bin operations
// @BasePath /api/v1
// @schemes http

func main() {
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	var cacheSvc *service.CacheService
	if cfg.Counters.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, counter caching disabled", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			defer cacheRepo.Close() //nolint:errcheck
			cacheSvc = service.NewCacheService(cacheRepo, metrics, cfg.Counters.CacheTTL, logr, true)
		}
	}

	var auditSvc *service.IntentAuditService
	if cfg.Audit.Enabled {
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			logr.Sugar().Warnw("postgres unavailable, intent audit trail disabled", "error", err)
		} else {
			defer db.Close() //nolint:errcheck
			auditRepo := repository.NewIntentAuditRepository(db)
			auditSvc = service.NewIntentAuditService(auditRepo, cfg.Audit.Workers, cfg.Audit.BufferSize, cfg.Audit.MaxRetries, logr)
			auditSvc.Start(ctx)
			defer auditSvc.Stop()
		}
	}

	store := recordstore.NewClient(cfg.RecordStore, logr)
	counters := service.NewCounterService(store, cacheSvc, cfg.Counters.CacheTTL, logr)

	directorySvc := service.NewDirectoryService(store, counters, auditSvc,
		cfg.Sessions.DirectoryPageSize, cfg.Sessions.TTL, metrics, nil, logr)
	recycleSvc := service.NewRecycleService(store, counters, auditSvc,
		cfg.Sessions.DirectoryPageSize, cfg.Sessions.TTL, metrics, nil, logr)
	intercomSvc := service.NewIntercomService(store, auditSvc,
		cfg.Sessions.IntercomPageSize, cfg.Sessions.TTL, metrics, nil, logr)

	directorySvc.StartSweeper(ctx, cfg.Sessions.SweepInterval)
	recycleSvc.StartSweeper(ctx, cfg.Sessions.SweepInterval)
	intercomSvc.StartSweeper(ctx, cfg.Sessions.SweepInterval)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	handler.NewDirectoryHandler(directorySvc).Register(api.Group("/directory"))
	handler.NewRecycleHandler(recycleSvc).Register(api.Group("/recycle"))
	handler.NewViewHandler(intercomSvc).RegisterSessionRoutes(api.Group("/intercom"))
	handler.NewCounterHandler(counters).Register(api)
	if auditSvc != nil {
		handler.NewAuditHandler(auditSvc).Register(api)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
