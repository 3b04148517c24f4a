package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vpnAdvisor/app/echo-server/router"
	"vpnAdvisor/business/catalog"
	"vpnAdvisor/business/recommender"
	"vpnAdvisor/internal/middleware"
	"vpnAdvisor/internal/repository/artifact"
	"vpnAdvisor/internal/repository/csvfile"
	psqlRepo "vpnAdvisor/internal/repository/postgres"
	redisRepo "vpnAdvisor/internal/repository/redis"
	"vpnAdvisor/internal/rest"
	"vpnAdvisor/pkg/config"
	psqlDB "vpnAdvisor/pkg/database/postgres"
	redisDB "vpnAdvisor/pkg/database/redis"
	"vpnAdvisor/pkg/logger"
	"vpnAdvisor/pkg/metrics"
	"vpnAdvisor/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting VPN Advisor", "version", cfg.App.Version)

	utils.InitJWT(cfg.Auth.JWTSecret)
	metrics.Init()

	db, err := psqlDB.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisDB.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer func() {
		_ = redisDB.CloseRedisClient(redisClient)
	}()

	// Model artifacts must load before any request is served.
	artifactStore := artifact.NewStore(cfg.Artifacts.ModelPath, cfg.Artifacts.CodecsPath)
	if err := artifactStore.Load(); err != nil {
		logger.Fatal("Failed to load model artifacts", "error", err)
	}

	logger.Info("Model artifacts loaded",
		"model", cfg.Artifacts.ModelPath,
		"codecs", cfg.Artifacts.CodecsPath,
	)

	// Init repo
	vpnRepo := psqlRepo.NewVPNRepository(db)
	cfgRepo := psqlRepo.NewScoringConfigRepository(db)
	csvRepo := csvfile.NewCatalogRepository(cfg.Catalog.CSVPath)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)

	var catalogRepo recommender.CatalogRepository
	if cfg.Catalog.Source == "csv" {
		catalogRepo = csvRepo
	} else {
		catalogRepo = vpnRepo
	}

	var invalidator rest.CacheInvalidator
	if cfg.Catalog.CacheTTL > 0 {
		cache := redisRepo.NewCatalogCache(redisClient, catalogRepo, time.Duration(cfg.Catalog.CacheTTL)*time.Second)
		catalogRepo = cache
		invalidator = cache
	}

	// Init service
	recService := recommender.NewService(
		catalogRepo,
		artifactStore,
		recommender.NoopEligibilityChecker{},
		cfgRepo,
		recommender.DefaultConfig(),
	)
	catalogService := catalog.NewService(catalogRepo, vpnRepo)

	// Init handler
	recommendHandler := rest.NewRecommendHandler(recService)
	catalogHandler := rest.NewCatalogHandler(catalogService)
	authHandler := rest.NewAuthHandler(cfg.Auth, tokenRepo)
	adminHandler := rest.NewAdminHandler(cfgRepo, catalogService, csvRepo, artifactStore, invalidator)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	authRequired := middleware.AuthMiddleware(tokenRepo)
	api := e.Group("/api/v1")
	router.SetRecommendRoutes(api, recommendHandler)
	router.SetCatalogRoutes(api, catalogHandler)
	router.SetAuthRoutes(api, authHandler)
	router.SetAdminRoutes(api, adminHandler, authRequired)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
