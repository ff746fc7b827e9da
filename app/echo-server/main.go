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

	"brewjournal/app/echo-server/router"
	"brewjournal/business/brewsession"
	"brewjournal/business/equipment"
	"brewjournal/business/espresso"
	"brewjournal/business/lookup"
	"brewjournal/business/product"
	"brewjournal/business/recommend"
	"brewjournal/business/roastbatch"
	"brewjournal/business/stats"
	"brewjournal/internal/middleware"
	psqlRepo "brewjournal/internal/repository/postgres"
	redisRepo "brewjournal/internal/repository/redis"
	"brewjournal/internal/rest"
	"brewjournal/pkg/config"
	"brewjournal/pkg/database"
	redisdb "brewjournal/pkg/database/redis"
	"brewjournal/pkg/logger"
	"brewjournal/pkg/metrics"

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
	logger.Info("Starting BrewJournal", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Recommendation cache is optional: without Redis the engine just
	// derives from Postgres on every request.
	var recoCache recommend.Cache
	if cfg.Redis.Enabled {
		redisClient, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, recommendation cache disabled", "error", err)
		} else {
			recoCache = redisRepo.NewRecommendationCache(redisClient)
			defer func() {
				if err := redisdb.CloseRedisClient(redisClient); err != nil {
					logger.Error("Failed to close Redis client", "error", err)
				}
			}()
		}
	}

	metrics.Init()

	// Init repo
	productRepo := psqlRepo.NewProductRepository(db)
	batchRepo := psqlRepo.NewRoastBatchRepository(db)
	sessionRepo := psqlRepo.NewBrewSessionRepository(db)
	shotRepo := psqlRepo.NewEspressoShotRepository(db)
	equipmentRepo := psqlRepo.NewEquipmentRepository(db)
	lookupRepo := psqlRepo.NewLookupRepository(db)
	statsRepo := psqlRepo.NewStatsRepository(db)
	eventRepo := psqlRepo.NewRecommendationEventRepository(db)

	// Init service
	recommendService := recommend.NewRecommendService(sessionRepo, eventRepo, recoCache)
	productService := product.NewProductService(productRepo)
	batchService := roastbatch.NewBatchService(batchRepo, productRepo)
	sessionService := brewsession.NewSessionService(sessionRepo, productRepo, recommendService)
	shotService := espresso.NewShotService(shotRepo, productRepo)
	equipmentService := equipment.NewEquipmentService(equipmentRepo)
	lookupService := lookup.NewLookupService(lookupRepo)
	statsService := stats.NewStatsService(statsRepo)

	// Init handler
	productHandler := rest.NewProductHandler(productService)
	batchHandler := rest.NewRoastBatchHandler(batchService)
	sessionHandler := rest.NewBrewSessionHandler(sessionService)
	shotHandler := rest.NewEspressoShotHandler(shotService)
	equipmentHandler := rest.NewEquipmentHandler(equipmentService)
	lookupHandler := rest.NewLookupHandler(lookupService)
	statsHandler := rest.NewStatsHandler(statsService)
	recommendHandler := rest.NewRecommendHandler(recommendService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupProductRoutes(api, productHandler)
	router.SetupRoastBatchRoutes(api, batchHandler)
	router.SetupSessionRoutes(api, sessionHandler)
	router.SetupShotRoutes(api, shotHandler)
	router.SetupEquipmentRoutes(api, equipmentHandler)
	router.SetupLookupRoutes(api, lookupHandler)
	router.SetupStatsRoutes(api, statsHandler)
	router.SetRecommendationRoutes(api, recommendHandler)

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
