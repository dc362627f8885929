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

	"insureAdvisor/app/echo-server/router"
	"insureAdvisor/business/catalog"
	"insureAdvisor/business/chart"
	"insureAdvisor/business/dataset"
	"insureAdvisor/business/recommend"
	"insureAdvisor/domain"
	"insureAdvisor/internal/middleware"
	"insureAdvisor/internal/repository/artifact"
	"insureAdvisor/internal/repository/csvfile"
	psqlRepo "insureAdvisor/internal/repository/postgres"
	redisRepo "insureAdvisor/internal/repository/redis"
	"insureAdvisor/internal/rest"
	"insureAdvisor/pkg/config"
	"insureAdvisor/pkg/database"
	redisdb "insureAdvisor/pkg/database/redis"
	"insureAdvisor/pkg/logger"
	"insureAdvisor/pkg/metrics"
	"insureAdvisor/pkg/utils"

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
	logger.Info("Starting Insurance Recommender", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	// Load both tables once; after normalization they are shared
	// read-only across all requests.
	customers, products, eventRepo, err := loadTables(cfg)
	if err != nil {
		logger.Fatal("Failed to load data", "error", err)
	}

	if err := dataset.Normalize(customers, products); err != nil {
		logger.Fatal("Failed to normalize data", "error", err)
	}

	logger.Info("Data loaded", "customers", len(customers), "products", len(products))

	// Init services
	catalogService := catalog.NewService(customers, products)
	recommendService := recommend.NewService(catalogService, catalogService, eventRepo, recommend.DefaultConfig())
	chartService := chart.NewService(cfg.Chart.Normalize)

	var cache rest.ResultCache
	if cfg.Redis.Enabled {
		client, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to redis", "error", err)
		}
		defer redisdb.CloseRedisClient(client)

		cache = redisRepo.NewResultCache(client, time.Duration(cfg.Redis.CacheTTLSecs)*time.Second)
	}

	var artifactWriter rest.ArtifactWriter
	if cfg.Data.ArtifactFile != "" {
		artifactWriter = artifact.NewWriter(cfg.Data.ArtifactFile)
	}

	// Init handlers
	recommendHandler := rest.NewRecommendHandler(recommendService, chartService, catalogService, cache, artifactWriter)
	productHandler := rest.NewProductHandler(catalogService)
	customerHandler := rest.NewCustomerHandler(catalogService)
	authHandler := rest.NewAuthHandler(cfg.Auth.APIKeyHash)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	authRequired := middleware.AuthMiddleware()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupAuthRoutes(api, authHandler)
	router.SetupRecommendRoutes(api, recommendHandler, authRequired)
	router.SetupProductRoutes(api, productHandler, authRequired)
	router.SetupCustomerRoutes(api, customerHandler, authRequired)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

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

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

// loadTables reads the customer and product tables from the configured
// source. The audit event repository is only available with postgres.
func loadTables(cfg *config.Config) ([]domain.Customer, []domain.Product, recommend.EventRepository, error) {
	if cfg.Data.Source == "postgres" {
		db, err := database.InitPostgres(cfg)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect to database: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		customers, err := psqlRepo.NewCustomerRepository(db).FindAll(ctx)
		if err != nil {
			return nil, nil, nil, err
		}
		products, err := psqlRepo.NewProductRepository(db).FindAll(ctx)
		if err != nil {
			return nil, nil, nil, err
		}

		return customers, products, psqlRepo.NewEventRepository(db), nil
	}

	loader := csvfile.NewLoader(cfg.Data.CustomersFile, cfg.Data.ProductsFile)

	customers, err := loader.LoadCustomers()
	if err != nil {
		return nil, nil, nil, err
	}
	products, err := loader.LoadProducts()
	if err != nil {
		return nil, nil, nil, err
	}

	return customers, products, nil, nil
}
