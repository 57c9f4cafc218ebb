package main

import (
	"context"
	"creditAdvisor/app/echo-server/metrics"
	"creditAdvisor/app/echo-server/router"
	"creditAdvisor/business/credit"
	"creditAdvisor/business/offer"
	"creditAdvisor/business/prediction"
	"creditAdvisor/internal/middleware"
	"creditAdvisor/internal/repository/jsonfile"
	psqlRepo "creditAdvisor/internal/repository/postgres"
	redisRepo "creditAdvisor/internal/repository/redis"
	"creditAdvisor/internal/rest"
	"creditAdvisor/pkg/config"
	"creditAdvisor/pkg/database"
	redisdb "creditAdvisor/pkg/database/redis"
	"creditAdvisor/pkg/logger"
	pkgmetrics "creditAdvisor/pkg/metrics"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type sources struct {
	cards    credit.CardRepository
	offers   credit.OfferRepository
	training credit.TrainingDataRepository
	scoring  prediction.ConfigRepository
	store    credit.TrainingProfileRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Credit Advisor", "version", cfg.App.Version, "catalog_source", cfg.Catalog.Source)

	pkgmetrics.Init()

	ctx := context.Background()

	var db *gorm.DB
	if cfg.UsesPostgres() {
		db, err = database.InitPostgres(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", "error", err)
		}
		defer database.ClosePostgres(db)
		logger.Info("Database connected successfully")
	}

	src, err := buildSources(cfg, db)
	if err != nil {
		logger.Fatal("Failed to open catalog", "error", err)
	}

	catalog, err := credit.LoadCatalog(ctx, src.cards, src.offers)
	if err != nil {
		logger.Fatal("Failed to load catalog", "error", err)
	}
	logger.Info("Catalog loaded", "cards", len(catalog.Cards), "offers", len(catalog.Offers))

	scoringCfg, err := prediction.LoadConfig(ctx, src.scoring, cfg.Scoring.FeatureSet)
	if err != nil {
		logger.Fatal("Failed to load scoring config", "error", err)
	}

	engine, err := prediction.NewEngine(scoringCfg)
	if err != nil {
		logger.Fatal("Failed to build prediction engine", "error", err)
	}

	examples, err := src.training.FindAll(ctx)
	if err != nil {
		logger.Fatal("Failed to load training data", "error", err)
	}
	stats, err := engine.Retrain(examples)
	if err != nil {
		logger.Fatal("Failed to train model", "error", err)
	}
	logger.Info("Model trained",
		"profiles", stats.Count,
		"feature_set", stats.FeatureSet,
		"generation", stats.Generation,
	)

	tierPolicy, err := offer.ParseTierPolicy(cfg.Scoring.OfferTierPolicy)
	if err != nil {
		logger.Fatal("Invalid offer tier policy", "error", err)
	}

	opts := credit.Options{
		TrainingRepo:   src.store,
		TierPolicy:     tierPolicy,
		RecommendLimit: cfg.Scoring.RecommendLimit,
	}

	if cfg.Redis.Enabled {
		client, err := redisdb.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("Prediction cache disabled", "error", err)
		} else {
			defer redisdb.CloseRedisClient(client)
			opts.Cache = redisRepo.NewPredictionCache(client, cfg.Redis.CacheTTL)
			logger.Info("Prediction cache enabled", "ttl", cfg.Redis.CacheTTL.String())
		}
	}

	// Init service
	creditService := credit.NewCreditService(engine, catalog, opts)

	// Init handler
	creditHandler := rest.NewCreditHandler(creditService, cfg.Server.RequestTimeout)
	cardHandler := rest.NewCardHandler(creditService, cfg.Server.RequestTimeout)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  cfg.Server.AllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, middleware.HeaderTraceID},
		ExposeHeaders: []string{middleware.HeaderTraceID},
	}))
	e.Use(middleware.TraceID())
	e.Use(metrics.Middleware())

	// Setup routes
	router.SetupOpsRoutes(e)
	api := e.Group("/api/v1")
	router.SetupCreditRoutes(api, creditHandler)
	router.SetupCardRoutes(api, cardHandler)
	if src.scoring != nil {
		router.SetupScoringAdminRoutes(api, rest.NewScoringAdminHandler(src.scoring))
	}

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

// buildSources picks the file or postgres implementation of every data source.
func buildSources(cfg *config.Config, db *gorm.DB) (sources, error) {
	if cfg.Catalog.Source == config.CatalogSourcePostgres {
		trainingRepo := psqlRepo.NewTrainingProfileRepository(db)
		src := sources{
			cards:    psqlRepo.NewCardRepository(db),
			offers:   psqlRepo.NewOfferRepository(db),
			training: trainingRepo,
			scoring:  psqlRepo.NewScoringConfigRepository(db),
		}
		if cfg.Scoring.PersistTraining {
			src.store = trainingRepo
		}
		return src, nil
	}

	cards, err := jsonfile.NewCardRepository(cfg.Catalog.CardsPath)
	if err != nil {
		return sources{}, fmt.Errorf("cards: %w", err)
	}
	offers, err := jsonfile.NewOfferRepository(cfg.Catalog.OffersPath)
	if err != nil {
		return sources{}, fmt.Errorf("offers: %w", err)
	}

	return sources{
		cards:    cards,
		offers:   offers,
		training: jsonfile.NewTrainingDataRepository(cfg.Catalog.TrainingDataPath),
	}, nil
}
