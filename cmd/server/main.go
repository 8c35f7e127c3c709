package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/leadiaz/compra-tu-auto-app-backend/config"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/controller"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/repository"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/service"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/db"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/middleware"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/router"
	"github.com/leadiaz/compra-tu-auto-app-backend/pkg/logger"
	redispkg "github.com/leadiaz/compra-tu-auto-app-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Compra Tu Auto Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Redis backs the logout token blacklist; the server runs without it.
	if err := redispkg.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, token revocation disabled", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer redispkg.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	dealershipRepo := repository.NewDealershipRepository(db.GetDB())
	vehicleRepo := repository.NewVehicleRepository(db.GetDB())
	offerRepo := repository.NewOfferRepository(db.GetDB())
	favoriteRepo := repository.NewFavoriteRepository(db.GetDB())
	reviewRepo := repository.NewReviewRepository(db.GetDB())
	purchaseRepo := repository.NewPurchaseRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	dealershipService := service.NewDealershipService(dealershipRepo, userRepo)
	vehicleService := service.NewVehicleService(vehicleRepo)
	offerService := service.NewOfferService(offerRepo, vehicleRepo, dealershipRepo, userRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, offerRepo, userRepo)
	reviewService := service.NewReviewService(reviewRepo, vehicleRepo)
	purchaseService := service.NewPurchaseService(purchaseRepo, userRepo, db.GetDB())

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	dealershipController := controller.NewDealershipController(dealershipService, offerService)
	vehicleController := controller.NewVehicleController(vehicleService, offerService, reviewService)
	offerController := controller.NewOfferController(offerService)
	favoriteController := controller.NewFavoriteController(favoriteService)
	reviewController := controller.NewReviewController(reviewService)
	purchaseController := controller.NewPurchaseController(purchaseService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		authController,
		dealershipController,
		vehicleController,
		offerController,
		favoriteController,
		reviewController,
		purchaseController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
