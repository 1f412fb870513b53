package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/himtourism/homestay-portal/api/routes"
	"github.com/himtourism/homestay-portal/internal/config"
	"github.com/himtourism/homestay-portal/internal/handlers"
	"github.com/himtourism/homestay-portal/internal/repositories"
	mongorepo "github.com/himtourism/homestay-portal/internal/repositories/mongodb"
	"github.com/himtourism/homestay-portal/internal/services"
	"github.com/himtourism/homestay-portal/pkg/mongodb"
	"github.com/himtourism/homestay-portal/pkg/payment"
	"github.com/himtourism/homestay-portal/pkg/smsgateway"
)

func main() {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	var appRepo repositories.ApplicationRepository = mongorepo.NewApplicationRepository(db)
	var settingsRepo repositories.SettingsRepository = mongorepo.NewSettingsRepository(db)
	var userRepo repositories.UserRepository = mongorepo.NewUserRepository(db)
	var propertyRepo repositories.PropertyRepository = mongorepo.NewPropertyRepository(db)

	// External gateways
	payments := payment.NewClient(cfg.Payment.BaseURL, cfg.Payment.APIKey, cfg.Payment.MerchantID, cfg.Payment.MockGateway)
	var sms smsgateway.Gateway
	if cfg.SMS.MockSMSGateway {
		sms = smsgateway.NewMockGateway()
	} else {
		sms = smsgateway.NewHTTPGateway(cfg.SMS.BaseURL, cfg.SMS.APIKey, cfg.SMS.SenderID)
	}

	// Services
	authService := services.NewAuthService(userRepo, cfg)
	appService := services.NewApplicationService(appRepo, settingsRepo)
	reviewService := services.NewReviewService(appRepo, propertyRepo, payments, sms)
	settingsService := services.NewSettingsService(settingsRepo)
	directoryService := services.NewDirectoryService(propertyRepo)

	// Handlers
	handlerDeps := routes.HandlerDependencies{
		AuthHandler:        handlers.NewAuthHandler(authService),
		ApplicationHandler: handlers.NewApplicationHandler(appService),
		ReviewHandler:      handlers.NewReviewHandler(reviewService),
		SettingsHandler:    handlers.NewSettingsHandler(settingsService),
		DirectoryHandler:   handlers.NewDirectoryHandler(directoryService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
