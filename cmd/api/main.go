package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campusquest/hunt-backend/api/routes"
	"github.com/campusquest/hunt-backend/internal/config"
	"github.com/campusquest/hunt-backend/internal/handlers"
	"github.com/campusquest/hunt-backend/internal/repositories"
	mongorepo "github.com/campusquest/hunt-backend/internal/repositories/mongodb"
	"github.com/campusquest/hunt-backend/internal/services"
	"github.com/campusquest/hunt-backend/pkg/cashfree"
	"github.com/campusquest/hunt-backend/pkg/mongodb"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env first so viper's AutomaticEnv picks the values up
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to MongoDB using the pkg helper
	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err = mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Initialize repositories, assigning to interface types
	var participantRepo repositories.ParticipantRepository = mongorepo.NewParticipantRepository(db)
	var paymentRepo repositories.PaymentRepository = mongorepo.NewPaymentRepository(db)
	var componentRepo repositories.ComponentRepository = mongorepo.NewComponentRepository(db)
	var qrCodeRepo repositories.QRCodeRepository = mongorepo.NewQRCodeRepository(db)
	var scanRepo repositories.ScanRepository = mongorepo.NewScanRepository(db)
	var milestoneRepo repositories.MilestoneRepository = mongorepo.NewMilestoneRepository(db)
	var settingsRepo repositories.SettingsRepository = mongorepo.NewSettingsRepository(db)
	var verifiedUserRepo repositories.VerifiedUserRepository = mongorepo.NewVerifiedUserRepository(db)
	var adminUserRepo repositories.AdminUserRepository = mongorepo.NewAdminUserRepository(db)

	// Payment gateway client
	gateway := cashfree.NewClient(cfg.Cashfree.BaseURL, cfg.Cashfree.AppID, cfg.Cashfree.SecretKey, cfg.Cashfree.MockAPI)

	// Initialize services
	verificationService := services.NewVerificationService(paymentRepo, settingsRepo)
	progressService := services.NewProgressService(milestoneRepo)
	scanService := services.NewScanService(participantRepo, qrCodeRepo, componentRepo, scanRepo, verificationService, progressService)
	paymentService := services.NewPaymentService(paymentRepo, participantRepo, gateway, cfg)
	clueService := services.NewClueService(qrCodeRepo, participantRepo, verificationService)
	registrationService := services.NewRegistrationService(participantRepo, qrCodeRepo)
	adminService := services.NewAdminService(verifiedUserRepo)
	authService := services.NewAuthService(adminUserRepo, cfg)

	// Initialize handlers
	handlerDeps := routes.HandlerDependencies{
		AuthHandler:         handlers.NewAuthHandler(authService),
		ScanHandler:         handlers.NewScanHandler(scanService),
		VerificationHandler: handlers.NewVerificationHandler(verificationService),
		PaymentHandler:      handlers.NewPaymentHandler(paymentService),
		ClueHandler:         handlers.NewClueHandler(clueService),
		ProgressHandler:     handlers.NewProgressHandler(progressService),
		RegistrationHandler: handlers.NewRegistrationHandler(registrationService),
		AdminHandler:        handlers.NewAdminHandler(verificationService, paymentService, adminService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	// Run server in a goroutine so that it doesn't block
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
