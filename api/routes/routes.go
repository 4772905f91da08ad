package routes

import (
	"github.com/campusquest/hunt-backend/internal/config"
	"github.com/campusquest/hunt-backend/internal/handlers"
	"github.com/campusquest/hunt-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies bundles the handlers the router needs
type HandlerDependencies struct {
	AuthHandler         *handlers.AuthHandler
	ScanHandler         *handlers.ScanHandler
	VerificationHandler *handlers.VerificationHandler
	PaymentHandler      *handlers.PaymentHandler
	ClueHandler         *handlers.ClueHandler
	ProgressHandler     *handlers.ProgressHandler
	RegistrationHandler *handlers.RegistrationHandler
	AdminHandler        *handlers.AdminHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		// Health check
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		// Admin login
		public.POST("/auth/login", deps.AuthHandler.Login)

		// Hunt flow
		public.GET("/scan", deps.ScanHandler.Scan)
		public.POST("/register", deps.RegistrationHandler.Register)

		// Verification
		public.POST("/verify", deps.VerificationHandler.VerifyRegistration)
		public.GET("/verification-status", deps.VerificationHandler.VerificationStatus)

		// Clues
		clues := public.Group("/clues")
		{
			clues.GET("/first", deps.ClueHandler.FirstClue)
			clues.GET("/next", deps.ClueHandler.NextClue)
		}

		// Milestone checks
		public.GET("/completion/check", deps.ProgressHandler.CompletionCheck)
		public.GET("/refreshment/check", deps.ProgressHandler.RefreshmentCheck)

		// Payments
		payments := public.Group("/payments")
		{
			payments.POST("", deps.PaymentHandler.CreateOrder)
			payments.POST("/webhook", deps.PaymentHandler.Webhook)
			payments.GET("/status/:orderId", deps.PaymentHandler.GetStatus)
		}
	}

	// Protected admin routes
	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.JWTAuthMiddleware(cfg))
	{
		admin.GET("/payments", deps.AdminHandler.ListPayments)
		admin.GET("/verifications", deps.AdminHandler.ListVerifications)
		admin.GET("/toggle-verification", deps.AdminHandler.GetVerificationToggle)
		admin.POST("/toggle-verification", deps.AdminHandler.SetVerificationToggle)
		admin.POST("/verify-user", deps.AdminHandler.VerifyUser)
	}

	return router
}
