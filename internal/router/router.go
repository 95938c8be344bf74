// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/codetrade/backend/internal/config"
	"github.com/codetrade/backend/internal/handlers"
	"github.com/codetrade/backend/internal/middleware"
	"github.com/codetrade/backend/internal/services"
	"github.com/codetrade/backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config, verificationWorker *services.VerificationWorker) *gin.Engine {
	// Initialize services
	notificationService := services.NewNotificationService(db, cfg)
	storageService, _ := services.NewStorageService(cfg)
	paymentGateway := services.NewPaymentGateway(cfg)

	authService := services.NewAuthService(db, cfg)
	projectService := services.NewProjectService(db, verificationWorker)
	purchaseService := services.NewPurchaseService(db, cfg, paymentGateway, notificationService)
	reviewService := services.NewReviewService(db)
	messageService := services.NewMessageService(db)
	reportService := services.NewReportService(db)

	// The worker is constructed before the project service, so the
	// verifier is attached here.
	verificationWorker.SetVerifier(projectService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService, storageService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	messageHandler := handlers.NewMessageHandler(messageService)
	reportHandler := handlers.NewReportHandler(reportService)
	dashboardHandler := handlers.NewDashboardHandler(projectService, purchaseService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Authentication routes
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Project routes
		projects := api.Group("/projects")
		{
			projects.GET("", middleware.OptionalAuth(), projectHandler.GetProjects)
			projects.GET("/:id", middleware.OptionalAuth(), projectHandler.GetProject)
			projects.POST("", middleware.AuthRequired(), middleware.UploadRateLimit(), projectHandler.CreateProject)
		}

		// Purchase routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			protected.POST("/create-payment-intent", purchaseHandler.CreatePaymentIntent)
			protected.POST("/confirm-purchase", purchaseHandler.ConfirmPurchase)
			protected.GET("/purchases", purchaseHandler.GetPurchases)
			protected.GET("/purchases/:projectId", purchaseHandler.GetPurchaseStatus)
		}

		// Review routes
		reviews := api.Group("/reviews")
		{
			reviews.POST("", middleware.AuthRequired(), reviewHandler.CreateReview)
			reviews.GET("/:projectId", reviewHandler.GetProjectReviews)
		}

		// Message routes
		messages := api.Group("/messages")
		messages.Use(middleware.AuthRequired())
		{
			messages.POST("", messageHandler.CreateMessage)
			messages.GET("/:projectId", messageHandler.GetProjectMessages)
		}

		// Report routes
		reports := api.Group("/reports")
		reports.Use(middleware.AuthRequired())
		{
			reports.POST("", reportHandler.CreateReport)
			reports.GET("", reportHandler.GetSellerReports)
			reports.PUT("/:id/status", reportHandler.UpdateReportStatus)
		}

		// Dashboard routes
		dashboard := api.Group("/dashboard")
		dashboard.Use(middleware.AuthRequired())
		{
			dashboard.GET("/seller", dashboardHandler.GetSellerDashboard)
			dashboard.GET("/buyer", dashboardHandler.GetBuyerDashboard)
		}
	}

	// Static serving for locally stored uploads
	r.Static("/uploads", cfg.Upload.Dir)

	return r
}
